package securetypes_test

import (
	"fmt"

	"github.com/systmms/securetypes"
)

// Example demonstrates the basic lifecycle: construct, use, destroy.
func Example() {
	password := securetypes.NewString("hunter2")
	defer password.Destroy()

	fmt.Println(password)
	fmt.Println(len(password.Unsecure()))
	// Output:
	// ***SECRET***
	// 7
}

func ExampleSecureBuffer_Resize() {
	key := securetypes.NewBuffer([]int32{0, 1})
	defer key.Destroy()

	key.Resize(1, 0)
	key.Resize(4, 2)
	fmt.Println(key.Unsecure())
	// Output: [0 2 2 2]
}

func ExampleArrayFromString() {
	_, err := securetypes.ArrayFromString(5, "secret")
	fmt.Println(err)
	// Output: length mismatch: expected 5, but got 6
}

func ExampleSecureString_IntoUnsecure() {
	token := securetypes.NewString("tok_123")

	// Ownership of the bytes moves out; the container must not be reused.
	plain := token.IntoUnsecure()
	fmt.Println(plain)
	// Output: tok_123
}
