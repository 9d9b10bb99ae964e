package securetypes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var privateKey1 = [32]byte{
	0xb0, 0x3b, 0x34, 0xc3, 0x3a, 0x1c, 0x44, 0xf2, 0x25, 0xb6, 0x62, 0xd2, 0xbf, 0x48, 0x59, 0xb8,
	0x13, 0x54, 0x11, 0xfa, 0x7b, 0x03, 0x86, 0xd4, 0x5f, 0xb7, 0x5d, 0xc5, 0xb9, 0x1b, 0x44, 0x66,
}

var privateKey2 = [32]byte{
	0xc8, 0x06, 0x43, 0x9d, 0xc9, 0xd2, 0xc4, 0x76, 0xff, 0xed, 0x8f, 0x25, 0x80, 0xc0, 0x88, 0x8d,
	0x58, 0xab, 0x40, 0x6b, 0xf7, 0xae, 0x36, 0x98, 0x87, 0x90, 0x21, 0xb9, 0x6b, 0xb4, 0xbf, 0x59,
}

func TestScalarEquality(t *testing.T) {
	t.Parallel()

	key1 := NewScalar(privateKey1)
	defer key1.Destroy()
	key2 := NewScalar(privateKey2)
	defer key2.Destroy()
	key3 := NewScalar(privateKey1)
	defer key3.Destroy()

	assert.True(t, key1.Equal(key1))
	assert.False(t, key1.Equal(key2))
	assert.False(t, key2.Equal(key3))
	assert.True(t, key1.Equal(key3))
}

func TestScalarZeroOut(t *testing.T) {
	t.Parallel()

	key := NewScalar(privateKey1)
	defer key.Destroy()

	final := key.Clone()
	defer final.Destroy()

	// [32]byte has a valid all-zero value, so the ZeroOut precondition holds.
	final.ZeroOut()
	assert.Equal(t, [32]byte{}, *final.Unsecure())
	assert.Equal(t, privateKey1, *key.Unsecure(), "zeroing the clone must not affect the original")
}

func TestScalarMutateThroughView(t *testing.T) {
	t.Parallel()

	counter := NewScalar(int64(41))
	defer counter.Destroy()

	*counter.Unsecure()++
	assert.Equal(t, int64(42), *counter.Unsecure())
}

func TestScalarStructValue(t *testing.T) {
	t.Parallel()

	type keyPair struct {
		Public  [8]byte
		Private [8]byte
	}

	pair := NewScalar(keyPair{
		Public:  [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
		Private: [8]byte{9, 10, 11, 12, 13, 14, 15, 16},
	})
	defer pair.Destroy()

	same := pair.Clone()
	defer same.Destroy()
	require.True(t, pair.Equal(same))

	same.Unsecure().Private[0] = 0xff
	assert.False(t, pair.Equal(same))
	assert.Equal(t, byte(9), pair.Unsecure().Private[0])
}

func TestScalarRedaction(t *testing.T) {
	t.Parallel()

	key := NewScalar(privateKey1)
	defer key.Destroy()

	for _, format := range []string{"%v", "%s", "%x", "%#v"} {
		assert.Equal(t, Redacted, fmt.Sprintf(format, key))
	}
}

func TestScalarDestroyIdempotent(t *testing.T) {
	t.Parallel()

	key := NewScalar(privateKey1)
	key.Destroy()
	key.Destroy()
	assert.Nil(t, key.Unsecure())
}
