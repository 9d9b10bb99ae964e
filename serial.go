package securetypes

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Codec integration. The containers expose themselves to structured codecs as
// plain byte sequences (buffers, arrays) or UTF-8 strings (SecureString);
// decoding reconstructs a locked container and length-checks fixed-length
// targets. Serializing deliberately discloses the secret — that is the
// purpose of these methods; redaction covers diagnostic formatting only.

// MarshalCBOR encodes the live content. A byte buffer encodes as a CBOR byte
// string: NewBuffer([]byte("hello")) yields 0x45 followed by "hello".
func (b *SecureBuffer[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(b.content)
}

// UnmarshalCBOR decodes a byte string or element sequence into freshly locked
// storage, replacing any previous content.
func (b *SecureBuffer[T]) UnmarshalCBOR(data []byte) error {
	var content []T
	if err := cbor.Unmarshal(data, &content); err != nil {
		return err
	}
	b.adopt(content)
	return nil
}

// MarshalJSON encodes the live content; byte buffers use encoding/json's
// base64 form.
func (b *SecureBuffer[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.content)
}

// UnmarshalJSON decodes into freshly locked storage, replacing any previous
// content.
func (b *SecureBuffer[T]) UnmarshalJSON(data []byte) error {
	var content []T
	if err := json.Unmarshal(data, &content); err != nil {
		return err
	}
	b.adopt(content)
	return nil
}

// MarshalCBOR encodes the content; byte arrays encode as CBOR byte strings.
func (a *SecureArray[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.content)
}

// UnmarshalCBOR decodes into freshly locked storage. Decoding into an array
// whose length is established fails with a *LengthMismatchError when the
// source length differs; a fresh zero-value array takes the source's length.
func (a *SecureArray[T]) UnmarshalCBOR(data []byte) error {
	var content []T
	if err := cbor.Unmarshal(data, &content); err != nil {
		return err
	}
	return a.adopt(content)
}

// MarshalJSON encodes the content; byte arrays use encoding/json's base64
// form.
func (a *SecureArray[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.content)
}

// UnmarshalJSON decodes into freshly locked storage with the same length
// enforcement as UnmarshalCBOR.
func (a *SecureArray[T]) UnmarshalJSON(data []byte) error {
	var content []T
	if err := json.Unmarshal(data, &content); err != nil {
		return err
	}
	return a.adopt(content)
}

// MarshalCBOR encodes the content as a CBOR text string.
func (s *SecureString) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.Unsecure())
}

// UnmarshalCBOR decodes a text string into freshly locked storage. The codec
// rejects invalid UTF-8 in text strings, so the validity invariant holds.
func (s *SecureString) UnmarshalCBOR(data []byte) error {
	var str string
	if err := cbor.Unmarshal(data, &str); err != nil {
		return err
	}
	s.adopt([]byte(str))
	return nil
}

// MarshalJSON encodes the content as a JSON string.
func (s *SecureString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Unsecure())
}

// UnmarshalJSON decodes a JSON string into freshly locked storage.
// encoding/json replaces invalid sequences with U+FFFD, so the decoded value
// is always valid UTF-8.
func (s *SecureString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	s.adopt([]byte(str))
	return nil
}

// MarshalYAML encodes the content as a YAML string, for secrets embedded in
// configuration documents.
func (s *SecureString) MarshalYAML() (interface{}, error) {
	return s.Unsecure(), nil
}

// UnmarshalYAML decodes a YAML scalar into freshly locked storage.
func (s *SecureString) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	s.adopt([]byte(str))
	return nil
}
