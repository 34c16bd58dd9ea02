package serde

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeHex returns prefix followed by the lowercase hex of b.
func EncodeHex(prefix string, b []byte) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + hex.EncodedLen(len(b)))
	sb.WriteString(prefix)
	sb.WriteString(hex.EncodeToString(b))
	return sb.String()
}

// DecodeHex strips the exact prefix from s and decodes the hex remainder.
//
// The result is never nil, so an empty payload decodes to an empty buffer.
func DecodeHex(prefix, s string) ([]byte, error) {
	payload, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return nil, newError(KindMissingPrefix, fmt.Sprintf("string value missing prefix: %q", prefix))
	}
	out, err := hex.DecodeString(payload)
	if err != nil {
		return nil, wrapError(KindInvalidHex, fmt.Sprintf("invalid hex after prefix %q: %v", prefix, err), err)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// EncodePrefixed encodes b under policy P.
func EncodePrefixed[P Prefix](b []byte) string {
	return EncodeHex(PrefixOf[P](), b)
}

// DecodePrefixed decodes s under policy P.
func DecodePrefixed[P Prefix](s string) ([]byte, error) {
	return DecodeHex(PrefixOf[P](), s)
}

// EncodeOptionalHex encodes b under P when present. An absent value stays
// absent: the returned ok mirrors present.
func EncodeOptionalHex[P Prefix](b []byte, present bool) (string, bool) {
	if !present {
		return "", false
	}
	return EncodePrefixed[P](b), true
}

// DecodeOptionalHex decodes s under P when present. Errors are only possible
// for present input.
func DecodeOptionalHex[P Prefix](s string, present bool) ([]byte, bool, error) {
	if !present {
		return nil, false, nil
	}
	b, err := DecodePrefixed[P](s)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// HexBytes is a byte buffer whose text form is prefix || lowercase hex.
type HexBytes[P Prefix] []byte

func (h HexBytes[P]) String() string {
	return EncodePrefixed[P](h)
}

func (h HexBytes[P]) MarshalText() ([]byte, error) {
	return []byte(EncodePrefixed[P](h)), nil
}

func (h *HexBytes[P]) UnmarshalText(text []byte) error {
	b, err := DecodePrefixed[P](string(text))
	if err != nil {
		return err
	}
	*h = b
	return nil
}

// NullHexBytes is the optional form of HexBytes. When Valid is false it
// marshals to JSON null.
type NullHexBytes[P Prefix] struct {
	Bytes []byte
	Valid bool
}

// SomeHex wraps b as a present optional value.
func SomeHex[P Prefix](b []byte) NullHexBytes[P] {
	return NullHexBytes[P]{Bytes: b, Valid: true}
}

func (n NullHexBytes[P]) MarshalJSON() ([]byte, error) {
	s, ok := EncodeOptionalHex[P](n.Bytes, n.Valid)
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}

func (n *NullHexBytes[P]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullHexBytes[P]{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, ok, err := DecodeOptionalHex[P](s, true)
	if err != nil {
		return err
	}
	*n = NullHexBytes[P]{Bytes: b, Valid: ok}
	return nil
}
