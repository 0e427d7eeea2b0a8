package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Scalar is a link field as recorded in a store file. Strings are the usual
// case, but numbers and other JSON values are accepted and kept verbatim so a
// rewrite reproduces them.
type Scalar struct {
	s   string
	raw json.RawMessage
}

// Str returns a Scalar holding the string s.
func Str(s string) Scalar {
	return Scalar{s: s}
}

// StrPtr returns a pointer to Str(s).
func StrPtr(s string) *Scalar {
	v := Str(s)
	return &v
}

// String returns the text of a string value, or the JSON literal of any
// other value.
func (v Scalar) String() string {
	if v.raw != nil {
		return string(v.raw)
	}
	return v.s
}

// IsString reports whether v was recorded as a JSON string.
func (v Scalar) IsString() bool {
	return v.raw == nil
}

// IsNull reports whether v was recorded as JSON null.
func (v Scalar) IsNull() bool {
	return string(v.raw) == "null"
}

func (v Scalar) MarshalJSON() ([]byte, error) {
	if v.raw != nil {
		return v.raw, nil
	}
	return marshalNoEscape(v.s)
}

func (v *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Scalar{s: s}
		return nil
	}
	if !json.Valid(data) {
		return fmt.Errorf("invalid value %q", data)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	*v = Scalar{raw: compact.Bytes()}
	return nil
}
