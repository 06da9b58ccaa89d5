package product

import (
	"sort"
	"strings"
)

// Code classifies a field-level validation failure.
type Code string

const (
	CodeRequired       Code = "Required"
	CodeTooLong        Code = "TooLong"
	CodeInvalidNumber  Code = "InvalidNumber"
	CodeInvalidInteger Code = "InvalidInteger"
	CodeInvalidURL     Code = "InvalidUrl"
)

// FieldError is one failed rule: a code plus the user-facing message.
type FieldError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// ErrorSet maps a field to its current error.  A missing key means the field
// is valid.  The zero value (nil) is an empty, valid set.
//
// ErrorSet satisfies error so Build can return it directly.
type ErrorSet map[Field]FieldError

// Empty reports whether no field has an error.
func (s ErrorSet) Empty() bool { return len(s) == 0 }

// Message returns the message for f, or "" when f is valid.
func (s ErrorSet) Message(f Field) string { return s[f].Message }

// Has reports whether f currently has an error.
func (s ErrorSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// Fields returns the failing fields in form order.
func (s ErrorSet) Fields() []Field {
	out := make([]Field, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].order() < out[j].order() })
	return out
}

// Messages returns field → message, the shape the presentation layer wants.
func (s ErrorSet) Messages() map[string]string {
	out := make(map[string]string, len(s))
	for f, e := range s {
		out[string(f)] = e.Message
	}
	return out
}

// Clone returns an independent copy.
func (s ErrorSet) Clone() ErrorSet {
	out := make(ErrorSet, len(s))
	for f, e := range s {
		out[f] = e
	}
	return out
}

func (s ErrorSet) Error() string {
	if s.Empty() {
		return "product: no validation errors"
	}
	parts := make([]string, 0, len(s))
	for _, f := range s.Fields() {
		parts = append(parts, string(f)+": "+s[f].Message)
	}
	return "product: invalid draft (" + strings.Join(parts, "; ") + ")"
}
