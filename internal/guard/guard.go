// Package guard holds the argument checks shared by repositories, services
// and domain constructors.
package guard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("argument out of range")
)

// ArgumentError reports a missing or blank required value.
type ArgumentError struct {
	Param string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: value cannot be null or blank", e.Param)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// RangeError reports an identifier that must not be zero.
type RangeError struct {
	Param string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s ('%d') must be a non-zero value", e.Param, e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// NotNil fails when v is a nil pointer.
func NotNil[T any](v *T, param string) error {
	if v == nil {
		return &ArgumentError{Param: param}
	}
	return nil
}

// NotZero fails when id is zero.
func NotZero(id int, param string) error {
	if id == 0 {
		return &RangeError{Param: param, Value: id}
	}
	return nil
}

// NotBlank fails for empty and whitespace-only strings.
func NotBlank(s, param string) error {
	if strings.TrimSpace(s) == "" {
		return &ArgumentError{Param: param}
	}
	return nil
}

// Param reports the parameter named by a guard error, if any.
func Param(err error) (string, bool) {
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Param, true
	}
	var re *RangeError
	if errors.As(err, &re) {
		return re.Param, true
	}
	return "", false
}
