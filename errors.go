package pptxbullet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument matches every *InvalidArgumentError
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError - value outside the accepted set, nothing was changed
type InvalidArgumentError struct {
	Param    string
	Value    any
	Accepted []string
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Accepted) == 0 {
		return fmt.Sprintf("invalid %s: %v", e.Param, e.Value)
	}
	return fmt.Sprintf("%s must be %s (got %q)", e.Param, joinChoices(e.Accepted), fmt.Sprint(e.Value))
}

// Is makes errors.Is(err, ErrInvalidArgument) work
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// "a", "b", or "c"
func joinChoices(choices []string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	}
	return strings.Join(choices[:len(choices)-1], ", ") + ", or " + choices[len(choices)-1]
}

// ParseError - xml or yaml input that could not be decoded
type ParseError struct {
	Source string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("parse error in %s", e.Source)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Source, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
