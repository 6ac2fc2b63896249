package config

import (
	"errors"
	"fmt"

	"github.com/dshills/splitstring/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownKey indicates a key outside the known splitString settings.
	ErrUnknownKey = errors.New("unknown setting")

	// ErrInvalidValue indicates a value of the wrong type or outside the
	// allowed set.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrUnsupportedFormat indicates a config file with an unknown extension.
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat
)

// ValueError describes a rejected setting value.
type ValueError struct {
	// Path is the dotted location of the value in the document.
	Path string
	// Expected names the accepted type or values.
	Expected string
	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %v (%T)", e.Path, e.Expected, e.Value, e.Value)
}

// Is reports ErrInvalidValue as a match.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
