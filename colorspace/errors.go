package colorspace

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchComponent is matched by errors.Is for NoSuchComponentError.
	ErrNoSuchComponent = errors.New("no such color component")

	// ErrDecode is matched by errors.Is for DecodeError.
	ErrDecode = errors.New("color decode failed")

	// ErrArithmeticOverflow is matched by errors.Is for OverflowError.
	ErrArithmeticOverflow = errors.New("color arithmetic overflow")

	// ErrComponentCount is returned by slice constructors given fewer than
	// three values.
	ErrComponentCount = errors.New("expected three color components")

	// ErrNoSuchColor is matched by errors.Is for NoSuchColorError.
	ErrNoSuchColor = errors.New("no such named color")
)

// NoSuchComponentError reports a component name the model does not have.
type NoSuchComponentError struct {
	Name string // The requested component name
}

func (e *NoSuchComponentError) Error() string {
	return fmt.Sprintf("no color component named -> %s", e.Name)
}

// Is reports whether target is ErrNoSuchComponent.
func (e *NoSuchComponentError) Is(target error) bool {
	return target == ErrNoSuchComponent
}

// DecodeError reports malformed hexadecimal color text.
type DecodeError struct {
	Input string // The text that failed to decode
	Err   error  // Underlying cause, may be nil
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid hex color %q", e.Input)
	}
	return fmt.Sprintf("invalid hex color %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// OverflowError reports a channel sum or difference outside 0-255.
type OverflowError struct {
	Op        string    // "add" or "subtract"
	Component Component // First channel that left the range
	Result    int       // Exact result for that channel
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s overflows %s channel: %d not in [0, 255]", e.Op, e.Component, e.Result)
}

// Is reports whether target is ErrArithmeticOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrArithmeticOverflow
}

// NoSuchColorError reports an unknown color name.
type NoSuchColorError struct {
	Name string
}

func (e *NoSuchColorError) Error() string {
	return fmt.Sprintf("unknown color name %q", e.Name)
}

// Is reports whether target is ErrNoSuchColor.
func (e *NoSuchColorError) Is(target error) bool {
	return target == ErrNoSuchColor
}
