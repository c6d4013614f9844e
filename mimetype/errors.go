package mimetype

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates a content-type string that does not match
	// the media-type grammar.
	ErrInvalidFormat = errors.New("invalid media type format")

	// ErrInvalidEncoding indicates an encoding value outside the four
	// transfer encodings a type may carry.
	ErrInvalidEncoding = errors.New("invalid content transfer encoding")
)

// InvalidFormatError carries the offending content-type string.
type InvalidFormatError struct {
	ContentType string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("mimetype: %q is not a valid media type", e.ContentType)
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// InvalidEncodingError carries the rejected encoding value.
type InvalidEncodingError struct {
	Value string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("mimetype: %q is not a valid encoding (want 7bit, 8bit, quoted-printable or base64)", e.Value)
}

func (e *InvalidEncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
