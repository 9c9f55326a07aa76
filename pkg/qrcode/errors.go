package qrcode

import "errors"

// Error variables classify pipeline failures. Client errors are detected before any
// rendering work starts; encoder errors are server faults.
var (
	// ErrMissingPayload indicates the required data parameter is absent.
	ErrMissingPayload = errors.New("qrcode: missing payload")

	// ErrInvalidSize indicates the size parameter is present but is not an unsigned integer.
	ErrInvalidSize = errors.New("qrcode: invalid size")

	// ErrInvalidPayload indicates the payload cannot be encoded at any symbol version,
	// typically because it exceeds the symbol capacity.
	ErrInvalidPayload = errors.New("qrcode: invalid payload")

	// ErrUnsupportedFormat indicates a recognized format that has no encoder.
	ErrUnsupportedFormat = errors.New("qrcode: unsupported format")

	// ErrEncodeFailure indicates the rendered image could not be serialized.
	ErrEncodeFailure = errors.New("qrcode: encode failure")

	// ErrInvalidRecoveryLevel indicates an unknown error correction level name.
	ErrInvalidRecoveryLevel = errors.New("qrcode: invalid recovery level")
)
