package protocol

import "errors"

var (
	ErrInvalidMagic      = errors.New("protocol: invalid magic")
	ErrInvalidPacketType = errors.New("protocol: invalid packet type")
	ErrTruncated         = errors.New("protocol: truncated data")
	ErrInvalidLength     = errors.New("protocol: invalid length")
	ErrUnknownType       = errors.New("protocol: unknown type tag")
	ErrUnknownField      = errors.New("protocol: unknown field id")
	ErrNotImplemented    = errors.New("protocol: not implemented")
	ErrInvalidEncoding   = errors.New("protocol: invalid string encoding")
	ErrInvalidPresence   = errors.New("protocol: invalid presence flag")
	ErrDepthExceeded     = errors.New("protocol: nesting too deep")
	ErrFieldTypeMismatch = errors.New("protocol: field type mismatch")
)
