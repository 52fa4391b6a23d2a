package codec

import (
	"errors"
	"github.com/ValentinKolb/dBytes/lib/serde"
)

var (
	// ErrInvalidEncoding is returned for malformed hex or base64 text
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrInvalidLength is returned if the decoded byte count does not match a fixed-size target
	ErrInvalidLength = serde.ErrInvalidLength
	// ErrUnsupportedOperation is returned if a borrowed view is requested from an input that can not lend one
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
