package mailsift

import "errors"

var (
	// ErrInvalidChunkSize is returned by VerifyList when
	// BatchOptions.ChunkSize is negative. Zero selects the default.
	ErrInvalidChunkSize = errors.New("mailsift: chunk size must not be negative")
)
