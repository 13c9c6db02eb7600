package common

const (
	// InvalidPageID is the raw sentinel value mirrored by types.InvalidPageID.
	InvalidPageID = -1
	// InvalidLSN is used before any record has been appended.
	InvalidLSN = -1
	// PageSize is the size in bytes of a page, on disk and in a frame.
	PageSize = 4096
	// LogBufferPoolSize bounds the in-memory log buffer the recovery
	// manager would flush through (see recovery.LogManager).
	LogBufferPoolSize = 32
	// LogBufferSize is the byte size of that buffer.
	LogBufferSize = (LogBufferPoolSize + 1) * PageSize
)
