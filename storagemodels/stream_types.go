package storagemodels

import (
	"time"
)

// StreamResult represents a single record in a stream with metadata
type StreamResult struct {
	Record Record     // A copy of the matching record
	Error  error      // Stream-level error, if any
	Meta   StreamMeta // Metadata about this record
}

// StreamMeta contains metadata about a streamed record
type StreamMeta struct {
	Index      int64     // Record index in stream (0-based)
	PageNumber int       // Page number (1-based) given the configured page size
	Timestamp  time.Time // When the record was emitted
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize      int                  // Channel buffer size (default: 100)
	PageSize        int                  // Records per reported page (default: 100)
	ProgressHandler func(StreamProgress) // Optional progress callback
}

// StreamProgress tracks streaming progress
type StreamProgress struct {
	ItemsProcessed int64     // Total records emitted
	PagesProcessed int       // Total pages emitted
	StartTime      time.Time // When streaming started
	CurrentRate    float64   // Records per second
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 100,
		PageSize:   100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithPageSize sets how many records make up one reported page
func WithPageSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.PageSize = size
	}
}

// WithProgressHandler sets a progress callback, invoked after every page
func WithProgressHandler(handler func(StreamProgress)) StreamOption {
	return func(opts *StreamOptions) {
		opts.ProgressHandler = handler
	}
}
