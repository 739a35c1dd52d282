package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader reads a Document from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures where a Loader may read from. The embedded
// contract needs only FileSystem; URL sources stay disabled until a client or
// the HTTP fallback is configured.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS locations.
	FileSystem fs.FS

	// HTTPClient fetches SourceKindURL locations.
	HTTPClient *http.Client

	// AllowHTTPFallback builds a client when HTTPClient is nil.
	AllowHTTPFallback bool

	// RequestTimeout applies to the fallback client and to an injected client
	// that has no timeout of its own.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem sets the fs.FS used for SourceKindFS locations.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient enables URL sources through client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources through a default client capped at
// timeout. Zero means no cap.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithDefaultSources enables URL sources unless a client is already set.
func WithDefaultSources() LoaderOption {
	return func(opts *LoaderOptions) {
		if opts.HTTPClient == nil {
			opts.AllowHTTPFallback = true
		}
	}
}

// NewLoaderOptions applies options over the zero value.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var cfg LoaderOptions
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
