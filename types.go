package jobsift

import "time"

// Version information for the jobsift library.
const (
	Version = "0.1.0"
	Name    = "jobsift"
)

// ExtractionOptions configures an extraction call. Selector tables,
// cleaning patterns and score weights are compile-time constants and are
// deliberately not configurable here; extraction behavior must stay
// deterministic and testable.
type ExtractionOptions struct {
	// Timeout bounds ExtractFromHTML and ExtractFromReader. The engine
	// itself has no blocking operations; this guards against
	// pathological inputs at the API boundary.
	Timeout time.Duration

	// MinResultLength is the shortest extracted text considered a
	// success. Shorter output is still returned, with Success false.
	MinResultLength int

	// SiteSpecific enables the hostname-routed extractors for known job
	// boards. Disable to force the generic pipeline.
	SiteSpecific bool
}

// Option modifies ExtractionOptions, following the functional options
// pattern.
type Option func(*ExtractionOptions)

// WithTimeout sets the timeout for extraction at the API boundary.
func WithTimeout(timeout time.Duration) Option {
	return func(o *ExtractionOptions) {
		o.Timeout = timeout
	}
}

// WithMinResultLength sets the success threshold for extracted text
// length, in characters.
func WithMinResultLength(n int) Option {
	return func(o *ExtractionOptions) {
		o.MinResultLength = n
	}
}

// WithSiteSpecific enables or disables the site-specific extraction
// stage.
func WithSiteSpecific(enable bool) Option {
	return func(o *ExtractionOptions) {
		o.SiteSpecific = enable
	}
}

// DefaultOptions returns the default extraction options: a 30 second
// timeout, a 100 character success threshold, and site-specific
// extractors enabled.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		Timeout:         30 * time.Second,
		MinResultLength: 100,
		SiteSpecific:    true,
	}
}
