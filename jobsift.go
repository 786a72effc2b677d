package jobsift

import (
	"fmt"
	"io"
	"time"

	"github.com/jobsift/jobsift/internal/extract"
	"github.com/jobsift/jobsift/page"
)

// Extractor is the public interface for job-description extraction.
type Extractor interface {
	// ExtractFromHTML parses the HTML, builds a page snapshot and runs
	// the extraction pipeline. The hostname routes site-specific
	// extractors; pass an empty string if unknown.
	ExtractFromHTML(html, hostname string, options *ExtractionOptions) (*Result, error)

	// ExtractFromReader is ExtractFromHTML over an io.Reader.
	ExtractFromReader(r io.Reader, hostname string, options *ExtractionOptions) (*Result, error)

	// ExtractFromSnapshot runs the pipeline over an already-built
	// snapshot. This entry point is synchronous and pure: no timeout
	// wrapping, no I/O, a function of the snapshot alone.
	ExtractFromSnapshot(snap *page.Snapshot, options *ExtractionOptions) (*Result, error)
}

// jobExtractor is the concrete implementation of Extractor.
type jobExtractor struct {
	options ExtractionOptions
}

// New creates an Extractor with the provided options.
//
// Example:
//
//	ext := jobsift.New(
//	    jobsift.WithMinResultLength(200),
//	    jobsift.WithTimeout(time.Second*10),
//	)
func New(opts ...Option) Extractor {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &jobExtractor{options: options}
}

func (e *jobExtractor) ExtractFromHTML(html, hostname string, options *ExtractionOptions) (*Result, error) {
	if options == nil {
		options = &e.options
	}

	resultCh := make(chan struct {
		result *Result
		err    error
	}, 1)

	go func() {
		var res *Result
		snap, err := page.FromHTML(html, hostname)
		if err == nil {
			res, err = e.ExtractFromSnapshot(snap, options)
		}
		resultCh <- struct {
			result *Result
			err    error
		}{res, err}
	}()

	select {
	case r := <-resultCh:
		return r.result, r.err
	case <-time.After(options.Timeout):
		return nil, fmt.Errorf("extraction timed out after %v", options.Timeout)
	}
}

func (e *jobExtractor) ExtractFromReader(r io.Reader, hostname string, options *ExtractionOptions) (*Result, error) {
	html, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading page HTML: %w", err)
	}
	return e.ExtractFromHTML(string(html), hostname, options)
}

func (e *jobExtractor) ExtractFromSnapshot(snap *page.Snapshot, options *ExtractionOptions) (*Result, error) {
	if options == nil {
		options = &e.options
	}

	outcome := extract.Run(snap, extract.Options{SiteSpecific: options.SiteSpecific})
	title, company := extract.Title(snap)

	return &Result{
		Success: len([]rune(outcome.Text)) >= options.MinResultLength,
		Text:    outcome.Text,
		Title:   title,
		Company: company,
		Stage:   outcome.Stage.String(),
	}, nil
}
