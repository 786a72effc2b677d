// Package jobsift extracts job descriptions from rendered web pages.
//
// Given a page's HTML (or a pre-built page.Snapshot), jobsift recovers
// the substring that constitutes the actual job posting, discarding
// navigation, cookie banners, footers and metadata labels. It is a
// deterministic heuristic pipeline: site-specific selectors for known
// job boards, then generic candidate collection with noise exclusion,
// multi-pass text cleaning, linear scoring and ranking, then a chain of
// decreasingly precise fallbacks. There is no machine learning, no
// network access and no shared state across calls; the same input always
// produces the same output.
//
// Usage:
//
//	ext := jobsift.New()
//
//	result, err := ext.ExtractFromHTML(html, "acme.myworkdayjobs.com", nil)
//	if err != nil {
//		// parse failure or timeout
//	}
//	if result.Success {
//		fmt.Println(result.Text)
//	}
//
// Extraction never fails just because no description was found: the
// pipeline degrades through fallbacks and reports short or empty output
// via Result.Success instead of an error.
package jobsift
