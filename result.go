package jobsift

// Result is the outcome of one extraction call.
//
// Success reflects whether Text cleared the configured minimum length;
// the text is returned either way so callers can apply their own
// judgment. Title and Company are best-effort headline metadata and may
// be empty even on success.
type Result struct {
	Success bool   `json:"success"`
	Text    string `json:"jobDescription"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`

	// Stage names the strategy that produced the text: "site_specific",
	// "generic", "keyword_fallback", "main_content_fallback" or
	// "body_fallback". Diagnostic only.
	Stage string `json:"stage"`
}
