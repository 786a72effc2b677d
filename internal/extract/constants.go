package extract

import "regexp"

// Calibration constants. These are hand-tuned values carried over from
// the production heuristics; treat them as calibration knobs, not as
// semantically meaningful numbers.
const (
	// Raw candidate text must fall strictly inside this window: shorter
	// is not a description, longer is a whole-page dump.
	minRawLen = 300
	maxRawLen = 15000

	// Candidates whose cleaned text falls below this were mostly noise.
	minCleanedLen = 300

	// A generic candidate must score above this to be accepted.
	scoreThreshold = 20

	// Keyword-fallback paragraphs must be longer than this.
	keywordParaMinLen = 100

	// Main-content containers and sub-sections must clean to more than
	// this many characters.
	mainContentMinLen = 500

	// Fallback output is capped at this many characters.
	fallbackCap = 5000
)

// candidateSelectors is the generic collection sweep, ordered by
// decreasing specificity: explicit job-description hooks first, semantic
// containers next, generic blocks last.
var candidateSelectors = []string{
	`[data-automation-id="jobPostingDescription"]`,
	`#jobDescriptionText`,
	`.jobDescriptionText`,
	`#job-description`,
	`.job-description`,
	`[class*="jobDescription"]`,
	`[class*="job-description"]`,
	`[itemprop="description"]`,
	`.description__text`,
	`main`,
	`article`,
	`section[aria-label*="description"]`,
	`[role="main"]`,
	`.content`,
	`#content`,
	`section`,
	`div`,
}

// vocabTerms is the job-posting vocabulary used both for keyword-density
// scoring (5 points per occurrence) and for the keyword-paragraph
// fallback.
var vocabTerms = []string{
	"responsibilities",
	"requirements",
	"qualifications",
	"job description",
	"about the role",
	"about this role",
	"what you'll do",
	"what you will do",
	"experience",
	"education",
	"salary",
	"compensation",
	"benefits",
	"location",
	"remote",
	"hybrid",
	"full-time",
	"full time",
	"part-time",
	"part time",
	"internship",
	"contract",
	"must have",
	"nice to have",
	"preferred",
	"skills",
}

// techTermRes award 2 points per distinct technology mentioned,
// regardless of how often. Word-bounded so "java" does not fire inside
// "javascript".
var techTermRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpython\b`),
	regexp.MustCompile(`(?i)\bjavascript\b`),
	regexp.MustCompile(`(?i)\bjava\b`),
	regexp.MustCompile(`(?i)\breact\b`),
	regexp.MustCompile(`(?i)\bnode(\.js)?\b`),
	regexp.MustCompile(`(?i)\bsql\b`),
	regexp.MustCompile(`(?i)\baws\b`),
	regexp.MustCompile(`(?i)\bdocker\b`),
}

// Structural and experience markers.
var (
	hyphenLineRe   = regexp.MustCompile(`(?m)^\s*-\s+\S`)
	numberedListRe = regexp.MustCompile(`(?m)^\s*\d+\.\s`)
	experienceRe   = regexp.MustCompile(`(?i)\d+\+?\s*(years?|yrs?)\s+(of\s+)?experience`)
	degreeRe       = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|degree|diploma)\b`)
)
