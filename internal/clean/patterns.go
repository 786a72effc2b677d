package clean

import "regexp"

// The cleaner is tuned entirely through the tables in this file. Every
// entry is independently testable; behavior changes should be made by
// editing a table, not by adding branches to the pass logic.

// blockPatterns strip known boilerplate blocks wholesale before any
// line-level work happens. Tried in order; all matches are removed.
var blockPatterns = []*regexp.Regexp{
	// Cookie notices, bounded by the lead-in phrase and the consent
	// controls so a legitimate sentence mentioning cookies survives.
	regexp.MustCompile(`(?is)\bthis (?:web\s?)?site uses\b[^\n]{0,200}\bcookies\b.{0,500}?(?:accept all cookies|accept all|accept|decline all|decline|privacy notice)`),
	regexp.MustCompile(`(?is)\bwe (?:and our partners )?use cookies\b.{0,500}?(?:accept all cookies|accept all|accept|decline all|decline|manage preferences|privacy notice)`),
	// Generic navigation headers.
	regexp.MustCompile(`(?i)\bskip to main content\b`),
	regexp.MustCompile(`(?i)\bsign in\s+search for jobs\b`),
	regexp.MustCompile(`(?i)\bcareers home\s+(?:sign in|search)\b`),
	// Footer blocks: copyright lines and legal boilerplate.
	regexp.MustCompile(`(?i)©\s*\d{4}[^\n]*`),
	regexp.MustCompile(`(?i)\ball rights reserved\.?`),
	regexp.MustCompile(`(?i)\bby using this site you agree[^\n]*`),
}

// residualCookieRe catches cookie-notice fragments that survive the block
// patterns, matched per line.
var residualCookieRe = regexp.MustCompile(`(?i)(use of cookies|we use cookies|cookie (policy|preferences|settings)|enhance your browsing experience)`)

// navChromePhrases are dropped only on exact (case-insensitive) match, so
// prose that happens to contain one is untouched.
var navChromePhrases = map[string]bool{
	"skip to main content":   true,
	"sign in":                true,
	"search for jobs":        true,
	"careers home":           true,
	"view all jobs":          true,
	"back to search results": true,
	"share this job":         true,
	"save job":               true,
	"saved jobs":             true,
	"my applications":        true,
	"job alerts":             true,
}

// metadataLabelRes match the label half of label/value pairs job boards
// render as two stacked lines ("locations" / "San Francisco, CA"). The
// line after a label is dropped too, unless it reads like prose.
var metadataLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^locations?$`),
	regexp.MustCompile(`(?i)^time type$`),
	regexp.MustCompile(`(?i)^posted on$`),
	regexp.MustCompile(`(?i)^posted .{0,30} ago$`),
	regexp.MustCompile(`(?i)^job requisition id$`),
	regexp.MustCompile(`(?i)^requisition (id|number)$`),
	regexp.MustCompile(`(?i)^remote type$`),
	regexp.MustCompile(`(?i)^job (family|type|category)$`),
	regexp.MustCompile(`(?i)^employment type$`),
	regexp.MustCompile(`(?i)^country:`),
	regexp.MustCompile(`(?i)^state:`),
	regexp.MustCompile(`(?i)^city:`),
}

// The carve-out for the value-dropping rule: a line that opens like a
// company pitch ("At Acme,") or has the shape of running prose (three or
// more lowercase words) is kept even right after a metadata label.
var (
	proseOpenerRe = regexp.MustCompile(`^At [A-Z][a-z]+,`)
	proseShapeRe  = regexp.MustCompile(`^(?:[a-z]+\s+){2}[a-z]+`)
)

// titleRepeatRe matches the job-title echo lines boards repeat above the
// description, e.g. "2025 Software Engineering Intern (Summer)". Applied
// only under titleRepeatMax characters.
var titleRepeatRe = regexp.MustCompile(`(?i)\b20\d{2}\b.*\bintern(ship)?\b.*\(`)

const titleRepeatMax = 100

// addressCodeRe matches office-code address lines like "CA162: 123 Main
// Street". Applied only under addressCodeMax characters.
var addressCodeRe = regexp.MustCompile(`^[A-Z]{2}\d+:`)

const addressCodeMax = 100

// phrases shared with the noise classifier; a short line containing one
// of these is interactive chrome, not content.
var noisePhrases = []string{"skip", "cookie", "accept", "decline", "sign in", "search"}

const shortNoiseLineMax = 20

// sectionHeaderRes locate the first line of the true description. Tried
// in document order against each line; the first hit wins.
var sectionHeaderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^about (us|you|the (role|job|team|company|position|opportunity))\b`),
	regexp.MustCompile(`(?i)^(the )?(role|position|job) (summary|description|overview)\b`),
	regexp.MustCompile(`(?i)^job description\b`),
	regexp.MustCompile(`(?i)^(overview|summary|introduction)[:.]?$`),
	regexp.MustCompile(`(?i)^(key |your )?responsibilities\b`),
	regexp.MustCompile(`(?i)^what you('|’)?ll (do|be doing)\b`),
	regexp.MustCompile(`(?i)^what you will (do|be doing)\b`),
	regexp.MustCompile(`(?i)^who (we are|you are)\b`),
	regexp.MustCompile(`(?i)^(minimum |basic |preferred )?qualifications\b`),
	regexp.MustCompile(`^At [A-Z][a-z]+, the`),
}

// companyOpenerRe is the secondary start heuristic: the extremely common
// "At Acme, we ..." posting opener. Only trusted on lines longer than
// companyOpenerMin.
var companyOpenerRe = regexp.MustCompile(`^At [A-Z][a-z]+(,|\.|$)`)

const (
	companyOpenerMin  = 50
	startScanWindow   = 30
	startScanMinLen   = 100
	startScanMinLines = 10
)

// footerRes locate the first line of trailing legal boilerplate. Only the
// last endScanWindow lines are scanned.
var footerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)is an equal opportunity`),
	regexp.MustCompile(`(?i)equal (employment )?opportunity employer`),
	regexp.MustCompile(`(?i)^the salary range for this (role|position)`),
	regexp.MustCompile(`(?i)^this position requires .{0,40}security clearance`),
	regexp.MustCompile(`(?i)dcsa consolidated adjudication`),
	regexp.MustCompile(`(?i)\be-?verify\b`),
	regexp.MustCompile(`^©`),
	regexp.MustCompile(`(?i)all rights reserved`),
	regexp.MustCompile(`(?i)^accommodations? (request|for applicants)`),
}

const endScanWindow = 50

// Final-sweep tables: residual short noise inside the detected content
// boundaries.
var finalNoiseWords = []string{
	"apply", "locations", "time type", "posted",
	"decline", "accept", "english", "sign", "search",
}

const finalNoiseLineMax = 10

var (
	bulletRe     = regexp.MustCompile(`^([-•*‣◦·]|\d+\.)\s`)
	pageLoadedRe = regexp.MustCompile(`(?i)page is loaded`)
)
