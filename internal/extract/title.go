package extract

import (
	"regexp"
	"strings"

	"github.com/jobsift/jobsift/page"
)

// titleSelectors locate the posting headline, board-specific hooks first.
var titleSelectors = []string{
	`[data-automation-id="jobPostingHeader"]`,
	`.posting-headline h2`,
	`.app-title`,
	`h1`,
}

// titleSeparatorRe splits "Role at Company" / "Role - Company" /
// "Role | Company" headline shapes into their two halves.
var titleSeparatorRe = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|[-–—|])\s+(.+)$`)

const titleMaxLen = 120

// Title returns the best-effort job title and company name from the
// posting headline. Either or both may be empty; extraction of the
// description never depends on this.
func Title(snap *page.Snapshot) (title, company string) {
	for _, sel := range titleSelectors {
		for _, n := range snap.Select(sel) {
			text := strings.TrimSpace(n.Text)
			if text == "" || len([]rune(text)) > titleMaxLen {
				continue
			}
			if m := titleSeparatorRe.FindStringSubmatch(text); m != nil {
				return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			}
			return text, ""
		}
	}
	return "", ""
}
