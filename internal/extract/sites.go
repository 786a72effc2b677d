package extract

import (
	"strings"

	"github.com/jobsift/jobsift/internal/clean"
	"github.com/jobsift/jobsift/page"
)

// siteRule pairs a hostname fragment with the selectors known to hold
// the posting body on that job board, in priority order.
type siteRule struct {
	host      string
	selectors []string
}

// siteRules covers the three supported boards. Workday tenants live on
// per-company subdomains of myworkdayjobs.com; Greenhouse and Lever host
// under their own domains.
var siteRules = []siteRule{
	{
		host: "myworkdayjobs.com",
		selectors: []string{
			`[data-automation-id="jobPostingDescription"]`,
			`[data-automation-id="job-posting-details"]`,
		},
	},
	{
		host: "greenhouse.io",
		selectors: []string{
			`#content .opening`,
			`#content`,
			`.opening .content`,
			`#app_body .section-wrapper`,
		},
	},
	{
		host: "lever.co",
		selectors: []string{
			`[data-qa="job-description"]`,
			`.posting .section-wrapper`,
			`.posting`,
		},
	},
}

// trySiteSpecific returns the cleaned text of the first non-empty match
// for the board the hostname belongs to. Only the first matching rule is
// consulted; a miss there falls through to the generic pipeline.
func trySiteSpecific(snap *page.Snapshot) (string, bool) {
	for _, rule := range siteRules {
		if !strings.Contains(snap.Hostname, rule.host) {
			continue
		}
		for _, sel := range rule.selectors {
			for _, n := range snap.Select(sel) {
				if n.Text == "" {
					continue
				}
				if cleaned := clean.Clean(n.Text); cleaned != "" {
					return cleaned, true
				}
			}
		}
		return "", false
	}
	return "", false
}
