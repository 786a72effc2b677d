// Package extract orchestrates job-description extraction over a page
// snapshot: site-specific selectors first, then generic candidate
// collection, scoring and ranking, then a chain of decreasingly precise
// fallbacks. The pipeline never fails with an error; the worst case is an
// empty string, which the caller interprets as extraction failure.
package extract

import (
	"sort"
	"strings"

	"github.com/jobsift/jobsift/internal/clean"
	"github.com/jobsift/jobsift/internal/noise"
	"github.com/jobsift/jobsift/page"
)

// Stage identifies which strategy produced the extraction output.
type Stage int

const (
	StageSiteSpecific Stage = iota
	StageGeneric
	StageKeyword
	StageMainContent
	StageBody
)

func (s Stage) String() string {
	switch s {
	case StageSiteSpecific:
		return "site_specific"
	case StageGeneric:
		return "generic"
	case StageKeyword:
		return "keyword_fallback"
	case StageMainContent:
		return "main_content_fallback"
	case StageBody:
		return "body_fallback"
	default:
		return "unknown"
	}
}

// Outcome carries the extracted text and the stage that produced it.
type Outcome struct {
	Text  string
	Stage Stage
}

// Options controls pipeline behavior.
type Options struct {
	// SiteSpecific enables the hostname-routed extractors. Disabled in
	// tests that exercise the generic path directly.
	SiteSpecific bool
}

// Run executes the extraction state machine against the snapshot. The
// exclusion set is seeded once from the structural noise sweep and shared
// by every stage of the call; it never survives the call.
func Run(snap *page.Snapshot, opts Options) Outcome {
	if opts.SiteSpecific {
		if text, ok := trySiteSpecific(snap); ok {
			return Outcome{Text: text, Stage: StageSiteSpecific}
		}
	}

	excl := noise.NewExclusionSet()
	noise.Seed(snap, excl)

	if text, ok := genericExtract(snap, excl); ok {
		return Outcome{Text: text, Stage: StageGeneric}
	}
	if text := keywordFallback(snap, excl); text != "" {
		return Outcome{Text: text, Stage: StageKeyword}
	}
	if text := mainContentFallback(snap, excl); text != "" {
		return Outcome{Text: text, Stage: StageMainContent}
	}
	return Outcome{Text: bodyFallback(snap), Stage: StageBody}
}

// genericExtract collects, ranks, and accepts the top candidate if it
// clears the score threshold. The sort is stable so equal scores keep
// collection order, and the winner gets one more cleaning pass.
func genericExtract(snap *page.Snapshot, excl *noise.ExclusionSet) (string, bool) {
	cands := Collect(snap, excl)
	if len(cands) == 0 {
		return "", false
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
	if cands[0].Score <= scoreThreshold {
		return "", false
	}
	return clean.Clean(cands[0].CleanedText), true
}

// keywordFallback aggregates every paragraph-like node that mentions
// job vocabulary, deduplicated by exact text, joined with blank lines and
// capped before a final clean.
func keywordFallback(snap *page.Snapshot, excl *noise.ExclusionSet) string {
	seen := make(map[string]struct{})
	var parts []string
	for _, n := range snap.Select("p, li, div") {
		if noise.IsNoise(n, excl) {
			continue
		}
		text := n.Text
		if len([]rune(text)) <= keywordParaMinLen || !containsVocabTerm(text) {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return ""
	}
	joined := capText(strings.Join(parts, "\n\n"), fallbackCap)
	return clean.Clean(joined)
}

// mainContentFallback looks for a main/article/role=main container,
// preferring a nested content- or description-classed sub-section that
// cleans long enough and scores above the threshold, then falling back to
// the container's own text.
func mainContentFallback(snap *page.Snapshot, excl *noise.ExclusionSet) string {
	var container *page.Node
	for _, sel := range []string{"main", "article", `[role="main"]`} {
		if nodes := snap.Select(sel); len(nodes) > 0 {
			container = nodes[0]
			break
		}
	}
	if container == nil {
		return ""
	}

	for _, sel := range []string{`[class*="content"]`, `[class*="description"]`} {
		for _, n := range snap.Select(sel) {
			if n != container && !n.IsDescendantOf(container) {
				continue
			}
			cleaned := clean.Clean(n.Text)
			if len([]rune(cleaned)) > mainContentMinLen && Score(cleaned) > scoreThreshold {
				return cleaned
			}
		}
	}

	if container.TextLen() > mainContentMinLen {
		return capText(clean.Clean(container.Text), fallbackCap)
	}
	return ""
}

// bodyFallback is the last resort: whole-document text with the first
// and last 20% of lines dropped, on the theory that page edges are
// navigation and footer. May return an empty string; that is the
// pipeline's failure signal.
func bodyFallback(snap *page.Snapshot) string {
	lines := strings.Split(snap.DocumentText(), "\n")
	trim := len(lines) / 5
	if len(lines)-2*trim > 0 {
		lines = lines[trim : len(lines)-trim]
	}
	return capText(clean.Clean(strings.Join(lines, "\n")), fallbackCap)
}

func capText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
