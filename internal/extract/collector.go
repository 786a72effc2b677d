package extract

import (
	"github.com/jobsift/jobsift/internal/clean"
	"github.com/jobsift/jobsift/internal/noise"
	"github.com/jobsift/jobsift/page"
)

// Candidate is a provisional extraction result competing for selection.
type Candidate struct {
	Node        *page.Node
	RawText     string
	CleanedText string
	Length      int
	Score       float64
}

// Collect sweeps the snapshot with the candidate selector table and
// returns one scored Candidate per surviving node, in collection order.
//
// A node survives if it is not noise, its raw text length falls strictly
// inside (minRawLen, maxRawLen), and its cleaned text is at least
// minCleanedLen. Nested selectors matching overlapping nodes may produce
// duplicate text; that is tolerated and resolved by ranking, which picks
// a single best instance.
func Collect(snap *page.Snapshot, excl *noise.ExclusionSet) []Candidate {
	var out []Candidate
	for _, sel := range candidateSelectors {
		for _, n := range snap.Select(sel) {
			if noise.IsNoise(n, excl) {
				continue
			}
			rawLen := n.TextLen()
			if rawLen <= minRawLen || rawLen >= maxRawLen {
				continue
			}
			cleaned := clean.Clean(n.Text)
			cleanedLen := len([]rune(cleaned))
			if cleanedLen < minCleanedLen {
				// Cleaning revealed the block was mostly noise.
				continue
			}
			out = append(out, Candidate{
				Node:        n,
				RawText:     n.Text,
				CleanedText: cleaned,
				Length:      cleanedLen,
				Score:       Score(cleaned),
			})
		}
	}
	return out
}
