// Package noise classifies page nodes as extraction-irrelevant chrome:
// navigation, headers, footers, cookie banners, ad slots and similar
// structure that must never leak into an extracted job description.
package noise

import (
	"strings"

	"github.com/jobsift/jobsift/page"
)

// StructuralSelectors is the seed sweep: every node matching one of these
// selectors is added to the exclusion set before per-node classification
// begins. Ordered roughly by how often each fires on real job boards.
var StructuralSelectors = []string{
	"nav",
	"header",
	"footer",
	"aside",
	"script",
	"style",
	"iframe",
	"noscript",
	"button",
	`[role="navigation"]`,
	`[role="banner"]`,
	`[role="contentinfo"]`,
	`[class*="cookie"]`,
	`[id*="cookie"]`,
	`[class*="consent"]`,
	`[class*="banner"]`,
	`[class*="menu"]`,
	`[id*="menu"]`,
	`[class*="navbar"]`,
	`[class*="sidebar"]`,
	`[class*="advert"]`,
	`[class*="breadcrumb"]`,
	`[class*="footer"]`,
	`[id*="footer"]`,
	`a[href^="#"]`,
}

// Tags that are chrome wherever they appear.
var noiseTags = map[string]bool{
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"script":   true,
	"style":    true,
	"iframe":   true,
	"noscript": true,
	"button":   true,
}

// Class or id substrings that mark a container as chrome. Substring match
// is deliberate: sites name these things "cookieBanner", "site-footer",
// "nav-primary" and countless variants.
var noiseNameParts = []string{
	"cookie",
	"consent",
	"banner",
	"menu",
	"navbar",
	"sidebar",
	"advert",
	"breadcrumb",
	"footer",
	"popup",
	"modal",
}

// Phrases that expose short interactive controls the structural selectors
// miss: a bare div acting as a cookie button, a "Sign In" chip.
var Phrases = []string{
	"skip",
	"cookie",
	"accept",
	"decline",
	"sign in",
	"search",
}

// shortTextMax bounds the phrase check; longer text containing "cookie"
// may be a legitimate sentence of the posting.
const shortTextMax = 50

// ExclusionSet records node identities classified as noise within a
// single extraction call. Membership is monotonic: nodes are added, never
// removed, and exclusion propagates to all descendants.
type ExclusionSet struct {
	nodes map[*page.Node]struct{}
}

// NewExclusionSet returns an empty exclusion set.
func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{nodes: make(map[*page.Node]struct{})}
}

// Add marks a node as excluded.
func (s *ExclusionSet) Add(n *page.Node) {
	s.nodes[n] = struct{}{}
}

// Contains reports whether the node itself has been marked.
func (s *ExclusionSet) Contains(n *page.Node) bool {
	_, ok := s.nodes[n]
	return ok
}

// ContainsSelfOrAncestor reports whether the node or any of its ancestors
// has been marked. This is the propagation rule: children of excluded
// containers are excluded without re-evaluating selectors.
func (s *ExclusionSet) ContainsSelfOrAncestor(n *page.Node) bool {
	if s.Contains(n) {
		return true
	}
	found := false
	n.Ancestors(func(p *page.Node) bool {
		if s.Contains(p) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Len returns the number of marked nodes.
func (s *ExclusionSet) Len() int {
	return len(s.nodes)
}

// Seed sweeps the snapshot with StructuralSelectors and marks every
// match. Called once per extraction before per-node classification.
func Seed(snap *page.Snapshot, set *ExclusionSet) {
	for _, sel := range StructuralSelectors {
		for _, n := range snap.Select(sel) {
			set.Add(n)
		}
	}
}

// IsNoise reports whether the node is chrome. It is a pure predicate:
// the exclusion set is consulted, never modified.
func IsNoise(n *page.Node, set *ExclusionSet) bool {
	if set != nil && set.ContainsSelfOrAncestor(n) {
		return true
	}
	if noiseTags[n.Tag] {
		return true
	}
	for _, part := range noiseNameParts {
		if n.HasClassOrID(part) {
			return true
		}
	}
	if n.TextLen() < shortTextMax {
		lower := strings.ToLower(n.Text)
		for _, p := range Phrases {
			if strings.Contains(lower, p) {
				return true
			}
		}
	}
	return false
}
