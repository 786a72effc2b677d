// Package clean turns a raw text blob scraped off a job page into the
// description itself. It runs five ordered passes: block pattern removal,
// line-level filtering, start-boundary detection, end-boundary detection
// and a final noise sweep.
//
// Cleaning only ever removes text, so len(Clean(t)) <= len(t), and a
// second pass finds nothing left to remove: Clean(Clean(t)) == Clean(t).
// Unicode normalization is the snapshot's job, not the cleaner's; keeping
// the cleaner purely subtractive is what makes both properties hold.
package clean

import "strings"

// Clean runs the full five-pass pipeline.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = removeBlockPatterns(text)
	lines := filterLines(strings.Split(text, "\n"))
	start := startBoundary(lines)
	end := endBoundary(lines)
	if end < start {
		end = start
	}
	lines = finalSweep(lines[start:end])
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Pass 1: strip known boilerplate blocks wholesale.
func removeBlockPatterns(text string) string {
	for _, re := range blockPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

// Pass 2: trim every line and drop the ones that are chrome, metadata
// labels, or the values that follow metadata labels.
func filterLines(raw []string) []string {
	out := make([]string, 0, len(raw))
	skipNext := false
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			// Blank lines do not reset the label/value rule: label and
			// value often arrive as separate paragraphs.
			continue
		}
		if skipNext {
			skipNext = false
			if !looksLikeProse(line) {
				continue
			}
		}
		if dropLine(line) {
			continue
		}
		if isMetadataLabel(line) {
			// The label's value usually sits on the next line.
			skipNext = true
			continue
		}
		out = append(out, line)
	}
	return out
}

func dropLine(line string) bool {
	if residualCookieRe.MatchString(line) {
		return true
	}
	if navChromePhrases[strings.ToLower(line)] {
		return true
	}
	if line == "Apply" || line == "APPLY" {
		return true
	}
	if isTitleRepeat(line) || isAddressCode(line) {
		return true
	}
	if len([]rune(line)) < shortNoiseLineMax && containsAny(line, noisePhrases) {
		return true
	}
	return false
}

func isMetadataLabel(line string) bool {
	for _, re := range metadataLabelRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func looksLikeProse(line string) bool {
	return proseOpenerRe.MatchString(line) || proseShapeRe.MatchString(line)
}

func isTitleRepeat(line string) bool {
	return len([]rune(line)) < titleRepeatMax && titleRepeatRe.MatchString(line)
}

func isAddressCode(line string) bool {
	return len([]rune(line)) < addressCodeMax && addressCodeRe.MatchString(line)
}

func containsAny(line string, phrases []string) bool {
	lower := strings.ToLower(line)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Pass 3: find where the description starts. Section headers win; then
// the "At Acme, we ..." opener; then the first substantial line near the
// top of a long document.
func startBoundary(lines []string) int {
	for i, line := range lines {
		for _, re := range sectionHeaderRes {
			if re.MatchString(line) {
				return i
			}
		}
	}
	for i, line := range lines {
		if len([]rune(line)) > companyOpenerMin && companyOpenerRe.MatchString(line) {
			return i
		}
	}
	if len(lines) > startScanMinLines {
		limit := min(startScanWindow, len(lines))
		for i := 0; i < limit; i++ {
			line := lines[i]
			if len([]rune(line)) <= startScanMinLen {
				continue
			}
			if isChromeLike(line) || isTitleRepeat(line) || isAddressCode(line) {
				continue
			}
			return i
		}
	}
	return 0
}

func isChromeLike(line string) bool {
	return residualCookieRe.MatchString(line) ||
		navChromePhrases[strings.ToLower(line)] ||
		pageLoadedRe.MatchString(line)
}

// Pass 4: find where the description ends. The last endScanWindow lines
// are scanned back to front; the earliest legal-boilerplate line found in
// that window truncates everything from itself on. Legal footers read
// top-down (EEO statement, then salary disclosure, then accommodations),
// so truncating at the earliest marker removes the whole block.
func endBoundary(lines []string) int {
	end := len(lines)
	lo := len(lines) - endScanWindow
	if lo < 0 {
		lo = 0
	}
	for i := len(lines) - 1; i >= lo; i-- {
		if matchesFooter(lines[i]) {
			end = i
		}
	}
	return end
}

func matchesFooter(line string) bool {
	for _, re := range footerRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// Pass 5: sweep residual short noise inside the detected boundaries.
func finalSweep(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len([]rune(line)) < finalNoiseLineMax &&
			containsAny(line, finalNoiseWords) &&
			!bulletRe.MatchString(line) {
			continue
		}
		if pageLoadedRe.MatchString(line) || isTitleRepeat(line) || isAddressCode(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}
