package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsift/jobsift/internal/noise"
	"github.com/jobsift/jobsift/page"
)

const richDescription = "About the Role: We are looking for a backend engineer to join the platform team. " +
	"Responsibilities: design APIs, operate production services, review code and mentor engineers. " +
	"Qualifications: 3+ years of experience with Python, AWS and Docker, plus strong written communication. " +
	"We offer competitive compensation, benefits, and flexible remote work arrangements. " +
	"The team values ownership, craft, and sustained, predictable delivery over heroics. " +
	"You will partner with product managers and designers to ship meaningful improvements every week. " +
	"Our stack includes PostgreSQL, Redis and Kubernetes, deployed across multiple regions."

func collectFrom(t *testing.T, html string) []Candidate {
	t.Helper()
	snap, err := page.FromHTML(html, "")
	require.NoError(t, err)
	excl := noise.NewExclusionSet()
	noise.Seed(snap, excl)
	return Collect(snap, excl)
}

func TestCollectAcceptsDescription(t *testing.T) {
	html := fmt.Sprintf(`<body><div class="job-description">%s</div></body>`, richDescription)
	cands := collectFrom(t, html)

	require.NotEmpty(t, cands)
	first := cands[0]
	assert.Contains(t, first.CleanedText, "About the Role:")
	assert.Equal(t, len([]rune(first.CleanedText)), first.Length)
	assert.LessOrEqual(t, len(first.CleanedText), len(first.RawText), "cleaning only removes")
	assert.Greater(t, first.Score, float64(scoreThreshold))
}

func TestCollectRejectsShortBlock(t *testing.T) {
	// 50 characters: rejected before scoring by the raw length floor.
	short := strings.Repeat("s", 50)
	html := fmt.Sprintf(`<body><div class="job-description">%s</div></body>`, short)
	assert.Empty(t, collectFrom(t, html))
}

func TestCollectRawLengthBoundary(t *testing.T) {
	// Exactly 300 raw characters is outside the (300, 15000) window.
	html := fmt.Sprintf(`<body><div class="job-description">%s</div></body>`, strings.Repeat("q", 300))
	assert.Empty(t, collectFrom(t, html))

	// 301 clears the floor; the candidate exists even though it scores
	// poorly.
	html = fmt.Sprintf(`<body><div class="job-description">%s</div></body>`, strings.Repeat("q", 301))
	cands := collectFrom(t, html)
	require.NotEmpty(t, cands)
	assert.Negative(t, cands[0].Score)
}

func TestCollectRejectsOversizedBlock(t *testing.T) {
	html := fmt.Sprintf(`<body><div class="job-description">%s</div></body>`, strings.Repeat("q", 15000))
	assert.Empty(t, collectFrom(t, html))
}

func TestCollectExcludesNoise(t *testing.T) {
	html := fmt.Sprintf(`<body><nav><div class="job-description">%s</div></nav></body>`, richDescription)
	assert.Empty(t, collectFrom(t, html), "a description inside an excluded nav is not a candidate")
}

func TestCollectDiscardsWhenCleaningGuts(t *testing.T) {
	// Raw length clears the floor, but after cleaning the block is
	// almost entirely metadata labels and chrome.
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("locations<br>Remote Office Building Site ")
		b.WriteString(fmt.Sprintf("%d", i))
		b.WriteString("<br>")
	}
	html := fmt.Sprintf(`<body><div class="job-description">%s</div></body>`, b.String())
	assert.Empty(t, collectFrom(t, html))
}
