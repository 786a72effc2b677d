package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// neutral builds text of exactly n characters with no vocabulary,
// structural or tech signals, isolating the length band.
func neutral(n int) string {
	return strings.Repeat("x", n)
}

func TestScoreLengthBands(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{"just below preferred band", 499, -10},
		{"preferred band lower edge", 500, 30},
		{"preferred band upper edge", 5000, 30},
		{"just above preferred band", 5001, 10},
		{"acceptable band upper edge", 10000, 10},
		{"too long", 10001, -20},
		{"far too short", 10, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(neutral(tt.n)))
		})
	}
}

func TestScoreKeywordDensity(t *testing.T) {
	base := neutral(600)
	// Each occurrence counts, not each distinct term.
	assert.Equal(t, Score(base)+10, Score(base+" responsibilities responsibilities"))
	assert.Equal(t, Score(base)+5, Score(base+" qualifications"))
}

func TestScoreStructuralMarkers(t *testing.T) {
	base := neutral(600)
	assert.Equal(t, Score(base)+10, Score(base+"\n• first\n• second"))
	assert.Equal(t, Score(base)+10, Score(base+"\n- hyphen item"))
	assert.Equal(t, Score(base)+10, Score(base+"\n1. numbered item"))

	paras := base + strings.Repeat("\n\npara", 4)
	assert.Equal(t, Score(base)+5, Score(paras))
}

func TestScoreExperienceAndDegree(t *testing.T) {
	base := neutral(600)
	// "experience" is also a vocabulary term, so the pattern bonus rides
	// on top of one keyword occurrence.
	assert.Equal(t, Score(base)+15, Score(base+" 3+ years of experience"))
	assert.Equal(t, Score(base)+15, Score(base+" 5 yrs experience"))
	assert.Equal(t, Score(base)+5, Score(base+" bachelor"))
}

func TestScoreTechStackDistinct(t *testing.T) {
	base := neutral(600)
	assert.Equal(t, Score(base)+2, Score(base+" docker"))
	assert.Equal(t, Score(base)+2, Score(base+" docker docker docker"))
	assert.Equal(t, Score(base)+4, Score(base+" docker aws"))
}

func TestScoreNegativeTotalPossible(t *testing.T) {
	assert.Negative(t, Score(neutral(20)))
}

func TestContainsVocabTerm(t *testing.T) {
	assert.True(t, containsVocabTerm("Key RESPONSIBILITIES of the role"))
	assert.False(t, containsVocabTerm("completely unrelated prose"))
}
