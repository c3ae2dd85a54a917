package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSortRatioIsOrderInsensitive(t *testing.T) {
	assert.Equal(t, 100, TokenSortRatio("hollywood brown", "brown hollywood"))
	assert.Equal(t, 100, TokenSortRatio("justin jefferson", "justin jefferson"))
}

func TestTokenSortRatioRange(t *testing.T) {
	pairs := [][2]string{
		{"justin jefferson", "justin jefferson"},
		{"marquise brown", "hollywood brown"},
		{"aaron rodgers", "zzzzz"},
		{"", ""},
	}
	for _, pair := range pairs {
		score := TokenSortRatio(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestTokenSortRatioNicknameScoresBelowThreshold(t *testing.T) {
	// "Marquise Brown" vs "Hollywood Brown" is the canonical nickname case:
	// fuzzy scoring alone must not claim it, leaving it to the structural tier.
	assert.Less(t, TokenSortRatio("marquise brown", "hollywood brown"), FuzzyThreshold)
}
