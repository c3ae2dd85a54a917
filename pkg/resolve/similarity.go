package resolve

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer computes a similarity score between two comparison keys on a 0-100
// scale. Implementations must be token-order insensitive: "brown hollywood"
// and "hollywood brown" should score 100. Any edit-distance based scorer
// satisfying that contract is substitutable.
type Scorer func(a, b string) int

// TokenSortRatio is the default Scorer. It sorts the tokens of both inputs
// before comparing, so word order never affects the score.
func TokenSortRatio(a, b string) int {
	return fuzzy.TokenSortRatio(a, b)
}
