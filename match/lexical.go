package match

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"github.com/culinate/dishfinder/core"
)

// exactStrategy matches records whose normalized name equals the query.
type exactStrategy struct{}

var _ Strategy = (*exactStrategy)(nil)

func (s *exactStrategy) Kind() core.MatchKind {
	return core.MatchExact
}

func (s *exactStrategy) Score(q *Query, record *core.DishRecord) (float64, bool) {
	if Normalize(record.Name) == q.Text {
		return 1.0, true
	}
	return 0, false
}

// partialStrategy matches when the query is a substring of the dish name or
// vice versa. The score grows with how much of the longer string the
// shorter one covers and stays below 1.0 for proper substrings.
type partialStrategy struct{}

var _ Strategy = (*partialStrategy)(nil)

func (s *partialStrategy) Kind() core.MatchKind {
	return core.MatchPartial
}

func (s *partialStrategy) Score(q *Query, record *core.DishRecord) (float64, bool) {
	name := Normalize(record.Name)
	if name == "" || (!strings.Contains(name, q.Text) && !strings.Contains(q.Text, name)) {
		return 0, false
	}

	nameLen := utf8.RuneCountInString(name)
	queryLen := utf8.RuneCountInString(q.Text)
	short, long := nameLen, queryLen
	if short > long {
		short, long = long, short
	}

	return 0.7 + 0.2*float64(short)/float64(long), true
}

// fuzzyStrategy matches typo'd queries using Levenshtein similarity.
type fuzzyStrategy struct {
	threshold float64
}

var _ Strategy = (*fuzzyStrategy)(nil)

func (s *fuzzyStrategy) Kind() core.MatchKind {
	return core.MatchFuzzy
}

func (s *fuzzyStrategy) Score(q *Query, record *core.DishRecord) (float64, bool) {
	name := Normalize(record.Name)
	if name == "" {
		return 0, false
	}

	similarity, err := edlib.StringsSimilarity(q.Text, name, edlib.Levenshtein)
	if err != nil {
		return 0, false
	}

	score := float64(similarity)
	if score <= s.threshold {
		return 0, false
	}
	return score, true
}

// keywordStrategy matches on word overlap between the query and the dish
// name plus description.
type keywordStrategy struct {
	threshold float64
}

var _ Strategy = (*keywordStrategy)(nil)

func (s *keywordStrategy) Kind() core.MatchKind {
	return core.MatchKeyword
}

func (s *keywordStrategy) Score(q *Query, record *core.DishRecord) (float64, bool) {
	if len(q.Words) == 0 {
		return 0, false
	}

	docWords := tokenize(record.Name + " " + record.Description)
	if len(docWords) == 0 {
		return 0, false
	}

	docSet := wordSet(docWords)
	common := 0
	for _, word := range q.Words {
		if docSet[word] {
			common++
		}
	}

	overlap := float64(common) / float64(max(len(q.Words), len(docWords)))
	if overlap <= s.threshold {
		return 0, false
	}
	return 0.8 * overlap, true
}
