package question

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultThreshold is the highest normalized distance still reported as a match.
const DefaultThreshold = 0.5

// exact matches still take part in score products
const epsilon = 2.220446049250313e-16

// Match is a record found by the Matcher together with its score,
// 0 being an exact hit.
type Match struct {
	Record Record
	Score  float64
}

// Matcher ranks records by approximate similarity of a query to the values
// of a fixed set of fields.
type Matcher struct {
	keys      []string
	threshold float64
}

func NewMatcher(threshold float64, keys ...string) *Matcher {
	return &Matcher{
		keys:      keys,
		threshold: threshold,
	}
}

// Search returns the records whose fields match query, best match first.
// Records with equal scores keep their input order.
func (m *Matcher) Search(records []Record, query string) []Match {
	pattern := []rune(strings.ToLower(query))
	if len(pattern) == 0 {
		return nil
	}

	var matches []Match
	for _, rec := range records {
		score, ok := m.scoreRecord(rec, pattern)
		if !ok {
			continue
		}
		matches = append(matches, Match{Record: rec, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})

	return matches
}

// scoreRecord multiplies the weighted scores of every matching key, so a
// record hit in several fields ranks above one hit in a single field.
// Keys share the weight equally.
func (m *Matcher) scoreRecord(rec Record, pattern []rune) (float64, bool) {
	weight := 1 / float64(len(m.keys))
	total := 1.0
	matched := false

	for _, key := range m.keys {
		score, ok := m.scoreValue(rec[key], pattern, weight)
		if !ok {
			continue
		}
		total *= score
		matched = true
	}

	return total, matched
}

// scoreValue returns the best weighted score over the texts of v. Only
// distances within the threshold count as a hit. A hit in a short field
// scores better than the same hit in a long one, so a field equal to the
// query beats a field that merely contains it.
func (m *Matcher) scoreValue(v any, pattern []rune, weight float64) (float64, bool) {
	best, matched := 1.0, false

	for _, text := range searchableText(v) {
		distance := float64(substringDistance(pattern, []rune(strings.ToLower(text)))) / float64(len(pattern))
		if distance > m.threshold {
			continue
		}
		if distance == 0 {
			distance = epsilon
		}

		score := math.Pow(distance, weight*fieldNorm(text))
		if !matched || score < best {
			best, matched = score, true
		}
	}

	return best, matched
}

// fieldNorm is 1/sqrt(number of words), rounded to three decimals.
func fieldNorm(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 1
	}
	return math.Round(1000/math.Sqrt(float64(words))) / 1000
}

func searchableText(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []string:
		return val
	case []any:
		var out []string
		for _, item := range val {
			out = append(out, searchableText(item)...)
		}
		return out
	case float64, float32, int, int64, bool:
		return []string{fmt.Sprint(val)}
	default:
		return nil
	}
}

// substringDistance is the smallest edit distance between pattern and any
// substring of text. Where the substring starts in text does not matter.
func substringDistance(pattern, text []rune) int {
	col := make([]int, len(pattern)+1)
	for i := range col {
		col[i] = i
	}
	best := col[len(pattern)]

	for _, tc := range text {
		diag := col[0]
		col[0] = 0
		for i := 1; i <= len(pattern); i++ {
			cost := 1
			if pattern[i-1] == tc {
				cost = 0
			}
			prev := col[i]
			col[i] = min(prev+1, col[i-1]+1, diag+cost)
			diag = prev
		}
		best = min(best, col[len(pattern)])
	}

	return best
}
