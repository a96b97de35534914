package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const partialScale = 0.9

// Similarity scores two lowercase strings on a 0..100 scale. It is the best
// of a plain edit ratio, a token-order-insensitive ratio and, when one string
// is much longer than the other, a scaled best-substring ratio.
func Similarity(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	best := ratio(a, b)
	if ts := ratio(tokenSort(a), tokenSort(b)); ts > best {
		best = ts
	}

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	long, short := max(la, lb), min(la, lb)
	if float64(long)/float64(short) >= 1.5 {
		if p := partialRatio(a, b) * partialScale; p > best {
			best = p
		}
	}

	return int(math.Round(best))
}

func ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := max(la, lb)
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longest))
}

func tokenSort(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// partialRatio slides the shorter string across the longer one and keeps the
// best window ratio.
func partialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		if r := ratio(string(ra), string(rb[i:i+len(ra)])); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}
