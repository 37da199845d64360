package chat

import (
	"regexp"
	"strings"

	"autocart-server/store-api/internal/domain/catalog"
)

const defaultFuzzyThreshold = 3

var (
	nonAlnumRe      = regexp.MustCompile(`[^a-z0-9]`)
	nonAlnumSpaceRe = regexp.MustCompile(`[^a-z0-9 ]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	nonWordSplitRe  = regexp.MustCompile(`\W+`)
	stopwordRe      = regexp.MustCompile(`\b(do|you|have|can|please|find|show|me|any|a|an|the)\b`)
)

// SearchByKeyword returns products whose name or any tag contains at least
// one whitespace-separated token of the query.
func SearchByKeyword(query string, products []*catalog.Product) []*catalog.Product {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	matched := make([]*catalog.Product, 0)
	for _, p := range products {
		name := strings.ToLower(p.Name)
		tags := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			tags[i] = strings.ToLower(tag)
		}

		hit := false
		for _, word := range words {
			if strings.Contains(name, word) {
				hit = true
				break
			}
			for _, tag := range tags {
				if strings.Contains(tag, word) {
					hit = true
					break
				}
			}
			if hit {
				break
			}
		}
		if hit {
			matched = append(matched, p)
		}
	}
	return matched
}

// FuzzyMatch returns products whose lowercased name contains the query or
// sits within threshold edits of it.
func FuzzyMatch(query string, products []*catalog.Product, threshold int) []*catalog.Product {
	q := strings.ToLower(query)
	matched := make([]*catalog.Product, 0)
	for _, p := range products {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, q) || EditDistance(q, name) <= threshold {
			matched = append(matched, p)
		}
	}
	return matched
}

// NormalizedFuzzyMatch is FuzzyMatch with whitespace and punctuation
// stripped from both sides first, so "wire less mouse" still finds
// "Wireless Mouse".
func NormalizedFuzzyMatch(query string, products []*catalog.Product, threshold int) []*catalog.Product {
	q := normalizeTight(query)
	matched := make([]*catalog.Product, 0)
	for _, p := range products {
		name := normalizeTight(p.Name)
		if strings.Contains(name, q) || EditDistance(q, name) <= threshold {
			matched = append(matched, p)
		}
	}
	return matched
}

// RefinedFuzzyMatch is the most aggressive tier: collapses whitespace,
// strips punctuation, removes filler stopwords, and matches against both
// the product name and its tags.
func RefinedFuzzyMatch(query string, products []*catalog.Product, threshold int) []*catalog.Product {
	q := normalizeLoose(query)
	matched := make([]*catalog.Product, 0)
	for _, p := range products {
		name := normalizeLoose(p.Name)
		if strings.Contains(name, q) || EditDistance(q, name) <= threshold {
			matched = append(matched, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(normalizeLoose(tag), q) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// ExtractCategory resolves a known category name mentioned in the query.
// Returns the canonical category spelling from the catalog.
func ExtractCategory(query string, categories []string) (string, bool) {
	lower := strings.ToLower(query)
	cleaned := strings.Split(nonAlnumSpaceRe.ReplaceAllString(lower, ""), " ")
	tokens := nonWordSplitRe.Split(lower, -1)

	for _, cat := range categories {
		catLower := strings.ToLower(cat)
		if lower == catLower || containsToken(tokens, catLower) || containsToken(cleaned, catLower) {
			return cat, true
		}
	}
	return "", false
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

func normalizeTight(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, "")
	return nonAlnumRe.ReplaceAllString(s, "")
}

func normalizeLoose(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = nonAlnumSpaceRe.ReplaceAllString(s, "")
	s = stopwordRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
