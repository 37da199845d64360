// Package chat implements the shopping assistant: lexical matchers, fuzzy
// product matching, an ordered intent rule table, per-conversation dialogue
// state, and the response dispatcher that ties them together.
package chat

import (
	"regexp"
	"strconv"
	"strings"
)

var greetings = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

var (
	bannedPattern       = regexp.MustCompile(`(?i)hack|exploit|cheat|illegal|adult|nsfw|porn|weapon|drugs|crypto|bitcoin|ethereum|nft|gamble|casino|bet`)
	yesPattern          = regexp.MustCompile(`(?i)^(yes|yeah|yep|sure|ok|okay|let's go|go ahead|confirm)$`)
	noPattern           = regexp.MustCompile(`(?i)^(no|nope|not now|don't|nah|negative|n)$`)
	askNamePattern      = regexp.MustCompile(`(?i)what.*my name`)
	namePattern         = regexp.MustCompile(`(?i)(?:my name is|i'm|i am)\s+([a-zA-Z]+)`)
	alphaWordPattern    = regexp.MustCompile(`^[a-zA-Z]{2,}$`)
	deicticPattern      = regexp.MustCompile(`(?i)\b(this|that|it|the one)\b`)
	moreCountPattern    = regexp.MustCompile(`(?i)(\d+)\s*more`)
	purchaseTargetRe    = regexp.MustCompile(`(?i)\b(?:buy|purchase|order|checkout|pay for|want to buy|want to purchase|please purchase|purchase this|buy this|order this|confirm purchase)\b\s*(.*)`)
	purchaseVerbPattern = regexp.MustCompile(`(?i)\b(buy|purchase|order|checkout|pay|want to buy|want to purchase|please purchase|purchase this|buy this|order this|confirm purchase)\b`)
	offersPattern       = regexp.MustCompile(`(?i)\boffer(s)?\b|deal(s)?|discount(s)?|sale(s)?`)
	categoryAskPattern  = regexp.MustCompile(`(?i)(what|which|kind|type|category|categories).*product(s)?`)
	categoriesWordRe    = regexp.MustCompile(`(?i)categor(y|ies)`)
	listProductsPattern = regexp.MustCompile(`(?i)\b(products?|items?|show me (products|items)|list (products|items)|what (do you|can you) (have|offer)|all (products|items)|something tech|tech products|electronics)\b`)
	paginationPattern   = regexp.MustCompile(`(?i)\bmore\b|next|show me more|see more|\d+\s*more`)
	trailingPunctRe     = regexp.MustCompile(`[.?!,;:]+$`)

	ordinalPattern = regexp.MustCompile(`(?i)(?:^|\s)(first|1st|second|2nd|third|3rd|fourth|4th|fifth|5th|sixth|6th|seventh|7th|eighth|8th|ninth|9th|tenth|10th|eleventh|11th|twelfth|12th|thirteenth|13th|fourteenth|14th|fifteenth|15th|sixteenth|16th|seventeenth|17th|eighteenth|18th|nineteenth|19th|twentieth|20th|twenty[-\s]*first|21st|number\s*\d+|\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty|twenty[-\s]*one)(?:\s|$)`)

	nonDigitRe = regexp.MustCompile(`\D`)
)

var ordinalWords = map[string]int{
	"first": 1, "1st": 1, "one": 1,
	"second": 2, "2nd": 2, "two": 2,
	"third": 3, "3rd": 3, "three": 3,
	"fourth": 4, "4th": 4, "four": 4,
	"fifth": 5, "5th": 5, "five": 5,
	"sixth": 6, "6th": 6, "six": 6,
	"seventh": 7, "7th": 7, "seven": 7,
	"eighth": 8, "8th": 8, "eight": 8,
	"ninth": 9, "9th": 9, "nine": 9,
	"tenth": 10, "10th": 10, "ten": 10,
	"eleventh": 11, "11th": 11, "eleven": 11,
	"twelfth": 12, "12th": 12, "twelve": 12,
	"thirteenth": 13, "13th": 13, "thirteen": 13,
	"fourteenth": 14, "14th": 14, "fourteen": 14,
	"fifteenth": 15, "15th": 15, "fifteen": 15,
	"sixteenth": 16, "16th": 16, "sixteen": 16,
	"seventeenth": 17, "17th": 17, "seventeen": 17,
	"eighteenth": 18, "18th": 18, "eighteen": 18,
	"nineteenth": 19, "19th": 19, "nineteen": 19,
	"twentieth": 20, "20th": 20, "twenty": 20,
	"twentyfirst": 21, "21st": 21, "twentyone": 21,
}

// EditDistance returns the Levenshtein distance between a and b.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+1)
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// IsGreeting reports whether the message opens with or closely resembles a
// greeting phrase. Short phrases tolerate one edit, longer ones three.
func IsGreeting(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, greet := range greetings {
		maxDist := 3
		if len(greet) <= 5 {
			maxDist = 1
		}
		if EditDistance(msg, greet) <= maxDist || strings.HasPrefix(msg, greet) {
			return true
		}
	}
	return false
}

// IsYes reports whether the message is a bare affirmative token.
func IsYes(message string) bool {
	return yesPattern.MatchString(strings.TrimSpace(message))
}

// IsNo reports whether the message is a bare negative token.
func IsNo(message string) bool {
	return noPattern.MatchString(strings.TrimSpace(message))
}

// IsAskName reports whether the message asks the assistant for the user's name.
func IsAskName(message string) bool {
	return askNamePattern.MatchString(message)
}

// ExtractName captures a name following "my name is" / "I'm" / "I am".
// Returns the empty string when no name phrase is present.
func ExtractName(message string) string {
	m := namePattern.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return m[1]
}

// IsContentAllowed reports whether the message is free of disallowed topics.
func IsContentAllowed(message string) bool {
	return !bannedPattern.MatchString(message)
}

// IsNameOnly reports whether the message is a bare alphabetic word that no
// other single-word rule claims, letting it stand as a self-introduction.
func IsNameOnly(message string) bool {
	msg := strings.TrimSpace(message)
	if !alphaWordPattern.MatchString(msg) {
		return false
	}
	if IsGreeting(message) || IsYes(message) || IsNo(message) || IsAskName(message) {
		return false
	}
	if _, ok := OrdinalIndex(message); ok {
		return false
	}
	return IsContentAllowed(message)
}

// OrdinalIndex parses an ordinal token ("second", "3rd", "number 2", a bare
// number) and returns its zero-based index.
func OrdinalIndex(message string) (int, bool) {
	m := ordinalPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}

	key := strings.ToLower(m[1])
	key = strings.NewReplacer(" ", "", "-", "").Replace(key)
	if n, ok := ordinalWords[key]; ok {
		return n - 1, true
	}

	digits := nonDigitRe.ReplaceAllString(key, "")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

// IsDeictic reports whether the message refers back to a product already in
// view ("this", "that", "it", "the one").
func IsDeictic(message string) bool {
	return deicticPattern.MatchString(strings.TrimSpace(message))
}

// MoreCount parses "<N> more" and returns N.
func MoreCount(message string) (int, bool) {
	m := moreCountPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// HasPurchaseVerb reports whether the message contains a purchase verb phrase.
func HasPurchaseVerb(message string) bool {
	return purchaseVerbPattern.MatchString(message)
}

// ExtractPurchaseTarget returns the phrase following a purchase verb, with
// trailing punctuation stripped, or the empty string when nothing follows.
func ExtractPurchaseTarget(message string) string {
	m := purchaseTargetRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(trailingPunctRe.ReplaceAllString(m[1], ""))
}

// MentionsOffers reports whether the message asks about deals or discounts.
func MentionsOffers(message string) bool {
	return offersPattern.MatchString(message)
}

// AsksForCategories reports whether the message asks what kinds of products
// exist.
func AsksForCategories(message string) bool {
	return categoryAskPattern.MatchString(message) || categoriesWordRe.MatchString(message)
}

// AsksForProducts reports whether the message uses generic list-products
// phrasing.
func AsksForProducts(message string) bool {
	return listProductsPattern.MatchString(message)
}

// AsksForMore reports whether the message uses pagination phrasing.
func AsksForMore(message string) bool {
	return paginationPattern.MatchString(message)
}
