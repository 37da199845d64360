package chat

// Intent is the discrete action category assigned to a user utterance.
type Intent string

const (
	IntentBanned         Intent = "banned"
	IntentGreeting       Intent = "greeting"
	IntentAskName        Intent = "ask_name"
	IntentSetName        Intent = "set_name"
	IntentSelectProduct  Intent = "select_product"
	IntentYes            Intent = "yes"
	IntentNo             Intent = "no"
	IntentOffers         Intent = "offers"
	IntentListCategories Intent = "list_categories"
	IntentListByCategory Intent = "list_products_by_category"
	IntentListProducts   Intent = "list_products"
	IntentPagination     Intent = "pagination"
	IntentPurchase       Intent = "purchase"
	IntentFallback       Intent = "fallback"
)

// RuleInput is what a classification rule may inspect: the lowercased
// trimmed utterance, the catalog's known categories, and the purchase stage
// of the conversation.
type RuleInput struct {
	Lower      string
	Categories []string
	Stage      PurchaseStage
}

// Rule pairs an intent with its predicate.
type Rule struct {
	Intent Intent
	When   func(in RuleInput) bool
}

// Rules is the classifier, in evaluation order. The order is the priority:
// unambiguous signals (banned content, greetings, name handling) fire before
// generic ones, and a pending product pitch lets "yes" and purchase verbs
// short-circuit the generic rules below them. Do not reorder without a test.
var Rules = []Rule{
	{IntentBanned, func(in RuleInput) bool { return !IsContentAllowed(in.Lower) }},
	{IntentGreeting, func(in RuleInput) bool { return IsGreeting(in.Lower) }},
	{IntentAskName, func(in RuleInput) bool { return IsAskName(in.Lower) }},
	{IntentSetName, func(in RuleInput) bool { return ExtractName(in.Lower) != "" || isUnclaimedBareWord(in) }},
	{IntentYes, func(in RuleInput) bool { return in.Stage == StagePitched && IsYes(in.Lower) }},
	{IntentPurchase, func(in RuleInput) bool { return in.Stage == StagePitched && HasPurchaseVerb(in.Lower) }},
	{IntentSelectProduct, func(in RuleInput) bool {
		if AsksForMore(in.Lower) {
			return false
		}
		_, ok := OrdinalIndex(in.Lower)
		return ok
	}},
	{IntentYes, func(in RuleInput) bool { return IsYes(in.Lower) }},
	{IntentNo, func(in RuleInput) bool { return IsNo(in.Lower) }},
	{IntentOffers, func(in RuleInput) bool { return MentionsOffers(in.Lower) }},
	{IntentListCategories, func(in RuleInput) bool { return AsksForCategories(in.Lower) }},
	{IntentListByCategory, func(in RuleInput) bool { _, ok := ExtractCategory(in.Lower, in.Categories); return ok }},
	{IntentListProducts, func(in RuleInput) bool { return AsksForProducts(in.Lower) }},
	{IntentPagination, func(in RuleInput) bool { return AsksForMore(in.Lower) }},
	{IntentPurchase, func(in RuleInput) bool { return HasPurchaseVerb(in.Lower) }},
}

// isUnclaimedBareWord reports whether the utterance is a single alphabetic
// word that none of the later rules would claim, so it can stand as a
// self-introduction. Category names and catalog phrasing are not names.
func isUnclaimedBareWord(in RuleInput) bool {
	if !IsNameOnly(in.Lower) {
		return false
	}
	if MentionsOffers(in.Lower) || AsksForCategories(in.Lower) || AsksForProducts(in.Lower) ||
		AsksForMore(in.Lower) || HasPurchaseVerb(in.Lower) {
		return false
	}
	_, isCategory := ExtractCategory(in.Lower, in.Categories)
	return !isCategory
}

// Classify runs the rule table in order and returns the first matching
// intent, or IntentFallback when no rule fires.
func Classify(in RuleInput) Intent {
	for _, rule := range Rules {
		if rule.When(in) {
			return rule.Intent
		}
	}
	return IntentFallback
}
