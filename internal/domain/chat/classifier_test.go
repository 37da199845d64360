package chat

import "testing"

func classify(t *testing.T, lower string, categories []string, stage PurchaseStage) Intent {
	t.Helper()
	return Classify(RuleInput{Lower: lower, Categories: categories, Stage: stage})
}

func TestRuleTableOrder(t *testing.T) {
	want := []Intent{
		IntentBanned,
		IntentGreeting,
		IntentAskName,
		IntentSetName,
		IntentYes,      // pitched-stage short circuit
		IntentPurchase, // pitched-stage short circuit
		IntentSelectProduct,
		IntentYes,
		IntentNo,
		IntentOffers,
		IntentListCategories,
		IntentListByCategory,
		IntentListProducts,
		IntentPagination,
		IntentPurchase,
	}
	if len(Rules) != len(want) {
		t.Fatalf("rule table has %d entries, want %d", len(Rules), len(want))
	}
	for i, rule := range Rules {
		if rule.Intent != want[i] {
			t.Fatalf("rule %d is %s, want %s", i, rule.Intent, want[i])
		}
	}
}

func TestClassifyBannedWinsOverEverything(t *testing.T) {
	got := classify(t, "hi, how do i hack this", nil, StageIdle)
	if got != IntentBanned {
		t.Fatalf("expected banned, got %s", got)
	}
}

func TestClassifyGreeting(t *testing.T) {
	if got := classify(t, "hello", nil, StageIdle); got != IntentGreeting {
		t.Fatalf("expected greeting, got %s", got)
	}
}

func TestClassifyNameHandling(t *testing.T) {
	if got := classify(t, "what is my name", nil, StageIdle); got != IntentAskName {
		t.Fatalf("expected ask_name, got %s", got)
	}
	if got := classify(t, "my name is alice", nil, StageIdle); got != IntentSetName {
		t.Fatalf("expected set_name, got %s", got)
	}
	if got := classify(t, "alice", nil, StageIdle); got != IntentSetName {
		t.Fatalf("expected bare word to read as set_name, got %s", got)
	}
}

func TestClassifyPitchedStageShortCircuits(t *testing.T) {
	if got := classify(t, "yes", nil, StagePitched); got != IntentYes {
		t.Fatalf("expected yes, got %s", got)
	}
	// A purchase verb while a pitch is pending confirms it instead of
	// starting a new product search.
	if got := classify(t, "buy it now", nil, StagePitched); got != IntentPurchase {
		t.Fatalf("expected purchase at pitched stage, got %s", got)
	}
}

func TestClassifyOrdinalSelection(t *testing.T) {
	if got := classify(t, "the second one", nil, StageIdle); got != IntentSelectProduct {
		t.Fatalf("expected select_product, got %s", got)
	}
	if got := classify(t, "number 3", nil, StageIdle); got != IntentSelectProduct {
		t.Fatalf("expected select_product, got %s", got)
	}
}

func TestClassifyOffersAndCategories(t *testing.T) {
	if got := classify(t, "any deals today?", nil, StageIdle); got != IntentOffers {
		t.Fatalf("expected offers, got %s", got)
	}
	if got := classify(t, "what categories do you have", nil, StageIdle); got != IntentListCategories {
		t.Fatalf("expected list_categories, got %s", got)
	}
	categories := []string{"Electronics", "Office"}
	if got := classify(t, "electronics", categories, StageIdle); got != IntentListByCategory {
		t.Fatalf("expected list_products_by_category, got %s", got)
	}
}

func TestClassifyListAndPagination(t *testing.T) {
	if got := classify(t, "show me products", nil, StageIdle); got != IntentListProducts {
		t.Fatalf("expected list_products, got %s", got)
	}
	if got := classify(t, "2 more", nil, StageIdle); got != IntentPagination {
		t.Fatalf("expected pagination, got %s", got)
	}
}

func TestClassifyPurchase(t *testing.T) {
	if got := classify(t, "buy wireless mouse", nil, StageIdle); got != IntentPurchase {
		t.Fatalf("expected purchase, got %s", got)
	}
}

func TestClassifyFallback(t *testing.T) {
	if got := classify(t, "wireless mouse", nil, StageIdle); got != IntentFallback {
		t.Fatalf("expected fallback for free text search, got %s", got)
	}
}
