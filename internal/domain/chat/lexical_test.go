package chat

import "testing"

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"helo", "hello", 1},
		{"mouze", "mouse", 1},
	}
	for _, tc := range cases {
		if got := EditDistance(tc.a, tc.b); got != tc.want {
			t.Fatalf("EditDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIsGreeting(t *testing.T) {
	for _, msg := range []string{"hi", "Hello", "hey there", "helo", "good morning", "good mrning"} {
		if !IsGreeting(msg) {
			t.Fatalf("expected %q to be a greeting", msg)
		}
	}
	for _, msg := range []string{"show me products", "buy mouse", "what is my name", "good mrning everyone"} {
		if IsGreeting(msg) {
			t.Fatalf("did not expect %q to be a greeting", msg)
		}
	}
}

func TestIsYesIsNo(t *testing.T) {
	for _, msg := range []string{"yes", "Yeah", "ok", "sure", "confirm"} {
		if !IsYes(msg) {
			t.Fatalf("expected %q to be affirmative", msg)
		}
	}
	if IsYes("yes please show me more") {
		t.Fatal("affirmative must be a bare token")
	}
	for _, msg := range []string{"no", "nope", "not now", "nah"} {
		if !IsNo(msg) {
			t.Fatalf("expected %q to be negative", msg)
		}
	}
}

func TestExtractName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"my name is alice", "alice"},
		{"I'm Bob", "Bob"},
		{"i am carol", "carol"},
		{"show me products", ""},
	}
	for _, tc := range cases {
		if got := ExtractName(tc.in); got != tc.want {
			t.Fatalf("ExtractName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsNameOnly(t *testing.T) {
	if !IsNameOnly("alice") {
		t.Fatal("a bare alphabetic word should pass as a name")
	}
	for _, msg := range []string{"hi", "yes", "no", "second", "3", "alice smith"} {
		if IsNameOnly(msg) {
			t.Fatalf("did not expect %q to be name-only", msg)
		}
	}
}

func TestOrdinalIndex(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"first", 0, true},
		{"the second one", 1, true},
		{"3rd", 2, true},
		{"number 4", 3, true},
		{"12", 11, true},
		{"twenty first", 20, true},
		{"show me products", 0, false},
	}
	for _, tc := range cases {
		got, ok := OrdinalIndex(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("OrdinalIndex(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMoreCount(t *testing.T) {
	if n, ok := MoreCount("show me 5 more"); !ok || n != 5 {
		t.Fatalf("MoreCount = (%d, %v), want (5, true)", n, ok)
	}
	if _, ok := MoreCount("show me more"); ok {
		t.Fatal("bare 'more' carries no count")
	}
}

func TestExtractPurchaseTarget(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"buy wireless mouse", "wireless mouse"},
		{"I want to buy a yoga mat.", "a yoga mat"},
		{"please purchase the smart watch!", "the smart watch"},
		{"yes", ""},
	}
	for _, tc := range cases {
		if got := ExtractPurchaseTarget(tc.in); got != tc.want {
			t.Fatalf("ExtractPurchaseTarget(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsContentAllowed(t *testing.T) {
	for _, msg := range []string{"how do I hack this", "buy bitcoin", "casino tips"} {
		if IsContentAllowed(msg) {
			t.Fatalf("expected %q to be disallowed", msg)
		}
	}
	if !IsContentAllowed("show me wireless mice") {
		t.Fatal("ordinary shopping talk must be allowed")
	}
}
