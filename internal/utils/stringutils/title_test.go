package stringutils

import "testing"

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "show me laptops", "show me laptops"},
		{"runs of spaces", "show   me\tlaptops", "show me laptops"},
		{"leading and trailing", "  hello  ", "hello"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseSpaces(tt.input); got != tt.want {
				t.Errorf("CollapseSpaces(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short stays intact", "hello", 30, "hello"},
		{"exact length stays intact", "123456789012345678901234567890", 30, "123456789012345678901234567890"},
		{"long gets ellipsis", "I am looking for a wireless mouse with long battery life", 30, "I am looking for a wireless mo..."},
		{"unicode counted by rune", "héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateTitle(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateTitle(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestGenerateTitle(t *testing.T) {
	if got := GenerateTitle("  show   me offers  ", 30); got != "show me offers" {
		t.Errorf("GenerateTitle() = %q, want %q", got, "show me offers")
	}
	if got := GenerateTitle("   ", 30); got != "" {
		t.Errorf("GenerateTitle() on blank input = %q, want empty", got)
	}
}
