package catalog

import (
	"slices"
	"testing"
)

func TestClassifyInstructions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want InstructionFormat
	}{
		{"1) Boil. 2) Simmer.", FormatNumbered},
		{"Boil. Simmer.", FormatSentences},
		{"", FormatSentences},
		// any ')' selects the numbered branch for the whole field
		{"Add dates (seedless). Boil.", FormatNumbered},
	}

	for _, tt := range tests {
		if got := ClassifyInstructions(tt.raw); got != tt.want {
			t.Errorf("ClassifyInstructions(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestSplitInstructions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"numbered", "1) Boil. 2) Simmer.", []string{"Boil.", "Simmer."}},
		{"sentences", "Boil. Simmer.", []string{"Boil.", "Simmer."}},
		{"numbered without periods", "1)Soak peanuts 2) Boil 10) Serve", []string{"Soak peanuts.", "Boil.", "Serve."}},
		{"empty", "", []string{}},
		{"only separators", " . . ", []string{}},
		{"stray paren", "Add dates (seedless). Boil.", []string{"Add dates (seedless). Boil."}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitInstructions(tt.raw)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("SplitInstructions(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitIngredients(t *testing.T) {
	t.Parallel()

	got := SplitIngredients(" corn, carrots ,, tomatoes, ")
	want := []string{"corn", "carrots", "tomatoes"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := SplitIngredients(""); len(got) != 0 {
		t.Fatalf("expected no ingredients, got %q", got)
	}
}

func TestLookupTables(t *testing.T) {
	t.Parallel()

	for _, name := range SupportedSoups {
		if Description(name) == DefaultDescription {
			t.Errorf("%q has no description", name)
		}
		if Image(name) == "" {
			t.Errorf("%q has no image", name)
		}
	}
	if Description("Borscht") != DefaultDescription {
		t.Fatal("unknown name should fall back to the default description")
	}
	if Image("Borscht") != DefaultImage {
		t.Fatal("unknown name should fall back to the default image")
	}
	if Image("Watercress Soup") != "Pictures/watercress.jpg" {
		t.Fatalf("unexpected image %q", Image("Watercress Soup"))
	}
}
