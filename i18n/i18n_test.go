package i18n

import (
	"slices"
	"sort"
	"testing"
)

func TestEnglishDefaults(t *testing.T) {
	en := Lookup("en")
	if en.Back != "Back" || en.Next != "Next" || en.Finish != "Finish" {
		t.Fatalf("unexpected labels: %+v", en)
	}
	if got := en.StepXofY(2, 5); got != "Step 2 of 5" {
		t.Fatalf("StepXofY = %q", got)
	}
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	if got := Lookup("xx").Lang; got != "en" {
		t.Fatalf("expected en fallback, got %q", got)
	}
}

func TestRegisterFillsMissingStrings(t *testing.T) {
	err := Register(Translation{
		Lang: "fi",
		Back: "Takaisin",
		StepXofY: func(current, total int) string {
			return FromTemplate("Vaihe {current}/{total}")(current, total)
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	fi := Lookup("fi_FI")
	if fi.Back != "Takaisin" {
		t.Errorf("Back = %q", fi.Back)
	}
	if fi.Next != "Next" {
		t.Errorf("expected English fallback for Next, got %q", fi.Next)
	}
	if got := fi.StepXofY(1, 3); got != "Vaihe 1/3" {
		t.Errorf("StepXofY = %q", got)
	}
}

func TestRegisterRequiresLang(t *testing.T) {
	if err := Register(Translation{}); err == nil {
		t.Fatal("expected error for empty language")
	}
}

func TestFromTemplate(t *testing.T) {
	f := FromTemplate("{current} / {total} done")
	if got := f(3, 4); got != "3 / 4 done" {
		t.Fatalf("got %q", got)
	}
}

func TestHas(t *testing.T) {
	if !Has("en") || !Has("en-GB") {
		t.Fatal("English should be registered")
	}
	if Has("zz") {
		t.Fatal("zz should not be registered")
	}
}

func TestLanguagesSorted(t *testing.T) {
	if err := Register(Translation{Lang: "de", Back: "Zurück"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	langs := Languages()
	if !sort.StringsAreSorted(langs) {
		t.Fatalf("languages not sorted: %v", langs)
	}
	if !slices.Contains(langs, "en") || !slices.Contains(langs, "de") {
		t.Fatalf("languages = %v, want en and de", langs)
	}
}
