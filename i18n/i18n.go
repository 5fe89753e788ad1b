// Package i18n holds the translated strings used by the stepper control.
package i18n

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Translation holds the strings for one language.
type Translation struct {
	Lang     string
	Name     string
	Dir      string
	Back     string
	Next     string
	Finish   string
	StepXofY func(current, total int) string
}

// English is the default translation.
var English = Translation{
	Lang:   "en",
	Name:   "English",
	Dir:    "ltr",
	Back:   "Back",
	Next:   "Next",
	Finish: "Finish",
	StepXofY: func(current, total int) string {
		return fmt.Sprintf("Step %d of %d", current, total)
	},
}

var (
	mu       sync.RWMutex
	registry = map[string]Translation{"en": English}
)

// Register adds or replaces a translation. Missing strings fall back to
// English.
func Register(t Translation) error {
	lang := normalize(t.Lang)
	if lang == "" {
		return fmt.Errorf("i18n: translation language is required")
	}
	t.Lang = lang
	t = t.withFallback(English)
	mu.Lock()
	registry[lang] = t
	mu.Unlock()
	return nil
}

// Lookup returns the translation for lang. Region suffixes are tried without
// the region ("fi-FI" -> "fi"); unknown languages resolve to English.
func Lookup(lang string) Translation {
	lang = normalize(lang)
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[lang]; ok {
		return t
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if t, ok := registry[base]; ok {
			return t
		}
	}
	return English
}

// Has reports whether Lookup(lang) resolves to a registered translation
// other than the English fallback.
func Has(lang string) bool {
	lang = normalize(lang)
	mu.RLock()
	defer mu.RUnlock()
	if _, ok := registry[lang]; ok {
		return true
	}
	base, _, _ := strings.Cut(lang, "-")
	_, ok := registry[base]
	return ok
}

// Languages lists registered language codes in sorted order.
func Languages() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for lang := range registry {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func (t Translation) withFallback(fb Translation) Translation {
	if t.Name == "" {
		t.Name = t.Lang
	}
	if t.Dir == "" {
		t.Dir = fb.Dir
	}
	if t.Back == "" {
		t.Back = fb.Back
	}
	if t.Next == "" {
		t.Next = fb.Next
	}
	if t.Finish == "" {
		t.Finish = fb.Finish
	}
	if t.StepXofY == nil {
		t.StepXofY = fb.StepXofY
	}
	return t
}

func normalize(lang string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
}

// FromTemplate builds a StepXofY function from a format such as
// "Step {current} of {total}".
func FromTemplate(format string) func(current, total int) string {
	return func(current, total int) string {
		r := strings.NewReplacer(
			"{current}", strconv.Itoa(current),
			"{total}", strconv.Itoa(total),
		)
		return r.Replace(format)
	}
}
