package stepper

import "strconv"

// SlotPrefix prefixes every step content slot name.
const SlotPrefix = "step-"

// SlotName returns the content slot the host populates for a step.
func SlotName(step int) string {
	return SlotPrefix + strconv.Itoa(step)
}

// SlotProvider supplies host content per slot name.
type SlotProvider interface {
	Slot(name string) (string, bool)
}

// Slots is a map-backed SlotProvider.
type Slots map[string]string

// Slot implements SlotProvider.
func (s Slots) Slot(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// SlotFunc adapts a function into a SlotProvider.
type SlotFunc func(name string) (string, bool)

// Slot implements SlotProvider.
func (f SlotFunc) Slot(name string) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(name)
}

// ResolveSlot returns the content for a step, or "" when the host supplied
// none.
func ResolveSlot(p SlotProvider, step int) string {
	if p == nil {
		return ""
	}
	content, _ := p.Slot(SlotName(step))
	return content
}
