package stepper

import (
	"context"
	"sync"
)

// Key is a directional key as seen by the stepper.
type Key int

const (
	KeyOther Key = iota
	KeyNext
	KeyPrevious
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyNext:
		return "next"
	case KeyPrevious:
		return "previous"
	default:
		return "other"
	}
}

// KeyHandler consumes a key and reports whether the default action should be
// suppressed.
type KeyHandler func(Key) (handled bool)

// KeySource delivers key input to subscribed handlers.
type KeySource interface {
	Subscribe(h KeyHandler) (unsubscribe func())
}

// Navigator is the part of Engine the keyboard adapter drives.
type Navigator interface {
	Advance()
	Retreat()
}

// Keyboard translates directional keys into navigation while focused.
type Keyboard struct {
	nav     Navigator
	focused bool
}

// NewKeyboard returns an unfocused adapter for nav.
func NewKeyboard(nav Navigator) *Keyboard {
	return &Keyboard{nav: nav}
}

// Focus starts accepting key input.
func (k *Keyboard) Focus() { k.focused = true }

// Blur stops accepting key input.
func (k *Keyboard) Blur() { k.focused = false }

// Focused reports whether key input is accepted.
func (k *Keyboard) Focused() bool { return k.focused }

// HandleKey applies a key. It returns true when the key triggered navigation
// and its default action should be suppressed.
func (k *Keyboard) HandleKey(key Key) bool {
	if !k.focused || k.nav == nil {
		return false
	}
	switch key {
	case KeyNext:
		k.nav.Advance()
		return true
	case KeyPrevious:
		k.nav.Retreat()
		return true
	}
	return false
}

// Attach subscribes the adapter to src. The returned release function
// detaches it and is safe to call more than once.
func (k *Keyboard) Attach(src KeySource) (release func()) {
	if src == nil {
		return func() {}
	}
	unsubscribe := src.Subscribe(k.HandleKey)
	if unsubscribe == nil {
		return func() {}
	}
	return sync.OnceFunc(unsubscribe)
}

// AttachContext subscribes to src until ctx is done or release is called,
// whichever happens first.
func (k *Keyboard) AttachContext(ctx context.Context, src KeySource) (release func()) {
	detach := k.Attach(src)
	stop := context.AfterFunc(ctx, detach)
	return func() {
		stop()
		detach()
	}
}

// KeyBus is an in-memory KeySource. Press fans a key out to subscribers and
// reports whether any of them handled it.
type KeyBus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[uint64]KeyHandler
	order    []uint64
}

// NewKeyBus returns an empty bus.
func NewKeyBus() *KeyBus {
	return &KeyBus{handlers: map[uint64]KeyHandler{}}
}

// Subscribe implements KeySource.
func (b *KeyBus) Subscribe(h KeyHandler) func() {
	if h == nil {
		return func() {}
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[id] = h
	b.order = append(b.order, id)
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
		for i, cur := range b.order {
			if cur == id {
				b.order = append(b.order[:i:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of attached handlers.
func (b *KeyBus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Press delivers key to every subscriber.
func (b *KeyBus) Press(key Key) (handled bool) {
	b.mu.Lock()
	hs := make([]KeyHandler, 0, len(b.order))
	for _, id := range b.order {
		hs = append(hs, b.handlers[id])
	}
	b.mu.Unlock()
	for _, h := range hs {
		if h(key) {
			handled = true
		}
	}
	return handled
}
