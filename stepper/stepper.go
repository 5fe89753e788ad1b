package stepper

// Stepper bundles an Engine with its keyboard adapter and the host's slot
// content.
type Stepper struct {
	*Engine
	keys  *Keyboard
	slots SlotProvider

	unmount func()
}

// NewStepper builds a stepper over slots. A nil provider renders every step
// as empty content.
func NewStepper(slots SlotProvider, opts ...Option) *Stepper {
	e := New(opts...)
	return &Stepper{
		Engine: e,
		keys:   NewKeyboard(e),
		slots:  slots,
	}
}

// Keyboard returns the keyboard adapter.
func (s *Stepper) Keyboard() *Keyboard { return s.keys }

// Content returns the host content for the active slot.
func (s *Stepper) Content() string {
	return ResolveSlot(s.slots, s.State().Current)
}

// Mounted reports whether the stepper is attached to a key source.
func (s *Stepper) Mounted() bool { return s.unmount != nil }

// Mount performs the initial render pass and attaches the keyboard adapter to
// src. The returned function detaches it; Unmount does the same.
func (s *Stepper) Mount(src KeySource) (unmount func()) {
	if s.unmount != nil {
		s.unmount()
	}
	s.Render()
	release := s.keys.Attach(src)
	s.unmount = func() {
		release()
		s.keys.Blur()
	}
	return s.Unmount
}

// Unmount detaches the keyboard adapter. It is a no-op when not mounted.
func (s *Stepper) Unmount() {
	if s.unmount == nil {
		return
	}
	u := s.unmount
	s.unmount = nil
	u()
}
