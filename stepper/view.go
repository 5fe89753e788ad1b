package stepper

// Labels are the texts on the two navigation buttons. Empty fields fall back
// to the active translation.
type Labels struct {
	Back   string
	Next   string
	Finish string
}

func (l Labels) merge(fallback Labels) Labels {
	if l.Back == "" {
		l.Back = fallback.Back
	}
	if l.Next == "" {
		l.Next = fallback.Next
	}
	if l.Finish == "" {
		l.Finish = fallback.Finish
	}
	return l
}

// View is the derived snapshot handed to a Renderer on every render pass.
type View struct {
	Step       int
	Total      int
	Mode       ProgressMode
	Indicators Indicators
	BadgeText  string
	Slot       string

	Announcement Announcement

	BackLabel    string
	BackDisabled bool
	NextLabel    string
	// Finishing is true on the last step, where Next reads as Finish and
	// emits completed.
	Finishing bool
}

// Derive computes every read-only view of a state. It does not record an
// announcement; the engine attaches one during the render pass.
func Derive(s State, labels Labels) View {
	v := View{
		Step:         s.Current,
		Total:        s.Total,
		Mode:         s.Mode,
		Indicators:   SelectIndicators(s.Mode, s.Current, s.Total),
		BadgeText:    BadgeText(s.Current, s.Total),
		Slot:         SlotName(s.Current),
		BackLabel:    labels.Back,
		BackDisabled: s.First(),
		Finishing:    s.Last(),
	}
	if v.Finishing {
		v.NextLabel = labels.Finish
	} else {
		v.NextLabel = labels.Next
	}
	return v
}

// Renderer draws a View. Render returning means the pass has settled.
type Renderer interface {
	Render(View)
}

// RendererFunc adapts a function into a Renderer.
type RendererFunc func(View)

// Render implements Renderer.
func (f RendererFunc) Render(v View) {
	if f != nil {
		f(v)
	}
}
