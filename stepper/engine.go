package stepper

import (
	"github.com/google/uuid"

	"github.com/initializ/stepper/i18n"
)

// Logger receives debug traces of transitions. internal/logging satisfies it.
type Logger interface {
	Debug(msg string, fields map[string]any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]any) {}

// Option customizes Engine construction.
type Option func(*Engine)

// WithID sets the identifier carried as Target on emitted events.
func WithID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.id = id
		}
	}
}

// WithTotalSteps sets the step count. Values below 1 are clamped to 1.
func WithTotalSteps(n int) Option {
	return func(e *Engine) { e.state.Total = n }
}

// WithProgressMode selects the progress indicators.
func WithProgressMode(m ProgressMode) Option {
	return func(e *Engine) { e.state.Mode = m }
}

// WithTranslation selects the strings used for default labels and the
// announcement text.
func WithTranslation(t i18n.Translation) Option {
	return func(e *Engine) { e.translation = t }
}

// WithLabels overrides individual button labels.
func WithLabels(l Labels) Option {
	return func(e *Engine) { e.labels = l }
}

// WithLocalizer overrides the announcement text.
func WithLocalizer(l Localizer) Option {
	return func(e *Engine) { e.localizer = l }
}

// WithRenderer adds a renderer to the render pass.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.addRenderer(r)
		}
	}
}

// WithParent makes events bubble to parent after the engine's own listeners.
func WithParent(parent *Emitter) Option {
	return func(e *Engine) { e.parent = parent }
}

// WithLogger injects a logger for transition traces.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine applies advance and retreat transitions to a State. It is meant to
// be driven from a single goroutine, such as a bubbletea update loop.
type Engine struct {
	id          string
	state       State
	translation i18n.Translation
	labels      Labels
	localizer   Localizer
	announcer   *Announcer
	renderers   []rendererEntry
	nextRender  uint64
	parent      *Emitter
	emitter     *Emitter
	logger      Logger
	view        View
}

// New builds an engine positioned on step 1.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:       State{Total: DefaultTotalSteps, Mode: ProgressBoth},
		translation: i18n.English,
		logger:      nopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.id == "" {
		e.id = "stepper-" + uuid.NewString()
	}
	e.state = newState(e.state.Total, e.state.Mode)
	e.labels = e.labels.merge(Labels{
		Back:   e.translation.Back,
		Next:   e.translation.Next,
		Finish: e.translation.Finish,
	})
	if e.localizer == nil && e.translation.StepXofY != nil {
		e.localizer = e.translation.StepXofY
	}
	e.announcer = NewAnnouncer(e.localizer)
	e.emitter = NewEmitter(e.parent)
	e.view = e.derive(Announcement{})
	return e
}

// ID returns the identifier carried on emitted events.
func (e *Engine) ID() string { return e.id }

// State returns a copy of the current state.
func (e *Engine) State() State { return e.state }

// Labels returns the resolved button labels.
func (e *Engine) Labels() Labels { return e.labels }

// Events returns the engine's own emitter for listener registration.
func (e *Engine) Events() *Emitter { return e.emitter }

// View returns the snapshot of the last settled render pass.
func (e *Engine) View() View { return e.view }

// AddRenderer adds r to subsequent render passes and returns a function that
// removes it again.
func (e *Engine) AddRenderer(r Renderer) (remove func()) {
	if r == nil {
		return func() {}
	}
	id := e.addRenderer(r)
	return func() {
		for i, cur := range e.renderers {
			if cur.id == id {
				e.renderers = append(e.renderers[:i:i], e.renderers[i+1:]...)
				return
			}
		}
	}
}

type rendererEntry struct {
	id uint64
	r  Renderer
}

func (e *Engine) addRenderer(r Renderer) uint64 {
	e.nextRender++
	e.renderers = append(e.renderers, rendererEntry{id: e.nextRender, r: r})
	return e.nextRender
}

// Advance moves to the next step. On the last step it emits completed
// instead, every time it is called.
func (e *Engine) Advance() {
	if e.state.Current < e.state.Total {
		e.state.Current++
		e.logger.Debug("stepper advanced", e.fields())
		e.Render()
		e.emitter.EmitStepChange(e.id, e.state.Current)
		return
	}
	e.logger.Debug("stepper completed", e.fields())
	e.emitter.EmitCompleted(e.id)
}

// Retreat moves to the previous step. On step 1 it does nothing.
func (e *Engine) Retreat() {
	if e.state.Current <= 1 {
		return
	}
	e.state.Current--
	e.logger.Debug("stepper retreated", e.fields())
	e.Render()
	e.emitter.EmitStepChange(e.id, e.state.Current)
}

// Render performs a render pass and returns once every renderer settled.
func (e *Engine) Render() View {
	e.view = e.derive(e.announcer.Announce(e.state.Current, e.state.Total))
	for _, entry := range e.renderers {
		entry.r.Render(e.view)
	}
	return e.view
}

// SetTotalSteps reconfigures the step count. Values below 1 become 1 and the
// current step is clamped into range. No event is emitted.
func (e *Engine) SetTotalSteps(n int) {
	if n < 1 {
		n = 1
	}
	if n == e.state.Total {
		return
	}
	e.state.Total = n
	if e.state.Current > n {
		e.state.Current = n
	}
	e.logger.Debug("stepper reconfigured", e.fields())
	e.Render()
}

// SetProgressMode changes the visible indicators. No event is emitted.
func (e *Engine) SetProgressMode(m ProgressMode) {
	if m == e.state.Mode {
		return
	}
	e.state.Mode = m
	e.Render()
}

func (e *Engine) derive(a Announcement) View {
	v := Derive(e.state, e.labels)
	v.Announcement = a
	return v
}

func (e *Engine) fields() map[string]any {
	return map[string]any{
		"stepper": e.id,
		"step":    e.state.Current,
		"total":   e.state.Total,
	}
}
