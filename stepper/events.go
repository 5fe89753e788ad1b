package stepper

import "sync"

// EventKind names the two events a stepper emits.
type EventKind string

const (
	EventStepChange EventKind = "step-change"
	EventCompleted  EventKind = "completed"
)

type propagation struct{ stopped bool }

// StepChangeEvent is dispatched after a transition moved to Step.
type StepChangeEvent struct {
	// Target identifies the stepper that emitted the event.
	Target string
	Step   int

	p *propagation
}

// Kind returns EventStepChange.
func (StepChangeEvent) Kind() EventKind { return EventStepChange }

// StopPropagation keeps the event from reaching ancestor emitters.
func (e StepChangeEvent) StopPropagation() {
	if e.p != nil {
		e.p.stopped = true
	}
}

// CompletedEvent is dispatched whenever Advance is called on the last step.
type CompletedEvent struct {
	Target string

	p *propagation
}

// Kind returns EventCompleted.
func (CompletedEvent) Kind() EventKind { return EventCompleted }

// StopPropagation keeps the event from reaching ancestor emitters.
func (e CompletedEvent) StopPropagation() {
	if e.p != nil {
		e.p.stopped = true
	}
}

type listener[E any] struct {
	id uint64
	fn func(E)
}

// Emitter delivers stepper events to registered listeners and then bubbles
// them to its parent chain. A host can hold one Emitter as the root and
// observe every stepper created beneath it.
type Emitter struct {
	parent *Emitter

	mu         sync.Mutex
	nextID     uint64
	stepChange []listener[StepChangeEvent]
	completed  []listener[CompletedEvent]
}

// NewEmitter returns an emitter bubbling to parent (which may be nil).
func NewEmitter(parent *Emitter) *Emitter {
	return &Emitter{parent: parent}
}

// Parent returns the emitter events bubble to.
func (e *Emitter) Parent() *Emitter { return e.parent }

// OnStepChange registers fn for step-change events and returns a function
// that removes it.
func (e *Emitter) OnStepChange(fn func(StepChangeEvent)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.stepChange = append(e.stepChange, listener[StepChangeEvent]{id: id, fn: fn})
	e.mu.Unlock()
	return sync.OnceFunc(func() {
		e.mu.Lock()
		e.stepChange = removeListener(e.stepChange, id)
		e.mu.Unlock()
	})
}

// OnCompleted registers fn for completed events and returns a function that
// removes it.
func (e *Emitter) OnCompleted(fn func(CompletedEvent)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.completed = append(e.completed, listener[CompletedEvent]{id: id, fn: fn})
	e.mu.Unlock()
	return sync.OnceFunc(func() {
		e.mu.Lock()
		e.completed = removeListener(e.completed, id)
		e.mu.Unlock()
	})
}

// EmitStepChange dispatches a step-change event from this emitter outward.
func (e *Emitter) EmitStepChange(target string, step int) {
	ev := StepChangeEvent{Target: target, Step: step, p: &propagation{}}
	for cur := e; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		ls := append([]listener[StepChangeEvent](nil), cur.stepChange...)
		cur.mu.Unlock()
		for _, l := range ls {
			l.fn(ev)
		}
		if ev.p.stopped {
			return
		}
	}
}

// EmitCompleted dispatches a completed event from this emitter outward.
func (e *Emitter) EmitCompleted(target string) {
	ev := CompletedEvent{Target: target, p: &propagation{}}
	for cur := e; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		ls := append([]listener[CompletedEvent](nil), cur.completed...)
		cur.mu.Unlock()
		for _, l := range ls {
			l.fn(ev)
		}
		if ev.p.stopped {
			return
		}
	}
}

func removeListener[E any](ls []listener[E], id uint64) []listener[E] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

