// Package stepper implements the step-state engine behind a multi-step
// workflow control: bounded navigation, progress indicator selection, slot
// resolution, live-region announcements and bubbling step events.
//
// The package is presentation agnostic. A Renderer receives a View snapshot
// after every state change and events are only dispatched once that render
// pass has returned, so listeners always observe output consistent with the
// new state.
package stepper
