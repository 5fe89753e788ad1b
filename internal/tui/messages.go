package tui

// StepChangeMsg is delivered to the host after a transition moved to Step.
type StepChangeMsg struct {
	Target string
	Step   int
}

// CompletedMsg is delivered to the host every time Next is activated on the
// last step.
type CompletedMsg struct {
	Target string
}
