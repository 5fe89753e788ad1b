package stepper

import (
	"math"
	"testing"
)

type recorder struct {
	changes   []int
	completed int
}

func record(e *Engine) *recorder {
	r := &recorder{}
	e.Events().OnStepChange(func(ev StepChangeEvent) { r.changes = append(r.changes, ev.Step) })
	e.Events().OnCompleted(func(CompletedEvent) { r.completed++ })
	return r
}

func TestNewStartsOnFirstStep(t *testing.T) {
	for total := 1; total <= 5; total++ {
		e := New(WithTotalSteps(total))
		if got := e.State().Current; got != 1 {
			t.Fatalf("total=%d: current = %d, want 1", total, got)
		}
		if !e.View().BackDisabled {
			t.Fatalf("total=%d: back should be disabled on step 1", total)
		}
	}
}

func TestDefaults(t *testing.T) {
	e := New()
	s := e.State()
	if s.Total != DefaultTotalSteps || s.Mode != ProgressBoth {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	l := e.Labels()
	if l.Back != "Back" || l.Next != "Next" || l.Finish != "Finish" {
		t.Fatalf("unexpected labels: %+v", l)
	}
}

func TestAdvanceToLastThenComplete(t *testing.T) {
	const total = 4
	e := New(WithTotalSteps(total))
	r := record(e)
	for i := 0; i < total-1; i++ {
		e.Advance()
	}
	if got := e.State().Current; got != total {
		t.Fatalf("current = %d, want %d", got, total)
	}
	if r.completed != 0 {
		t.Fatalf("completed fired early")
	}
	e.Advance()
	if got := e.State().Current; got != total {
		t.Fatalf("advance on last step moved to %d", got)
	}
	if r.completed != 1 {
		t.Fatalf("completed = %d, want 1", r.completed)
	}
	e.Advance()
	e.Advance()
	if r.completed != 3 {
		t.Fatalf("completed should re-fire on every advance, got %d", r.completed)
	}
	if want := []int{2, 3, 4}; !equalInts(r.changes, want) {
		t.Fatalf("changes = %v, want %v", r.changes, want)
	}
}

func TestRetreatOnFirstStepIsNoop(t *testing.T) {
	renders := 0
	e := New(WithRenderer(RendererFunc(func(View) { renders++ })))
	r := record(e)
	e.Retreat()
	if e.State().Current != 1 {
		t.Fatalf("retreat moved off step 1")
	}
	if len(r.changes) != 0 || r.completed != 0 {
		t.Fatalf("retreat on step 1 emitted events: %+v", r)
	}
	if renders != 0 {
		t.Fatalf("retreat on step 1 rendered %d times", renders)
	}
}

func TestInvariantHoldsForAnySequence(t *testing.T) {
	e := New(WithTotalSteps(3))
	ops := "aararrrraaaaarraraa"
	for i, op := range ops {
		if op == 'a' {
			e.Advance()
		} else {
			e.Retreat()
		}
		s := e.State()
		if s.Current < 1 || s.Current > s.Total {
			t.Fatalf("op %d: current %d outside [1,%d]", i, s.Current, s.Total)
		}
	}
}

func TestSingleStepCompletesImmediately(t *testing.T) {
	e := New(WithTotalSteps(1))
	r := record(e)
	v := e.Render()
	if !v.BackDisabled || !v.Finishing || v.NextLabel != "Finish" {
		t.Fatalf("unexpected first view: %+v", v)
	}
	e.Advance()
	if r.completed != 1 || len(r.changes) != 0 {
		t.Fatalf("expected a single completed event, got %+v", r)
	}
	if e.State().Current != 1 {
		t.Fatalf("current = %d, want 1", e.State().Current)
	}
}

func TestScenarioBothMode(t *testing.T) {
	e := New(WithTotalSteps(3), WithProgressMode(ProgressBoth))
	r := record(e)
	v := e.Render()
	if v.BadgeText != "1/3" || math.Abs(v.Indicators.BarPercent-100.0/3) > 1e-9 {
		t.Fatalf("initial view: %+v", v)
	}
	e.Advance()
	v = e.View()
	if v.BadgeText != "2/3" || math.Abs(v.Indicators.BarPercent-200.0/3) > 1e-9 {
		t.Fatalf("after advance: %+v", v)
	}
	e.Retreat()
	if got := e.View().BadgeText; got != "1/3" {
		t.Fatalf("after retreat badge = %q", got)
	}
	if want := []int{2, 1}; !equalInts(r.changes, want) {
		t.Fatalf("changes = %v, want %v", r.changes, want)
	}
}

func TestScenarioBarModeHalfway(t *testing.T) {
	e := New(WithTotalSteps(4), WithProgressMode(ProgressBar))
	e.Advance()
	v := e.View()
	if v.Indicators.BarPercent != 50 {
		t.Fatalf("BarPercent = %v, want 50", v.Indicators.BarPercent)
	}
	if v.Indicators.ShowBadge || !v.Indicators.ShowBar {
		t.Fatalf("bar mode indicators: %+v", v.Indicators)
	}
}

func TestEventFiresAfterRender(t *testing.T) {
	var rendered []int
	e := New(WithTotalSteps(3), WithRenderer(RendererFunc(func(v View) {
		rendered = append(rendered, v.Step)
	})))
	e.Events().OnStepChange(func(ev StepChangeEvent) {
		if len(rendered) == 0 || rendered[len(rendered)-1] != ev.Step {
			t.Errorf("event for step %d arrived before render (rendered %v)", ev.Step, rendered)
		}
		if got := e.View().BadgeText; got != BadgeText(ev.Step, 3) {
			t.Errorf("listener saw stale badge %q", got)
		}
		if got := e.View().Announcement.Text; got != DefaultLocalizer(ev.Step, 3) {
			t.Errorf("listener saw stale announcement %q", got)
		}
	})
	e.Advance()
	e.Advance()
	e.Retreat()
}

func TestAnnouncementRefreshesEachPass(t *testing.T) {
	e := New(WithTotalSteps(2))
	first := e.Render().Announcement
	second := e.Render().Announcement
	if first.Text != "Step 1 of 2" || second.Text != first.Text {
		t.Fatalf("unexpected texts %q / %q", first.Text, second.Text)
	}
	if second.Seq <= first.Seq {
		t.Fatalf("repeated announcement should carry a new sequence: %d then %d", first.Seq, second.Seq)
	}
	if LivePoliteness != "polite" || !LiveAtomic {
		t.Fatalf("live region should be polite and atomic")
	}
}

func TestLabelsAndLocalizerOverrides(t *testing.T) {
	e := New(
		WithTotalSteps(2),
		WithLabels(Labels{Next: "Continue"}),
		WithLocalizer(func(current, total int) string { return "page" }),
	)
	v := e.Render()
	if v.BackLabel != "Back" || v.NextLabel != "Continue" {
		t.Fatalf("labels: back=%q next=%q", v.BackLabel, v.NextLabel)
	}
	if v.Announcement.Text != "page" {
		t.Fatalf("announcement = %q", v.Announcement.Text)
	}
	e.Advance()
	if got := e.View().NextLabel; got != "Finish" {
		t.Fatalf("next label on last step = %q, want Finish", got)
	}
}

func TestNonPositiveTotalClamped(t *testing.T) {
	for _, n := range []int{0, -3} {
		e := New(WithTotalSteps(n))
		if s := e.State(); s.Total != 1 || s.Current != 1 {
			t.Fatalf("WithTotalSteps(%d) -> %+v", n, s)
		}
	}
}

func TestSetTotalStepsClampsWithoutEvent(t *testing.T) {
	e := New(WithTotalSteps(5))
	for i := 0; i < 4; i++ {
		e.Advance()
	}
	r := record(e)
	e.SetTotalSteps(2)
	if s := e.State(); s.Current != 2 || s.Total != 2 {
		t.Fatalf("after shrink: %+v", s)
	}
	if got := e.View().BadgeText; got != "2/2" {
		t.Fatalf("badge after shrink = %q", got)
	}
	if len(r.changes) != 0 || r.completed != 0 {
		t.Fatalf("reconfiguration emitted events: %+v", r)
	}
	e.SetTotalSteps(0)
	if s := e.State(); s.Total != 1 || s.Current != 1 {
		t.Fatalf("after zero: %+v", s)
	}
}

func TestSetProgressModeRerenders(t *testing.T) {
	e := New(WithTotalSteps(3))
	e.SetProgressMode(ProgressMode("garbage"))
	if e.View().Indicators.Any() {
		t.Fatalf("unknown mode should hide indicators")
	}
}

func TestAddRendererRemove(t *testing.T) {
	e := New()
	calls := 0
	remove := e.AddRenderer(RendererFunc(func(View) { calls++ }))
	e.Advance()
	remove()
	e.Advance()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
