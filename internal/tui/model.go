// Package tui renders a stepper.Stepper with bubbletea.
//
// Model is a reusable component: a host model forwards messages to it and
// receives StepChangeMsg and CompletedMsg back. Host wraps a Model into a
// standalone program.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/stepper/stepper"
)

const (
	defaultWidth = 64
	maxBarWidth  = 40
	indent       = "  "
	buttonGap    = 2
)

// disabledMarker is appended to a disabled button's label so the state reads
// without color.
const disabledMarker = " (disabled)"

// focusMarker prefixes the label of the focused button.
const focusMarker = "▸ "

// focusTarget is the element tab moves between. Any target other than
// focusContent means the navigation row has focus and arrow keys navigate.
type focusTarget int

const (
	focusContent focusTarget = iota
	focusBack
	focusNext
)

// buttonLayout records where the buttons were drawn by the last View so
// mouse clicks can be mapped back to them.
type buttonLayout struct {
	row              int
	backStart, backW int
	nextStart, nextW int
}

// Model is the bubbletea component for one stepper.
type Model struct {
	stepper *stepper.Stepper
	titles  map[string]string
	styles  *StyleSet
	keys    keyMap
	help    help.Model
	bar     progress.Model
	bus     *stepper.KeyBus

	view    stepper.View
	focus   focusTarget
	pending []tea.Msg
	width   int
	layout  buttonLayout

	unmount        func()
	removeRenderer func()
	unsubscribe    []func()
}

// NewModel wires a Model to s. titles maps slot names to headings drawn above
// the slot content.
func NewModel(s *stepper.Stepper, styles *StyleSet, titles map[string]string) *Model {
	if styles == nil {
		styles = NewStyleSet(DarkTheme)
	}
	h := help.New()
	h.Styles.ShortKey = styles.KbdKey
	h.Styles.ShortDesc = styles.KbdDesc
	h.Styles.ShortSeparator = styles.DimTxt
	h.ShortSeparator = "  "

	m := &Model{
		stepper: s,
		titles:  titles,
		styles:  styles,
		keys:    defaultKeyMap(),
		help:    h,
		bus:     stepper.NewKeyBus(),
		width:   defaultWidth,
		view:    s.View(),
	}
	m.bar = progress.New(
		progress.WithSolidFill(string(styles.Theme.Accent)),
		progress.WithWidth(m.barWidth()),
	)
	m.bar.EmptyColor = string(styles.Theme.BarEmpty)

	m.removeRenderer = s.AddRenderer(stepper.RendererFunc(m.render))
	m.unsubscribe = append(m.unsubscribe,
		s.Events().OnStepChange(func(ev stepper.StepChangeEvent) {
			m.pending = append(m.pending, StepChangeMsg{Target: ev.Target, Step: ev.Step})
		}),
		s.Events().OnCompleted(func(ev stepper.CompletedEvent) {
			m.pending = append(m.pending, CompletedMsg{Target: ev.Target})
		}),
	)
	return m
}

// Stepper returns the underlying stepper.
func (m *Model) Stepper() *stepper.Stepper { return m.stepper }

// Focus moves focus to the navigation row with the Next button selected.
// Directional keys navigate while the row has focus.
func (m *Model) Focus() { m.setFocus(focusNext) }

// Blur moves focus back to the content.
func (m *Model) Blur() { m.setFocus(focusContent) }

func (m *Model) setFocus(f focusTarget) {
	if f == focusBack && m.view.BackDisabled {
		f = focusNext
	}
	m.focus = f
	if f == focusContent {
		m.stepper.Keyboard().Blur()
	} else {
		m.stepper.Keyboard().Focus()
	}
}

// activeFocus is the focus target, or focusContent once the keyboard adapter
// lost focus from outside, for example on unmount.
func (m *Model) activeFocus() focusTarget {
	if !m.Focused() {
		return focusContent
	}
	return m.focus
}

// cycleFocus steps through content, Back and Next, skipping a disabled Back.
func (m *Model) cycleFocus(delta int) {
	order := []focusTarget{focusContent, focusBack, focusNext}
	if m.view.BackDisabled {
		order = []focusTarget{focusContent, focusNext}
	}
	i := 0
	cur := m.activeFocus()
	for j, f := range order {
		if f == cur {
			i = j
		}
	}
	i = (i + delta + len(order)) % len(order)
	m.setFocus(order[i])
}

// Focused reports whether directional keys navigate.
func (m *Model) Focused() bool { return m.stepper.Keyboard().Focused() }

// Init mounts the stepper: the first render pass runs and the keyboard
// listener is attached. Close releases it.
func (m *Model) Init() tea.Cmd {
	if m.unmount == nil {
		m.unmount = m.stepper.Mount(m.bus)
	}
	return nil
}

// Close detaches the keyboard listener and the renderer. It is safe to call
// more than once.
func (m *Model) Close() {
	if m.unmount != nil {
		m.unmount()
		m.unmount = nil
	}
	if m.removeRenderer != nil {
		m.removeRenderer()
		m.removeRenderer = nil
	}
	for _, off := range m.unsubscribe {
		off()
	}
	m.unsubscribe = nil
}

func (m *Model) render(v stepper.View) {
	m.view = v
	if m.focus == focusBack && v.BackDisabled {
		m.focus = focusNext
	}
}

// Update handles input and returns the queued stepper events as commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = m.barWidth()
		m.help.Width = msg.Width
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, m.flush()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.bus.Press(stepper.KeyNext)
	case key.Matches(msg, m.keys.Previous):
		m.bus.Press(stepper.KeyPrevious)
	case key.Matches(msg, m.keys.Activate):
		switch m.activeFocus() {
		case focusBack:
			m.PressBack()
		case focusNext:
			m.PressNext()
		}
	case key.Matches(msg, m.keys.NextButton):
		m.PressNext()
	case key.Matches(msg, m.keys.Back):
		m.PressBack()
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.cycleFocus(-1)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	l := m.layout
	if msg.Y != l.row {
		return
	}
	switch {
	case msg.X >= l.backStart && msg.X < l.backStart+l.backW:
		m.PressBack()
	case msg.X >= l.nextStart && msg.X < l.nextStart+l.nextW:
		m.PressNext()
	}
}

// PressBack activates the Back button. It does nothing while disabled.
func (m *Model) PressBack() {
	if m.view.BackDisabled {
		return
	}
	m.stepper.Retreat()
}

// PressNext activates the Next/Finish button.
func (m *Model) PressNext() {
	m.stepper.Advance()
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	msgs := m.pending
	m.pending = nil
	if len(msgs) == 1 {
		msg := msgs[0]
		return func() tea.Msg { return msg }
	}
	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Sequence(cmds...)
}

func (m *Model) barWidth() int {
	w := m.width - 24
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// Snapshot returns the view of the last render pass.
func (m *Model) Snapshot() stepper.View { return m.view }

// View renders the stepper.
func (m *Model) View() string {
	v := m.view
	var b strings.Builder

	if ind := v.Indicators; ind.Any() {
		var parts []string
		if ind.ShowBadge {
			parts = append(parts, m.styles.Badge.Render(v.BadgeText))
		}
		if ind.ShowBar {
			parts = append(parts, m.bar.ViewAs(ind.BarPercent/100))
		}
		b.WriteString(indent + strings.Join(parts, "  ") + "\n\n")
	}

	b.WriteString(m.renderContent(v))
	b.WriteString("\n")

	m.layout.row = strings.Count(b.String(), "\n")
	b.WriteString(m.renderButtons(v))
	b.WriteString("\n\n")
	b.WriteString(indent + m.help.View(m.keys) + "\n")
	return b.String()
}

// renderContent draws the live-region announcement together with the active
// slot so both read as one unit.
func (m *Model) renderContent(v stepper.View) string {
	var body strings.Builder
	body.WriteString(m.styles.Announcement.Render(v.Announcement.Text))
	if title := m.titles[v.Slot]; title != "" {
		body.WriteString("\n" + m.styles.Title.Render(title))
	}
	if content := m.stepper.Content(); content != "" {
		body.WriteString("\n\n" + m.styles.PrimaryTxt.Render(strings.TrimRight(content, "\n")))
	}

	boxWidth := m.width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}
	box := m.styles.ContentBox
	if m.Focused() {
		box = m.styles.ContentActive
	}
	rendered := box.Width(boxWidth).Render(body.String())
	return indentLines(rendered) + "\n"
}

func (m *Model) renderButtons(v stepper.View) string {
	backStyle, backLabel := m.styles.ButtonSecondary, v.BackLabel
	if v.BackDisabled {
		backStyle, backLabel = m.styles.ButtonDisabled, v.BackLabel+disabledMarker
	}
	nextStyle, nextLabel := m.styles.ButtonPrimary, v.NextLabel
	switch m.activeFocus() {
	case focusBack:
		backStyle, backLabel = m.styles.ButtonFocused, focusMarker+backLabel
	case focusNext:
		nextStyle, nextLabel = m.styles.ButtonFocused, focusMarker+nextLabel
	}
	back := backStyle.Render(backLabel)
	next := nextStyle.Render(nextLabel)

	backW, nextW := lipgloss.Width(back), lipgloss.Width(next)
	gap := m.width - len(indent)*2 - backW - nextW
	if gap < buttonGap {
		gap = buttonGap
	}
	m.layout.backStart = len(indent)
	m.layout.backW = backW
	m.layout.nextStart = len(indent) + backW + gap
	m.layout.nextW = nextW
	return indent + back + strings.Repeat(" ", gap) + next
}

func indentLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}

// String describes the model for debugging.
func (m *Model) String() string {
	return fmt.Sprintf("stepper %s at %s", m.stepper.ID(), m.view.BadgeText)
}
