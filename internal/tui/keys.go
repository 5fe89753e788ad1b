package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the stepper bindings. Directional keys only act while the
// stepper has focus; the button bindings act like clicking a button.
type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	Activate   key.Binding
	NextButton key.Binding
	Back       key.Binding
	Focus      key.Binding
	FocusPrev  key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("⏎", "press focused"),
		),
		NextButton: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next button"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back button"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "focus back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Activate, k.Focus, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.Activate, k.NextButton, k.Back},
		{k.Focus, k.FocusPrev, k.Quit},
	}
}
