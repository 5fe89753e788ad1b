package stepper

import "github.com/initializ/stepper/i18n"

// Localizer renders the "step X of Y" announcement.
type Localizer func(current, total int) string

// DefaultLocalizer is the English "Step X of Y" text.
func DefaultLocalizer(current, total int) string {
	return i18n.English.StepXofY(current, total)
}

// The announcement region is polite (it waits for the reader to finish) and
// atomic (it is read out whole). Neither is configurable.
const (
	LivePoliteness = "polite"
	LiveAtomic     = true
)

// Announcement is one live-region update. Seq increases on every render pass
// so an unchanged Text still counts as a new announcement.
type Announcement struct {
	Text string
	Seq  uint64
}

// Announcer produces live-region announcements through a Localizer.
type Announcer struct {
	localize Localizer
	seq      uint64
	last     Announcement
}

// NewAnnouncer returns an Announcer; a nil localizer selects DefaultLocalizer.
func NewAnnouncer(l Localizer) *Announcer {
	if l == nil {
		l = DefaultLocalizer
	}
	return &Announcer{localize: l}
}

// Text returns the announcement text for a position without recording it.
func (a *Announcer) Text(current, total int) string {
	return a.localize(current, total)
}

// Announce replaces the current announcement.
func (a *Announcer) Announce(current, total int) Announcement {
	a.seq++
	a.last = Announcement{
		Text: a.localize(current, total),
		Seq:  a.seq,
	}
	return a.last
}

// Last returns the most recent announcement.
func (a *Announcer) Last() Announcement { return a.last }
