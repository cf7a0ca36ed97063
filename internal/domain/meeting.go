package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Weekday is the canonical key of a teaching day
type Weekday string

const (
	Monday    Weekday = "segunda-feira"
	Tuesday   Weekday = "terca-feira"
	Wednesday Weekday = "quarta-feira"
	Thursday  Weekday = "quinta-feira"
	Friday    Weekday = "sexta-feira"
)

// Weekdays lists the canonical days in calendar order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// weekdayAliases maps accent-folded, lower-cased labels to canonical days
var weekdayAliases = map[string]Weekday{
	"segunda-feira": Monday, "segunda": Monday, "seg": Monday, "2a": Monday, "2a feira": Monday, "monday": Monday, "mon": Monday,
	"terca-feira": Tuesday, "terca": Tuesday, "ter": Tuesday, "3a": Tuesday, "3a feira": Tuesday, "tuesday": Tuesday, "tue": Tuesday,
	"quarta-feira": Wednesday, "quarta": Wednesday, "qua": Wednesday, "4a": Wednesday, "4a feira": Wednesday, "wednesday": Wednesday, "wed": Wednesday,
	"quinta-feira": Thursday, "quinta": Thursday, "qui": Thursday, "5a": Thursday, "5a feira": Thursday, "thursday": Thursday, "thu": Thursday,
	"sexta-feira": Friday, "sexta": Friday, "sex": Friday, "6a": Friday, "6a feira": Friday, "friday": Friday, "fri": Friday,
}

var weekdayLabels = map[Weekday]string{
	Monday:    "Segunda",
	Tuesday:   "Terça",
	Wednesday: "Quarta",
	Thursday:  "Quinta",
	Friday:    "Sexta",
}

// NormalizeWeekday maps a localized day label to its canonical key.
// Unrecognized labels are returned lower-cased and otherwise unchanged.
func NormalizeWeekday(label string) Weekday {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	if day, ok := weekdayAliases[foldAccents(trimmed)]; ok {
		return day
	}
	// "2ª feira" style labels
	folded := strings.NewReplacer("ª", "a", "º", "a").Replace(foldAccents(trimmed))
	if day, ok := weekdayAliases[folded]; ok {
		return day
	}
	return Weekday(trimmed)
}

// Label returns the short display name of the day
func (d Weekday) Label() string {
	if label, ok := weekdayLabels[d]; ok {
		return label
	}
	return string(d)
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// TimeSlot is a start-end window in literal "HH:MM" form
type TimeSlot struct {
	End   string
	Start string
}

// ParseTimeSlot splits "09:00-11:00" into its two halves.
// A string without a separator becomes a slot with an empty end.
func ParseTimeSlot(s string) TimeSlot {
	start, end, _ := strings.Cut(strings.TrimSpace(s), "-")
	return TimeSlot{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
}

// String renders the slot as its grid key
func (t TimeSlot) String() string {
	return t.Start + "-" + t.End
}

// Meeting is one weekly occurrence of a section
type Meeting struct {
	Day  Weekday
	Room string
	Slot TimeSlot
}
