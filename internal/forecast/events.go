package forecast

import "time"

// Event is one dated demand-boosting entry in the retail calendar.
type Event struct {
	Name       string
	Date       time.Time
	Multiplier float64
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DefaultCalendar covers the major Mumbai retail events for 2026.
func DefaultCalendar() []Event {
	return []Event{
		{Name: "Makar Sankranti", Date: day(2026, time.January, 14), Multiplier: 1.25},
		{Name: "Holi", Date: day(2026, time.March, 4), Multiplier: 1.35},
		{Name: "Eid al-Fitr", Date: day(2026, time.March, 20), Multiplier: 1.40},
		{Name: "Gudi Padwa", Date: day(2026, time.March, 19), Multiplier: 1.30},
		{Name: "Exam Season Peak", Date: day(2026, time.June, 1), Multiplier: 1.20},
		{Name: "Ganesh Chaturthi", Date: day(2026, time.September, 14), Multiplier: 1.50},
		{Name: "Navratri Start", Date: day(2026, time.October, 11), Multiplier: 1.35},
		{Name: "Diwali", Date: day(2026, time.November, 8), Multiplier: 1.60},
		{Name: "Christmas Week", Date: day(2026, time.December, 25), Multiplier: 1.30},
	}
}

// maxMultiplierInWindow returns the name and multiplier of the strongest
// event dated within [from, from+days), or ("", 1.0) when none applies.
func maxMultiplierInWindow(events []Event, from time.Time, days int) (string, float64) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := start.AddDate(0, 0, days)

	name := ""
	mult := 1.0
	for _, e := range events {
		if e.Date.Before(start) || !e.Date.Before(end) {
			continue
		}
		if e.Multiplier > mult {
			name = e.Name
			mult = e.Multiplier
		}
	}
	return name, mult
}
