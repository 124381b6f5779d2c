package period

import "time"

// Type enum
type Type string

const (
	TypeWeekly   Type = "weekly"
	TypeBiweekly Type = "biweekly"
	TypeMonthly  Type = "monthly"
)

// Status enum. Open -> Closed is one-way; a closed period never reopens.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Period struct {
	ID        string
	Type      Type
	StartDate time.Time
	EndDate   time.Time
	Status    Status
	CreatedAt time.Time
	ClosedAt  *time.Time
}

// Days returns the inclusive number of calendar days in the period.
func (p Period) Days() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// WeekendDays counts Saturdays and Sundays inside the period span.
func (p Period) WeekendDays() int {
	count := 0
	for d := p.StartDate; !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			count++
		}
	}
	return count
}
