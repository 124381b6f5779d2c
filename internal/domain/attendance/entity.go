package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is derived from a day's raw clock data, never stored.
type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusIncomplete Status = "incomplete"
	StatusAbsent     Status = "absent"
	StatusJustified  Status = "justified"
	StatusError      Status = "error"
)

// Record is one calendar day of raw clock data for one employee, exactly as
// the capture collaborator logged it. Clock values stay as "HH:MM" strings so
// a malformed reading survives to classification instead of failing on scan.
type Record struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	ClockIn           *string
	ClockOut          *string
	Justified         bool
	JustificationType *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// Classification is the derived reading of one Record.
type Classification struct {
	Status      Status
	HoursWorked decimal.Decimal
	Reason      string
}
