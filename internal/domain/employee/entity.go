package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Cedula        string
	Position      *string
	MonthlySalary decimal.Decimal
	NFCTagID      *string
	IsActive      bool
	HireDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
