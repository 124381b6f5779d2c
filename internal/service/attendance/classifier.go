package attendance

import (
	"fmt"
	"time"

	"github.com/nominave/nomina-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// Schedule holds the workday constants classification runs with.
type Schedule struct {
	ExpectedStart string // "HH:MM"
	GraceMinutes  int
	FullDayHours  int
}

func DefaultSchedule() Schedule {
	return Schedule{
		ExpectedStart: "08:00",
		GraceMinutes:  15,
		FullDayHours:  8,
	}
}

// Classifier derives an attendance status and hours worked from one day's
// raw clock data. It is a pure computation: no I/O, safe to share.
type Classifier struct {
	schedule      Schedule
	expectedStart int // minutes since midnight
	halfDay       decimal.Decimal
	fullDay       decimal.Decimal
}

func NewClassifier(schedule Schedule) *Classifier {
	expectedStart, err := parseTimeOfDay(schedule.ExpectedStart)
	if err != nil {
		schedule.ExpectedStart = DefaultSchedule().ExpectedStart
		expectedStart, _ = parseTimeOfDay(schedule.ExpectedStart)
	}
	fullDay := decimal.NewFromInt(int64(schedule.FullDayHours))
	return &Classifier{
		schedule:      schedule,
		expectedStart: expectedStart,
		halfDay:       fullDay.Div(decimal.NewFromInt(2)),
		fullDay:       fullDay,
	}
}

// Classify maps one record to exactly one status. Malformed clock values
// degrade to StatusError; no error is ever returned.
func (c *Classifier) Classify(rec attendance.Record) attendance.Classification {
	// A prior justification overrides everything else, including a missing
	// clock-in: the day is credited in full.
	if rec.Justified {
		return attendance.Classification{
			Status:      attendance.StatusJustified,
			HoursWorked: c.fullDay,
			Reason:      "Asistencia justificada",
		}
	}

	if rec.ClockIn == nil {
		return attendance.Classification{
			Status:      attendance.StatusAbsent,
			HoursWorked: decimal.Zero,
			Reason:      "No se registró entrada",
		}
	}

	clockIn, err := parseTimeOfDay(*rec.ClockIn)
	if err != nil {
		return attendance.Classification{
			Status:      attendance.StatusError,
			HoursWorked: decimal.Zero,
			Reason:      fmt.Sprintf("Hora de entrada inválida: %q", *rec.ClockIn),
		}
	}

	// Partial attendance without a close is not creditable: hours stay zero
	// even though the clock-in is known.
	if rec.ClockOut == nil {
		return attendance.Classification{
			Status:      attendance.StatusIncomplete,
			HoursWorked: decimal.Zero,
			Reason:      "Falta registro de salida",
		}
	}

	clockOut, err := parseTimeOfDay(*rec.ClockOut)
	if err != nil {
		return attendance.Classification{
			Status:      attendance.StatusError,
			HoursWorked: decimal.Zero,
			Reason:      fmt.Sprintf("Hora de salida inválida: %q", *rec.ClockOut),
		}
	}

	// A clock-out before the clock-in is an overnight shift, not an error:
	// the exit falls on the next calendar day.
	workedMinutes := clockOut - clockIn
	if workedMinutes < 0 {
		workedMinutes += minutesPerDay
	}
	hours := decimal.NewFromInt(int64(workedMinutes)).Div(decimal.NewFromInt(60))

	// Under half a day counts as a full absence for payroll purposes.
	if hours.LessThan(c.halfDay) {
		return attendance.Classification{
			Status:      attendance.StatusAbsent,
			HoursWorked: decimal.Zero,
			Reason:      fmt.Sprintf("Trabajó menos de media jornada (%s hrs)", hours.Round(2)),
		}
	}

	lateness := clockIn - c.expectedStart
	if lateness > c.schedule.GraceMinutes {
		return attendance.Classification{
			Status:      attendance.StatusLate,
			HoursWorked: hours,
			Reason:      fmt.Sprintf("Llegó tarde (%d minutos)", lateness),
		}
	}

	if hours.LessThan(c.fullDay) {
		return attendance.Classification{
			Status:      attendance.StatusIncomplete,
			HoursWorked: hours,
			Reason:      fmt.Sprintf("Jornada incompleta (%s hrs)", hours.Round(2)),
		}
	}

	return attendance.Classification{
		Status:      attendance.StatusPresent,
		HoursWorked: hours,
		Reason:      "Asistencia completa",
	}
}

// parseTimeOfDay converts "HH:MM" to minutes since midnight.
func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
