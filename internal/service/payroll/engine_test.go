package payroll

import (
	"testing"
	"time"

	"github.com/nominave/nomina-backend-go/internal/domain/deduction"
	"github.com/nominave/nomina-backend-go/internal/domain/employee"
	"github.com/nominave/nomina-backend-go/internal/domain/payroll"
	"github.com/nominave/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testEmployee(salary string) employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		FirstName:     "Maria",
		LastName:      "Perez",
		MonthlySalary: dec(salary),
		IsActive:      true,
	}
}

func testPeriod(t period.Type) period.Period {
	var start, end time.Time
	switch t {
	case period.TypeBiweekly:
		start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	case period.TypeMonthly:
		start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	case period.TypeWeekly:
		start = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // a Monday
		end = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	}
	return period.Period{
		ID:        "per-1",
		Type:      t,
		StartDate: start,
		EndDate:   end,
		Status:    period.StatusOpen,
	}
}

func testRates() deduction.RateSet {
	return deduction.RateSet{
		SeguroSocial: dec("0.04"),
		RPE:          dec("0.005"),
		LPH:          dec("0.01"),
	}
}

func testEngine() *Engine {
	return NewEngine(dec("0.05"))
}

func TestProrateBase_BiweeklyRoundTrip(t *testing.T) {
	for _, salary := range []string{"12000", "9999.99", "1500.37", "0.01"} {
		monthly := dec(salary)

		biweekly, err := ProrateBase(monthly, period.TypeBiweekly)
		require.NoError(t, err)
		full, err := ProrateBase(monthly, period.TypeMonthly)
		require.NoError(t, err)

		assert.True(t, biweekly.Mul(decimal.NewFromInt(2)).Equal(full),
			"2 * biweekly(%s) = %s, want %s", salary, biweekly.Mul(decimal.NewFromInt(2)), full)
	}
}

func TestProrateBase_Weekly(t *testing.T) {
	got, err := ProrateBase(dec("5200"), period.TypeWeekly)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1200")), "got %s", got)
}

func TestProrateBase_UnknownTypeFails(t *testing.T) {
	_, err := ProrateBase(dec("1000"), period.Type("quarterly"))
	assert.ErrorIs(t, err, payroll.ErrUnknownPeriodType)
}

func TestCompute_SeguroSocialBiweekly(t *testing.T) {
	engine := testEngine()

	item, err := engine.Compute(ComputeInput{
		Employee:     testEmployee("12000"),
		Period:       testPeriod(period.TypeBiweekly),
		AbsenceCount: 0,
		Rates:        testRates(),
	})
	require.NoError(t, err)

	// W = 12000*12/52 = 2769.2307..., SS = W * 0.04 * 2 = 221.538...
	assert.Equal(t, "221.54", item.SeguroSocial.Round(2).String())
}

func TestCompute_LPHFamilies(t *testing.T) {
	engine := testEngine()
	rates := testRates()

	// Biweekly: Sq = 6000; ((6000/30)*(45/12) + 6000) * 0.01 = 67.5
	biweekly, err := engine.Compute(ComputeInput{
		Employee: testEmployee("12000"),
		Period:   testPeriod(period.TypeBiweekly),
		Rates:    rates,
	})
	require.NoError(t, err)
	assert.True(t, biweekly.LPH.Equal(dec("67.5")), "got %s", biweekly.LPH)

	// Monthly: 12000 * 0.01 = 120
	monthly, err := engine.Compute(ComputeInput{
		Employee: testEmployee("12000"),
		Period:   testPeriod(period.TypeMonthly),
		Rates:    rates,
	})
	require.NoError(t, err)
	assert.True(t, monthly.LPH.Equal(dec("120")), "got %s", monthly.LPH)

	// Weekly: (12000/4) * 0.01 = 30
	weekly, err := engine.Compute(ComputeInput{
		Employee: testEmployee("12000"),
		Period:   testPeriod(period.TypeWeekly),
		Rates:    rates,
	})
	require.NoError(t, err)
	assert.True(t, weekly.LPH.Equal(dec("30")), "got %s", weekly.LPH)
}

func TestCompute_AttendanceBonusForfeitedByOneAbsence(t *testing.T) {
	engine := testEngine()

	perfect, err := engine.Compute(ComputeInput{
		Employee:     testEmployee("12000"),
		Period:       testPeriod(period.TypeBiweekly),
		AbsenceCount: 0,
		Rates:        testRates(),
	})
	require.NoError(t, err)
	// 5% of the biweekly base 6000
	assert.True(t, perfect.AttendanceBonus.Equal(dec("300")), "got %s", perfect.AttendanceBonus)

	oneAbsence, err := engine.Compute(ComputeInput{
		Employee:     testEmployee("12000"),
		Period:       testPeriod(period.TypeBiweekly),
		AbsenceCount: 1,
		Rates:        testRates(),
	})
	require.NoError(t, err)
	assert.True(t, oneAbsence.AttendanceBonus.IsZero())
}

func TestCompute_AbsenceDeduction(t *testing.T) {
	engine := testEngine()

	monthly, err := engine.Compute(ComputeInput{
		Employee:     testEmployee("3000"),
		Period:       testPeriod(period.TypeMonthly),
		AbsenceCount: 2,
		Rates:        testRates(),
	})
	require.NoError(t, err)
	// 3000/30 * 2 = 200
	assert.True(t, monthly.AbsenceDeduction.Equal(dec("200")), "got %s", monthly.AbsenceDeduction)

	biweekly, err := engine.Compute(ComputeInput{
		Employee:     testEmployee("3000"),
		Period:       testPeriod(period.TypeBiweekly),
		AbsenceCount: 1,
		Rates:        testRates(),
	})
	require.NoError(t, err)
	// Same daily rate as monthly: 3000/30
	assert.True(t, biweekly.AbsenceDeduction.Equal(dec("100")), "got %s", biweekly.AbsenceDeduction)

	// Weekly keeps the legacy M*30 figure
	weekly, err := engine.Compute(ComputeInput{
		Employee:     testEmployee("3000"),
		Period:       testPeriod(period.TypeWeekly),
		AbsenceCount: 1,
		Rates:        testRates(),
	})
	require.NoError(t, err)
	assert.True(t, weekly.AbsenceDeduction.Equal(dec("90000")), "got %s", weekly.AbsenceDeduction)
}

func TestCompute_LoanInstallmentAdjustment(t *testing.T) {
	engine := testEngine()
	installment := dec("150")

	cases := []struct {
		periodType period.Type
		want       string
	}{
		{period.TypeBiweekly, "150"},
		{period.TypeMonthly, "300"},
		{period.TypeWeekly, "75"},
	}

	for _, c := range cases {
		item, err := engine.Compute(ComputeInput{
			Employee:        testEmployee("12000"),
			Period:          testPeriod(c.periodType),
			Rates:           testRates(),
			LoanInstallment: installment,
		})
		require.NoError(t, err)
		assert.True(t, item.LoanInstallment.Equal(dec(c.want)),
			"%s: got %s, want %s", c.periodType, item.LoanInstallment, c.want)
	}
}

func TestCompute_NetPayReconciles(t *testing.T) {
	engine := testEngine()

	for _, periodType := range []period.Type{period.TypeWeekly, period.TypeBiweekly, period.TypeMonthly} {
		for _, absences := range []int{0, 1, 3} {
			item, err := engine.Compute(ComputeInput{
				Employee:        testEmployee("8765.43"),
				Period:          testPeriod(periodType),
				AbsenceCount:    absences,
				Rates:           testRates(),
				LoanInstallment: dec("210.55"),
			})
			require.NoError(t, err)

			wantTotal := item.SeguroSocial.Add(item.RPE).Add(item.LPH).
				Add(item.AbsenceDeduction).Add(item.LoanInstallment)
			assert.True(t, item.TotalDeductions.Equal(wantTotal))

			wantNet := item.BaseSalary.Add(item.AttendanceBonus).Sub(item.TotalDeductions)
			assert.True(t, item.NetPay.Equal(wantNet),
				"%s/%d absences: net %s != %s", periodType, absences, item.NetPay, wantNet)
		}
	}
}

func TestCompute_NegativeNetPayIsNotAnError(t *testing.T) {
	engine := testEngine()

	// A weekly period with one absence triggers the oversized M*30 charge.
	item, err := engine.Compute(ComputeInput{
		Employee:     testEmployee("2000"),
		Period:       testPeriod(period.TypeWeekly),
		AbsenceCount: 1,
		Rates:        testRates(),
	})
	require.NoError(t, err)
	assert.True(t, item.NetPay.IsNegative())
}

func TestCompute_ClosedPeriodIsRejected(t *testing.T) {
	engine := testEngine()

	closed := testPeriod(period.TypeMonthly)
	closed.Status = period.StatusClosed

	_, err := engine.Compute(ComputeInput{
		Employee: testEmployee("12000"),
		Period:   closed,
		Rates:    testRates(),
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodClosed)
}

func TestCompute_NonPositiveSalaryIsRejected(t *testing.T) {
	engine := testEngine()

	_, err := engine.Compute(ComputeInput{
		Employee: testEmployee("0"),
		Period:   testPeriod(period.TypeMonthly),
		Rates:    testRates(),
	})
	assert.ErrorIs(t, err, payroll.ErrSalaryNotPositive)
}

func TestCompute_DaysWorkedAndResting(t *testing.T) {
	engine := testEngine()

	// March 1-15 2025 contains five weekend days.
	item, err := engine.Compute(ComputeInput{
		Employee: testEmployee("12000"),
		Period:   testPeriod(period.TypeBiweekly),
		Rates:    testRates(),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, item.DaysWorked)
	assert.Equal(t, 5, item.DaysResting)
}

func TestCompute_IdenticalInputsIdenticalOutputs(t *testing.T) {
	engine := testEngine()

	in := ComputeInput{
		Employee:        testEmployee("7432.10"),
		Period:          testPeriod(period.TypeBiweekly),
		AbsenceCount:    2,
		Rates:           testRates(),
		LoanInstallment: dec("99.99"),
	}

	first, err := engine.Compute(in)
	require.NoError(t, err)
	second, err := engine.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
