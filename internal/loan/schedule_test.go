package loan_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/loan-service/internal/loan"
	"github.com/Dan9191/loan-service/internal/models"
)

func defaultTerms(principal string, start time.Time) loan.Terms {
	return loan.Terms{
		Principal:      decimal.RequireFromString(principal),
		InterestRate:   decimal.RequireFromString("0.20"),
		DurationMonths: 9,
		DueDay:         13,
		StartDate:      start,
	}
}

func TestGenerateSchedule(t *testing.T) {
	start := time.Date(2025, time.March, 5, 10, 30, 0, 0, time.UTC)

	for _, principal := range []string{"1000", "1", "999.99", "12345.67", "100000"} {
		t.Run(principal, func(t *testing.T) {
			sched, err := loan.GenerateSchedule(defaultTerms(principal, start))
			require.NoError(t, err)

			expectedTotal := decimal.RequireFromString(principal).Mul(decimal.RequireFromString("1.2")).Round(2)
			assert.True(t, expectedTotal.Equal(sched.TotalAmount), "total %s, want %s", sched.TotalAmount, expectedTotal)

			require.Len(t, sched.Installments, 9)
			sum := decimal.Zero
			for i, inst := range sched.Installments {
				sum = sum.Add(inst.Amount)
				assert.Equal(t, models.StatusUnpaid, inst.Status)
				assert.Nil(t, inst.PaidAt)
				assert.Equal(t, 13, inst.DueDate.Day())
				assert.Equal(t, time.Month(int(time.March)+i), inst.DueDate.Month())
				if i > 0 {
					assert.True(t, inst.DueDate.After(sched.Installments[i-1].DueDate))
				}
			}
			assert.True(t, sum.Equal(sched.TotalAmount), "installments sum %s, total %s", sum, sched.TotalAmount)
		})
	}
}

func TestGenerateSchedule_EqualSplit(t *testing.T) {
	sched, err := loan.GenerateSchedule(defaultTerms("1500", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	assert.Equal(t, "1800", sched.TotalAmount.String())
	for _, inst := range sched.Installments {
		assert.Equal(t, "200", inst.Amount.String())
	}
}

func TestGenerateSchedule_LastInstallmentAbsorbsRounding(t *testing.T) {
	// 1000 * 1.2 = 1200 / 9 = 133.333...
	sched, err := loan.GenerateSchedule(defaultTerms("1000", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	for _, inst := range sched.Installments[:8] {
		assert.Equal(t, "133.33", inst.Amount.String())
	}
	assert.Equal(t, "133.36", sched.Installments[8].Amount.String())
}

func TestGenerateSchedule_Dates(t *testing.T) {
	loc := time.FixedZone("PKT", 5*60*60)
	start := time.Date(2025, time.May, 20, 15, 45, 0, 0, loc)

	sched, err := loan.GenerateSchedule(defaultTerms("900", start))
	require.NoError(t, err)

	first := sched.Installments[0].DueDate
	assert.Equal(t, time.Date(2025, time.May, 13, 0, 0, 0, 0, loc), first)
	assert.Equal(t, time.Date(2026, time.January, 13, 0, 0, 0, 0, loc), sched.Installments[8].DueDate)
	assert.Equal(t, time.Date(2026, time.February, 20, 15, 45, 0, 0, loc), sched.EndDate)
}

func TestGenerateSchedule_ClampsOverflowingDueDay(t *testing.T) {
	terms := defaultTerms("1200", time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC))
	terms.DueDay = 31
	terms.DurationMonths = 4

	sched, err := loan.GenerateSchedule(terms)
	require.NoError(t, err)

	expected := []time.Time{
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	}
	for i, inst := range sched.Installments {
		assert.Equal(t, expected[i], inst.DueDate, "installment %d", i)
	}
	assert.Equal(t, time.Date(2024, time.May, 31, 9, 0, 0, 0, time.UTC), sched.EndDate)

	// Jan 31 + 3 months clamps to Apr 30, not May 1.
	terms.DurationMonths = 3
	sched, err = loan.GenerateSchedule(terms)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 30, 9, 0, 0, 0, time.UTC), sched.EndDate)
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	terms := defaultTerms("900", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	terms.InterestRate = decimal.Zero

	sched, err := loan.GenerateSchedule(terms)
	require.NoError(t, err)
	assert.Equal(t, "900", sched.TotalAmount.String())
	assert.Equal(t, "100", sched.Installments[0].Amount.String())
}

func TestGenerateSchedule_Validation(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		modify func(*loan.Terms)
	}{
		{"zero principal", func(tr *loan.Terms) { tr.Principal = decimal.Zero }},
		{"negative principal", func(tr *loan.Terms) { tr.Principal = decimal.NewFromInt(-5) }},
		{"negative rate", func(tr *loan.Terms) { tr.InterestRate = decimal.RequireFromString("-0.1") }},
		{"zero duration", func(tr *loan.Terms) { tr.DurationMonths = 0 }},
		{"due day too small", func(tr *loan.Terms) { tr.DueDay = 0 }},
		{"due day too large", func(tr *loan.Terms) { tr.DueDay = 32 }},
		{"missing start date", func(tr *loan.Terms) { tr.StartDate = time.Time{} }},
		{"fraction of a cent", func(tr *loan.Terms) { tr.Principal = decimal.RequireFromString("0.001") }},
		{"sub-cent digits on a large principal", func(tr *loan.Terms) { tr.Principal = decimal.RequireFromString("1000.005") }},
		{"installment rounds to zero", func(tr *loan.Terms) { tr.Principal = decimal.RequireFromString("0.05") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := defaultTerms("1000", start)
			tt.modify(&terms)

			_, err := loan.GenerateSchedule(terms)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestGenerateSchedule_AcceptsTrailingZeros(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s, err := loan.GenerateSchedule(defaultTerms("1500.000", start))
	require.NoError(t, err)
	assert.Equal(t, "1800", s.TotalAmount.String())

	// Smallest principal whose installments are all at least one cent.
	s, err = loan.GenerateSchedule(defaultTerms("0.08", start))
	require.NoError(t, err)
	assert.Equal(t, "0.01", s.Installments[0].Amount.String())
	assert.Equal(t, "0.02", s.Installments[8].Amount.String())
}
