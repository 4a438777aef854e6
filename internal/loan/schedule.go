package loan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/loan-service/internal/models"
)

// Terms are the fixed conditions a loan is originated with.
type Terms struct {
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal
	DurationMonths int
	DueDay         int
	StartDate      time.Time
}

// Schedule is the repayment plan derived from Terms.
type Schedule struct {
	TotalAmount  decimal.Decimal
	EndDate      time.Time
	Installments []models.Installment
}

// Validate checks the preconditions of GenerateSchedule.
func (t Terms) Validate() error {
	if !t.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive", models.ErrValidation)
	}
	if !t.Principal.Equal(t.Principal.Round(2)) {
		return fmt.Errorf("%w: principal must not have fractions of a cent", models.ErrValidation)
	}
	if t.InterestRate.IsNegative() {
		return fmt.Errorf("%w: interest rate must not be negative", models.ErrValidation)
	}
	if t.DurationMonths < 1 {
		return fmt.Errorf("%w: duration must be at least one month", models.ErrValidation)
	}
	if t.DueDay < 1 || t.DueDay > 31 {
		return fmt.Errorf("%w: due day must be between 1 and 31, got %d", models.ErrValidation, t.DueDay)
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", models.ErrValidation)
	}
	if _, each := t.split(); !each.IsPositive() {
		return fmt.Errorf("%w: principal %s is too small for %d installments", models.ErrValidation, t.Principal, t.DurationMonths)
	}
	return nil
}

// split returns the total to repay and the regular installment amount.
func (t Terms) split() (total, each decimal.Decimal) {
	total = t.Principal.Mul(decimal.NewFromInt(1).Add(t.InterestRate)).Round(2)
	each = total.Div(decimal.NewFromInt(int64(t.DurationMonths))).RoundDown(2)
	return total, each
}

// GenerateSchedule splits principal*(1+rate) into DurationMonths equal monthly installments.
//
// The first installment is due on DueDay of the start month, the next on DueDay of the following
// month and so on; months shorter than DueDay clamp to their last day. Each installment is the
// total divided by the duration rounded down to cents, and the last one absorbs the leftover cents
// so that the installments always add up to the total exactly.
func GenerateSchedule(t Terms) (Schedule, error) {
	if err := t.Validate(); err != nil {
		return Schedule{}, err
	}

	total, each := t.split()
	last := total.Sub(each.Mul(decimal.NewFromInt(int64(t.DurationMonths - 1))))

	loc := t.StartDate.Location()
	firstDue := midnight(t.StartDate, loc)

	installments := make([]models.Installment, 0, t.DurationMonths)
	for i := 0; i < t.DurationMonths; i++ {
		amount := each
		if i == t.DurationMonths-1 {
			amount = last
		}
		installments = append(installments, models.Installment{
			Amount:  amount,
			DueDate: ShiftMonths(firstDue, i, t.DueDay),
			Status:  models.StatusUnpaid,
		})
	}

	return Schedule{
		TotalAmount:  total,
		EndDate:      ShiftMonths(t.StartDate, t.DurationMonths, t.StartDate.Day()),
		Installments: installments,
	}, nil
}
