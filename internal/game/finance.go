package game

import (
	"math"

	"github.com/google/uuid"
)

// MonthlyPayment computes the level amortized payment, rounded up so the
// loan never underpays. A non-positive rate falls back to straight-line.
func MonthlyPayment(principal int64, annualRate float64, termMonths int) int64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	r := annualRate / MonthsPerYear
	if r <= 0 {
		return int64(math.Ceil(float64(principal) / float64(termMonths)))
	}
	f := math.Pow(1+r, float64(termMonths))
	p := math.Ceil(float64(principal) * r * f / (f - 1))
	if p < 1 {
		p = 1
	}
	return int64(p)
}

// NewLoan opens a loan with its schedule precomputed, or nil when the
// principal is not positive.
func NewLoan(principal int64, annualRate float64, termMonths int) *Loan {
	if principal <= 0 {
		return nil
	}
	if termMonths <= 0 {
		termMonths = 1
	}
	return &Loan{
		ID:              uuid.NewString(),
		Principal:       principal,
		Remaining:       principal,
		AnnualRate:      annualRate,
		TermMonths:      termMonths,
		RemainingMonths: termMonths,
		MonthlyPayment:  MonthlyPayment(principal, annualRate, termMonths),
	}
}

// SettleMonth advances the loan one period: interest accrues on the
// remaining balance, the payment is capped so the final period pays
// exactly what is owed, and Settled reports whether the balance hit zero.
// Calling on an already settled loan is a no-op that reports settled.
func (l *Loan) SettleMonth() LoanPayment {
	p := LoanPayment{LoanID: l.ID}
	if l.Remaining <= 0 {
		p.Settled = true
		return p
	}
	r := l.AnnualRate / MonthsPerYear
	interest := int64(0)
	if r > 0 {
		interest = int64(math.Floor(float64(l.Remaining) * r))
	}
	payment := l.MonthlyPayment
	if due := l.Remaining + interest; payment > due {
		payment = due
	}
	principalPaid := payment - interest
	if principalPaid < 0 {
		principalPaid = 0
	}
	l.Remaining -= principalPaid
	if l.RemainingMonths > 0 {
		l.RemainingMonths--
	}
	p.Interest = interest
	p.PrincipalPaid = principalPaid
	p.Payment = payment
	p.RemainingAfter = l.Remaining
	p.Settled = l.Remaining == 0
	return p
}

// SettleLoans runs every loan one period, drops settled loans from the
// list, and returns the per-loan records plus the total cash out.
func SettleLoans(s *State) ([]LoanPayment, int64) {
	if len(s.Loans) == 0 {
		return nil, 0
	}
	var (
		out   []LoanPayment
		total int64
		keep  []*Loan
	)
	for _, l := range s.Loans {
		p := l.SettleMonth()
		out = append(out, p)
		total += p.Payment
		if !p.Settled {
			keep = append(keep, l)
		}
	}
	s.Loans = keep
	return out, total
}
