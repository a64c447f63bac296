package game

import (
	"fmt"
	"math"

	"kaidian/internal/data"
)

// StartMonth opens the month: world events activate first, then the
// narrative draw runs against the updated state, and the result parks as
// the pending choice. The month does not close until Choose (or a skip)
// runs.
func StartMonth(s *State, d *data.GameData, rng Rand) (data.EventDefinition, error) {
	if s.GameOver {
		return data.EventDefinition{}, ErrGameOver
	}
	if s.Pending != nil {
		return data.EventDefinition{}, ErrPendingChoice
	}
	cashAtStart := s.Player.Cash
	worldStarted := openMonth(s, d, rng)
	def := SelectEvent(s, d, rng)
	RecordEvent(s, def.ID)
	s.Pending = &PendingChoice{EventID: def.ID, WorldStarted: worldStarted, CashAtStart: cashAtStart}
	return def, nil
}

// openMonth runs the phases shared by a played and a skipped month before
// any event is drawn: flag normalization and world-event activation. Flags
// a world event adds are visible to the same month's draw.
func openMonth(s *State, d *data.GameData, rng Rand) []string {
	syncNarrativeFlags(s)
	return ActivateWorldEvents(s, d, rng)
}

// PendingEvent returns the event awaiting a choice.
func PendingEvent(s *State, d *data.GameData) (data.EventDefinition, error) {
	if s.GameOver {
		return data.EventDefinition{}, ErrGameOver
	}
	if s.Pending == nil {
		return data.EventDefinition{}, ErrNoPendingChoice
	}
	if def, ok := d.EventByID(s.Pending.EventID); ok {
		return def, nil
	}
	return fallbackEvent, nil
}

// Choose resolves the pending event with the choice named by code, applies
// the outcome, and closes the month.
func Choose(s *State, d *data.GameData, code string, rng Rand) (*TurnSummary, ChoiceResult, error) {
	if s.GameOver {
		return nil, ChoiceResult{}, ErrGameOver
	}
	if s.Pending == nil {
		return nil, ChoiceResult{}, ErrNoPendingChoice
	}

	def, ok := d.EventByID(s.Pending.EventID)
	if !ok {
		def = fallbackEvent
	}
	var chosen *data.ChoiceDefinition
	for _, c := range VisibleChoices(s, d, def.ID) {
		if c.Code == code {
			c := c
			chosen = &c
			break
		}
	}
	if chosen == nil {
		return nil, ChoiceResult{}, fmt.Errorf("%w: %q", ErrUnknownChoice, code)
	}

	cashBefore := s.Pending.CashAtStart
	worldStarted := s.Pending.WorldStarted
	res := ResolveChoice(s, *chosen, rng)
	outcome := chosen.Success
	if !res.Success {
		outcome = chosen.Fail
	}
	ap := ApplyEffects(s, outcome.Effects, !res.Success)

	if def.Category == "crisis" && res.Success {
		s.CrisisHandled++
	}
	s.Timeline = append(s.Timeline, TimelineEntry{
		Month:      s.Month,
		EventID:    def.ID,
		EventTitle: def.Title,
		ChoiceCode: chosen.Code,
		Success:    res.Success,
		Text:       outcome.Text,
	})
	s.Pending = nil

	sum := closeMonth(s, d, rng, cashBefore, ap, worldStarted)
	return sum, res, nil
}

// SkipMonth closes one month without presenting an event, spending a skip
// ticket.
func SkipMonth(s *State, d *data.GameData, rng Rand) (*TurnSummary, error) {
	if s.GameOver {
		return nil, ErrGameOver
	}
	if s.Pending != nil {
		return nil, ErrPendingChoice
	}
	if s.SkipTickets <= 0 {
		return nil, ErrNoSkipTickets
	}
	s.SkipTickets--
	cashBefore := s.Player.Cash
	worldStarted := openMonth(s, d, rng)
	return closeMonth(s, d, rng, cashBefore, Applied{}, worldStarted), nil
}

// SkipMonths skips up to n months, stopping early at game over. Returns the
// last completed summary.
func SkipMonths(s *State, d *data.GameData, n int, rng Rand) (*TurnSummary, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: skip count must be positive", ErrInvalidInput)
	}
	var last *TurnSummary
	for i := 0; i < n; i++ {
		sum, err := SkipMonth(s, d, rng)
		if err != nil {
			if last != nil {
				return last, nil
			}
			return nil, err
		}
		last = sum
		if s.GameOver {
			break
		}
	}
	return last, nil
}

// closeMonth runs the settlement pipeline and the end-of-month checks.
// World events activated when the month opened; here their modifiers are
// read. Order matters: flags sync, shop settlement, living expense,
// loans, recovery, calendar, world tick, achievements, and finally the
// game-over scan.
func closeMonth(s *State, d *data.GameData, rng Rand, cashBefore int64, ap Applied, worldStarted []string) *TurnSummary {
	syncNarrativeFlags(s)

	mods := ActiveModifiers(s, d)

	shops, shopTotal := SettleShops(s, d, mods, rng)
	s.Player.Cash += shopTotal
	s.Player.Cash -= LivingExpense
	loans, loanTotal := SettleLoans(s)
	s.Player.Cash -= loanTotal

	monthlyRecovery(s, d)

	s.TotalProfit += shopTotal
	if shopTotal > 0 {
		s.ProfitStreak++
	} else {
		s.ProfitStreak = 0
	}
	if s.Player.Health >= 100 {
		s.HealthStreak++
	} else {
		s.HealthStreak = 0
	}

	s.Month++
	s.MonthsSurvived++
	if s.MonthsSurvived%MonthsPerYear == 0 {
		s.Player.Age++
	}

	TickWorldEvents(s)
	ach := EvaluateAchievements(s, d)

	checkGameOver(s)

	sum := &TurnSummary{
		Month:            s.Month - 1,
		CashBefore:       cashBefore,
		CashAfter:        s.Player.Cash,
		NetFlow:          s.Player.Cash - cashBefore,
		ShopProfitTotal:  shopTotal,
		LivingExpense:    LivingExpense,
		LoanPaymentTotal: loanTotal,
		Applied:          ap,
		Shops:            shops,
		Loans:            loans,
		WorldStarted:     worldStarted,
		Achievements:     ach,
		GameOver:         s.GameOver,
		GameOverReason:   s.GameOverReason,
	}
	s.LastSummary = sum
	return sum
}

// monthlyRecovery applies natural recovery, scaled by the trait's
// stress-recovery factor, and tracks consecutive months at maximum stress.
func monthlyRecovery(s *State, d *data.GameData) {
	// the max-stress streak is measured before recovery, otherwise the
	// subtraction below would mask a month spent at the ceiling
	if s.Player.Stress >= 100 {
		s.StressMaxMonths++
	} else {
		s.StressMaxMonths = 0
	}

	sr := 1.0
	if t, ok := d.Traits[s.Player.TraitID]; ok && t.StressRecovery > 0 {
		sr = t.StressRecovery
	}
	s.Player.Stress = clampStat(s.Player.Stress - int(math.Round(2*sr)))
	s.Player.Health = clampStat(s.Player.Health + 1)
	s.Player.Energy = clampStat(s.Player.Energy + 6)
}

// syncNarrativeFlags keeps the relationship flags mutually exclusive, in
// priority order married, dating, divorced, single.
func syncNarrativeFlags(s *State) {
	f := s.Player.Flags
	switch {
	case f["married"]:
		delete(f, "dating")
		delete(f, "divorced")
		delete(f, "single")
	case f["dating"]:
		delete(f, "divorced")
		delete(f, "single")
	case f["divorced"]:
		delete(f, "single")
	case !f["single"]:
		f["single"] = true
	}
}

// checkGameOver scans the loss conditions in priority order; the first one
// that holds names the reason.
func checkGameOver(s *State) {
	if s.GameOver {
		return
	}
	switch {
	case s.Player.Cash <= 0:
		s.WasBankruptOnce = true
		s.GameOver = true
		s.GameOverReason = "bankruptcy"
	case s.StressMaxMonths >= StressDeathMonths:
		s.GameOver = true
		s.GameOverReason = "burnout"
	case s.Player.Age >= MaxAge:
		s.GameOver = true
		s.GameOverReason = "retirement"
	case s.Player.Health <= 0:
		s.GameOver = true
		s.GameOverReason = "collapse"
	}
}
