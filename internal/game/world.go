package game

import "kaidian/internal/data"

// Modifiers is the aggregate of every active world event, applied during
// settlement. Multipliers combine by product and clamp to [0,3]; the two
// chance fields combine as independent probabilities.
type Modifiers struct {
	DineInTraffic     float64
	DeliveryTraffic   float64
	AvgTicket         float64
	LaborCost         float64
	CogsCost          float64
	MonthlyFixedAdd   int64
	ForcedCloseChance float64
	ShopDamageChance  float64
}

func neutralModifiers() Modifiers {
	return Modifiers{DineInTraffic: 1, DeliveryTraffic: 1, AvgTicket: 1, LaborCost: 1, CogsCost: 1}
}

// ActiveModifiers folds all active world events into one Modifiers value.
func ActiveModifiers(s *State, d *data.GameData) Modifiers {
	m := neutralModifiers()
	for _, act := range s.WorldActive {
		def, ok := worldDef(d, act.DefID)
		if !ok {
			continue
		}
		m.DineInTraffic *= nonZero(def.DineInTrafficMult)
		m.DeliveryTraffic *= nonZero(def.DeliveryTrafficMult)
		m.AvgTicket *= nonZero(def.AvgTicketMult)
		m.LaborCost *= nonZero(def.LaborCostMult)
		m.CogsCost *= nonZero(def.CogsCostMult)
		m.MonthlyFixedAdd += def.MonthlyFixedCostAdd
		m.ForcedCloseChance = probUnion(m.ForcedCloseChance, def.ForcedCloseChance)
		m.ShopDamageChance = probUnion(m.ShopDamageChance, def.ShopDamageChance)
	}
	m.DineInTraffic = clampMult(m.DineInTraffic)
	m.DeliveryTraffic = clampMult(m.DeliveryTraffic)
	m.AvgTicket = clampMult(m.AvgTicket)
	m.LaborCost = clampMult(m.LaborCost)
	m.CogsCost = clampMult(m.CogsCost)
	m.ForcedCloseChance = clamp01(m.ForcedCloseChance)
	m.ShopDamageChance = clamp01(m.ShopDamageChance)
	return m
}

// ActivateWorldEvents rolls every inactive definition whose trigger is met
// and starts those that pass, applying their one-time consequences.
// Returns the ids started this month.
func ActivateWorldEvents(s *State, d *data.GameData, rng Rand) []string {
	var started []string
	for _, def := range d.WorldEvents {
		if s.worldIsActive(def.ID) {
			continue
		}
		if !triggerMet(def.Trigger, s) {
			continue
		}
		if rng.Next() >= def.Probability {
			continue
		}

		dur := -1
		if !(def.DurationMin == -1 && def.DurationMax == -1) {
			lo, hi := def.DurationMin, def.DurationMax
			if lo < 1 {
				lo = 1
			}
			if hi < 1 {
				hi = 1
			}
			dur = rng.NextInt(lo, hi)
		}
		s.WorldActive = append(s.WorldActive, ActiveWorldEvent{DefID: def.ID, RemainingMonths: dur})

		if def.OneTimeCostAdd != 0 {
			s.Player.Cash -= def.OneTimeCostAdd
		}
		if def.RatingDelta != 0 {
			if sh := s.MainShop(); sh != nil {
				sh.Rating = clampRating(round1(sh.Rating + def.RatingDelta))
			}
		}
		for _, f := range def.FlagsAdd {
			s.Player.Flags[f] = true
		}
		started = append(started, def.ID)
	}
	return started
}

// TickWorldEvents decrements durations and expires finished events.
// Permanent events (duration -1) never expire.
func TickWorldEvents(s *State) {
	keep := s.WorldActive[:0]
	for _, act := range s.WorldActive {
		if act.RemainingMonths == -1 {
			keep = append(keep, act)
			continue
		}
		act.RemainingMonths--
		if act.RemainingMonths > 0 {
			keep = append(keep, act)
		}
	}
	s.WorldActive = keep
}

func (s *State) worldIsActive(id string) bool {
	for _, a := range s.WorldActive {
		if a.DefID == id {
			return true
		}
	}
	return false
}

func triggerMet(t data.Trigger, s *State) bool {
	switch t.Field {
	case "":
		return true
	case "month":
		return compare(float64(s.Month), t.Op, t.Value)
	case "cash":
		return compare(float64(s.Player.Cash), t.Op, t.Value)
	case "rating":
		sh := s.MainShop()
		if sh == nil {
			return false
		}
		return compare(sh.Rating, t.Op, t.Value)
	case "location":
		for _, sh := range s.Shops {
			if sh.LocationID == t.Location {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func compare(v float64, op string, want float64) bool {
	switch op {
	case ">=":
		return v >= want
	case "<=":
		return v <= want
	case ">":
		return v > want
	case "<":
		return v < want
	case "=", "==":
		return v == want
	default:
		return true
	}
}

func worldDef(d *data.GameData, id string) (data.WorldEventDefinition, bool) {
	for _, def := range d.WorldEvents {
		if def.ID == id {
			return def, true
		}
	}
	return data.WorldEventDefinition{}, false
}

func probUnion(a, b float64) float64 {
	return 1 - (1-a)*(1-b)
}

func clampMult(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 3 {
		return 3
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
