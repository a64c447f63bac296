package game

import (
	"math"

	"kaidian/internal/data"
)

// ApplyEffects mutates the state per each instruction and returns the
// accumulated deltas. failed marks the outcome as a failure, which unlocks
// the system scope (followup scheduling). Unknown scopes and ops are
// ignored rather than rejected; content typos must never crash a turn.
func ApplyEffects(s *State, effs []data.Effect, failed bool) Applied {
	var ap Applied
	for _, e := range effs {
		switch e.Scope {
		case "stat":
			applyStat(s, e, &ap)
		case "shop_stat":
			applyShopStat(s, e, &ap)
		case "flag":
			applyFlag(s, e, &ap)
		case "system":
			if failed && e.Key == "followup_event_id" && e.Op == "set" && e.Text != "" {
				s.PendingEvents = append(s.PendingEvents, e.Text)
				ap.FollowupEventID = e.Text
			}
		}
	}
	return ap
}

func applyStat(s *State, e data.Effect, ap *Applied) {
	if e.Target == "cash" {
		before := s.Player.Cash
		switch e.Op {
		case "add":
			s.Player.Cash += int64(math.Round(e.Value))
		case "mul":
			s.Player.Cash = int64(math.Round(float64(s.Player.Cash) * e.Value))
		default:
			return
		}
		ap.Cash += s.Player.Cash - before
		return
	}

	var p *int
	switch e.Target {
	case "stress":
		p = &s.Player.Stress
	case "health":
		p = &s.Player.Health
	case "energy":
		p = &s.Player.Energy
	case "reputation":
		p = &s.Player.Reputation
	case "morale":
		p = &s.Player.Morale
	default:
		return
	}
	before := *p
	var next float64
	switch e.Op {
	case "add":
		next = float64(*p) + e.Value
	case "mul":
		next = float64(*p) * e.Value
	default:
		return
	}
	*p = clampStat(int(math.Round(next)))
	delta := *p - before
	switch e.Target {
	case "stress":
		ap.Stress += delta
	case "health":
		ap.Health += delta
	case "energy":
		ap.Energy += delta
	case "reputation":
		ap.Reputation += delta
	case "morale":
		ap.Morale += delta
	}
}

func applyShopStat(s *State, e data.Effect, ap *Applied) {
	if e.Stat != "rating" {
		return
	}
	sh := s.MainShop()
	if e.Shop != "" && e.Shop != "main" {
		if byID := s.ShopByID(e.Shop); byID != nil {
			sh = byID
		}
	}
	if sh == nil {
		return
	}
	before := sh.Rating
	switch e.Op {
	case "add":
		sh.Rating = clampRating(round1(sh.Rating + e.Value))
	case "mul":
		sh.Rating = clampRating(round1(sh.Rating * e.Value))
	default:
		return
	}
	ap.Rating += sh.Rating - before
}

func applyFlag(s *State, e data.Effect, ap *Applied) {
	if e.Target == "" {
		return
	}
	switch e.Op {
	case "add":
		if !s.Player.Flags[e.Target] {
			s.Player.Flags[e.Target] = true
			ap.FlagsAdded = append(ap.FlagsAdded, e.Target)
		}
	case "remove":
		if s.Player.Flags[e.Target] {
			delete(s.Player.Flags, e.Target)
			ap.FlagsRemoved = append(ap.FlagsRemoved, e.Target)
		}
	}
}
