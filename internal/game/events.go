package game

import (
	"strings"

	"kaidian/internal/data"
)

const fallbackEventID = "SYS_NOTHING"

// fallbackEvent is drawn when nothing in the table qualifies, so a month
// always has an event to present.
var fallbackEvent = data.EventDefinition{
	ID:          fallbackEventID,
	Category:    "daily",
	Title:       "An Uneventful Month",
	Description: "The shop hums along. Nothing demands a decision.",
	BaseWeight:  1,
}

// fallbackChoice is offered when flag rules hide every authored choice.
var fallbackChoice = data.ChoiceDefinition{
	UID:         "SYS_REST",
	Code:        "A",
	Text:        "Take it easy and mind the store.",
	SuccessRate: 1,
	Success: data.Outcome{
		Text: "A calm month does you good.",
		Effects: []data.Effect{
			{Scope: "stat", Op: "add", Target: "stress", Value: -3},
			{Scope: "stat", Op: "add", Target: "health", Value: 1},
		},
	},
}

// EventWeight computes the effective weight: base, a 1.2x trait-advantage
// bonus when the player's trait carries the event's advantage token, then
// each weight rule whose condition set matches.
func EventWeight(def data.EventDefinition, s *State) float64 {
	w := def.BaseWeight
	if def.Meta.TraitAdvantage != "" && strings.Contains(s.Player.TraitID, def.Meta.TraitAdvantage) {
		w *= 1.2
	}
	ctx := s.ConditionContext()
	for _, rule := range def.WeightRules {
		if !MatchConditions(rule.When, ctx) {
			continue
		}
		switch rule.Op {
		case "mul":
			w *= rule.Value
		case "add":
			w += rule.Value
		}
	}
	return w
}

// occurrenceAllowed enforces once-only, max-total and cooldown limits
// against the per-event history.
func occurrenceAllowed(def data.EventDefinition, s *State) bool {
	rec := s.EventHistory[def.ID]
	if def.Occurrence.OnceOnly && rec.Count > 0 {
		return false
	}
	if def.Occurrence.MaxTotal > 0 && rec.Count >= def.Occurrence.MaxTotal {
		return false
	}
	if cd := def.Occurrence.CooldownMonths; cd > 0 && rec.Count > 0 && s.Month-rec.LastMonth <= cd {
		return false
	}
	return true
}

// SelectEvent picks the month's event. Forced events queued by failed
// outcomes dequeue first; otherwise a weighted draw over every qualifying
// definition, with the built-in fallback when none qualify.
func SelectEvent(s *State, d *data.GameData, rng Rand) data.EventDefinition {
	for len(s.PendingEvents) > 0 {
		id := s.PendingEvents[0]
		s.PendingEvents = s.PendingEvents[1:]
		if def, ok := d.EventByID(id); ok {
			return def
		}
		// unknown id in the queue falls through to the normal draw
	}

	ctx := s.ConditionContext()
	type cand struct {
		def data.EventDefinition
		w   float64
	}
	var (
		cands []cand
		total float64
	)
	for _, def := range d.Events {
		w := EventWeight(def, s)
		if w <= 0 {
			continue
		}
		if !MatchConditions(def.Conditions, ctx) {
			continue
		}
		if !occurrenceAllowed(def, s) {
			continue
		}
		cands = append(cands, cand{def, w})
		total += w
	}
	if len(cands) == 0 {
		return fallbackEvent
	}

	r := rng.Next() * total
	for _, c := range cands {
		r -= c.w
		if r <= 0 {
			return c.def
		}
	}
	return cands[len(cands)-1].def
}

// VisibleChoices filters an event's choices by flag rules, substituting
// the built-in rest choice when nothing survives.
func VisibleChoices(s *State, d *data.GameData, eventID string) []data.ChoiceDefinition {
	var out []data.ChoiceDefinition
	for _, c := range d.Choices(eventID) {
		if MatchFlags(c.Visibility, s.Player.Flags) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		fb := fallbackChoice
		fb.EventID = eventID
		out = append(out, fb)
	}
	return out
}

// ChoiceResult records the roll that decided an outcome.
type ChoiceResult struct {
	Success bool    `json:"success"`
	Rate    float64 `json:"rate"`
	Roll    float64 `json:"roll"`
}

// ResolveChoice makes the single success roll. A trait-bonus match adds a
// flat 0.10 to the configured rate before clamping.
func ResolveChoice(s *State, c data.ChoiceDefinition, rng Rand) ChoiceResult {
	rate := c.SuccessRate
	if c.TraitBonus != "" && strings.Contains(s.Player.TraitID, c.TraitBonus) {
		rate += 0.10
	}
	rate = clamp01(rate)
	roll := rng.Next()
	return ChoiceResult{Success: roll < rate, Rate: rate, Roll: roll}
}

// RecordEvent bumps the occurrence history after an event is presented.
func RecordEvent(s *State, eventID string) {
	rec := s.EventHistory[eventID]
	rec.Count++
	rec.LastMonth = s.Month
	s.EventHistory[eventID] = rec
}
