package game

import (
	"testing"

	"kaidian/internal/data"
)

func eventData(evs ...data.EventDefinition) *data.GameData {
	d := data.Default()
	d.Events = evs
	return d
}

func flatEvent(id string, w float64) data.EventDefinition {
	return data.EventDefinition{ID: id, Title: id, BaseWeight: w, Occurrence: data.Occurrence{MaxTotal: -1}}
}

func TestEventWeightTraitAdvantage(t *testing.T) {
	s := testState(t) // trait ISTP
	def := flatEvent("E", 10)
	def.Meta.TraitAdvantage = "S"
	if got := EventWeight(def, s); got != 12 {
		t.Fatalf("trait advantage should multiply by 1.2: got %v", got)
	}
	def.Meta.TraitAdvantage = "E"
	if got := EventWeight(def, s); got != 10 {
		t.Fatalf("no advantage expected: got %v", got)
	}
}

func TestEventWeightRules(t *testing.T) {
	s := testState(t)
	s.Player.Stress = 80
	def := flatEvent("E", 10)
	def.WeightRules = []data.WeightRule{
		{When: data.ConditionSet{Stress: data.Range{60, 100}}, Op: "mul", Value: 2},
		{When: data.ConditionSet{Stress: data.Range{0, 20}}, Op: "add", Value: 100},
	}
	if got := EventWeight(def, s); got != 20 {
		t.Fatalf("only the matching rule should apply: got %v", got)
	}
}

func TestOccurrenceLimits(t *testing.T) {
	s := testState(t)
	s.Month = 10

	once := flatEvent("ONCE", 1)
	once.Occurrence = data.Occurrence{OnceOnly: true, MaxTotal: -1}
	if !occurrenceAllowed(once, s) {
		t.Fatalf("unseen once-only should be allowed")
	}
	s.EventHistory["ONCE"] = EventRecord{Count: 1, LastMonth: 2}
	if occurrenceAllowed(once, s) {
		t.Fatalf("seen once-only must block")
	}

	capped := flatEvent("CAP", 1)
	capped.Occurrence = data.Occurrence{MaxTotal: 2}
	s.EventHistory["CAP"] = EventRecord{Count: 2, LastMonth: 3}
	if occurrenceAllowed(capped, s) {
		t.Fatalf("max-total reached must block")
	}

	unset := flatEvent("FREE", 1)
	unset.Occurrence = data.Occurrence{}
	s.EventHistory["FREE"] = EventRecord{Count: 3, LastMonth: 9}
	if !occurrenceAllowed(unset, s) {
		t.Fatalf("zero-value occurrence must never block")
	}

	cool := flatEvent("COOL", 1)
	cool.Occurrence = data.Occurrence{CooldownMonths: 3, MaxTotal: -1}
	s.EventHistory["COOL"] = EventRecord{Count: 1, LastMonth: 8}
	if occurrenceAllowed(cool, s) {
		t.Fatalf("within cooldown must block")
	}
	s.EventHistory["COOL"] = EventRecord{Count: 1, LastMonth: 6}
	if !occurrenceAllowed(cool, s) {
		t.Fatalf("past cooldown should be allowed")
	}
}

func TestSelectEventFallbackWhenNothingQualifies(t *testing.T) {
	s := testState(t)
	d := eventData(data.EventDefinition{
		ID: "NEVER", BaseWeight: 5,
		Conditions: data.ConditionSet{Month: data.Range{999, 9999}},
		Occurrence: data.Occurrence{MaxTotal: -1},
	})
	got := SelectEvent(s, d, &fakeRand{})
	if got.ID != fallbackEventID {
		t.Fatalf("expected fallback, got %s", got.ID)
	}
}

func TestSelectEventWeightedBoundary(t *testing.T) {
	s := testState(t)
	d := eventData(flatEvent("A", 1), flatEvent("B", 1), flatEvent("C", 1))

	if got := SelectEvent(s, d, &fakeRand{floats: []float64{0.0}}); got.ID != "A" {
		t.Fatalf("low roll should pick the first candidate, got %s", got.ID)
	}
	// roll so close to 1 the subtraction never crosses zero early
	if got := SelectEvent(s, d, &fakeRand{floats: []float64{0.999999}}); got.ID != "C" {
		t.Fatalf("boundary roll should pick the last candidate, got %s", got.ID)
	}
}

func TestForcedQueueDequeuesFirst(t *testing.T) {
	s := testState(t)
	d := eventData(flatEvent("A", 100), flatEvent("FORCED", 0))
	s.PendingEvents = []string{"FORCED", "A"}

	got := SelectEvent(s, d, &fakeRand{})
	if got.ID != "FORCED" {
		t.Fatalf("forced event should dequeue first, got %s", got.ID)
	}
	if len(s.PendingEvents) != 1 || s.PendingEvents[0] != "A" {
		t.Fatalf("queue should retain the rest: %v", s.PendingEvents)
	}
}

func TestForcedQueueUnknownIDFallsThrough(t *testing.T) {
	s := testState(t)
	d := eventData(flatEvent("A", 1))
	s.PendingEvents = []string{"GONE"}

	got := SelectEvent(s, d, &fakeRand{floats: []float64{0.0}})
	if got.ID != "A" {
		t.Fatalf("unknown queued id should fall through to the draw, got %s", got.ID)
	}
	if len(s.PendingEvents) != 0 {
		t.Fatalf("bad id should still be consumed")
	}
}

func TestVisibleChoicesFallback(t *testing.T) {
	s := testState(t)
	d := data.Default()
	d.ChoicesByEvent = map[string][]data.ChoiceDefinition{
		"E": {{
			UID: "C1", EventID: "E", Code: "A", SuccessRate: 1,
			Visibility: data.FlagRules{RequiredFlagsAll: []string{"married"}},
		}},
	}

	got := VisibleChoices(s, d, "E")
	if len(got) != 1 || got[0].UID != "SYS_REST" {
		t.Fatalf("hidden choices should yield the rest fallback: %+v", got)
	}

	s.Player.Flags["married"] = true
	got = VisibleChoices(s, d, "E")
	if len(got) != 1 || got[0].UID != "C1" {
		t.Fatalf("visible choice should surface: %+v", got)
	}
}

func TestResolveChoiceTraitBonus(t *testing.T) {
	s := testState(t) // ISTP
	c := data.ChoiceDefinition{Code: "A", SuccessRate: 0.5, TraitBonus: "P"}

	res := ResolveChoice(s, c, &fakeRand{floats: []float64{0.55}})
	if !res.Success {
		t.Fatalf("0.55 should succeed against boosted rate 0.6")
	}
	if res.Rate != 0.6 {
		t.Fatalf("rate: got %v", res.Rate)
	}

	c.TraitBonus = "E"
	res = ResolveChoice(s, c, &fakeRand{floats: []float64{0.55}})
	if res.Success {
		t.Fatalf("0.55 should fail against base rate 0.5")
	}
}

func TestResolveChoiceRateClamped(t *testing.T) {
	s := testState(t)
	c := data.ChoiceDefinition{Code: "A", SuccessRate: 0.95, TraitBonus: "I"}
	res := ResolveChoice(s, c, &fakeRand{floats: []float64{0.99}})
	if res.Rate != 1 {
		t.Fatalf("rate should clamp to 1, got %v", res.Rate)
	}
	if !res.Success {
		t.Fatalf("certain choice must succeed")
	}
}
