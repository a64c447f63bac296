package game

import (
	"math"
	"testing"

	"kaidian/internal/data"
)

func worldData(defs ...data.WorldEventDefinition) *data.GameData {
	d := data.Default()
	d.WorldEvents = defs
	return d
}

func TestProbUnion(t *testing.T) {
	got := probUnion(0.5, 0.5)
	if math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("union of two 0.5 chances: got %v want 0.75", got)
	}
	if probUnion(0, 0.3) != 0.3 {
		t.Fatalf("union with zero should be identity")
	}
}

func TestActiveModifiersCombine(t *testing.T) {
	d := worldData(
		data.WorldEventDefinition{ID: "A", DineInTrafficMult: 0.5, DeliveryTrafficMult: 1, AvgTicketMult: 1, LaborCostMult: 1.2, CogsCostMult: 1, MonthlyFixedCostAdd: 100, ForcedCloseChance: 0.5},
		data.WorldEventDefinition{ID: "B", DineInTrafficMult: 0.5, DeliveryTrafficMult: 1, AvgTicketMult: 1, LaborCostMult: 1.2, CogsCostMult: 1, MonthlyFixedCostAdd: 50, ForcedCloseChance: 0.5},
	)
	s := testState(t)
	s.WorldActive = []ActiveWorldEvent{{DefID: "A", RemainingMonths: 2}, {DefID: "B", RemainingMonths: 1}}

	m := ActiveModifiers(s, d)
	if m.DineInTraffic != 0.25 {
		t.Fatalf("dine-in mult: got %v", m.DineInTraffic)
	}
	if math.Abs(m.LaborCost-1.44) > 1e-9 {
		t.Fatalf("labor mult: got %v", m.LaborCost)
	}
	if m.MonthlyFixedAdd != 150 {
		t.Fatalf("fixed add: got %d", m.MonthlyFixedAdd)
	}
	if math.Abs(m.ForcedCloseChance-0.75) > 1e-9 {
		t.Fatalf("forced close union: got %v", m.ForcedCloseChance)
	}
}

func TestActiveModifiersClamp(t *testing.T) {
	d := worldData(
		data.WorldEventDefinition{ID: "A", DineInTrafficMult: 2, DeliveryTrafficMult: 1, AvgTicketMult: 1, LaborCostMult: 1, CogsCostMult: 1},
		data.WorldEventDefinition{ID: "B", DineInTrafficMult: 2, DeliveryTrafficMult: 1, AvgTicketMult: 1, LaborCostMult: 1, CogsCostMult: 1},
	)
	s := testState(t)
	s.WorldActive = []ActiveWorldEvent{{DefID: "A", RemainingMonths: 1}, {DefID: "B", RemainingMonths: 1}}

	if m := ActiveModifiers(s, d); m.DineInTraffic != 3 {
		t.Fatalf("multiplier should clamp at 3, got %v", m.DineInTraffic)
	}
}

func TestActivationRollAndDuration(t *testing.T) {
	d := worldData(data.WorldEventDefinition{
		ID: "W", Probability: 0.3, DurationMin: 2, DurationMax: 4,
		DineInTrafficMult: 1, DeliveryTrafficMult: 1, AvgTicketMult: 1, LaborCostMult: 1, CogsCostMult: 1,
		OneTimeCostAdd: 500, RatingDelta: -0.2, FlagsAdd: []string{"storm"},
	})
	s := testState(t)
	cash := s.Player.Cash
	rating := s.Shops[0].Rating

	// roll above probability: nothing starts
	if got := ActivateWorldEvents(s, d, &fakeRand{floats: []float64{0.9}}); len(got) != 0 {
		t.Fatalf("should not activate on a high roll")
	}

	started := ActivateWorldEvents(s, d, &fakeRand{floats: []float64{0.1, 0.0}, ints: []int{3}})
	if len(started) != 1 || started[0] != "W" {
		t.Fatalf("expected activation, got %v", started)
	}
	if s.WorldActive[0].RemainingMonths != 3 {
		t.Fatalf("duration: got %d", s.WorldActive[0].RemainingMonths)
	}
	if s.Player.Cash != cash-500 {
		t.Fatalf("one-time cost not charged")
	}
	if s.Shops[0].Rating != round1(rating-0.2) {
		t.Fatalf("rating delta not applied: %v", s.Shops[0].Rating)
	}
	if !s.Player.Flags["storm"] {
		t.Fatalf("flag not added")
	}

	// already active: never double-activates
	if got := ActivateWorldEvents(s, d, &fakeRand{floats: []float64{0.0}}); len(got) != 0 {
		t.Fatalf("active event must not restart")
	}
}

func TestPermanentEventNeverExpires(t *testing.T) {
	d := worldData(data.WorldEventDefinition{
		ID: "P", Probability: 1, DurationMin: -1, DurationMax: -1,
		DineInTrafficMult: 1, DeliveryTrafficMult: 1, AvgTicketMult: 1, LaborCostMult: 1, CogsCostMult: 1,
	})
	s := testState(t)
	ActivateWorldEvents(s, d, &fakeRand{floats: []float64{0.0}})

	if s.WorldActive[0].RemainingMonths != -1 {
		t.Fatalf("permanent event duration: got %d", s.WorldActive[0].RemainingMonths)
	}
	for i := 0; i < 10; i++ {
		TickWorldEvents(s)
	}
	if len(s.WorldActive) != 1 {
		t.Fatalf("permanent event expired")
	}
}

func TestTickExpiresFinishedEvents(t *testing.T) {
	s := testState(t)
	s.WorldActive = []ActiveWorldEvent{
		{DefID: "A", RemainingMonths: 1},
		{DefID: "B", RemainingMonths: 2},
	}
	TickWorldEvents(s)
	if len(s.WorldActive) != 1 || s.WorldActive[0].DefID != "B" {
		t.Fatalf("expected only B to survive: %v", s.WorldActive)
	}
}

func TestTriggers(t *testing.T) {
	s := testState(t)
	s.Month = 10
	s.Player.Cash = 60_000

	if !triggerMet(data.Trigger{}, s) {
		t.Fatalf("empty trigger is always met")
	}
	if !triggerMet(data.Trigger{Field: "month", Op: ">=", Value: 10}, s) {
		t.Fatalf("month trigger should hold")
	}
	if triggerMet(data.Trigger{Field: "cash", Op: "<", Value: 60_000}, s) {
		t.Fatalf("strict less-than should not hold at equality")
	}
	if !triggerMet(data.Trigger{Field: "location", Location: "street"}, s) {
		t.Fatalf("location trigger should find the shop")
	}
	if triggerMet(data.Trigger{Field: "location", Location: "mall"}, s) {
		t.Fatalf("no mall shop exists")
	}
}
