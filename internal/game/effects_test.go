package game

import (
	"testing"

	"kaidian/internal/data"
)

func testState(t *testing.T) *State {
	t.Helper()
	s, err := NewState(NewStateInput{
		PlayerName: "Wei",
		TraitID:    "ISTP",
		ShopTypeID: "milk_tea",
		LocationID: "street",
		Seed:       42,
	}, data.Default())
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	return s
}

func TestApplyStatAddAndClamp(t *testing.T) {
	s := testState(t)
	s.Player.Stress = 50

	ap := ApplyEffects(s, []data.Effect{
		{Scope: "stat", Op: "add", Target: "stress", Value: 1000},
	}, false)

	if s.Player.Stress != 100 {
		t.Fatalf("stress should clamp to 100, got %d", s.Player.Stress)
	}
	if ap.Stress != 50 {
		t.Fatalf("applied delta should reflect the clamp, got %d", ap.Stress)
	}
}

func TestApplyCashUnclamped(t *testing.T) {
	s := testState(t)
	s.Player.Cash = 1000

	ap := ApplyEffects(s, []data.Effect{
		{Scope: "stat", Op: "add", Target: "cash", Value: -5000},
	}, false)

	if s.Player.Cash != -4000 {
		t.Fatalf("cash must not clamp, got %d", s.Player.Cash)
	}
	if ap.Cash != -5000 {
		t.Fatalf("applied cash delta: got %d", ap.Cash)
	}
}

func TestApplyStatMulRounds(t *testing.T) {
	s := testState(t)
	s.Player.Reputation = 33

	ApplyEffects(s, []data.Effect{
		{Scope: "stat", Op: "mul", Target: "reputation", Value: 1.1},
	}, false)

	if s.Player.Reputation != 36 { // 36.3 rounds to 36
		t.Fatalf("got %d", s.Player.Reputation)
	}
}

func TestApplyShopRating(t *testing.T) {
	s := testState(t)
	s.Shops[0].Rating = 4.9

	ap := ApplyEffects(s, []data.Effect{
		{Scope: "shop_stat", Op: "add", Shop: "main", Stat: "rating", Value: 0.3},
	}, false)

	if s.Shops[0].Rating != 5 {
		t.Fatalf("rating should clamp to 5, got %v", s.Shops[0].Rating)
	}
	if ap.Rating < 0.09 || ap.Rating > 0.11 {
		t.Fatalf("applied rating delta: got %v", ap.Rating)
	}
}

func TestApplyShopRatingUnknownSelectorFallsBack(t *testing.T) {
	s := testState(t)
	before := s.Shops[0].Rating

	ApplyEffects(s, []data.Effect{
		{Scope: "shop_stat", Op: "add", Shop: "no-such-shop", Stat: "rating", Value: -0.5},
	}, false)

	if s.Shops[0].Rating != round1(before-0.5) {
		t.Fatalf("unknown selector should target the main shop")
	}
}

func TestApplyFlags(t *testing.T) {
	s := testState(t)

	ap := ApplyEffects(s, []data.Effect{
		{Scope: "flag", Op: "add", Target: "dating"},
		{Scope: "flag", Op: "remove", Target: "single"},
		{Scope: "flag", Op: "remove", Target: "never_set"},
	}, false)

	if !s.Player.Flags["dating"] || s.Player.Flags["single"] {
		t.Fatalf("flags not applied: %v", s.Player.Flags)
	}
	if len(ap.FlagsAdded) != 1 || len(ap.FlagsRemoved) != 1 {
		t.Fatalf("applied flags: added=%v removed=%v", ap.FlagsAdded, ap.FlagsRemoved)
	}
}

func TestSystemFollowupOnlyOnFail(t *testing.T) {
	s := testState(t)
	eff := []data.Effect{{Scope: "system", Op: "set", Key: "followup_event_id", Text: "EV_DEBT_COLLECTOR"}}

	ApplyEffects(s, eff, false)
	if len(s.PendingEvents) != 0 {
		t.Fatalf("followup must not enqueue on success")
	}

	ap := ApplyEffects(s, eff, true)
	if len(s.PendingEvents) != 1 || s.PendingEvents[0] != "EV_DEBT_COLLECTOR" {
		t.Fatalf("followup not queued: %v", s.PendingEvents)
	}
	if ap.FollowupEventID != "EV_DEBT_COLLECTOR" {
		t.Fatalf("applied should record the followup id")
	}
}

func TestUnknownScopeIgnored(t *testing.T) {
	s := testState(t)
	before := *s

	ApplyEffects(s, []data.Effect{
		{Scope: "galaxy", Op: "add", Target: "stress", Value: 50},
		{Scope: "stat", Op: "divide", Target: "stress", Value: 2},
	}, false)

	if s.Player.Stress != before.Player.Stress {
		t.Fatalf("unknown scope/op must be a no-op")
	}
}
