package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"kaidian/internal/data"
)

// NewStateInput carries everything needed to open a fresh game.
type NewStateInput struct {
	PlayerName string
	TraitID    string
	ShopTypeID string
	LocationID string
	Seed       int64
}

// NewState builds the opening state: one shop, the trait's starting-stat
// deltas applied, and the single flag set.
func NewState(in NewStateInput, d *data.GameData) (*State, error) {
	if in.PlayerName == "" {
		return nil, fmt.Errorf("%w: player name required", ErrInvalidInput)
	}
	trait, ok := d.Traits[in.TraitID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown trait %q", ErrInvalidInput, in.TraitID)
	}
	st, ok := d.ShopTypes[in.ShopTypeID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown shop type %q", ErrInvalidInput, in.ShopTypeID)
	}
	if _, ok := d.Locations[in.LocationID]; !ok {
		return nil, fmt.Errorf("%w: unknown location %q", ErrInvalidInput, in.LocationID)
	}
	if in.Seed == 0 {
		in.Seed = SeedFromNow()
	}

	area := st.IdealArea
	if area <= 0 {
		area = 30
	}
	shop := &Shop{
		ID:            uuid.NewString(),
		Name:          st.Name,
		TypeID:        st.ID,
		LocationID:    in.LocationID,
		Rating:        4.2,
		Area:          area,
		Staff:         st.IdealStaff,
		OperationMode: "both",
	}

	s := &State{
		ID:    uuid.NewString(),
		Seed:  NewLCG(in.Seed).Seed(),
		Month: 1,
		Player: Player{
			Name:       in.PlayerName,
			TraitID:    trait.ID,
			Age:        InitialAge,
			Cash:       InitialCash + trait.DeltaCash,
			Stress:     clampStat(InitialStress + trait.DeltaStress),
			Health:     clampStat(InitialHealth + trait.DeltaHealth),
			Energy:     clampStat(InitialEnergy + trait.DeltaEnergy),
			Reputation: clampStat(InitialReputation + trait.DeltaReputation),
			Morale:     clampStat(50),
			Flags:      map[string]bool{"single": true},
			Mods:       map[string]float64{},
		},
		Shops:        []*Shop{shop},
		EventHistory: map[string]EventRecord{},
		AchUnlocked:  map[string]bool{},
		SkipTickets:  InitialSkips,
	}
	return s, nil
}

// Season derives from the month-in-year position, three months each.
func Season(month int) string {
	m := ((month - 1) % MonthsPerYear) + 1
	switch {
	case m <= 3:
		return "spring"
	case m <= 6:
		return "summer"
	case m <= 9:
		return "autumn"
	default:
		return "winter"
	}
}

// Debt is always derived from the loan list.
func (s *State) Debt() int64 {
	var total int64
	for _, l := range s.Loans {
		total += l.Remaining
	}
	return total
}

// TotalAssets is cash plus each shop valued at twenty months of its last
// profit (never negative), minus outstanding debt.
func (s *State) TotalAssets() int64 {
	total := s.Player.Cash
	for _, sh := range s.Shops {
		v := sh.LastMonthProfit * 20
		if v > 0 {
			total += v
		}
	}
	return total - s.Debt()
}

func (s *State) MainShop() *Shop {
	if len(s.Shops) == 0 {
		return nil
	}
	return s.Shops[0]
}

func (s *State) ShopByID(id string) *Shop {
	for _, sh := range s.Shops {
		if sh.ID == id {
			return sh
		}
	}
	return nil
}

// Normalize backfills fields that may be absent in saves written by older
// builds, so a restored state never carries nil maps or a broken seed.
func (s *State) Normalize() {
	if s.Seed == 0 {
		s.Seed = 1
	}
	if s.Month < 1 {
		s.Month = 1
	}
	if s.Player.Flags == nil {
		s.Player.Flags = map[string]bool{}
	}
	if s.Player.Mods == nil {
		s.Player.Mods = map[string]float64{}
	}
	if s.EventHistory == nil {
		s.EventHistory = map[string]EventRecord{}
	}
	if s.AchUnlocked == nil {
		s.AchUnlocked = map[string]bool{}
	}
	if s.Pending != nil && s.Pending.CashAtStart == 0 {
		s.Pending.CashAtStart = s.Player.Cash
	}
	for _, sh := range s.Shops {
		if sh.Rating < 1 {
			sh.Rating = 1
		}
		if sh.Rating > 5 {
			sh.Rating = 5
		}
		if sh.OperationMode == "" {
			sh.OperationMode = "both"
		}
	}
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampRating(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
