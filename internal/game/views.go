package game

import (
	"sort"

	"kaidian/internal/data"
)

// GameView is the outward snapshot of a session. Debt and total assets are
// computed at render time.
type GameView struct {
	ID             string       `json:"id"`
	Month          int          `json:"month"`
	Year           int          `json:"year"`
	Season         string       `json:"season"`
	MonthsSurvived int          `json:"months_survived"`
	Player         Player       `json:"player"`
	Debt           int64        `json:"debt"`
	TotalAssets    int64        `json:"total_assets"`
	Shops          []Shop       `json:"shops"`
	Loans          []Loan       `json:"loans"`
	SkipTickets    int          `json:"skip_tickets"`
	ProfitStreak   int          `json:"profit_streak"`
	PendingEvent   string       `json:"pending_event,omitempty"`
	GameOver       bool         `json:"game_over"`
	GameOverReason string       `json:"game_over_reason,omitempty"`
	LastSummary    *TurnSummary `json:"last_summary,omitempty"`
}

func newGameView(s *State, d *data.GameData) *GameView {
	v := &GameView{
		ID:             s.ID,
		Month:          s.Month,
		Year:           (s.Month-1)/MonthsPerYear + 1,
		Season:         Season(s.Month),
		MonthsSurvived: s.MonthsSurvived,
		Player:         s.Player,
		Debt:           s.Debt(),
		TotalAssets:    s.TotalAssets(),
		SkipTickets:    s.SkipTickets,
		ProfitStreak:   s.ProfitStreak,
		GameOver:       s.GameOver,
		GameOverReason: s.GameOverReason,
		LastSummary:    s.LastSummary,
	}
	for _, sh := range s.Shops {
		v.Shops = append(v.Shops, *sh)
	}
	for _, l := range s.Loans {
		v.Loans = append(v.Loans, *l)
	}
	if s.Pending != nil {
		v.PendingEvent = s.Pending.EventID
	}
	return v
}

type ChoiceView struct {
	Code        string  `json:"code"`
	Text        string  `json:"text"`
	SuccessRate float64 `json:"success_rate"`
}

type EventView struct {
	GameID      string       `json:"game_id"`
	Month       int          `json:"month"`
	EventID     string       `json:"event_id"`
	Category    string       `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Choices     []ChoiceView `json:"choices"`
}

func newEventView(s *State, d *data.GameData, def data.EventDefinition) *EventView {
	v := &EventView{
		GameID:      s.ID,
		Month:       s.Month,
		EventID:     def.ID,
		Category:    def.Category,
		Title:       def.Title,
		Description: def.Description,
	}
	for _, c := range VisibleChoices(s, d, def.ID) {
		v.Choices = append(v.Choices, ChoiceView{Code: c.Code, Text: c.Text, SuccessRate: c.SuccessRate})
	}
	return v
}

// TurnView bundles what a resolved or skipped month returns.
type TurnView struct {
	Result  ChoiceResult `json:"result"`
	Summary *TurnSummary `json:"summary"`
	Game    *GameView    `json:"game"`
}

type WorldEventView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RemainingMonths int    `json:"remaining_months"`
	Permanent       bool   `json:"permanent"`
}

func newWorldViews(s *State, d *data.GameData) []WorldEventView {
	var out []WorldEventView
	for _, act := range s.WorldActive {
		v := WorldEventView{ID: act.DefID, RemainingMonths: act.RemainingMonths, Permanent: act.RemainingMonths == -1}
		if def, ok := worldDef(d, act.DefID); ok {
			v.Name = def.Name
		}
		out = append(out, v)
	}
	return out
}

type AchievementView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
}

func newAchievementViews(s *State, d *data.GameData) []AchievementView {
	out := make([]AchievementView, 0, len(d.Achievements))
	for _, a := range d.Achievements {
		out = append(out, AchievementView{
			ID:       a.ID,
			Name:     a.Name,
			Icon:     a.Icon,
			Unlocked: s.AchUnlocked[a.ID],
		})
	}
	return out
}

// CatalogView lists the static definition tables a client needs to open a
// game.
type CatalogView struct {
	ShopTypes []data.ShopType `json:"shop_types"`
	Locations []data.Location `json:"locations"`
	Traits    []data.Trait    `json:"traits"`
}

func NewCatalogView(d *data.GameData) *CatalogView {
	v := &CatalogView{}
	for _, st := range d.ShopTypes {
		v.ShopTypes = append(v.ShopTypes, st)
	}
	for _, loc := range d.Locations {
		v.Locations = append(v.Locations, loc)
	}
	for _, t := range d.Traits {
		v.Traits = append(v.Traits, t)
	}
	sort.Slice(v.ShopTypes, func(i, j int) bool { return v.ShopTypes[i].ID < v.ShopTypes[j].ID })
	sort.Slice(v.Locations, func(i, j int) bool { return v.Locations[i].ID < v.Locations[j].ID })
	sort.Slice(v.Traits, func(i, j int) bool { return v.Traits[i].ID < v.Traits[j].ID })
	return v
}
