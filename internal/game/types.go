package game

import "errors"

var (
	ErrNotFound        = errors.New("game not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrPendingChoice   = errors.New("a choice is pending")
	ErrNoPendingChoice = errors.New("no choice is pending")
	ErrGameOver        = errors.New("game is over")
	ErrUnknownChoice   = errors.New("unknown choice")
	ErrNoSkipTickets   = errors.New("no skip tickets left")
)

const (
	InitialCash       = 100_000
	InitialStress     = 0
	InitialHealth     = 100
	InitialEnergy     = 100
	InitialReputation = 50
	InitialAge        = 25
	InitialSkips      = 2
	LivingExpense     = 2_000
	StressDeathMonths = 4
	MaxAge            = 80
	MonthsPerYear     = 12
	DaysPerMonth      = 30
)

// Shop is one owned storefront. Rating lives on the shop; everything else
// about its economics comes from its type and location rows.
type Shop struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TypeID           string  `json:"type_id"`
	LocationID       string  `json:"location_id"`
	Rating           float64 `json:"rating"`
	Area             int     `json:"area"`
	Staff            int     `json:"staff"`
	OperationMode    string  `json:"operation_mode"`
	LastMonthRevenue int64   `json:"last_month_revenue"`
	LastMonthProfit  int64   `json:"last_month_profit"`
}

// Loan carries its own amortization state. Outstanding debt is always
// derived by summing Remaining across loans, never stored on the player.
type Loan struct {
	ID              string  `json:"id"`
	Principal       int64   `json:"principal"`
	Remaining       int64   `json:"remaining"`
	AnnualRate      float64 `json:"annual_rate"`
	TermMonths      int     `json:"term_months"`
	RemainingMonths int     `json:"remaining_months"`
	MonthlyPayment  int64   `json:"monthly_payment"`
}

type ActiveWorldEvent struct {
	DefID           string `json:"def_id"`
	RemainingMonths int    `json:"remaining_months"`
}

type EventRecord struct {
	Count     int `json:"count"`
	LastMonth int `json:"last_month"`
}

// PendingChoice holds the open month: the event awaiting an answer, the
// world events that started when the month opened, and the cash on hand
// at that point so the closing summary spans the whole month.
type PendingChoice struct {
	EventID      string   `json:"event_id"`
	WorldStarted []string `json:"world_started,omitempty"`
	CashAtStart  int64    `json:"cash_at_start"`
}

type TimelineEntry struct {
	Month      int    `json:"month"`
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	ChoiceCode string `json:"choice_code"`
	Success    bool   `json:"success"`
	Text       string `json:"text"`
}

type Player struct {
	Name       string             `json:"name"`
	TraitID    string             `json:"trait_id"`
	Age        int                `json:"age"`
	Cash       int64              `json:"cash"`
	Stress     int                `json:"stress"`
	Health     int                `json:"health"`
	Energy     int                `json:"energy"`
	Reputation int                `json:"reputation"`
	Morale     int                `json:"morale"`
	Title      string             `json:"title,omitempty"`
	Flags      map[string]bool    `json:"flags"`
	Unlocks    []string           `json:"unlocks,omitempty"`
	Mods       map[string]float64 `json:"mods,omitempty"`
}

// State is the full persisted game. Month counts total elapsed months and
// starts at 1; the calendar year derives from it.
type State struct {
	ID              string                 `json:"id"`
	Seed            uint32                 `json:"seed"`
	Month           int                    `json:"month"`
	MonthsSurvived  int                    `json:"months_survived"`
	Player          Player                 `json:"player"`
	Shops           []*Shop                `json:"shops"`
	Loans           []*Loan                `json:"loans"`
	WorldActive     []ActiveWorldEvent     `json:"world_active"`
	PendingEvents   []string               `json:"pending_events"`
	EventHistory    map[string]EventRecord `json:"event_history"`
	Pending         *PendingChoice         `json:"pending,omitempty"`
	SkipTickets     int                    `json:"skip_tickets"`
	ProfitStreak    int                    `json:"profit_streak"`
	HealthStreak    int                    `json:"health_streak"`
	StressMaxMonths int                    `json:"stress_max_months"`
	WasBankruptOnce bool                   `json:"was_bankrupt_once"`
	GameOver        bool                   `json:"game_over"`
	GameOverReason  string                 `json:"game_over_reason,omitempty"`
	AchUnlocked     map[string]bool        `json:"ach_unlocked"`
	TotalProfit     int64                  `json:"total_profit"`
	StaffHired      int                    `json:"staff_hired"`
	AdsWatched      int                    `json:"ads_watched"`
	CrisisHandled   int                    `json:"crisis_handled"`
	Timeline        []TimelineEntry        `json:"timeline"`
	LastSummary     *TurnSummary           `json:"last_summary,omitempty"`
}

// Applied accumulates what a batch of effects actually changed, after
// rounding and clamping.
type Applied struct {
	Cash            int64    `json:"cash"`
	Stress          int      `json:"stress"`
	Health          int      `json:"health"`
	Energy          int      `json:"energy"`
	Reputation      int      `json:"reputation"`
	Morale          int      `json:"morale"`
	Rating          float64  `json:"rating"`
	FlagsAdded      []string `json:"flags_added,omitempty"`
	FlagsRemoved    []string `json:"flags_removed,omitempty"`
	FollowupEventID string   `json:"followup_event_id,omitempty"`
}

type ShopResult struct {
	ShopID       string `json:"shop_id"`
	ShopName     string `json:"shop_name"`
	Customers    int64  `json:"customers"`
	Revenue      int64  `json:"revenue"`
	Cogs         int64  `json:"cogs"`
	Rent         int64  `json:"rent"`
	Ops          int64  `json:"ops"`
	Labor        int64  `json:"labor"`
	FixedAdd     int64  `json:"fixed_add"`
	Profit       int64  `json:"profit"`
	ForcedClosed bool   `json:"forced_closed"`
}

type LoanPayment struct {
	LoanID         string `json:"loan_id"`
	Interest       int64  `json:"interest"`
	PrincipalPaid  int64  `json:"principal_paid"`
	Payment        int64  `json:"payment"`
	RemainingAfter int64  `json:"remaining_after"`
	Settled        bool   `json:"settled"`
}

// TurnSummary is what the player sees after a month closes.
type TurnSummary struct {
	Month            int           `json:"month"`
	CashBefore       int64         `json:"cash_before"`
	CashAfter        int64         `json:"cash_after"`
	NetFlow          int64         `json:"net_flow"`
	ShopProfitTotal  int64         `json:"shop_profit_total"`
	LivingExpense    int64         `json:"living_expense"`
	LoanPaymentTotal int64         `json:"loan_payment_total"`
	Applied          Applied       `json:"applied"`
	Shops            []ShopResult  `json:"shops"`
	Loans            []LoanPayment `json:"loans,omitempty"`
	WorldStarted     []string      `json:"world_started,omitempty"`
	Achievements     []string      `json:"achievements,omitempty"`
	GameOver         bool          `json:"game_over"`
	GameOverReason   string        `json:"game_over_reason,omitempty"`
}
