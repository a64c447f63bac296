package data

import (
	"regexp"
	"strconv"
	"strings"
)

// Range is an inclusive [min,max] pair. Anything that is not exactly two
// elements matches every value, so malformed table rows never reject.
type Range []int64

func (r Range) Contains(v int64) bool {
	if len(r) != 2 {
		return true
	}
	return v >= r[0] && v <= r[1]
}

// ConditionSet gates events and weight rules. Empty fields are the widest
// possible match.
type ConditionSet struct {
	Month            Range    `json:"month,omitempty"`
	Cash             Range    `json:"cash,omitempty"`
	Stress           Range    `json:"stress,omitempty"`
	Reputation       Range    `json:"reputation,omitempty"`
	ShopTypeIn       []string `json:"shop_type_in,omitempty"`
	OperationModeIn  []string `json:"operation_mode_in,omitempty"`
	SeasonIn         []string `json:"season_in,omitempty"`
	RequiredFlagsAll []string `json:"required_flags_all,omitempty"`
	RequiredFlagsAny []string `json:"required_flags_any,omitempty"`
	ExcludedFlagsAny []string `json:"excluded_flags_any,omitempty"`
}

// FlagRules is the flag-only subset used for choice visibility.
type FlagRules struct {
	RequiredFlagsAll []string `json:"required_flags_all,omitempty"`
	RequiredFlagsAny []string `json:"required_flags_any,omitempty"`
	ExcludedFlagsAny []string `json:"excluded_flags_any,omitempty"`
}

// Effect is one structured mutation instruction.
//
// Scope "stat":      Target names a player stat, Op add/mul.
// Scope "shop_stat": Shop selects a shop ("main" or an id), Stat names the
//                    shop stat (rating), Op add/mul.
// Scope "flag":      Target names a flag, Op add/remove.
// Scope "system":    Key "followup_event_id" with Op set and Text carrying
//                    the event id, honored only on a failed outcome.
type Effect struct {
	Scope  string  `json:"scope"`
	Op     string  `json:"op"`
	Target string  `json:"target,omitempty"`
	Shop   string  `json:"shop,omitempty"`
	Stat   string  `json:"stat,omitempty"`
	Key    string  `json:"key,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// Occurrence limits how often an event may be drawn. MaxTotal <= 0 means
// unlimited, so the zero value never blocks an event.
type Occurrence struct {
	CooldownMonths int  `json:"cooldown_months"`
	MaxTotal       int  `json:"max_total"`
	OnceOnly       bool `json:"once_only"`
}

type WeightRule struct {
	When  ConditionSet `json:"when"`
	Op    string       `json:"op"`
	Value float64      `json:"value"`
}

type EventMeta struct {
	TraitAdvantage string `json:"trait_advantage,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type EventDefinition struct {
	ID          string       `json:"id"`
	Category    string       `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	BaseWeight  float64      `json:"base_weight"`
	Conditions  ConditionSet `json:"conditions"`
	Occurrence  Occurrence   `json:"occurrence"`
	WeightRules []WeightRule `json:"weight_rules,omitempty"`
	Meta        EventMeta    `json:"meta"`
}

type Outcome struct {
	Text    string   `json:"text"`
	Effects []Effect `json:"effects,omitempty"`
}

type ChoiceDefinition struct {
	UID         string    `json:"uid"`
	EventID     string    `json:"event_id"`
	Code        string    `json:"code"`
	Text        string    `json:"text"`
	Visibility  FlagRules `json:"visibility"`
	SuccessRate float64   `json:"success_rate"`
	TraitBonus  string    `json:"trait_bonus,omitempty"`
	Success     Outcome   `json:"success"`
	Fail        Outcome   `json:"fail"`
}

// Trigger is the structured form of a world-event trigger condition.
// An empty Field is always eligible. Field "location" checks presence of a
// shop at Location; the numeric fields compare with Op against Value.
type Trigger struct {
	Field    string  `json:"field,omitempty"`
	Op       string  `json:"op,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Location string  `json:"location,omitempty"`
}

type WorldEventDefinition struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Probability         float64  `json:"probability"`
	Trigger             Trigger  `json:"trigger"`
	DurationMin         int      `json:"duration_min"`
	DurationMax         int      `json:"duration_max"`
	DineInTrafficMult   float64  `json:"dine_in_traffic_mult"`
	DeliveryTrafficMult float64  `json:"delivery_traffic_mult"`
	AvgTicketMult       float64  `json:"avg_ticket_mult"`
	LaborCostMult       float64  `json:"labor_cost_mult"`
	CogsCostMult        float64  `json:"cogs_cost_mult"`
	MonthlyFixedCostAdd int64    `json:"monthly_fixed_cost_add"`
	ForcedCloseChance   float64  `json:"forced_close_chance"`
	ShopDamageChance    float64  `json:"shop_damage_chance"`
	OneTimeCostAdd      int64    `json:"one_time_cost_add"`
	RatingDelta         float64  `json:"rating_delta"`
	FlagsAdd            []string `json:"flags_add,omitempty"`
}

type ShopType struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	RevenuePotential string  `json:"revenue_potential"`
	GrossMargin      float64 `json:"gross_margin"`
	AvgTicketMin     int     `json:"avg_ticket_min"`
	AvgTicketMax     int     `json:"avg_ticket_max"`
	DailyCostBase    int64   `json:"daily_cost_base"`
	IdealStaff       int     `json:"ideal_staff"`
	IdealArea        int     `json:"ideal_area"`
}

type Location struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TrafficMultiplier float64 `json:"traffic_multiplier"`
	RentMultiplier    float64 `json:"rent_multiplier"`
}

// Trait is the player personality row: starting-stat deltas plus the
// stress-recovery multiplier used by the natural recovery phase.
type Trait struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DeltaCash       int64   `json:"delta_cash"`
	DeltaStress     int     `json:"delta_stress"`
	DeltaHealth     int     `json:"delta_health"`
	DeltaEnergy     int     `json:"delta_energy"`
	DeltaReputation int     `json:"delta_reputation"`
	StressRecovery  float64 `json:"stress_recovery"`
}

// AchievementCondition is the parsed form of a condition-value cell.
// Kind is one of "compare", "number", "bool", "token".
type AchievementCondition struct {
	Kind  string  `json:"kind"`
	Op    string  `json:"op,omitempty"`
	Num   float64 `json:"num,omitempty"`
	Bool  bool    `json:"bool,omitempty"`
	Token string  `json:"token,omitempty"`
}

type Achievement struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Icon          string               `json:"icon"`
	ConditionType string               `json:"condition_type"`
	Condition     AchievementCondition `json:"condition"`
	RewardType    string               `json:"reward_type"`
	RewardValue   string               `json:"reward_value"`
}

// GameData is the read-only definition bundle the engine consumes.
type GameData struct {
	Events         []EventDefinition
	ChoicesByEvent map[string][]ChoiceDefinition
	WorldEvents    []WorldEventDefinition
	ShopTypes      map[string]ShopType
	Locations      map[string]Location
	Traits         map[string]Trait
	Achievements   []Achievement
}

func (d *GameData) EventByID(id string) (EventDefinition, bool) {
	for _, ev := range d.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return EventDefinition{}, false
}

func (d *GameData) Choices(eventID string) []ChoiceDefinition {
	return d.ChoicesByEvent[eventID]
}

var conditionValueRE = regexp.MustCompile(`^(>=|<=|>|<|=)\s*(-?\d+(?:\.\d+)?)$`)

// ParseAchievementCondition converts a raw condition-value cell into its
// structured form. It runs once at data load; the engine never re-parses
// strings during settlement.
func ParseAchievementCondition(raw string) AchievementCondition {
	raw = strings.TrimSpace(raw)

	if m := conditionValueRE.FindStringSubmatch(raw); m != nil {
		n, _ := strconv.ParseFloat(m[2], 64)
		return AchievementCondition{Kind: "compare", Op: m[1], Num: n}
	}
	if raw == "true" || raw == "false" {
		return AchievementCondition{Kind: "bool", Bool: raw == "true"}
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return AchievementCondition{Kind: "number", Num: n}
	}
	return AchievementCondition{Kind: "token", Token: raw}
}
