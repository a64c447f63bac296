package game

import (
	"strconv"
	"strings"

	"kaidian/internal/data"
)

// EvaluateAchievements checks every locked achievement against the current
// state, unlocks those whose condition holds, applies their rewards, and
// returns the ids unlocked this pass. An achievement never fires twice.
func EvaluateAchievements(s *State, d *data.GameData) []string {
	var unlocked []string
	for _, a := range d.Achievements {
		if s.AchUnlocked[a.ID] {
			continue
		}
		if !achievementMet(a, s) {
			continue
		}
		s.AchUnlocked[a.ID] = true
		applyReward(a, s)
		unlocked = append(unlocked, a.ID)
	}
	return unlocked
}

func achievementMet(a data.Achievement, s *State) bool {
	switch a.ConditionType {
	case "cash":
		return condHolds(a.Condition, float64(s.Player.Cash))
	case "total_asset":
		return condHolds(a.Condition, float64(s.TotalAssets()))
	case "player_monthly_profit_total":
		return condHolds(a.Condition, float64(s.TotalProfit))
	case "profit_streak":
		return condHolds(a.Condition, float64(s.ProfitStreak))
	case "shop_count":
		return condHolds(a.Condition, float64(len(s.Shops)))
	case "months_survived":
		return condHolds(a.Condition, float64(s.MonthsSurvived))
	case "max_stress_survived":
		if a.Condition.Kind == "bool" {
			return (s.StressMaxMonths > 0) == a.Condition.Bool
		}
		return condHolds(a.Condition, float64(s.StressMaxMonths))
	case "health_streak":
		return condHolds(a.Condition, float64(s.HealthStreak))
	case "reputation":
		return condHolds(a.Condition, float64(s.Player.Reputation))
	case "shop_rating":
		best := 0.0
		for _, sh := range s.Shops {
			if sh.Rating > best {
				best = sh.Rating
			}
		}
		return condHolds(a.Condition, best)
	case "crisis_handled":
		return condHolds(a.Condition, float64(s.CrisisHandled))
	case "total_staff_hired":
		return condHolds(a.Condition, float64(s.StaffHired))
	case "ads_watched":
		return condHolds(a.Condition, float64(s.AdsWatched))
	default:
		return false
	}
}

// condHolds evaluates a parsed condition against a numeric observation.
// A bare number means "at least".
func condHolds(c data.AchievementCondition, v float64) bool {
	switch c.Kind {
	case "compare":
		return compare(v, c.Op, c.Num)
	case "number":
		return v >= c.Num
	case "bool":
		return (v > 0) == c.Bool
	default:
		return false
	}
}

func applyReward(a data.Achievement, s *State) {
	switch a.RewardType {
	case "cash":
		if n, err := strconv.ParseInt(a.RewardValue, 10, 64); err == nil {
			s.Player.Cash += n
		}
	case "stress":
		if n, err := strconv.Atoi(a.RewardValue); err == nil {
			s.Player.Stress = clampStat(s.Player.Stress + n)
		}
	case "title":
		s.Player.Title = a.RewardValue
	case "unlock":
		for _, u := range s.Player.Unlocks {
			if u == a.RewardValue {
				return
			}
		}
		s.Player.Unlocks = append(s.Player.Unlocks, a.RewardValue)
	case "ad_skip":
		if n, err := strconv.Atoi(a.RewardValue); err == nil {
			s.SkipTickets += n
		}
	case "percent":
		// "key:delta", e.g. "traffic_bonus:0.05"
		key, val, ok := strings.Cut(a.RewardValue, ":")
		if !ok {
			return
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			s.Player.Mods[key] += f
		}
	}
}
