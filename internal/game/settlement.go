package game

import (
	"math"

	"kaidian/internal/data"
)

const (
	baseDailyTraffic = 140
	rentPerSqm       = 200
	wagePerStaff     = 1100
)

func revenuePotentialFactor(p string) float64 {
	switch p {
	case "high":
		return 1.15
	case "medium_high":
		return 1.08
	case "low_medium":
		return 0.92
	case "low":
		return 0.85
	default:
		return 1.0
	}
}

func ratingFactor(rating float64) float64 {
	f := 0.6 + (rating-3)*0.15
	if f < 0.6 {
		f = 0.6
	}
	if f > 1.4 {
		f = 1.4
	}
	return f
}

// SettleShop closes one shop's month under the given world modifiers.
// The forced-close roll, when it lands, zeroes revenue and COGS while the
// fixed costs still bite.
func SettleShop(s *State, sh *Shop, d *data.GameData, mods Modifiers, rng Rand) ShopResult {
	res := ShopResult{ShopID: sh.ID, ShopName: sh.Name}

	st, okType := d.ShopTypes[sh.TypeID]
	loc, okLoc := d.Locations[sh.LocationID]
	if !okType || !okLoc {
		return res
	}

	trafficBonus := s.Player.Mods["traffic_bonus"]
	dailyBase := baseDailyTraffic *
		loc.TrafficMultiplier *
		revenuePotentialFactor(st.RevenuePotential) *
		ratingFactor(sh.Rating) *
		(1 + trafficBonus)

	trafficMult := 0.6*mods.DineInTraffic + 0.4*mods.DeliveryTraffic
	daily := math.Round(dailyBase * trafficMult)
	if daily < 0 {
		daily = 0
	}
	customers := int64(math.Round(daily * DaysPerMonth))

	ticket := float64(rng.NextInt(st.AvgTicketMin, st.AvgTicketMax)) * mods.AvgTicket
	revenue := int64(math.Round(float64(customers) * ticket))

	if mods.ForcedCloseChance > 0 && rng.Next() < mods.ForcedCloseChance {
		res.ForcedClosed = true
		customers = 0
		revenue = 0
	}

	var cogs int64
	if !res.ForcedClosed {
		cogs = int64(math.Round(float64(revenue) * (1 - st.GrossMargin) * mods.CogsCost))
	}

	rent := int64(math.Floor(float64(sh.Area) * rentPerSqm * loc.RentMultiplier))
	ops := st.DailyCostBase * DaysPerMonth

	staff := sh.Staff
	if staff <= 0 {
		staff = st.IdealStaff
	}
	if staff <= 0 {
		staff = 2
	}
	labor := int64(math.Round(float64(staff) * wagePerStaff * mods.LaborCost))

	profit := revenue - cogs - rent - ops - labor - mods.MonthlyFixedAdd

	res.Customers = customers
	res.Revenue = revenue
	res.Cogs = cogs
	res.Rent = rent
	res.Ops = ops
	res.Labor = labor
	res.FixedAdd = mods.MonthlyFixedAdd
	res.Profit = profit

	sh.LastMonthRevenue = revenue
	sh.LastMonthProfit = profit
	return res
}

// SettleShops closes every shop and returns the per-shop results plus the
// total profit (which may be negative).
func SettleShops(s *State, d *data.GameData, mods Modifiers, rng Rand) ([]ShopResult, int64) {
	var (
		out   []ShopResult
		total int64
	)
	for _, sh := range s.Shops {
		r := SettleShop(s, sh, d, mods, rng)
		out = append(out, r)
		total += r.Profit
	}
	return out, total
}
