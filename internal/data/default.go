package data

// Default returns the built-in definition bundle. Callers may mutate the
// returned value freely; every call builds a fresh copy.
func Default() *GameData {
	d := &GameData{
		ShopTypes: map[string]ShopType{
			"milk_tea":   {ID: "milk_tea", Name: "Milk Tea Stand", RevenuePotential: "medium_high", GrossMargin: 0.65, AvgTicketMin: 18, AvgTicketMax: 32, DailyCostBase: 120, IdealStaff: 2, IdealArea: 20},
			"noodle_bar": {ID: "noodle_bar", Name: "Noodle Bar", RevenuePotential: "medium", GrossMargin: 0.55, AvgTicketMin: 25, AvgTicketMax: 45, DailyCostBase: 180, IdealStaff: 3, IdealArea: 40},
			"hotpot":     {ID: "hotpot", Name: "Hotpot House", RevenuePotential: "high", GrossMargin: 0.50, AvgTicketMin: 90, AvgTicketMax: 160, DailyCostBase: 420, IdealStaff: 6, IdealArea: 120},
			"bakery":     {ID: "bakery", Name: "Bakery", RevenuePotential: "medium", GrossMargin: 0.60, AvgTicketMin: 20, AvgTicketMax: 48, DailyCostBase: 200, IdealStaff: 3, IdealArea: 35},
			"coffee":     {ID: "coffee", Name: "Coffee Shop", RevenuePotential: "medium_high", GrossMargin: 0.68, AvgTicketMin: 28, AvgTicketMax: 50, DailyCostBase: 220, IdealStaff: 3, IdealArea: 45},
			"bbq_skewer": {ID: "bbq_skewer", Name: "Skewer Grill", RevenuePotential: "low_medium", GrossMargin: 0.58, AvgTicketMin: 30, AvgTicketMax: 70, DailyCostBase: 150, IdealStaff: 2, IdealArea: 25},
		},
		Locations: map[string]Location{
			"street":       {ID: "street", Name: "Old Street", TrafficMultiplier: 0.9, RentMultiplier: 0.8},
			"mall":         {ID: "mall", Name: "Central Mall", TrafficMultiplier: 1.3, RentMultiplier: 1.6},
			"campus":       {ID: "campus", Name: "University Gate", TrafficMultiplier: 1.1, RentMultiplier: 0.9},
			"office":       {ID: "office", Name: "Office District", TrafficMultiplier: 1.2, RentMultiplier: 1.4},
			"night_market": {ID: "night_market", Name: "Night Market", TrafficMultiplier: 1.0, RentMultiplier: 0.7},
		},
		Traits: map[string]Trait{
			"INTJ": {ID: "INTJ", Name: "Architect", DeltaCash: 5000, DeltaStress: 5, DeltaReputation: -5, StressRecovery: 1.0},
			"ENFP": {ID: "ENFP", Name: "Campaigner", DeltaReputation: 10, DeltaEnergy: 5, StressRecovery: 1.5},
			"ISTP": {ID: "ISTP", Name: "Virtuoso", DeltaHealth: 5, DeltaCash: 2000, StressRecovery: 1.2},
			"ESFJ": {ID: "ESFJ", Name: "Consul", DeltaReputation: 15, DeltaStress: 5, StressRecovery: 1.0},
			"ISTJ": {ID: "ISTJ", Name: "Logistician", DeltaCash: 8000, DeltaEnergy: -5, StressRecovery: 0.8},
			"ESTP": {ID: "ESTP", Name: "Entrepreneur", DeltaCash: 3000, DeltaEnergy: 10, DeltaHealth: -5, StressRecovery: 1.3},
		},
		WorldEvents: []WorldEventDefinition{
			{ID: "WE_TYPHOON", Name: "Typhoon Season", Probability: 0.08,
				Trigger:           Trigger{Field: "month", Op: ">=", Value: 3},
				DurationMin:       1, DurationMax: 2,
				DineInTrafficMult: 0.6, DeliveryTrafficMult: 1.2, AvgTicketMult: 1, LaborCostMult: 1, CogsCostMult: 1.1,
				ForcedCloseChance: 0.15, ShopDamageChance: 0.1},
			{ID: "WE_FOOD_FESTIVAL", Name: "City Food Festival", Probability: 0.1,
				Trigger:           Trigger{Field: "rating", Op: ">=", Value: 3.5},
				DurationMin:       1, DurationMax: 1,
				DineInTrafficMult: 1.5, DeliveryTrafficMult: 1.1, AvgTicketMult: 1.15, LaborCostMult: 1.2, CogsCostMult: 1,
				RatingDelta:       0.1},
			{ID: "WE_ECONOMIC_BOOM", Name: "Economic Boom", Probability: 0.05,
				Trigger:           Trigger{Field: "cash", Op: ">=", Value: 50000},
				DurationMin:       2, DurationMax: 4,
				DineInTrafficMult: 1.2, DeliveryTrafficMult: 1.2, AvgTicketMult: 1.1, LaborCostMult: 1.1, CogsCostMult: 1.05},
			{ID: "WE_FLU_SEASON", Name: "Flu Season", Probability: 0.07,
				DurationMin:       1, DurationMax: 2,
				DineInTrafficMult: 0.75, DeliveryTrafficMult: 1.3, AvgTicketMult: 1, LaborCostMult: 1.15, CogsCostMult: 1,
				FlagsAdd:          []string{"flu_season"}},
			{ID: "WE_MALL_RENT_HIKE", Name: "Mall Rent Revision", Probability: 0.04,
				Trigger:           Trigger{Field: "location", Location: "mall"},
				DurationMin:       -1, DurationMax: -1,
				DineInTrafficMult: 1, DeliveryTrafficMult: 1, AvgTicketMult: 1, LaborCostMult: 1, CogsCostMult: 1,
				MonthlyFixedCostAdd: 1500},
			{ID: "WE_VIRAL_FAME", Name: "Viral On Social Media", Probability: 0.03,
				Trigger:           Trigger{Field: "rating", Op: ">=", Value: 4.5},
				DurationMin:       1, DurationMax: 2,
				DineInTrafficMult: 1.8, DeliveryTrafficMult: 1.6, AvgTicketMult: 1.05, LaborCostMult: 1.3, CogsCostMult: 1.1,
				RatingDelta:       0.2, FlagsAdd: []string{"went_viral"}},
		},
	}

	d.Events = []EventDefinition{
		{ID: "EV_FIRST_REGULAR", Category: "daily", Title: "A Familiar Face",
			Description: "The same customer has come in every day this week.",
			BaseWeight:  10, Conditions: ConditionSet{Month: Range{1, 6}},
			Occurrence: Occurrence{OnceOnly: true, MaxTotal: -1}},
		{ID: "EV_RAINY_WEEK", Category: "daily", Title: "A Week of Rain",
			Description: "Foot traffic has thinned since the rain started.",
			BaseWeight:  8, Conditions: ConditionSet{SeasonIn: []string{"spring", "autumn"}},
			Occurrence: Occurrence{CooldownMonths: 3, MaxTotal: -1}},
		{ID: "EV_FOOD_BLOGGER", Category: "opportunity", Title: "The Food Blogger",
			Description: "A well-followed food blogger is eating at a corner table.",
			BaseWeight:  6, Conditions: ConditionSet{Reputation: Range{30, 100}},
			Occurrence: Occurrence{CooldownMonths: 6, MaxTotal: 3},
			Meta:       EventMeta{TraitAdvantage: "E"},
			WeightRules: []WeightRule{
				{When: ConditionSet{Reputation: Range{70, 100}}, Op: "mul", Value: 1.5},
			}},
		{ID: "EV_STAFF_QUIT", Category: "crisis", Title: "Notice On The Counter",
			Description: "Your most reliable employee wants to quit at the end of the month.",
			BaseWeight:  5, Conditions: ConditionSet{Month: Range{3, 9999}},
			Occurrence: Occurrence{CooldownMonths: 4, MaxTotal: -1},
			WeightRules: []WeightRule{
				{When: ConditionSet{Stress: Range{60, 100}}, Op: "add", Value: 4},
			}},
		{ID: "EV_SUPPLIER_DEAL", Category: "opportunity", Title: "Supplier Discount",
			Description: "Your supplier offers a bulk discount on next month's order.",
			BaseWeight:  7, Conditions: ConditionSet{Cash: Range{5000, 9223372036854775807}},
			Occurrence: Occurrence{CooldownMonths: 2, MaxTotal: -1}},
		{ID: "EV_HEALTH_INSPECTION", Category: "crisis", Title: "Surprise Inspection",
			Description: "A health inspector walks in unannounced.",
			BaseWeight:  4, Occurrence: Occurrence{CooldownMonths: 6, MaxTotal: -1},
			Meta: EventMeta{TraitAdvantage: "J"}},
		{ID: "EV_RIVAL_OPENING", Category: "crisis", Title: "New Competition",
			Description: "A rival shop is fitting out two doors down.",
			BaseWeight:  5, Conditions: ConditionSet{Month: Range{6, 9999}},
			Occurrence: Occurrence{OnceOnly: true, MaxTotal: -1}},
		{ID: "EV_OLD_FRIEND", Category: "life", Title: "An Old Friend Calls",
			Description: "A university friend wants to catch up over dinner.",
			BaseWeight:  6, Occurrence: Occurrence{CooldownMonths: 5, MaxTotal: -1},
			Conditions: ConditionSet{ExcludedFlagsAny: []string{"estranged"}}},
		{ID: "EV_BLIND_DATE", Category: "life", Title: "A Blind Date",
			Description: "Your aunt has arranged a dinner you could not refuse.",
			BaseWeight:  5, Conditions: ConditionSet{RequiredFlagsAll: []string{"single"}},
			Occurrence: Occurrence{CooldownMonths: 3, MaxTotal: -1}},
		{ID: "EV_DEBT_COLLECTOR", Category: "crisis", Title: "The Collector",
			Description: "A man in a cheap suit is asking about your gambling debt.",
			BaseWeight:  0, Occurrence: Occurrence{MaxTotal: -1},
			Conditions: ConditionSet{RequiredFlagsAll: []string{"gambling_debt"}}},
		{ID: "EV_BACK_ALLEY_GAME", Category: "life", Title: "The Back Room",
			Description: "The landlord's nephew invites you to a card game with real stakes.",
			BaseWeight:  3, Conditions: ConditionSet{Stress: Range{40, 100}},
			Occurrence: Occurrence{CooldownMonths: 4, MaxTotal: -1}},
	}

	choices := []ChoiceDefinition{
		{UID: "CH_FIRST_REGULAR_A", EventID: "EV_FIRST_REGULAR", Code: "A",
			Text: "Remember their order and greet them by name.", SuccessRate: 0.9, TraitBonus: "F",
			Success: Outcome{Text: "They smile, and they bring a friend tomorrow.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "reputation", Value: 3}, {Scope: "shop_stat", Op: "add", Shop: "main", Stat: "rating", Value: 0.1}}},
			Fail: Outcome{Text: "You get the order wrong. Awkward.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 2}}}},
		{UID: "CH_FIRST_REGULAR_B", EventID: "EV_FIRST_REGULAR", Code: "B",
			Text: "Keep it professional, nothing more.", SuccessRate: 1,
			Success: Outcome{Text: "A quiet, steady customer. Nothing changes.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "energy", Value: 1}}}},

		{UID: "CH_RAINY_A", EventID: "EV_RAINY_WEEK", Code: "A",
			Text: "Push delivery promotions hard.", SuccessRate: 0.7, TraitBonus: "E",
			Success: Outcome{Text: "Delivery orders cover most of the gap.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: 1500}, {Scope: "stat", Op: "add", Target: "stress", Value: 3}}},
			Fail: Outcome{Text: "The promotion spend barely returns itself.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -800}, {Scope: "stat", Op: "add", Target: "stress", Value: 4}}}},
		{UID: "CH_RAINY_B", EventID: "EV_RAINY_WEEK", Code: "B",
			Text: "Take the slow week to rest.", SuccessRate: 1,
			Success: Outcome{Text: "A quiet week. You needed it.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: -5}, {Scope: "stat", Op: "add", Target: "energy", Value: 5}, {Scope: "stat", Op: "add", Target: "cash", Value: -1000}}}},

		{UID: "CH_BLOGGER_A", EventID: "EV_FOOD_BLOGGER", Code: "A",
			Text: "Send over a sampler on the house.", SuccessRate: 0.6, TraitBonus: "E",
			Success: Outcome{Text: "The review goes up Friday. It is glowing.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "reputation", Value: 8}, {Scope: "shop_stat", Op: "add", Shop: "main", Stat: "rating", Value: 0.3}, {Scope: "flag", Op: "add", Target: "press_coverage"}}},
			Fail: Outcome{Text: "They post a lukewarm paragraph about free food.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "reputation", Value: -3}, {Scope: "stat", Op: "add", Target: "cash", Value: -200}}}},
		{UID: "CH_BLOGGER_B", EventID: "EV_FOOD_BLOGGER", Code: "B",
			Text: "Treat them like any other customer.", SuccessRate: 0.8,
			Success: Outcome{Text: "They appreciate not being fussed over.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "reputation", Value: 2}}},
			Fail: Outcome{Text: "They leave without finishing. No post appears.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 2}}}},

		{UID: "CH_STAFF_QUIT_A", EventID: "EV_STAFF_QUIT", Code: "A",
			Text: "Offer a raise to keep them.", SuccessRate: 0.75, TraitBonus: "F",
			Success: Outcome{Text: "They stay, and they work harder than before.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -2400}, {Scope: "shop_stat", Op: "add", Shop: "main", Stat: "rating", Value: 0.1}}},
			Fail: Outcome{Text: "They take the raise, then leave anyway next month.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -2400}, {Scope: "stat", Op: "add", Target: "stress", Value: 6}, {Scope: "shop_stat", Op: "add", Shop: "main", Stat: "rating", Value: -0.2}}}},
		{UID: "CH_STAFF_QUIT_B", EventID: "EV_STAFF_QUIT", Code: "B",
			Text: "Let them go and cover the shifts yourself.", SuccessRate: 1,
			Success: Outcome{Text: "You make it work, barely.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 8}, {Scope: "stat", Op: "add", Target: "energy", Value: -10}, {Scope: "stat", Op: "add", Target: "cash", Value: 1100}}}},

		{UID: "CH_SUPPLIER_A", EventID: "EV_SUPPLIER_DEAL", Code: "A",
			Text: "Buy three months of stock up front.", SuccessRate: 0.85, TraitBonus: "J",
			Success: Outcome{Text: "The discount holds. Your margins thank you.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -4000}, {Scope: "flag", Op: "add", Target: "stocked_up"}}},
			Fail: Outcome{Text: "Half the delivery arrives close to its date.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -4000}, {Scope: "stat", Op: "add", Target: "stress", Value: 4}}}},
		{UID: "CH_SUPPLIER_B", EventID: "EV_SUPPLIER_DEAL", Code: "B",
			Text: "Pass. Cash is tight.", SuccessRate: 1,
			Success: Outcome{Text: "The supplier shrugs. The offer expires."}},

		{UID: "CH_INSPECTION_A", EventID: "EV_HEALTH_INSPECTION", Code: "A",
			Text: "Walk them through everything, openly.", SuccessRate: 0.8, TraitBonus: "J",
			Success: Outcome{Text: "A clean report, framed by the register.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "reputation", Value: 5}, {Scope: "flag", Op: "add", Target: "clean_record"}}},
			Fail: Outcome{Text: "Two violations. A fine and a re-inspection.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -3000}, {Scope: "stat", Op: "add", Target: "stress", Value: 6}, {Scope: "system", Op: "set", Key: "followup_event_id", Text: "EV_HEALTH_INSPECTION"}}}},
		{UID: "CH_INSPECTION_B", EventID: "EV_HEALTH_INSPECTION", Code: "B",
			Text: "Stall them while the kitchen scrambles.", SuccessRate: 0.5,
			Success: Outcome{Text: "They find nothing. Your pulse returns eventually.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 4}}},
			Fail: Outcome{Text: "Obstruction noted. The fine doubles.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -6000}, {Scope: "stat", Op: "add", Target: "stress", Value: 10}, {Scope: "stat", Op: "add", Target: "reputation", Value: -5}}}},

		{UID: "CH_RIVAL_A", EventID: "EV_RIVAL_OPENING", Code: "A",
			Text: "Refresh the menu before they open.", SuccessRate: 0.65, TraitBonus: "N",
			Success: Outcome{Text: "Regulars love the new items. The rival opens to a quiet street.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -2500}, {Scope: "shop_stat", Op: "add", Shop: "main", Stat: "rating", Value: 0.2}}},
			Fail: Outcome{Text: "The new menu lands flat, and the rival's queue is long.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -2500}, {Scope: "stat", Op: "add", Target: "reputation", Value: -4}, {Scope: "stat", Op: "add", Target: "stress", Value: 5}}}},
		{UID: "CH_RIVAL_B", EventID: "EV_RIVAL_OPENING", Code: "B",
			Text: "Hold course. Loyalty beats novelty.", SuccessRate: 0.75,
			Success: Outcome{Text: "Your regulars stay regulars.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 2}}},
			Fail: Outcome{Text: "Foot traffic dips for a month.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -1800}, {Scope: "stat", Op: "add", Target: "stress", Value: 4}}}},

		{UID: "CH_OLD_FRIEND_A", EventID: "EV_OLD_FRIEND", Code: "A",
			Text: "Close early and go.", SuccessRate: 1,
			Success: Outcome{Text: "You laugh until midnight. Worth every yuan of lost sales.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: -8}, {Scope: "stat", Op: "add", Target: "energy", Value: 4}, {Scope: "stat", Op: "add", Target: "cash", Value: -600}}}},
		{UID: "CH_OLD_FRIEND_B", EventID: "EV_OLD_FRIEND", Code: "B",
			Text: "Rain check. The shop comes first.", SuccessRate: 1,
			Success: Outcome{Text: "They understand. Mostly.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 2}}}},

		{UID: "CH_BLIND_DATE_A", EventID: "EV_BLIND_DATE", Code: "A",
			Text: "Go, with an open mind.", SuccessRate: 0.5, TraitBonus: "E",
			Visibility: FlagRules{RequiredFlagsAll: []string{"single"}},
			Success: Outcome{Text: "Dinner runs long. You exchange numbers.",
				Effects: []Effect{{Scope: "flag", Op: "add", Target: "dating"}, {Scope: "flag", Op: "remove", Target: "single"}, {Scope: "stat", Op: "add", Target: "stress", Value: -4}}},
			Fail: Outcome{Text: "They spend the evening on their phone.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 3}, {Scope: "stat", Op: "add", Target: "energy", Value: -3}}}},
		{UID: "CH_BLIND_DATE_B", EventID: "EV_BLIND_DATE", Code: "B",
			Text: "Invent an inventory emergency.", SuccessRate: 1,
			Success: Outcome{Text: "Your aunt is not fooled, but she lets it go.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: 1}}}},

		{UID: "CH_COLLECTOR_A", EventID: "EV_DEBT_COLLECTOR", Code: "A",
			Text: "Pay it all, right now.", SuccessRate: 1,
			Success: Outcome{Text: "He counts the cash twice, then leaves for good.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -8000}, {Scope: "flag", Op: "remove", Target: "gambling_debt"}, {Scope: "stat", Op: "add", Target: "stress", Value: -6}}}},
		{UID: "CH_COLLECTOR_B", EventID: "EV_DEBT_COLLECTOR", Code: "B",
			Text: "Negotiate a partial payment.", SuccessRate: 0.55, TraitBonus: "T",
			Success: Outcome{Text: "He accepts half and stops coming around.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -4000}, {Scope: "flag", Op: "remove", Target: "gambling_debt"}}},
			Fail: Outcome{Text: "He takes the money and promises to be back.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -4000}, {Scope: "stat", Op: "add", Target: "stress", Value: 8}, {Scope: "system", Op: "set", Key: "followup_event_id", Text: "EV_DEBT_COLLECTOR"}}}},

		{UID: "CH_CARD_GAME_A", EventID: "EV_BACK_ALLEY_GAME", Code: "A",
			Text: "Sit down. One hand.", SuccessRate: 0.4, TraitBonus: "P",
			Success: Outcome{Text: "You walk out up, and you never go back.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: 6000}, {Scope: "stat", Op: "add", Target: "stress", Value: -3}}},
			Fail: Outcome{Text: "One hand becomes six. You owe people now.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "cash", Value: -3000}, {Scope: "stat", Op: "add", Target: "stress", Value: 10}, {Scope: "flag", Op: "add", Target: "gambling_debt"}, {Scope: "system", Op: "set", Key: "followup_event_id", Text: "EV_DEBT_COLLECTOR"}}}},
		{UID: "CH_CARD_GAME_B", EventID: "EV_BACK_ALLEY_GAME", Code: "B",
			Text: "Decline and go home.", SuccessRate: 1,
			Success: Outcome{Text: "A quiet walk home. The right call.",
				Effects: []Effect{{Scope: "stat", Op: "add", Target: "stress", Value: -1}}}},
	}

	d.ChoicesByEvent = make(map[string][]ChoiceDefinition, len(d.Events))
	for _, c := range choices {
		d.ChoicesByEvent[c.EventID] = append(d.ChoicesByEvent[c.EventID], c)
	}

	type achRow struct {
		id, name, icon, condType, condValue, rewardType, rewardValue string
	}
	rows := []achRow{
		{"ACH_FIRST_POT", "First Pot of Gold", "💰", "cash", ">=200000", "cash", "5000"},
		{"ACH_HALF_MILLION", "Half A Million", "🏆", "total_asset", ">=500000", "title", "Rising Boss"},
		{"ACH_STEADY_HAND", "Steady Hand", "📈", "profit_streak", "6", "stress", "-10"},
		{"ACH_SURVIVOR", "Two Years In", "🗓️", "months_survived", ">=24", "cash", "10000"},
		{"ACH_IRON_NERVES", "Iron Nerves", "🧊", "max_stress_survived", "true", "title", "Unbreakable"},
		{"ACH_WELL_RATED", "Neighborhood Favorite", "⭐", "shop_rating", ">=4.5", "percent", "traffic_bonus:0.05"},
		{"ACH_CHAIN_STARTER", "Chain Starter", "🏪", "shop_count", ">=2", "percent", "hire_cost:-0.1"},
		{"ACH_GOOD_NAME", "A Good Name", "🤝", "reputation", ">=80", "unlock", "premium_suppliers"},
		{"ACH_CRISIS_MANAGER", "Crisis Manager", "🧯", "crisis_handled", ">=5", "stress", "-5"},
		{"ACH_HEALTHY_YEAR", "In Good Health", "💪", "health_streak", "12", "cash", "3000"},
	}
	d.Achievements = make([]Achievement, 0, len(rows))
	for _, r := range rows {
		d.Achievements = append(d.Achievements, Achievement{
			ID: r.id, Name: r.name, Icon: r.icon,
			ConditionType: r.condType,
			Condition:     ParseAchievementCondition(r.condValue),
			RewardType:    r.rewardType, RewardValue: r.rewardValue,
		})
	}

	return d
}
