package game

import "kaidian/internal/data"

// ConditionContext is the snapshot a condition set is evaluated against.
type ConditionContext struct {
	Month          int
	Cash           int64
	Stress         int
	Reputation     int
	Season         string
	ShopTypes      []string
	OperationModes []string
	Flags          map[string]bool
}

func (s *State) ConditionContext() ConditionContext {
	ctx := ConditionContext{
		Month:      s.Month,
		Cash:       s.Player.Cash,
		Stress:     s.Player.Stress,
		Reputation: s.Player.Reputation,
		Season:     Season(s.Month),
		Flags:      s.Player.Flags,
	}
	for _, sh := range s.Shops {
		ctx.ShopTypes = append(ctx.ShopTypes, sh.TypeID)
		ctx.OperationModes = append(ctx.OperationModes, sh.OperationMode)
	}
	return ctx
}

// MatchConditions reports whether every populated field of c admits ctx.
// Empty condition sets match everything.
func MatchConditions(c data.ConditionSet, ctx ConditionContext) bool {
	if !c.Month.Contains(int64(ctx.Month)) {
		return false
	}
	if !c.Cash.Contains(ctx.Cash) {
		return false
	}
	if !c.Stress.Contains(int64(ctx.Stress)) {
		return false
	}
	if !c.Reputation.Contains(int64(ctx.Reputation)) {
		return false
	}
	if !listMatch(c.ShopTypeIn, ctx.ShopTypes) {
		return false
	}
	if !listMatch(c.OperationModeIn, ctx.OperationModes) {
		return false
	}
	if !listMatch(c.SeasonIn, []string{ctx.Season}) {
		return false
	}
	return matchFlagRules(data.FlagRules{
		RequiredFlagsAll: c.RequiredFlagsAll,
		RequiredFlagsAny: c.RequiredFlagsAny,
		ExcludedFlagsAny: c.ExcludedFlagsAny,
	}, ctx.Flags)
}

// MatchFlags evaluates the flag-only rules used for choice visibility.
func MatchFlags(r data.FlagRules, flags map[string]bool) bool {
	return matchFlagRules(r, flags)
}

func matchFlagRules(r data.FlagRules, flags map[string]bool) bool {
	for _, f := range r.RequiredFlagsAll {
		if !flags[f] {
			return false
		}
	}
	if len(r.RequiredFlagsAny) > 0 {
		any := false
		for _, f := range r.RequiredFlagsAny {
			if flags[f] {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	for _, f := range r.ExcludedFlagsAny {
		if flags[f] {
			return false
		}
	}
	return true
}

// listMatch: an empty wanted list or an "ALL" member accepts anything;
// otherwise any intersection with have passes.
func listMatch(wanted, have []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if w == "ALL" {
			return true
		}
	}
	for _, w := range wanted {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
