package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kaidian/internal/game"

	"github.com/fatih/color"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptRequired(label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		printWarn(label + " is required.")
	}
}

func promptChoice(label string, options []string, defaultValue string) (string, error) {
	normalized := make(map[string]struct{}, len(options))
	for _, opt := range options {
		normalized[strings.ToLower(strings.TrimSpace(opt))] = struct{}{}
	}
	for {
		fmt.Printf("%s (%s) [%s]: ", label, strings.Join(options, "/"), defaultValue)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			text = strings.ToLower(strings.TrimSpace(defaultValue))
		}
		if _, ok := normalized[text]; ok {
			return text, nil
		}
		printWarn("Invalid option. Please pick one of the listed values.")
	}
}

func promptFloat(label string, min float64) (float64, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			printWarn("Enter a valid number.")
			continue
		}
		if v < min {
			printWarn(fmt.Sprintf("Value must be >= %.4f", min))
			continue
		}
		return v, nil
	}
}

func promptInt64(label string, min int64) (int64, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			printWarn("Enter a whole number.")
			continue
		}
		if v < min {
			printWarn(fmt.Sprintf("Value must be >= %d", min))
			continue
		}
		return v, nil
	}
}

func renderCatalog(c *game.CatalogView) {
	accent.Println("\n== TRAITS ==")
	fmt.Printf("%-8s %-16s %10s %8s %8s %8s\n", "ID", "NAME", "CASH", "STRESS", "HEALTH", "REP")
	for _, t := range c.Traits {
		fmt.Printf("%-8s %-16s %10s %+8d %+8d %+8d\n",
			t.ID, truncate(t.Name, 16), signedComma(t.DeltaCash), t.DeltaStress, t.DeltaHealth, t.DeltaReputation)
	}

	accent.Println("\n== SHOP TYPES ==")
	fmt.Printf("%-12s %-16s %8s %12s %10s\n", "ID", "NAME", "AREA", "TICKET", "DAILY OPS")
	for _, st := range c.ShopTypes {
		fmt.Printf("%-12s %-16s %8d %5d-%-6d %10s\n",
			st.ID, truncate(st.Name, 16), st.IdealArea, st.AvgTicketMin, st.AvgTicketMax, comma(st.DailyCostBase))
	}

	accent.Println("\n== LOCATIONS ==")
	fmt.Printf("%-14s %-16s %8s %8s\n", "ID", "NAME", "TRAFFIC", "RENT")
	for _, l := range c.Locations {
		fmt.Printf("%-14s %-16s %8.2f %8.2f\n", l.ID, truncate(l.Name, 16), l.TrafficMultiplier, l.RentMultiplier)
	}
	fmt.Println()
}

func renderGame(g *game.GameView) {
	accent.Printf("\n== %s | YEAR %d MONTH %d (%s) ==\n", strings.ToUpper(g.Player.Name), g.Year, g.Month, g.Season)
	fmt.Printf("Cash:         %s yuan\n", comma(g.Player.Cash))
	fmt.Printf("Total Assets: %s yuan\n", comma(g.TotalAssets))
	fmt.Printf("Debt:         %s yuan\n", comma(g.Debt))
	fmt.Printf("Stress:       %d/100   Health: %d/100   Energy: %d/100\n", g.Player.Stress, g.Player.Health, g.Player.Energy)
	fmt.Printf("Reputation:   %d/100   Age: %d   Skip tickets: %d\n", g.Player.Reputation, g.Player.Age, g.SkipTickets)
	if g.Player.Title != "" {
		fmt.Printf("Title:        %s\n", g.Player.Title)
	}

	if len(g.Shops) > 0 {
		fmt.Println()
		accent.Println("Shops")
		fmt.Printf("%-20s %-12s %-12s %8s %14s %14s\n", "NAME", "TYPE", "LOCATION", "RATING", "REVENUE", "PROFIT")
		for _, sh := range g.Shops {
			fmt.Printf("%-20s %-12s %-12s %8.1f %14s %14s\n",
				truncate(sh.Name, 20), sh.TypeID, sh.LocationID, sh.Rating,
				comma(sh.LastMonthRevenue), colorizeAmount(sh.LastMonthProfit))
		}
	}

	if len(g.Loans) > 0 {
		fmt.Println()
		accent.Println("Loans")
		fmt.Printf("%-36s %12s %12s %10s %8s\n", "ID", "PRINCIPAL", "REMAINING", "PAYMENT", "MONTHS")
		for _, l := range g.Loans {
			fmt.Printf("%-36s %12s %12s %10s %8d\n",
				l.ID, comma(l.Principal), comma(l.Remaining), comma(l.MonthlyPayment), l.RemainingMonths)
		}
	}

	if g.PendingEvent != "" {
		fmt.Println()
		printWarn("An event is waiting. Run `kd event` then `kd choose`.")
	}
	if g.GameOver {
		fmt.Println()
		danger.Printf("GAME OVER: %s\n", g.GameOverReason)
	}
	fmt.Println()
}

func renderEvent(ev *game.EventView) {
	accent.Printf("\n== MONTH %d: %s ==\n", ev.Month, ev.Title)
	if ev.Description != "" {
		fmt.Println(ev.Description)
	}
	fmt.Println()
	for _, c := range ev.Choices {
		fmt.Printf("  [%s] %s", c.Code, c.Text)
		if c.SuccessRate < 1 {
			fmt.Printf("  (%.0f%%)", c.SuccessRate*100)
		}
		fmt.Println()
	}
	fmt.Println()
}

func renderTurn(tv *game.TurnView, withResult bool) {
	if withResult {
		if tv.Result.Success {
			printSuccess(fmt.Sprintf("Success (rolled %.2f vs %.2f)", tv.Result.Roll, tv.Result.Rate))
		} else {
			printWarn(fmt.Sprintf("Failed (rolled %.2f vs %.2f)", tv.Result.Roll, tv.Result.Rate))
		}
	}
	if tv.Summary != nil {
		renderSummary(tv.Summary)
	}
	if tv.Game != nil {
		renderGame(tv.Game)
	}
}

func renderSummary(sum *game.TurnSummary) {
	accent.Printf("\n== MONTH %d SETTLEMENT ==\n", sum.Month)
	for _, sr := range sum.Shops {
		closed := ""
		if sr.ForcedClosed {
			closed = danger.Sprint("  [CLOSED]")
		}
		fmt.Printf("%s: %d customers, revenue %s, profit %s%s\n",
			sr.ShopName, sr.Customers, comma(sr.Revenue), colorizeAmount(sr.Profit), closed)
	}
	fmt.Printf("Shop profit:   %s\n", colorizeAmount(sum.ShopProfitTotal))
	fmt.Printf("Living costs:  -%s\n", comma(sum.LivingExpense))
	if sum.LoanPaymentTotal > 0 {
		fmt.Printf("Loan payments: -%s\n", comma(sum.LoanPaymentTotal))
	}
	fmt.Printf("Net flow:      %s\n", colorizeAmount(sum.NetFlow))
	fmt.Printf("Cash:          %s -> %s\n", comma(sum.CashBefore), comma(sum.CashAfter))
	for _, id := range sum.WorldStarted {
		printWarn("World event started: " + id)
	}
	for _, id := range sum.Achievements {
		printSuccess("Achievement unlocked: " + id)
	}
	if sum.GameOver {
		danger.Printf("GAME OVER: %s\n", sum.GameOverReason)
	}
	fmt.Println()
}

func renderWorld(active []game.WorldEventView) {
	accent.Println("\n== WORLD EVENTS ==")
	if len(active) == 0 {
		printInfo("Nothing unusual this month.")
		fmt.Println()
		return
	}
	for _, w := range active {
		left := fmt.Sprintf("%d months left", w.RemainingMonths)
		if w.Permanent {
			left = "permanent"
		}
		fmt.Printf("  %s (%s)\n", w.Name, left)
	}
	fmt.Println()
}

func renderAchievements(list []game.AchievementView) {
	accent.Println("\n== ACHIEVEMENTS ==")
	for _, a := range list {
		mark := neutral.Sprint("[ ]")
		if a.Unlocked {
			mark = success.Sprint("[x]")
		}
		fmt.Printf("  %s %s %s\n", mark, a.Icon, a.Name)
	}
	fmt.Println()
}

func colorizeAmount(v int64) string {
	text := signedComma(v)
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func signedComma(v int64) string {
	if v > 0 {
		return "+" + comma(v)
	}
	return comma(v)
}

func comma(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return sign + b.String()
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
