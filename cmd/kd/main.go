package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	cl "kaidian/internal/cli"
	"kaidian/internal/config"
	"kaidian/internal/game"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.LoadCLIFromEnv()
	apiBase := cfg.APIBaseURL
	token := cfg.AuthToken

	root := &cobra.Command{
		Use:          "kd",
		Short:        "Kaidian shop-life CLI client",
		SilenceUsage: true,
	}

	root.AddCommand(
		newCatalogCmd(&apiBase, &token),
		newNewGameCmd(&apiBase, &token),
		newStatusCmd(&apiBase, &token),
		newStartCmd(&apiBase, &token),
		newEventCmd(&apiBase, &token),
		newChooseCmd(&apiBase, &token),
		newSkipCmd(&apiBase, &token),
		newSummaryCmd(&apiBase, &token),
		newWorldCmd(&apiBase, &token),
		newAchievementsCmd(&apiBase, &token),
		newLoanCmd(&apiBase, &token),
		newQuitCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase, token *string) *cl.Client {
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"), strings.TrimSpace(*token))
}

func activeGame() (cl.Session, error) {
	sess, err := cl.LoadSession()
	if err != nil {
		return cl.Session{}, fmt.Errorf("no active game, run `kd new` first: %w", err)
	}
	return sess, nil
}

func newCatalogCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List traits, shop types and locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			out, err := newClient(apiBase, token).Catalog(ctx)
			if err != nil {
				return err
			}
			renderCatalog(out)
			return nil
		},
	}
}

func newNewGameCmd(apiBase, token *string) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Open a new shop and start a run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			client := newClient(apiBase, token)

			catalog, err := client.Catalog(ctx)
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = strings.TrimSpace(args[0])
			} else {
				name, err = promptRequired("Player name")
				if err != nil {
					return err
				}
			}
			traitID, err := promptChoice("Trait", traitIDs(catalog), catalog.Traits[0].ID)
			if err != nil {
				return err
			}
			shopTypeID, err := promptChoice("Shop type", shopTypeIDs(catalog), catalog.ShopTypes[0].ID)
			if err != nil {
				return err
			}
			locationID, err := promptChoice("Location", locationIDs(catalog), catalog.Locations[0].ID)
			if err != nil {
				return err
			}

			gv, err := client.NewGame(ctx, game.CreateGameInput{
				PlayerName: name,
				TraitID:    traitID,
				ShopTypeID: shopTypeID,
				LocationID: locationID,
				Seed:       seed,
			})
			if err != nil {
				return err
			}
			if err := cl.SaveSession(cl.Session{GameID: gv.ID, PlayerName: name, BaseURL: *apiBase}); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Game %s started. Run `kd start` to play the first month.", gv.ID))
			renderGame(gv)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed RNG seed (0 picks one)")
	return cmd
}

func newStatusCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current run",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			gv, err := newClient(apiBase, token).Game(ctx, sess.GameID)
			if err != nil {
				return err
			}
			renderGame(gv)
			return nil
		},
	}
}

func newStartCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the month and draw its event",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			ev, err := newClient(apiBase, token).StartMonth(ctx, sess.GameID)
			if err != nil {
				return err
			}
			renderEvent(ev)
			return nil
		},
	}
}

func newEventCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "event",
		Short: "Show the pending event again",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			ev, err := newClient(apiBase, token).CurrentEvent(ctx, sess.GameID)
			if err != nil {
				return err
			}
			renderEvent(ev)
			return nil
		},
	}
}

func newChooseCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "choose [code]",
		Short: "Resolve the pending event and settle the month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			client := newClient(apiBase, token)

			code := ""
			if len(args) > 0 {
				code = strings.ToUpper(strings.TrimSpace(args[0]))
			} else {
				ev, err := client.CurrentEvent(ctx, sess.GameID)
				if err != nil {
					return err
				}
				renderEvent(ev)
				code, err = promptChoice("Choice", choiceCodes(ev), ev.Choices[0].Code)
				if err != nil {
					return err
				}
				code = strings.ToUpper(code)
			}

			tv, err := client.Choose(ctx, sess.GameID, code)
			if err != nil {
				return err
			}
			renderTurn(tv, true)
			return nil
		},
	}
}

func newSkipCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "skip [months]",
		Short: "Spend skip tickets to fast-forward months",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			months := 1
			if len(args) > 0 {
				months, err = strconv.Atoi(strings.TrimSpace(args[0]))
				if err != nil || months < 1 {
					return fmt.Errorf("invalid month count")
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			tv, err := newClient(apiBase, token).Skip(ctx, sess.GameID, months)
			if err != nil {
				return err
			}
			renderTurn(tv, false)
			return nil
		},
	}
}

func newSummaryCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show last month's settlement",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			sum, err := newClient(apiBase, token).Summary(ctx, sess.GameID)
			if err != nil {
				return err
			}
			renderSummary(sum)
			return nil
		},
	}
}

func newWorldCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:   "world",
		Short: "List active world events",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			active, err := newClient(apiBase, token).World(ctx, sess.GameID)
			if err != nil {
				return err
			}
			renderWorld(active)
			return nil
		},
	}
}

func newAchievementsCmd(apiBase, token *string) *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Short:   "Show achievement progress",
		Aliases: []string{"ach"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			list, err := newClient(apiBase, token).Achievements(ctx, sess.GameID)
			if err != nil {
				return err
			}
			renderAchievements(list)
			return nil
		},
	}
}

func newLoanCmd(apiBase, token *string) *cobra.Command {
	loan := &cobra.Command{
		Use:   "loan",
		Short: "Borrow money or repay a loan",
	}
	loan.AddCommand(&cobra.Command{
		Use:   "take [principal]",
		Short: "Take out a bank loan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			var principal int64
			if len(args) > 0 {
				principal, err = strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
				if err != nil || principal <= 0 {
					return fmt.Errorf("invalid principal")
				}
			} else {
				principal, err = promptInt64("Principal", 1)
				if err != nil {
					return err
				}
			}
			rate, err := promptFloat("Annual rate (e.g. 0.12)", 0)
			if err != nil {
				return err
			}
			term, err := promptInt64("Term in months", 1)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			gv, err := newClient(apiBase, token).Borrow(ctx, sess.GameID, game.BorrowInput{
				Principal:  principal,
				AnnualRate: rate,
				TermMonths: int(term),
			})
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Borrowed %s yuan.", comma(principal)))
			renderGame(gv)
			return nil
		},
	})
	loan.AddCommand(&cobra.Command{
		Use:   "repay [loan_id]",
		Short: "Repay a loan in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := activeGame()
			if err != nil {
				return err
			}
			loanID := ""
			if len(args) > 0 {
				loanID = strings.TrimSpace(args[0])
			} else {
				loanID, err = promptRequired("Loan ID")
				if err != nil {
					return err
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			gv, err := newClient(apiBase, token).RepayLoan(ctx, sess.GameID, loanID)
			if err != nil {
				return err
			}
			printSuccess("Loan cleared.")
			renderGame(gv)
			return nil
		},
	})
	return loan
}

func newQuitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit",
		Short: "Forget the local game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.ClearSession(); err != nil {
				return err
			}
			printSuccess("Session cleared.")
			return nil
		},
	}
}

func traitIDs(c *game.CatalogView) []string {
	out := make([]string, 0, len(c.Traits))
	for _, t := range c.Traits {
		out = append(out, t.ID)
	}
	return out
}

func shopTypeIDs(c *game.CatalogView) []string {
	out := make([]string, 0, len(c.ShopTypes))
	for _, st := range c.ShopTypes {
		out = append(out, st.ID)
	}
	return out
}

func locationIDs(c *game.CatalogView) []string {
	out := make([]string, 0, len(c.Locations))
	for _, l := range c.Locations {
		out = append(out, l.ID)
	}
	return out
}

func choiceCodes(ev *game.EventView) []string {
	out := make([]string, 0, len(ev.Choices))
	for _, c := range ev.Choices {
		out = append(out, c.Code)
	}
	return out
}
