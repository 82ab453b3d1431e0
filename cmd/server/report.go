package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/cashbench/internal/calculator"
	"github.com/mmynk/cashbench/internal/calendar"
	"github.com/mmynk/cashbench/internal/config"
	"github.com/mmynk/cashbench/internal/models"
	"github.com/mmynk/cashbench/internal/service"
	"github.com/mmynk/cashbench/internal/storage"
	"github.com/mmynk/cashbench/internal/storage/sqlite"
)

var (
	flagUser     string
	flagHorizon  int
	flagExcluded []string
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List bills due soon",
	RunE:  runDue,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show net worth, safe-to-spend and workbench totals",
	RunE:  runSummary,
}

func init() {
	for _, c := range []*cobra.Command{dueCmd, summaryCmd} {
		c.Flags().StringVarP(&flagUser, "user", "u", "", "Email of the user to report on")
		_ = c.MarkFlagRequired("user")
		rootCmd.AddCommand(c)
	}
	dueCmd.Flags().IntVar(&flagHorizon, "horizon", -1, "Days ahead that count as due soon (default from config)")
	summaryCmd.Flags().StringSliceVar(&flagExcluded, "exclude", nil, "Account IDs left out of the workbench")
}

// openUserStore loads the config, opens the database and resolves email to
// a user. The caller closes the store.
func openUserStore(ctx context.Context, email string) (config.Config, storage.Store, *models.User, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, nil, err
	}
	store, err := sqlite.New(cfg.Server.DBPath)
	if err != nil {
		return cfg, nil, nil, err
	}
	user, err := store.GetUserByEmail(ctx, email)
	if err == nil && user == nil {
		err = fmt.Errorf("no user with email %q in %s", email, cfg.Server.DBPath)
	}
	if err != nil {
		store.Close()
		return cfg, nil, nil, err
	}
	return cfg, store, user, nil
}

func runDue(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, store, user, err := openUserStore(ctx, flagUser)
	if err != nil {
		return err
	}
	defer store.Close()

	horizon := flagHorizon
	if horizon < 0 {
		horizon = cfg.Schedule.DueSoonDays
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	bills, err := store.ListBillTemplates(ctx, user.ID)
	if err != nil {
		return err
	}
	return writeDueReport(cmd.OutOrStdout(), bills, calendar.Today(loc), horizon)
}

func writeDueReport(w io.Writer, bills []models.BillTemplate, today calendar.Date, horizon int) error {
	due := calculator.DueSoon(bills, today, horizon)
	fmt.Fprintf(w, "  Bills due in the next %d days (as of %s)\n\n", horizon, today)
	if len(due) == 0 {
		fmt.Fprintln(w, "  Nothing due.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	total := decimal.Zero
	for _, b := range due {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t\n", b.Name, formatMoney(b.DefaultAmount), b.NextDueDate.Short(), relativeDay(today, b.NextDueDate))
		total = total.Add(b.DefaultAmount)
	}
	fmt.Fprintf(tw, "  Total\t%s\t\t\t\n", formatMoney(total))
	return tw.Flush()
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, store, user, err := openUserStore(ctx, flagUser)
	if err != nil {
		return err
	}
	defer store.Close()

	accounts, err := store.ListAccounts(ctx, user.ID)
	if err != nil {
		return err
	}
	bills, err := store.ListBillTemplates(ctx, user.ID)
	if err != nil {
		return err
	}
	txns, err := store.ListTransactions(ctx, user.ID)
	if err != nil {
		return err
	}

	return writeSummary(cmd.OutOrStdout(), summaryInput{
		User:        user,
		Accounts:    accounts,
		Bills:       bills,
		Txns:        txns,
		Workbenches: service.WithMainWorkbench(cfg.Workbenches),
		ExcludedIDs: flagExcluded,
	})
}

type summaryInput struct {
	User        *models.User
	Accounts    []models.Account
	Bills       []models.BillTemplate
	Txns        []models.Transaction
	Workbenches []models.WorkbenchConfig
	ExcludedIDs []string
}

func writeSummary(w io.Writer, in summaryInput) error {
	if in.User == nil {
		return errors.New("no user")
	}
	net := calculator.ComputeNetWorth(in.Accounts)
	bench := calculator.ComputeWorkbenchNetWorth(in.Accounts, in.ExcludedIDs)

	fmt.Fprintf(w, "  %s <%s>\n\n", in.User.DisplayName, in.User.Email)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  Assets\t%s\t\n", formatMoney(net.TotalAssets))
	fmt.Fprintf(tw, "  Liabilities\t%s\t\n", formatMoney(net.TotalLiabilities))
	fmt.Fprintf(tw, "  Net worth\t%s\t\n", formatMoney(net.NetWorth))
	fmt.Fprintf(tw, "  Workbench net worth\t%s\t\n", formatMoney(bench.NetWorth))
	fmt.Fprintf(tw, "  Monthly bills\t%s\t\n", formatMoney(calculator.MonthlyExposure(in.Bills)))
	fmt.Fprintf(tw, "  Safe to spend\t%s\t\n", formatMoney(calculator.ComputeSafeToSpend(in.Accounts, in.Bills)))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  Workbench\tStart\tIncome\tExpenses\tProjected\tEntries\t\n")
	for _, wb := range in.Workbenches {
		entries := calculator.PartitionByTag(in.Txns, wb.Tag)
		starting := calculator.StartingBalance(wb, in.Accounts, in.ExcludedIDs)
		totals := calculator.ComputeTotals(starting, entries)
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t\n",
			wb.Title,
			formatMoney(starting),
			formatMoney(totals.Income),
			formatMoney(totals.Expenses),
			formatMoney(totals.ProjectedBalance),
			humanize.Comma(int64(len(entries))),
		)
	}
	return tw.Flush()
}

// formatMoney renders d as "$1,234.50" or "-$1,234.50" without leaving
// decimal arithmetic.
func formatMoney(d decimal.Decimal) string {
	abs := d.Round(2).Abs()
	fixed := abs.StringFixed(2)
	s := "$" + humanize.Comma(abs.IntPart()) + fixed[len(fixed)-3:]
	if d.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}

func relativeDay(today, due calendar.Date) string {
	if due == today {
		return "today"
	}
	return humanize.RelTime(due.Time(), today.Time(), "ago", "from now")
}
