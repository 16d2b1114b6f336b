// Package cmd provides CLI commands for debtbook.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/debtbook/internal/app"
	"github.com/mmynk/debtbook/internal/config"
	"github.com/mmynk/debtbook/internal/format"
	"github.com/mmynk/debtbook/pkg/api/apiconnect"
	"github.com/mmynk/debtbook/pkg/logging"
)

// cli is the state shared by every subcommand of one invocation.
type cli struct {
	remote string
	debug  bool

	client apiconnect.LedgerServiceClient
	money  *format.Money
	app    *app.App
}

// newRootCmd builds the command tree. Every call returns fresh flag state.
func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:   "debtbook",
		Short: "Track money lent to and borrowed from people",
		Long: `debtbook keeps a personal ledger of debts and credits per person.

It supports:
- People with contact details and a running balance
- Lending, borrowing and repayments with due dates
- Statements, summaries and dashboards
- JSON import/export and CSV export

By default it opens the store configured by DATA_BACKEND; with --remote it
talks to a running debtbook server instead.

Example:
  debtbook add-person Anna --contact 555-0101
  debtbook add-tx lent 500 --date 2024-01-10
  debtbook statement`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.remote, "remote", "", "base URL of a debtbook server (default: open the local store)")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		c.peopleCmd(),
		c.addPersonCmd(),
		c.selectCmd(),
		c.infoCmd(),
		c.deletePersonCmd(),
		c.addTxCmd(),
		c.deleteTxCmd(),
		c.settleCmd(),
		c.statementCmd(),
		c.summaryCmd(),
		c.dashboardCmd(),
		c.filterCmd(),
		c.importCmd(),
		c.exportCmd(),
	)
	return root, c
}

// Run executes the CLI with args. The store is closed even when the command fails.
func Run(args []string, stdout, stderr io.Writer) error {
	root, c := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	return errors.Join(err, c.close())
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if c.debug {
		level = slog.LevelDebug
	}
	logging.SetupWith(cmd.ErrOrStderr(), level, cfg.LogFormat)

	c.money, err = format.NewMoney(cfg.Currency, cfg.Locale)
	if err != nil {
		return err
	}

	if c.remote != "" {
		slog.Debug("Using remote server", "url", c.remote)
		c.client = apiconnect.NewLedgerServiceClient(http.DefaultClient, strings.TrimRight(c.remote, "/"))
		return nil
	}

	// The CLI never serves /metrics.
	cfg.MetricsEnabled = false
	c.app, err = app.New(cfg)
	if err != nil {
		return err
	}
	c.client = c.app.Service
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// amount renders a decimal string from the API in the configured currency.
func (c *cli) amount(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return c.money.Format(d)
}

// balance renders a balance string with who owes whom.
func (c *cli) balance(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return c.money.Balance(d)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printf(cmd *cobra.Command, layout string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), layout, args...)
}
