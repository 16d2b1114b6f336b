package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/debtbook/pkg/api"
)

func (c *cli) statementCmd() *cobra.Command {
	var personID, from, to string
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Show a person's transactions, newest first",
		Long: `Show the statement of --person or the selected person. --from and --to
override the saved filter for this call.`,
		Example: `  debtbook statement
  debtbook statement --from 2024-01-01 --to 2024-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.client.GetStatement(cmd.Context(), connect.NewRequest(&api.GetStatementRequest{
				PersonID: personID,
				From:     from,
				To:       to,
			}))
			if err != nil {
				return err
			}
			st := resp.Msg
			if !st.Found {
				printf(cmd, "No person selected.\n")
				return nil
			}

			printf(cmd, "%s (%s)\n", st.Person.Name, orDash(st.Person.Contact))
			if st.From != "" || st.To != "" {
				printf(cmd, "Period: %s to %s\n", orDash(st.From), orDash(st.To))
			}
			printf(cmd, "\n")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tDUE\tTYPE\tAMOUNT\tSIGNED\tNOTE\tID")
			for _, row := range st.Rows {
				due := orDash(row.Due)
				if row.Overdue {
					due += " OVERDUE"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					orDash(row.Date), due, kindLabel(row.Kind), c.amount(row.Amount), row.Signed, row.Note, row.ID)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			printf(cmd, "\nBalance: %s\n", c.balance(st.Balance))
			if st.Balance != st.TotalBalance {
				printf(cmd, "Overall: %s\n", c.balance(st.TotalBalance))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&personID, "person", "", "person ID (default: the selected person)")
	cmd.Flags().StringVar(&from, "from", "", "first date YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last date YYYY-MM-DD")
	return cmd
}

func (c *cli) printSummary(cmd *cobra.Command, s api.Summary) {
	printf(cmd, "Owed to me:    %s\n", c.amount(s.PositiveTotal))
	printf(cmd, "I owe:         %s\n", c.amount(strings.TrimPrefix(s.NegativeTotal, "-")))
	printf(cmd, "Net:           %s\n", c.balance(s.Net))
	printf(cmd, "People:        %d\n", s.PersonCount)
	printf(cmd, "Transactions:  %d\n", s.TransactionCount)
}

func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show ledger-wide totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.client.GetSummary(cmd.Context(), connect.NewRequest(&api.GetSummaryRequest{}))
			if err != nil {
				return err
			}
			c.printSummary(cmd, resp.Msg.Summary)
			return nil
		},
	}
}

func (c *cli) dashboardCmd() *cobra.Command {
	var asOf string
	var months, top int
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, top balances, monthly activity and overdue aging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.client.GetDashboard(cmd.Context(), connect.NewRequest(&api.GetDashboardRequest{
				AsOf:       asOf,
				MonthsBack: months,
				TopN:       top,
			}))
			if err != nil {
				return err
			}
			d := resp.Msg

			printf(cmd, "=== Dashboard as of %s ===\n\n", d.AsOf)
			c.printSummary(cmd, d.Summary)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\nTOP BALANCES\t")
			for _, r := range d.Top {
				fmt.Fprintf(tw, "%s\t%s\n", r.Name, c.balance(r.Balance))
			}
			fmt.Fprintln(tw, "\nMONTH\tNET\tCOUNT")
			for i, label := range d.Monthly.Labels {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", label, c.amount(d.Monthly.Net[i]), d.Monthly.Count[i])
			}
			fmt.Fprintln(tw, "\nBY KIND\t")
			for i, label := range d.ByKind.Labels {
				fmt.Fprintf(tw, "%s\t%s\n", label, c.amount(d.ByKind.Data[i]))
			}
			fmt.Fprintln(tw, "\nDAYS OVERDUE\t")
			for i, label := range d.Aging.Labels {
				fmt.Fprintf(tw, "%s\t%s\n", label, c.amount(d.Aging.Data[i]))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&months, "months", 0, "length of the monthly series (default: MONTHS_BACK)")
	cmd.Flags().IntVar(&top, "top", 0, "number of people ranked (default: TOP_N)")
	return cmd
}

func (c *cli) filterCmd() *cobra.Command {
	var from, to string
	var reset bool
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Show or change the saved statement date filter",
		Example: `  debtbook filter --from 2024-01-01 --to 2024-03-31
  debtbook filter --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var gotFrom, gotTo string
			if reset || from != "" || to != "" {
				if reset {
					from, to = "", ""
				}
				resp, err := c.client.SetFilter(cmd.Context(), connect.NewRequest(&api.SetFilterRequest{From: from, To: to}))
				if err != nil {
					return err
				}
				gotFrom, gotTo = resp.Msg.From, resp.Msg.To
			} else {
				resp, err := c.client.GetFilter(cmd.Context(), connect.NewRequest(&api.GetFilterRequest{}))
				if err != nil {
					return err
				}
				gotFrom, gotTo = resp.Msg.From, resp.Msg.To
			}

			if gotFrom == "" && gotTo == "" {
				printf(cmd, "No date filter.\n")
				return nil
			}
			printf(cmd, "Date filter: %s to %s\n", orDash(gotFrom), orDash(gotTo))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first date YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last date YYYY-MM-DD")
	cmd.Flags().BoolVar(&reset, "clear", false, "remove the filter")
	return cmd
}
