package cmd

import (
	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/pkg/api"
)

// kindLabel turns a wire kind name into its display label.
func kindLabel(s string) string {
	k, err := models.ParseKind(s)
	if err != nil {
		return s
	}
	return k.Label()
}

func (c *cli) addTxCmd() *cobra.Command {
	var personID, date, due, note string
	cmd := &cobra.Command{
		Use:   "add-tx KIND AMOUNT",
		Short: "Record a transaction",
		Long: `Record a transaction for --person or, when omitted, the selected person.

KIND is one of:
  lent          I lent them money (they owe me more)
  repay_to_me   they paid me back
  borrowed      I borrowed from them (I owe them more)
  repay_by_me   I paid them back

AMOUNT is a positive number; a decimal comma is accepted.`,
		Example: `  debtbook add-tx lent 500 --date 2024-01-10 --due 2024-03-01
  debtbook add-tx repay_to_me 200,50 --person 6f1c...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.AddTransaction(cmd.Context(), connect.NewRequest(&api.AddTransactionRequest{
				PersonID: personID,
				Kind:     args[0],
				Amount:   args[1],
				Date:     date,
				Due:      due,
				Note:     note,
			}))
			if err != nil {
				return err
			}
			t := resp.Msg.Transaction
			printf(cmd, "Recorded %s %s on %s (%s)\n", kindLabel(t.Kind), c.amount(t.Amount), t.Date, t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&personID, "person", "", "person ID (default: the selected person)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	return cmd
}

func (c *cli) deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-tx TRANSACTION_ID",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.client.DeleteTransaction(cmd.Context(), connect.NewRequest(&api.DeleteTransactionRequest{TransactionID: args[0]})); err != nil {
				return err
			}
			printf(cmd, "Deleted transaction %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) settleCmd() *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "settle PERSON_ID",
		Short: "Record the repayment that clears a person's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.SettlePerson(cmd.Context(), connect.NewRequest(&api.SettlePersonRequest{
				PersonID: args[0],
				Note:     note,
			}))
			if err != nil {
				return err
			}
			t := resp.Msg.Transaction
			printf(cmd, "Settled with %s: %s %s\n", args[0], kindLabel(t.Kind), c.amount(t.Amount))
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note for the repayment (default: \"Settled up\")")
	return cmd
}
