package cmd

import (
	"fmt"
	"io"
	"os"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/debtbook/pkg/api"
)

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the ledger with a JSON export",
		Long: `Replace the whole ledger with a document of the shape
{"people": [...], "tx": [...], "selectedId": ...}. Use "-" to read stdin.
A malformed or invalid document is rejected and nothing changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			resp, err := c.client.ImportLedger(cmd.Context(), connect.NewRequest(&api.ImportLedgerRequest{Document: data}))
			if err != nil {
				return err
			}
			printf(cmd, "Imported %d people and %d transactions\n", resp.Msg.People, resp.Msg.Transactions)
			return nil
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ledger as JSON or the transactions as CSV",
		Example: `  debtbook export > backup.json
  debtbook export --format csv --output debtbook.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var data []byte
			switch format {
			case "json":
				resp, err := c.client.ExportLedger(cmd.Context(), connect.NewRequest(&api.ExportLedgerRequest{}))
				if err != nil {
					return err
				}
				data = append(resp.Msg.Document, '\n')
			case "csv":
				resp, err := c.client.ExportCSV(cmd.Context(), connect.NewRequest(&api.ExportCSVRequest{}))
				if err != nil {
					return err
				}
				data = []byte(resp.Msg.CSV)
			default:
				return fmt.Errorf("unknown format %q: use json or csv", format)
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printf(cmd, "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default: stdout)")
	return cmd
}
