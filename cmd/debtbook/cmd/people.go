package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/debtbook/pkg/api"
)

func (c *cli) peopleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "people [query]",
		Short: "List people with their balances",
		Long: `List people sorted by name. An optional query keeps only people whose
name or contact contains it, ignoring case.

Example:
  debtbook people
  debtbook people anna`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &api.ListPeopleRequest{}
			if len(args) == 1 {
				req.Query = args[0]
			}
			resp, err := c.client.ListPeople(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return err
			}
			if len(resp.Msg.People) == 0 {
				printf(cmd, "No people found.\n")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCONTACT\tBALANCE\tID")
			for _, p := range resp.Msg.People {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, orDash(p.Contact), c.balance(p.Balance), p.ID)
			}
			return tw.Flush()
		},
	}
}

func (c *cli) addPersonCmd() *cobra.Command {
	var contact, note string
	cmd := &cobra.Command{
		Use:   "add-person NAME",
		Short: "Add a person and select them",
		Example: `  debtbook add-person Anna Jensen --contact anna@example.com`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.AddPerson(cmd.Context(), connect.NewRequest(&api.AddPersonRequest{
				Name:    strings.Join(args, " "),
				Contact: contact,
				Note:    note,
			}))
			if err != nil {
				return err
			}
			p := resp.Msg.Person
			printf(cmd, "Added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&contact, "contact", "", "phone number, e-mail or other contact detail")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	return cmd
}

func (c *cli) selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [PERSON_ID]",
		Short: "Select the person new transactions and statements apply to",
		Long: `Select a person by ID. Without an argument, show the current selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, err := c.client.SelectPerson(cmd.Context(), connect.NewRequest(&api.SelectPersonRequest{PersonID: args[0]})); err != nil {
					return err
				}
			}
			resp, err := c.client.GetSelection(cmd.Context(), connect.NewRequest(&api.GetSelectionRequest{}))
			if err != nil {
				return err
			}
			if resp.Msg.Person == nil {
				printf(cmd, "No person selected.\n")
				return nil
			}
			printf(cmd, "Selected %s (%s): %s\n", resp.Msg.Person.Name, resp.Msg.Person.ID, c.balance(resp.Msg.Person.Balance))
			return nil
		},
	}
}

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info PERSON_ID",
		Short: "Show a person's details and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetPersonInfo(cmd.Context(), connect.NewRequest(&api.GetPersonInfoRequest{PersonID: args[0]}))
			if err != nil {
				return err
			}
			info := resp.Msg
			printf(cmd, "Name:          %s\n", info.Person.Name)
			printf(cmd, "Contact:       %s\n", orDash(info.Person.Contact))
			printf(cmd, "Note:          %s\n", orDash(info.Person.Note))
			printf(cmd, "Created:       %s\n", orDash(info.Person.Created))
			printf(cmd, "Transactions:  %d\n", info.TransactionCount)
			printf(cmd, "They owe:      %s\n", c.amount(info.TheyOwe))
			printf(cmd, "I owe:         %s\n", c.amount(info.IOwe))
			printf(cmd, "Balance:       %s\n", c.balance(info.Balance))
			return nil
		},
	}
}

func (c *cli) deletePersonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-person PERSON_ID",
		Short: "Delete a person and all of their transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.DeletePerson(cmd.Context(), connect.NewRequest(&api.DeletePersonRequest{PersonID: args[0]}))
			if err != nil {
				return err
			}
			printf(cmd, "Deleted %s and %d transaction(s)\n", args[0], resp.Msg.RemovedTransactions)
			return nil
		},
	}
}
