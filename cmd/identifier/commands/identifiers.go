package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// NewIdentifiersCommand creates the identifiers command group.
func NewIdentifiersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identifiers",
		Aliases: []string{"identifier", "credentials"},
		Short:   "Manage user credentials",
		Long:    "List, issue and revoke the client ID and secret pairs of a user",
	}

	cmd.AddCommand(newIdentifiersListCommand())
	cmd.AddCommand(newIdentifiersCreateCommand())
	cmd.AddCommand(newIdentifiersDeleteCommand())

	return cmd
}

// IdentifiersListOptions holds the options for listing identifiers.
type IdentifiersListOptions struct {
	PageToken string
	Limit     int
	AllPages  bool
}

func newIdentifiersListCommand() *cobra.Command {
	var opts IdentifiersListOptions

	cmd := &cobra.Command{
		Use:   "list USER_NAME",
		Short: "List identifiers of a user",
		Long:  "List the credentials issued to a user. Secrets are never included.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdentifiersListCommand(cmd, args[0], opts)
		},
	}

	addPageFlags(cmd, &opts.PageToken, &opts.Limit, &opts.AllPages)

	return cmd
}

func runIdentifiersListCommand(cmd *cobra.Command, userName string, opts IdentifiersListOptions) error {
	client, err := ClientFactory()
	if err != nil {
		return err
	}

	ctx := context.Background()
	identifiers := client.Identifiers()

	list := func(token string) (*identifier.Page[identifier.Identifier], error) {
		request := &identifier.ListIdentifiersRequest{UserName: userName}
		request.PageToken = token
		request.Limit = opts.Limit

		return identifiers.List(ctx, request)
	}

	first, err := list(opts.PageToken)
	if err != nil {
		return fmt.Errorf("failed to list identifiers: %w", err)
	}

	page, err := fetchPages(first, opts.AllPages, list)
	if err != nil {
		return err
	}

	return writeOutput(cmd, page, func(out io.Writer) error {
		if len(page.Items) == 0 {
			_, _ = fmt.Fprintf(out, "No identifiers found for user %s\n", userName)

			return nil
		}

		table := tablewriter.NewWriter(out)
		table.Header("Identifier ID", "Client ID", "Created")

		for _, item := range page.Items {
			_ = table.Append([]string{item.IdentifierID, item.ClientID, formatTimestamp(item.CreateAt)})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		pageHint(out, page.NextPageToken)

		return nil
	})
}

func newIdentifiersCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create USER_NAME",
		Short: "Issue a new identifier",
		Long:  "Issue a client ID and secret for a user. The secret is shown only once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			created, err := client.Identifiers().Create(context.Background(), &identifier.CreateIdentifierRequest{UserName: args[0]})
			if err != nil {
				return fmt.Errorf("failed to create identifier: %w", err)
			}

			return writeOutput(cmd, created, func(out io.Writer) error {
				table := tablewriter.NewWriter(out)
				table.Header("Property", "Value")

				_ = table.Append([]string{"Identifier ID", created.IdentifierID})
				_ = table.Append([]string{"Client ID", created.ClientID})
				_ = table.Append([]string{"Client Secret", formatValue(created.ClientSecret)})
				_ = table.Append([]string{"Created", formatTimestamp(created.CreateAt)})

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if created.ClientSecret != "" {
					_, _ = fmt.Fprintln(out, "\nStore the client secret now, it cannot be retrieved again.")
				}

				return nil
			})
		},
	}
}

func newIdentifiersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete USER_NAME IDENTIFIER_ID",
		Short: "Revoke an identifier",
		Long:  "Delete an identifier so its client ID and secret stop working",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, identifierID := args[0], args[1]

			confirmed, err := confirmDeletion(cmd, force, "identifier "+identifierID)
			if err != nil || !confirmed {
				return err
			}

			client, err := ClientFactory()
			if err != nil {
				return err
			}

			err = client.Identifiers().Delete(context.Background(), &identifier.DeleteIdentifierRequest{
				UserName:     userName,
				IdentifierID: identifierID,
			})
			if err != nil {
				return fmt.Errorf("failed to delete identifier: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted identifier %s of user %s\n", identifierID, userName)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
