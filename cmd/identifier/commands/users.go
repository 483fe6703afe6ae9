package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, create, inspect and delete the users API credentials are issued to",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

// UsersListOptions holds the options for listing users.
type UsersListOptions struct {
	PageToken string
	Limit     int
	AllPages  bool
}

func newUsersListCommand() *cobra.Command {
	var opts UsersListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List the users of the current owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersListCommand(cmd, opts)
		},
	}

	addPageFlags(cmd, &opts.PageToken, &opts.Limit, &opts.AllPages)

	return cmd
}

func runUsersListCommand(cmd *cobra.Command, opts UsersListOptions) error {
	client, err := ClientFactory()
	if err != nil {
		return err
	}

	ctx := context.Background()
	users := client.Users()

	list := func(token string) (*identifier.Page[identifier.User], error) {
		request := &identifier.ListUsersRequest{}
		request.PageToken = token
		request.Limit = opts.Limit

		return users.List(ctx, request)
	}

	first, err := list(opts.PageToken)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	page, err := fetchPages(first, opts.AllPages, list)
	if err != nil {
		return err
	}

	return writeOutput(cmd, page, func(out io.Writer) error {
		if len(page.Items) == 0 {
			_, _ = fmt.Fprintln(out, "No users found")

			return nil
		}

		err := renderUsersTable(out, page.Items)
		if err != nil {
			return err
		}

		pageHint(out, page.NextPageToken)

		return nil
	})
}

func newUsersCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a new user. The service assigns a name when --name is omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			request := &identifier.CreateUserRequest{}
			if name != "" {
				request.Name = identifier.String(name)
			}

			user, err := client.Users().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			return writeOutput(cmd, user, func(out io.Writer) error {
				_, _ = fmt.Fprintf(out, "Created user %s\n", user.Name)

				return renderUserDetails(out, user)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_NAME",
		Short: "Get user details",
		Long:  "Display the details of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), &identifier.GetUserRequest{UserName: args[0]})
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return writeOutput(cmd, user, func(out io.Writer) error {
				return renderUserDetails(out, user)
			})
		},
	}
}

func newUsersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete USER_NAME",
		Short: "Delete a user",
		Long:  "Delete a user and revoke its identifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userName := args[0]

			confirmed, err := confirmDeletion(cmd, force, "user "+userName)
			if err != nil || !confirmed {
				return err
			}

			client, err := ClientFactory()
			if err != nil {
				return err
			}

			err = client.Users().Delete(context.Background(), &identifier.DeleteUserRequest{UserName: userName})
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", userName)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}

func renderUsersTable(out io.Writer, users []identifier.User) error {
	table := tablewriter.NewWriter(out)
	table.Header("Name", "User ID", "Created")

	for _, user := range users {
		_ = table.Append([]string{user.Name, user.UserID, formatTimestamp(user.CreateAt)})
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderUserDetails(out io.Writer, user *identifier.User) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	_ = table.Append([]string{"Name", user.Name})
	_ = table.Append([]string{"User ID", user.UserID})
	_ = table.Append([]string{"Owner ID", formatValue(user.OwnerID)})
	_ = table.Append([]string{"Created", formatTimestamp(user.CreateAt)})

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
