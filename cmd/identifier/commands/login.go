package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// LoginOptions holds the options of the login command.
type LoginOptions struct {
	NoVerify bool
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var opts LoginOptions

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for the identifier service",
		Long: `Store the region and access token used by later commands.

The region comes from --region. The token is taken from --token or read
from the terminal without echo, then checked with a single list call unless
--no-verify is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCommand(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoVerify, "no-verify", false, "store the credentials without checking them")

	return cmd
}

func runLoginCommand(cmd *cobra.Command, opts LoginOptions) error {
	token := ""
	if flag := cmd.Flags().Lookup(keyToken); flag != nil && flag.Changed {
		token = strings.TrimSpace(flag.Value.String())
	}

	if token == "" {
		var err error

		token, err = promptToken(cmd)
		if err != nil {
			return err
		}
	}

	if token == "" {
		return constants.ErrEmptyToken
	}

	viper.Set(keyToken, token)

	if !opts.NoVerify {
		err := verifyCredentials()
		if err != nil {
			return err
		}
	}

	config := loadConfig()

	err := saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to region %s\n", formatValue(config.Region))

	return nil
}

func verifyCredentials() error {
	client, err := ClientFactory()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
	defer cancel()

	request := &identifier.ListUsersRequest{}
	request.Limit = 1

	_, err = client.Users().List(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	return nil
}

// promptToken reads the token without echo from a terminal, or as a line from
// any other input.
func promptToken(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if stdin, ok := in.(*os.File); ok && term.IsTerminal(int(stdin.Fd())) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "Access token: ")

		data, err := term.ReadPassword(int(stdin.Fd()))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(data)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", constants.ErrEmptyToken
	}

	return strings.TrimSpace(line), nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Remove the access token from the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(keyToken, "")

			err := saveConfigStruct(loadConfig())
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}
