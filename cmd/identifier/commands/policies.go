package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// NewPoliciesCommand creates the security policies command group.
func NewPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "policies",
		Aliases: []string{"policy", "security-policies"},
		Short:   "Manage security policies",
		Long:    "Manage security policies and their attachment to users",
	}

	cmd.AddCommand(newPoliciesListCommand())
	cmd.AddCommand(newPoliciesListCommonCommand())
	cmd.AddCommand(newPoliciesCreateCommand())
	cmd.AddCommand(newPoliciesGetCommand())
	cmd.AddCommand(newPoliciesUpdateCommand())
	cmd.AddCommand(newPoliciesDeleteCommand())
	cmd.AddCommand(newPoliciesAttachedCommand())
	cmd.AddCommand(newPoliciesAttachCommand())
	cmd.AddCommand(newPoliciesDetachCommand())
	cmd.AddCommand(newPoliciesValidateCommand())

	return cmd
}

// PoliciesListOptions holds the options for listing security policies.
type PoliciesListOptions struct {
	PageToken string
	Limit     int
	AllPages  bool
}

// PolicyInputOptions holds the flags that supply a policy document.
type PolicyInputOptions struct {
	Policy         string
	PolicyFile     string
	SkipValidation bool
}

type policyLister func(ctx context.Context, request *identifier.ListSecurityPoliciesRequest) (*identifier.Page[identifier.SecurityPolicy], error)

func newPoliciesListCommand() *cobra.Command {
	var opts PoliciesListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List security policies",
		Long:  "List the security policies defined by the current owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			return runPoliciesListCommand(cmd, client.SecurityPolicies().List, opts)
		},
	}

	addPageFlags(cmd, &opts.PageToken, &opts.Limit, &opts.AllPages)

	return cmd
}

func newPoliciesListCommonCommand() *cobra.Command {
	var opts PoliciesListOptions

	cmd := &cobra.Command{
		Use:   "list-common",
		Short: "List predefined security policies",
		Long:  "List the security policies provided by the service to every owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			return runPoliciesListCommand(cmd, client.SecurityPolicies().ListCommon, opts)
		},
	}

	addPageFlags(cmd, &opts.PageToken, &opts.Limit, &opts.AllPages)

	return cmd
}

func runPoliciesListCommand(cmd *cobra.Command, lister policyLister, opts PoliciesListOptions) error {
	ctx := context.Background()

	list := func(token string) (*identifier.Page[identifier.SecurityPolicy], error) {
		request := &identifier.ListSecurityPoliciesRequest{}
		request.PageToken = token
		request.Limit = opts.Limit

		return lister(ctx, request)
	}

	first, err := list(opts.PageToken)
	if err != nil {
		return fmt.Errorf("failed to list security policies: %w", err)
	}

	page, err := fetchPages(first, opts.AllPages, list)
	if err != nil {
		return err
	}

	return writeOutput(cmd, page, func(out io.Writer) error {
		if len(page.Items) == 0 {
			_, _ = fmt.Fprintln(out, "No security policies found")

			return nil
		}

		err := renderPoliciesTable(out, page.Items)
		if err != nil {
			return err
		}

		pageHint(out, page.NextPageToken)

		return nil
	})
}

func newPoliciesCreateCommand() *cobra.Command {
	var opts PolicyInputOptions

	cmd := &cobra.Command{
		Use:   "create POLICY_NAME",
		Short: "Create a security policy",
		Long:  "Create a security policy from a JSON document given inline or as a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := readPolicy(cmd, opts)
			if err != nil {
				return err
			}

			client, err := ClientFactory()
			if err != nil {
				return err
			}

			created, err := client.SecurityPolicies().Create(context.Background(), &identifier.CreateSecurityPolicyRequest{
				Name:   identifier.String(args[0]),
				Policy: identifier.String(policy),
			})
			if err != nil {
				return fmt.Errorf("failed to create security policy: %w", err)
			}

			return writeOutput(cmd, created, func(out io.Writer) error {
				_, _ = fmt.Fprintf(out, "Created security policy %s\n", created.Name)

				return renderPolicyDetails(out, created)
			})
		},
	}

	addPolicyInputFlags(cmd, &opts)

	return cmd
}

func newPoliciesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POLICY_NAME",
		Short: "Get security policy details",
		Long:  "Display a security policy and the statements of its document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			policy, err := client.SecurityPolicies().Get(context.Background(), &identifier.GetSecurityPolicyRequest{
				SecurityPolicyName: args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to get security policy: %w", err)
			}

			return writeOutput(cmd, policy, func(out io.Writer) error {
				return renderPolicyDetails(out, policy)
			})
		},
	}
}

func newPoliciesUpdateCommand() *cobra.Command {
	var opts PolicyInputOptions

	cmd := &cobra.Command{
		Use:   "update POLICY_NAME",
		Short: "Replace the document of a security policy",
		Long:  "Replace the policy document of an existing security policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := readPolicy(cmd, opts)
			if err != nil {
				return err
			}

			client, err := ClientFactory()
			if err != nil {
				return err
			}

			updated, err := client.SecurityPolicies().Update(context.Background(), &identifier.UpdateSecurityPolicyRequest{
				SecurityPolicyName: args[0],
				Policy:             identifier.String(policy),
			})
			if err != nil {
				return fmt.Errorf("failed to update security policy: %w", err)
			}

			return writeOutput(cmd, updated, func(out io.Writer) error {
				_, _ = fmt.Fprintf(out, "Updated security policy %s\n", updated.Name)

				return renderPolicyDetails(out, updated)
			})
		},
	}

	addPolicyInputFlags(cmd, &opts)

	return cmd
}

func newPoliciesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete POLICY_NAME",
		Short: "Delete a security policy",
		Long:  "Delete a security policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			confirmed, err := confirmDeletion(cmd, force, "security policy "+name)
			if err != nil || !confirmed {
				return err
			}

			client, err := ClientFactory()
			if err != nil {
				return err
			}

			err = client.SecurityPolicies().Delete(context.Background(), &identifier.DeleteSecurityPolicyRequest{
				SecurityPolicyName: name,
			})
			if err != nil {
				return fmt.Errorf("failed to delete security policy: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted security policy %s\n", name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}

func newPoliciesAttachedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attached USER_NAME",
		Short: "List policies attached to a user",
		Long:  "List the security policies attached to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			page, err := client.SecurityPolicies().ListAttached(context.Background(), &identifier.ListAttachedSecurityPoliciesRequest{
				UserName: args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to list attached security policies: %w", err)
			}

			return writeOutput(cmd, page, func(out io.Writer) error {
				if len(page.Items) == 0 {
					_, _ = fmt.Fprintf(out, "No security policies attached to user %s\n", args[0])

					return nil
				}

				table := tablewriter.NewWriter(out)
				table.Header("Identifier ID", "Client ID", "Owner ID", "Created")

				for _, item := range page.Items {
					_ = table.Append([]string{
						item.IdentifierID, item.ClientID, formatValue(item.OwnerID), formatTimestamp(item.CreateAt),
					})
				}

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newPoliciesAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach USER_NAME SECURITY_POLICY_ID",
		Short: "Attach a security policy to a user",
		Long:  "Attach a security policy, given by its GRN, to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			err = client.SecurityPolicies().Attach(context.Background(), &identifier.AttachSecurityPolicyRequest{
				UserName:         args[0],
				SecurityPolicyID: identifier.String(args[1]),
			})
			if err != nil {
				return fmt.Errorf("failed to attach security policy: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Attached %s to user %s\n", args[1], args[0])

			return nil
		},
	}
}

func newPoliciesDetachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detach USER_NAME SECURITY_POLICY_ID",
		Short: "Detach a security policy from a user",
		Long:  "Detach a security policy, given by its GRN, from a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ClientFactory()
			if err != nil {
				return err
			}

			err = client.SecurityPolicies().Detach(context.Background(), &identifier.DetachSecurityPolicyRequest{
				UserName:         args[0],
				SecurityPolicyID: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to detach security policy: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Detached %s from user %s\n", args[1], args[0])

			return nil
		},
	}
}

func newPoliciesValidateCommand() *cobra.Command {
	var opts PolicyInputOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a policy document",
		Long:  "Check a policy document locally without contacting the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := readPolicy(cmd, opts)
			if err != nil {
				return err
			}

			doc, err := identifier.ParsePolicyDocument(policy)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Policy is valid (%d statements)\n", len(doc.Statements))

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Policy, "policy", "", "policy document as JSON")
	cmd.Flags().StringVar(&opts.PolicyFile, "policy-file", "", "file holding the policy document as JSON or YAML, - for stdin")

	return cmd
}

func addPolicyInputFlags(cmd *cobra.Command, opts *PolicyInputOptions) {
	cmd.Flags().StringVar(&opts.Policy, "policy", "", "policy document as JSON")
	cmd.Flags().StringVar(&opts.PolicyFile, "policy-file", "", "file holding the policy document as JSON or YAML, - for stdin")
	cmd.Flags().BoolVar(&opts.SkipValidation, "skip-validation", false, "send the document without checking it locally")
}

// readPolicy returns the policy document text from --policy or --policy-file.
// YAML files are converted to the JSON form the service expects.
func readPolicy(cmd *cobra.Command, opts PolicyInputOptions) (string, error) {
	if opts.Policy != "" && opts.PolicyFile != "" {
		return "", constants.ErrInvalidPolicyFile
	}

	text := opts.Policy

	if opts.PolicyFile != "" {
		var (
			data []byte
			err  error
		)

		if opts.PolicyFile == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(opts.PolicyFile)
		}

		if err != nil {
			return "", fmt.Errorf("failed to read policy file: %w", err)
		}

		text = string(data)

		ext := strings.ToLower(filepath.Ext(opts.PolicyFile))
		if ext == ".yml" || ext == ".yaml" {
			var doc identifier.PolicyDocument

			err = yaml.Unmarshal(data, &doc)
			if err != nil {
				return "", fmt.Errorf("failed to parse policy file: %w", err)
			}

			text = doc.String()
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", constants.ErrPolicyNotProvided
	}

	if opts.SkipValidation {
		return text, nil
	}

	doc, err := identifier.ParsePolicyDocument(text)
	if err != nil {
		return "", err
	}

	err = doc.Validate()
	if err != nil {
		return "", fmt.Errorf("invalid policy document: %w", err)
	}

	return text, nil
}

func renderPoliciesTable(out io.Writer, policies []identifier.SecurityPolicy) error {
	table := tablewriter.NewWriter(out)
	table.Header("Name", "Security Policy ID", "Created", "Updated")

	for _, policy := range policies {
		_ = table.Append([]string{
			policy.Name,
			policy.SecurityPolicyID,
			formatTimestamp(policy.CreateAt),
			formatTimestamp(policy.UpdateAt),
		})
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderPolicyDetails(out io.Writer, policy *identifier.SecurityPolicy) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	_ = table.Append([]string{"Name", policy.Name})
	_ = table.Append([]string{"Security Policy ID", policy.SecurityPolicyID})
	_ = table.Append([]string{"Owner ID", formatValue(policy.OwnerID)})
	_ = table.Append([]string{"Created", formatTimestamp(policy.CreateAt)})
	_ = table.Append([]string{"Updated", formatTimestamp(policy.UpdateAt)})

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	doc, err := policy.Document()
	if err != nil || len(doc.Statements) == 0 {
		return nil //nolint:nilerr // an unparsable document is still shown in json output
	}

	_, _ = fmt.Fprintln(out, "\nStatements:")

	statements := tablewriter.NewWriter(out)
	statements.Header("Effect", "Actions", "Resources")

	for _, statement := range doc.Statements {
		_ = statements.Append([]string{
			statement.Effect,
			strings.Join(statement.Actions, "\n"),
			formatValue(strings.Join(statement.Resources, ", ")),
		})
	}

	err = statements.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
