package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/internal/logging"
	"github.com/fivetwenty-io/identifier-client/pkg/idclient"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// ClientFactory builds the API client used by every command. Tests replace it.
var ClientFactory = CreateClient

// CreateClient builds a client from flags, environment and the config file.
func CreateClient() (identifier.Client, error) {
	config := loadConfig()

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	if config.Region == "" && strings.Contains(baseURL, constants.RegionPlaceholder) {
		return nil, constants.ErrNoRegionConfigured
	}

	clientConfig := &identifier.Config{
		Region:      config.Region,
		Endpoint:    config.Endpoint,
		BaseURL:     config.BaseURL,
		AccessToken: config.Token,
		UserAgent:   "identifier-cli",
	}

	if viper.GetBool("verbose") {
		logger, err := logging.NewDevelopment(true)
		if err != nil {
			return nil, err
		}

		clientConfig.Logger = logger
		clientConfig.Debug = true
	}

	client, err := idclient.New(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	if format == "" {
		format = constants.FormatTable
	}

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// writeOutput renders data in the selected format. renderTable is used for
// table output. A --query expression is applied to the JSON form of data and
// its results are printed as JSON, or YAML with --output yaml.
func writeOutput(cmd *cobra.Command, data interface{}, renderTable func(io.Writer) error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	query := viper.GetString("query")
	if query != "" {
		results, err := runQuery(query, data)
		if err != nil {
			return err
		}

		for _, result := range results {
			err = encode(out, format, result)
			if err != nil {
				return err
			}
		}

		return nil
	}

	if format == constants.FormatTable {
		return renderTable(out)
	}

	return encode(out, format, data)
}

func encode(out io.Writer, format string, data interface{}) error {
	if format == constants.FormatYAML {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// runQuery evaluates a jq expression against the JSON form of data.
func runQuery(expression string, data interface{}) ([]interface{}, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	var doc interface{}

	err = json.Unmarshal(raw, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	var results []interface{}

	iter := query.Run(doc)

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := value.(error); isErr {
			return nil, fmt.Errorf("query failed: %w", err)
		}

		results = append(results, value)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", constants.ErrQueryNoResult, expression)
	}

	return results, nil
}

// fetchPages follows NextPageToken until the last page when all is set.
// At most MaxPagesFetched pages are combined; the token of the page after
// them is kept so the listing can be continued.
func fetchPages[T any](first *identifier.Page[T], all bool, next func(token string) (*identifier.Page[T], error)) (*identifier.Page[T], error) {
	if !all || !first.HasNext() {
		return first, nil
	}

	combined := &identifier.Page[T]{Items: append([]T{}, first.Items...)}
	token := first.NextPageToken

	for fetched := 1; token != ""; fetched++ {
		if fetched >= constants.MaxPagesFetched {
			combined.NextPageToken = token

			break
		}

		page, err := next(token)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", fetched+1, err)
		}

		combined.Items = append(combined.Items, page.Items...)
		token = page.NextPageToken
	}

	return combined, nil
}

// pageHint tells the user how to continue a partial listing.
func pageHint(out io.Writer, token string) {
	if token == "" {
		return
	}

	_, _ = fmt.Fprintf(out, "\nMore results available. Use --page-token %s or --all to continue.\n", token)
}

// formatTimestamp renders epoch milliseconds.
func formatTimestamp(millis int64) string {
	if millis == 0 {
		return constants.NotAvailable
	}

	return time.UnixMilli(millis).UTC().Format(constants.TimestampFormat)
}

func formatValue(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

// confirmDeletion asks before deleting unless force is set. Without a
// terminal to ask on, --force is required.
func confirmDeletion(cmd *cobra.Command, force bool, what string) (bool, error) {
	if force {
		return true, nil
	}

	stdin, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(stdin.Fd())) {
		return false, constants.ErrConfirmationNeeded
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really delete %s? [y/N]: ", what)

	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))

	if answer != "y" && answer != "yes" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")

		return false, nil
	}

	return true, nil
}

// addPageFlags registers the pagination flags of list commands.
func addPageFlags(cmd *cobra.Command, pageToken *string, limit *int, all *bool) {
	cmd.Flags().StringVar(pageToken, "page-token", "", "continue from a previous page")
	cmd.Flags().IntVar(limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().BoolVar(all, "all", false, "fetch all pages")
}
