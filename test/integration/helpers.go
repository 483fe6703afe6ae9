//go:build integration

package integration

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/idclient"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Client     *identifier.Config
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from IDENTIFIER_* environment variables
func LoadTestConfig(t *testing.T) *TestConfig {
	t.Helper()

	client, err := idclient.LoadConfigFromEnv()
	require.NoError(t, err)

	return &TestConfig{
		Client:     client,
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("IDENTIFIER_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the identifier binary
func getBinaryPath() string {
	if path := os.Getenv("IDENTIFIER_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../identifier", "./identifier"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "identifier"
}

// SkipIfMissingConfig skips the test unless a region and token are configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Client.Region == "" && config.Client.BaseURL == "" {
		t.Skip("IDENTIFIER_REGION not set, skipping integration test")
	}

	if config.Client.AccessToken == "" {
		t.Skip("IDENTIFIER_ACCESS_TOKEN not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips CLI tests when the identifier binary is not built
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("identifier binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// NewClient creates an SDK client from the test configuration
func (config *TestConfig) NewClient(t *testing.T) identifier.Client {
	t.Helper()

	client, err := idclient.New(context.Background(), config.Client)
	require.NoError(t, err)

	return client
}

// CommandRunner runs the identifier binary
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes an identifier command and returns its output. Credentials are
// passed through the environment.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"IDENTIFIER_TOKEN="+runner.config.Client.AccessToken,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
