package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
)

// useConfigFile points viper at a config file in a temporary directory.
func useConfigFile(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	file := filepath.Join(t.TempDir(), "identifier", "config.yml")
	viper.SetConfigFile(file)

	return file
}

func readConfigFile(t *testing.T, file string) Config {
	t.Helper()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var config Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage CLI configuration", cmd.Short)

	for _, name := range []string{"show", "set", "unset"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}
}

func TestConfigSet(t *testing.T) {
	file := useConfigFile(t)

	out, err := execute(t, newConfigSetCommand(), "region", "ap-northeast-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Set region")

	viper.Set(keyRegion, "ap-northeast-1")

	_, err = execute(t, newConfigSetCommand(), "base-url", "http://localhost:8080/{endpoint}")
	require.NoError(t, err)

	config := readConfigFile(t, file)
	assert.Equal(t, "ap-northeast-1", config.Region)
	assert.Equal(t, "http://localhost:8080/{endpoint}", config.BaseURL)

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())
}

func TestConfigSet_Errors(t *testing.T) {
	useConfigFile(t)

	_, err := execute(t, newConfigSetCommand(), "colour", "blue")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = execute(t, newConfigSetCommand(), "output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)

	_, err = execute(t, newConfigSetCommand(), "region")
	require.Error(t, err)
}

func TestConfigUnset(t *testing.T) {
	file := useConfigFile(t)

	viper.Set(keyRegion, "ap-northeast-1")
	viper.Set(keyToken, "secret")

	_, err := execute(t, newConfigUnsetCommand(), "token")
	require.NoError(t, err)

	config := readConfigFile(t, file)
	assert.Equal(t, "ap-northeast-1", config.Region)
	assert.Empty(t, config.Token)
}

func TestConfigShow_MasksToken(t *testing.T) {
	useConfigFile(t)

	viper.Set(keyRegion, "ap-northeast-1")
	viper.Set(keyToken, "secret")
	viper.Set(keyOutput, "json")

	out, err := execute(t, newConfigShowCommand())
	require.NoError(t, err)
	assert.JSONEq(t, `{"region":"ap-northeast-1","token":"`+constants.MaskedSecret+`","output":"json"}`, out)
	assert.NotContains(t, out, "secret")
}
