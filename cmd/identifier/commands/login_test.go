package commands

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

func TestNewLoginCommand(t *testing.T) {
	cmd := NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	noVerify := cmd.Flags().Lookup("no-verify")
	require.NotNil(t, noVerify)
	assert.Equal(t, "false", noVerify.DefValue)
}

func TestLogin(t *testing.T) {
	t.Run("verifies and saves the token", func(t *testing.T) {
		service := useFakeService(t)
		file := useConfigFile(t)
		viper.Set(keyRegion, "ap-northeast-1")

		cmd := NewLoginCommand()
		cmd.SetIn(strings.NewReader("my-token\n"))

		var out strings.Builder

		cmd.SetOut(&out)
		cmd.SetArgs(nil)

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "Logged in to region ap-northeast-1")

		req := service.last(t)
		assert.Equal(t, "DescribeUser", req.Operation)
		assert.Equal(t, "1", req.Query.Get("limit"))

		config := readConfigFile(t, file)
		assert.Equal(t, "my-token", config.Token)
		assert.Equal(t, "ap-northeast-1", config.Region)
	})

	t.Run("does not save rejected credentials", func(t *testing.T) {
		service := useFakeService(t)
		file := useConfigFile(t)
		service.fail("DescribeUser", &identifier.ResponseError{StatusCode: 401, Message: "invalid token"})

		cmd := NewLoginCommand()
		cmd.SetIn(strings.NewReader("bad-token\n"))
		cmd.SetOut(&strings.Builder{})
		cmd.SetArgs(nil)

		err := cmd.Execute()
		require.Error(t, err)
		assert.True(t, identifier.IsUnauthorized(err))
		assert.NoFileExists(t, file)
	})

	t.Run("rejects an empty token", func(t *testing.T) {
		service := useFakeService(t)
		useConfigFile(t)

		_, err := execute(t, NewLoginCommand(), "--no-verify")
		require.ErrorIs(t, err, constants.ErrEmptyToken)
		assert.Empty(t, service.operations())
	})

	t.Run("skips verification", func(t *testing.T) {
		service := useFakeService(t)
		file := useConfigFile(t)

		cmd := NewLoginCommand()
		cmd.SetIn(strings.NewReader("offline-token"))
		cmd.SetOut(&strings.Builder{})
		cmd.SetArgs([]string{"--no-verify"})

		require.NoError(t, cmd.Execute())
		assert.Empty(t, service.operations())
		assert.Equal(t, "offline-token", readConfigFile(t, file).Token)
	})
}

func TestLogout(t *testing.T) {
	file := useConfigFile(t)
	viper.Set(keyRegion, "ap-northeast-1")
	viper.Set(keyToken, "my-token")

	out, err := execute(t, NewLogoutCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	config := readConfigFile(t, file)
	assert.Empty(t, config.Token)
	assert.Equal(t, "ap-northeast-1", config.Region)
}
