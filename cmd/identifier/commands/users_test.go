package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

func TestNewUsersCommand(t *testing.T) {
	cmd := NewUsersCommand()
	assert.Equal(t, "users", cmd.Use)
	assert.Equal(t, []string{"user"}, cmd.Aliases)
	assert.Equal(t, "Manage users", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 4)

	for _, name := range []string{"list", "create", "get", "delete"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}
}

func TestUsersListCommand(t *testing.T) {
	cmd := newUsersListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	// Check pagination flags
	assert.NotNil(t, cmd.Flags().Lookup("all"))
	assert.NotNil(t, cmd.Flags().Lookup("page-token"))

	limit := cmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "30", limit.DefValue)
}

func TestUsersDeleteCommand(t *testing.T) {
	cmd := newUsersDeleteCommand()
	assert.Equal(t, "delete USER_NAME", cmd.Use)
	assert.NotNil(t, cmd.Args)

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
}

func TestUsersList_Table(t *testing.T) {
	service := useFakeService(t)
	service.reply("DescribeUser", identifier.Page[identifier.User]{
		Items: []identifier.User{
			{UserID: "grn:user:alice", Name: "alice", CreateAt: 1700000000000},
		},
		NextPageToken: "next",
	})

	out, err := execute(t, newUsersListCommand(), "--limit", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "grn:user:alice")
	assert.Contains(t, out, "2023-11-14 22:13:20")
	assert.Contains(t, out, "--page-token next")

	req := service.last(t)
	assert.Equal(t, "5", req.Query.Get("limit"))
}

func TestUsersList_AllPages(t *testing.T) {
	service := useFakeService(t)
	service.reply("DescribeUser",
		identifier.Page[identifier.User]{Items: []identifier.User{{Name: "alice"}}, NextPageToken: "p2"},
		identifier.Page[identifier.User]{Items: []identifier.User{{Name: "bob"}}},
	)

	viper.Set("output", "json")

	out, err := execute(t, newUsersListCommand(), "--all")
	require.NoError(t, err)

	assert.JSONEq(t, `{"items":[
		{"userId":"","ownerId":"","name":"alice","createAt":0},
		{"userId":"","ownerId":"","name":"bob","createAt":0}
	]}`, out)
	assert.Equal(t, []string{"DescribeUser", "DescribeUser"}, service.operations())
	assert.Equal(t, "p2", service.last(t).Query.Get("pageToken"))
}

func TestUsersCreate(t *testing.T) {
	service := useFakeService(t)
	service.reply("CreateUser", identifier.ItemResponse[identifier.User]{
		Item: identifier.User{UserID: "grn:user:alice", Name: "alice"},
	})

	out, err := execute(t, newUsersCreateCommand(), "--name", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user alice")

	req := service.last(t)
	require.IsType(t, &identifier.CreateUserRequest{}, req.Body)
	assert.Equal(t, "alice", *req.Body.(*identifier.CreateUserRequest).Name)
}

func TestUsersGet_Query(t *testing.T) {
	service := useFakeService(t)
	service.reply("GetUser", identifier.ItemResponse[identifier.User]{
		Item: identifier.User{UserID: "grn:user:alice", Name: "alice"},
	})

	viper.Set("query", ".userId")

	out, err := execute(t, newUsersGetCommand(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "\"grn:user:alice\"\n", out)
	assert.Equal(t, "/user/alice", service.last(t).Path)
}

func TestUsersDelete(t *testing.T) {
	t.Run("requires force without a terminal", func(t *testing.T) {
		service := useFakeService(t)

		_, err := execute(t, newUsersDeleteCommand(), "alice")
		require.Error(t, err)
		assert.Empty(t, service.operations())
	})

	t.Run("deletes with force", func(t *testing.T) {
		service := useFakeService(t)

		out, err := execute(t, newUsersDeleteCommand(), "alice", "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted user alice")
		assert.Equal(t, []string{"DeleteUser"}, service.operations())
	})

	t.Run("reports API errors", func(t *testing.T) {
		service := useFakeService(t)
		service.fail("DeleteUser", &identifier.ResponseError{StatusCode: 404, Message: "user not found"})

		_, err := execute(t, newUsersDeleteCommand(), "alice", "-f")
		require.Error(t, err)
		assert.True(t, identifier.IsNotFound(err))
		assert.Contains(t, err.Error(), "failed to delete user")
	})
}
