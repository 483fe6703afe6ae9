package identifier_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

func TestPageParams_ToValues(t *testing.T) {
	t.Parallel()

	var nilParams *identifier.PageParams
	assert.Empty(t, nilParams.ToValues())

	assert.Empty(t, identifier.NewPageParams().ToValues())

	params := identifier.NewPageParams().WithPageToken("abc").WithLimit(10)
	assert.Equal(t, url.Values{"pageToken": {"abc"}, "limit": {"10"}}, params.ToValues())

	assert.Equal(t, url.Values{"limit": {"5"}}, identifier.NewPageParams().WithLimit(5).ToValues())
}

func TestPage_HasNext(t *testing.T) {
	t.Parallel()

	var nilPage *identifier.Page[identifier.User]
	assert.False(t, nilPage.HasNext())
	assert.False(t, (&identifier.Page[identifier.User]{}).HasNext())
	assert.True(t, (&identifier.Page[identifier.User]{NextPageToken: "t"}).HasNext())
}

func TestRequestBodies(t *testing.T) {
	t.Parallel()

	t.Run("create user omits unset name", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&identifier.CreateUserRequest{})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))

		data, err = json.Marshal(&identifier.CreateUserRequest{Name: identifier.String("alice")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"alice"}`, string(data))
	})

	t.Run("attach keeps the user name out of the body", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&identifier.AttachSecurityPolicyRequest{
			UserName:         "alice",
			SecurityPolicyID: identifier.String("grn:policy"),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"securityPolicyId":"grn:policy"}`, string(data))
	})

	t.Run("update keeps the policy name out of the body", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&identifier.UpdateSecurityPolicyRequest{
			SecurityPolicyName: "inbox",
			Policy:             identifier.String("{}"),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"policy":"{}"}`, string(data))
	})
}

func TestIdentifier_SecretOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(identifier.Identifier{IdentifierID: "grn:id", ClientID: "client"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "clientSecret")
}

func TestDecodedTypesKeepRawPayload(t *testing.T) {
	t.Parallel()

	payload := `{"identifierId":"grn:identifier:1","ownerId":"o","clientId":"c1","createAt":5,"extraKey":"x"}`

	var attached identifier.AttachedSecurityPolicy
	require.NoError(t, json.Unmarshal([]byte(payload), &attached))
	assert.Equal(t, "grn:identifier:1", attached.IdentifierID)
	assert.Equal(t, "c1", attached.ClientID)
	assert.JSONEq(t, payload, string(attached.Raw))

	var page identifier.Page[identifier.SecurityPolicy]
	require.NoError(t, json.Unmarshal([]byte(`{"items":[{"name":"admin","policy":"{}","tags":["a"]}]}`), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "admin", page.Items[0].Name)
	assert.JSONEq(t, `{"name":"admin","policy":"{}","tags":["a"]}`, string(page.Items[0].Raw))

	data, err := json.Marshal(page.Items[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Raw")
}
