package query_builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersQueryNoOptions(t *testing.T) {
	query, err := UsersQuery(UsersOptions{})
	require.NoError(t, err)
	assert.Contains(t, query, "users {")
	assert.NotContains(t, query, "kind:")
	assert.NotContains(t, query, "limit:")
	assertValidDocument(t, query)
}

func TestUsersQueryAllOptions(t *testing.T) {
	query, err := UsersQuery(UsersOptions{
		IDs:         []int{1, 2},
		Kind:        UserKindNonGuests,
		NewestFirst: Bool(true),
		NonActive:   Bool(false),
		Limit:       50,
		Page:        2,
		Emails:      []string{"a@x.io", "b@x.io"},
		Name:        "Ada",
	})
	require.NoError(t, err)
	assert.Contains(t, query,
		`users (ids: [1, 2], kind: non_guests, newest_first: true, non_active: false, limit: 50, page: 2, emails: ["a@x.io", "b@x.io"], name: "Ada") {`)
	assertValidDocument(t, query)
}

func TestUsersQueryRejectsUnknownKind(t *testing.T) {
	_, err := UsersQuery(UsersOptions{Kind: UserKind("robots")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user kind")
}

func TestMeQuery(t *testing.T) {
	query := MeQuery()
	assert.Contains(t, query, "me {")
	assert.Contains(t, query, "is_admin")
	assert.Contains(t, query, "time_zone_identifier")
	assert.Contains(t, query, "utc_hours_diff")
	assertValidDocument(t, query)
}
