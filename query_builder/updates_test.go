package query_builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUpdateQuery(t *testing.T) {
	query, err := CreateUpdateQuery(9, "Looks good")
	require.NoError(t, err)
	assert.Contains(t, query, "create_update(")
	assert.Contains(t, query, "item_id: 9")
	assert.Contains(t, query, `body: "Looks good"`)
	assertValidDocument(t, query)
}

func TestCreateUpdateQueryEscapesBody(t *testing.T) {
	query, err := CreateUpdateQuery(9, "line1\nline2 \"quoted\"")
	require.NoError(t, err)
	assert.Contains(t, query, `body: "line1\nline2 \"quoted\""`)
	assertValidDocument(t, query)
}

func TestCreateUpdateQueryValidation(t *testing.T) {
	_, err := CreateUpdateQuery(0, "x")
	assert.EqualError(t, err, "item id required")

	_, err = CreateUpdateQuery(9, "")
	assert.EqualError(t, err, "update body required")
}

func TestDeleteUpdateQuery(t *testing.T) {
	query, err := DeleteUpdateQuery(4)
	require.NoError(t, err)
	assert.Contains(t, query, "delete_update (id: 4)")
	assertValidDocument(t, query)

	_, err = DeleteUpdateQuery(0)
	assert.EqualError(t, err, "update id required")
}

func TestUpdatesForItemQuery(t *testing.T) {
	query, err := UpdatesForItemQuery(9, 10)
	require.NoError(t, err)
	assert.Contains(t, query, "items(ids: [9])")
	assert.Contains(t, query, "updates (limit: 10) {")
	assert.Contains(t, query, "replies")
	assert.Contains(t, query, "assets")
	assertValidDocument(t, query)
}

func TestUpdatesForItemQueryNoLimit(t *testing.T) {
	query, err := UpdatesForItemQuery(9, 0)
	require.NoError(t, err)
	assert.Contains(t, query, "updates {")
	assert.NotContains(t, query, "limit:")
	assertValidDocument(t, query)
}

func TestUpdatesQuery(t *testing.T) {
	query, err := UpdatesQuery(5, 3)
	require.NoError(t, err)
	assert.Contains(t, query, "limit: 5")
	assert.Contains(t, query, "page: 3")
	assertValidDocument(t, query)
}

func TestUpdatesQueryDefaultsPage(t *testing.T) {
	query, err := UpdatesQuery(5, 0)
	require.NoError(t, err)
	assert.Contains(t, query, "page: 1")
	assertValidDocument(t, query)

	_, err = UpdatesQuery(0, 0)
	assert.EqualError(t, err, "limit required")
}
