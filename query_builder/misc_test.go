package query_builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsQuery(t *testing.T) {
	query := TagsQuery([]int{1, 2})
	assert.Contains(t, query, "tags (ids: [1, 2])")
	assertValidDocument(t, query)
}

func TestTagsQueryNilIDs(t *testing.T) {
	query := TagsQuery(nil)
	assert.Contains(t, query, "tags (ids: [])")
	assertValidDocument(t, query)
}

func TestComplexityQuery(t *testing.T) {
	query := ComplexityQuery()
	assert.Contains(t, query, "complexity {")
	assert.Contains(t, query, "reset_in_x_seconds")
	assertValidDocument(t, query)
}

func TestCreateNotificationQuery(t *testing.T) {
	query, err := CreateNotificationQuery(1, 2, "ping", NotificationTargetPost)
	require.NoError(t, err)
	assert.Contains(t, query,
		`create_notification (user_id: 1, target_id: 2, text: "ping", target_type: Post)`)
	assertValidDocument(t, query)
}

func TestCreateNotificationQueryValidation(t *testing.T) {
	_, err := CreateNotificationQuery(0, 2, "ping", NotificationTargetPost)
	assert.EqualError(t, err, "user id required")

	_, err = CreateNotificationQuery(1, 0, "ping", NotificationTargetProject)
	assert.EqualError(t, err, "target id required")

	_, err = CreateNotificationQuery(1, 2, "", NotificationTargetPost)
	assert.EqualError(t, err, "notification text required")

	_, err = CreateNotificationQuery(1, 2, "ping", NotificationTargetType("Channel"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid notification target type")
}

func TestColumnQueries(t *testing.T) {
	bare, err := CreateColumnQuery(1, "Status", CreateColumnOptions{})
	require.NoError(t, err)
	assert.Contains(t, bare, `create_column(board_id: 1, title: "Status")`)
	assert.NotContains(t, bare, "column_type:")
	assertValidDocument(t, bare)

	typed, err := CreateColumnQuery(1, "Status", CreateColumnOptions{
		ColumnType:  ColumnTypeStatus,
		Description: "workflow state",
		Defaults:    map[string]any{"labels": map[string]any{"1": "Done"}},
	})
	require.NoError(t, err)
	assert.Contains(t, typed, "column_type: status")
	assert.Contains(t, typed, `description: "workflow state"`)
	assert.Contains(t, typed, `defaults: {"labels":{"1":"Done"}}`)
}

func TestCreateColumnQueryEmptyDefaults(t *testing.T) {
	typed, err := CreateColumnQuery(1, "Due", CreateColumnOptions{ColumnType: ColumnTypeDate})
	require.NoError(t, err)
	assert.Contains(t, typed, "defaults: {}")
	assertValidDocument(t, typed)
}

func TestCreateColumnQueryValidation(t *testing.T) {
	_, err := CreateColumnQuery(0, "Status", CreateColumnOptions{})
	assert.EqualError(t, err, "board id required")

	_, err = CreateColumnQuery(1, "", CreateColumnOptions{})
	assert.EqualError(t, err, "column title required")

	_, err = CreateColumnQuery(1, "Status", CreateColumnOptions{ColumnType: ColumnType("weird")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid column type")
}

func TestColumnsByBoardQuery(t *testing.T) {
	query, err := ColumnsByBoardQuery([]int{1})
	require.NoError(t, err)
	assert.Contains(t, query, "boards(ids: [1])")
	assert.Contains(t, query, "settings_str")
	assertValidDocument(t, query)

	_, err = ColumnsByBoardQuery(nil)
	assert.EqualError(t, err, "board ids required")
}

func TestChangeMultipleColumnValuesQuery(t *testing.T) {
	query, err := ChangeMultipleColumnValuesQuery(1, 2,
		map[string]any{"status": map[string]any{"label": "Done"}}, true)
	require.NoError(t, err)
	assert.Contains(t, query, "change_multiple_column_values")
	assert.Contains(t, query, `column_values: {"status":{"label":"Done"}}`)
	assert.Contains(t, query, "create_labels_if_missing: true")

	empty, err := ChangeMultipleColumnValuesQuery(1, 2, nil, false)
	require.NoError(t, err)
	assert.Contains(t, empty, "column_values: {}")
	assertValidDocument(t, empty)
}

func TestAddFileToColumnQuery(t *testing.T) {
	query, err := AddFileToColumnQuery(9, "files")
	require.NoError(t, err)
	assert.Contains(t, query, "mutation ($file: File!)")
	assert.Contains(t, query, "file: $file")
	assert.Contains(t, query, "item_id: 9")
	assert.Contains(t, query, `column_id: "files"`)
	assertValidDocument(t, query)

	_, err = AddFileToColumnQuery(9, "")
	assert.EqualError(t, err, "column id required")
}
