package query_builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsByBoardQuery(t *testing.T) {
	query, err := GroupsByBoardQuery([]int{1, 2})
	require.NoError(t, err)
	assert.Contains(t, query, "boards(ids: [1, 2])")
	assert.Contains(t, query, "archived")
	assert.Contains(t, query, "deleted")
	assertValidDocument(t, query)

	_, err = GroupsByBoardQuery(nil)
	assert.EqualError(t, err, "board ids required")
}

func TestItemsByGroupQuery(t *testing.T) {
	query, err := ItemsByGroupQuery(1, "topics", ItemsPageOptions{})
	require.NoError(t, err)
	assert.Contains(t, query, `groups(ids: "topics")`)
	assert.Contains(t, query, "items_page {")
	assert.NotContains(t, query, "limit:")
	assert.NotContains(t, query, "cursor:")
	assertValidDocument(t, query)
}

func TestItemsByGroupQueryPaged(t *testing.T) {
	query, err := ItemsByGroupQuery(1, "topics", ItemsPageOptions{Limit: 10, Cursor: "c3"})
	require.NoError(t, err)
	assert.Contains(t, query, `items_page (limit: 10, cursor: "c3") {`)
	assertValidDocument(t, query)
}

func TestCreateGroupQuery(t *testing.T) {
	query, err := CreateGroupQuery(1, "New group")
	require.NoError(t, err)
	assert.Contains(t, query, `create_group(board_id: 1, group_name: "New group")`)
	assertValidDocument(t, query)

	_, err = CreateGroupQuery(1, "")
	assert.EqualError(t, err, "group name required")
}

func TestGroupLifecycleQueries(t *testing.T) {
	dup, err := DuplicateGroupQuery(1, "topics")
	require.NoError(t, err)
	assert.Contains(t, dup, `duplicate_group(board_id: 1, group_id: "topics")`)
	assertValidDocument(t, dup)

	archive, err := ArchiveGroupQuery(1, "topics")
	require.NoError(t, err)
	assert.Contains(t, archive, `archive_group(board_id: 1, group_id: "topics")`)
	assert.Contains(t, archive, "archived")
	assertValidDocument(t, archive)

	del, err := DeleteGroupQuery(1, "topics")
	require.NoError(t, err)
	assert.Contains(t, del, `delete_group(board_id: 1, group_id: "topics")`)
	assert.Contains(t, del, "deleted")
	assertValidDocument(t, del)
}

func TestGroupQueriesValidation(t *testing.T) {
	_, err := DuplicateGroupQuery(0, "topics")
	assert.EqualError(t, err, "board id required")

	_, err = ArchiveGroupQuery(1, "")
	assert.EqualError(t, err, "group id required")

	_, err = DeleteGroupQuery(0, "")
	assert.EqualError(t, err, "board id required")
}
