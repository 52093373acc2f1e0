package query_builder

import (
	"errors"
	"fmt"
)

// ItemsPageOptions carries the optional cursor-pagination arguments shared by
// the items_page style queries. Zero values are omitted from the document.
type ItemsPageOptions struct {
	Limit  int    // page size
	Cursor string // opaque token returned by the previous page
}

// CreateItemQuery builds the create_item mutation.
//
// The service rejects a JSON null for column_values, so a nil map still
// serializes to {}.
func CreateItemQuery(boardID int, groupID, itemName string, columnValues map[string]any, createLabelsIfMissing bool) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if groupID == "" {
		return "", errors.New("group id required")
	}
	if itemName == "" {
		return "", errors.New("item name required")
	}
	values, err := jsonEmbed(columnValues)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation
    {
        create_item (
            board_id: %d,
            group_id: %s,
            item_name: %s,
            column_values: %s,
            create_labels_if_missing: %t
        ) {
            id
        }
    }`, boardID, quote(groupID), quote(itemName), values, createLabelsIfMissing), nil
}

// CreateSubitemQuery builds the create_subitem mutation under a parent item.
func CreateSubitemQuery(parentItemID int, itemName string, columnValues map[string]any, createLabelsIfMissing bool) (string, error) {
	if parentItemID <= 0 {
		return "", errors.New("parent item id required")
	}
	if itemName == "" {
		return "", errors.New("item name required")
	}
	values, err := jsonEmbed(columnValues)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation
    {
        create_subitem (
            parent_item_id: %d,
            item_name: %s,
            column_values: %s,
            create_labels_if_missing: %t
        ) {
            id
            name
            column_values {
                id
                text
            }
            board {
                id
                name
            }
        }
    }`, parentItemID, quote(itemName), values, createLabelsIfMissing), nil
}

// ItemsPageByColumnValuesQuery builds the items_page_by_column_values query,
// matching items whose column columnID holds value.
//
// On the first page a columns filter is sent; once a cursor exists the filter
// is omitted entirely, since the cursor already pins the result set.
func ItemsPageByColumnValuesQuery(boardID int, columnID, value string, opts ItemsPageOptions) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if columnID == "" {
		return "", errors.New("column id required")
	}

	var columns any
	if opts.Cursor == "" {
		columns = []any{map[string]any{
			"column_id":     columnID,
			"column_values": []string{value},
		}}
	}
	args, err := formatParams([]param{
		{"board_id", boardID},
		{"limit", omitZero(opts.Limit)},
		{"cursor", omitEmpty(opts.Cursor)},
		{"columns", columns},
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`query
        {
            items_page_by_column_values (%s) {
                cursor
                items {
                    id
                    name
                    updates {
                        id
                        body
                    }
                    group {
                        id
                        title
                    }
                    column_values {
                        id
                        text
                        value
                    }
                }
            }
        }`, args), nil
}

// ItemsByIDQuery builds an items query for the given ids. specific selects
// the column kinds whose type-specific fields should ride along as inline
// fragments; nil means the core fields only.
func ItemsByIDQuery(itemIDs []int, specific []ColumnType) (string, error) {
	if len(itemIDs) == 0 {
		return "", errors.New("item ids required")
	}
	fragments, err := formatSpecificColumnValues(specific)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`query
        {
            items (ids: %s) {
                id
                name
                group {
                    id
                    title
                }
                column_values {
                    id
                    text
                    value
                    type%s
                }
            }
        }`, formatIntList(itemIDs), fragments), nil
}

// ChangeColumnValueQuery builds the change_column_value mutation. value is
// embedded as compact JSON exactly as the column expects it (a label map for
// status columns, a string for text columns, and so on).
func ChangeColumnValueQuery(boardID, itemID int, columnID string, value any, createLabelsIfMissing bool) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if itemID <= 0 {
		return "", errors.New("item id required")
	}
	if columnID == "" {
		return "", errors.New("column id required")
	}
	if value == nil {
		return "", errors.New("column value required")
	}
	embedded, err := jsonValue(value)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation
        {
            change_column_value(
                board_id: %d,
                item_id: %d,
                column_id: %s,
                value: %s,
                create_labels_if_missing: %t
            ) {
                id
                name
                column_values {
                    id
                    text
                    value
                }
            }
        }`, boardID, itemID, quote(columnID), embedded, createLabelsIfMissing), nil
}

// MoveItemToGroupQuery builds the move_item_to_group mutation.
func MoveItemToGroupQuery(itemID int, groupID string) (string, error) {
	if itemID <= 0 {
		return "", errors.New("item id required")
	}
	if groupID == "" {
		return "", errors.New("group id required")
	}

	return fmt.Sprintf(`mutation
    {
        move_item_to_group (item_id: %d, group_id: %s)
        {
            id
        }
    }`, itemID, quote(groupID)), nil
}

// ArchiveItemQuery builds the archive_item mutation.
func ArchiveItemQuery(itemID int) (string, error) {
	if itemID <= 0 {
		return "", errors.New("item id required")
	}

	return fmt.Sprintf(`mutation
    {
        archive_item (item_id: %d)
        {
            id
        }
    }`, itemID), nil
}

// DeleteItemQuery builds the delete_item mutation.
func DeleteItemQuery(itemID int) (string, error) {
	if itemID <= 0 {
		return "", errors.New("item id required")
	}

	return fmt.Sprintf(`mutation
    {
        delete_item (item_id: %d)
        {
            id
        }
    }`, itemID), nil
}
