package query_builder

import (
	"errors"
	"fmt"
)

// CreateColumnOptions carries the optional arguments of CreateColumnQuery.
// When ColumnType is unset, only board_id and title are sent and the service
// picks its default kind; Description and Defaults ride along only with an
// explicit kind, matching the remote schema's argument dependencies.
type CreateColumnOptions struct {
	ColumnType  ColumnType
	Description string
	Defaults    map[string]any // embedded as compact JSON
}

// CreateColumnQuery builds the create_column mutation.
func CreateColumnQuery(boardID int, title string, opts CreateColumnOptions) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if title == "" {
		return "", errors.New("column title required")
	}

	if opts.ColumnType == "" {
		return fmt.Sprintf(`mutation{
            create_column(board_id: %d, title: %s) {
                id
                title
                description
            }
        }`, boardID, quote(title)), nil
	}

	if !allowedColumnTypes[opts.ColumnType] {
		return "", fmt.Errorf("invalid column type: %s", opts.ColumnType)
	}
	defaults, err := jsonEmbed(opts.Defaults)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation{
            create_column(board_id: %d, title: %s, description: %s, column_type: %s, defaults: %s) {
                id
                title
                description
            }
        }`, boardID, quote(title), quote(opts.Description), opts.ColumnType.token(), defaults), nil
}

// ColumnsByBoardQuery builds a boards query that lists each board's groups
// and column metadata, settings_str included.
func ColumnsByBoardQuery(boardIDs []int) (string, error) {
	if len(boardIDs) == 0 {
		return "", errors.New("board ids required")
	}

	return fmt.Sprintf(`query
        {
            boards(ids: %s) {
                id
                name
                groups {
                    id
                    title
                }
                columns {
                    title
                    id
                    type
                    settings_str
                }
            }
        }`, formatIntList(boardIDs)), nil
}

// ChangeMultipleColumnValuesQuery builds the change_multiple_column_values
// mutation. A nil columnValues map still serializes to {}.
func ChangeMultipleColumnValuesQuery(boardID, itemID int, columnValues map[string]any, createLabelsIfMissing bool) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if itemID <= 0 {
		return "", errors.New("item id required")
	}
	values, err := jsonEmbed(columnValues)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation
        {
            change_multiple_column_values (
                board_id: %d,
                item_id: %d,
                column_values: %s,
                create_labels_if_missing: %t
            ) {
                id
                name
                column_values {
                    id
                    text
                }
            }
        }`, boardID, itemID, values, createLabelsIfMissing), nil
}

// AddFileToColumnQuery builds the add_file_to_column mutation. The file
// itself travels as the $file variable on the multipart request, so the
// document declares the variable rather than embedding a value.
func AddFileToColumnQuery(itemID int, columnID string) (string, error) {
	if itemID <= 0 {
		return "", errors.New("item id required")
	}
	if columnID == "" {
		return "", errors.New("column id required")
	}

	return fmt.Sprintf(`mutation ($file: File!) {
        add_file_to_column (
            file: $file,
            item_id: %d,
            column_id: %s
        ) {
            id
        }
    }`, itemID, quote(columnID)), nil
}
