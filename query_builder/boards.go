package query_builder

import (
	"errors"
	"fmt"
)

// BoardsOptions carries the optional arguments of BoardsQuery. Zero values
// are omitted from the document.
type BoardsOptions struct {
	Limit     int
	Page      int
	IDs       []int
	BoardKind BoardKind
	State     BoardState
	OrderBy   BoardsOrderBy
}

// DuplicateBoardOptions carries the optional arguments of
// DuplicateBoardQuery. KeepSubscribers is a pointer because false is a
// meaningful value distinct from "let the service decide".
type DuplicateBoardOptions struct {
	BoardName       string
	FolderID        int
	KeepSubscribers *bool
	WorkspaceID     int
}

// BoardItemsQuery builds a boards query that pages through a board's items.
// queryParams, when non-nil, is rendered as the items_page query_params
// object filter; it uses the nested object grammar, not embedded JSON.
func BoardItemsQuery(boardID int, queryParams map[string]any, opts ItemsPageOptions) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}

	var filter any
	if queryParams != nil {
		filter = queryParams
	}
	args, err := formatParams([]param{
		{"query_params", filter},
		{"limit", omitZero(opts.Limit)},
		{"cursor", omitEmpty(opts.Cursor)},
	})
	if err != nil {
		return "", err
	}
	wrapped := ""
	if args != "" {
		wrapped = " (" + args + ")"
	}

	return fmt.Sprintf(`query{
        boards(ids: %d){
            name
            items_page%s {
                cursor
                items {
                    group {
                        id
                        title
                    }
                    id
                    name
                    column_values {
                        id
                        text
                        type
                        value
                    }
                }
            }
        }
    }`, boardID, wrapped), nil
}

// BoardsQuery builds the boards listing query. With a zero-value options
// struct the argument list disappears entirely.
func BoardsQuery(opts BoardsOptions) (string, error) {
	if opts.BoardKind != "" && !allowedBoardKinds[opts.BoardKind] {
		return "", fmt.Errorf("invalid board kind: %s", opts.BoardKind)
	}
	if opts.State != "" && !allowedBoardStates[opts.State] {
		return "", fmt.Errorf("invalid board state: %s", opts.State)
	}
	if opts.OrderBy != "" && !allowedBoardsOrderBy[opts.OrderBy] {
		return "", fmt.Errorf("invalid boards order: %s", opts.OrderBy)
	}

	args, err := formatParams([]param{
		{"limit", omitZero(opts.Limit)},
		{"page", omitZero(opts.Page)},
		{"ids", omitEmptyList(opts.IDs)},
		{"board_kind", opts.BoardKind},
		{"state", opts.State},
		{"order_by", opts.OrderBy},
	})
	if err != nil {
		return "", err
	}
	wrapped := ""
	if args != "" {
		wrapped = " (" + args + ")"
	}

	return fmt.Sprintf(`query
    {
        boards%s {
            id
            name
            permissions
            tags {
                id
                name
            }
            groups {
                id
                title
            }
            columns {
                id
                title
                type
            }
        }
    }`, wrapped), nil
}

// BoardsByIDQuery builds a boards query for specific ids, including each
// column's settings_str.
func BoardsByIDQuery(boardIDs []int) (string, error) {
	if len(boardIDs) == 0 {
		return "", errors.New("board ids required")
	}

	return fmt.Sprintf(`query
    {
        boards (ids: %s) {
            id
            name
            permissions
            tags {
                id
                name
            }
            groups {
                id
                title
            }
            columns {
                id
                title
                type
                settings_str
            }
        }
    }`, formatIntList(boardIDs)), nil
}

// DuplicateBoardQuery builds the duplicate_board mutation.
func DuplicateBoardQuery(boardID int, duplicateType DuplicateType, opts DuplicateBoardOptions) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if !allowedDuplicateTypes[duplicateType] {
		return "", fmt.Errorf("invalid duplicate type: %s", duplicateType)
	}

	args, err := formatParams([]param{
		{"board_id", boardID},
		{"duplicate_type", duplicateType},
		{"board_name", omitEmpty(opts.BoardName)},
		{"folder_id", omitZero(opts.FolderID)},
		{"keep_subscribers", opts.KeepSubscribers},
		{"workspace_id", omitZero(opts.WorkspaceID)},
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation {
        duplicate_board(%s) {
            board {
                id
            }
        }
    }`, args), nil
}

// CreateBoardQuery builds the create_board mutation. workspaceID zero means
// the account's main workspace and is omitted.
func CreateBoardQuery(boardName string, kind BoardKind, workspaceID int) (string, error) {
	if boardName == "" {
		return "", errors.New("board name required")
	}
	if !allowedBoardKinds[kind] {
		return "", fmt.Errorf("invalid board kind: %s", kind)
	}

	args, err := formatParams([]param{
		{"board_name", boardName},
		{"board_kind", kind},
		{"workspace_id", omitZero(workspaceID)},
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation {
        create_board (%s) {
            id
        }
    }`, args), nil
}
