package query_builder

import (
	"errors"
	"fmt"
)

// GroupsByBoardQuery builds a boards query listing each board's groups with
// their lifecycle flags.
func GroupsByBoardQuery(boardIDs []int) (string, error) {
	if len(boardIDs) == 0 {
		return "", errors.New("board ids required")
	}

	return fmt.Sprintf(`query
    {
        boards(ids: %s) {
            groups {
                id
                title
                archived
                deleted
                color
            }
        }
    }`, formatIntList(boardIDs)), nil
}

// ItemsByGroupQuery builds a boards query that pages through one group's
// items.
func ItemsByGroupQuery(boardID int, groupID string, opts ItemsPageOptions) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if groupID == "" {
		return "", errors.New("group id required")
	}

	args, err := formatParams([]param{
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

	return fmt.Sprintf(`query
    {
        boards(ids: %d) {
            groups(ids: %s) {
                id
                title
                items_page%s {
                    cursor
                    items {
                        id
                        name
                    }
                }
            }
        }
    }`, boardID, quote(groupID), wrapped), nil
}

// CreateGroupQuery builds the create_group mutation.
func CreateGroupQuery(boardID int, groupName string) (string, error) {
	if boardID <= 0 {
		return "", errors.New("board id required")
	}
	if groupName == "" {
		return "", errors.New("group name required")
	}

	return fmt.Sprintf(`mutation
    {
        create_group(board_id: %d, group_name: %s)
        {
            id
        }
    }`, boardID, quote(groupName)), nil
}

// DuplicateGroupQuery builds the duplicate_group mutation.
func DuplicateGroupQuery(boardID int, groupID string) (string, error) {
	if err := validateGroupArgs(boardID, groupID); err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation
    {
        duplicate_group(board_id: %d, group_id: %s)
        {
            id
        }
    }`, boardID, quote(groupID)), nil
}

// ArchiveGroupQuery builds the archive_group mutation.
func ArchiveGroupQuery(boardID int, groupID string) (string, error) {
	if err := validateGroupArgs(boardID, groupID); err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation
    {
        archive_group(board_id: %d, group_id: %s)
        {
            id
            archived
        }
    }`, boardID, quote(groupID)), nil
}

// DeleteGroupQuery builds the delete_group mutation.
func DeleteGroupQuery(boardID int, groupID string) (string, error) {
	if err := validateGroupArgs(boardID, groupID); err != nil {
		return "", err
	}

	return fmt.Sprintf(`mutation
    {
        delete_group(board_id: %d, group_id: %s)
        {
            id
            deleted
        }
    }`, boardID, quote(groupID)), nil
}

func validateGroupArgs(boardID int, groupID string) error {
	if boardID <= 0 {
		return errors.New("board id required")
	}
	if groupID == "" {
		return errors.New("group id required")
	}
	return nil
}
