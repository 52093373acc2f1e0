package query_builder

import (
	"errors"
	"fmt"
)

// CreateUpdateQuery builds the create_update mutation posting body under an
// item.
func CreateUpdateQuery(itemID int, body string) (string, error) {
	if itemID <= 0 {
		return "", errors.New("item id required")
	}
	if body == "" {
		return "", errors.New("update body required")
	}

	return fmt.Sprintf(`mutation
        {
            create_update(
                item_id: %d,
                body: %s
            ) {
                id
            }
        }`, itemID, quote(body)), nil
}

// DeleteUpdateQuery builds the delete_update mutation.
func DeleteUpdateQuery(updateID int) (string, error) {
	if updateID <= 0 {
		return "", errors.New("update id required")
	}

	return fmt.Sprintf(`mutation {
        delete_update (id: %d) {
            id
        }
    }`, updateID), nil
}

// UpdatesForItemQuery builds an items query returning the item's updates
// with their creators, assets, and reply threads. A zero limit is omitted.
func UpdatesForItemQuery(itemID, limit int) (string, error) {
	if itemID <= 0 {
		return "", errors.New("item id required")
	}

	args, err := formatParams([]param{
		{"limit", omitZero(limit)},
	})
	if err != nil {
		return "", err
	}
	wrapped := ""
	if args != "" {
		wrapped = " (" + args + ")"
	}

	return fmt.Sprintf(`query{
        items(ids: %s){
            updates%s {
                id
                body
                created_at
                updated_at
                creator {
                    id
                    name
                    email
                }
                assets {
                    id
                    name
                    url
                    file_extension
                    file_size
                }
                replies {
                    id
                    body
                    creator{
                        id
                        name
                        email
                    }
                    created_at
                    updated_at
                }
            }
        }
    }`, formatIntList([]int{itemID}), wrapped), nil
}

// UpdatesQuery builds the account-wide updates listing. page defaults to 1
// when unset.
func UpdatesQuery(limit, page int) (string, error) {
	if limit <= 0 {
		return "", errors.New("limit required")
	}
	if page <= 0 {
		page = 1
	}

	return fmt.Sprintf(`query
        {
            updates (
                limit: %d,
                page: %d
            ) {
                id
                body
            }
        }`, limit, page), nil
}
