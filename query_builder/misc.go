package query_builder

import (
	"errors"
	"fmt"
)

// TagsQuery builds the tags query for the given ids. A nil slice asks for
// all tags the token can see, serialized as an empty list.
func TagsQuery(tagIDs []int) string {
	return fmt.Sprintf(`query
        {
            tags (ids: %s) {
                name
                color
                id
            }
        }`, formatIntList(tagIDs))
}

// ComplexityQuery builds the query reporting the token's remaining rate
// budget.
func ComplexityQuery() string {
	return `query
    {
        complexity {
            after
            reset_in_x_seconds
        }
    }`
}

// CreateNotificationQuery builds the create_notification mutation. targetType
// must be NotificationTargetProject or NotificationTargetPost.
func CreateNotificationQuery(userID, targetID int, text string, targetType NotificationTargetType) (string, error) {
	if userID <= 0 {
		return "", errors.New("user id required")
	}
	if targetID <= 0 {
		return "", errors.New("target id required")
	}
	if text == "" {
		return "", errors.New("notification text required")
	}
	if !allowedNotificationTargets[targetType] {
		return "", fmt.Errorf("invalid notification target type: %s", targetType)
	}

	return fmt.Sprintf(`mutation {
        create_notification (user_id: %d, target_id: %d, text: %s, target_type: %s) {
            text
            user_id
            target_id
            target_type
        }
    }`, userID, targetID, quote(text), targetType.token()), nil
}
