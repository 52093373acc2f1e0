package query_builder

import "fmt"

// UsersOptions enumerates every argument the users query recognizes. The
// remote API also tolerates unknown arguments by ignoring them; a closed
// struct makes that class of silent typo impossible on this side. Zero
// values are omitted from the document.
type UsersOptions struct {
	IDs         []int
	Kind        UserKind
	NewestFirst *bool
	NonActive   *bool
	Limit       int
	Page        int
	Emails      []string
	Name        string
}

// UsersQuery builds the users listing query. With a zero-value options
// struct the argument list disappears entirely.
func UsersQuery(opts UsersOptions) (string, error) {
	if opts.Kind != "" && !allowedUserKinds[opts.Kind] {
		return "", fmt.Errorf("invalid user kind: %s", opts.Kind)
	}

	args, err := formatParams([]param{
		{"ids", omitEmptyList(opts.IDs)},
		{"kind", opts.Kind},
		{"newest_first", opts.NewestFirst},
		{"non_active", opts.NonActive},
		{"limit", omitZero(opts.Limit)},
		{"page", omitZero(opts.Page)},
		{"emails", omitEmptyStrings(opts.Emails)},
		{"name", omitEmpty(opts.Name)},
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
        users%s {
            id
            name
            email
            enabled
            teams {
                id
                name
            }
        }
    }`, wrapped), nil
}

// MeQuery builds the me query describing the authenticated user.
func MeQuery() string {
	return `{
    me {
        account {
            id
        }
        birthday
        country_code
        created_at
        join_date
        email
        enabled
        id
        is_admin
        is_guest
        is_pending
        is_view_only
        location
        mobile_phone
        name
        phone
        photo_original
        photo_small
        photo_thumb
        photo_thumb_small
        photo_tiny
        teams {
            id
            name
        }
        time_zone_identifier
        title
        url
        utc_hours_diff
    }
}`
}
