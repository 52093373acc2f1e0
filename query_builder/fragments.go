package query_builder

import (
	"fmt"
	"strings"
)

// columnValueFragments maps a column kind to the inline type fragment that
// selects its kind-specific fields inside a column_values listing. The map is
// built once at load time and never mutated. Kinds without extra queryable
// fields (text, progress, formula, team, ...) deliberately have no entry.
var columnValueFragments = map[ColumnType]string{
	ColumnTypeButton: `
                    ... on ButtonValue {
                        color
                        label
                    }`,
	ColumnTypeCheckbox: `
                    ... on CheckboxValue {
                        checked
                        updated_at
                    }`,
	ColumnTypeColorPicker: `
                    ... on ColorPickerValue {
                        color
                        updated_at
                    }`,
	ColumnTypeBoardRelation: `
                    ... on BoardRelationValue {
                        display_value
                        updated_at
                        linked_item_ids
                        linked_items {
                            name
                        }
                    }`,
	ColumnTypeCountry: `
                    ... on CountryValue {
                        country {
                            name
                            code
                        }
                        updated_at
                    }`,
	ColumnTypeCreationLog: `
                    ... on CreationLogValue {
                        created_at
                        creator {
                            name
                            id
                            email
                        }
                    }`,
	ColumnTypeDate: `
                    ... on DateValue {
                        time
                        date
                        updated_at
                        icon
                    }`,
	ColumnTypeDependency: `
                    ... on DependencyValue {
                        linked_item_ids
                        linked_items {
                            name
                        }
                        updated_at
                        display_value
                    }`,
	ColumnTypeDropdown: `
                    ... on DropdownValue {
                        values {
                            id
                            label
                        }
                        column {
                            title
                        }
                    }`,
	ColumnTypeEmail: `
                    ... on EmailValue {
                        email
                        updated_at
                        label
                    }`,
	ColumnTypeFile: `
                    ... on FileValue {
                        files
                    }`,
	ColumnTypeHour: `
                    ... on HourValue {
                        minute
                        hour
                        updated_at
                    }`,
	ColumnTypeItemID: `
                    ... on ItemIdValue {
                        item_id
                    }`,
	ColumnTypeLastUpdated: `
                    ... on LastUpdatedValue {
                        updated_at
                        updater {
                            name
                        }
                        updater_id
                    }`,
	ColumnTypeLink: `
                    ... on LinkValue {
                        url
                        url_text
                    }`,
	ColumnTypeLocation: `
                    ... on LocationValue {
                        address
                        city
                        city_short
                        country
                        country_short
                        lat
                        lng
                        place_id
                        street
                        street_number
                        street_number_short
                        street_short
                        updated_at
                    }`,
	ColumnTypeLongText: `
                    ... on LongTextValue {
                        updated_at
                    }`,
	ColumnTypeMirror: `
                    ... on MirrorValue {
                        column {
                            title
                        }
                        display_value
                        mirrored_items {
                            linked_item {
                                name
                                id
                            }
                            linked_board {
                                name
                            }
                            linked_board_id
                            mirrored_value
                        }
                    }`,
	ColumnTypeDoc: `
                    ... on DocValue {
                        file {
                            doc {
                                name
                                workspace_id
                                relative_url
                                settings
                            }
                            creator {
                                id
                                name
                            }
                            created_at
                        }
                    }`,
	ColumnTypeNumbers: `
                    ... on NumbersValue {
                        number
                        symbol
                        direction
                    }`,
	ColumnTypePeople: `
                    ... on PeopleValue {
                        persons_and_teams {
                            id
                            kind
                        }
                        updated_at
                    }`,
	ColumnTypePhone: `
                    ... on PhoneValue {
                        country_short_name
                        phone
                        updated_at
                    }`,
	ColumnTypeRating: `
                    ... on RatingValue {
                        rating
                        updated_at
                    }`,
	ColumnTypeStatus: `
                    ... on StatusValue {
                        index
                        is_done
                        label
                        label_style {
                            border
                            color
                        }
                        update_id
                        updated_at
                    }`,
	ColumnTypeTags: `
                    ... on TagsValue {
                        tag_ids
                    }`,
	ColumnTypeTimeline: `
                    ... on TimelineValue {
                        from
                        to
                        updated_at
                        visualization_type
                    }`,
	ColumnTypeTimeTracking: `
                    ... on TimeTrackingValue {
                        duration
                        history {
                            created_at
                            ended_at
                            ended_user_id
                            id
                            manually_entered_end_date
                            manually_entered_end_time
                            manually_entered_start_date
                            manually_entered_start_time
                            started_at
                            started_user_id
                            status
                            updated_at
                        }
                        running
                        started_at
                        updated_at
                    }`,
	ColumnTypeVote: `
                    ... on VoteValue {
                        vote_count
                        voter_ids
                        updated_at
                    }`,
	ColumnTypeWeek: `
                    ... on WeekValue {
                        start_date
                        end_date
                    }`,
	ColumnTypeWorldClock: `
                    ... on WorldClockValue {
                        timezone
                        updated_at
                    }`,
}

// formatSpecificColumnValues concatenates, in caller order, the inline
// fragments for the requested column kinds. Kinds with no fragment contribute
// nothing; a kind outside the closed set is an error. Nil or empty input
// yields the empty string.
func formatSpecificColumnValues(requested []ColumnType) (string, error) {
	var sb strings.Builder
	for _, ct := range requested {
		if !allowedColumnTypes[ct] {
			return "", fmt.Errorf("invalid column type: %s", ct)
		}
		sb.WriteString(columnValueFragments[ct])
	}
	return sb.String(), nil
}
