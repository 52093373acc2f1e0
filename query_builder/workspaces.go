package query_builder

import (
	"errors"
	"fmt"
)

// WorkspacesQuery builds the query listing the workspaces reachable through
// the account's boards.
func WorkspacesQuery() string {
	return `query {
        boards {
            workspace {
                id
                name
                kind
                description
            }
        }
    }`
}

// CreateWorkspaceQuery builds the create_workspace mutation. description may
// be empty.
func CreateWorkspaceQuery(name string, kind WorkspaceKind, description string) (string, error) {
	if name == "" {
		return "", errors.New("workspace name required")
	}
	if !allowedWorkspaceKinds[kind] {
		return "", fmt.Errorf("invalid workspace kind: %s", kind)
	}

	return fmt.Sprintf(`mutation {
        create_workspace (name: %s, kind: %s, description: %s) {
            id
            description
        }
    }`, quote(name), kind.token(), quote(description)), nil
}

// AddUsersToWorkspaceQuery builds the add_users_to_workspace mutation.
func AddUsersToWorkspaceQuery(workspaceID int, userIDs []int, kind WorkspaceSubscriberKind) (string, error) {
	if workspaceID <= 0 {
		return "", errors.New("workspace id required")
	}
	if len(userIDs) == 0 {
		return "", errors.New("user ids required")
	}
	if !allowedSubscriberKinds[kind] {
		return "", fmt.Errorf("invalid subscriber kind: %s", kind)
	}

	return fmt.Sprintf(`mutation {
        add_users_to_workspace (workspace_id: %d, user_ids: %s, kind: %s) {
            id
        }
    }`, workspaceID, formatIntList(userIDs), kind.token()), nil
}

// DeleteUsersFromWorkspaceQuery builds the delete_users_from_workspace
// mutation.
func DeleteUsersFromWorkspaceQuery(workspaceID int, userIDs []int) (string, error) {
	if workspaceID <= 0 {
		return "", errors.New("workspace id required")
	}
	if len(userIDs) == 0 {
		return "", errors.New("user ids required")
	}

	return fmt.Sprintf(`mutation {
        delete_users_from_workspace (workspace_id: %d, user_ids: %s) {
            id
        }
    }`, workspaceID, formatIntList(userIDs)), nil
}

// AddTeamsToWorkspaceQuery builds the add_teams_to_workspace mutation.
func AddTeamsToWorkspaceQuery(workspaceID int, teamIDs []int) (string, error) {
	if workspaceID <= 0 {
		return "", errors.New("workspace id required")
	}
	if len(teamIDs) == 0 {
		return "", errors.New("team ids required")
	}

	return fmt.Sprintf(`mutation {
        add_teams_to_workspace (workspace_id: %d, team_ids: %s) {
            id
        }
    }`, workspaceID, formatIntList(teamIDs)), nil
}

// DeleteTeamsFromWorkspaceQuery builds the delete_teams_from_workspace
// mutation.
func DeleteTeamsFromWorkspaceQuery(workspaceID int, teamIDs []int) (string, error) {
	if workspaceID <= 0 {
		return "", errors.New("workspace id required")
	}
	if len(teamIDs) == 0 {
		return "", errors.New("team ids required")
	}

	return fmt.Sprintf(`mutation {
        delete_teams_from_workspace (workspace_id: %d, team_ids: %s) {
            id
        }
    }`, workspaceID, formatIntList(teamIDs)), nil
}
