package query_builder

// ColumnType identifies the semantic kind of a board column. The set is
// closed: the remote schema only understands these tokens, and builders
// reject anything outside the allow-list below.
type ColumnType string

// Column kinds recognized by the platform.
const (
	ColumnTypeAutoNumber    ColumnType = "auto_number"
	ColumnTypeBoardRelation ColumnType = "board_relation"
	ColumnTypeButton        ColumnType = "button"
	ColumnTypeCheckbox      ColumnType = "checkbox"
	ColumnTypeColorPicker   ColumnType = "color_picker"
	ColumnTypeCountry       ColumnType = "country"
	ColumnTypeCreationLog   ColumnType = "creation_log"
	ColumnTypeDate          ColumnType = "date"
	ColumnTypeDependency    ColumnType = "dependency"
	ColumnTypeDoc           ColumnType = "doc"
	ColumnTypeDropdown      ColumnType = "dropdown"
	ColumnTypeEmail         ColumnType = "email"
	ColumnTypeFile          ColumnType = "file"
	ColumnTypeFormula       ColumnType = "formula"
	ColumnTypeHour          ColumnType = "hour"
	ColumnTypeItemID        ColumnType = "item_id"
	ColumnTypeLastUpdated   ColumnType = "last_updated"
	ColumnTypeLink          ColumnType = "link"
	ColumnTypeLocation      ColumnType = "location"
	ColumnTypeLongText      ColumnType = "long_text"
	ColumnTypeMirror        ColumnType = "mirror"
	ColumnTypeName          ColumnType = "name"
	ColumnTypeNumbers       ColumnType = "numbers"
	ColumnTypePeople        ColumnType = "people"
	ColumnTypePhone         ColumnType = "phone"
	ColumnTypeProgress      ColumnType = "progress"
	ColumnTypeRating        ColumnType = "rating"
	ColumnTypeStatus        ColumnType = "status"
	ColumnTypeSubtasks      ColumnType = "subtasks"
	ColumnTypeTags          ColumnType = "tags"
	ColumnTypeTeam          ColumnType = "team"
	ColumnTypeText          ColumnType = "text"
	ColumnTypeTimeline      ColumnType = "timeline"
	ColumnTypeTimeTracking  ColumnType = "time_tracking"
	ColumnTypeVote          ColumnType = "vote"
	ColumnTypeWeek          ColumnType = "week"
	ColumnTypeWorldClock    ColumnType = "world_clock"
)

// BoardKind selects the visibility of a board.
type BoardKind string

const (
	BoardKindPublic  BoardKind = "public"
	BoardKindPrivate BoardKind = "private"
	BoardKindShare   BoardKind = "share"
)

// BoardState filters boards by lifecycle state.
type BoardState string

const (
	BoardStateAll      BoardState = "all"
	BoardStateActive   BoardState = "active"
	BoardStateArchived BoardState = "archived"
	BoardStateDeleted  BoardState = "deleted"
)

// BoardsOrderBy selects the sort key for a boards listing.
type BoardsOrderBy string

const (
	BoardsOrderByCreatedAt BoardsOrderBy = "created_at"
	BoardsOrderByUsedAt    BoardsOrderBy = "used_at"
)

// DuplicateType selects how much of a board a duplicate_board mutation copies.
type DuplicateType string

const (
	DuplicateBoardWithStructure        DuplicateType = "duplicate_board_with_structure"
	DuplicateBoardWithPulses           DuplicateType = "duplicate_board_with_pulses"
	DuplicateBoardWithPulsesAndUpdates DuplicateType = "duplicate_board_with_pulses_and_updates"
)

// UserKind filters a users listing.
type UserKind string

const (
	UserKindAll        UserKind = "all"
	UserKindGuests     UserKind = "guests"
	UserKindNonGuests  UserKind = "non_guests"
	UserKindNonPending UserKind = "non_pending"
)

// WorkspaceKind selects the visibility of a workspace.
type WorkspaceKind string

const (
	WorkspaceKindOpen   WorkspaceKind = "open"
	WorkspaceKindClosed WorkspaceKind = "closed"
)

// WorkspaceSubscriberKind is the role granted when adding users to a workspace.
type WorkspaceSubscriberKind string

const (
	WorkspaceSubscriberKindSubscriber WorkspaceSubscriberKind = "subscriber"
	WorkspaceSubscriberKindOwner      WorkspaceSubscriberKind = "owner"
)

// NotificationTargetType names the entity a notification points at.
type NotificationTargetType string

const (
	NotificationTargetProject NotificationTargetType = "Project"
	NotificationTargetPost    NotificationTargetType = "Post"
)

// token methods let the argument serializer emit enum values as bare grammar
// tokens rather than quoted strings.

func (c ColumnType) token() string { return string(c) }

func (k BoardKind) token() string { return string(k) }

func (s BoardState) token() string { return string(s) }

func (o BoardsOrderBy) token() string { return string(o) }

func (d DuplicateType) token() string { return string(d) }

func (k UserKind) token() string { return string(k) }

func (k WorkspaceKind) token() string { return string(k) }

func (k WorkspaceSubscriberKind) token() string { return string(k) }

func (t NotificationTargetType) token() string { return string(t) }

// Internal allow-lists for the closed token sets.
var allowedColumnTypes = map[ColumnType]bool{
	ColumnTypeAutoNumber: true, ColumnTypeBoardRelation: true, ColumnTypeButton: true,
	ColumnTypeCheckbox: true, ColumnTypeColorPicker: true, ColumnTypeCountry: true,
	ColumnTypeCreationLog: true, ColumnTypeDate: true, ColumnTypeDependency: true,
	ColumnTypeDoc: true, ColumnTypeDropdown: true, ColumnTypeEmail: true,
	ColumnTypeFile: true, ColumnTypeFormula: true, ColumnTypeHour: true,
	ColumnTypeItemID: true, ColumnTypeLastUpdated: true, ColumnTypeLink: true,
	ColumnTypeLocation: true, ColumnTypeLongText: true, ColumnTypeMirror: true,
	ColumnTypeName: true, ColumnTypeNumbers: true, ColumnTypePeople: true,
	ColumnTypePhone: true, ColumnTypeProgress: true, ColumnTypeRating: true,
	ColumnTypeStatus: true, ColumnTypeSubtasks: true, ColumnTypeTags: true,
	ColumnTypeTeam: true, ColumnTypeText: true, ColumnTypeTimeline: true,
	ColumnTypeTimeTracking: true, ColumnTypeVote: true, ColumnTypeWeek: true,
	ColumnTypeWorldClock: true,
}

var allowedBoardKinds = map[BoardKind]bool{
	BoardKindPublic: true, BoardKindPrivate: true, BoardKindShare: true,
}

var allowedBoardStates = map[BoardState]bool{
	BoardStateAll: true, BoardStateActive: true, BoardStateArchived: true, BoardStateDeleted: true,
}

var allowedBoardsOrderBy = map[BoardsOrderBy]bool{
	BoardsOrderByCreatedAt: true, BoardsOrderByUsedAt: true,
}

var allowedDuplicateTypes = map[DuplicateType]bool{
	DuplicateBoardWithStructure: true, DuplicateBoardWithPulses: true, DuplicateBoardWithPulsesAndUpdates: true,
}

var allowedUserKinds = map[UserKind]bool{
	UserKindAll: true, UserKindGuests: true, UserKindNonGuests: true, UserKindNonPending: true,
}

var allowedWorkspaceKinds = map[WorkspaceKind]bool{
	WorkspaceKindOpen: true, WorkspaceKindClosed: true,
}

var allowedSubscriberKinds = map[WorkspaceSubscriberKind]bool{
	WorkspaceSubscriberKindSubscriber: true, WorkspaceSubscriberKindOwner: true,
}

var allowedNotificationTargets = map[NotificationTargetType]bool{
	NotificationTargetProject: true, NotificationTargetPost: true,
}
