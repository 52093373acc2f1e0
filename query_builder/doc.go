// Package query_builder builds GraphQL query and mutation documents for the
// monday.com platform API.
//
// The package focuses on two goals:
//
//   - Fidelity: every function emits the exact operation name, argument names,
//     and selection set the remote schema expects, so a surrounding client can
//     send the text as-is and parse the response it asked for.
//   - Safety: arguments are validated before any text is assembled, absent
//     optional arguments are omitted entirely instead of rendered as null,
//     and free-text values are escaped before being embedded in quoted
//     literals.
//
// Each remote operation has one function. Required arguments are positional;
// optional ones travel in a small options struct whose zero value means
// "omit everything":
//
//	query, err := query_builder.CreateItemQuery(1, "topics", "Task",
//		map[string]any{"status": map[string]any{"label": "Done"}}, true)
//
//	boards, err := query_builder.BoardsQuery(query_builder.BoardsOptions{
//		Limit:     25,
//		BoardKind: query_builder.BoardKindPublic,
//	})
//
// There is no transport here. Every function is a pure transform from typed
// arguments to a document string, safe to call from any number of goroutines.
package query_builder
