package main

import (
	"log"

	"github.com/yesetoda/monday_query_builder/query_builder"
)

func main() {
	createItem, err := query_builder.CreateItemQuery(1, "topics", "Task",
		map[string]any{
			"status": map[string]any{"label": "Done"},
		}, true)
	if err != nil {
		log.Println(err)
	} else {
		log.Println("--- create_item ---")
		log.Println(createItem)
	}

	boards, err := query_builder.BoardsQuery(query_builder.BoardsOptions{
		Limit:     25,
		BoardKind: query_builder.BoardKindPublic,
		OrderBy:   query_builder.BoardsOrderByCreatedAt,
	})
	if err != nil {
		log.Println(err)
	} else {
		log.Println("--- boards ---")
		log.Println(boards)
	}

	items, err := query_builder.ItemsByIDQuery([]int{12345}, []query_builder.ColumnType{
		query_builder.ColumnTypeDate,
		query_builder.ColumnTypeStatus,
	})
	if err != nil {
		log.Println(err)
	} else {
		log.Println("--- items ---")
		log.Println(items)
	}

	boardItems, err := query_builder.BoardItemsQuery(1, map[string]any{
		"rules": []any{
			map[string]any{
				"column_id":     "status",
				"compare_value": []any{1},
			},
		},
		"operator": query_builder.Raw("and"),
	}, query_builder.ItemsPageOptions{Limit: 50})
	if err != nil {
		log.Println(err)
	} else {
		log.Println("--- board items ---")
		log.Println(boardItems)
	}
}
