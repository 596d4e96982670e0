package query

import "github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"

// ListTodosQuery filters by exact status. Empty or "All" means no filter.
type ListTodosQuery struct {
	Status string `query:"status"`
}

type TodoQueryListResult struct {
	Result []*common.TodoResult `json:"result"`
}
