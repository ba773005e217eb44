package category

import "FinancialBack/pkg/response"

var (
	ErrCategoryNotFound = response.NewError(404, "category not found")
	ErrInvalidFinality  = response.NewError(400, "invalid finality type")
	ErrCategoryInUse    = response.NewError(409, "category is still referenced by transactions")
)
