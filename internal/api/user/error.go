package user

import "FinancialBack/pkg/response"

var (
	ErrUserNotFound = response.NewError(404, "user not found")
)
