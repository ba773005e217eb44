package transaction

import "github.com/shopspring/decimal"

// value travels as a JSON number on the wire, not a quoted string.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type CreateTransactionRequest struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Type        string          `json:"type" validate:"required"`
	CategoryID  int64           `json:"categoryId"`
	UserID      int64           `json:"userId"`
}

type UpdateTransactionRequest struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Type        string          `json:"type" validate:"required"`
	CategoryID  int64           `json:"categoryId"`
	UserID      int64           `json:"userId"`
}

type TransactionResponse struct {
	ID          int64                   `json:"id"`
	Description string                  `json:"description"`
	Value       decimal.Decimal         `json:"value"`
	Type        string                  `json:"type"`
	Date        string                  `json:"date"`
	Category    CategorySummaryResponse `json:"category"`
	User        UserSummaryResponse     `json:"user"`
}

type CategorySummaryResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Finality    string `json:"finality"`
}

type UserSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type TransactionCreatedResponse struct {
	ID int64 `json:"id"`
}
