package category

type CreateCategoryRequest struct {
	Description string `json:"description"`
	Finality    string `json:"finality" validate:"required"`
}

type UpdateCategoryRequest struct {
	Description string `json:"description"`
	Finality    string `json:"finality" validate:"required"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Finality    string `json:"finality"`
}

type CategoryCreatedResponse struct {
	ID int64 `json:"id"`
}
