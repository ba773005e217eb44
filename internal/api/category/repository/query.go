package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			description,
			finality
		) VALUES (
			:description,
			:finality
		)
		RETURNING id
	`

	queryGetCategoryByID = `
		SELECT
			id,
			description,
			finality
		FROM categories
		WHERE id = :id
	`

	queryGetCategories = `
		SELECT
			id,
			description,
			finality
		FROM categories
		WHERE :finality <= -1 OR finality = :finality
		ORDER BY id
		LIMIT :limit OFFSET :offset
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			description = :description,
			finality = :finality
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`
)
