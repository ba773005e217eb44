package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			description,
			value,
			type,
			category_id,
			user_id,
			created_at
		) VALUES (
			:description,
			:value,
			:type,
			:category_id,
			:user_id,
			:created_at
		)
		RETURNING id
	`

	queryGetTransactionByID = `
		SELECT
			t.id,
			t.description,
			t.value,
			t.type,
			t.category_id,
			t.user_id,
			t.created_at,
			c.description AS category_description,
			c.finality AS category_finality,
			u.name AS user_name,
			u.age AS user_age
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		JOIN users u ON u.id = t.user_id
		WHERE t.id = :id
	`

	queryGetTransactions = `
		SELECT
			t.id,
			t.description,
			t.value,
			t.type,
			t.category_id,
			t.user_id,
			t.created_at,
			c.description AS category_description,
			c.finality AS category_finality,
			u.name AS user_name,
			u.age AS user_age
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		JOIN users u ON u.id = t.user_id
		WHERE
			(:month <= 0 OR EXTRACT(MONTH FROM t.created_at) = :month)
			AND (:year <= 0 OR EXTRACT(YEAR FROM t.created_at) = :year)
		ORDER BY t.id
		LIMIT :limit OFFSET :offset
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			description = :description,
			value = :value,
			type = :type,
			category_id = :category_id,
			user_id = :user_id
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`

	queryGetTransactionCategory = `
		SELECT
			id,
			description,
			finality
		FROM categories
		WHERE id = :id
	`

	queryGetTransactionUser = `
		SELECT
			id,
			name,
			age
		FROM users
		WHERE id = :id
	`
)
