package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			name,
			age
		) VALUES (
			:name,
			:age
		)
		RETURNING id
	`

	queryGetUserByID = `
		SELECT
			id,
			name,
			age
		FROM users
		WHERE id = :id
	`

	queryGetUsers = `
		SELECT
			id,
			name,
			age
		FROM users
		WHERE
			(:name = '' OR name LIKE '%' || :name || '%')
			AND (:min_age <= -1 OR age >= :min_age)
			AND (:max_age <= -1 OR age <= :max_age)
		ORDER BY id
		LIMIT :limit OFFSET :offset
	`

	queryUpdateUser = `
		UPDATE users
		SET
			name = :name,
			age = :age
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`
)
