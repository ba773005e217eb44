package userRepository

import (
	"FinancialBack/internal/api/user"
	"FinancialBack/internal/entity"
	contextPkg "FinancialBack/pkg/context"
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID   int64          `db:"id"`
	Name sql.NullString `db:"name"`
	Age  sql.NullInt64  `db:"age"`
}

func (r *userRepository) CreateUser(c context.Context, u entity.User) (int64, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"name": u.Name,
		"age":  u.Age,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return 0, err
	}

	return id, nil
}

func (r *userRepository) GetUserByID(c context.Context, id int64) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var row UserDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetUserByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetUserByID no rows found")
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return makeUser(row), nil
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied filter values so
// a name filter of "10%" only matches the literal text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *userRepository) GetUsers(c context.Context, filter UserFilter, pageNumber int, pageSize int) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []UserDB

	argsKV := map[string]interface{}{
		"name":    likeEscaper.Replace(filter.Name),
		"min_age": filter.MinAge,
		"max_age": filter.MaxAge,
		"limit":   pageSize,
		"offset":  (pageNumber - 1) * pageSize,
	}

	query, args, err := sqlx.Named(queryGetUsers, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUsers named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUsers execution err")
		return nil, err
	}

	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, makeUser(row))
	}

	return users, nil
}

func (r *userRepository) UpdateUser(c context.Context, u entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":   u.ID,
		"name": u.Name,
		"age":  u.Age,
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating user")
		return err
	}

	return nil
}

// DeleteUser removes the row; the user's transactions go with it through the
// ON DELETE CASCADE policy on transactions.user_id.
func (r *userRepository) DeleteUser(c context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting user")
		return err
	}

	return nil
}

func makeUser(row UserDB) entity.User {
	return entity.User{
		ID:   row.ID,
		Name: row.Name.String,
		Age:  int(row.Age.Int64),
	}
}
