package transactionRepository

import (
	"FinancialBack/internal/api/category"
	"FinancialBack/internal/api/user"
	"FinancialBack/internal/entity"
	contextPkg "FinancialBack/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Foreign-reference lookups used by the transaction resolve phase. A missing
// row maps to the owning module's not-found error so the service can fail
// fast before validation runs.

type categoryLookupDB struct {
	ID          int64          `db:"id"`
	Description sql.NullString `db:"description"`
	Finality    sql.NullInt64  `db:"finality"`
}

type userLookupDB struct {
	ID   int64          `db:"id"`
	Name sql.NullString `db:"name"`
	Age  sql.NullInt64  `db:"age"`
}

func (r *categoryLookupRepository) GetCategoryByID(c context.Context, id int64) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var row categoryLookupDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Referenced category not found")
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return entity.Category{
		ID:          row.ID,
		Description: row.Description.String,
		Finality:    entity.Finality(row.Finality.Int64),
	}, nil
}

func (r *userLookupRepository) GetUserByID(c context.Context, id int64) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var row userLookupDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionUser, argsKV)
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
			}).Warn("Referenced user not found")
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return entity.User{
		ID:   row.ID,
		Name: row.Name.String,
		Age:  int(row.Age.Int64),
	}, nil
}
