package transactionRepository

import (
	"FinancialBack/internal/api/transaction"
	"FinancialBack/internal/entity"
	contextPkg "FinancialBack/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID                  int64           `db:"id"`
	Description         sql.NullString  `db:"description"`
	Value               decimal.Decimal `db:"value"`
	Type                sql.NullInt64   `db:"type"`
	CategoryID          sql.NullInt64   `db:"category_id"`
	UserID              sql.NullInt64   `db:"user_id"`
	CreatedAt           time.Time       `db:"created_at"`
	CategoryDescription sql.NullString  `db:"category_description"`
	CategoryFinality    sql.NullInt64   `db:"category_finality"`
	UserName            sql.NullString  `db:"user_name"`
	UserAge             sql.NullInt64   `db:"user_age"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, t entity.Transaction) (int64, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"description": t.Description,
		"value":       t.Value,
		"type":        int(t.Type),
		"category_id": t.CategoryID,
		"user_id":     t.UserID,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return 0, err
	}

	return id, nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id int64) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactions(c context.Context, filter TransactionFilter, pageNumber int, pageSize int) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	argsKV := map[string]interface{}{
		"month":  filter.Month,
		"year":   filter.Year,
		"limit":  pageSize,
		"offset": (pageNumber - 1) * pageSize,
	}

	query, args, err := sqlx.Named(queryGetTransactions, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactions named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactions execution err")
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, makeTransaction(row))
	}

	return transactions, nil
}

// UpdateTransaction never touches created_at; the creation timestamp is
// immutable after insert.
func (r *transactionRepository) UpdateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          t.ID,
		"description": t.Description,
		"value":       t.Value,
		"type":        int(t.Type),
		"category_id": t.CategoryID,
		"user_id":     t.UserID,
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting transaction")
		return err
	}

	return nil
}

func makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          row.ID,
		Description: row.Description.String,
		Value:       row.Value,
		Type:        entity.TransactionType(row.Type.Int64),
		CategoryID:  row.CategoryID.Int64,
		UserID:      row.UserID.Int64,
		CreatedAt:   row.CreatedAt,
		Category: &entity.Category{
			ID:          row.CategoryID.Int64,
			Description: row.CategoryDescription.String,
			Finality:    entity.Finality(row.CategoryFinality.Int64),
		},
		User: &entity.User{
			ID:   row.UserID.Int64,
			Name: row.UserName.String,
			Age:  int(row.UserAge.Int64),
		},
	}
}
