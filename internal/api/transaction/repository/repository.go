package transactionRepository

import (
	"FinancialBack/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Transaction: &transactionRepository{q: sqlExecutor, log: r.log},
		Category:    &categoryLookupRepository{q: sqlExecutor, log: r.log},
		User:        &userLookupRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

// TransactionFilter narrows GetTransactions to a calendar month and year;
// values <= 0 match everything.
type TransactionFilter struct {
	Month int
	Year  int
}

// Client bundles the transaction table with read access to categories and
// users so one request resolves, persists and commits through a single
// database transaction.
type Client struct {
	Transaction interface {
		CreateTransaction(c context.Context, t entity.Transaction) (int64, error)
		GetTransactionByID(c context.Context, id int64) (entity.Transaction, error)
		GetTransactions(c context.Context, filter TransactionFilter, pageNumber int, pageSize int) ([]entity.Transaction, error)
		UpdateTransaction(c context.Context, t entity.Transaction) error
		DeleteTransaction(c context.Context, id int64) error
	}

	Category interface {
		GetCategoryByID(c context.Context, id int64) (entity.Category, error)
	}

	User interface {
		GetUserByID(c context.Context, id int64) (entity.User, error)
	}

	Commit   func() error
	Rollback func() error
}

type transactionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoryLookupRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type userLookupRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
