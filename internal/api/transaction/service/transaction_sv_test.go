package transactionService

import (
	"FinancialBack/internal/api/category"
	"FinancialBack/internal/api/transaction"
	transactionRepository "FinancialBack/internal/api/transaction/repository"
	"FinancialBack/internal/api/user"
	"FinancialBack/internal/entity"
	"FinancialBack/pkg/response"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeTransactionStore struct {
	byID    map[int64]entity.Transaction
	created []entity.Transaction
	updated []entity.Transaction
	deleted []int64
	nextID  int64
}

func (f *fakeTransactionStore) CreateTransaction(_ context.Context, t entity.Transaction) (int64, error) {
	f.created = append(f.created, t)
	return f.nextID, nil
}

func (f *fakeTransactionStore) GetTransactionByID(_ context.Context, id int64) (entity.Transaction, error) {
	t, ok := f.byID[id]
	if !ok {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return t, nil
}

func (f *fakeTransactionStore) GetTransactions(_ context.Context, _ transactionRepository.TransactionFilter, _ int, _ int) ([]entity.Transaction, error) {
	transactions := make([]entity.Transaction, 0, len(f.byID))
	for _, t := range f.byID {
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (f *fakeTransactionStore) UpdateTransaction(_ context.Context, t entity.Transaction) error {
	f.updated = append(f.updated, t)
	return nil
}

func (f *fakeTransactionStore) DeleteTransaction(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCategoryStore struct {
	byID map[int64]entity.Category
}

func (f *fakeCategoryStore) GetCategoryByID(_ context.Context, id int64) (entity.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return c, nil
}

type fakeUserStore struct {
	byID map[int64]entity.User
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int64) (entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return entity.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeRepository struct {
	transactions *fakeTransactionStore
	categories   *fakeCategoryStore
	users        *fakeUserStore
	committed    bool
	rolledBack   bool
}

func (f *fakeRepository) NewClient(_ bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: f.transactions,
		Category:    f.categories,
		User:        f.users,
		Commit: func() error {
			f.committed = true
			return nil
		},
		Rollback: func() error {
			f.rolledBack = true
			return nil
		},
	}, nil
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		transactions: &fakeTransactionStore{byID: map[int64]entity.Transaction{}, nextID: 1},
		categories:   &fakeCategoryStore{byID: map[int64]entity.Category{}},
		users:        &fakeUserStore{byID: map[int64]entity.User{}},
	}
}

func newTestService(repo *fakeRepository) ITransactionService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewTransactionService(logger, repo)
}

func TestCreateTransaction_Success(t *testing.T) {
	repo := newFakeRepository()
	repo.transactions.nextID = 42
	repo.categories.byID[1] = entity.Category{ID: 1, Description: "Salary", Finality: entity.FinalityIncome}
	repo.users.byID[2] = entity.User{ID: 2, Name: "Carlos", Age: 30}

	svc := newTestService(repo)

	id, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		Description: "Monthly salary",
		Value:       decimal.NewFromInt(5000),
		Type:        "income",
		CategoryID:  1,
		UserID:      2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.True(t, repo.committed)

	require.Len(t, repo.transactions.created, 1)
	created := repo.transactions.created[0]
	assert.Equal(t, entity.TypeIncome, created.Type)
	assert.Equal(t, int64(1), created.CategoryID)
	assert.Equal(t, int64(2), created.UserID)
}

func TestCreateTransaction_UnknownType(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		Description: "Monthly salary",
		Value:       decimal.NewFromInt(5000),
		Type:        "transfer",
		CategoryID:  1,
		UserID:      2,
	})

	assert.ErrorIs(t, err, transaction.ErrInvalidTransactionType)
	assert.Empty(t, repo.transactions.created)
	assert.False(t, repo.committed)
}

func TestCreateTransaction_CategoryNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.users.byID[2] = entity.User{ID: 2, Name: "Carlos", Age: 30}
	svc := newTestService(repo)

	_, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		Description: "Monthly salary",
		Value:       decimal.NewFromInt(5000),
		Type:        "income",
		CategoryID:  99,
		UserID:      2,
	})

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.Empty(t, repo.transactions.created)
	assert.False(t, repo.committed)
}

func TestCreateTransaction_UserNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.categories.byID[1] = entity.Category{ID: 1, Description: "Salary", Finality: entity.FinalityIncome}
	svc := newTestService(repo)

	_, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		Description: "Monthly salary",
		Value:       decimal.NewFromInt(5000),
		Type:        "income",
		CategoryID:  1,
		UserID:      99,
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Empty(t, repo.transactions.created)
	assert.False(t, repo.committed)
}

func TestCreateTransaction_MinorWithIncomeRejected(t *testing.T) {
	repo := newFakeRepository()
	repo.categories.byID[1] = entity.Category{ID: 1, Description: "Salário", Finality: entity.FinalityIncome}
	repo.users.byID[2] = entity.User{ID: 2, Name: "Ana", Age: 16}
	svc := newTestService(repo)

	_, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		Description: "Mesada",
		Value:       decimal.NewFromInt(50),
		Type:        "income",
		CategoryID:  1,
		UserID:      2,
	})

	var validationErr *response.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "a minor cannot own income transactions")
	assert.Empty(t, repo.transactions.created)
	assert.False(t, repo.committed)
}

func TestCreateTransaction_IncompatibleCategoryRejected(t *testing.T) {
	repo := newFakeRepository()
	repo.categories.byID[1] = entity.Category{ID: 1, Description: "Rent", Finality: entity.FinalityExpense}
	repo.users.byID[2] = entity.User{ID: 2, Name: "Carlos", Age: 30}
	svc := newTestService(repo)

	_, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		Description: "Monthly salary",
		Value:       decimal.NewFromInt(5000),
		Type:        "income",
		CategoryID:  1,
		UserID:      2,
	})

	var validationErr *response.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations,
		"transaction type is not compatible with the selected category finality")
	assert.Empty(t, repo.transactions.created)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	err := svc.UpdateTransaction(context.Background(), 7, transaction.UpdateTransactionRequest{
		Description: "Adjusted",
		Value:       decimal.NewFromInt(100),
		Type:        "expense",
		CategoryID:  1,
		UserID:      2,
	})

	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
	assert.Empty(t, repo.transactions.updated)
}

func TestUpdateTransaction_PreservesCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	repo := newFakeRepository()
	repo.transactions.byID[7] = entity.Transaction{
		ID:          7,
		Description: "Groceries",
		Value:       decimal.NewFromInt(200),
		Type:        entity.TypeExpense,
		CategoryID:  1,
		UserID:      2,
		CreatedAt:   createdAt,
	}
	repo.categories.byID[1] = entity.Category{ID: 1, Description: "Food", Finality: entity.FinalityExpense}
	repo.users.byID[2] = entity.User{ID: 2, Name: "Carlos", Age: 30}
	svc := newTestService(repo)

	err := svc.UpdateTransaction(context.Background(), 7, transaction.UpdateTransactionRequest{
		Description: "Groceries and cleaning",
		Value:       decimal.NewFromInt(250),
		Type:        "expense",
		CategoryID:  1,
		UserID:      2,
	})

	require.NoError(t, err)
	require.Len(t, repo.transactions.updated, 1)
	updated := repo.transactions.updated[0]
	assert.Equal(t, "Groceries and cleaning", updated.Description)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.True(t, repo.committed)
}

func TestDeleteTransaction(t *testing.T) {
	repo := newFakeRepository()
	repo.transactions.byID[7] = entity.Transaction{ID: 7}
	svc := newTestService(repo)

	require.NoError(t, svc.DeleteTransaction(context.Background(), 7))
	assert.Equal(t, []int64{7}, repo.transactions.deleted)
	assert.True(t, repo.committed)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	err := svc.DeleteTransaction(context.Background(), 7)
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
	assert.Empty(t, repo.transactions.deleted)
	assert.False(t, repo.committed)
}
