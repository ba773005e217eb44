package transactionService

import (
	"FinancialBack/internal/api/transaction"
	transactionRepository "FinancialBack/internal/api/transaction/repository"
	"FinancialBack/internal/entity"
	contextPkg "FinancialBack/pkg/context"
	"FinancialBack/pkg/response"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// CreateTransaction runs the two-phase protocol: resolve both foreign
// references (failing fast with not-found), attach them to the candidate,
// validate the full graph, then persist and commit.
func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transactionType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Unknown transaction type in create request")
		return 0, err
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}
	defer repo.Rollback()

	cat, err := repo.Category.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return 0, err
	}

	usr, err := repo.User.GetUserByID(ctx, req.UserID)
	if err != nil {
		return 0, err
	}

	t := entity.Transaction{
		Description: req.Description,
		Value:       req.Value,
		Type:        transactionType,
		CategoryID:  req.CategoryID,
		UserID:      req.UserID,
		Category:    &cat,
		User:        &usr,
	}

	if violations := t.Violations(); len(violations) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"violations": violations,
		}).Warn("Transaction validation failed")
		return 0, response.NewValidationError("transaction validation failed", violations)
	}

	id, err := repo.Transaction.CreateTransaction(ctx, t)
	if err != nil {
		return 0, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction creation")
		return 0, err
	}

	return id, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id int64) (entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	return repo.Transaction.GetTransactionByID(ctx, id)
}

func (s *transactionService) GetTransactions(ctx context.Context, pageNumber int, pageSize int, filter transactionRepository.TransactionFilter) ([]entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Transaction.GetTransactions(ctx, filter, pageNumber, pageSize)
}

// UpdateTransaction follows the same two-phase protocol as create after
// fetching the stored row; created_at never changes.
func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, req transaction.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	transactionType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Unknown transaction type in update request")
		return err
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	t, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}

	t.Description = req.Description
	t.Value = req.Value
	t.Type = transactionType
	t.CategoryID = req.CategoryID
	t.UserID = req.UserID

	cat, err := repo.Category.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return err
	}

	usr, err := repo.User.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	t.Category = &cat
	t.User = &usr

	if violations := t.Violations(); len(violations) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"violations": violations,
		}).Warn("Transaction validation failed")
		return response.NewValidationError("transaction validation failed", violations)
	}

	if err := repo.Transaction.UpdateTransaction(ctx, t); err != nil {
		return err
	}

	return repo.Commit()
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Transaction.GetTransactionByID(ctx, id); err != nil {
		return err
	}

	if err := repo.Transaction.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	return repo.Commit()
}
