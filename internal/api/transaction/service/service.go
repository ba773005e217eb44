package transactionService

import (
	"FinancialBack/internal/api/transaction"
	transactionRepository "FinancialBack/internal/api/transaction/repository"
	"FinancialBack/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (int64, error)
	GetTransactionByID(ctx context.Context, id int64) (entity.Transaction, error)
	GetTransactions(ctx context.Context, pageNumber int, pageSize int, filter transactionRepository.TransactionFilter) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, req transaction.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id int64) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
	}
}
