package transactionHandler

import (
	transactionService "FinancialBack/internal/api/transaction/service"
	"FinancialBack/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	trx := srv.Group("/transaction")

	trx.Get("/", h.GetTransactions)
	trx.Get("/:id", h.GetTransactionByID)
	trx.Post("/", h.CreateTransaction)
	trx.Put("/:id", h.UpdateTransaction)
	trx.Delete("/:id", h.DeleteTransaction)
}
