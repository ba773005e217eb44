package transactionHandler

import (
	"FinancialBack/internal/api/transaction"
	transactionRepository "FinancialBack/internal/api/transaction/repository"
	"FinancialBack/internal/entity"
	contextPkg "FinancialBack/pkg/context"
	"FinancialBack/pkg/handlerUtil"
	"FinancialBack/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *TransactionHandler) GetTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transactions request")

	now := time.Now()
	pageNumber := ctx.QueryInt("pageNumber", 1)
	if pageNumber < 1 {
		pageNumber = 1
	}
	pageSize := ctx.QueryInt("pageSize", 10)
	if pageSize < 1 {
		pageSize = 10
	}
	filter := transactionRepository.TransactionFilter{
		Month: ctx.QueryInt("month", int(now.Month())),
		Year:  ctx.QueryInt("year", now.Year()),
	}

	transactions, err := h.transactionService.GetTransactions(c, pageNumber, pageSize, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transactions")
	}

	responses := make([]transaction.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, makeTransactionResponse(t))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "transactions retrieved successfully", responses)
	}
}

func (h *TransactionHandler) GetTransactionByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	t, err := h.transactionService.GetTransactionByID(c, int64(id))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "transaction retrieved successfully", makeTransactionResponse(t))
	}
}

func (h *TransactionHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	var req transaction.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	id, err := h.transactionService.CreateTransaction(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, "transaction created successfully",
			transaction.TransactionCreatedResponse{ID: id})
	}
}

func (h *TransactionHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	var req transaction.UpdateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.transactionService.UpdateTransaction(c, int64(id), req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, "transaction updated successfully", nil)
	}
}

func (h *TransactionHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.transactionService.DeleteTransaction(c, int64(id)); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, "transaction deleted successfully", nil)
	}
}

func makeTransactionResponse(t entity.Transaction) transaction.TransactionResponse {
	resp := transaction.TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Value:       t.Value,
		Type:        t.Type.String(),
		Date:        t.CreatedAt.Format("02/01/2006"),
	}

	if t.Category != nil {
		resp.Category = transaction.CategorySummaryResponse{
			ID:          t.Category.ID,
			Description: t.Category.Description,
			Finality:    t.Category.Finality.String(),
		}
	}
	if t.User != nil {
		resp.User = transaction.UserSummaryResponse{
			ID:   t.User.ID,
			Name: t.User.Name,
			Age:  t.User.Age,
		}
	}

	return resp
}
