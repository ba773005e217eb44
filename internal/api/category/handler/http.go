package categoryHandler

import (
	categoryService "FinancialBack/internal/api/category/service"
	"FinancialBack/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	categoryService categoryService.ICategoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	categoryService categoryService.ICategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	cat := srv.Group("/category")

	cat.Get("/", h.GetCategories)
	cat.Get("/:id", h.GetCategoryByID)
	cat.Post("/", h.CreateCategory)
	cat.Put("/:id", h.UpdateCategory)
	cat.Delete("/:id", h.DeleteCategory)
}
