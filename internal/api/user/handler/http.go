package userHandler

import (
	userService "FinancialBack/internal/api/user/service"
	"FinancialBack/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	userService userService.IUserService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	userService userService.IUserService,
) *UserHandler {
	return &UserHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		userService: userService,
	}
}

func (h *UserHandler) Start(srv fiber.Router) {
	usr := srv.Group("/user")

	usr.Get("/", h.GetUsers)
	usr.Get("/:id", h.GetUserByID)
	usr.Post("/", h.CreateUser)
	usr.Put("/:id", h.UpdateUser)
	usr.Delete("/:id", h.DeleteUser)
}
