package config

import (
	"FinancialBack/database/postgres"
	categoryHandler "FinancialBack/internal/api/category/handler"
	categoryRepository "FinancialBack/internal/api/category/repository"
	categoryService "FinancialBack/internal/api/category/service"
	transactionHandler "FinancialBack/internal/api/transaction/handler"
	transactionRepository "FinancialBack/internal/api/transaction/repository"
	transactionService "FinancialBack/internal/api/transaction/service"
	userHandler "FinancialBack/internal/api/user/handler"
	userRepository "FinancialBack/internal/api/user/repository"
	userService "FinancialBack/internal/api/user/service"
	"FinancialBack/internal/middleware"
	"FinancialBack/pkg/response"
	"FinancialBack/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.RunMigrations(db); err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to run database migrations: %v", err)
			}
			return fmt.Errorf("failed to run database migrations: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// User Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.NewUserService(s.log, userRepo)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, categoryHandlers, userHandlers, transactionHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1")
	router.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(response.NewEnvelope("Server is Healthy!", nil))
	})
}
