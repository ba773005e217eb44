package userService

import (
	"FinancialBack/internal/api/user"
	userRepository "FinancialBack/internal/api/user/repository"
	"FinancialBack/internal/entity"
	contextPkg "FinancialBack/pkg/context"
	"FinancialBack/pkg/response"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userService) CreateUser(ctx context.Context, req user.CreateUserRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	u := entity.User{
		Name: req.Name,
		Age:  req.Age,
	}

	if violations := u.Violations(); len(violations) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"violations": violations,
		}).Warn("User validation failed")
		return 0, response.NewValidationError("user validation failed", violations)
	}

	repo, err := s.userRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}
	defer repo.Rollback()

	id, err := repo.User.CreateUser(ctx, u)
	if err != nil {
		return 0, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit user creation")
		return 0, err
	}

	return id, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (entity.User, error) {
	repo, err := s.userRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	return repo.User.GetUserByID(ctx, id)
}

func (s *userService) GetUsers(ctx context.Context, pageNumber int, pageSize int, filter userRepository.UserFilter) ([]entity.User, error) {
	repo, err := s.userRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.User.GetUsers(ctx, filter, pageNumber, pageSize)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req user.UpdateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	u, err := repo.User.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	u.Name = req.Name
	u.Age = req.Age

	if violations := u.Violations(); len(violations) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"violations": violations,
		}).Warn("User validation failed")
		return response.NewValidationError("user validation failed", violations)
	}

	if err := repo.User.UpdateUser(ctx, u); err != nil {
		return err
	}

	return repo.Commit()
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.User.GetUserByID(ctx, id); err != nil {
		return err
	}

	if err := repo.User.DeleteUser(ctx, id); err != nil {
		return err
	}

	return repo.Commit()
}
