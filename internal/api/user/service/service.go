package userService

import (
	"FinancialBack/internal/api/user"
	userRepository "FinancialBack/internal/api/user/repository"
	"FinancialBack/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IUserService interface {
	CreateUser(ctx context.Context, req user.CreateUserRequest) (int64, error)
	GetUserByID(ctx context.Context, id int64) (entity.User, error)
	GetUsers(ctx context.Context, pageNumber int, pageSize int, filter userRepository.UserFilter) ([]entity.User, error)
	UpdateUser(ctx context.Context, id int64, req user.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	log            *logrus.Logger
	userRepository userRepository.Repository
}

func NewUserService(log *logrus.Logger, ur userRepository.Repository) IUserService {
	return &userService{
		log:            log,
		userRepository: ur,
	}
}
