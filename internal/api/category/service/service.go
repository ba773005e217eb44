package categoryService

import (
	"FinancialBack/internal/api/category"
	categoryRepository "FinancialBack/internal/api/category/repository"
	"FinancialBack/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (int64, error)
	GetCategoryByID(ctx context.Context, id int64) (entity.Category, error)
	GetCategories(ctx context.Context, pageNumber int, pageSize int, finality int) ([]entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, req category.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
	}
}
