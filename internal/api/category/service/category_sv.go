package categoryService

import (
	"FinancialBack/internal/api/category"
	"FinancialBack/internal/entity"
	contextPkg "FinancialBack/pkg/context"
	"FinancialBack/pkg/response"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	finality, err := entity.ParseFinality(req.Finality)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"finality":   req.Finality,
		}).Warn("Unknown finality value in create category request")
		return 0, err
	}

	cat := entity.Category{
		Description: req.Description,
		Finality:    finality,
	}

	if violations := cat.Violations(); len(violations) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"violations": violations,
		}).Warn("Category validation failed")
		return 0, response.NewValidationError("category validation failed", violations)
	}

	repo, err := s.categoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}
	defer repo.Rollback()

	id, err := repo.Category.CreateCategory(ctx, cat)
	if err != nil {
		return 0, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit category creation")
		return 0, err
	}

	return id, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (entity.Category, error) {
	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	return repo.Category.GetCategoryByID(ctx, id)
}

func (s *categoryService) GetCategories(ctx context.Context, pageNumber int, pageSize int, finality int) ([]entity.Category, error) {
	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Category.GetCategories(ctx, finality, pageNumber, pageSize)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req category.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	finality, err := entity.ParseFinality(req.Finality)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"finality":   req.Finality,
		}).Warn("Unknown finality value in update category request")
		return err
	}

	repo, err := s.categoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	cat, err := repo.Category.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}

	cat.Description = req.Description
	cat.Finality = finality

	if violations := cat.Violations(); len(violations) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"violations": violations,
		}).Warn("Category validation failed")
		return response.NewValidationError("category validation failed", violations)
	}

	if err := repo.Category.UpdateCategory(ctx, cat); err != nil {
		return err
	}

	return repo.Commit()
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Category.GetCategoryByID(ctx, id); err != nil {
		return err
	}

	if err := repo.Category.DeleteCategory(ctx, id); err != nil {
		return err
	}

	return repo.Commit()
}
