package categoryService

import (
	"FinancialBack/internal/api/category"
	categoryRepository "FinancialBack/internal/api/category/repository"
	"FinancialBack/internal/entity"
	"FinancialBack/pkg/response"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeCategoryStore struct {
	byID      map[int64]entity.Category
	order     []int64
	created   []entity.Category
	updated   []entity.Category
	deleted   []int64
	nextID    int64
	deleteErr error
}

func (f *fakeCategoryStore) CreateCategory(_ context.Context, c entity.Category) (int64, error) {
	f.created = append(f.created, c)
	return f.nextID, nil
}

func (f *fakeCategoryStore) GetCategoryByID(_ context.Context, id int64) (entity.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryStore) GetCategories(_ context.Context, finality int, _ int, _ int) ([]entity.Category, error) {
	categories := make([]entity.Category, 0, len(f.order))
	for _, id := range f.order {
		c := f.byID[id]
		if finality <= -1 || int(c.Finality) == finality {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (f *fakeCategoryStore) UpdateCategory(_ context.Context, c entity.Category) error {
	f.updated = append(f.updated, c)
	return nil
}

func (f *fakeCategoryStore) DeleteCategory(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepository struct {
	categories *fakeCategoryStore
	committed  bool
}

func (f *fakeRepository) NewClient(_ bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Category: f.categories,
		Commit: func() error {
			f.committed = true
			return nil
		},
		Rollback: func() error { return nil },
	}, nil
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories: &fakeCategoryStore{byID: map[int64]entity.Category{}, nextID: 1},
	}
}

func (f *fakeRepository) seed(categories ...entity.Category) {
	for _, c := range categories {
		f.categories.byID[c.ID] = c
		f.categories.order = append(f.categories.order, c.ID)
	}
}

func newTestService(repo *fakeRepository) ICategoryService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCategoryService(logger, repo)
}

func TestCreateCategory_Success(t *testing.T) {
	repo := newFakeRepository()
	repo.categories.nextID = 5
	svc := newTestService(repo)

	id, err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		Description: "Alimentação",
		Finality:    "expense",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.True(t, repo.committed)

	require.Len(t, repo.categories.created, 1)
	assert.Equal(t, entity.FinalityExpense, repo.categories.created[0].Finality)
}

func TestCreateCategory_EmptyDescription(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		Description: "",
		Finality:    "expense",
	})

	var validationErr *response.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "description is required")
	assert.Empty(t, repo.categories.created)
	assert.False(t, repo.committed)
}

func TestCreateCategory_UnknownFinality(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		Description: "Alimentação",
		Finality:    "savings",
	})

	assert.ErrorIs(t, err, category.ErrInvalidFinality)
	assert.Empty(t, repo.categories.created)
}

func TestGetCategories_StoreOrder(t *testing.T) {
	repo := newFakeRepository()
	repo.seed(
		entity.Category{ID: 1, Description: "Salary", Finality: entity.FinalityIncome},
		entity.Category{ID: 2, Description: "Rent", Finality: entity.FinalityExpense},
	)
	svc := newTestService(repo)

	categories, err := svc.GetCategories(context.Background(), 1, 10, -1)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Salary", categories[0].Description)
	assert.Equal(t, "Rent", categories[1].Description)
}

func TestGetCategories_FinalityFilter(t *testing.T) {
	repo := newFakeRepository()
	repo.seed(
		entity.Category{ID: 1, Description: "Salary", Finality: entity.FinalityIncome},
		entity.Category{ID: 2, Description: "Rent", Finality: entity.FinalityExpense},
		entity.Category{ID: 3, Description: "Adjustments", Finality: entity.FinalityBoth},
	)
	svc := newTestService(repo)

	categories, err := svc.GetCategories(context.Background(), 1, 10, int(entity.FinalityExpense))

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Rent", categories[0].Description)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	err := svc.UpdateCategory(context.Background(), 9, category.UpdateCategoryRequest{
		Description: "Moradia",
		Finality:    "expense",
	})

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.Empty(t, repo.categories.updated)
}

func TestUpdateCategory_Success(t *testing.T) {
	repo := newFakeRepository()
	repo.seed(entity.Category{ID: 9, Description: "Rent", Finality: entity.FinalityExpense})
	svc := newTestService(repo)

	err := svc.UpdateCategory(context.Background(), 9, category.UpdateCategoryRequest{
		Description: "Housing",
		Finality:    "both",
	})

	require.NoError(t, err)
	require.Len(t, repo.categories.updated, 1)
	assert.Equal(t, "Housing", repo.categories.updated[0].Description)
	assert.Equal(t, entity.FinalityBoth, repo.categories.updated[0].Finality)
	assert.True(t, repo.committed)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	err := svc.DeleteCategory(context.Background(), 9)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.Empty(t, repo.categories.deleted)
}

func TestDeleteCategory_StillReferenced(t *testing.T) {
	repo := newFakeRepository()
	repo.seed(entity.Category{ID: 9, Description: "Rent", Finality: entity.FinalityExpense})
	repo.categories.deleteErr = category.ErrCategoryInUse
	svc := newTestService(repo)

	err := svc.DeleteCategory(context.Background(), 9)
	assert.ErrorIs(t, err, category.ErrCategoryInUse)
	assert.False(t, repo.committed)
}

func TestDeleteCategory_Success(t *testing.T) {
	repo := newFakeRepository()
	repo.seed(entity.Category{ID: 9, Description: "Rent", Finality: entity.FinalityExpense})
	svc := newTestService(repo)

	require.NoError(t, svc.DeleteCategory(context.Background(), 9))
	assert.Equal(t, []int64{9}, repo.categories.deleted)
	assert.True(t, repo.committed)
}
