package categoryHandler

import (
	"FinancialBack/internal/api/category"
	"FinancialBack/internal/entity"
	"FinancialBack/internal/middleware"
	"FinancialBack/pkg/response"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeCategoryService struct {
	categories []entity.Category
	createID   int64
	err        error

	lastPageNumber int
	lastPageSize   int
	lastFinality   int
}

func (f *fakeCategoryService) CreateCategory(_ context.Context, _ category.CreateCategoryRequest) (int64, error) {
	return f.createID, f.err
}

func (f *fakeCategoryService) GetCategoryByID(_ context.Context, id int64) (entity.Category, error) {
	if f.err != nil {
		return entity.Category{}, f.err
	}
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Category{}, category.ErrCategoryNotFound
}

func (f *fakeCategoryService) GetCategories(_ context.Context, pageNumber int, pageSize int, finality int) ([]entity.Category, error) {
	f.lastPageNumber = pageNumber
	f.lastPageSize = pageSize
	f.lastFinality = finality
	return f.categories, f.err
}

func (f *fakeCategoryService) UpdateCategory(_ context.Context, _ int64, _ category.UpdateCategoryRequest) error {
	return f.err
}

func (f *fakeCategoryService) DeleteCategory(_ context.Context, _ int64) error {
	return f.err
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(svc *fakeCategoryService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mw := middleware.New(logger)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())

	New(logger, validator.New(), mw, svc).Start(app)

	return app
}

func TestGetCategories(t *testing.T) {
	svc := &fakeCategoryService{categories: []entity.Category{
		{ID: 1, Description: "Salary", Finality: entity.FinalityIncome},
		{ID: 2, Description: "Rent", Finality: entity.FinalityExpense},
	}}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/category/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "categories retrieved successfully", env.Message)

	var items []category.CategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "income", items[0].Finality)
	assert.Equal(t, "expense", items[1].Finality)

	assert.Equal(t, 1, svc.lastPageNumber)
	assert.Equal(t, 10, svc.lastPageSize)
	assert.Equal(t, -1, svc.lastFinality)
}

func TestGetCategories_QueryParams(t *testing.T) {
	svc := &fakeCategoryService{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/category/?pageNumber=2&pageSize=5&finality=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 2, svc.lastPageNumber)
	assert.Equal(t, 5, svc.lastPageSize)
	assert.Equal(t, 1, svc.lastFinality)
}

func TestGetCategories_ClampsPagination(t *testing.T) {
	svc := &fakeCategoryService{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/category/?pageNumber=0&pageSize=-5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 1, svc.lastPageNumber)
	assert.Equal(t, 10, svc.lastPageSize)
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	app := newTestApp(&fakeCategoryService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/category/9", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "category not found", env.Message)
}

func TestGetCategoryByID_BadID(t *testing.T) {
	app := newTestApp(&fakeCategoryService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/category/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCategory(t *testing.T) {
	app := newTestApp(&fakeCategoryService{createID: 7})

	req := httptest.NewRequest("POST", "/category/",
		strings.NewReader(`{"description":"Alimentação","finality":"expense"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "category created successfully", env.Message)

	var created category.CategoryCreatedResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(7), created.ID)
}

func TestCreateCategory_MissingFinality(t *testing.T) {
	app := newTestApp(&fakeCategoryService{})

	req := httptest.NewRequest("POST", "/category/", strings.NewReader(`{"description":"Alimentação"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCategory_ViolationsInBody(t *testing.T) {
	app := newTestApp(&fakeCategoryService{
		err: response.NewValidationError("category validation failed", []string{"description is required"}),
	})

	req := httptest.NewRequest("POST", "/category/", strings.NewReader(`{"description":"","finality":"expense"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "category validation failed", env.Message)

	var violations []string
	require.NoError(t, json.Unmarshal(env.Data, &violations))
	assert.Equal(t, []string{"description is required"}, violations)
}

func TestUpdateCategory(t *testing.T) {
	app := newTestApp(&fakeCategoryService{})

	req := httptest.NewRequest("PUT", "/category/3",
		strings.NewReader(`{"description":"Moradia","finality":"expense"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDeleteCategory(t *testing.T) {
	app := newTestApp(&fakeCategoryService{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/category/3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDeleteCategory_StillReferenced(t *testing.T) {
	app := newTestApp(&fakeCategoryService{err: category.ErrCategoryInUse})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/category/3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
