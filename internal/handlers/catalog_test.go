package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

func TestIngredientCategoryHandlers(t *testing.T) {
	desc := "Milk products"
	dairy := &models.IngredientCategory{ID: 1, Title: "Dairy", Description: &desc}

	tests := []struct {
		name         string
		handler      func(svc IngredientCategoryService) http.HandlerFunc
		method       string
		body         string
		principal    *models.User
		id           string
		mockSetup    func(m *MockIngredientCategoryService)
		expectedCode int
		expectedBody string
	}{
		{
			name:      "create",
			handler:   NewCreateIngredientCategoryHandler,
			method:    http.MethodPost,
			body:      `{"title":"Dairy","description":"Milk products"}`,
			principal: admin,
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().CreateIngredientCategory(gomock.Any(), admin, "Dairy", &desc).Return(dairy, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"title":"Dairy","description":"Milk products"}`,
		},
		{
			name:      "create duplicate",
			handler:   NewCreateIngredientCategoryHandler,
			method:    http.MethodPost,
			body:      `{"title":"Dairy"}`,
			principal: admin,
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().CreateIngredientCategory(gomock.Any(), admin, "Dairy", gomock.Nil()).
					Return(nil, services.ErrIngredientCategoryExists)
			},
			expectedCode: http.StatusFound,
			expectedBody: `{"error":"ingredient category already exists"}`,
		},
		{
			name:      "create forbidden",
			handler:   NewCreateIngredientCategoryHandler,
			method:    http.MethodPost,
			body:      `{"title":"Dairy"}`,
			principal: member,
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().CreateIngredientCategory(gomock.Any(), member, "Dairy", gomock.Nil()).
					Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"you do not have enough permissions"}`,
		},
		{
			name:         "create missing title",
			handler:      NewCreateIngredientCategoryHandler,
			method:       http.MethodPost,
			body:         `{"description":"x"}`,
			principal:    admin,
			mockSetup:    func(m *MockIngredientCategoryService) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"error":"title: failed on required"}`,
		},
		{
			name:      "list",
			handler:   NewListIngredientCategoriesHandler,
			method:    http.MethodGet,
			principal: member,
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().ListIngredientCategories(gomock.Any()).Return([]models.IngredientCategory{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:      "get missing",
			handler:   NewGetIngredientCategoryHandler,
			method:    http.MethodGet,
			principal: member,
			id:        "9999",
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().GetIngredientCategory(gomock.Any(), int64(9999)).Return(nil, services.ErrIngredientCategoryNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"ingredient category not found"}`,
		},
		{
			name:         "get bad id",
			handler:      NewGetIngredientCategoryHandler,
			method:       http.MethodGet,
			principal:    member,
			id:           "abc",
			mockSetup:    func(m *MockIngredientCategoryService) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"error":"invalid id: abc"}`,
		},
		{
			name:      "update",
			handler:   NewUpdateIngredientCategoryHandler,
			method:    http.MethodPut,
			body:      `{"title":"Dairy","description":"Milk products"}`,
			principal: admin,
			id:        "1",
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().UpdateIngredientCategory(gomock.Any(), admin, int64(1), "Dairy", &desc).Return(dairy, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"title":"Dairy","description":"Milk products"}`,
		},
		{
			name:      "delete in use",
			handler:   NewDeleteIngredientCategoryHandler,
			method:    http.MethodDelete,
			principal: admin,
			id:        "1",
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().DeleteIngredientCategory(gomock.Any(), admin, int64(1)).Return(services.ErrIngredientCategoryInUse)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"ingredient category is in use"}`,
		},
		{
			name:      "delete",
			handler:   NewDeleteIngredientCategoryHandler,
			method:    http.MethodDelete,
			principal: admin,
			id:        "2",
			mockSetup: func(m *MockIngredientCategoryService) {
				m.EXPECT().DeleteIngredientCategory(gomock.Any(), admin, int64(2)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockIngredientCategoryService(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			tt.handler(mockSvc).ServeHTTP(rr, newRequest(tt.method, "/", tt.body, tt.principal, tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestIngredientHandlers(t *testing.T) {
	milk := &models.Ingredient{ID: 5, Title: "Milk", CategoryID: 1}

	tests := []struct {
		name         string
		handler      func(svc IngredientService) http.HandlerFunc
		method       string
		body         string
		id           string
		mockSetup    func(m *MockIngredientService)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "create",
			handler: NewCreateIngredientHandler,
			method:  http.MethodPost,
			body:    `{"title":"Milk","category_id":1}`,
			mockSetup: func(m *MockIngredientService) {
				m.EXPECT().CreateIngredient(gomock.Any(), admin, "Milk", int64(1)).Return(milk, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":5,"title":"Milk","category_id":1}`,
		},
		{
			name:    "create unknown category",
			handler: NewCreateIngredientHandler,
			method:  http.MethodPost,
			body:    `{"title":"Milk","category_id":42}`,
			mockSetup: func(m *MockIngredientService) {
				m.EXPECT().CreateIngredient(gomock.Any(), admin, "Milk", int64(42)).Return(nil, services.ErrIngredientCategoryNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"ingredient category not found"}`,
		},
		{
			name:    "list",
			handler: NewListIngredientsHandler,
			method:  http.MethodGet,
			mockSetup: func(m *MockIngredientService) {
				m.EXPECT().ListIngredients(gomock.Any()).Return([]models.Ingredient{*milk}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":5,"title":"Milk","category_id":1}]`,
		},
		{
			name:    "get",
			handler: NewGetIngredientHandler,
			method:  http.MethodGet,
			id:      "5",
			mockSetup: func(m *MockIngredientService) {
				m.EXPECT().GetIngredient(gomock.Any(), int64(5)).Return(milk, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":5,"title":"Milk","category_id":1}`,
		},
		{
			name:    "update missing",
			handler: NewUpdateIngredientHandler,
			method:  http.MethodPut,
			body:    `{"title":"Cream","category_id":1}`,
			id:      "9999",
			mockSetup: func(m *MockIngredientService) {
				m.EXPECT().UpdateIngredient(gomock.Any(), admin, int64(9999), "Cream", int64(1)).Return(nil, services.ErrIngredientNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"ingredient not found"}`,
		},
		{
			name:         "update malformed",
			handler:      NewUpdateIngredientHandler,
			method:       http.MethodPut,
			body:         `not json`,
			id:           "5",
			mockSetup:    func(m *MockIngredientService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:    "delete",
			handler: NewDeleteIngredientHandler,
			method:  http.MethodDelete,
			id:      "5",
			mockSetup: func(m *MockIngredientService) {
				m.EXPECT().DeleteIngredient(gomock.Any(), admin, int64(5)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockIngredientService(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			tt.handler(mockSvc).ServeHTTP(rr, newRequest(tt.method, "/", tt.body, admin, tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
