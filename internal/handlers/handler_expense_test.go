package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitnest/expense_tracker_app/internal/apperrors"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
	"github.com/splitnest/expense_tracker_app/internal/utils"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) SaveSession(ctx context.Context, req dto.SaveSessionRequest) (*domain.SavedSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedSession), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, userID string) (*domain.SavedSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedSession), args.Error(1)
}

func (m *MockSessionService) UpdateSession(ctx context.Context, userID string, req dto.UpdateSessionRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockSessionService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockExpenseService *MockExpenseService
	mockSessionService *MockSessionService
	mockUserService    *MockUserService
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	suite.mockExpenseService = new(MockExpenseService)
	suite.mockSessionService = new(MockSessionService)
	suite.mockUserService = new(MockUserService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		User:    suite.mockUserService,
		Expense: suite.mockExpenseService,
		Session: suite.mockSessionService,
	})
}

func (suite *ExpenseHandlerTestSuite) generateTestToken(userID, email string) string {
	token, err := utils.GenerateJWT(userID, email, testJWTSecret, time.Hour, "eta-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func createExpenseBody(userID string) gin.H {
	return gin.H{
		"userid":          userID,
		"name":            "Groceries",
		"amount":          "42.50",
		"expensedate":     "2024-03-01",
		"expensecategory": "Food",
		"payment":         "Card",
		"comment":         "weekly shop",
	}
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	created := &domain.Expense{
		ExpenseID:       "e1",
		UserID:          "user-1",
		Name:            "Groceries",
		Amount:          decimal.RequireFromString("42.50"),
		ExpenseDate:     "2024-03-01",
		ExpenseCategory: "Food",
		Payment:         "Card",
	}
	suite.mockExpenseService.On("CreateExpense", mock.Anything, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
		return req.UserID == "user-1" && req.Amount.Equal(decimal.RequireFromString("42.50"))
	})).Return(created, nil).Once()

	token := suite.generateTestToken("user-1", "ann@example.com")
	req, _ := http.NewRequest(http.MethodPost, "/expense/createexpense", jsonBody(suite.T(), createExpenseBody("user-1")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope(suite.T(), w.Body)
	suite.Equal("Expense Added", env.Message)
	suite.True(env.Status)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_BodyUserMismatchUnauthorized() {
	// Valid token for one account, body naming another
	token := suite.generateTestToken("user-2", "bob@example.com")
	req, _ := http.NewRequest(http.MethodPost, "/expense/createexpense", jsonBody(suite.T(), createExpenseBody("user-1")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(suite.T(), w.Body)
	suite.Equal("User not authenticated", env.Message)
	suite.False(env.Status)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_MissingTokenForbidden() {
	req, _ := http.NewRequest(http.MethodPost, "/expense/createexpense", jsonBody(suite.T(), createExpenseBody("user-1")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_ExpiredTokenForbidden() {
	expired, err := utils.GenerateJWT("user-1", "ann@example.com", testJWTSecret, -time.Minute, "eta-test")
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/expense/createexpense", jsonBody(suite.T(), createExpenseBody("user-1")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Token has expired", decodeEnvelope(suite.T(), w.Body).Message)
}

func (suite *ExpenseHandlerTestSuite) TestGetAllExpenses_Success() {
	stored := []domain.Expense{
		{ExpenseID: "e1", UserID: "user-1", Name: "First"},
		{ExpenseID: "e2", UserID: "user-1", Name: "Second"},
	}
	suite.mockExpenseService.On("ListExpenses", mock.Anything, "user-1").Return(stored, nil).Once()

	token := suite.generateTestToken("user-1", "ann@example.com")
	req, _ := http.NewRequest(http.MethodGet, "/expense/getallexpense/user-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope(suite.T(), w.Body)
	suite.Equal("Expenses Fetched", env.Message)

	var expenses []dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &expenses))
	suite.Require().Len(expenses, 2)
	suite.Equal("e1", expenses[0].ExpenseID)
	suite.Equal("e2", expenses[1].ExpenseID)
}

func (suite *ExpenseHandlerTestSuite) TestGetSingleExpense_NotFound() {
	suite.mockExpenseService.On("GetExpense", mock.Anything, "user-1", "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken("user-1", "ann@example.com")
	req, _ := http.NewRequest(http.MethodGet, "/expense/getsingleexpense/user-1/ghost", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Expense not found", decodeEnvelope(suite.T(), w.Body).Message)
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_OtherOwnerUnauthorized() {
	token := suite.generateTestToken("user-2", "bob@example.com")
	req, _ := http.NewRequest(http.MethodDelete, "/expense/deleteexepense/user-1/e1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestSaveData_Success() {
	saved := &domain.SavedSession{SessionID: "s1", UserID: "user-1", Username: "annexample"}
	suite.mockSessionService.On("SaveSession", mock.Anything, mock.AnythingOfType("dto.SaveSessionRequest")).
		Return(saved, nil).Once()

	token := suite.generateTestToken("user-1", "ann@example.com")
	body := jsonBody(suite.T(), gin.H{
		"userid":         "user-1",
		"username":       "annexample",
		"name":           "Ann Example",
		"firstlogindate": "2024-03-01",
		"lastlogindate":  "2024-03-02",
		"expenselogged":  3,
	})
	req, _ := http.NewRequest(http.MethodPost, "/expense/savedata", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Data Saved", decodeEnvelope(suite.T(), w.Body).Message)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestUpdateSaveData_NoSessionNotFound() {
	suite.mockSessionService.On("UpdateSession", mock.Anything, "user-1", mock.AnythingOfType("dto.UpdateSessionRequest")).
		Return(apperrors.ErrNotFound).Once()

	token := suite.generateTestToken("user-1", "ann@example.com")
	body := jsonBody(suite.T(), gin.H{"lastlogindate": "2024-03-02", "expenselogged": 4})
	req, _ := http.NewRequest(http.MethodPost, "/expense/updatesavedata/user-1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Session not found", decodeEnvelope(suite.T(), w.Body).Message)
}

func (suite *ExpenseHandlerTestSuite) TestSaveCategories_Success() {
	suite.mockUserService.On("SaveCategories", mock.Anything, "user-1", []string{"Food", "Travel"}).
		Return(nil).Once()

	token := suite.generateTestToken("user-1", "ann@example.com")
	body := jsonBody(suite.T(), gin.H{"categories": []string{"Food", "Travel"}})
	req, _ := http.NewRequest(http.MethodPost, "/expense/savecategory/user-1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Categories Saved", decodeEnvelope(suite.T(), w.Body).Message)
	suite.mockUserService.AssertExpectations(suite.T())
}

func TestExpenseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
