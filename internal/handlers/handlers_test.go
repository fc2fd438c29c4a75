package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/core/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/SscSPs/till_reconciliation_app/internal/handlers"
	"github.com/SscSPs/till_reconciliation_app/internal/middleware"
	"github.com/SscSPs/till_reconciliation_app/internal/platform/config"
	"github.com/SscSPs/till_reconciliation_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	cfg                *config.Config
	mockHistoryService *MockHistoryService
	mockUserService    *MockUserService
	mockTokenService   *MockTokenService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	table, err := currencytable.Default()
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		IsProduction:      true,
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "till-test",
		LoginRateLimit:    "3-M",
	}
	suite.mockHistoryService = new(MockHistoryService)
	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)

	container := &portssvc.ServiceContainer{
		Reconciliation: services.NewReconciliationService(table),
		History:        suite.mockHistoryService,
		User:           suite.mockUserService,
		TokenService:   suite.mockTokenService,
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(testLogger()))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, suite.cfg, container, utils.InitializePosthogClient("", testLogger())))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// generateTestToken creates a JWT the auth middleware accepts.
func (suite *HandlerTestSuite) generateTestToken(userID, username string) string {
	token, _, err := utils.GenerateJWT(userID, username, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func scenarioCounts() []int64 {
	return []int64{4, 2, 10, 7, 2, 17, 15, 21, 10, 30}
}

// --- Public routes ---
func (suite *HandlerTestSuite) TestHealthAndHome() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
	suite.NotEmpty(w.Header().Get(middleware.RequestIDHeader))

	w = suite.do(http.MethodGet, "/", nil, "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestReconcile_Success() {
	w := suite.do(http.MethodPost, "/api/v1/reconcile", map[string]any{
		"currencyCode":  "USD",
		"drawerAmount":  100,
		"denominations": scenarioCounts(),
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.ReconcileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Submission.CurrencyCode)
	suite.Equal("$", resp.Submission.Symbol)
	suite.Equal("803.65", resp.Submission.Total.String())
	suite.Equal("100", resp.Submission.DrawerValues.Total.String())
	suite.Equal("6", resp.Submission.DrawerValues.ChangeTotal.String())
	suite.Equal("703.65", resp.Submission.DepositValues.Total.String())
	suite.Equal([]int64{0, 0, 0, 7, 2, 14, 13, 20, 9, 30}, resp.Submission.DrawerValues.Denominations)
	suite.Equal("0", resp.Submission.Overage.String())
	suite.Require().Len(resp.Submission.Values, 10)
	suite.Equal("0.25", resp.Submission.Values[6].Value.String())
}

func (suite *HandlerTestSuite) TestReconcile_LowercaseCurrencyCode() {
	w := suite.do(http.MethodPost, "/api/v1/reconcile", map[string]any{
		"currencyCode":  "usd",
		"drawerAmount":  100,
		"denominations": scenarioCounts(),
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.ReconcileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Submission.CurrencyCode)
	suite.Equal("803.65", resp.Submission.Total.String())
}

func (suite *HandlerTestSuite) TestReconcile_BadInput() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"negative amount", map[string]any{"currencyCode": "USD", "drawerAmount": -1, "denominations": scenarioCounts()}},
		{"negative count", map[string]any{"currencyCode": "USD", "drawerAmount": 100, "denominations": []int64{-1, 0, 0, 0, 0, 0, 0, 0, 0, 0}}},
		{"short vector", map[string]any{"currencyCode": "USD", "drawerAmount": 100, "denominations": []int64{1, 2}}},
		{"unknown currency", map[string]any{"currencyCode": "JPY", "drawerAmount": 100, "denominations": scenarioCounts()}},
		{"missing amount", map[string]any{"currencyCode": "USD", "denominations": scenarioCounts()}},
		{"malformed currency code", map[string]any{"currencyCode": "US1", "drawerAmount": 100, "denominations": scenarioCounts()}},
		{"count overflows total", map[string]any{"currencyCode": "USD", "drawerAmount": 100, "denominations": []int64{0, 0, 0, 1e16, 0, 0, 0, 0, 0, 0}}},
		{"amount beyond int64", map[string]any{"currencyCode": "USD", "drawerAmount": "1e30", "denominations": scenarioCounts()}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/reconcile", tt.body, "")
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func (suite *HandlerTestSuite) TestCurrencies() {
	w := suite.do(http.MethodGet, "/api/v1/currencies", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListCurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Currencies, 4)

	w = suite.do(http.MethodGet, "/api/v1/currencies/eur", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var eur dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &eur))
	suite.Equal("EUR", eur.CurrencyCode)

	w = suite.do(http.MethodGet, "/api/v1/currencies/XXX", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Auth routes ---
func (suite *HandlerTestSuite) TestLogin() {
	user := &domain.User{UserID: "u-1", Username: "till1"}
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "till1", "password1").Return(user, nil).Once()
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "till1", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("signed", time.Now().Add(time.Hour), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/token", dto.LoginRequest{Username: "till1", Password: "password1"}, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed", resp.Token)

	w = suite.do(http.MethodPost, "/api/v1/auth/token", dto.LoginRequest{Username: "till1", Password: "wrong"}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "till1", "wrong").Return(nil, apperrors.ErrUnauthorized)

	for i := 0; i < 3; i++ {
		w := suite.do(http.MethodPost, "/api/v1/auth/token", dto.LoginRequest{Username: "till1", Password: "wrong"}, "")
		suite.Equal(http.StatusUnauthorized, w.Code)
	}
	w := suite.do(http.MethodPost, "/api/v1/auth/token", dto.LoginRequest{Username: "till1", Password: "wrong"}, "")
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *HandlerTestSuite) TestRegister() {
	req := dto.CreateUserRequest{Username: "till1", Password: "password1"}
	user := &domain.User{UserID: "u-1", Username: "till1"}
	suite.mockUserService.On("CreateUser", mock.Anything, req).Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("signed", time.Now().Add(time.Hour), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, "")
	suite.Equal(http.StatusCreated, w.Code)

	suite.mockUserService.On("CreateUser", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()
	w = suite.do(http.MethodPost, "/api/v1/auth/register", req, "")
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", dto.CreateUserRequest{Username: "bad name!", Password: "password1"}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- History routes ---
func (suite *HandlerTestSuite) TestHistory_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/history/s-1", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/history/s-1", nil, "not-a-jwt")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockHistoryService.AssertNotCalled(suite.T(), "GetSubmission", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) sampleReport() *domain.SubmissionReport {
	table, err := currencytable.Default()
	suite.Require().NoError(err)
	amount := decimal.NewFromInt(100)
	result, err := services.NewReconciliationService(table).Reconcile(suite.T().Context(), dto.ReconcileRequest{
		CurrencyCode:  "USD",
		DrawerAmount:  &amount,
		Denominations: scenarioCounts(),
	})
	suite.Require().NoError(err)
	return &domain.SubmissionReport{
		Submission: domain.Submission{
			SubmissionID:  "s-1",
			UserID:        "u-1",
			CurrencyCode:  "USD",
			DrawerAmount:  amount,
			Denominations: scenarioCounts(),
			HistoryColor:  120,
			CreatedAt:     time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		},
		Result: result,
	}
}

func (suite *HandlerTestSuite) TestHistory_Submit() {
	token := suite.generateTestToken("u-1", "till1")
	suite.mockHistoryService.On("Submit", mock.Anything, mock.MatchedBy(func(req dto.SubmitHistoryRequest) bool {
		return req.CurrencyCode == "USD" && req.Note != nil && *req.Note == "evening"
	}), "u-1").Return(suite.sampleReport(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/history/submit", map[string]any{
		"currencyCode":  "USD",
		"drawerAmount":  "100",
		"denominations": scenarioCounts(),
		"note":          "evening",
	}, token)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.SubmissionReportEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("s-1", resp.Submission.ID)
	suite.Equal(120, resp.Submission.HistoryColor)
	suite.Equal("803.65", resp.Submission.Total.String())
}

func (suite *HandlerTestSuite) TestHistory_SubmitInvalidInput() {
	token := suite.generateTestToken("u-1", "till1")
	suite.mockHistoryService.On("Submit", mock.Anything, mock.Anything, "u-1").Return(nil, apperrors.ErrMalformedVector).Once()

	w := suite.do(http.MethodPost, "/api/v1/history/submit", map[string]any{
		"currencyCode":  "USD",
		"drawerAmount":  100,
		"denominations": []int64{1},
	}, token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestHistory_Get() {
	token := suite.generateTestToken("u-1", "till1")
	suite.mockHistoryService.On("GetSubmission", mock.Anything, "s-1", "u-1").Return(suite.sampleReport(), nil).Once()
	suite.mockHistoryService.On("GetSubmission", mock.Anything, "s-2", "u-1").Return(nil, apperrors.ErrUnauthorized).Once()
	suite.mockHistoryService.On("GetSubmission", mock.Anything, "s-3", "u-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockHistoryService.On("GetSubmission", mock.Anything, "s-4", "u-1").Return(nil, errors.New("db down")).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/history/s-1", nil, token).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/history/s-2", nil, token).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/history/s-3", nil, token).Code)

	w := suite.do(http.MethodGet, "/api/v1/history/s-4", nil, token)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "db down")
}

func (suite *HandlerTestSuite) TestHistory_ListUser() {
	token := suite.generateTestToken("u-1", "till1")
	created := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	suite.mockHistoryService.On("ListUserHistory", mock.Anything, "till1", "u-1").
		Return([]domain.SubmissionSummary{{SubmissionID: "s-1", CreatedAt: created, HistoryColor: 15}}, nil).Once()
	suite.mockHistoryService.On("ListUserHistory", mock.Anything, "till2", "u-1").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodGet, "/api/v1/history/user/till1", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.History, 1)
	suite.Equal("s-1", resp.History[0].ID)

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/history/user/till2", nil, token).Code)
}

func (suite *HandlerTestSuite) TestHistory_AddNote() {
	token := suite.generateTestToken("u-1", "till1")
	note := "recounted"
	updated := suite.sampleReport().Submission
	updated.Note = &note
	suite.mockHistoryService.On("AddNote", mock.Anything, "s-1", note, "u-1").Return(&updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/history/s-1/add-note", dto.AddNoteRequest{Note: note}, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.SubmissionRecordEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(note, *resp.Submission.Note)
	suite.Equal("100", resp.Submission.DrawerAmount.String())

	w = suite.do(http.MethodPut, "/api/v1/history/s-1/add-note", map[string]any{}, token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestHistory_Delete() {
	token := suite.generateTestToken("u-1", "till1")
	suite.mockHistoryService.On("DeleteSubmission", mock.Anything, "s-1", "u-1").Return(nil).Once()
	suite.mockHistoryService.On("DeleteUserHistory", mock.Anything, "till1", "u-1").Return(nil).Once()
	suite.mockHistoryService.On("DeleteUserHistory", mock.Anything, "till1", "u-1").Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/history/s-1/delete", nil, token)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"success"}`, w.Body.String())

	suite.Equal(http.StatusOK, suite.do(http.MethodDelete, "/api/v1/history/user/till1/delete-history", nil, token).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/history/user/till1/delete-history", nil, token).Code)
}

// --- User routes ---
func (suite *HandlerTestSuite) TestUser_Me() {
	token := suite.generateTestToken("u-1", "till1")
	suite.mockUserService.On("GetUserByID", mock.Anything, "u-1").
		Return(&domain.User{UserID: "u-1", Username: "till1", AuthProvider: domain.ProviderLocal}, nil).Once()
	suite.mockUserService.On("ChangePassword", mock.Anything, "u-1", "password2").Return(nil).Once()
	suite.mockUserService.On("DeleteUser", mock.Anything, "u-1").Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	var me dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &me))
	suite.Equal("till1", me.Username)
	suite.Equal("local", me.AuthProvider)

	suite.Equal(http.StatusOK, suite.do(http.MethodPatch, "/api/v1/users/me/password", dto.ChangePasswordRequest{Password: "password2"}, token).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPatch, "/api/v1/users/me/password", dto.ChangePasswordRequest{Password: "x"}, token).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodDelete, "/api/v1/users/me", nil, token).Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
