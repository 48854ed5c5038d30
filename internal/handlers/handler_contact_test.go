package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	"github.com/webgroup16/contacts_app/internal/core/domain"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/dto"
	"github.com/webgroup16/contacts_app/internal/handlers"
	"github.com/webgroup16/contacts_app/internal/middleware"
)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) CreateContact(ctx context.Context, userID string, req dto.CreateContactRequest) (*domain.Contact, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}
func (m *MockContactService) GetContactByID(ctx context.Context, userID string, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, userID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}
func (m *MockContactService) ListContacts(ctx context.Context, userID string, skip int, limit int) ([]domain.Contact, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}
func (m *MockContactService) UpdateContact(ctx context.Context, userID string, contactID string, req dto.CreateContactRequest) (*domain.Contact, error) {
	args := m.Called(ctx, userID, contactID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}
func (m *MockContactService) DeleteContact(ctx context.Context, userID string, contactID string) error {
	args := m.Called(ctx, userID, contactID)
	return args.Error(0)
}
func (m *MockContactService) SearchContacts(ctx context.Context, userID string, query string) ([]domain.Contact, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}
func (m *MockContactService) ListUpcomingBirthdays(ctx context.Context, userID string, today time.Time) ([]domain.Contact, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

// --- Test Suite ---
type ContactHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockContactService *MockContactService
	mockTokenService   *MockTokenService
	currentUser        *domain.User
}

func (suite *ContactHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterCustomValidators())

	suite.router = gin.New()
	suite.mockContactService = new(MockContactService)
	suite.mockTokenService = new(MockTokenService)
	suite.currentUser = &domain.User{
		UserID:    uuid.NewString(),
		Username:  "owner",
		Email:     "owner@example.com",
		Confirmed: true,
	}

	h := handlers.NewContactHandler(suite.mockContactService)

	contacts := suite.router.Group("/api/contacts", middleware.AuthMiddleware(suite.mockTokenService))
	contacts.POST("/", h.CreateContact)
	contacts.GET("/", h.ListContacts)
	contacts.GET("/search", h.SearchContacts)
	contacts.GET("/upcoming_birthdays/", h.ListUpcomingBirthdays)
	contacts.GET("/:contactID", h.GetContact)
	contacts.PUT("/:contactID", h.UpdateContact)
	contacts.DELETE("/:contactID", h.DeleteContact)
}

// do performs an authenticated request as the suite's current user.
func (suite *ContactHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-access-token")

	suite.mockTokenService.On("ResolveCurrentUser", mock.Anything, "test-access-token").
		Return(suite.currentUser, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validContactPayload() dto.CreateContactRequest {
	return dto.CreateContactRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     "+380501234567",
		Birthday:  "1906-12-09",
	}
}

// --- CreateContact Tests ---

func (suite *ContactHandlerTestSuite) TestCreateContact_Success() {
	payload := validContactPayload()
	created := &domain.Contact{
		ContactID: uuid.NewString(),
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Birthday:  time.Date(1906, time.December, 9, 0, 0, 0, 0, time.UTC),
		UserID:    suite.currentUser.UserID,
	}

	suite.mockContactService.On("CreateContact", mock.Anything, suite.currentUser.UserID, payload).
		Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/contacts/", payload)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ContactResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ContactID, resp.ContactID)
	suite.Equal("1906-12-09", resp.Birthday)
	suite.mockContactService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestCreateContact_DuplicateEmail() {
	payload := validContactPayload()

	suite.mockContactService.On("CreateContact", mock.Anything, suite.currentUser.UserID, payload).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/contacts/", payload)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Email already exists")
	suite.mockContactService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestCreateContact_ConcurrentDuplicate() {
	payload := validContactPayload()

	suite.mockContactService.On("CreateContact", mock.Anything, suite.currentUser.UserID, payload).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.do(http.MethodPost, "/api/contacts/", payload)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Integrity error")
	suite.mockContactService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestCreateContact_FutureBirthdayRejected() {
	payload := validContactPayload()
	payload.Birthday = time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	w := suite.do(http.MethodPost, "/api/contacts/", payload)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockContactService.AssertNotCalled(suite.T(), "CreateContact", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ContactHandlerTestSuite) TestCreateContact_NoAuthHeader() {
	payload, err := json.Marshal(validContactPayload())
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockContactService.AssertNotCalled(suite.T(), "CreateContact", mock.Anything, mock.Anything, mock.Anything)
}

// --- Read Tests ---

func (suite *ContactHandlerTestSuite) TestGetContact_NotFound() {
	contactID := uuid.NewString()

	suite.mockContactService.On("GetContactByID", mock.Anything, suite.currentUser.UserID, contactID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/contacts/"+contactID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Contact not found")
}

func (suite *ContactHandlerTestSuite) TestListContacts_DefaultPagination() {
	expected := []domain.Contact{
		{ContactID: uuid.NewString(), FirstName: "A", Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ContactID: uuid.NewString(), FirstName: "B", Birthday: time.Date(1991, 2, 2, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockContactService.On("ListContacts", mock.Anything, suite.currentUser.UserID, 0, 100).
		Return(expected, nil).Once()

	w := suite.do(http.MethodGet, "/api/contacts/", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ContactResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockContactService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestListContacts_ExplicitPagination() {
	suite.mockContactService.On("ListContacts", mock.Anything, suite.currentUser.UserID, 20, 10).
		Return([]domain.Contact{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/contacts/?skip=20&limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockContactService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestSearchContacts_RequiresQuery() {
	w := suite.do(http.MethodGet, "/api/contacts/search", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockContactService.AssertNotCalled(suite.T(), "SearchContacts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ContactHandlerTestSuite) TestSearchContacts_ScopedToCurrentUser() {
	expected := []domain.Contact{{ContactID: uuid.NewString(), FirstName: "Grace"}}

	suite.mockContactService.On("SearchContacts", mock.Anything, suite.currentUser.UserID, "grace").
		Return(expected, nil).Once()

	w := suite.do(http.MethodGet, "/api/contacts/search?query=grace", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockContactService.AssertExpectations(suite.T())
}

func (suite *ContactHandlerTestSuite) TestListUpcomingBirthdays() {
	expected := []domain.Contact{{ContactID: uuid.NewString()}}

	suite.mockContactService.On("ListUpcomingBirthdays", mock.Anything, suite.currentUser.UserID, mock.AnythingOfType("time.Time")).
		Return(expected, nil).Once()

	w := suite.do(http.MethodGet, "/api/contacts/upcoming_birthdays/", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ContactResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

// --- Update/Delete Tests ---

func (suite *ContactHandlerTestSuite) TestUpdateContact_NotFound() {
	contactID := uuid.NewString()
	payload := validContactPayload()

	suite.mockContactService.On("UpdateContact", mock.Anything, suite.currentUser.UserID, contactID, payload).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/contacts/"+contactID, payload)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ContactHandlerTestSuite) TestDeleteContact_Success() {
	contactID := uuid.NewString()

	suite.mockContactService.On("DeleteContact", mock.Anything, suite.currentUser.UserID, contactID).
		Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/contacts/"+contactID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *ContactHandlerTestSuite) TestDeleteContact_NotOwned() {
	contactID := uuid.NewString()

	suite.mockContactService.On("DeleteContact", mock.Anything, suite.currentUser.UserID, contactID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/contacts/"+contactID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Contact not found")
}

func (suite *ContactHandlerTestSuite) TestRoutesRejectForeignUserScope() {
	// The handler must pass the authenticated user's id, never anything from
	// the request, so a fabricated query parameter changes nothing.
	suite.mockContactService.On("ListContacts", mock.Anything, suite.currentUser.UserID, 0, 100).
		Return([]domain.Contact{}, nil).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/api/contacts/?user_id=%s", uuid.NewString()), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockContactService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestContactHandler(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
