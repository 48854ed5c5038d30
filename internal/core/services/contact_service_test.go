package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	"github.com/webgroup16/contacts_app/internal/core/domain"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/core/services"
	"github.com/webgroup16/contacts_app/internal/dto"
)

// --- Mock ContactRepository (based on ContactService usage) ---
type MockContactRepository struct {
	mock.Mock
	CreateContactFn                   func(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
	FindContactByIDFn                 func(ctx context.Context, contactID string, userID string) (*domain.Contact, error)
	FindContactsFn                    func(ctx context.Context, userID string, limit int, offset int) ([]domain.Contact, error)
	UpdateContactFn                   func(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
	DeleteContactFn                   func(ctx context.Context, contactID string, userID string) (bool, error)
	SearchContactsFn                  func(ctx context.Context, userID string, query string) ([]domain.Contact, error)
	FindContactsWithBirthdayBetweenFn func(ctx context.Context, userID string, start, end time.Time) ([]domain.Contact, error)
}

func (m *MockContactRepository) CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if m.CreateContactFn != nil {
		return m.CreateContactFn(ctx, contact)
	}
	args := m.Called(ctx, contact)
	var c *domain.Contact
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Contact)
	}
	return c, args.Error(1)
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string, userID string) (*domain.Contact, error) {
	if m.FindContactByIDFn != nil {
		return m.FindContactByIDFn(ctx, contactID, userID)
	}
	args := m.Called(ctx, contactID, userID)
	var c *domain.Contact
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Contact)
	}
	return c, args.Error(1)
}

func (m *MockContactRepository) FindContacts(ctx context.Context, userID string, limit int, offset int) ([]domain.Contact, error) {
	if m.FindContactsFn != nil {
		return m.FindContactsFn(ctx, userID, limit, offset)
	}
	args := m.Called(ctx, userID, limit, offset)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if m.UpdateContactFn != nil {
		return m.UpdateContactFn(ctx, contact)
	}
	args := m.Called(ctx, contact)
	var c *domain.Contact
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Contact)
	}
	return c, args.Error(1)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string, userID string) (bool, error) {
	if m.DeleteContactFn != nil {
		return m.DeleteContactFn(ctx, contactID, userID)
	}
	args := m.Called(ctx, contactID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepository) SearchContacts(ctx context.Context, userID string, query string) ([]domain.Contact, error) {
	if m.SearchContactsFn != nil {
		return m.SearchContactsFn(ctx, userID, query)
	}
	args := m.Called(ctx, userID, query)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockContactRepository) FindContactsWithBirthdayBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Contact, error) {
	if m.FindContactsWithBirthdayBetweenFn != nil {
		return m.FindContactsWithBirthdayBetweenFn(ctx, userID, start, end)
	}
	args := m.Called(ctx, userID, start, end)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

// --- Test Suite ---
type ContactServiceTestSuite struct {
	suite.Suite
	mockContactRepo *MockContactRepository
	service         portssvc.ContactSvcFacade
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockContactRepo = new(MockContactRepository)
	suite.service = services.NewContactService(suite.mockContactRepo)
}

func validCreateRequest() dto.CreateContactRequest {
	return dto.CreateContactRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		Phone:          "+380501234567",
		Birthday:       "1990-12-10",
		AdditionalInfo: "met at a conference",
	}
}

// --- CreateContact Tests ---

func (suite *ContactServiceTestSuite) TestCreateContact_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := validCreateRequest()

	suite.mockContactRepo.On("CreateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.UserID == userID &&
			c.Email == req.Email &&
			c.Birthday.Year() == 1990 &&
			c.Birthday.Month() == time.December &&
			c.Birthday.Day() == 10 &&
			c.ContactID != ""
	})).Return(&domain.Contact{ContactID: "c1", Email: req.Email, UserID: userID}, nil).Once()

	contact, err := suite.service.CreateContact(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(contact)
	suite.Equal(userID, contact.UserID)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestCreateContact_DuplicateEmail() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := validCreateRequest()

	suite.mockContactRepo.On("CreateContact", ctx, mock.AnythingOfType("domain.Contact")).
		Return(nil, apperrors.ErrDuplicate).Once()

	contact, err := suite.service.CreateContact(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(contact)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestCreateContact_InvalidBirthday() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Birthday = "10-12-1990"

	contact, err := suite.service.CreateContact(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(contact)
	suite.mockContactRepo.AssertNotCalled(suite.T(), "CreateContact", mock.Anything, mock.Anything)
}

// --- ListContacts Tests ---

func (suite *ContactServiceTestSuite) TestListContacts_PassesPagination() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.Contact{{ContactID: "c1"}, {ContactID: "c2"}}

	suite.mockContactRepo.On("FindContacts", ctx, userID, 25, 50).Return(expected, nil).Once()

	contacts, err := suite.service.ListContacts(ctx, userID, 50, 25)

	suite.Require().NoError(err)
	suite.Len(contacts, 2)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

// --- DeleteContact Tests ---

func (suite *ContactServiceTestSuite) TestDeleteContact_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	contactID := uuid.NewString()

	suite.mockContactRepo.On("DeleteContact", ctx, contactID, userID).Return(true, nil).Once()

	err := suite.service.DeleteContact(ctx, userID, contactID)

	suite.Require().NoError(err)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestDeleteContact_NotOwned() {
	ctx := context.Background()
	userID := uuid.NewString()
	contactID := uuid.NewString()

	// The row exists but belongs to another user, so nothing is deleted.
	suite.mockContactRepo.On("DeleteContact", ctx, contactID, userID).Return(false, nil).Once()

	err := suite.service.DeleteContact(ctx, userID, contactID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestDeleteContact_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	contactID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockContactRepo.On("DeleteContact", ctx, contactID, userID).Return(false, expectedErr).Once()

	err := suite.service.DeleteContact(ctx, userID, contactID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

// --- UpdateContact Tests ---

func (suite *ContactServiceTestSuite) TestUpdateContact_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	contactID := uuid.NewString()
	req := validCreateRequest()

	suite.mockContactRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.ContactID == contactID && c.UserID == userID
	})).Return(nil, apperrors.ErrNotFound).Once()

	contact, err := suite.service.UpdateContact(ctx, userID, contactID, req)

	suite.Require().Error(err)
	suite.Nil(contact)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

// --- ListUpcomingBirthdays Tests ---

func (suite *ContactServiceTestSuite) TestListUpcomingBirthdays_WindowIsSevenDays() {
	ctx := context.Background()
	userID := uuid.NewString()
	today := time.Date(1999, time.December, 27, 10, 30, 0, 0, time.UTC)
	expected := []domain.Contact{{ContactID: "c1"}}

	var gotStart, gotEnd time.Time
	suite.mockContactRepo.FindContactsWithBirthdayBetweenFn = func(ctx context.Context, uid string, start, end time.Time) ([]domain.Contact, error) {
		suite.Equal(userID, uid)
		gotStart, gotEnd = start, end
		return expected, nil
	}

	contacts, err := suite.service.ListUpcomingBirthdays(ctx, userID, today)

	suite.Require().NoError(err)
	suite.Len(contacts, 1)
	// The window starts at the beginning of today and spans exactly seven days.
	suite.Equal(time.Date(1999, time.December, 27, 0, 0, 0, 0, time.UTC), gotStart)
	suite.Equal(gotStart.Add(7*24*time.Hour), gotEnd)
	// A late-December window reaches into the next year on absolute dates.
	suite.Equal(2000, gotEnd.Year())
}

// --- Run Suite ---
func TestContactService(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
