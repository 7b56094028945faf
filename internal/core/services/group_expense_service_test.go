package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitnest/expense_tracker_app/internal/apperrors"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/splitnest/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/core/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
)

// --- Mock GroupExpenseRepository ---
type MockGroupExpenseRepository struct {
	mock.Mock
}

func (m *MockGroupExpenseRepository) SaveGroupExpense(ctx context.Context, expense domain.GroupExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockGroupExpenseRepository) FindExpensesByGroupID(ctx context.Context, groupID string) ([]domain.GroupExpense, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupExpense), args.Error(1)
}

func (m *MockGroupExpenseRepository) FindExpensesByMember(ctx context.Context, memberID, email string) ([]domain.GroupExpense, error) {
	args := m.Called(ctx, memberID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupExpense), args.Error(1)
}

func (m *MockGroupExpenseRepository) FindSplitByID(ctx context.Context, splitID string) (*domain.SplitMember, error) {
	args := m.Called(ctx, splitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SplitMember), args.Error(1)
}

func (m *MockGroupExpenseRepository) MarkSplitReceived(ctx context.Context, splitID string) error {
	args := m.Called(ctx, splitID)
	return args.Error(0)
}

var _ portsrepo.GroupExpenseRepositoryFacade = (*MockGroupExpenseRepository)(nil)

// --- Test Suite ---
type GroupExpenseServiceTestSuite struct {
	suite.Suite
	mockGroupExpenseRepo *MockGroupExpenseRepository
	mockGroupRepo        *MockGroupRepository
	mockUserRepo         *MockUserRepository
	service              portssvc.GroupExpenseSvcFacade
}

func (suite *GroupExpenseServiceTestSuite) SetupTest() {
	suite.mockGroupExpenseRepo = new(MockGroupExpenseRepository)
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewGroupExpenseService(suite.mockGroupExpenseRepo, suite.mockGroupRepo, suite.mockUserRepo)
}

func tripGroup() *domain.Group {
	return &domain.Group{
		GroupID:   "g1",
		Name:      "Trip",
		CreatedBy: "ann@example.com",
		Members:   []string{"ann@example.com", "bob@example.com"},
	}
}

func validGroupExpenseRequest() dto.CreateGroupExpenseRequest {
	return dto.CreateGroupExpenseRequest{
		Name:            "Dinner",
		Amount:          decimal.NewFromInt(90),
		ExpenseDate:     "2024-03-01",
		ExpenseCategory: "Food",
		Payment:         "Card",
		SplitMembers: []dto.SplitEntryRequest{
			{MemberID: "user-ann", ShareAmount: decimal.NewFromInt(45)},
			{MemberID: "user-bob", ShareAmount: decimal.NewFromInt(45)},
		},
	}
}

func (suite *GroupExpenseServiceTestSuite) TestCreateGroupExpense_MemberAllowed_SplitsPending() {
	ctx := context.Background()
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(tripGroup(), nil).Once()

	suite.mockGroupExpenseRepo.On("SaveGroupExpense", ctx, mock.MatchedBy(func(e domain.GroupExpense) bool {
		if len(e.SplitMembers) != 2 {
			return false
		}
		for _, s := range e.SplitMembers {
			if s.Status != domain.SplitPending || s.SplitID == "" || s.GroupExpenseID != e.GroupExpenseID {
				return false
			}
		}
		return e.GroupID == "g1" && e.CreatedBy == "user-bob"
	})).Return(nil).Once()

	expense, err := suite.service.CreateGroupExpense(ctx, "g1", "user-bob", "bob@example.com", validGroupExpenseRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Len(expense.SplitMembers, 2)
	suite.mockGroupExpenseRepo.AssertExpectations(suite.T())
}

func (suite *GroupExpenseServiceTestSuite) TestCreateGroupExpense_NonMemberForbidden() {
	ctx := context.Background()
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(tripGroup(), nil).Once()

	expense, err := suite.service.CreateGroupExpense(ctx, "g1", "user-mallory", "mallory@example.com", validGroupExpenseRequest())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockGroupExpenseRepo.AssertNotCalled(suite.T(), "SaveGroupExpense", mock.Anything, mock.Anything)
}

func (suite *GroupExpenseServiceTestSuite) TestCreateGroupExpense_MissingGroupNotFound() {
	ctx := context.Background()
	suite.mockGroupRepo.On("FindGroupByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	expense, err := suite.service.CreateGroupExpense(ctx, "ghost", "user-bob", "bob@example.com", validGroupExpenseRequest())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GroupExpenseServiceTestSuite) TestSettleSplit_OwnerFlipsPending() {
	ctx := context.Background()
	split := &domain.SplitMember{
		SplitID:        "s1",
		GroupExpenseID: "ge1",
		MemberID:       "user-bob",
		ShareAmount:    decimal.NewFromInt(45),
		Status:         domain.SplitPending,
	}
	suite.mockGroupExpenseRepo.On("FindSplitByID", ctx, "s1").Return(split, nil).Once()
	suite.mockGroupExpenseRepo.On("MarkSplitReceived", ctx, "s1").Return(nil).Once()

	err := suite.service.SettleSplit(ctx, "s1", "user-bob", "bob@example.com")

	suite.Require().NoError(err)
	suite.mockGroupExpenseRepo.AssertExpectations(suite.T())
}

func (suite *GroupExpenseServiceTestSuite) TestSettleSplit_OtherMemberForbidden() {
	ctx := context.Background()
	split := &domain.SplitMember{
		SplitID:        "s1",
		GroupExpenseID: "ge1",
		MemberID:       "user-bob",
		Status:         domain.SplitPending,
	}
	suite.mockGroupExpenseRepo.On("FindSplitByID", ctx, "s1").Return(split, nil).Once()

	err := suite.service.SettleSplit(ctx, "s1", "user-ann", "ann@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockGroupExpenseRepo.AssertNotCalled(suite.T(), "MarkSplitReceived", mock.Anything, mock.Anything)
}

func (suite *GroupExpenseServiceTestSuite) TestSettleSplit_AlreadyReceivedIsNoOp() {
	ctx := context.Background()
	split := &domain.SplitMember{
		SplitID:        "s1",
		GroupExpenseID: "ge1",
		MemberID:       "user-bob",
		Status:         domain.SplitReceived,
	}
	suite.mockGroupExpenseRepo.On("FindSplitByID", ctx, "s1").Return(split, nil).Once()

	// Settling twice ends in the same Received state without another write
	err := suite.service.SettleSplit(ctx, "s1", "user-bob", "bob@example.com")

	suite.Require().NoError(err)
	suite.mockGroupExpenseRepo.AssertNotCalled(suite.T(), "MarkSplitReceived", mock.Anything, mock.Anything)
}

func (suite *GroupExpenseServiceTestSuite) TestListGroupExpenses_NonMemberForbidden() {
	ctx := context.Background()
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(tripGroup(), nil).Once()

	group, expenses, err := suite.service.ListGroupExpenses(ctx, "g1", "mallory@example.com")

	suite.Require().Error(err)
	suite.Nil(group)
	suite.Nil(expenses)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *GroupExpenseServiceTestSuite) TestListMemberExpenses_MatchesAcrossGroups() {
	ctx := context.Background()
	stored := []domain.GroupExpense{
		{GroupExpenseID: "ge1", GroupID: "g1"},
		{GroupExpenseID: "ge2", GroupID: "g2"},
	}
	suite.mockGroupExpenseRepo.On("FindExpensesByMember", ctx, "user-bob", "bob@example.com").
		Return(stored, nil).Once()

	expenses, err := suite.service.ListMemberExpenses(ctx, "user-bob", "bob@example.com")

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 2)
	suite.Equal("g1", expenses[0].GroupID)
	suite.Equal("g2", expenses[1].GroupID)
}

func (suite *GroupExpenseServiceTestSuite) TestConvertMembers_UnregisteredEmailKeepsEmptyID() {
	ctx := context.Background()
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(tripGroup(), nil).Once()

	ann := &domain.User{UserID: "user-ann", Email: "ann@example.com"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ann@example.com").Return(ann, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "bob@example.com").Return(nil, apperrors.ErrNotFound).Once()

	members, err := suite.service.ConvertMembers(ctx, "g1", "ann@example.com")

	suite.Require().NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal("user-ann", members[0].UserID)
	suite.Equal("", members[1].UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *GroupExpenseServiceTestSuite) TestGetIDByEmail_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	id, err := suite.service.GetIDByEmail(ctx, "ghost@example.com")

	suite.Require().Error(err)
	suite.Empty(id)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestGroupExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupExpenseServiceTestSuite))
}
