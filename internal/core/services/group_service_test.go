package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitnest/expense_tracker_app/internal/apperrors"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/splitnest/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/core/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
)

// --- Mock GroupRepository ---
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) FindGroupsByMemberEmail(ctx context.Context, email string) ([]domain.Group, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) AddMembers(ctx context.Context, groupID string, emails []string) error {
	args := m.Called(ctx, groupID, emails)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMembers(ctx context.Context, groupID string, emails []string) error {
	args := m.Called(ctx, groupID, emails)
	return args.Error(0)
}

func (m *MockGroupRepository) RenameGroup(ctx context.Context, groupID, name string) error {
	args := m.Called(ctx, groupID, name)
	return args.Error(0)
}

func (m *MockGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

var _ portsrepo.GroupRepositoryFacade = (*MockGroupRepository)(nil)

// --- Test Suite ---
type GroupServiceTestSuite struct {
	suite.Suite
	mockGroupRepo *MockGroupRepository
	service       portssvc.GroupSvcFacade
}

func (suite *GroupServiceTestSuite) SetupTest() {
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.service = services.NewGroupService(suite.mockGroupRepo)
}

func (suite *GroupServiceTestSuite) TestCreateGroup_CreatorAddedOnce() {
	ctx := context.Background()
	creator := "ann@example.com"
	req := dto.CreateGroupRequest{
		Name: "Trip",
		// The creator appears in the request too; it must not be doubled
		Members: []string{creator, "bob@example.com"},
	}

	suite.mockGroupRepo.On("SaveGroup", ctx, mock.MatchedBy(func(g domain.Group) bool {
		count := 0
		for _, m := range g.Members {
			if m == creator {
				count++
			}
		}
		return count == 1 && g.CreatedBy == creator && len(g.Members) == 2
	})).Return(nil).Once()

	group, err := suite.service.CreateGroup(ctx, creator, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(group)
	suite.Equal([]string{creator, "bob@example.com"}, group.Members)
	suite.mockGroupRepo.AssertExpectations(suite.T())
}

func (suite *GroupServiceTestSuite) TestCreateGroup_CreatorFirstInMemberList() {
	ctx := context.Background()
	creator := "ann@example.com"
	req := dto.CreateGroupRequest{Name: "Trip", Members: []string{"bob@example.com"}}

	suite.mockGroupRepo.On("SaveGroup", ctx, mock.AnythingOfType("domain.Group")).Return(nil).Once()

	group, err := suite.service.CreateGroup(ctx, creator, req)

	suite.Require().NoError(err)
	suite.Equal(creator, group.Members[0])
}

func (suite *GroupServiceTestSuite) TestGetGroupByID_NonMemberForbidden() {
	ctx := context.Background()
	stored := &domain.Group{
		GroupID:   "g1",
		Name:      "Trip",
		CreatedBy: "ann@example.com",
		Members:   []string{"ann@example.com", "bob@example.com"},
	}
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(stored, nil).Once()

	group, err := suite.service.GetGroupByID(ctx, "g1", "mallory@example.com")

	suite.Require().Error(err)
	suite.Nil(group)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *GroupServiceTestSuite) TestGetGroupByID_MemberAllowed() {
	ctx := context.Background()
	stored := &domain.Group{
		GroupID: "g1",
		Members: []string{"ann@example.com", "bob@example.com"},
	}
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(stored, nil).Once()

	group, err := suite.service.GetGroupByID(ctx, "g1", "bob@example.com")

	suite.Require().NoError(err)
	suite.Equal("g1", group.GroupID)
}

func (suite *GroupServiceTestSuite) TestRenameGroup_NonCreatorRejected() {
	ctx := context.Background()
	stored := &domain.Group{
		GroupID:   "g1",
		CreatedBy: "ann@example.com",
		Members:   []string{"ann@example.com", "bob@example.com"},
	}
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(stored, nil).Once()

	group, err := suite.service.RenameGroup(ctx, "g1", "bob@example.com", "New Name")

	suite.Require().Error(err)
	suite.Nil(group)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGroupRepo.AssertNotCalled(suite.T(), "RenameGroup", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GroupServiceTestSuite) TestDeleteGroup_CreatorOnly() {
	ctx := context.Background()
	stored := &domain.Group{
		GroupID:   "g1",
		CreatedBy: "ann@example.com",
		Members:   []string{"ann@example.com"},
	}
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(stored, nil).Twice()
	suite.mockGroupRepo.On("DeleteGroup", ctx, "g1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteGroup(ctx, "g1", "ann@example.com"))

	err := suite.service.DeleteGroup(ctx, "g1", "bob@example.com")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGroupRepo.AssertExpectations(suite.T())
}

func (suite *GroupServiceTestSuite) TestAddMembers_AppendsBlindly() {
	ctx := context.Background()
	stored := &domain.Group{
		GroupID:   "g1",
		CreatedBy: "ann@example.com",
		Members:   []string{"ann@example.com", "bob@example.com"},
	}
	suite.mockGroupRepo.On("FindGroupByID", ctx, "g1").Return(stored, nil).Once()
	// Re-adding bob is allowed; the add path does not dedupe
	suite.mockGroupRepo.On("AddMembers", ctx, "g1", []string{"bob@example.com"}).Return(nil).Once()

	group, err := suite.service.AddMembers(ctx, "g1", "ann@example.com", []string{"bob@example.com"})

	suite.Require().NoError(err)
	suite.Len(group.Members, 3)
	suite.mockGroupRepo.AssertExpectations(suite.T())
}

func (suite *GroupServiceTestSuite) TestListGroupsForMember_EmptyNotNil() {
	ctx := context.Background()
	suite.mockGroupRepo.On("FindGroupsByMemberEmail", ctx, "ann@example.com").Return(nil, nil).Once()

	groups, err := suite.service.ListGroupsForMember(ctx, "ann@example.com")

	suite.Require().NoError(err)
	suite.NotNil(groups)
	suite.Empty(groups)
}

func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}
