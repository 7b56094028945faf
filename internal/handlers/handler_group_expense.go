package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
	"github.com/splitnest/expense_tracker_app/internal/middleware"
)

// GroupExpenseHandler handles shared expenses and the split ledger.
type GroupExpenseHandler struct {
	groupExpenseService portssvc.GroupExpenseSvcFacade
	groupService        portssvc.GroupSvcFacade
}

// NewGroupExpenseHandler creates a new GroupExpenseHandler.
func NewGroupExpenseHandler(ges portssvc.GroupExpenseSvcFacade, gs portssvc.GroupSvcFacade) *GroupExpenseHandler {
	return &GroupExpenseHandler{groupExpenseService: ges, groupService: gs}
}

// registerGroupExpenseRoutes sets up the guarded shared expense routes.
func registerGroupExpenseRoutes(rg *gin.RouterGroup, ges portssvc.GroupExpenseSvcFacade, gs portssvc.GroupSvcFacade) {
	h := NewGroupExpenseHandler(ges, gs)

	groupExpense := rg.Group("/groupExpense")
	{
		groupExpense.PUT("/createExpense", h.CreateExpense)
		groupExpense.GET("/getExpenses", h.GetExpenses)
		groupExpense.GET("/memberExpense", h.MemberExpense)
		groupExpense.PUT("/updateStatus", h.UpdateStatus)
		groupExpense.GET("/convert", h.Convert)
		groupExpense.GET("/getid", h.GetID)
		groupExpense.GET("/getemail/:id", h.GetEmail)
		// path spelling is part of the public contract
		groupExpense.DELETE("/deletegoup/:id", h.DeleteGroup)
	}
}

// callerIdentity pulls the authenticated id and email out of the context.
func callerIdentity(c *gin.Context) (string, string, bool) {
	userID, okID := middleware.GetUserIDFromContext(c)
	email, okEmail := middleware.GetUserEmailFromContext(c)
	if !okID || !okEmail {
		c.JSON(http.StatusForbidden, dto.Fail("User identity missing"))
		return "", "", false
	}
	return userID, email, true
}

// CreateExpense logs a shared expense; members only.
func (h *GroupExpenseHandler) CreateExpense(c *gin.Context) {
	userID, email, ok := callerIdentity(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	var req dto.CreateGroupExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid expense data"))
		return
	}

	expense, err := h.groupExpenseService.CreateGroupExpense(c.Request.Context(), groupID, userID, email, req)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expense Added", dto.ToGroupExpenseResponse(expense)))
}

// GetExpenses returns the group with its shared expenses; members only.
func (h *GroupExpenseHandler) GetExpenses(c *gin.Context) {
	_, email, ok := callerIdentity(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	group, expenses, err := h.groupExpenseService.ListGroupExpenses(c.Request.Context(), groupID, email)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expenses Fetched", dto.GroupWithExpensesResponse{
		Group:    dto.ToGroupResponse(group),
		Expenses: dto.ToListGroupExpenseResponse(expenses),
	}))
}

// MemberExpense lists every shared expense, across all groups, whose
// split list contains the caller.
func (h *GroupExpenseHandler) MemberExpense(c *gin.Context) {
	userID, email, ok := callerIdentity(c)
	if !ok {
		return
	}

	expenses, err := h.groupExpenseService.ListMemberExpenses(c.Request.Context(), userID, email)
	if err != nil {
		respondError(c, err, "Expenses not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expenses Fetched", dto.ToListGroupExpenseResponse(expenses)))
}

// UpdateStatus settles the caller's split entry on a shared expense.
// The expenseId query parameter addresses the split entry itself.
func (h *GroupExpenseHandler) UpdateStatus(c *gin.Context) {
	userID, email, ok := callerIdentity(c)
	if !ok {
		return
	}

	splitID := c.Query("expenseId")
	if splitID == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("expenseId is required"))
		return
	}

	if err := h.groupExpenseService.SettleSplit(c.Request.Context(), splitID, userID, email); err != nil {
		respondError(c, err, "Split entry not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Status Updated", nil))
}

// Convert maps the group's member emails to account ids; members only.
func (h *GroupExpenseHandler) Convert(c *gin.Context) {
	_, email, ok := callerIdentity(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	members, err := h.groupExpenseService.ConvertMembers(c.Request.Context(), groupID, email)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Members Converted", members))
}

// GetID maps an email to its account id.
func (h *GroupExpenseHandler) GetID(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("email is required"))
		return
	}

	userID, err := h.groupExpenseService.GetIDByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("User Fetched", dto.MemberIDResponse{Email: email, UserID: userID}))
}

// GetEmail maps an account id to its email.
func (h *GroupExpenseHandler) GetEmail(c *gin.Context) {
	userID := c.Param("id")

	email, err := h.groupExpenseService.GetEmailByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("User Fetched", dto.MemberEmailResponse{UserID: userID, Email: email}))
}

// DeleteGroup removes a group by path id. Same creator-only policy as
// the /group surface.
func (h *GroupExpenseHandler) DeleteGroup(c *gin.Context) {
	_, email, ok := callerIdentity(c)
	if !ok {
		return
	}
	groupID := c.Param("id")

	if err := h.groupService.DeleteGroup(c.Request.Context(), groupID, email); err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Group Deleted", nil))
}
