package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
)

// ExpenseHandler handles the personal expense ledger plus the saved
// session, category and profile routes that live under /expense.
type ExpenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	sessionService portssvc.SessionSvcFacade
	userService    portssvc.UserSvcFacade
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(es portssvc.ExpenseSvcFacade, ss portssvc.SessionSvcFacade, us portssvc.UserSvcFacade) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es, sessionService: ss, userService: us}
}

// registerExpenseRoutes sets up the guarded personal expense routes.
func registerExpenseRoutes(rg *gin.RouterGroup, es portssvc.ExpenseSvcFacade, ss portssvc.SessionSvcFacade, us portssvc.UserSvcFacade) {
	h := NewExpenseHandler(es, ss, us)

	expense := rg.Group("/expense")
	{
		expense.POST("/createexpense", h.CreateExpense)
		expense.GET("/getallexpense/:id", h.GetAllExpenses)
		expense.GET("/getsingleexpense/:userId/:id", h.GetSingleExpense)
		expense.PATCH("/updateexpense/:userId/:id", h.UpdateExpense)
		// path spelling is part of the public contract
		expense.DELETE("/deleteexepense/:userId/:id", h.DeleteExpense)

		expense.POST("/savedata", h.SaveData)
		expense.GET("/getsavedata/:id", h.GetSaveData)
		expense.POST("/updatesavedata/:id", h.UpdateSaveData)

		expense.GET("/getcategory/:id", h.GetCategories)
		expense.POST("/savecategory/:id", h.SaveCategories)

		expense.POST("/updateuserdataprofile/:id", h.UpdateProfile)
		expense.POST("/updatename/:id", h.UpdateName)
	}
}

// CreateExpense logs a new expense for the user named in the body.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid expense data"))
		return
	}
	if !requireSubject(c, req.UserID) {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expense Added", dto.ToExpenseResponse(expense)))
}

// GetAllExpenses lists the account's expenses in insertion order.
func (h *ExpenseHandler) GetAllExpenses(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Expenses not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expenses Fetched", dto.ToListExpenseResponse(expenses)))
}

// GetSingleExpense fetches one expense scoped to its owner.
func (h *ExpenseHandler) GetSingleExpense(c *gin.Context) {
	userID := c.Param("userId")
	expenseID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), userID, expenseID)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expense Fetched", dto.ToExpenseResponse(expense)))
}

// UpdateExpense applies a partial update to an existing expense.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID := c.Param("userId")
	expenseID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid expense data"))
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, expenseID, req)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expense Updated", dto.ToExpenseResponse(expense)))
}

// DeleteExpense removes an expense scoped to its owner.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID := c.Param("userId")
	expenseID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expense Deleted", nil))
}

// SaveData appends a login-session snapshot.
func (h *ExpenseHandler) SaveData(c *gin.Context) {
	var req dto.SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid session data"))
		return
	}
	if !requireSubject(c, req.UserID) {
		return
	}

	session, err := h.sessionService.SaveSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Session not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Data Saved", dto.ToSessionResponse(session)))
}

// GetSaveData returns the account's earliest session snapshot.
func (h *ExpenseHandler) GetSaveData(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Session not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Data Fetched", dto.ToSessionResponse(session)))
}

// UpdateSaveData rewrites the mutable fields of the saved sessions.
func (h *ExpenseHandler) UpdateSaveData(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid session data"))
		return
	}

	if err := h.sessionService.UpdateSession(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "Session not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Data Updated", nil))
}

// GetCategories lists the account's category tags.
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	categories, err := h.userService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Categories not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Categories Fetched", dto.ToCategoryListResponse(categories)))
}

// SaveCategories appends a batch of category tags.
func (h *ExpenseHandler) SaveCategories(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	var req dto.SaveCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid category data"))
		return
	}

	if err := h.userService.SaveCategories(c.Request.Context(), userID, req.Categories); err != nil {
		respondError(c, err, "Categories not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Categories Saved", nil))
}

// UpdateProfile rewrites the display fields on the saved sessions.
func (h *ExpenseHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid profile data"))
		return
	}

	if err := h.sessionService.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "Session not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Profile Updated", nil))
}

// UpdateName rewrites the account's name and username.
func (h *ExpenseHandler) UpdateName(c *gin.Context) {
	userID := c.Param("id")
	if !requireSubject(c, userID) {
		return
	}

	var req dto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid name data"))
		return
	}

	if err := h.userService.UpdateName(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Name Updated", nil))
}
