package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
	"github.com/splitnest/expense_tracker_app/internal/middleware"
)

// GroupHandler handles the shared group registry.
type GroupHandler struct {
	groupService portssvc.GroupSvcFacade
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(gs portssvc.GroupSvcFacade) *GroupHandler {
	return &GroupHandler{groupService: gs}
}

// registerGroupRoutes sets up the guarded group routes.
func registerGroupRoutes(rg *gin.RouterGroup, gs portssvc.GroupSvcFacade) {
	h := NewGroupHandler(gs)

	group := rg.Group("/group")
	{
		group.POST("/creategroup", h.CreateGroup)
		group.PUT("/addmembers", h.AddMembers)
		group.GET("/groupbyid", h.GroupByID)
		group.GET("/getallgroups", h.GetAllGroups)
		group.PUT("/editgroupname", h.EditGroupName)
		group.DELETE("/deletegroup", h.DeleteGroup)
		group.PUT("/removemembers", h.RemoveMembers)
	}
}

// callerEmail pulls the authenticated email out of the context. The auth
// middleware guarantees it is present on guarded routes.
func callerEmail(c *gin.Context) (string, bool) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, dto.Fail("User identity missing"))
		return "", false
	}
	return email, true
}

// groupIDQuery pulls the groupId query parameter.
func groupIDQuery(c *gin.Context) (string, bool) {
	groupID := c.Query("groupId")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("groupId is required"))
		return "", false
	}
	return groupID, true
}

// CreateGroup creates a group owned by the caller.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid group data"))
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), email, req)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Group Created", dto.ToGroupResponse(group)))
}

// AddMembers appends emails to the group's member list.
func (h *GroupHandler) AddMembers(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	var req dto.MembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid member data"))
		return
	}

	group, err := h.groupService.AddMembers(c.Request.Context(), groupID, email, req.Members)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Members Added", dto.ToGroupResponse(group)))
}

// GroupByID fetches a group the caller belongs to.
func (h *GroupHandler) GroupByID(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroupByID(c.Request.Context(), groupID, email)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Group Fetched", dto.ToGroupResponse(group)))
}

// GetAllGroups lists the groups whose member list contains the caller.
func (h *GroupHandler) GetAllGroups(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	groups, err := h.groupService.ListGroupsForMember(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "Groups not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Groups Fetched", dto.ToListGroupResponse(groups)))
}

// EditGroupName renames the group.
func (h *GroupHandler) EditGroupName(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	var req dto.RenameGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid group data"))
		return
	}

	group, err := h.groupService.RenameGroup(c.Request.Context(), groupID, email, req.Name)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Group Renamed", dto.ToGroupResponse(group)))
}

// DeleteGroup removes the group and everything under it.
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), groupID, email); err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Group Deleted", nil))
}

// RemoveMembers deletes emails from the group's member list.
func (h *GroupHandler) RemoveMembers(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}
	groupID, ok := groupIDQuery(c)
	if !ok {
		return
	}

	var req dto.MembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid member data"))
		return
	}

	group, err := h.groupService.RemoveMembers(c.Request.Context(), groupID, email, req.Members)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Members Removed", dto.ToGroupResponse(group)))
}
