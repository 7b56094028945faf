package dto

import (
	"time"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// CreateGroupRequest defines the data needed to create a shared group.
// The creator's email is added to the member list exactly once.
type CreateGroupRequest struct {
	Name    string   `json:"groupname" binding:"required,min=3,max=30,alphaspace"`
	Members []string `json:"members" binding:"omitempty,dive,email"`
}

// MembersRequest carries the email batch for add/remove member calls.
type MembersRequest struct {
	Members []string `json:"members" binding:"required,min=1,dive,email"`
}

// RenameGroupRequest defines the new name for a group.
type RenameGroupRequest struct {
	Name string `json:"groupname" binding:"required,min=3,max=30,alphaspace"`
}

// GroupResponse defines the data returned for a group.
type GroupResponse struct {
	GroupID   string    `json:"_id"`
	Name      string    `json:"groupname"`
	CreatedBy string    `json:"groupcreatedby"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"groupcreatedat"`
}

// ToGroupResponse converts a domain.Group to GroupResponse DTO
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:   g.GroupID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		Members:   g.Members,
		CreatedAt: g.CreatedAt,
	}
}

// ToListGroupResponse converts a slice of domain.Group to response DTOs
func ToListGroupResponse(groups []domain.Group) []GroupResponse {
	res := make([]GroupResponse, len(groups))
	for i, g := range groups {
		res[i] = ToGroupResponse(&g)
	}
	return res
}
