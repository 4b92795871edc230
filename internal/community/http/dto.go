package http

import (
	"github.com/nekogravitycat/court-booking-planner/internal/community"
)

// CommunityTag is the short form embedded in other responses.
type CommunityTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CommunityResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	MaxBookingDays *int   `json:"max_booking_days,omitempty"`
}

func NewCommunityResponse(c *community.Community) CommunityResponse {
	return CommunityResponse{
		ID:             c.ID,
		Name:           c.Name,
		MaxBookingDays: c.MaxBookingDays,
	}
}

// ListCommunitiesRequest defines query parameters for listing communities.
type ListCommunitiesRequest struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}
