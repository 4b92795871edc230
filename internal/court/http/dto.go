package http

import (
	commHttp "github.com/nekogravitycat/court-booking-planner/internal/community/http"
	"github.com/nekogravitycat/court-booking-planner/internal/court"
)

// CourtTag is the short form embedded in other responses.
type CourtTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCourtTag(c *court.Court) *CourtTag {
	if c == nil {
		return nil
	}
	return &CourtTag{ID: c.ID, Name: c.Name}
}

type CourtResponse struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	CommunityID        int64                  `json:"community_id"`
	Community          *commHttp.CommunityTag `json:"community,omitempty"`
	MaxBookingDays     *int                   `json:"max_booking_days,omitempty"`
	PastDayOpeningHour *int                   `json:"past_day_opening_hour,omitempty"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	resp := CourtResponse{
		ID:                 c.ID,
		Name:               c.Name,
		CommunityID:        c.CommunityID,
		MaxBookingDays:     c.MaxBookingDays,
		PastDayOpeningHour: c.PastDayOpeningHour,
	}
	if c.Community != nil {
		resp.Community = &commHttp.CommunityTag{ID: c.Community.ID, Name: c.Community.Name}
	}
	return resp
}

// ListCourtsRequest defines query parameters for listing courts.
// CommunityID carries the community selector; zero means "none selected".
type ListCourtsRequest struct {
	CommunityID int64 `form:"community_id" binding:"omitempty,min=1"`
	Page        int   `form:"page,default=1" binding:"min=1"`
	PageSize    int   `form:"page_size,default=20" binding:"min=1,max=100"`
}
