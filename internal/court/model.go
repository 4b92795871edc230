package court

import (
	"net/http"

	"github.com/nekogravitycat/court-booking-planner/internal/community"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "court not found")
)

// Court represents a bookable court owned by a community.
type Court struct {
	ID          int64
	Name        string
	CommunityID int64
	Community   *community.Community // May be nil when the API does not embed it

	// Optional per-court overrides of community settings.
	MaxBookingDays     *int
	PastDayOpeningHour *int
}

// Filter defines parameters for listing courts.
type Filter struct {
	CommunityID int64
	Page        int
	PageSize    int
}
