package community

import (
	"net/http"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "community not found")
)

// Community is a tenant that scopes courts, time slots and households.
type Community struct {
	ID             int64
	Name           string
	MaxBookingDays *int // Default booking window for courts without their own value
}

// Filter defines parameters for listing communities.
type Filter struct {
	Page     int
	PageSize int
}
