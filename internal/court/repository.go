package court

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nekogravitycat/court-booking-planner/internal/community"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apiclient"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/response"
)

// Repository reads courts from the reservation API.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
}

// Payload is the court representation used by the reservation API.
type Payload struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	CommunityID        int64              `json:"community_id"`
	Community          *community.Payload `json:"community,omitempty"`
	MaxBookingDays     *int               `json:"max_booking_days,omitempty"`
	PastDayOpeningHour *int               `json:"past_day_opening_hour,omitempty"`
}

// ToDomain converts the API payload into a Court.
func (p Payload) ToDomain() *Court {
	c := &Court{
		ID:                 p.ID,
		Name:               p.Name,
		CommunityID:        p.CommunityID,
		MaxBookingDays:     p.MaxBookingDays,
		PastDayOpeningHour: p.PastDayOpeningHour,
	}
	if p.Community != nil {
		c.Community = p.Community.ToDomain()
		if c.CommunityID == 0 {
			c.CommunityID = c.Community.ID
		}
	}
	return c
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) Repository {
	return &apiRepository{client: client}
}

func (r *apiRepository) GetByID(ctx context.Context, id int64) (*Court, error) {
	var p Payload
	if err := r.client.Get(ctx, "/v1/courts/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		if apiclient.StatusCode(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, apperror.Wrap(err, http.StatusBadGateway, "failed to load court")
	}
	return p.ToDomain(), nil
}

func (r *apiRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	query := url.Values{}
	if filter.CommunityID != 0 {
		query.Set("community_id", strconv.FormatInt(filter.CommunityID, 10))
	}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("page_size", strconv.Itoa(filter.PageSize))

	var page response.PageResponse[Payload]
	if err := r.client.Get(ctx, "/v1/courts", query, &page); err != nil {
		return nil, 0, apperror.Wrap(err, http.StatusBadGateway, "failed to list courts")
	}

	result := response.MapPage(page, Payload.ToDomain)
	return result.Items, result.Total, nil
}
