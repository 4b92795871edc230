package community

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apiclient"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/response"
)

// Repository reads communities from the reservation API.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Community, error)
	List(ctx context.Context, filter Filter) ([]*Community, int, error)
}

// Payload is the community representation used by the reservation API.
type Payload struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	MaxBookingDays *int   `json:"max_booking_days,omitempty"`
}

// ToDomain converts the API payload into a Community.
func (p Payload) ToDomain() *Community {
	return &Community{
		ID:             p.ID,
		Name:           p.Name,
		MaxBookingDays: p.MaxBookingDays,
	}
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) Repository {
	return &apiRepository{client: client}
}

func (r *apiRepository) GetByID(ctx context.Context, id int64) (*Community, error) {
	var p Payload
	if err := r.client.Get(ctx, "/v1/communities/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		if apiclient.StatusCode(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, apperror.Wrap(err, http.StatusBadGateway, "failed to load community")
	}
	return p.ToDomain(), nil
}

func (r *apiRepository) List(ctx context.Context, filter Filter) ([]*Community, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("page_size", strconv.Itoa(filter.PageSize))

	var page response.PageResponse[Payload]
	if err := r.client.Get(ctx, "/v1/communities", query, &page); err != nil {
		return nil, 0, apperror.Wrap(err, http.StatusBadGateway, "failed to list communities")
	}

	result := response.MapPage(page, Payload.ToDomain)
	return result.Items, result.Total, nil
}
