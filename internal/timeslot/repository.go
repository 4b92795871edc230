package timeslot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apiclient"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/response"
)

// listPageSize bounds each page fetched while collecting a community's slots.
const listPageSize = 100

// Repository reads time slots from the reservation API.
type Repository interface {
	// List returns every slot matching filter, in the order the API returns them.
	List(ctx context.Context, filter Filter) ([]TimeSlot, error)
}

// Payload is the time slot representation used by the reservation API.
type Payload struct {
	ID          int64  `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	CommunityID *int64 `json:"community_id,omitempty"`
}

// ToDomain converts the API payload into a TimeSlot.
func (p Payload) ToDomain() (TimeSlot, error) {
	start, err := ParseWallClock(p.StartTime)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("time slot %d start: %w", p.ID, err)
	}
	end, err := ParseWallClock(p.EndTime)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("time slot %d end: %w", p.ID, err)
	}
	return TimeSlot{
		ID:          p.ID,
		Start:       start,
		End:         end,
		CommunityID: p.CommunityID,
	}, nil
}

type apiRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) Repository {
	return &apiRepository{client: client}
}

func (r *apiRepository) List(ctx context.Context, filter Filter) ([]TimeSlot, error) {
	query := url.Values{}
	if filter.CourtID != 0 {
		query.Set("court_id", strconv.FormatInt(filter.CourtID, 10))
	}
	if filter.CommunityID != 0 {
		query.Set("community_id", strconv.FormatInt(filter.CommunityID, 10))
	}
	query.Set("page_size", strconv.Itoa(listPageSize))

	var slots []TimeSlot
	for page := 1; ; page++ {
		query.Set("page", strconv.Itoa(page))

		var resp response.PageResponse[Payload]
		if err := r.client.Get(ctx, "/v1/timeslots", query, &resp); err != nil {
			return nil, apperror.Wrap(err, http.StatusBadGateway, "failed to list time slots")
		}

		for _, p := range resp.Items {
			slot, err := p.ToDomain()
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}

		if len(resp.Items) == 0 || len(slots) >= resp.Total {
			break
		}
	}

	return slots, nil
}
