package reservation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apiclient"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
)

// Repository talks to the reservation endpoints of the reservation API.
type Repository interface {
	// Occupied lists the time slot IDs already reserved for courtID on date (YYYY-MM-DD).
	Occupied(ctx context.Context, courtID int64, date string) ([]int64, error)
	// Create submits draft. Failures are classified as ErrBookingConflict,
	// ErrRequestRejected or ErrConnectivity.
	Create(ctx context.Context, draft Draft) (*Reservation, error)
}

// CreatePayload is the body the reservation API expects on creation.
type CreatePayload struct {
	Court    int64  `json:"court"`
	Date     string `json:"date"`
	TimeSlot int64  `json:"timeslot"`
}

// Payload is the reservation representation used by the reservation API.
type Payload struct {
	ID        int64      `json:"id"`
	Court     int64      `json:"court"`
	Date      string     `json:"date"`
	TimeSlot  int64      `json:"timeslot"`
	User      *int64     `json:"user,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func (p Payload) ToDomain() *Reservation {
	return &Reservation{
		ID:         p.ID,
		CourtID:    p.Court,
		Date:       p.Date,
		TimeSlotID: p.TimeSlot,
		UserID:     p.User,
		CreatedAt:  p.CreatedAt,
	}
}

// OccupiedPayload lists reserved slots for a court and date.
type OccupiedPayload struct {
	TimeSlotIDs []int64 `json:"timeslot_ids"`
}

type apiRepository struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewAPIRepository(client *apiclient.Client, logger *zap.Logger) Repository {
	return &apiRepository{client: client, logger: logger}
}

func (r *apiRepository) Occupied(ctx context.Context, courtID int64, date string) ([]int64, error) {
	query := url.Values{}
	query.Set("court_id", strconv.FormatInt(courtID, 10))
	query.Set("date", date)

	var p OccupiedPayload
	if err := r.client.Get(ctx, "/v1/reservations/occupied", query, &p); err != nil {
		return nil, fmt.Errorf("list occupied slots failed: %w", err)
	}
	return p.TimeSlotIDs, nil
}

func (r *apiRepository) Create(ctx context.Context, draft Draft) (*Reservation, error) {
	body := CreatePayload{
		Court:    draft.CourtID,
		Date:     draft.Date,
		TimeSlot: draft.TimeSlotID,
	}

	var p Payload
	if err := r.client.Post(ctx, "/v1/reservations", body, &p); err != nil {
		classified := Classify(err)
		status := apperror.StatusOf(classified, http.StatusInternalServerError)
		fields := []zap.Field{
			zap.Int64("court_id", draft.CourtID),
			zap.String("date", draft.Date),
			zap.Int64("timeslot_id", draft.TimeSlotID),
			zap.Int("status", status),
			zap.NamedError("cause", err),
			zap.Error(classified),
		}
		// Rejections are part of normal booking; an unusable upstream is not.
		if status >= http.StatusInternalServerError {
			r.logger.Warn("reservation submission failed", fields...)
		} else {
			r.logger.Info("reservation submission failed", fields...)
		}
		return nil, classified
	}

	return p.ToDomain(), nil
}

// Classify maps a reservation API failure onto the submission error taxonomy.
//   - no response at all        -> ErrConnectivity, generic message
//   - 409 Conflict              -> ErrBookingConflict with the server message
//   - any other error response  -> ErrRequestRejected with the server messages
//
// Errors that are neither are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, apiclient.ErrNoResponse) {
		return ErrConnectivity.WithDetails("")
	}

	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	message := apiErr.Message()
	var details []string
	if len(apiErr.Messages) > 1 {
		details = apiErr.Messages[1:]
	}

	if apiErr.Status == http.StatusConflict {
		return ErrBookingConflict.WithDetails(message, details...)
	}

	rejected := ErrRequestRejected.WithDetails(message, details...)
	if apiErr.Status >= 400 && apiErr.Status < 500 {
		rejected.Code = apiErr.Status
	} else {
		rejected.Code = http.StatusBadGateway
	}
	return rejected
}
