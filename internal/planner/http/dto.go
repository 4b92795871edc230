package http

import (
	"time"

	courtHttp "github.com/nekogravitycat/court-booking-planner/internal/court/http"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/clock"
	"github.com/nekogravitycat/court-booking-planner/internal/planner"
	"github.com/nekogravitycat/court-booking-planner/internal/reservation"
	"github.com/nekogravitycat/court-booking-planner/internal/session"
	"github.com/nekogravitycat/court-booking-planner/internal/timeslot"
)

// ------------------------
//   Requests
// ------------------------

type AvailabilityRequest struct {
	Date string `form:"date" binding:"required"`
}

// CreateReservationRequest is validated by the planner, so that missing fields
// surface as a missing selection rather than a binding error.
type CreateReservationRequest struct {
	CourtID    int64  `json:"court_id"`
	Date       string `json:"date"`
	TimeSlotID int64  `json:"timeslot_id"`
}

type CreateSessionRequest struct {
	CommunityID int64 `json:"community_id" binding:"omitempty,min=1"`
}

// SelectionRequest changes part of a session's selection. Omitted fields are kept;
// court_id 0 or an empty date clears them.
type SelectionRequest struct {
	CommunityID *int64  `json:"community_id" binding:"omitempty,min=1"`
	CourtID     *int64  `json:"court_id" binding:"omitempty,min=0"`
	Date        *string `json:"date"`
}

type SubmitRequest struct {
	TimeSlotID int64 `json:"timeslot_id"`
}

// ------------------------
//   Responses
// ------------------------

type WindowResponse struct {
	MinDate string   `json:"min_date"`
	MaxDate string   `json:"max_date"`
	Days    []string `json:"days"`
}

func NewWindowResponse(w planner.Window) WindowResponse {
	days := w.Days()
	resp := WindowResponse{
		MinDate: clock.FormatDate(w.Min),
		MaxDate: clock.FormatDate(w.Max),
		Days:    make([]string, len(days)),
	}
	for i, d := range days {
		resp.Days[i] = clock.FormatDate(d)
	}
	return resp
}

type CourtWindowResponse struct {
	Court  courtHttp.CourtTag `json:"court"`
	Window WindowResponse     `json:"window"`
}

type TimeSlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

func NewTimeSlotResponse(s timeslot.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:        s.ID,
		StartTime: s.Start.String(),
		EndTime:   s.End.String(),
		Label:     s.Start.String() + "-" + s.End.String(),
	}
}

func newTimeSlotResponses(slots []timeslot.TimeSlot) []TimeSlotResponse {
	items := make([]TimeSlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewTimeSlotResponse(s)
	}
	return items
}

type AvailabilityResponse struct {
	Court    courtHttp.CourtTag `json:"court"`
	Date     string             `json:"date"`
	Window   WindowResponse     `json:"window"`
	Free     []TimeSlotResponse `json:"free"`
	Occupied []TimeSlotResponse `json:"occupied"`
}

func NewAvailabilityResponse(a *planner.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Court:    *courtHttp.NewCourtTag(a.Court),
		Date:     clock.FormatDate(a.Date),
		Window:   NewWindowResponse(a.Window),
		Free:     newTimeSlotResponses(a.Slots.Free),
		Occupied: newTimeSlotResponses(a.Slots.Occupied),
	}
}

type ReservationResponse struct {
	ID         int64      `json:"id"`
	CourtID    int64      `json:"court_id"`
	Date       string     `json:"date"`
	TimeSlotID int64      `json:"timeslot_id"`
	UserID     *int64     `json:"user_id,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		CourtID:    r.CourtID,
		Date:       r.Date,
		TimeSlotID: r.TimeSlotID,
		UserID:     r.UserID,
		CreatedAt:  r.CreatedAt,
	}
}

type SessionResponse struct {
	ID          string              `json:"id"`
	CommunityID int64               `json:"community_id,omitempty"`
	Court       *courtHttp.CourtTag `json:"court,omitempty"`
	Date        string              `json:"date,omitempty"`
	Generation  uint64              `json:"generation"`
	Loading     bool                `json:"loading"`
	Submitting  bool                `json:"submitting"`
	Window      *WindowResponse     `json:"window,omitempty"`
	Free        []TimeSlotResponse  `json:"free,omitempty"`
	Occupied    []TimeSlotResponse  `json:"occupied,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewSessionResponse renders the bare session state.
func NewSessionResponse(st *session.State) SessionResponse {
	resp := SessionResponse{
		ID:          st.ID,
		CommunityID: st.CommunityID,
		Date:        st.Date,
		Generation:  st.Generation,
		Loading:     st.Loading,
		Submitting:  st.Submitting,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
	if st.CourtID != 0 {
		resp.Court = &courtHttp.CourtTag{ID: st.CourtID}
	}
	return resp
}

// NewViewResponse renders a session together with its derived window and slots.
func NewViewResponse(v *planner.View) SessionResponse {
	resp := NewSessionResponse(v.Session)
	if v.Court != nil {
		resp.Court = courtHttp.NewCourtTag(v.Court)
	}

	w := NewWindowResponse(v.Window)
	resp.Window = &w

	if v.Slots != nil {
		resp.Free = newTimeSlotResponses(v.Slots.Free)
		resp.Occupied = newTimeSlotResponses(v.Slots.Occupied)
	}
	return resp
}
