package planner

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nekogravitycat/court-booking-planner/internal/court"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/clock"
	"github.com/nekogravitycat/court-booking-planner/internal/reservation"
	"github.com/nekogravitycat/court-booking-planner/internal/session"
	"github.com/nekogravitycat/court-booking-planner/internal/timeslot"
)

var (
	ErrInvalidDate           = apperror.New(http.StatusBadRequest, "date must use the YYYY-MM-DD format")
	ErrDateOutsideWindow     = apperror.New(http.StatusBadRequest, "date is outside the booking window")
	ErrCourtOutsideCommunity = apperror.New(http.StatusBadRequest, "court does not belong to the selected community")
	ErrSubmissionInProgress  = apperror.New(http.StatusConflict, "a reservation is already being submitted")
)

// CourtReader resolves a court together with its community.
type CourtReader interface {
	GetByID(ctx context.Context, id int64) (*court.Court, error)
}

// SlotLister lists the time slots defined for a court or community.
type SlotLister interface {
	List(ctx context.Context, filter timeslot.Filter) ([]timeslot.TimeSlot, error)
}

// ReservationRepository reads occupancy and creates reservations.
type ReservationRepository interface {
	OccupancySource
	Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error)
}

// Availability is the stateless picture of one court on one day.
type Availability struct {
	Court  *court.Court
	Date   time.Time
	Window Window
	Slots  Partition
}

// View is what a planner session shows right now.
type View struct {
	Session *session.State
	Court   *court.Court
	Window  Window
	Date    *time.Time
	Slots   *Partition // Nil until both court and date are selected
}

// SelectionChange carries the fields a caller wants to change. Nil fields are kept.
// A zero CourtID or empty Date clears that part of the selection.
type SelectionChange struct {
	CommunityID *int64
	CourtID     *int64
	Date        *string
}

// BookRequest is a one-shot reservation outside of a session.
type BookRequest struct {
	CourtID    int64
	Date       string
	TimeSlotID int64
}

type Service interface {
	Window(ctx context.Context, courtID int64) (*court.Court, Window, error)
	TimeSlots(ctx context.Context, courtID int64) ([]timeslot.TimeSlot, error)
	Availability(ctx context.Context, courtID int64, date string) (*Availability, error)
	Book(ctx context.Context, req BookRequest) (*reservation.Reservation, error)

	CreateSession(ctx context.Context, communityID int64) (*session.State, error)
	View(ctx context.Context, id string) (*View, error)
	Select(ctx context.Context, id string, change SelectionChange) (*session.State, error)
	Submit(ctx context.Context, id string, timeSlotID int64) (*reservation.Reservation, error)
	DeleteSession(ctx context.Context, id string) error

	// Wait blocks until every outstanding occupancy load has finished.
	Wait()
}

// Deps holds the collaborators of the planner service.
type Deps struct {
	Courts       CourtReader
	Slots        SlotLister
	Reservations ReservationRepository
	Sessions     session.Store
	Clock        clock.Clock
	DefaultDays  int
	Logger       *zap.Logger
}

type service struct {
	courts       CourtReader
	slots        SlotLister
	reservations ReservationRepository
	sessions     session.Store
	clock        clock.Clock
	defaultDays  int
	logger       *zap.Logger

	loads sync.WaitGroup
}

func NewService(deps Deps) Service {
	return &service{
		courts:       deps.Courts,
		slots:        deps.Slots,
		reservations: deps.Reservations,
		sessions:     deps.Sessions,
		clock:        deps.Clock,
		defaultDays:  deps.DefaultDays,
		logger:       deps.Logger,
	}
}

// loadToken tags an occupancy load with the selection it was issued for.
type loadToken struct {
	generation uint64
	courtID    int64
	date       string
}

func (t loadToken) matches(st *session.State) bool {
	return st.Generation == t.generation && st.CourtID == t.courtID && st.Date == t.date
}

func (s *service) parseDate(date string) (time.Time, error) {
	d, err := clock.ParseDate(date, s.clock.Now().Location())
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// slotFilter is shared by every operation that shows a court's slot grid.
func slotFilter(c *court.Court) timeslot.Filter {
	return timeslot.Filter{CourtID: c.ID, CommunityID: c.CommunityID}
}

// courtWithSlots fetches a court and then the slots defined for it.
func (s *service) courtWithSlots(ctx context.Context, courtID int64) (*court.Court, []timeslot.TimeSlot, error) {
	c, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, nil, err
	}
	slots, err := s.slots.List(ctx, slotFilter(c))
	if err != nil {
		return nil, nil, err
	}
	return c, slots, nil
}

func (s *service) window(c *court.Court) Window {
	return NewWindow(s.clock.Now(), WindowLength(c, s.defaultDays))
}

// ------------------------
//   Stateless operations
// ------------------------

func (s *service) Window(ctx context.Context, courtID int64) (*court.Court, Window, error) {
	c, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, Window{}, err
	}
	return c, s.window(c), nil
}

func (s *service) TimeSlots(ctx context.Context, courtID int64) ([]timeslot.TimeSlot, error) {
	c, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	return s.slots.List(ctx, slotFilter(c))
}

func (s *service) Availability(ctx context.Context, courtID int64, date string) (*Availability, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	var (
		c     *court.Court
		slots []timeslot.TimeSlot
		occ   OccupancySet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, slots, err = s.courtWithSlots(gctx, courtID)
		return err
	})
	g.Go(func() error {
		occ = LoadOccupancy(gctx, s.reservations, s.logger, courtID, clock.FormatDate(day))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w := s.window(c)
	if !w.Contains(day) {
		return nil, ErrDateOutsideWindow
	}

	return &Availability{
		Court:  c,
		Date:   day,
		Window: w,
		Slots:  PartitionSlots(slots, occ, day, s.clock.Now()),
	}, nil
}

func (s *service) Book(ctx context.Context, req BookRequest) (*reservation.Reservation, error) {
	if req.CourtID == 0 || req.Date == "" || req.TimeSlotID == 0 {
		return nil, reservation.ErrMissingSelection
	}
	day, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var (
		c   *court.Court
		occ OccupancySet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = s.courts.GetByID(gctx, req.CourtID)
		return err
	})
	g.Go(func() error {
		occ = LoadOccupancy(gctx, s.reservations, s.logger, req.CourtID, clock.FormatDate(day))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !s.window(c).Contains(day) {
		return nil, ErrDateOutsideWindow
	}

	draft, err := ValidateAndBuildReservation(c.ID, &day, req.TimeSlotID, occ)
	if err != nil {
		return nil, err
	}

	res, err := s.reservations.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int64("court_id", draft.CourtID),
		zap.String("date", draft.Date),
		zap.Int64("timeslot_id", draft.TimeSlotID),
	)
	return res, nil
}

// ------------------------
//   Session operations
// ------------------------

func (s *service) CreateSession(ctx context.Context, communityID int64) (*session.State, error) {
	now := s.clock.Now()
	st := &session.State{
		ID:          session.NewID(),
		CommunityID: communityID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.sessions.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) DeleteSession(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

func (s *service) View(ctx context.Context, id string) (*View, error) {
	st, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	v := &View{Session: st}
	var slots []timeslot.TimeSlot

	if st.CourtID != 0 {
		if st.Date != "" {
			v.Court, slots, err = s.courtWithSlots(ctx, st.CourtID)
		} else {
			v.Court, err = s.courts.GetByID(ctx, st.CourtID)
		}
		if err != nil {
			return nil, err
		}
	}

	v.Window = s.window(v.Court)

	if st.Date != "" {
		day, err := s.parseDate(st.Date)
		if err != nil {
			return nil, err
		}
		v.Date = &day

		if v.Court != nil {
			// Occupancy is empty while a load is pending.
			p := PartitionSlots(slots, NewOccupancySet(st.Occupancy...), day, s.clock.Now())
			v.Slots = &p
		}
	}

	return v, nil
}

func (s *service) Select(ctx context.Context, id string, change SelectionChange) (*session.State, error) {
	current, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	communityID, courtID, date := current.CommunityID, current.CourtID, current.Date

	if change.CommunityID != nil && *change.CommunityID != communityID {
		communityID, courtID, date = *change.CommunityID, 0, ""
	}
	if change.CourtID != nil {
		courtID = *change.CourtID
		if courtID == 0 {
			date = ""
		}
	}

	var c *court.Court
	if courtID != 0 {
		c, err = s.courts.GetByID(ctx, courtID)
		if err != nil {
			return nil, err
		}
		if communityID != 0 && c.CommunityID != communityID {
			return nil, ErrCourtOutsideCommunity
		}
	}

	if change.Date != nil {
		date = *change.Date
	}
	if date != "" {
		day, err := s.parseDate(date)
		if err != nil {
			return nil, err
		}
		switch {
		case s.window(c).Contains(day):
			date = clock.FormatDate(day)
		case change.Date != nil:
			return nil, ErrDateOutsideWindow
		default:
			// The new court's window no longer offers the kept date.
			date = ""
		}
	}

	var tok loadToken
	st, err := s.sessions.Update(ctx, id, func(st *session.State) error {
		st.CommunityID = communityID
		st.CourtID = courtID
		st.Date = date
		st.Generation++
		st.Occupancy = nil
		st.Loading = courtID != 0 && date != ""
		tok = loadToken{generation: st.Generation, courtID: courtID, date: date}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if st.Loading {
		s.startLoad(ctx, id, tok)
	}
	return st, nil
}

// Wait blocks until every background occupancy load has been applied or discarded.
func (s *service) Wait() {
	s.loads.Wait()
}

// startLoad fetches occupancy in the background and applies it only while the
// session still holds the selection tok was issued for.
func (s *service) startLoad(ctx context.Context, id string, tok loadToken) {
	ctx = context.WithoutCancel(ctx)

	s.loads.Add(1)
	go func() {
		defer s.loads.Done()

		occ := LoadOccupancy(ctx, s.reservations, s.logger, tok.courtID, tok.date)

		_, err := s.sessions.Update(ctx, id, func(st *session.State) error {
			if !tok.matches(st) {
				return session.ErrSkip
			}
			st.Occupancy = occ.IDs()
			st.Loading = false
			return nil
		})
		switch {
		case err == nil:
		case errors.Is(err, session.ErrSkip):
			s.logger.Debug("discarding stale occupancy",
				zap.String("session_id", id),
				zap.Uint64("generation", tok.generation),
				zap.Int64("court_id", tok.courtID),
				zap.String("date", tok.date),
			)
		default:
			s.logger.Warn("failed to store occupancy",
				zap.String("session_id", id),
				zap.Error(err),
			)
		}
	}()
}

func (s *service) Submit(ctx context.Context, id string, timeSlotID int64) (*reservation.Reservation, error) {
	snapshot, err := s.sessions.Update(ctx, id, func(st *session.State) error {
		if st.Submitting {
			return ErrSubmissionInProgress
		}
		st.Submitting = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	res, err := s.submit(ctx, snapshot, timeSlotID)
	s.finishSubmit(ctx, snapshot, err == nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		zap.String("session_id", id),
		zap.Int64("reservation_id", res.ID),
		zap.Int64("court_id", res.CourtID),
		zap.String("date", res.Date),
		zap.Int64("timeslot_id", res.TimeSlotID),
	)
	return res, nil
}

func (s *service) submit(ctx context.Context, snapshot *session.State, timeSlotID int64) (*reservation.Reservation, error) {
	var day *time.Time
	if snapshot.Date != "" {
		d, err := s.parseDate(snapshot.Date)
		if err != nil {
			return nil, err
		}
		day = &d
	}

	draft, err := ValidateAndBuildReservation(snapshot.CourtID, day, timeSlotID, NewOccupancySet(snapshot.Occupancy...))
	if err != nil {
		return nil, err
	}

	// The window may have moved since the date was selected.
	c, err := s.courts.GetByID(ctx, snapshot.CourtID)
	if err != nil {
		return nil, err
	}
	if !s.window(c).Contains(*day) {
		return nil, ErrDateOutsideWindow
	}

	return s.reservations.Create(ctx, draft)
}

// finishSubmit releases the in-flight flag. After a success the date and its
// occupancy are cleared so the next booking starts from a fresh day choice;
// the court stays selected. A failed submission keeps the draft for a retry.
func (s *service) finishSubmit(ctx context.Context, snapshot *session.State, succeeded bool) {
	ctx = context.WithoutCancel(ctx)

	_, err := s.sessions.Update(ctx, snapshot.ID, func(st *session.State) error {
		st.Submitting = false
		if succeeded && st.CourtID == snapshot.CourtID && st.Date == snapshot.Date {
			st.Date = ""
			st.Occupancy = nil
			st.Loading = false
			st.Generation++
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to release submission flag",
			zap.String("session_id", snapshot.ID),
			zap.Error(err),
		)
	}
}
