package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/nekogravitycat/court-booking-planner/internal/community"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
}

type service struct {
	repo          Repository
	communityRepo community.Repository
}

func NewService(repo Repository, communityRepo community.Repository) Service {
	return &service{
		repo:          repo,
		communityRepo: communityRepo,
	}
}

// GetByID returns the court with its community attached.
// The community is looked up separately when the court payload does not embed it,
// because the booking window falls back to the community's setting.
func (s *service) GetByID(ctx context.Context, id int64) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Community != nil || c.CommunityID == 0 || c.MaxBookingDays != nil {
		return c, nil
	}

	cm, err := s.communityRepo.GetByID(ctx, c.CommunityID)
	if err != nil {
		if errors.Is(err, community.ErrNotFound) {
			return c, nil
		}
		return nil, fmt.Errorf("load community of court %d: %w", c.ID, err)
	}
	c.Community = cm
	return c, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}
