package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	bookstoreRepo "github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/repository"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/auth"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/cache"
)

// Policy holds the rental and token rules.
type Policy struct {
	PickupDays     int           `envconfig:"RESERVATION_PICKUP_DAYS" default:"3"`
	CancelDays     int           `envconfig:"RESERVATION_CANCEL_DAYS" default:"5"`
	RentalDays     int           `envconfig:"RENTAL_DAYS" default:"14"`
	DailyPenalty   float64       `envconfig:"OVERDUE_DAILY_PENALTY" default:"5"`
	MembershipDays int           `envconfig:"MEMBERSHIP_DAYS" default:"365"`
	TokenTTL       time.Duration `envconfig:"TOKEN_TTL" default:"0"`
}

func DefaultPolicy() Policy {
	return Policy{
		PickupDays:     3,
		CancelDays:     5,
		RentalDays:     14,
		DailyPenalty:   5,
		MembershipDays: 365,
	}
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

type Service struct {
	log    *zap.Logger
	repo   bookstoreRepo.Repository
	cache  cache.Cache
	events Publisher
	policy Policy
	now    func() time.Time
}

type Option func(*Service)

func WithCache(c cache.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func WithPolicy(p Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo bookstoreRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		cache:  cache.Noop(),
		events: NoopPublisher(),
		policy: DefaultPolicy(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// authorize lets admins act for anyone and customers only for themselves.
func authorize(ctx context.Context, userID int64) error {
	if _, err := auth.GetPrincipal(ctx); err != nil {
		return errs.ErrUnauthorized
	}
	if !auth.CanActFor(ctx, userID) {
		return errs.ErrForbidden
	}
	return nil
}

// scope returns the user id a listing must be restricted to: zero for admins.
func scope(ctx context.Context, requested int64) (int64, error) {
	p, err := auth.GetPrincipal(ctx)
	if err != nil {
		return 0, errs.ErrUnauthorized
	}
	if p.Role == auth.RoleAdmin {
		return requested, nil
	}
	if requested != 0 && requested != p.UserID {
		return 0, errs.ErrForbidden
	}
	return p.UserID, nil
}
