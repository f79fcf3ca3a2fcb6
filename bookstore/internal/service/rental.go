package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/repository"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/auth"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/kafka"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/metrics"
)

func newReservationCode() string {
	return "RES-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Reserve places a hold on one unit of a rent book for the owner of the given
// membership card.
func (s *Service) Reserve(ctx context.Context, req model.ReservationRequest) (model.BookReservation, error) {
	p, err := auth.GetPrincipal(ctx)
	if err != nil {
		return model.BookReservation{}, errs.ErrUnauthorized
	}
	card, err := s.repo.GetMembershipCardByNumber(ctx, req.CardNumber)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BookReservation{}, errs.Field("card_number", "membership card not found")
		}
		return model.BookReservation{}, err
	}
	if p.Role != auth.RoleAdmin && card.UserID != p.UserID {
		return model.BookReservation{}, errs.ErrForbidden
	}
	now := s.now()
	if card.Expired(now) {
		return model.BookReservation{}, errs.ErrMembershipExpired
	}
	if _, err := s.repo.GetBookToRent(ctx, req.BookID); err != nil {
		return model.BookReservation{}, err
	}

	holder, lastFour, expiry := req.Stored()
	var created model.BookReservation
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		if err := repo.ReserveBook(ctx, req.BookID); err != nil {
			return err
		}
		created, err = repo.CreateReservation(ctx, model.BookReservation{
			UserID:           card.UserID,
			MembershipCardID: card.ID,
			BookID:           req.BookID,
			ReservationCode:  newReservationCode(),
			Status:           model.ReservationWaiting,
			PickupDeadline:   now.Add(days(s.policy.PickupDays)),
			PaymentMethod:    req.PaymentMethod,
			CardHolderName:   holder,
			CardLastFour:     lastFour,
			CardExpiry:       expiry,
			CreatedAt:        now,
		})
		return err
	})
	if err != nil {
		return model.BookReservation{}, err
	}
	metrics.Reservations.WithLabelValues(string(model.ReservationWaiting)).Inc()
	s.publish(ctx, kafka.EventReservationCreated, created.UserID, created.BookID, created.ID, 0)
	return created, nil
}

// SweepReservations expires waiting holds past the pickup window and cancels
// expired ones past the cancel window, returning their units to stock.
func (s *Service) SweepReservations(ctx context.Context) (model.SweepResult, error) {
	now := s.now()
	var expired, cancelled []model.ExpiredReservation
	err := s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		expired, err = repo.SweepReservations(ctx, model.ReservationWaiting, model.ReservationExpired,
			now.Add(-days(s.policy.PickupDays)))
		if err != nil {
			return err
		}
		cancelled, err = repo.SweepReservations(ctx, model.ReservationExpired, model.ReservationCancelled,
			now.Add(-days(s.policy.CancelDays)))
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(cancelled))
		for _, r := range cancelled {
			ids = append(ids, r.BookID)
		}
		return repo.ReleaseBooks(ctx, ids...)
	})
	if err != nil {
		return model.SweepResult{}, err
	}
	for _, r := range expired {
		s.publish(ctx, kafka.EventReservationExpired, r.UserID, r.BookID, r.ID, 0)
	}
	for _, r := range cancelled {
		s.publish(ctx, kafka.EventReservationCancelled, r.UserID, r.BookID, r.ID, 0)
	}
	metrics.Reservations.WithLabelValues(string(model.ReservationExpired)).Add(float64(len(expired)))
	metrics.Reservations.WithLabelValues(string(model.ReservationCancelled)).Add(float64(len(cancelled)))
	if len(expired)+len(cancelled) > 0 {
		s.log.Info("reservations swept", zap.Int("expired", len(expired)), zap.Int("cancelled", len(cancelled)))
	}
	return model.SweepResult{Expired: len(expired), Cancelled: len(cancelled)}, nil
}

// ListReservations sweeps stale holds before listing.
func (s *Service) ListReservations(ctx context.Context, f model.ReservationFilter) (model.List[model.BookReservation], error) {
	userID, err := scope(ctx, f.UserID)
	if err != nil {
		return model.List[model.BookReservation]{}, err
	}
	if _, err := s.SweepReservations(ctx); err != nil {
		return model.List[model.BookReservation]{}, err
	}
	f.UserID = userID
	f.Page, f.Size, _ = model.NormalizePage(f.Page, f.Size)
	items, err := s.repo.ListReservations(ctx, f)
	if err != nil {
		return model.List[model.BookReservation]{}, err
	}
	return model.NewList(items, f.Page, f.Size), nil
}

func (s *Service) GetReservation(ctx context.Context, id int64) (model.BookReservation, error) {
	r, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return model.BookReservation{}, err
	}
	if err := authorize(ctx, r.UserID); err != nil {
		return model.BookReservation{}, err
	}
	return r, nil
}

func (s *Service) CancelReservation(ctx context.Context, id int64) (model.BookReservation, error) {
	r, err := s.GetReservation(ctx, id)
	if err != nil {
		return model.BookReservation{}, err
	}
	if err := r.Status.Transition(model.ReservationCancelled); err != nil {
		return model.BookReservation{}, err
	}
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		if err := repo.TransitionReservation(ctx, id, r.Status, model.ReservationCancelled, s.now()); err != nil {
			return err
		}
		if r.Status.HoldsStock() {
			return repo.ReleaseBooks(ctx, r.BookID)
		}
		return nil
	})
	if err != nil {
		return model.BookReservation{}, err
	}
	metrics.Reservations.WithLabelValues(string(model.ReservationCancelled)).Inc()
	s.publish(ctx, kafka.EventReservationCancelled, r.UserID, r.BookID, r.ID, 0)
	return s.repo.GetReservation(ctx, id)
}

// PickupReservation hands the held unit over: the reservation becomes picked and
// an active rental starts. Stock was already taken at reservation time.
func (s *Service) PickupReservation(ctx context.Context, id int64) (model.ActiveRental, error) {
	r, err := s.GetReservation(ctx, id)
	if err != nil {
		return model.ActiveRental{}, err
	}
	if err := r.Status.Transition(model.ReservationPicked); err != nil {
		return model.ActiveRental{}, err
	}
	now := s.now()
	var ar model.ActiveRental
	err = s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		if err = repo.TransitionReservation(ctx, id, r.Status, model.ReservationPicked, now); err != nil {
			return err
		}
		reservationID := r.ID
		ar, err = repo.CreateActiveRental(ctx, model.ActiveRental{
			UserID:        r.UserID,
			BookID:        r.BookID,
			ReservationID: &reservationID,
			Status:        model.RentalActive,
			RentalDate:    now,
			DueDate:       now.Add(days(s.policy.RentalDays)),
		})
		if err != nil {
			return err
		}
		return repo.MarkBookRented(ctx, r.BookID)
	})
	if err != nil {
		return model.ActiveRental{}, err
	}
	metrics.Reservations.WithLabelValues(string(model.ReservationPicked)).Inc()
	s.publish(ctx, kafka.EventRentalStarted, ar.UserID, ar.BookID, ar.ID, 0)
	return ar, nil
}

// UpdateReservation changes the payment display fields of a waiting reservation.
func (s *Service) UpdateReservation(ctx context.Context, id int64, req model.PaymentDetails) (model.BookReservation, error) {
	r, err := s.GetReservation(ctx, id)
	if err != nil {
		return model.BookReservation{}, err
	}
	if r.Status != model.ReservationWaiting {
		return model.BookReservation{}, errs.Field("status", "only waiting reservations can be changed")
	}
	return s.repo.UpdateReservationPayment(ctx, id, req)
}

// DeleteReservation removes a reservation; a hold still owning a unit gives it back.
func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	return s.repo.InTx(ctx, func(repo repository.Repository) error {
		r, err := repo.GetReservation(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteReservation(ctx, id); err != nil {
			return err
		}
		if r.Status.HoldsStock() {
			return repo.ReleaseBooks(ctx, r.BookID)
		}
		return nil
	})
}

func (s *Service) ListActiveRentals(ctx context.Context, f model.RentalFilter) (model.List[model.ActiveRental], error) {
	userID, err := scope(ctx, f.UserID)
	if err != nil {
		return model.List[model.ActiveRental]{}, err
	}
	f.UserID = userID
	f.Page, f.Size, _ = model.NormalizePage(f.Page, f.Size)
	items, err := s.repo.ListActiveRentals(ctx, f)
	if err != nil {
		return model.List[model.ActiveRental]{}, err
	}
	return model.NewList(items, f.Page, f.Size), nil
}

func (s *Service) GetActiveRental(ctx context.Context, id int64) (model.ActiveRental, error) {
	ar, err := s.repo.GetActiveRental(ctx, id)
	if err != nil {
		return model.ActiveRental{}, err
	}
	if err := authorize(ctx, ar.UserID); err != nil {
		return model.ActiveRental{}, err
	}
	return ar, nil
}

// CreateWalkInRental rents a book over the counter without a prior reservation.
func (s *Service) CreateWalkInRental(ctx context.Context, req model.WalkInRentalRequest) (model.ActiveRental, error) {
	if _, err := s.repo.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.ActiveRental{}, errs.Field("user_id", "does not exist")
		}
		return model.ActiveRental{}, err
	}
	if _, err := s.repo.GetBookToRent(ctx, req.BookID); err != nil {
		return model.ActiveRental{}, err
	}
	rentalDays := req.RentalDays
	if rentalDays == 0 {
		rentalDays = s.policy.RentalDays
	}
	now := s.now()
	var ar model.ActiveRental
	err := s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		if err = repo.TakeBook(ctx, req.BookID); err != nil {
			return err
		}
		ar, err = repo.CreateActiveRental(ctx, model.ActiveRental{
			UserID:     req.UserID,
			BookID:     req.BookID,
			Status:     model.RentalActive,
			RentalDate: now,
			DueDate:    now.Add(days(rentalDays)),
		})
		return err
	})
	if err != nil {
		return model.ActiveRental{}, err
	}
	s.publish(ctx, kafka.EventRentalStarted, ar.UserID, ar.BookID, ar.ID, 0)
	return ar, nil
}

// MarkOverdue assesses the late penalty of an active rental.
func (s *Service) MarkOverdue(ctx context.Context, id int64) (model.Overdue, error) {
	ar, err := s.repo.GetActiveRental(ctx, id)
	if err != nil {
		return model.Overdue{}, err
	}
	if err := ar.Status.Transition(model.RentalOverdue); err != nil {
		return model.Overdue{}, err
	}
	daysOverdue := model.DaysLate(ar.DueDate, s.now())
	penalty := model.Money(float64(daysOverdue) * s.policy.DailyPenalty)
	var o model.Overdue
	err = s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		if err = repo.TransitionActiveRental(ctx, id, ar.Status, model.RentalOverdue); err != nil {
			return err
		}
		o, err = repo.CreateOverdue(ctx, model.Overdue{
			ActiveRentalID: ar.ID,
			UserID:         ar.UserID,
			BookID:         ar.BookID,
			DaysOverdue:    daysOverdue,
			PenaltyAmount:  penalty,
		})
		return err
	})
	if err != nil {
		return model.Overdue{}, err
	}
	metrics.Penalties.Add(penalty)
	s.publish(ctx, kafka.EventRentalOverdue, ar.UserID, ar.BookID, ar.ID, penalty)
	return o, nil
}

func (s *Service) DeleteActiveRental(ctx context.Context, id int64) error {
	return s.repo.InTx(ctx, func(repo repository.Repository) error {
		ar, err := repo.GetActiveRental(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteActiveRental(ctx, id); err != nil {
			return err
		}
		if ar.Status != model.RentalReturned {
			return repo.ReleaseBooks(ctx, ar.BookID)
		}
		return nil
	})
}

// ReturnRental closes an active rental: a history row is written, the unit goes
// back to stock and any overdue record is flagged returned. A second return of
// the same rental fails with ErrAlreadyReturned.
func (s *Service) ReturnRental(ctx context.Context, req model.ReturnRequest) (model.Rental, error) {
	ar, err := s.GetActiveRental(ctx, req.ActiveRentalID)
	if err != nil {
		return model.Rental{}, err
	}
	if err := ar.Status.Transition(model.RentalReturned); err != nil {
		return model.Rental{}, err
	}
	returnDate := s.now()
	if d := req.ReturnDate.Ptr(); d != nil {
		returnDate = *d
	}
	daysLate := model.DaysLate(ar.DueDate, returnDate)
	if req.DaysLate != nil {
		daysLate = *req.DaysLate
	}
	var rt model.Rental
	err = s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		if err = repo.TransitionActiveRental(ctx, ar.ID, ar.Status, model.RentalReturned); err != nil {
			if errors.Is(err, errs.ErrInvalidTransition) {
				return errs.ErrAlreadyReturned
			}
			return err
		}
		rt, err = repo.CreateRental(ctx, model.Rental{
			ActiveRentalID: ar.ID,
			UserID:         ar.UserID,
			BookID:         ar.BookID,
			RentalDate:     ar.RentalDate,
			DueDate:        ar.DueDate,
			ReturnDate:     returnDate,
			DaysLate:       daysLate,
		})
		if err != nil {
			return err
		}
		if err = repo.ReleaseBooks(ctx, ar.BookID); err != nil {
			return err
		}
		return repo.MarkOverdueReturned(ctx, ar.ID)
	})
	if err != nil {
		return model.Rental{}, err
	}
	metrics.Returns.Inc()
	s.publish(ctx, kafka.EventRentalReturned, rt.UserID, rt.BookID, rt.ID, 0)
	return rt, nil
}

func (s *Service) ListRentals(ctx context.Context, userID int64, page, size int) (model.List[model.Rental], error) {
	userID, err := scope(ctx, userID)
	if err != nil {
		return model.List[model.Rental]{}, err
	}
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListRentals(ctx, userID, page, size)
	if err != nil {
		return model.List[model.Rental]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetRental(ctx context.Context, id int64) (model.Rental, error) {
	rt, err := s.repo.GetRental(ctx, id)
	if err != nil {
		return model.Rental{}, err
	}
	if err := authorize(ctx, rt.UserID); err != nil {
		return model.Rental{}, err
	}
	return rt, nil
}

func (s *Service) DeleteRental(ctx context.Context, id int64) error {
	return s.repo.DeleteRental(ctx, id)
}

func (s *Service) ListOverdues(ctx context.Context, userID int64, page, size int) (model.List[model.Overdue], error) {
	userID, err := scope(ctx, userID)
	if err != nil {
		return model.List[model.Overdue]{}, err
	}
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListOverdues(ctx, userID, page, size)
	if err != nil {
		return model.List[model.Overdue]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetOverdue(ctx context.Context, id int64) (model.Overdue, error) {
	o, err := s.repo.GetOverdue(ctx, id)
	if err != nil {
		return model.Overdue{}, err
	}
	if err := authorize(ctx, o.UserID); err != nil {
		return model.Overdue{}, err
	}
	return o, nil
}

func (s *Service) UpdateOverdue(ctx context.Context, id int64, req model.OverdueUpdateRequest) (model.Overdue, error) {
	return s.repo.UpdateOverdue(ctx, id, req)
}

func (s *Service) DeleteOverdue(ctx context.Context, id int64) error {
	return s.repo.DeleteOverdue(ctx, id)
}
