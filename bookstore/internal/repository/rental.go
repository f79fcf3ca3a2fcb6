package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

type RentalRepository interface {
	CreateReservation(ctx context.Context, br model.BookReservation) (model.BookReservation, error)
	GetReservation(ctx context.Context, id int64) (model.BookReservation, error)
	ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.BookReservation, error)
	UpdateReservationPayment(ctx context.Context, id int64, p model.PaymentDetails) (model.BookReservation, error)
	// TransitionReservation is a compare-and-set on status. ErrInvalidTransition when status moved.
	TransitionReservation(ctx context.Context, id int64, from, to model.ReservationStatus, at time.Time) error
	// SweepReservations moves every reservation in from created before cutoff to to
	// and returns the rows it moved.
	SweepReservations(ctx context.Context, from, to model.ReservationStatus, cutoff time.Time) ([]model.ExpiredReservation, error)
	DeleteReservation(ctx context.Context, id int64) error

	CreateActiveRental(ctx context.Context, ar model.ActiveRental) (model.ActiveRental, error)
	GetActiveRental(ctx context.Context, id int64) (model.ActiveRental, error)
	ListActiveRentals(ctx context.Context, f model.RentalFilter) ([]model.ActiveRental, error)
	TransitionActiveRental(ctx context.Context, id int64, from, to model.ActiveRentalStatus) error
	DeleteActiveRental(ctx context.Context, id int64) error

	CreateRental(ctx context.Context, rt model.Rental) (model.Rental, error)
	GetRental(ctx context.Context, id int64) (model.Rental, error)
	ListRentals(ctx context.Context, userID int64, page, size int) ([]model.Rental, error)
	DeleteRental(ctx context.Context, id int64) error

	CreateOverdue(ctx context.Context, o model.Overdue) (model.Overdue, error)
	GetOverdue(ctx context.Context, id int64) (model.Overdue, error)
	ListOverdues(ctx context.Context, userID int64, page, size int) ([]model.Overdue, error)
	UpdateOverdue(ctx context.Context, id int64, req model.OverdueUpdateRequest) (model.Overdue, error)
	// MarkOverdueReturned flags the overdue row of a rental, if any, as returned.
	MarkOverdueReturned(ctx context.Context, activeRentalID int64) error
	DeleteOverdue(ctx context.Context, id int64) error
}

var (
	reservationColumns = []string{"id", "user_id", "membership_card_id", "book_id", "reservation_code", "status",
		"pickup_deadline", "picked_up_at", "payment_method", "card_holder_name", "card_last_four", "card_expiry",
		"created_at", "updated_at"}
	activeRentalColumns = []string{"id", "user_id", "book_id", "reservation_id", "status", "rental_date", "due_date",
		"created_at", "updated_at"}
	rentalColumns  = []string{"id", "active_rental_id", "user_id", "book_id", "rental_date", "due_date", "return_date", "days_late", "created_at"}
	overdueColumns = []string{"id", "active_rental_id", "user_id", "book_id", "days_overdue", "penalty_amount", "is_paid",
		"is_returned", "created_at", "updated_at"}
)

func (r *repository) CreateReservation(ctx context.Context, br model.BookReservation) (model.BookReservation, error) {
	q := qb.Insert(bookReservationsTableName).
		SetMap(map[string]any{
			"user_id":            br.UserID,
			"membership_card_id": br.MembershipCardID,
			"book_id":            br.BookID,
			"reservation_code":   br.ReservationCode,
			"status":             br.Status,
			"pickup_deadline":    br.PickupDeadline,
			"payment_method":     br.PaymentMethod,
			"card_holder_name":   br.CardHolderName,
			"card_last_four":     br.CardLastFour,
			"card_expiry":        br.CardExpiry,
			"created_at":         br.CreatedAt,
			"updated_at":         br.CreatedAt,
		}).
		Suffix(returning(reservationColumns))
	return collectOne[model.BookReservation](ctx, r, "CreateReservation", q)
}

func (r *repository) GetReservation(ctx context.Context, id int64) (model.BookReservation, error) {
	q := qb.Select(reservationColumns...).From(bookReservationsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.BookReservation](ctx, r, "GetReservation", q)
}

func (r *repository) ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.BookReservation, error) {
	q := qb.Select(reservationColumns...).From(bookReservationsTableName).OrderBy("id DESC")
	if f.UserID != 0 {
		q = q.Where(sq.Eq{"user_id": f.UserID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	return collectList[model.BookReservation](ctx, r, "ListReservations", page(q, f.Page, f.Size))
}

func (r *repository) UpdateReservationPayment(ctx context.Context, id int64, p model.PaymentDetails) (model.BookReservation, error) {
	holder, lastFour, expiry := p.Stored()
	q := qb.Update(bookReservationsTableName).
		SetMap(map[string]any{
			"payment_method":   p.PaymentMethod,
			"card_holder_name": holder,
			"card_last_four":   lastFour,
			"card_expiry":      expiry,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(reservationColumns))
	return collectOne[model.BookReservation](ctx, r, "UpdateReservationPayment", q)
}

func (r *repository) TransitionReservation(ctx context.Context, id int64, from, to model.ReservationStatus, at time.Time) error {
	q := qb.Update(bookReservationsTableName).
		Set("status", to).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": from})
	if to == model.ReservationPicked {
		q = q.Set("picked_up_at", at)
	}
	_, err := r.exec(ctx, "TransitionReservation", q, errs.ErrInvalidTransition)
	return err
}

func (r *repository) SweepReservations(ctx context.Context, from, to model.ReservationStatus, cutoff time.Time) ([]model.ExpiredReservation, error) {
	q := qb.Update(bookReservationsTableName).
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"status": from}).
		Where(sq.Lt{"created_at": cutoff}).
		Suffix("RETURNING id, user_id, book_id")
	return collectList[model.ExpiredReservation](ctx, r, "SweepReservations", q)
}

func (r *repository) DeleteReservation(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteReservation", bookReservationsTableName, id)
}

func (r *repository) CreateActiveRental(ctx context.Context, ar model.ActiveRental) (model.ActiveRental, error) {
	q := qb.Insert(activeRentalsTableName).
		Columns("user_id", "book_id", "reservation_id", "status", "rental_date", "due_date").
		Values(ar.UserID, ar.BookID, ar.ReservationID, ar.Status, ar.RentalDate, ar.DueDate).
		Suffix(returning(activeRentalColumns))
	return collectOne[model.ActiveRental](ctx, r, "CreateActiveRental", q)
}

func (r *repository) GetActiveRental(ctx context.Context, id int64) (model.ActiveRental, error) {
	q := qb.Select(activeRentalColumns...).From(activeRentalsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.ActiveRental](ctx, r, "GetActiveRental", q)
}

func (r *repository) ListActiveRentals(ctx context.Context, f model.RentalFilter) ([]model.ActiveRental, error) {
	q := qb.Select(activeRentalColumns...).From(activeRentalsTableName).OrderBy("id DESC")
	if f.UserID != 0 {
		q = q.Where(sq.Eq{"user_id": f.UserID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	return collectList[model.ActiveRental](ctx, r, "ListActiveRentals", page(q, f.Page, f.Size))
}

func (r *repository) TransitionActiveRental(ctx context.Context, id int64, from, to model.ActiveRentalStatus) error {
	q := qb.Update(activeRentalsTableName).
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": from})
	_, err := r.exec(ctx, "TransitionActiveRental", q, errs.ErrInvalidTransition)
	return err
}

func (r *repository) DeleteActiveRental(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteActiveRental", activeRentalsTableName, id)
}

func (r *repository) CreateRental(ctx context.Context, rt model.Rental) (model.Rental, error) {
	q := qb.Insert(rentalsTableName).
		Columns("active_rental_id", "user_id", "book_id", "rental_date", "due_date", "return_date", "days_late").
		Values(rt.ActiveRentalID, rt.UserID, rt.BookID, rt.RentalDate, rt.DueDate, rt.ReturnDate, rt.DaysLate).
		Suffix(returning(rentalColumns))
	return collectOne[model.Rental](ctx, r, "CreateRental", q)
}

func (r *repository) GetRental(ctx context.Context, id int64) (model.Rental, error) {
	q := qb.Select(rentalColumns...).From(rentalsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.Rental](ctx, r, "GetRental", q)
}

func (r *repository) ListRentals(ctx context.Context, userID int64, pg, size int) ([]model.Rental, error) {
	q := qb.Select(rentalColumns...).From(rentalsTableName).OrderBy("id DESC")
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return collectList[model.Rental](ctx, r, "ListRentals", page(q, pg, size))
}

func (r *repository) DeleteRental(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteRental", rentalsTableName, id)
}

func (r *repository) CreateOverdue(ctx context.Context, o model.Overdue) (model.Overdue, error) {
	q := qb.Insert(overduesTableName).
		Columns("active_rental_id", "user_id", "book_id", "days_overdue", "penalty_amount").
		Values(o.ActiveRentalID, o.UserID, o.BookID, o.DaysOverdue, o.PenaltyAmount).
		Suffix(returning(overdueColumns))
	return collectOne[model.Overdue](ctx, r, "CreateOverdue", q)
}

func (r *repository) GetOverdue(ctx context.Context, id int64) (model.Overdue, error) {
	q := qb.Select(overdueColumns...).From(overduesTableName).Where(sq.Eq{"id": id})
	return collectOne[model.Overdue](ctx, r, "GetOverdue", q)
}

func (r *repository) ListOverdues(ctx context.Context, userID int64, pg, size int) ([]model.Overdue, error) {
	q := qb.Select(overdueColumns...).From(overduesTableName).OrderBy("id DESC")
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return collectList[model.Overdue](ctx, r, "ListOverdues", page(q, pg, size))
}

func (r *repository) UpdateOverdue(ctx context.Context, id int64, req model.OverdueUpdateRequest) (model.Overdue, error) {
	q := qb.Update(overduesTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(overdueColumns))
	if req.IsPaid != nil {
		q = q.Set("is_paid", *req.IsPaid)
	}
	if req.IsReturned != nil {
		q = q.Set("is_returned", *req.IsReturned)
	}
	return collectOne[model.Overdue](ctx, r, "UpdateOverdue", q)
}

func (r *repository) MarkOverdueReturned(ctx context.Context, activeRentalID int64) error {
	q := qb.Update(overduesTableName).
		Set("is_returned", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"active_rental_id": activeRentalID})
	_, err := r.exec(ctx, "MarkOverdueReturned", q, nil)
	return err
}

func (r *repository) DeleteOverdue(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteOverdue", overduesTableName, id)
}
