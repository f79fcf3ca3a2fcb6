package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

type StatsRepository interface {
	Metric(ctx context.Context, m model.DashboardMetric) (float64, error)
	SaveEvent(ctx context.Context, e model.RentalEvent) error
	EventStats(ctx context.Context) ([]model.EventStat, error)
}

var metricQueries = map[model.DashboardMetric]sq.SelectBuilder{
	model.MetricBooksToRent:         qb.Select("count(*)").From(bookToRentTableName),
	model.MetricBooksToSell:         qb.Select("count(*)").From(bookToSellTableName),
	model.MetricUsers:               qb.Select("count(*)").From(usersTableName),
	model.MetricMembers:             qb.Select("count(*)").From(usersTableName).Where(sq.Eq{"is_member": true}),
	model.MetricWaitingReservations: qb.Select("count(*)").From(bookReservationsTableName).Where(sq.Eq{"status": model.ReservationWaiting}),
	model.MetricActiveRentals:       qb.Select("count(*)").From(activeRentalsTableName).Where(sq.Eq{"status": model.RentalActive}),
	model.MetricOverdueRentals:      qb.Select("count(*)").From(activeRentalsTableName).Where(sq.Eq{"status": model.RentalOverdue}),
	model.MetricUnpaidPenalties:     qb.Select("coalesce(sum(penalty_amount), 0)").From(overduesTableName).Where(sq.Eq{"is_paid": false}),
	model.MetricRevenue:             qb.Select("coalesce(sum(amount), 0)").From(transactionsTableName).Where(sq.Eq{"status": model.TransactionCompleted}),
}

func (r *repository) Metric(ctx context.Context, m model.DashboardMetric) (float64, error) {
	b, ok := metricQueries[m]
	if !ok {
		return 0, fmt.Errorf("unknown metric %q", m)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var v float64
	if err := r.db.QueryRow(ctx, "SELECT ("+query+")::float8", args...).Scan(&v); err != nil {
		r.log.Error("Metric", zap.String("metric", string(m)), zap.Error(err))
		return 0, err
	}
	return v, nil
}

func (r *repository) SaveEvent(ctx context.Context, e model.RentalEvent) error {
	q := qb.Insert(rentalEventsTableName).
		Columns("event_type", "user_id", "book_id", "ref_id", "amount", "created_at").
		Values(e.EventType, e.UserID, e.BookID, e.RefID, e.Amount, e.CreatedAt)
	_, err := r.exec(ctx, "SaveEvent", q, nil)
	return err
}

func (r *repository) EventStats(ctx context.Context) ([]model.EventStat, error) {
	q := qb.Select(
		"event_type",
		"count(*) AS count",
		"coalesce(sum(amount), 0)::float8 AS amount",
		"max(created_at) AS last_at",
	).
		From(rentalEventsTableName).
		GroupBy("event_type").
		OrderBy("event_type")
	return collectList[model.EventStat](ctx, r, "EventStats", q)
}
