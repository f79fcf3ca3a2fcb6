package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
)

type Repository interface {
	CatalogRepository
	IdentityRepository
	CommerceRepository
	RentalRepository
	StatsRepository

	// InTx runs fn against a repository bound to one database transaction.
	// Nested calls reuse the outer transaction.
	InTx(ctx context.Context, fn func(Repository) error) error
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db   querier
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:   db,
		pool: db,
		log:  log.Named("repo"),
	}, nil
}

func (r *repository) InTx(ctx context.Context, fn func(Repository) error) error {
	if r.pool == nil {
		return fn(r)
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&repository{db: tx, log: r.log})
	})
}

const (
	authorsTableName          = `authors`
	categoriesTableName       = `categories`
	bookToRentTableName       = `book_to_rent`
	bookToSellTableName       = `book_to_sell`
	usersTableName            = `users`
	membershipCardsTableName  = `membership_cards`
	accessTokensTableName     = `access_tokens`
	cartsTableName            = `carts`
	cartItemsTableName        = `cart_items`
	wishlistsTableName        = `wishlists`
	ordersTableName           = `orders`
	orderBooksTableName       = `order_books`
	bookPurchasesTableName    = `book_purchases`
	transactionsTableName     = `transactions`
	bookReservationsTableName = `book_reservations`
	activeRentalsTableName    = `active_rentals`
	rentalsTableName          = `rentals`
	overduesTableName         = `overdues`
	rentalEventsTableName     = `rental_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

func page(q sq.SelectBuilder, pg, size int) sq.SelectBuilder {
	if pg != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((pg - 1) * size))
	}
	return q
}

func collectOne[T any](ctx context.Context, r *repository, op string, b sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error(op, zap.String("q", query), zap.Error(err))
		return zero, mapErr(err)
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.log.Error(op, zap.String("q", query), zap.Any("args", args), zap.Error(err))
		}
		return zero, mapErr(err)
	}
	return v, nil
}

func collectList[T any](ctx context.Context, r *repository, op string, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error(op, zap.String("q", query), zap.Error(err))
		return nil, mapErr(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		r.log.Error(op, zap.String("q", query), zap.Error(err))
		return nil, mapErr(err)
	}
	return items, nil
}

// exec runs a write and fails with onZero when no row was touched.
func (r *repository) exec(ctx context.Context, op string, b sq.Sqlizer, onZero error) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error(op, zap.String("q", query), zap.Error(err))
		return 0, mapErr(err)
	}
	if tag.RowsAffected() == 0 && onZero != nil {
		return 0, onZero
	}
	return tag.RowsAffected(), nil
}

func (r *repository) delete(ctx context.Context, op, table string, id int64) error {
	_, err := r.exec(ctx, op, qb.Delete(table).Where(sq.Eq{"id": id}), errs.ErrNotFound)
	if err != nil {
		var fe errs.FieldErrors
		if errors.As(err, &fe) {
			return errs.ErrInUse
		}
	}
	return err
}

// mapErr turns driver errors into domain errors.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errs.Field(constraintField(pgErr, "_key"), "has already been taken")
		case pgerrcode.ForeignKeyViolation:
			return errs.Field(constraintField(pgErr, "_fkey"), "does not exist")
		case pgerrcode.CheckViolation:
			return errs.Field(constraintField(pgErr, "_check"), "is invalid")
		}
	}
	return err
}

var constraintFields = map[string]string{
	"wishlists_user_id_book_id_key":  "book_id",
	"cart_items_cart_id_book_id_key": "book_id",
}

// constraintField derives the column from postgres default constraint names
// such as users_email_key or book_to_rent_author_id_fkey.
func constraintField(pgErr *pgconn.PgError, suffix string) string {
	if f, ok := constraintFields[pgErr.ConstraintName]; ok {
		return f
	}
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	name := strings.TrimPrefix(pgErr.ConstraintName, pgErr.TableName+"_")
	return strings.TrimSuffix(name, suffix)
}
