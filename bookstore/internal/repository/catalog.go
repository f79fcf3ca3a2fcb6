package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

type CatalogRepository interface {
	ListAuthors(ctx context.Context, page, size int) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, a model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, a model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	ListCategories(ctx context.Context, page, size int) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	CreateCategory(ctx context.Context, c model.Category) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, c model.Category) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListBooksToRent(ctx context.Context, f model.CatalogFilter) ([]model.BookToRent, error)
	GetBookToRent(ctx context.Context, id int64) (model.BookToRent, error)
	CreateBookToRent(ctx context.Context, b model.BookToRent) (model.BookToRent, error)
	UpdateBookToRent(ctx context.Context, id int64, b model.BookToRent) (model.BookToRent, error)
	DeleteBookToRent(ctx context.Context, id int64) error

	ListBooksToSell(ctx context.Context, f model.CatalogFilter) ([]model.BookToSell, error)
	GetBookToSell(ctx context.Context, id int64) (model.BookToSell, error)
	CreateBookToSell(ctx context.Context, b model.BookToSell) (model.BookToSell, error)
	UpdateBookToSell(ctx context.Context, id int64, b model.BookToSell) (model.BookToSell, error)
	DeleteBookToSell(ctx context.Context, id int64) error

	// ReserveBook takes one unit of an available rent book. ErrBookUnavailable when none is free.
	ReserveBook(ctx context.Context, id int64) error
	// TakeBook takes one unit for a walk-in rental and marks the book rented.
	TakeBook(ctx context.Context, id int64) error
	// ReleaseBooks puts one unit back per id (ids may repeat) and makes the books available.
	ReleaseBooks(ctx context.Context, ids ...int64) error
	MarkBookRented(ctx context.Context, id int64) error
	// DecrementSellStock fails with ErrOutOfStock unless stock >= qty.
	DecrementSellStock(ctx context.Context, id int64, qty int) error
}

var (
	authorColumns     = []string{"id", "name", "biography", "nationality", "birth_date", "created_at"}
	categoryColumns   = []string{"id", "name", "description", "created_at"}
	bookToRentColumns = []string{"id", "title", "author_id", "category_id", "isbn", "description",
		"rental_price", "stock", "availability_status", "condition", "published_year", "created_at", "updated_at"}
	bookToSellColumns = []string{"id", "title", "author_id", "category_id", "isbn", "description",
		"price", "stock", "published_year", "created_at", "updated_at"}
)

func (r *repository) ListAuthors(ctx context.Context, pg, size int) ([]model.Author, error) {
	q := qb.Select(authorColumns...).From(authorsTableName).OrderBy("id")
	return collectList[model.Author](ctx, r, "ListAuthors", page(q, pg, size))
}

func (r *repository) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	q := qb.Select(authorColumns...).From(authorsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.Author](ctx, r, "GetAuthor", q)
}

func (r *repository) CreateAuthor(ctx context.Context, a model.Author) (model.Author, error) {
	q := qb.Insert(authorsTableName).
		Columns("name", "biography", "nationality", "birth_date").
		Values(a.Name, a.Biography, a.Nationality, a.BirthDate).
		Suffix(returning(authorColumns))
	return collectOne[model.Author](ctx, r, "CreateAuthor", q)
}

func (r *repository) UpdateAuthor(ctx context.Context, id int64, a model.Author) (model.Author, error) {
	q := qb.Update(authorsTableName).
		SetMap(map[string]any{
			"name":        a.Name,
			"biography":   a.Biography,
			"nationality": a.Nationality,
			"birth_date":  a.BirthDate,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(authorColumns))
	return collectOne[model.Author](ctx, r, "UpdateAuthor", q)
}

func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteAuthor", authorsTableName, id)
}

func (r *repository) ListCategories(ctx context.Context, pg, size int) ([]model.Category, error) {
	q := qb.Select(categoryColumns...).From(categoriesTableName).OrderBy("id")
	return collectList[model.Category](ctx, r, "ListCategories", page(q, pg, size))
}

func (r *repository) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	q := qb.Select(categoryColumns...).From(categoriesTableName).Where(sq.Eq{"id": id})
	return collectOne[model.Category](ctx, r, "GetCategory", q)
}

func (r *repository) CreateCategory(ctx context.Context, c model.Category) (model.Category, error) {
	q := qb.Insert(categoriesTableName).
		Columns("name", "description").
		Values(c.Name, c.Description).
		Suffix(returning(categoryColumns))
	return collectOne[model.Category](ctx, r, "CreateCategory", q)
}

func (r *repository) UpdateCategory(ctx context.Context, id int64, c model.Category) (model.Category, error) {
	q := qb.Update(categoriesTableName).
		Set("name", c.Name).
		Set("description", c.Description).
		Where(sq.Eq{"id": id}).
		Suffix(returning(categoryColumns))
	return collectOne[model.Category](ctx, r, "UpdateCategory", q)
}

func (r *repository) DeleteCategory(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteCategory", categoriesTableName, id)
}

func catalogWhere(q sq.SelectBuilder, f model.CatalogFilter) sq.SelectBuilder {
	if f.Q != "" {
		q = q.Where(sq.ILike{"title": "%" + f.Q + "%"})
	}
	if f.AuthorID != 0 {
		q = q.Where(sq.Eq{"author_id": f.AuthorID})
	}
	if f.CategoryID != 0 {
		q = q.Where(sq.Eq{"category_id": f.CategoryID})
	}
	return page(q.OrderBy("id"), f.Page, f.Size)
}

func (r *repository) ListBooksToRent(ctx context.Context, f model.CatalogFilter) ([]model.BookToRent, error) {
	q := qb.Select(bookToRentColumns...).From(bookToRentTableName)
	if f.Status != "" {
		q = q.Where(sq.Eq{"availability_status": f.Status})
	}
	return collectList[model.BookToRent](ctx, r, "ListBooksToRent", catalogWhere(q, f))
}

func (r *repository) GetBookToRent(ctx context.Context, id int64) (model.BookToRent, error) {
	q := qb.Select(bookToRentColumns...).From(bookToRentTableName).Where(sq.Eq{"id": id})
	return collectOne[model.BookToRent](ctx, r, "GetBookToRent", q)
}

func bookToRentValues(b model.BookToRent) map[string]any {
	return map[string]any{
		"title":               b.Title,
		"author_id":           b.AuthorID,
		"category_id":         b.CategoryID,
		"isbn":                b.ISBN,
		"description":         b.Description,
		"rental_price":        b.RentalPrice,
		"stock":               b.Stock,
		"availability_status": b.AvailabilityStatus,
		"condition":           b.Condition,
		"published_year":      b.PublishedYear,
	}
}

func (r *repository) CreateBookToRent(ctx context.Context, b model.BookToRent) (model.BookToRent, error) {
	q := qb.Insert(bookToRentTableName).
		SetMap(bookToRentValues(b)).
		Suffix(returning(bookToRentColumns))
	return collectOne[model.BookToRent](ctx, r, "CreateBookToRent", q)
}

func (r *repository) UpdateBookToRent(ctx context.Context, id int64, b model.BookToRent) (model.BookToRent, error) {
	q := qb.Update(bookToRentTableName).
		SetMap(bookToRentValues(b)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookToRentColumns))
	return collectOne[model.BookToRent](ctx, r, "UpdateBookToRent", q)
}

func (r *repository) DeleteBookToRent(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteBookToRent", bookToRentTableName, id)
}

func (r *repository) ListBooksToSell(ctx context.Context, f model.CatalogFilter) ([]model.BookToSell, error) {
	q := qb.Select(bookToSellColumns...).From(bookToSellTableName)
	return collectList[model.BookToSell](ctx, r, "ListBooksToSell", catalogWhere(q, f))
}

func (r *repository) GetBookToSell(ctx context.Context, id int64) (model.BookToSell, error) {
	q := qb.Select(bookToSellColumns...).From(bookToSellTableName).Where(sq.Eq{"id": id})
	return collectOne[model.BookToSell](ctx, r, "GetBookToSell", q)
}

func bookToSellValues(b model.BookToSell) map[string]any {
	return map[string]any{
		"title":          b.Title,
		"author_id":      b.AuthorID,
		"category_id":    b.CategoryID,
		"isbn":           b.ISBN,
		"description":    b.Description,
		"price":          b.Price,
		"stock":          b.Stock,
		"published_year": b.PublishedYear,
	}
}

func (r *repository) CreateBookToSell(ctx context.Context, b model.BookToSell) (model.BookToSell, error) {
	q := qb.Insert(bookToSellTableName).
		SetMap(bookToSellValues(b)).
		Suffix(returning(bookToSellColumns))
	return collectOne[model.BookToSell](ctx, r, "CreateBookToSell", q)
}

func (r *repository) UpdateBookToSell(ctx context.Context, id int64, b model.BookToSell) (model.BookToSell, error) {
	q := qb.Update(bookToSellTableName).
		SetMap(bookToSellValues(b)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookToSellColumns))
	return collectOne[model.BookToSell](ctx, r, "UpdateBookToSell", q)
}

func (r *repository) DeleteBookToSell(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteBookToSell", bookToSellTableName, id)
}

func (r *repository) ReserveBook(ctx context.Context, id int64) error {
	q := qb.Update(bookToRentTableName).
		Set("stock", sq.Expr("stock - 1")).
		Set("availability_status", model.Reserved).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "availability_status": model.Available}).
		Where(sq.Gt{"stock": 0})
	_, err := r.exec(ctx, "ReserveBook", q, errs.ErrBookUnavailable)
	return err
}

func (r *repository) TakeBook(ctx context.Context, id int64) error {
	q := qb.Update(bookToRentTableName).
		Set("stock", sq.Expr("stock - 1")).
		Set("availability_status", model.Rented).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "availability_status": model.Available}).
		Where(sq.Gt{"stock": 0})
	_, err := r.exec(ctx, "TakeBook", q, errs.ErrBookUnavailable)
	return err
}

func (r *repository) ReleaseBooks(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	const q = `
update book_to_rent b
    set stock = b.stock + c.n,
        availability_status = 'available',
        updated_at = now()
from (select id, count(*) as n from unnest(@ids::bigint[]) as t(id) group by id) c
where b.id = c.id`
	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"ids": ids}); err != nil {
		r.log.Error("ReleaseBooks", zap.Error(err))
		return mapErr(err)
	}
	return nil
}

func (r *repository) MarkBookRented(ctx context.Context, id int64) error {
	q := qb.Update(bookToRentTableName).
		Set("availability_status", model.Rented).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	_, err := r.exec(ctx, "MarkBookRented", q, errs.ErrNotFound)
	return err
}

func (r *repository) DecrementSellStock(ctx context.Context, id int64, qty int) error {
	q := qb.Update(bookToSellTableName).
		Set("stock", sq.Expr("stock - ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"stock": qty})
	_, err := r.exec(ctx, "DecrementSellStock", q, errs.ErrOutOfStock)
	return err
}
