package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

type CommerceRepository interface {
	GetCartByUser(ctx context.Context, userID int64) (model.Cart, error)
	// EnsureCart returns the user's cart, creating it on first use.
	EnsureCart(ctx context.Context, userID int64) (model.Cart, error)
	ListCartItems(ctx context.Context, cartID int64) ([]model.CartItem, error)
	GetCartItem(ctx context.Context, id int64) (model.CartItem, error)
	// AddCartItem accumulates quantity for a book already in the cart.
	AddCartItem(ctx context.Context, cartID, bookID int64, qty int, unitPrice float64) (model.CartItem, error)
	UpdateCartItem(ctx context.Context, id int64, qty int, total float64) (model.CartItem, error)
	DeleteCartItem(ctx context.Context, id int64) error
	ClearCart(ctx context.Context, cartID int64) error

	ListOrders(ctx context.Context, userID int64, page, size int) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (model.Order, error)
	CreateOrder(ctx context.Context, o model.Order) (model.Order, error)
	// TransitionOrder is a compare-and-set on status. ErrInvalidTransition when status moved.
	TransitionOrder(ctx context.Context, id int64, from, to model.OrderStatus) error
	UpdateOrderAddress(ctx context.Context, id int64, address string) error
	DeleteOrder(ctx context.Context, id int64) error

	ListPurchases(ctx context.Context, userID int64, page, size int) ([]model.BookPurchase, error)
	GetPurchase(ctx context.Context, id int64) (model.BookPurchase, error)
	CreatePurchase(ctx context.Context, p model.BookPurchase) (model.BookPurchase, error)
	DeletePurchase(ctx context.Context, id int64) error

	ListTransactions(ctx context.Context, userID int64, page, size int) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (model.Transaction, error)
	CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error)
	TransitionTransaction(ctx context.Context, id int64, from, to model.TransactionStatus) error
	DeleteTransaction(ctx context.Context, id int64) error

	ListWishlists(ctx context.Context, userID int64, page, size int) ([]model.Wishlist, error)
	GetWishlist(ctx context.Context, id int64) (model.Wishlist, error)
	CreateWishlist(ctx context.Context, w model.Wishlist) (model.Wishlist, error)
	DeleteWishlist(ctx context.Context, id int64) error
}

var (
	cartColumns        = []string{"id", "user_id", "created_at"}
	cartItemColumns    = []string{"id", "cart_id", "book_id", "quantity", "total_amount", "created_at"}
	orderColumns       = []string{"id", "order_number", "user_id", "total_price", "status", "shipping_address", "created_at", "updated_at"}
	orderBookColumns   = []string{"order_id", "book_id", "quantity", "price"}
	purchaseColumns    = []string{"id", "user_id", "book_id", "order_id", "quantity", "total_price", "purchase_date", "created_at"}
	transactionColumns = []string{"id", "order_id", "user_id", "amount", "payment_method", "status", "created_at", "updated_at"}
	wishlistColumns    = []string{"id", "user_id", "book_id", "created_at"}
)

func (r *repository) GetCartByUser(ctx context.Context, userID int64) (model.Cart, error) {
	q := qb.Select(cartColumns...).From(cartsTableName).Where(sq.Eq{"user_id": userID})
	return collectOne[model.Cart](ctx, r, "GetCartByUser", q)
}

func (r *repository) EnsureCart(ctx context.Context, userID int64) (model.Cart, error) {
	q := qb.Insert(cartsTableName).
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id " + returning(cartColumns))
	return collectOne[model.Cart](ctx, r, "EnsureCart", q)
}

func (r *repository) ListCartItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	q := qb.Select(cartItemColumns...).From(cartItemsTableName).Where(sq.Eq{"cart_id": cartID}).OrderBy("id")
	return collectList[model.CartItem](ctx, r, "ListCartItems", q)
}

func (r *repository) GetCartItem(ctx context.Context, id int64) (model.CartItem, error) {
	q := qb.Select(cartItemColumns...).From(cartItemsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.CartItem](ctx, r, "GetCartItem", q)
}

func (r *repository) AddCartItem(ctx context.Context, cartID, bookID int64, qty int, unitPrice float64) (model.CartItem, error) {
	const q = `
insert into cart_items (cart_id, book_id, quantity, total_amount)
values (@cart_id, @book_id, @qty, @qty * @price::numeric)
on conflict (cart_id, book_id) do update
    set quantity     = cart_items.quantity + excluded.quantity,
        total_amount = (cart_items.quantity + excluded.quantity) * @price::numeric
returning id, cart_id, book_id, quantity, total_amount, created_at`
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"cart_id": cartID,
		"book_id": bookID,
		"qty":     qty,
		"price":   unitPrice,
	})
	if err != nil {
		return model.CartItem{}, mapErr(err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CartItem])
	if err != nil {
		return model.CartItem{}, mapErr(err)
	}
	return item, nil
}

func (r *repository) UpdateCartItem(ctx context.Context, id int64, qty int, total float64) (model.CartItem, error) {
	q := qb.Update(cartItemsTableName).
		Set("quantity", qty).
		Set("total_amount", total).
		Where(sq.Eq{"id": id}).
		Suffix(returning(cartItemColumns))
	return collectOne[model.CartItem](ctx, r, "UpdateCartItem", q)
}

func (r *repository) DeleteCartItem(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteCartItem", cartItemsTableName, id)
}

func (r *repository) ClearCart(ctx context.Context, cartID int64) error {
	_, err := r.exec(ctx, "ClearCart", qb.Delete(cartItemsTableName).Where(sq.Eq{"cart_id": cartID}), nil)
	return err
}

func (r *repository) ListOrders(ctx context.Context, userID int64, pg, size int) ([]model.Order, error) {
	q := qb.Select(orderColumns...).From(ordersTableName).OrderBy("id DESC")
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return collectList[model.Order](ctx, r, "ListOrders", page(q, pg, size))
}

func (r *repository) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	q := qb.Select(orderColumns...).From(ordersTableName).Where(sq.Eq{"id": id})
	o, err := collectOne[model.Order](ctx, r, "GetOrder", q)
	if err != nil {
		return model.Order{}, err
	}
	lines := qb.Select(orderBookColumns...).From(orderBooksTableName).Where(sq.Eq{"order_id": id}).OrderBy("book_id")
	if o.Books, err = collectList[model.OrderBook](ctx, r, "GetOrder.books", lines); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// CreateOrder writes the order header and its lines; run it inside InTx.
func (r *repository) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	q := qb.Insert(ordersTableName).
		Columns("order_number", "user_id", "total_price", "status", "shipping_address").
		Values(o.OrderNumber, o.UserID, o.TotalPrice, o.Status, o.ShippingAddress).
		Suffix(returning(orderColumns))
	created, err := collectOne[model.Order](ctx, r, "CreateOrder", q)
	if err != nil {
		return model.Order{}, err
	}
	if len(o.Books) == 0 {
		return created, nil
	}
	ins := qb.Insert(orderBooksTableName).Columns(orderBookColumns...)
	for _, b := range o.Books {
		ins = ins.Values(created.ID, b.BookID, b.Quantity, b.Price)
	}
	if _, err := r.exec(ctx, "CreateOrder.books", ins, nil); err != nil {
		return model.Order{}, err
	}
	created.Books = make([]model.OrderBook, 0, len(o.Books))
	for _, b := range o.Books {
		b.OrderID = created.ID
		created.Books = append(created.Books, b)
	}
	return created, nil
}

func (r *repository) TransitionOrder(ctx context.Context, id int64, from, to model.OrderStatus) error {
	q := qb.Update(ordersTableName).
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": from})
	_, err := r.exec(ctx, "TransitionOrder", q, errs.ErrInvalidTransition)
	return err
}

func (r *repository) UpdateOrderAddress(ctx context.Context, id int64, address string) error {
	q := qb.Update(ordersTableName).
		Set("shipping_address", address).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	_, err := r.exec(ctx, "UpdateOrderAddress", q, errs.ErrNotFound)
	return err
}

func (r *repository) DeleteOrder(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteOrder", ordersTableName, id)
}

func (r *repository) ListPurchases(ctx context.Context, userID int64, pg, size int) ([]model.BookPurchase, error) {
	q := qb.Select(purchaseColumns...).From(bookPurchasesTableName).OrderBy("id DESC")
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return collectList[model.BookPurchase](ctx, r, "ListPurchases", page(q, pg, size))
}

func (r *repository) GetPurchase(ctx context.Context, id int64) (model.BookPurchase, error) {
	q := qb.Select(purchaseColumns...).From(bookPurchasesTableName).Where(sq.Eq{"id": id})
	return collectOne[model.BookPurchase](ctx, r, "GetPurchase", q)
}

func (r *repository) CreatePurchase(ctx context.Context, p model.BookPurchase) (model.BookPurchase, error) {
	q := qb.Insert(bookPurchasesTableName).
		Columns("user_id", "book_id", "order_id", "quantity", "total_price").
		Values(p.UserID, p.BookID, p.OrderID, p.Quantity, p.TotalPrice).
		Suffix(returning(purchaseColumns))
	return collectOne[model.BookPurchase](ctx, r, "CreatePurchase", q)
}

func (r *repository) DeletePurchase(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeletePurchase", bookPurchasesTableName, id)
}

func (r *repository) ListTransactions(ctx context.Context, userID int64, pg, size int) ([]model.Transaction, error) {
	q := qb.Select(transactionColumns...).From(transactionsTableName).OrderBy("id DESC")
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return collectList[model.Transaction](ctx, r, "ListTransactions", page(q, pg, size))
}

func (r *repository) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	q := qb.Select(transactionColumns...).From(transactionsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.Transaction](ctx, r, "GetTransaction", q)
}

func (r *repository) CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	q := qb.Insert(transactionsTableName).
		Columns("order_id", "user_id", "amount", "payment_method", "status").
		Values(t.OrderID, t.UserID, t.Amount, t.PaymentMethod, t.Status).
		Suffix(returning(transactionColumns))
	return collectOne[model.Transaction](ctx, r, "CreateTransaction", q)
}

func (r *repository) TransitionTransaction(ctx context.Context, id int64, from, to model.TransactionStatus) error {
	q := qb.Update(transactionsTableName).
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": from})
	_, err := r.exec(ctx, "TransitionTransaction", q, errs.ErrInvalidTransition)
	return err
}

func (r *repository) DeleteTransaction(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteTransaction", transactionsTableName, id)
}

func (r *repository) ListWishlists(ctx context.Context, userID int64, pg, size int) ([]model.Wishlist, error) {
	q := qb.Select(wishlistColumns...).From(wishlistsTableName).OrderBy("id")
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return collectList[model.Wishlist](ctx, r, "ListWishlists", page(q, pg, size))
}

func (r *repository) GetWishlist(ctx context.Context, id int64) (model.Wishlist, error) {
	q := qb.Select(wishlistColumns...).From(wishlistsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.Wishlist](ctx, r, "GetWishlist", q)
}

func (r *repository) CreateWishlist(ctx context.Context, w model.Wishlist) (model.Wishlist, error) {
	q := qb.Insert(wishlistsTableName).
		Columns("user_id", "book_id").
		Values(w.UserID, w.BookID).
		Suffix(returning(wishlistColumns))
	return collectOne[model.Wishlist](ctx, r, "CreateWishlist", q)
}

func (r *repository) DeleteWishlist(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteWishlist", wishlistsTableName, id)
}
