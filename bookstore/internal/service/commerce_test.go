package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

type commerceFixture struct {
	repo  *fakeRepo
	user  model.User
	dune  model.BookToSell
	emma  model.BookToSell
	order model.Order
}

func newCommerceFixture() commerceFixture {
	repo := newFakeRepo(testNow)
	user := repo.addUser(model.User{Name: "Amina", Email: "amina@example.com", CIN: "AB123", Address: "12 Rue Atlas", Role: model.RoleCustomer})
	dune := repo.addSellBook(model.BookToSell{Title: "Dune", Price: 19.99, Stock: 5})
	emma := repo.addSellBook(model.BookToSell{Title: "Emma", Price: 7.5, Stock: 1})
	order := repo.addOrder(model.Order{
		OrderNumber: "ORD-TEST",
		UserID:      user.ID,
		TotalPrice:  47.48,
		Status:      model.OrderPending,
		Books: []model.OrderBook{
			{BookID: dune.ID, Quantity: 2, Price: 19.99},
			{BookID: emma.ID, Quantity: 1, Price: 7.5},
		},
	})
	return commerceFixture{repo: repo, user: user, dune: dune, emma: emma, order: order}
}

func TestCheckout(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	svc := newTestService(f.repo)
	ctx := asCustomer(f.user.ID)

	_, err := svc.Checkout(ctx, f.user.ID, model.CheckoutRequest{})
	require.ErrorIs(t, err, errs.ErrEmptyCart)

	_, err = svc.AddToCart(ctx, model.AddToCartRequest{UserID: f.user.ID, BookID: f.dune.ID, Quantity: 1})
	require.NoError(t, err)
	item, err := svc.AddToCart(ctx, model.AddToCartRequest{UserID: f.user.ID, BookID: f.dune.ID, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, 3, item.Quantity)
	require.Equal(t, 59.97, item.TotalAmount)
	_, err = svc.AddToCart(ctx, model.AddToCartRequest{UserID: f.user.ID, BookID: f.emma.ID, Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	require.Equal(t, 67.47, cart.Total)

	o, err := svc.Checkout(ctx, f.user.ID, model.CheckoutRequest{})
	require.NoError(t, err)
	require.Equal(t, model.OrderPending, o.Status)
	require.Equal(t, 67.47, o.TotalPrice)
	require.Equal(t, "12 Rue Atlas", o.ShippingAddress)
	require.Regexp(t, `^ORD-[0-9A-F]{10}$`, o.OrderNumber)
	require.Len(t, o.Books, 2)

	cart, err = svc.GetCart(ctx, f.user.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Equal(t, 0.0, cart.Total)
}

func TestAddToCartForSomeoneElse(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	svc := newTestService(f.repo)

	_, err := svc.AddToCart(asCustomer(f.user.ID+1), model.AddToCartRequest{UserID: f.user.ID, BookID: f.dune.ID, Quantity: 1})
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCreateTransactionAmountMismatch(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	svc := newTestService(f.repo)

	_, err := svc.CreateTransaction(asCustomer(f.user.ID), model.TransactionRequest{
		OrderID:       f.order.ID,
		Amount:        47.47,
		PaymentMethod: "card",
		Status:        model.TransactionCompleted,
	})
	require.ErrorIs(t, err, errs.ErrAmountMismatch)

	st := f.repo.snapshot()
	require.Empty(t, st.transactions)
	require.Empty(t, st.purchases)
	require.Equal(t, model.OrderPending, st.orders[f.order.ID].Status)
	require.Equal(t, 5, st.booksToSell[f.dune.ID].Stock)
}

func TestCreateTransactionSettlesOrder(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	svc := newTestService(f.repo)
	ctx := asCustomer(f.user.ID)
	req := model.TransactionRequest{
		OrderID:       f.order.ID,
		Amount:        47.48,
		PaymentMethod: "card",
		Status:        model.TransactionCompleted,
	}

	tx, err := svc.CreateTransaction(ctx, req)
	require.NoError(t, err)
	require.Equal(t, model.TransactionCompleted, tx.Status)
	require.Equal(t, f.user.ID, tx.UserID)

	st := f.repo.snapshot()
	require.Equal(t, model.OrderPaid, st.orders[f.order.ID].Status)
	require.Equal(t, 3, st.booksToSell[f.dune.ID].Stock)
	require.Equal(t, 0, st.booksToSell[f.emma.ID].Stock)
	require.Len(t, st.purchases, 2)
	for _, p := range st.purchases {
		require.NotNil(t, p.OrderID)
		require.Equal(t, f.order.ID, *p.OrderID)
	}

	// a replayed payment cannot pay the order twice
	_, err = svc.CreateTransaction(ctx, req)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	st = f.repo.snapshot()
	require.Len(t, st.transactions, 1)
	require.Len(t, st.purchases, 2)
	require.Equal(t, 3, st.booksToSell[f.dune.ID].Stock)
}

func TestCreateTransactionOutOfStockRollsBack(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	f.repo.st.booksToSell[f.emma.ID] = model.BookToSell{ID: f.emma.ID, Title: "Emma", Price: 7.5, Stock: 0}
	svc := newTestService(f.repo)

	_, err := svc.CreateTransaction(asCustomer(f.user.ID), model.TransactionRequest{
		OrderID:       f.order.ID,
		Amount:        47.48,
		PaymentMethod: "cash",
		Status:        model.TransactionCompleted,
	})
	require.ErrorIs(t, err, errs.ErrOutOfStock)

	st := f.repo.snapshot()
	require.Empty(t, st.transactions)
	require.Empty(t, st.purchases)
	require.Equal(t, model.OrderPending, st.orders[f.order.ID].Status)
	require.Equal(t, 5, st.booksToSell[f.dune.ID].Stock)
}

func TestUpdateTransactionCompletes(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	svc := newTestService(f.repo)
	ctx := asCustomer(f.user.ID)

	tx, err := svc.CreateTransaction(ctx, model.TransactionRequest{OrderID: f.order.ID, Amount: 47.48, PaymentMethod: "paypal"})
	require.NoError(t, err)
	require.Equal(t, model.TransactionPending, tx.Status)
	require.Equal(t, model.OrderPending, f.repo.snapshot().orders[f.order.ID].Status)

	tx, err = svc.UpdateTransaction(asAdmin(), tx.ID, model.TransactionUpdateRequest{Status: model.TransactionCompleted})
	require.NoError(t, err)
	require.Equal(t, model.TransactionCompleted, tx.Status)
	require.Equal(t, model.OrderPaid, f.repo.snapshot().orders[f.order.ID].Status)

	_, err = svc.UpdateTransaction(asAdmin(), tx.ID, model.TransactionUpdateRequest{Status: model.TransactionFailed})
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestUpdateOrderCustomerMayOnlyCancel(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	svc := newTestService(f.repo)
	ctx := asCustomer(f.user.ID)

	_, err := svc.UpdateOrder(ctx, f.order.ID, model.OrderUpdateRequest{Status: model.OrderShipped})
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = svc.UpdateOrder(asAdmin(), f.order.ID, model.OrderUpdateRequest{Status: model.OrderShipped})
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	o, err := svc.UpdateOrder(ctx, f.order.ID, model.OrderUpdateRequest{Status: model.OrderCancelled})
	require.NoError(t, err)
	require.Equal(t, model.OrderCancelled, o.Status)
}

func TestUpdateOrder(t *testing.T) {
	t.Parallel()

	addr := func(s string) *string { return &s }
	tests := []struct {
		name         string
		from         model.OrderStatus
		admin        bool
		req          model.OrderUpdateRequest
		wantStatus   model.OrderStatus
		wantAddress  string
		wantErr      error
		wantFieldErr string
	}{
		{
			name:        "customer edits a pending address",
			from:        model.OrderPending,
			req:         model.OrderUpdateRequest{ShippingAddress: addr("3 Bd Zerktouni")},
			wantStatus:  model.OrderPending,
			wantAddress: "3 Bd Zerktouni",
		},
		{
			name:        "customer cancels a pending order",
			from:        model.OrderPending,
			req:         model.OrderUpdateRequest{Status: model.OrderCancelled},
			wantStatus:  model.OrderCancelled,
			wantAddress: "12 Rue Atlas",
		},
		{
			name:         "cancel with an address change",
			from:         model.OrderPending,
			req:          model.OrderUpdateRequest{Status: model.OrderCancelled, ShippingAddress: addr("x")},
			wantFieldErr: "shipping_address",
		},
		{
			name:    "customer cannot cancel a paid order",
			from:    model.OrderPaid,
			req:     model.OrderUpdateRequest{Status: model.OrderCancelled},
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "customer cannot mark paid",
			from:    model.OrderPending,
			req:     model.OrderUpdateRequest{Status: model.OrderPaid},
			wantErr: errs.ErrForbidden,
		},
		{
			name:        "admin cancels a paid order",
			from:        model.OrderPaid,
			admin:       true,
			req:         model.OrderUpdateRequest{Status: model.OrderCancelled},
			wantStatus:  model.OrderCancelled,
			wantAddress: "12 Rue Atlas",
		},
		{
			name:         "admin ships with an address change",
			from:         model.OrderPaid,
			admin:        true,
			req:          model.OrderUpdateRequest{Status: model.OrderShipped, ShippingAddress: addr("x")},
			wantFieldErr: "shipping_address",
		},
		{
			name:         "address on a paid order",
			from:         model.OrderPaid,
			admin:        true,
			req:          model.OrderUpdateRequest{ShippingAddress: addr("x")},
			wantFieldErr: "shipping_address",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newCommerceFixture()
			order := f.repo.addOrder(model.Order{
				OrderNumber:     "ORD-UPDATE",
				UserID:          f.user.ID,
				TotalPrice:      19.99,
				Status:          tt.from,
				ShippingAddress: "12 Rue Atlas",
				Books:           []model.OrderBook{{BookID: f.dune.ID, Quantity: 1, Price: 19.99}},
			})
			svc := newTestService(f.repo)
			ctx := asCustomer(f.user.ID)
			if tt.admin {
				ctx = asAdmin()
			}

			got, err := svc.UpdateOrder(ctx, order.ID, tt.req)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, order, f.repo.snapshot().orders[order.ID])
				return
			case tt.wantFieldErr != "":
				var fe errs.FieldErrors
				require.ErrorAs(t, err, &fe)
				require.Contains(t, fe, tt.wantFieldErr)
				require.Equal(t, order, f.repo.snapshot().orders[order.ID])
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
			require.Equal(t, tt.wantAddress, got.ShippingAddress)
			require.Equal(t, got, f.repo.snapshot().orders[order.ID])
		})
	}
}

func TestCartItemOwnership(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   func(owner, stranger int64) context.Context
		remove  bool
		missing bool
		wantErr error
	}{
		{name: "owner updates", actor: func(owner, _ int64) context.Context { return asCustomer(owner) }},
		{name: "admin updates", actor: func(int64, int64) context.Context { return asAdmin() }},
		{name: "owner removes", actor: func(owner, _ int64) context.Context { return asCustomer(owner) }, remove: true},
		{
			name:    "stranger with a cart cannot update",
			actor:   func(_, stranger int64) context.Context { return asCustomer(stranger) },
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "stranger with a cart cannot remove",
			actor:   func(_, stranger int64) context.Context { return asCustomer(stranger) },
			remove:  true,
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "customer without a cart",
			actor:   func(_, stranger int64) context.Context { return asCustomer(stranger + 100) },
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "anonymous",
			actor:   func(int64, int64) context.Context { return context.Background() },
			wantErr: errs.ErrUnauthorized,
		},
		{
			name:    "unknown item",
			actor:   func(owner, _ int64) context.Context { return asCustomer(owner) },
			missing: true,
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newCommerceFixture()
			stranger := f.repo.addUser(model.User{Name: "Youssef", Email: "youssef@example.com", CIN: "CD456", Role: model.RoleCustomer})
			svc := newTestService(f.repo)

			item, err := svc.AddToCart(asCustomer(f.user.ID), model.AddToCartRequest{UserID: f.user.ID, BookID: f.dune.ID, Quantity: 1})
			require.NoError(t, err)
			_, err = svc.AddToCart(asCustomer(stranger.ID), model.AddToCartRequest{UserID: stranger.ID, BookID: f.emma.ID, Quantity: 1})
			require.NoError(t, err)

			id := item.ID
			if tt.missing {
				id = 9999
			}
			ctx := tt.actor(f.user.ID, stranger.ID)
			if tt.remove {
				err = svc.RemoveCartItem(ctx, id)
			} else {
				var updated model.CartItem
				updated, err = svc.UpdateCartItem(ctx, id, model.UpdateCartItemRequest{Quantity: 3})
				if err == nil {
					require.Equal(t, 3, updated.Quantity)
					require.Equal(t, 59.97, updated.TotalAmount)
				}
			}

			stored, ok := f.repo.snapshot().cartItems[item.ID]
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				require.True(t, ok)
				require.Equal(t, item, stored)
			case tt.remove:
				require.NoError(t, err)
				require.False(t, ok)
				require.ErrorIs(t, svc.RemoveCartItem(ctx, item.ID), errs.ErrNotFound)
			default:
				require.NoError(t, err)
				require.Equal(t, 3, stored.Quantity)
			}
		})
	}
}

func TestWishlist(t *testing.T) {
	t.Parallel()

	f := newCommerceFixture()
	other := f.repo.addUser(model.User{Name: "Youssef", Email: "youssef@example.com", CIN: "CD456", Role: model.RoleCustomer})
	svc := newTestService(f.repo)
	ctx := asCustomer(f.user.ID)

	w, err := svc.AddToWishlist(ctx, model.WishlistRequest{UserID: f.user.ID, BookID: f.dune.ID})
	require.NoError(t, err)
	require.Equal(t, f.dune.ID, w.BookID)

	_, err = svc.AddToWishlist(ctx, model.WishlistRequest{UserID: f.user.ID, BookID: f.dune.ID})
	var fe errs.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe, "book_id")

	_, err = svc.AddToWishlist(ctx, model.WishlistRequest{UserID: f.user.ID, BookID: 9999})
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.AddToWishlist(ctx, model.WishlistRequest{UserID: other.ID, BookID: f.emma.ID})
	require.ErrorIs(t, err, errs.ErrForbidden)

	theirs, err := svc.AddToWishlist(asCustomer(other.ID), model.WishlistRequest{UserID: other.ID, BookID: f.dune.ID})
	require.NoError(t, err)

	mine, err := svc.ListWishlists(ctx, 0, 1, 10)
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	require.Equal(t, w.ID, mine.Items[0].ID)

	_, err = svc.ListWishlists(ctx, other.ID, 1, 10)
	require.ErrorIs(t, err, errs.ErrForbidden)

	all, err := svc.ListWishlists(asAdmin(), 0, 1, 10)
	require.NoError(t, err)
	require.Len(t, all.Items, 2)

	require.ErrorIs(t, svc.RemoveFromWishlist(ctx, theirs.ID), errs.ErrForbidden)
	require.NoError(t, svc.RemoveFromWishlist(ctx, w.ID))
	require.ErrorIs(t, svc.RemoveFromWishlist(ctx, w.ID), errs.ErrNotFound)
	require.Len(t, f.repo.snapshot().wishlists, 1)
}
