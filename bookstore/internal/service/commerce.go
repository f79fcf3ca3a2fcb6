package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/repository"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/auth"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/metrics"
)

func (s *Service) AddToCart(ctx context.Context, req model.AddToCartRequest) (model.CartItem, error) {
	if err := authorize(ctx, req.UserID); err != nil {
		return model.CartItem{}, err
	}
	book, err := s.repo.GetBookToSell(ctx, req.BookID)
	if err != nil {
		return model.CartItem{}, err
	}
	var item model.CartItem
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		cart, err := repo.EnsureCart(ctx, req.UserID)
		if err != nil {
			return err
		}
		item, err = repo.AddCartItem(ctx, cart.ID, book.ID, req.Quantity, book.Price)
		return err
	})
	return item, err
}

// cartItem loads an item and checks it sits in the caller's cart.
func (s *Service) cartItem(ctx context.Context, id int64) (model.CartItem, error) {
	item, err := s.repo.GetCartItem(ctx, id)
	if err != nil {
		return model.CartItem{}, err
	}
	p, err := auth.GetPrincipal(ctx)
	if err != nil {
		return model.CartItem{}, errs.ErrUnauthorized
	}
	if p.Role == auth.RoleAdmin {
		return item, nil
	}
	cart, err := s.repo.GetCartByUser(ctx, p.UserID)
	if err != nil || cart.ID != item.CartID {
		return model.CartItem{}, errs.ErrForbidden
	}
	return item, nil
}

func (s *Service) UpdateCartItem(ctx context.Context, id int64, req model.UpdateCartItemRequest) (model.CartItem, error) {
	item, err := s.cartItem(ctx, id)
	if err != nil {
		return model.CartItem{}, err
	}
	book, err := s.repo.GetBookToSell(ctx, item.BookID)
	if err != nil {
		return model.CartItem{}, err
	}
	return s.repo.UpdateCartItem(ctx, id, req.Quantity, model.LineTotal(book.Price, req.Quantity))
}

func (s *Service) RemoveCartItem(ctx context.Context, id int64) error {
	if _, err := s.cartItem(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCartItem(ctx, id)
}

func (s *Service) GetCart(ctx context.Context, userID int64) (model.Cart, error) {
	if err := authorize(ctx, userID); err != nil {
		return model.Cart{}, err
	}
	cart, err := s.repo.GetCartByUser(ctx, userID)
	if errors.Is(err, errs.ErrNotFound) {
		return model.Cart{UserID: userID, Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return model.Cart{}, err
	}
	if cart.Items, err = s.repo.ListCartItems(ctx, cart.ID); err != nil {
		return model.Cart{}, err
	}
	var cents int64
	for _, it := range cart.Items {
		cents += model.Cents(it.TotalAmount)
	}
	cart.Total = float64(cents) / 100
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	return cart, nil
}

func (s *Service) ClearCart(ctx context.Context, userID int64) error {
	if err := authorize(ctx, userID); err != nil {
		return err
	}
	cart, err := s.repo.GetCartByUser(ctx, userID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.repo.ClearCart(ctx, cart.ID)
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// orderLines snapshots current sell prices for the requested books.
func orderLines(ctx context.Context, repo repository.Repository, lines []model.OrderLineRequest) ([]model.OrderBook, float64, error) {
	merged := make(map[int64]int, len(lines))
	order := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, ok := merged[l.BookID]; !ok {
			order = append(order, l.BookID)
		}
		merged[l.BookID] += l.Quantity
	}
	books := make([]model.OrderBook, 0, len(order))
	var cents int64
	for _, id := range order {
		book, err := repo.GetBookToSell(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil, 0, errs.Field("books", fmt.Sprintf("book %d does not exist", id))
			}
			return nil, 0, err
		}
		qty := merged[id]
		books = append(books, model.OrderBook{BookID: id, Quantity: qty, Price: book.Price})
		cents += model.Cents(book.Price) * int64(qty)
	}
	return books, float64(cents) / 100, nil
}

// Checkout turns the user's cart into a pending order and empties the cart.
func (s *Service) Checkout(ctx context.Context, userID int64, req model.CheckoutRequest) (model.Order, error) {
	if err := authorize(ctx, userID); err != nil {
		return model.Order{}, err
	}
	var created model.Order
	err := s.repo.InTx(ctx, func(repo repository.Repository) error {
		cart, err := repo.GetCartByUser(ctx, userID)
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrEmptyCart
		}
		if err != nil {
			return err
		}
		items, err := repo.ListCartItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return errs.ErrEmptyCart
		}
		lines := make([]model.OrderLineRequest, 0, len(items))
		for _, it := range items {
			lines = append(lines, model.OrderLineRequest{BookID: it.BookID, Quantity: it.Quantity})
		}
		books, total, err := orderLines(ctx, repo, lines)
		if err != nil {
			return err
		}
		address := req.ShippingAddress
		if address == "" {
			u, err := repo.GetUser(ctx, userID)
			if err != nil {
				return err
			}
			address = u.Address
		}
		created, err = repo.CreateOrder(ctx, model.Order{
			OrderNumber:     newOrderNumber(),
			UserID:          userID,
			TotalPrice:      total,
			Status:          model.OrderPending,
			ShippingAddress: address,
			Books:           books,
		})
		if err != nil {
			return err
		}
		return repo.ClearCart(ctx, cart.ID)
	})
	if err != nil {
		return model.Order{}, err
	}
	s.log.Info("checkout", zap.Int64("user_id", userID), zap.String("order", created.OrderNumber))
	return created, nil
}

func (s *Service) ListOrders(ctx context.Context, userID int64, page, size int) (model.List[model.Order], error) {
	userID, err := scope(ctx, userID)
	if err != nil {
		return model.List[model.Order]{}, err
	}
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListOrders(ctx, userID, page, size)
	if err != nil {
		return model.List[model.Order]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	if err := authorize(ctx, o.UserID); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (s *Service) CreateOrder(ctx context.Context, req model.OrderRequest) (model.Order, error) {
	if err := authorize(ctx, req.UserID); err != nil {
		return model.Order{}, err
	}
	var created model.Order
	err := s.repo.InTx(ctx, func(repo repository.Repository) error {
		books, total, err := orderLines(ctx, repo, req.Books)
		if err != nil {
			return err
		}
		created, err = repo.CreateOrder(ctx, model.Order{
			OrderNumber:     newOrderNumber(),
			UserID:          req.UserID,
			TotalPrice:      total,
			Status:          model.OrderPending,
			ShippingAddress: req.ShippingAddress,
			Books:           books,
		})
		return err
	})
	return created, err
}

// UpdateOrder changes status through the order transition table. Customers may
// only cancel their own pending orders. The address is editable while the
// resulting status is still pending.
func (s *Service) UpdateOrder(ctx context.Context, id int64, req model.OrderUpdateRequest) (model.Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	next := o.Status
	if req.Status != "" && req.Status != o.Status {
		if !auth.IsAdmin(ctx) && (req.Status != model.OrderCancelled || o.Status != model.OrderPending) {
			return model.Order{}, errs.ErrForbidden
		}
		if err := o.Status.Transition(req.Status); err != nil {
			return model.Order{}, err
		}
		next = req.Status
	}
	if req.ShippingAddress != nil && next != model.OrderPending {
		return model.Order{}, errs.Field("shipping_address", "can only change while the order is pending")
	}
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		if next != o.Status {
			if err := repo.TransitionOrder(ctx, id, o.Status, next); err != nil {
				return err
			}
		}
		if req.ShippingAddress != nil {
			return repo.UpdateOrderAddress(ctx, id, *req.ShippingAddress)
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return s.repo.DeleteOrder(ctx, id)
}

// settle marks an order paid, records one purchase per line and takes the sold
// units out of stock. It must run inside InTx.
func (s *Service) settle(ctx context.Context, repo repository.Repository, orderID int64) error {
	o, err := repo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if err := o.Status.Transition(model.OrderPaid); err != nil {
		return err
	}
	if err := repo.TransitionOrder(ctx, o.ID, o.Status, model.OrderPaid); err != nil {
		return err
	}
	for _, line := range o.Books {
		if err := repo.DecrementSellStock(ctx, line.BookID, line.Quantity); err != nil {
			return err
		}
		orderID := o.ID
		if _, err := repo.CreatePurchase(ctx, model.BookPurchase{
			UserID:     o.UserID,
			BookID:     line.BookID,
			OrderID:    &orderID,
			Quantity:   line.Quantity,
			TotalPrice: model.LineTotal(line.Price, line.Quantity),
		}); err != nil {
			return err
		}
	}
	return nil
}

// CreateTransaction records a payment for an order. The amount must equal the
// order total to the cent; a completed payment settles the order.
func (s *Service) CreateTransaction(ctx context.Context, req model.TransactionRequest) (model.Transaction, error) {
	o, err := s.GetOrder(ctx, req.OrderID)
	if err != nil {
		return model.Transaction{}, err
	}
	if model.Cents(req.Amount) != model.Cents(o.TotalPrice) {
		return model.Transaction{}, errs.ErrAmountMismatch
	}
	status := req.Status
	if status == "" {
		status = model.TransactionPending
	}
	var created model.Transaction
	err = s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		created, err = repo.CreateTransaction(ctx, model.Transaction{
			OrderID:       o.ID,
			UserID:        o.UserID,
			Amount:        model.Money(req.Amount),
			PaymentMethod: req.PaymentMethod,
			Status:        status,
		})
		if err != nil {
			return err
		}
		if status == model.TransactionCompleted {
			return s.settle(ctx, repo, o.ID)
		}
		return nil
	})
	if err != nil {
		return model.Transaction{}, err
	}
	metrics.Payments.WithLabelValues(string(status)).Inc()
	return created, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, id int64, req model.TransactionUpdateRequest) (model.Transaction, error) {
	t, err := s.GetTransaction(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := t.Status.Transition(req.Status); err != nil {
		return model.Transaction{}, err
	}
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		if err := repo.TransitionTransaction(ctx, id, t.Status, req.Status); err != nil {
			return err
		}
		if req.Status == model.TransactionCompleted {
			return s.settle(ctx, repo, t.OrderID)
		}
		return nil
	})
	if err != nil {
		return model.Transaction{}, err
	}
	metrics.Payments.WithLabelValues(string(req.Status)).Inc()
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) ListTransactions(ctx context.Context, userID int64, page, size int) (model.List[model.Transaction], error) {
	userID, err := scope(ctx, userID)
	if err != nil {
		return model.List[model.Transaction]{}, err
	}
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListTransactions(ctx, userID, page, size)
	if err != nil {
		return model.List[model.Transaction]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	t, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := authorize(ctx, t.UserID); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	return s.repo.DeleteTransaction(ctx, id)
}

func (s *Service) ListPurchases(ctx context.Context, userID int64, page, size int) (model.List[model.BookPurchase], error) {
	userID, err := scope(ctx, userID)
	if err != nil {
		return model.List[model.BookPurchase]{}, err
	}
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListPurchases(ctx, userID, page, size)
	if err != nil {
		return model.List[model.BookPurchase]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetPurchase(ctx context.Context, id int64) (model.BookPurchase, error) {
	p, err := s.repo.GetPurchase(ctx, id)
	if err != nil {
		return model.BookPurchase{}, err
	}
	if err := authorize(ctx, p.UserID); err != nil {
		return model.BookPurchase{}, err
	}
	return p, nil
}

// CreatePurchase is a direct sale outside of an order.
func (s *Service) CreatePurchase(ctx context.Context, req model.PurchaseRequest) (model.BookPurchase, error) {
	if err := authorize(ctx, req.UserID); err != nil {
		return model.BookPurchase{}, err
	}
	book, err := s.repo.GetBookToSell(ctx, req.BookID)
	if err != nil {
		return model.BookPurchase{}, err
	}
	var p model.BookPurchase
	err = s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		if err = repo.DecrementSellStock(ctx, book.ID, req.Quantity); err != nil {
			return err
		}
		p, err = repo.CreatePurchase(ctx, model.BookPurchase{
			UserID:     req.UserID,
			BookID:     book.ID,
			Quantity:   req.Quantity,
			TotalPrice: model.LineTotal(book.Price, req.Quantity),
		})
		return err
	})
	return p, err
}

func (s *Service) DeletePurchase(ctx context.Context, id int64) error {
	return s.repo.DeletePurchase(ctx, id)
}

func (s *Service) ListWishlists(ctx context.Context, userID int64, page, size int) (model.List[model.Wishlist], error) {
	userID, err := scope(ctx, userID)
	if err != nil {
		return model.List[model.Wishlist]{}, err
	}
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListWishlists(ctx, userID, page, size)
	if err != nil {
		return model.List[model.Wishlist]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) AddToWishlist(ctx context.Context, req model.WishlistRequest) (model.Wishlist, error) {
	if err := authorize(ctx, req.UserID); err != nil {
		return model.Wishlist{}, err
	}
	if _, err := s.repo.GetBookToSell(ctx, req.BookID); err != nil {
		return model.Wishlist{}, err
	}
	return s.repo.CreateWishlist(ctx, model.Wishlist{UserID: req.UserID, BookID: req.BookID})
}

func (s *Service) RemoveFromWishlist(ctx context.Context, id int64) error {
	w, err := s.repo.GetWishlist(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(ctx, w.UserID); err != nil {
		return err
	}
	return s.repo.DeleteWishlist(ctx, id)
}
