package service_test

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/repository"
)

type state struct {
	seq          int64
	authors      map[int64]model.Author
	categories   map[int64]model.Category
	booksToRent  map[int64]model.BookToRent
	booksToSell  map[int64]model.BookToSell
	users        map[int64]model.User
	tokens       map[string]int64
	cards        map[int64]model.MembershipCard
	carts        map[int64]model.Cart
	cartItems    map[int64]model.CartItem
	orders       map[int64]model.Order
	purchases    map[int64]model.BookPurchase
	transactions map[int64]model.Transaction
	wishlists    map[int64]model.Wishlist
	reservations map[int64]model.BookReservation
	active       map[int64]model.ActiveRental
	rentals      map[int64]model.Rental
	overdues     map[int64]model.Overdue
	events       []model.RentalEvent
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s state) clone() state {
	c := s
	c.authors = cloneMap(s.authors)
	c.categories = cloneMap(s.categories)
	c.booksToRent = cloneMap(s.booksToRent)
	c.booksToSell = cloneMap(s.booksToSell)
	c.users = cloneMap(s.users)
	c.tokens = cloneMap(s.tokens)
	c.cards = cloneMap(s.cards)
	c.carts = cloneMap(s.carts)
	c.cartItems = cloneMap(s.cartItems)
	c.orders = cloneMap(s.orders)
	c.purchases = cloneMap(s.purchases)
	c.transactions = cloneMap(s.transactions)
	c.wishlists = cloneMap(s.wishlists)
	c.reservations = cloneMap(s.reservations)
	c.active = cloneMap(s.active)
	c.rentals = cloneMap(s.rentals)
	c.overdues = cloneMap(s.overdues)
	c.events = append([]model.RentalEvent(nil), s.events...)
	return c
}

// fakeRepo keeps everything in memory and rolls back InTx on error.
type fakeRepo struct {
	mu  sync.Mutex
	st  state
	now time.Time
}

var _ repository.Repository = (*fakeRepo)(nil)

func newFakeRepo(now time.Time) *fakeRepo {
	return &fakeRepo{
		now: now,
		st: state{
			authors:      map[int64]model.Author{},
			categories:   map[int64]model.Category{},
			booksToRent:  map[int64]model.BookToRent{},
			booksToSell:  map[int64]model.BookToSell{},
			users:        map[int64]model.User{},
			tokens:       map[string]int64{},
			cards:        map[int64]model.MembershipCard{},
			carts:        map[int64]model.Cart{},
			cartItems:    map[int64]model.CartItem{},
			orders:       map[int64]model.Order{},
			purchases:    map[int64]model.BookPurchase{},
			transactions: map[int64]model.Transaction{},
			wishlists:    map[int64]model.Wishlist{},
			reservations: map[int64]model.BookReservation{},
			active:       map[int64]model.ActiveRental{},
			rentals:      map[int64]model.Rental{},
			overdues:     map[int64]model.Overdue{},
		},
	}
}

func (f *fakeRepo) nextID() int64 {
	f.st.seq++
	return f.st.seq
}

func (f *fakeRepo) InTx(_ context.Context, fn func(repository.Repository) error) error {
	f.mu.Lock()
	snapshot := f.st.clone()
	f.mu.Unlock()
	if err := fn(f); err != nil {
		f.mu.Lock()
		f.st = snapshot
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeRepo) GetAuthor(_ context.Context, id int64) (model.Author, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.st.authors[id]
	if !ok {
		return model.Author{}, errs.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) UpdateAuthor(_ context.Context, id int64, a model.Author) (model.Author, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.st.authors[id]
	if !ok {
		return model.Author{}, errs.ErrNotFound
	}
	a.ID, a.CreatedAt = id, cur.CreatedAt
	f.st.authors[id] = a
	return a, nil
}

func (f *fakeRepo) GetBookToRent(_ context.Context, id int64) (model.BookToRent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.st.booksToRent[id]
	if !ok {
		return model.BookToRent{}, errs.ErrNotFound
	}
	return b, nil
}

func (f *fakeRepo) CreateBookToRent(_ context.Context, b model.BookToRent) (model.BookToRent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.nextID()
	f.st.booksToRent[b.ID] = b
	return b, nil
}

func (f *fakeRepo) ReserveBook(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.st.booksToRent[id]
	if !ok || b.AvailabilityStatus != model.Available || b.Stock <= 0 {
		return errs.ErrBookUnavailable
	}
	b.Stock--
	b.AvailabilityStatus = model.Reserved
	f.st.booksToRent[id] = b
	return nil
}

func (f *fakeRepo) TakeBook(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.st.booksToRent[id]
	if !ok || b.AvailabilityStatus != model.Available || b.Stock <= 0 {
		return errs.ErrBookUnavailable
	}
	b.Stock--
	b.AvailabilityStatus = model.Rented
	f.st.booksToRent[id] = b
	return nil
}

func (f *fakeRepo) ReleaseBooks(_ context.Context, ids ...int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		b := f.st.booksToRent[id]
		b.Stock++
		b.AvailabilityStatus = model.Available
		f.st.booksToRent[id] = b
	}
	return nil
}

func (f *fakeRepo) MarkBookRented(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.st.booksToRent[id]
	if !ok {
		return errs.ErrNotFound
	}
	b.AvailabilityStatus = model.Rented
	f.st.booksToRent[id] = b
	return nil
}

func (f *fakeRepo) GetBookToSell(_ context.Context, id int64) (model.BookToSell, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.st.booksToSell[id]
	if !ok {
		return model.BookToSell{}, errs.ErrNotFound
	}
	return b, nil
}

func (f *fakeRepo) DecrementSellStock(_ context.Context, id int64, qty int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.st.booksToSell[id]
	if !ok || b.Stock < qty {
		return errs.ErrOutOfStock
	}
	b.Stock -= qty
	f.st.booksToSell[id] = b
	return nil
}

func (f *fakeRepo) GetUser(_ context.Context, id int64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.st.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.st.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

func (f *fakeRepo) CreateUser(_ context.Context, u model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.st.users {
		if existing.Email == u.Email {
			return model.User{}, errs.Field("email", "has already been taken")
		}
		if existing.CIN == u.CIN {
			return model.User{}, errs.Field("cin", "has already been taken")
		}
	}
	u.ID = f.nextID()
	u.CreatedAt = f.now
	f.st.users[u.ID] = u
	return u, nil
}

func (f *fakeRepo) SetMembership(_ context.Context, userID int64, isMember bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.st.users[userID]
	if !ok {
		return errs.ErrNotFound
	}
	u.IsMember = isMember
	f.st.users[userID] = u
	return nil
}

func (f *fakeRepo) CreateToken(_ context.Context, userID int64, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.st.tokens[tokenHash] = userID
	return nil
}

func (f *fakeRepo) UserByToken(_ context.Context, tokenHash string, _ time.Time) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.st.tokens[tokenHash]
	if !ok {
		return model.User{}, errs.ErrUnauthorized
	}
	return f.st.users[id], nil
}

func (f *fakeRepo) DeleteTokens(_ context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for h, id := range f.st.tokens {
		if id == userID {
			delete(f.st.tokens, h)
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) GetMembershipCardByNumber(_ context.Context, number string) (model.MembershipCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.st.cards {
		if c.CardNumber == number {
			return c, nil
		}
	}
	return model.MembershipCard{}, errs.ErrNotFound
}

func (f *fakeRepo) CreateMembershipCard(_ context.Context, c model.MembershipCard) (model.MembershipCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.nextID()
	f.st.cards[c.ID] = c
	return c, nil
}

func (f *fakeRepo) ExpireMemberships(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.st.cards {
		u := f.st.users[c.UserID]
		if c.ValidUntil.Before(now) && u.IsMember {
			u.IsMember = false
			f.st.users[c.UserID] = u
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) GetCartByUser(_ context.Context, userID int64) (model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.st.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	return model.Cart{}, errs.ErrNotFound
}

func (f *fakeRepo) EnsureCart(ctx context.Context, userID int64) (model.Cart, error) {
	if c, err := f.GetCartByUser(ctx, userID); err == nil {
		return c, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c := model.Cart{ID: f.nextID(), UserID: userID}
	f.st.carts[c.ID] = c
	return c, nil
}

func (f *fakeRepo) ListCartItems(_ context.Context, cartID int64) ([]model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []model.CartItem
	for _, it := range f.st.cartItems {
		if it.CartID == cartID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (f *fakeRepo) AddCartItem(_ context.Context, cartID, bookID int64, qty int, unitPrice float64) (model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, it := range f.st.cartItems {
		if it.CartID == cartID && it.BookID == bookID {
			it.Quantity += qty
			it.TotalAmount = model.LineTotal(unitPrice, it.Quantity)
			f.st.cartItems[id] = it
			return it, nil
		}
	}
	it := model.CartItem{ID: f.nextID(), CartID: cartID, BookID: bookID, Quantity: qty, TotalAmount: model.LineTotal(unitPrice, qty)}
	f.st.cartItems[it.ID] = it
	return it, nil
}

func (f *fakeRepo) ClearCart(_ context.Context, cartID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, it := range f.st.cartItems {
		if it.CartID == cartID {
			delete(f.st.cartItems, id)
		}
	}
	return nil
}

func (f *fakeRepo) GetOrder(_ context.Context, id int64) (model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.st.orders[id]
	if !ok {
		return model.Order{}, errs.ErrNotFound
	}
	return o, nil
}

func (f *fakeRepo) CreateOrder(_ context.Context, o model.Order) (model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = f.nextID()
	books := make([]model.OrderBook, 0, len(o.Books))
	for _, b := range o.Books {
		b.OrderID = o.ID
		books = append(books, b)
	}
	o.Books = books
	f.st.orders[o.ID] = o
	return o, nil
}

func (f *fakeRepo) TransitionOrder(_ context.Context, id int64, from, to model.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.st.orders[id]
	if !ok || o.Status != from {
		return errs.ErrInvalidTransition
	}
	o.Status = to
	f.st.orders[id] = o
	return nil
}

func (f *fakeRepo) CreatePurchase(_ context.Context, p model.BookPurchase) (model.BookPurchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.nextID()
	p.PurchaseDate = f.now
	f.st.purchases[p.ID] = p
	return p, nil
}

func (f *fakeRepo) GetTransaction(_ context.Context, id int64) (model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.st.transactions[id]
	if !ok {
		return model.Transaction{}, errs.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) CreateTransaction(_ context.Context, t model.Transaction) (model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = f.nextID()
	f.st.transactions[t.ID] = t
	return t, nil
}

func (f *fakeRepo) TransitionTransaction(_ context.Context, id int64, from, to model.TransactionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.st.transactions[id]
	if !ok || t.Status != from {
		return errs.ErrInvalidTransition
	}
	t.Status = to
	f.st.transactions[id] = t
	return nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, br model.BookReservation) (model.BookReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	br.ID = f.nextID()
	br.UpdatedAt = br.CreatedAt
	f.st.reservations[br.ID] = br
	return br, nil
}

func (f *fakeRepo) GetReservation(_ context.Context, id int64) (model.BookReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.st.reservations[id]
	if !ok {
		return model.BookReservation{}, errs.ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListReservations(_ context.Context, flt model.ReservationFilter) ([]model.BookReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.BookReservation
	for _, r := range f.st.reservations {
		if flt.UserID != 0 && r.UserID != flt.UserID {
			continue
		}
		if flt.Status != "" && r.Status != flt.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) TransitionReservation(_ context.Context, id int64, from, to model.ReservationStatus, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.st.reservations[id]
	if !ok || r.Status != from {
		return errs.ErrInvalidTransition
	}
	r.Status = to
	r.UpdatedAt = at
	if to == model.ReservationPicked {
		r.PickedUpAt = &at
	}
	f.st.reservations[id] = r
	return nil
}

func (f *fakeRepo) SweepReservations(_ context.Context, from, to model.ReservationStatus, cutoff time.Time) ([]model.ExpiredReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var moved []model.ExpiredReservation
	for id, r := range f.st.reservations {
		if r.Status == from && r.CreatedAt.Before(cutoff) {
			r.Status = to
			f.st.reservations[id] = r
			moved = append(moved, model.ExpiredReservation{ID: r.ID, UserID: r.UserID, BookID: r.BookID})
		}
	}
	return moved, nil
}

func (f *fakeRepo) CreateActiveRental(_ context.Context, ar model.ActiveRental) (model.ActiveRental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ar.ID = f.nextID()
	f.st.active[ar.ID] = ar
	return ar, nil
}

func (f *fakeRepo) GetActiveRental(_ context.Context, id int64) (model.ActiveRental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ar, ok := f.st.active[id]
	if !ok {
		return model.ActiveRental{}, errs.ErrNotFound
	}
	return ar, nil
}

func (f *fakeRepo) TransitionActiveRental(_ context.Context, id int64, from, to model.ActiveRentalStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ar, ok := f.st.active[id]
	if !ok || ar.Status != from {
		return errs.ErrInvalidTransition
	}
	ar.Status = to
	f.st.active[id] = ar
	return nil
}

func (f *fakeRepo) CreateRental(_ context.Context, rt model.Rental) (model.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.st.rentals {
		if existing.ActiveRentalID == rt.ActiveRentalID {
			return model.Rental{}, errs.Field("active_rental_id", "has already been taken")
		}
	}
	rt.ID = f.nextID()
	f.st.rentals[rt.ID] = rt
	return rt, nil
}

func (f *fakeRepo) CreateOverdue(_ context.Context, o model.Overdue) (model.Overdue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = f.nextID()
	f.st.overdues[o.ID] = o
	return o, nil
}

func (f *fakeRepo) MarkOverdueReturned(_ context.Context, activeRentalID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, o := range f.st.overdues {
		if o.ActiveRentalID == activeRentalID {
			o.IsReturned = true
			f.st.overdues[id] = o
		}
	}
	return nil
}

func (f *fakeRepo) Metric(_ context.Context, m model.DashboardMetric) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch m {
	case model.MetricBooksToRent:
		return float64(len(f.st.booksToRent)), nil
	case model.MetricBooksToSell:
		return float64(len(f.st.booksToSell)), nil
	case model.MetricUsers:
		return float64(len(f.st.users)), nil
	case model.MetricWaitingReservations:
		n := 0
		for _, r := range f.st.reservations {
			if r.Status == model.ReservationWaiting {
				n++
			}
		}
		return float64(n), nil
	case model.MetricUnpaidPenalties:
		var sum float64
		for _, o := range f.st.overdues {
			if !o.IsPaid {
				sum += o.PenaltyAmount
			}
		}
		return sum, nil
	}
	return 0, nil
}

func (f *fakeRepo) SaveEvent(_ context.Context, e model.RentalEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.st.events = append(f.st.events, e)
	return nil
}

func getFrom[V any](m map[int64]V, id int64) (V, error) {
	v, ok := m[id]
	if !ok {
		var zero V
		return zero, errs.ErrNotFound
	}
	return v, nil
}

func deleteFrom[V any](m map[int64]V, id int64) error {
	if _, ok := m[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m, id)
	return nil
}

// pageOf returns the kept values ordered by id and paged like the SQL
// repository: a zero page or size means everything.
func pageOf[V any](m map[int64]V, keep func(V) bool, pg, size int) []V {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if pg != 0 && size != 0 {
		start := min((pg-1)*size, len(ids))
		ids = ids[start:min(start+size, len(ids))]
	}
	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func titleMatches(title string, f model.CatalogFilter, authorID, categoryID int64) bool {
	if f.Q != "" && !strings.Contains(strings.ToLower(title), strings.ToLower(f.Q)) {
		return false
	}
	if f.AuthorID != 0 && authorID != f.AuthorID {
		return false
	}
	return f.CategoryID == 0 || categoryID == f.CategoryID
}

func (f *fakeRepo) ListAuthors(_ context.Context, pg, size int) ([]model.Author, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return pageOf(f.st.authors, nil, pg, size), nil
}

func (f *fakeRepo) CreateAuthor(_ context.Context, a model.Author) (model.Author, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = f.nextID()
	a.CreatedAt = f.now
	f.st.authors[a.ID] = a
	return a, nil
}

func (f *fakeRepo) DeleteAuthor(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.st.booksToRent {
		if b.AuthorID == id {
			return errs.ErrInUse
		}
	}
	for _, b := range f.st.booksToSell {
		if b.AuthorID == id {
			return errs.ErrInUse
		}
	}
	return deleteFrom(f.st.authors, id)
}

func (f *fakeRepo) ListCategories(_ context.Context, pg, size int) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return pageOf(f.st.categories, nil, pg, size), nil
}

func (f *fakeRepo) GetCategory(_ context.Context, id int64) (model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getFrom(f.st.categories, id)
}

func (f *fakeRepo) CreateCategory(_ context.Context, c model.Category) (model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.nextID()
	c.CreatedAt = f.now
	f.st.categories[c.ID] = c
	return c, nil
}

func (f *fakeRepo) UpdateCategory(_ context.Context, id int64, c model.Category) (model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, err := getFrom(f.st.categories, id)
	if err != nil {
		return model.Category{}, err
	}
	c.ID, c.CreatedAt = id, cur.CreatedAt
	f.st.categories[id] = c
	return c, nil
}

func (f *fakeRepo) DeleteCategory(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.st.booksToRent {
		if b.CategoryID == id {
			return errs.ErrInUse
		}
	}
	for _, b := range f.st.booksToSell {
		if b.CategoryID == id {
			return errs.ErrInUse
		}
	}
	return deleteFrom(f.st.categories, id)
}

func (f *fakeRepo) ListBooksToRent(_ context.Context, flt model.CatalogFilter) ([]model.BookToRent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(b model.BookToRent) bool {
		if flt.Status != "" && b.AvailabilityStatus != flt.Status {
			return false
		}
		return titleMatches(b.Title, flt, b.AuthorID, b.CategoryID)
	}
	return pageOf(f.st.booksToRent, keep, flt.Page, flt.Size), nil
}

func (f *fakeRepo) UpdateBookToRent(_ context.Context, id int64, b model.BookToRent) (model.BookToRent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, err := getFrom(f.st.booksToRent, id)
	if err != nil {
		return model.BookToRent{}, err
	}
	b.ID, b.CreatedAt, b.UpdatedAt = id, cur.CreatedAt, f.now
	f.st.booksToRent[id] = b
	return b, nil
}

func (f *fakeRepo) DeleteBookToRent(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.booksToRent, id)
}

func (f *fakeRepo) ListBooksToSell(_ context.Context, flt model.CatalogFilter) ([]model.BookToSell, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(b model.BookToSell) bool { return titleMatches(b.Title, flt, b.AuthorID, b.CategoryID) }
	return pageOf(f.st.booksToSell, keep, flt.Page, flt.Size), nil
}

func (f *fakeRepo) CreateBookToSell(_ context.Context, b model.BookToSell) (model.BookToSell, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.nextID()
	b.CreatedAt, b.UpdatedAt = f.now, f.now
	f.st.booksToSell[b.ID] = b
	return b, nil
}

func (f *fakeRepo) UpdateBookToSell(_ context.Context, id int64, b model.BookToSell) (model.BookToSell, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, err := getFrom(f.st.booksToSell, id)
	if err != nil {
		return model.BookToSell{}, err
	}
	b.ID, b.CreatedAt, b.UpdatedAt = id, cur.CreatedAt, f.now
	f.st.booksToSell[id] = b
	return b, nil
}

func (f *fakeRepo) DeleteBookToSell(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.booksToSell, id)
}

func (f *fakeRepo) ListUsers(_ context.Context, pg, size int) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return pageOf(f.st.users, nil, pg, size), nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, id int64, u model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, err := getFrom(f.st.users, id)
	if err != nil {
		return model.User{}, err
	}
	cur.Name, cur.Email, cur.CIN = u.Name, u.Email, u.CIN
	cur.Phone, cur.Address, cur.Role = u.Phone, u.Address, u.Role
	if u.PasswordHash != "" {
		cur.PasswordHash = u.PasswordHash
	}
	cur.UpdatedAt = f.now
	f.st.users[id] = cur
	return cur, nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.users, id)
}

func (f *fakeRepo) ListMembershipCards(_ context.Context, pg, size int) ([]model.MembershipCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return pageOf(f.st.cards, nil, pg, size), nil
}

func (f *fakeRepo) GetMembershipCard(_ context.Context, id int64) (model.MembershipCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getFrom(f.st.cards, id)
}

func (f *fakeRepo) GetMembershipCardByUser(_ context.Context, userID int64) (model.MembershipCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range pageOf(f.st.cards, nil, 0, 0) {
		if c.UserID == userID {
			return c, nil
		}
	}
	return model.MembershipCard{}, errs.ErrNotFound
}

func (f *fakeRepo) UpdateMembershipCard(_ context.Context, id int64, c model.MembershipCard) (model.MembershipCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, err := getFrom(f.st.cards, id)
	if err != nil {
		return model.MembershipCard{}, err
	}
	for otherID, other := range f.st.cards {
		if otherID != id && other.CardNumber == c.CardNumber {
			return model.MembershipCard{}, errs.Field("card_number", "has already been taken")
		}
	}
	cur.CardNumber, cur.ValidFrom, cur.ValidUntil = c.CardNumber, c.ValidFrom, c.ValidUntil
	f.st.cards[id] = cur
	return cur, nil
}

func (f *fakeRepo) DeleteMembershipCard(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.cards, id)
}

func (f *fakeRepo) GetCartItem(_ context.Context, id int64) (model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getFrom(f.st.cartItems, id)
}

func (f *fakeRepo) UpdateCartItem(_ context.Context, id int64, qty int, total float64) (model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, err := getFrom(f.st.cartItems, id)
	if err != nil {
		return model.CartItem{}, err
	}
	it.Quantity, it.TotalAmount = qty, total
	f.st.cartItems[id] = it
	return it, nil
}

func (f *fakeRepo) DeleteCartItem(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.cartItems, id)
}

func (f *fakeRepo) ListOrders(_ context.Context, userID int64, pg, size int) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(o model.Order) bool { return userID == 0 || o.UserID == userID }
	return pageOf(f.st.orders, keep, pg, size), nil
}

func (f *fakeRepo) UpdateOrderAddress(_ context.Context, id int64, address string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, err := getFrom(f.st.orders, id)
	if err != nil {
		return err
	}
	o.ShippingAddress = address
	f.st.orders[id] = o
	return nil
}

func (f *fakeRepo) DeleteOrder(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.orders, id)
}

func (f *fakeRepo) ListPurchases(_ context.Context, userID int64, pg, size int) ([]model.BookPurchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(p model.BookPurchase) bool { return userID == 0 || p.UserID == userID }
	return pageOf(f.st.purchases, keep, pg, size), nil
}

func (f *fakeRepo) GetPurchase(_ context.Context, id int64) (model.BookPurchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getFrom(f.st.purchases, id)
}

func (f *fakeRepo) DeletePurchase(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.purchases, id)
}

func (f *fakeRepo) ListTransactions(_ context.Context, userID int64, pg, size int) ([]model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(t model.Transaction) bool { return userID == 0 || t.UserID == userID }
	return pageOf(f.st.transactions, keep, pg, size), nil
}

func (f *fakeRepo) DeleteTransaction(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.transactions, id)
}

func (f *fakeRepo) ListWishlists(_ context.Context, userID int64, pg, size int) ([]model.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(w model.Wishlist) bool { return userID == 0 || w.UserID == userID }
	return pageOf(f.st.wishlists, keep, pg, size), nil
}

func (f *fakeRepo) GetWishlist(_ context.Context, id int64) (model.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getFrom(f.st.wishlists, id)
}

func (f *fakeRepo) CreateWishlist(_ context.Context, w model.Wishlist) (model.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.st.wishlists {
		if existing.UserID == w.UserID && existing.BookID == w.BookID {
			return model.Wishlist{}, errs.Field("book_id", "has already been taken")
		}
	}
	w.ID = f.nextID()
	w.CreatedAt = f.now
	f.st.wishlists[w.ID] = w
	return w, nil
}

func (f *fakeRepo) DeleteWishlist(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.wishlists, id)
}

func (f *fakeRepo) UpdateReservationPayment(_ context.Context, id int64, p model.PaymentDetails) (model.BookReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, err := getFrom(f.st.reservations, id)
	if err != nil {
		return model.BookReservation{}, err
	}
	r.PaymentMethod = p.PaymentMethod
	r.CardHolderName, r.CardLastFour, r.CardExpiry = p.Stored()
	r.UpdatedAt = f.now
	f.st.reservations[id] = r
	return r, nil
}

func (f *fakeRepo) DeleteReservation(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.reservations, id)
}

func (f *fakeRepo) ListActiveRentals(_ context.Context, flt model.RentalFilter) ([]model.ActiveRental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(ar model.ActiveRental) bool {
		if flt.UserID != 0 && ar.UserID != flt.UserID {
			return false
		}
		return flt.Status == "" || ar.Status == flt.Status
	}
	return pageOf(f.st.active, keep, flt.Page, flt.Size), nil
}

func (f *fakeRepo) DeleteActiveRental(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.active, id)
}

func (f *fakeRepo) GetRental(_ context.Context, id int64) (model.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getFrom(f.st.rentals, id)
}

func (f *fakeRepo) ListRentals(_ context.Context, userID int64, pg, size int) ([]model.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(rt model.Rental) bool { return userID == 0 || rt.UserID == userID }
	return pageOf(f.st.rentals, keep, pg, size), nil
}

func (f *fakeRepo) DeleteRental(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.rentals, id)
}

func (f *fakeRepo) GetOverdue(_ context.Context, id int64) (model.Overdue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return getFrom(f.st.overdues, id)
}

func (f *fakeRepo) ListOverdues(_ context.Context, userID int64, pg, size int) ([]model.Overdue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := func(o model.Overdue) bool { return userID == 0 || o.UserID == userID }
	return pageOf(f.st.overdues, keep, pg, size), nil
}

func (f *fakeRepo) UpdateOverdue(_ context.Context, id int64, req model.OverdueUpdateRequest) (model.Overdue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, err := getFrom(f.st.overdues, id)
	if err != nil {
		return model.Overdue{}, err
	}
	if req.IsPaid != nil {
		o.IsPaid = *req.IsPaid
	}
	if req.IsReturned != nil {
		o.IsReturned = *req.IsReturned
	}
	o.UpdatedAt = f.now
	f.st.overdues[id] = o
	return o, nil
}

func (f *fakeRepo) DeleteOverdue(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return deleteFrom(f.st.overdues, id)
}

func (f *fakeRepo) EventStats(_ context.Context) ([]model.EventStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byType := map[string]*model.EventStat{}
	var types []string
	for _, e := range f.st.events {
		st, ok := byType[e.EventType]
		if !ok {
			st = &model.EventStat{EventType: e.EventType}
			byType[e.EventType] = st
			types = append(types, e.EventType)
		}
		st.Count++
		st.Amount += e.Amount
		if e.CreatedAt.After(st.LastAt) {
			st.LastAt = e.CreatedAt
		}
	}
	slices.Sort(types)
	out := make([]model.EventStat, 0, len(types))
	for _, t := range types {
		out = append(out, *byType[t])
	}
	return out, nil
}

// seed helpers

func (f *fakeRepo) addUser(u model.User) model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.nextID()
	f.st.users[u.ID] = u
	return u
}

func (f *fakeRepo) addCard(c model.MembershipCard) model.MembershipCard {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.nextID()
	f.st.cards[c.ID] = c
	return c
}

func (f *fakeRepo) addRentBook(b model.BookToRent) model.BookToRent {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.nextID()
	f.st.booksToRent[b.ID] = b
	return b
}

func (f *fakeRepo) addSellBook(b model.BookToSell) model.BookToSell {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.nextID()
	f.st.booksToSell[b.ID] = b
	return b
}

func (f *fakeRepo) addReservation(r model.BookReservation) model.BookReservation {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = f.nextID()
	f.st.reservations[r.ID] = r
	return r
}

func (f *fakeRepo) addActiveRental(ar model.ActiveRental) model.ActiveRental {
	f.mu.Lock()
	defer f.mu.Unlock()
	ar.ID = f.nextID()
	f.st.active[ar.ID] = ar
	return ar
}

func (f *fakeRepo) addOrder(o model.Order) model.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = f.nextID()
	for i := range o.Books {
		o.Books[i].OrderID = o.ID
	}
	f.st.orders[o.ID] = o
	return o
}

func (f *fakeRepo) rentBook(id int64) model.BookToRent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.st.booksToRent[id]
}

func (f *fakeRepo) snapshot() state {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.st.clone()
}
