package handler

import (
	"context"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/service"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookstoreService interface {
	ListAuthors(ctx context.Context, page, size int) (model.List[model.Author], error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
	AuthorBooks(ctx context.Context, authorID int64) (model.BooksByOwner, error)
	ListCategories(ctx context.Context, page, size int) (model.List[model.Category], error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	CategoryBooks(ctx context.Context, categoryID int64) (model.BooksByOwner, error)
	ListBooksToRent(ctx context.Context, f model.CatalogFilter) (model.List[model.BookToRent], error)
	GetBookToRent(ctx context.Context, id int64) (model.BookToRent, error)
	CreateBookToRent(ctx context.Context, req model.BookToRentRequest) (model.BookToRent, error)
	UpdateBookToRent(ctx context.Context, id int64, req model.BookToRentRequest) (model.BookToRent, error)
	DeleteBookToRent(ctx context.Context, id int64) error
	ListBooksToSell(ctx context.Context, f model.CatalogFilter) (model.List[model.BookToSell], error)
	GetBookToSell(ctx context.Context, id int64) (model.BookToSell, error)
	CreateBookToSell(ctx context.Context, req model.BookToSellRequest) (model.BookToSell, error)
	UpdateBookToSell(ctx context.Context, id int64, req model.BookToSellRequest) (model.BookToSell, error)
	DeleteBookToSell(ctx context.Context, id int64) error

	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (model.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (model.Profile, error)
	ListUsers(ctx context.Context, page, size int) (model.List[model.User], error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	CreateUser(ctx context.Context, req model.UserRequest) (model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListMembershipCards(ctx context.Context, page, size int) (model.List[model.MembershipCard], error)
	GetMembershipCard(ctx context.Context, id int64) (model.MembershipCard, error)
	CreateMembershipCard(ctx context.Context, req model.MembershipCardRequest) (model.MembershipCard, error)
	UpdateMembershipCard(ctx context.Context, id int64, req model.MembershipCardRequest) (model.MembershipCard, error)
	DeleteMembershipCard(ctx context.Context, id int64) error
	CheckExpiredMemberships(ctx context.Context) (int64, error)

	AddToCart(ctx context.Context, req model.AddToCartRequest) (model.CartItem, error)
	UpdateCartItem(ctx context.Context, id int64, req model.UpdateCartItemRequest) (model.CartItem, error)
	RemoveCartItem(ctx context.Context, id int64) error
	GetCart(ctx context.Context, userID int64) (model.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
	Checkout(ctx context.Context, userID int64, req model.CheckoutRequest) (model.Order, error)
	ListOrders(ctx context.Context, userID int64, page, size int) (model.List[model.Order], error)
	GetOrder(ctx context.Context, id int64) (model.Order, error)
	CreateOrder(ctx context.Context, req model.OrderRequest) (model.Order, error)
	UpdateOrder(ctx context.Context, id int64, req model.OrderUpdateRequest) (model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	ListTransactions(ctx context.Context, userID int64, page, size int) (model.List[model.Transaction], error)
	GetTransaction(ctx context.Context, id int64) (model.Transaction, error)
	CreateTransaction(ctx context.Context, req model.TransactionRequest) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, req model.TransactionUpdateRequest) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	ListPurchases(ctx context.Context, userID int64, page, size int) (model.List[model.BookPurchase], error)
	GetPurchase(ctx context.Context, id int64) (model.BookPurchase, error)
	CreatePurchase(ctx context.Context, req model.PurchaseRequest) (model.BookPurchase, error)
	DeletePurchase(ctx context.Context, id int64) error
	ListWishlists(ctx context.Context, userID int64, page, size int) (model.List[model.Wishlist], error)
	AddToWishlist(ctx context.Context, req model.WishlistRequest) (model.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, id int64) error

	Reserve(ctx context.Context, req model.ReservationRequest) (model.BookReservation, error)
	SweepReservations(ctx context.Context) (model.SweepResult, error)
	ListReservations(ctx context.Context, f model.ReservationFilter) (model.List[model.BookReservation], error)
	GetReservation(ctx context.Context, id int64) (model.BookReservation, error)
	CancelReservation(ctx context.Context, id int64) (model.BookReservation, error)
	PickupReservation(ctx context.Context, id int64) (model.ActiveRental, error)
	UpdateReservation(ctx context.Context, id int64, req model.PaymentDetails) (model.BookReservation, error)
	DeleteReservation(ctx context.Context, id int64) error
	ListActiveRentals(ctx context.Context, f model.RentalFilter) (model.List[model.ActiveRental], error)
	GetActiveRental(ctx context.Context, id int64) (model.ActiveRental, error)
	CreateWalkInRental(ctx context.Context, req model.WalkInRentalRequest) (model.ActiveRental, error)
	MarkOverdue(ctx context.Context, id int64) (model.Overdue, error)
	DeleteActiveRental(ctx context.Context, id int64) error
	ReturnRental(ctx context.Context, req model.ReturnRequest) (model.Rental, error)
	ListRentals(ctx context.Context, userID int64, page, size int) (model.List[model.Rental], error)
	GetRental(ctx context.Context, id int64) (model.Rental, error)
	DeleteRental(ctx context.Context, id int64) error
	ListOverdues(ctx context.Context, userID int64, page, size int) (model.List[model.Overdue], error)
	GetOverdue(ctx context.Context, id int64) (model.Overdue, error)
	UpdateOverdue(ctx context.Context, id int64, req model.OverdueUpdateRequest) (model.Overdue, error)
	DeleteOverdue(ctx context.Context, id int64) error

	Dashboard(ctx context.Context) (model.Dashboard, error)
	EventStats(ctx context.Context) ([]model.EventStat, error)
	RecordEvent(ctx context.Context, e kafka.Event) error
}

var _ BookstoreService = (*service.Service)(nil)
