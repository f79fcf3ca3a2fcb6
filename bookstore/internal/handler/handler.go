package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/metrics"
	md "github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/middleware"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/validate"
	_ "github.com/SihamELBOUBAKRI/LibraryHub-sub000/swagger"
)

type Handler struct {
	svc BookstoreService
	log *zap.Logger
}

func New(svc BookstoreService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.Metrics,
	)

	authed := []echo.MiddlewareFunc{h.Authenticate}
	admin := []echo.MiddlewareFunc{h.Authenticate, RequireAdmin}

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout, authed...)
	api.GET("/me", h.Me, authed...)

	api.GET("/authors", h.ListAuthors)
	api.GET("/authors/:id", h.GetAuthor)
	api.GET("/authors/:id/books", h.AuthorBooks)
	api.POST("/authors", h.CreateAuthor, admin...)
	api.PUT("/authors/:id", h.UpdateAuthor, admin...)
	api.DELETE("/authors/:id", h.DeleteAuthor, admin...)

	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:id", h.GetCategory)
	api.GET("/categories/:id/books", h.CategoryBooks)
	api.POST("/categories", h.CreateCategory, admin...)
	api.PUT("/categories/:id", h.UpdateCategory, admin...)
	api.DELETE("/categories/:id", h.DeleteCategory, admin...)

	api.GET("/book-to-rent", h.ListBooksToRent)
	api.GET("/book-to-rent/:id", h.GetBookToRent)
	api.POST("/book-to-rent", h.CreateBookToRent, admin...)
	api.PUT("/book-to-rent/:id", h.UpdateBookToRent, admin...)
	api.DELETE("/book-to-rent/:id", h.DeleteBookToRent, admin...)

	api.GET("/book-to-sell", h.ListBooksToSell)
	api.GET("/book-to-sell/:id", h.GetBookToSell)
	api.POST("/book-to-sell", h.CreateBookToSell, admin...)
	api.PUT("/book-to-sell/:id", h.UpdateBookToSell, admin...)
	api.DELETE("/book-to-sell/:id", h.DeleteBookToSell, admin...)

	api.GET("/users", h.ListUsers, admin...)
	api.GET("/users/:id", h.GetUser, authed...)
	api.POST("/users", h.CreateUser, admin...)
	api.PUT("/users/:id", h.UpdateUser, admin...)
	api.DELETE("/users/:id", h.DeleteUser, admin...)
	api.GET("/users/:id/cart", h.GetCart, authed...)
	api.DELETE("/users/:id/cart", h.ClearCart, authed...)
	api.POST("/users/:id/cart/checkout", h.Checkout, authed...)
	api.GET("/users/:id/orders", h.UserOrders, authed...)
	api.GET("/users/:id/purchases", h.UserPurchases, authed...)
	api.GET("/users/:id/wishlist", h.UserWishlist, authed...)
	api.GET("/users/:id/rentals", h.UserRentals, authed...)

	api.GET("/membership-cards", h.ListMembershipCards, admin...)
	api.GET("/membership-cards/:id", h.GetMembershipCard, authed...)
	api.POST("/membership-cards", h.CreateMembershipCard, admin...)
	api.POST("/membership-cards/check-expired", h.CheckExpiredMemberships, admin...)
	api.PUT("/membership-cards/:id", h.UpdateMembershipCard, admin...)
	api.DELETE("/membership-cards/:id", h.DeleteMembershipCard, admin...)

	api.POST("/cart-items", h.AddToCart, authed...)
	api.PUT("/cart-items/:id", h.UpdateCartItem, authed...)
	api.DELETE("/cart-items/:id", h.RemoveCartItem, authed...)

	api.GET("/orders", h.ListOrders, authed...)
	api.GET("/orders/:id", h.GetOrder, authed...)
	api.POST("/orders", h.CreateOrder, authed...)
	api.PUT("/orders/:id", h.UpdateOrder, authed...)
	api.DELETE("/orders/:id", h.DeleteOrder, admin...)

	api.GET("/transactions", h.ListTransactions, authed...)
	api.GET("/transactions/:id", h.GetTransaction, authed...)
	api.POST("/transactions", h.CreateTransaction, authed...)
	api.PUT("/transactions/:id", h.UpdateTransaction, admin...)
	api.DELETE("/transactions/:id", h.DeleteTransaction, admin...)

	api.GET("/purchases", h.ListPurchases, authed...)
	api.GET("/purchases/:id", h.GetPurchase, authed...)
	api.POST("/purchases", h.CreatePurchase, authed...)
	api.DELETE("/purchases/:id", h.DeletePurchase, admin...)

	api.GET("/wishlists", h.ListWishlists, admin...)
	api.POST("/wishlists", h.AddToWishlist, authed...)
	api.DELETE("/wishlists/:id", h.RemoveFromWishlist, authed...)

	api.GET("/reservations", h.ListReservations, authed...)
	api.GET("/reservations/:id", h.GetReservation, authed...)
	api.POST("/reservations", h.Reserve, authed...)
	api.POST("/reservations/check-expired", h.SweepReservations, admin...)
	api.PUT("/reservations/:id", h.UpdateReservation, authed...)
	api.POST("/reservations/:id/cancel", h.CancelReservation, authed...)
	api.POST("/reservations/:id/pickup", h.PickupReservation, authed...)
	api.DELETE("/reservations/:id", h.DeleteReservation, admin...)

	api.GET("/active-rentals", h.ListActiveRentals, authed...)
	api.GET("/active-rentals/:id", h.GetActiveRental, authed...)
	api.POST("/active-rentals", h.CreateWalkInRental, admin...)
	api.POST("/active-rentals/:id/overdue", h.MarkOverdue, admin...)
	api.DELETE("/active-rentals/:id", h.DeleteActiveRental, admin...)

	api.GET("/rentals", h.ListRentals, authed...)
	api.GET("/rentals/:id", h.GetRental, authed...)
	api.POST("/rentals", h.ReturnRental, authed...)
	api.DELETE("/rentals/:id", h.DeleteRental, admin...)

	api.GET("/overdues", h.ListOverdues, authed...)
	api.GET("/overdues/:id", h.GetOverdue, authed...)
	api.PUT("/overdues/:id", h.UpdateOverdue, admin...)
	api.DELETE("/overdues/:id", h.DeleteOverdue, admin...)

	api.GET("/dashboard", h.Dashboard, admin...)
	api.GET("/stats", h.Stats, admin...)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	return id, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	return page, size, nil
}

func queryID(c echo.Context, name string) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.New(name+" is invalid"))
	}
	return id, nil
}

// bind decodes and validates the request body into req.
func (h *Handler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return h.fail(c, err)
	}
	return nil
}

func (h *Handler) noContent(c echo.Context, err error) error {
	if err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
