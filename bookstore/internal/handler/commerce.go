package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

func (h *Handler) GetCart(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	cart, err := h.svc.GetCart(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *Handler) ClearCart(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.ClearCart(c.Request().Context(), id))
}

// Checkout
// @Summary   Turn the user's cart into a pending order
// @Tags      commerce
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id       path  int                    true   "user id"
// @Param     payload  body  model.CheckoutRequest  false  "shipping override"
// @Success   201  {object}  model.Order
// @Failure   400  {object}  echo.HTTPError
// @Router    /users/{id}/cart/checkout [post]
func (h *Handler) Checkout(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.CheckoutRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	o, err := h.svc.Checkout(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) AddToCart(c echo.Context) error {
	var req model.AddToCartRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	item, err := h.svc.AddToCart(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateCartItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.UpdateCartItemRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	item, err := h.svc.UpdateCartItem(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) RemoveCartItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.RemoveCartItem(c.Request().Context(), id))
}

func (h *Handler) ListOrders(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListOrders(c.Request().Context(), userID, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UserOrders(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListOrders(c.Request().Context(), id, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	o, err := h.svc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req model.OrderRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	o, err := h.svc.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.OrderUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	o, err := h.svc.UpdateOrder(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteOrder(c.Request().Context(), id))
}

func (h *Handler) ListTransactions(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListTransactions(c.Request().Context(), userID, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetTransaction(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	t, err := h.svc.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// CreateTransaction
// @Summary   Pay for an order
// @Tags      commerce
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     payload  body  model.TransactionRequest  true  "payment"
// @Success   201  {object}  model.Transaction
// @Failure   400  {object}  echo.HTTPError
// @Failure   422  {object}  errs.ValidationErrorResponse
// @Router    /transactions [post]
func (h *Handler) CreateTransaction(c echo.Context) error {
	var req model.TransactionRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	t, err := h.svc.CreateTransaction(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) UpdateTransaction(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.TransactionUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	t, err := h.svc.UpdateTransaction(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTransaction(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteTransaction(c.Request().Context(), id))
}

func (h *Handler) ListPurchases(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListPurchases(c.Request().Context(), userID, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UserPurchases(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListPurchases(c.Request().Context(), id, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetPurchase(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetPurchase(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePurchase(c echo.Context) error {
	var req model.PurchaseRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	p, err := h.svc.CreatePurchase(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) DeletePurchase(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeletePurchase(c.Request().Context(), id))
}

func (h *Handler) ListWishlists(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListWishlists(c.Request().Context(), userID, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UserWishlist(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListWishlists(c.Request().Context(), id, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) AddToWishlist(c echo.Context) error {
	var req model.WishlistRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	w, err := h.svc.AddToWishlist(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *Handler) RemoveFromWishlist(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.RemoveFromWishlist(c.Request().Context(), id))
}

// ownerPaging reads the optional user_id filter together with paging.
func ownerPaging(c echo.Context) (userID int64, page, size int, err error) {
	if userID, err = queryID(c, "user_id"); err != nil {
		return 0, 0, 0, err
	}
	page, size, err = paging(c)
	return userID, page, size, err
}
