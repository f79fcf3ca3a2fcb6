package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

// Reserve
// @Summary   Reserve a rent book with a membership card
// @Tags      rental
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     payload  body  model.ReservationRequest  true  "reservation"
// @Success   201  {object}  model.BookReservation
// @Failure   400  {object}  echo.HTTPError
// @Failure   422  {object}  errs.ValidationErrorResponse
// @Router    /reservations [post]
func (h *Handler) Reserve(c echo.Context) error {
	var req model.ReservationRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.Reserve(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// SweepReservations expires overdue pickups and releases their stock.
func (h *Handler) SweepReservations(c echo.Context) error {
	res, err := h.svc.SweepReservations(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListReservations(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	f := model.ReservationFilter{UserID: userID, Page: page, Size: size}
	switch status := model.ReservationStatus(c.QueryParam("status")); status {
	case "", model.ReservationWaiting, model.ReservationPicked, model.ReservationExpired, model.ReservationCancelled:
		f.Status = status
	default:
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("status is invalid"))
	}
	list, err := h.svc.ListReservations(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetReservation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	r, err := h.svc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) UpdateReservation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.PaymentDetails
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.UpdateReservation(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	r, err := h.svc.CancelReservation(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// PickupReservation
// @Summary   Hand a reserved book to the customer
// @Tags      rental
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  int  true  "reservation id"
// @Success   201  {object}  model.ActiveRental
// @Failure   400  {object}  echo.HTTPError
// @Router    /reservations/{id}/pickup [post]
func (h *Handler) PickupReservation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	ar, err := h.svc.PickupReservation(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, ar)
}

func (h *Handler) DeleteReservation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteReservation(c.Request().Context(), id))
}

func (h *Handler) ListActiveRentals(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	f := model.RentalFilter{UserID: userID, Page: page, Size: size}
	switch status := model.ActiveRentalStatus(c.QueryParam("status")); status {
	case "", model.RentalActive, model.RentalOverdue, model.RentalReturned:
		f.Status = status
	default:
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("status is invalid"))
	}
	list, err := h.svc.ListActiveRentals(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetActiveRental(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	ar, err := h.svc.GetActiveRental(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, ar)
}

func (h *Handler) CreateWalkInRental(c echo.Context) error {
	var req model.WalkInRentalRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	ar, err := h.svc.CreateWalkInRental(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, ar)
}

func (h *Handler) MarkOverdue(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	o, err := h.svc.MarkOverdue(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) DeleteActiveRental(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteActiveRental(c.Request().Context(), id))
}

// ReturnRental
// @Summary   Close an active rental
// @Tags      rental
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     payload  body  model.ReturnRequest  true  "return"
// @Success   201  {object}  model.Rental
// @Failure   400  {object}  echo.HTTPError
// @Router    /rentals [post]
func (h *Handler) ReturnRental(c echo.Context) error {
	var req model.ReturnRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.ReturnRental(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListRentals(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListRentals(c.Request().Context(), userID, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UserRentals(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListRentals(c.Request().Context(), id, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetRental(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	r, err := h.svc.GetRental(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) DeleteRental(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteRental(c.Request().Context(), id))
}

func (h *Handler) ListOverdues(c echo.Context) error {
	userID, page, size, err := ownerPaging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListOverdues(c.Request().Context(), userID, page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetOverdue(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	o, err := h.svc.GetOverdue(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOverdue(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.OverdueUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	o, err := h.svc.UpdateOverdue(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) DeleteOverdue(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteOverdue(c.Request().Context(), id))
}
