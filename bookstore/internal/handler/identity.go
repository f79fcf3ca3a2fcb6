package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

// Register
// @Summary  Register a customer account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body  model.RegisterRequest  true  "account"
// @Success  201  {object}  model.AuthResponse
// @Failure  422  {object}  errs.ValidationErrorResponse
// @Router   /register [post]
func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body  model.LoginRequest  true  "credentials"
// @Success  200  {object}  model.AuthResponse
// @Failure  401  {object}  echo.HTTPError
// @Router   /login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c echo.Context) error {
	return h.noContent(c, h.svc.Logout(c.Request().Context()))
}

// Me
// @Summary   Current user profile
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  model.Profile
// @Router    /me [get]
func (h *Handler) Me(c echo.Context) error {
	p, err := h.svc.Me(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListUsers(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListUsers(c.Request().Context(), page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	u, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.UserRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.UserRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.UpdateUser(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteUser(c.Request().Context(), id))
}

func (h *Handler) ListMembershipCards(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListMembershipCards(c.Request().Context(), page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetMembershipCard(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	card, err := h.svc.GetMembershipCard(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) CreateMembershipCard(c echo.Context) error {
	var req model.MembershipCardRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	card, err := h.svc.CreateMembershipCard(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) UpdateMembershipCard(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.MembershipCardRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	card, err := h.svc.UpdateMembershipCard(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) DeleteMembershipCard(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteMembershipCard(c.Request().Context(), id))
}

// CheckExpiredMemberships clears is_member for holders of lapsed cards.
func (h *Handler) CheckExpiredMemberships(c echo.Context) error {
	n, err := h.svc.CheckExpiredMemberships(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"expired": n})
}
