package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

// ListAuthors
// @Summary  List authors
// @Tags     catalog
// @Produce  json
// @Param    page  query  int  false  "page, 1-based"
// @Param    size  query  int  false  "page size"
// @Success  200  {object}  model.List[model.Author]
// @Router   /authors [get]
func (h *Handler) ListAuthors(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListAuthors(c.Request().Context(), page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	a, err := h.svc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) AuthorBooks(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	books, err := h.svc.AuthorBooks(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// CreateAuthor
// @Summary   Create author
// @Tags      catalog
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     payload  body  model.AuthorRequest  true  "author"
// @Success   201  {object}  model.Author
// @Failure   422  {object}  errs.ValidationErrorResponse
// @Router    /authors [post]
func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	a, err := h.svc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.AuthorRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	a, err := h.svc.UpdateAuthor(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteAuthor(c.Request().Context(), id))
}

func (h *Handler) ListCategories(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListCategories(c.Request().Context(), page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	cat, err := h.svc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *Handler) CategoryBooks(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	books, err := h.svc.CategoryBooks(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req model.CategoryRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	cat, err := h.svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.CategoryRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	cat, err := h.svc.UpdateCategory(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteCategory(c.Request().Context(), id))
}

func catalogFilter(c echo.Context) (model.CatalogFilter, error) {
	page, size, err := paging(c)
	if err != nil {
		return model.CatalogFilter{}, err
	}
	f := model.CatalogFilter{Q: c.QueryParam("q"), Page: page, Size: size}
	if f.AuthorID, err = queryID(c, "author_id"); err != nil {
		return model.CatalogFilter{}, err
	}
	if f.CategoryID, err = queryID(c, "category_id"); err != nil {
		return model.CatalogFilter{}, err
	}
	return f, nil
}

// ListBooksToRent
// @Summary  List rent books
// @Tags     catalog
// @Produce  json
// @Param    q            query  string  false  "title contains"
// @Param    author_id    query  int     false  "author"
// @Param    category_id  query  int     false  "category"
// @Param    status       query  string  false  "available, rented or reserved"
// @Success  200  {object}  model.List[model.BookToRent]
// @Router   /book-to-rent [get]
func (h *Handler) ListBooksToRent(c echo.Context) error {
	f, err := catalogFilter(c)
	if err != nil {
		return err
	}
	switch status := model.AvailabilityStatus(c.QueryParam("status")); status {
	case "", model.Available, model.Rented, model.Reserved:
		f.Status = status
	default:
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("status is invalid"))
	}
	list, err := h.svc.ListBooksToRent(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBookToRent(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	b, err := h.svc.GetBookToRent(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) CreateBookToRent(c echo.Context) error {
	var req model.BookToRentRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	b, err := h.svc.CreateBookToRent(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) UpdateBookToRent(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.BookToRentRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	b, err := h.svc.UpdateBookToRent(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) DeleteBookToRent(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteBookToRent(c.Request().Context(), id))
}

func (h *Handler) ListBooksToSell(c echo.Context) error {
	f, err := catalogFilter(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListBooksToSell(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBookToSell(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	b, err := h.svc.GetBookToSell(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) CreateBookToSell(c echo.Context) error {
	var req model.BookToSellRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	b, err := h.svc.CreateBookToSell(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) UpdateBookToSell(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.BookToSellRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	b, err := h.svc.UpdateBookToSell(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) DeleteBookToSell(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return h.noContent(c, h.svc.DeleteBookToSell(c.Request().Context(), id))
}
