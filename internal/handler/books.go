package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

func (h *Handler) GetBooks(c echo.Context) error {
	var (
		err    error
		filter model.BookFilter
	)
	if availableParam := c.QueryParam("available"); availableParam != "" {
		if filter.AvailableOnly, err = strconv.ParseBool(availableParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available is invalid")
		}
	}
	filter.Search = c.QueryParam("search")
	filter.Genre = c.QueryParam("genre")
	filter.Language = c.QueryParam("language")

	books, err := h.catalog.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookUid, err := pathUid(c, "bookUid")
	if err != nil {
		return err
	}
	book, err := h.catalog.GetBook(c.Request().Context(), bookUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalog.CreateBook(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	bookUid, err := pathUid(c, "bookUid")
	if err != nil {
		return err
	}
	var req model.BookUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalog.UpdateBook(c.Request().Context(), bookUid, req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	bookUid, err := pathUid(c, "bookUid")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteBook(c.Request().Context(), bookUid); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetBookStats(c echo.Context) error {
	bookUid, err := pathUid(c, "bookUid")
	if err != nil {
		return err
	}
	stats, err := h.catalog.GetBookStats(c.Request().Context(), bookUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
