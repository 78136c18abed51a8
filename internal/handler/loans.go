package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/pkg/auth"
)

func (h *Handler) BorrowBook(c echo.Context) error {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No identity")
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	loan, err := h.lending.Borrow(c.Request().Context(), id.Username, req.BookUid)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrBookUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No identity")
	}
	loanUid, err := pathUid(c, "loanUid")
	if err != nil {
		return err
	}

	loan, err := h.lending.Return(c.Request().Context(), id.Username, loanUid)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, errs.ErrAlreadyReturned):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetLoans(c echo.Context) error {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No identity")
	}
	var (
		err        error
		activeOnly bool
	)
	if activeParam := c.QueryParam("active"); activeParam != "" {
		if activeOnly, err = strconv.ParseBool(activeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "active is invalid")
		}
	}

	loans, err := h.lending.ListLoans(c.Request().Context(), id.Username, activeOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loans)
}
