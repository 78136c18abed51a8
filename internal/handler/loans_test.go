package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/handler"
	mock_handler "github.com/readwell/library-service/internal/handler/mocks"
	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/pkg/auth"
	"github.com/readwell/library-service/pkg/validate"
)

const (
	testBookUid = "9a2b63df-b14e-4f0a-9d3f-6f1e9c2a7b51"
	testLoanUid = "4f5f2b1e-0c77-4a3a-8f52-1d2f9ab0c311"
)

// withIdentity mimics the jwt middleware: it puts a verified identity
// into the request context.
func withIdentity(username, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), username, role)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

func TestHandler_BorrowBook(t *testing.T) {
	type mockBehavior func(m *mock_handler.MockLendingService)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	okLoan := model.Loan{
		LoanUid:      testLoanUid,
		Username:     "alice",
		BookUid:      testBookUid,
		BorrowedDate: now,
		DueDate:      now.Add(14 * 24 * time.Hour),
		Status:       model.LoanStatusActive,
	}

	tests := []struct {
		name         string
		body         string
		username     string
		mockBehavior mockBehavior
		wantCode     int
	}{
		{
			name:     "ok",
			body:     `{"bookUid":"` + testBookUid + `"}`,
			username: "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Borrow(gomock.Any(), "alice", testBookUid).Return(okLoan, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:         "invalid body",
			body:         `{"bookUid":"not-a-uuid"}`,
			username:     "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:     "book not found",
			body:     `{"bookUid":"` + testBookUid + `"}`,
			username: "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Borrow(gomock.Any(), "alice", testBookUid).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "book unavailable",
			body:     `{"bookUid":"` + testBookUid + `"}`,
			username: "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Borrow(gomock.Any(), "alice", testBookUid).
					Return(model.Loan{}, errs.ErrBookUnavailable)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "internal error",
			body:     `{"bookUid":"` + testBookUid + `"}`,
			username: "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Borrow(gomock.Any(), "alice", testBookUid).
					Return(model.Loan{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lending := mock_handler.NewMockLendingService(ctrl)
			tt.mockBehavior(lending)

			h := handler.New(handler.Services{Lending: lending}, zap.NewNop())
			e := newEcho()
			e.POST("/api/v1/loans", h.BorrowBook, withIdentity(tt.username, auth.RoleUser))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusCreated {
				var loan model.Loan
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loan))
				require.Equal(t, okLoan, loan)
			}
		})
	}

	t.Run("no identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.New(handler.Services{Lending: mock_handler.NewMockLendingService(ctrl)}, zap.NewNop())
		e := newEcho()
		e.POST("/api/v1/loans", h.BorrowBook)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans",
			strings.NewReader(`{"bookUid":"`+testBookUid+`"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_ReturnBook(t *testing.T) {
	type mockBehavior func(m *mock_handler.MockLendingService)

	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	closed := model.Loan{
		LoanUid:      testLoanUid,
		Username:     "alice",
		BookUid:      testBookUid,
		ReturnedDate: &now,
		Status:       model.LoanStatusReturned,
	}

	tests := []struct {
		name         string
		username     string
		mockBehavior mockBehavior
		wantCode     int
	}{
		{
			name:     "ok",
			username: "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Return(gomock.Any(), "alice", testLoanUid).Return(closed, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "loan not found",
			username: "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Return(gomock.Any(), "alice", testLoanUid).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "someone else's loan",
			username: "mallory",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Return(gomock.Any(), "mallory", testLoanUid).
					Return(model.Loan{}, errs.ErrForbidden)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "already returned",
			username: "alice",
			mockBehavior: func(m *mock_handler.MockLendingService) {
				m.EXPECT().Return(gomock.Any(), "alice", testLoanUid).
					Return(model.Loan{}, errs.ErrAlreadyReturned)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lending := mock_handler.NewMockLendingService(ctrl)
			tt.mockBehavior(lending)

			h := handler.New(handler.Services{Lending: lending}, zap.NewNop())
			e := newEcho()
			e.POST("/api/v1/loans/:loanUid/return", h.ReturnBook, withIdentity(tt.username, auth.RoleUser))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/"+testLoanUid+"/return", http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				var loan model.Loan
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loan))
				require.Equal(t, model.LoanStatusReturned, loan.Status)
				require.NotNil(t, loan.ReturnedDate)
			}
		})
	}
}

func TestHandler_GetLoans(t *testing.T) {
	loans := []model.LoanWithBook{
		{
			Loan: model.Loan{LoanUid: testLoanUid, Username: "alice", BookUid: testBookUid, Status: model.LoanStatusActive},
			Book: &model.BookSummary{BookUid: testBookUid, Title: "The Go Programming Language"},
		},
	}

	tests := []struct {
		name       string
		query      string
		activeOnly bool
		wantCode   int
	}{
		{name: "all", query: "", activeOnly: false, wantCode: http.StatusOK},
		{name: "active only", query: "?active=true", activeOnly: true, wantCode: http.StatusOK},
		{name: "bad active param", query: "?active=nope", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lending := mock_handler.NewMockLendingService(ctrl)
			if tt.wantCode == http.StatusOK {
				lending.EXPECT().ListLoans(gomock.Any(), "alice", tt.activeOnly).Return(loans, nil)
			}

			h := handler.New(handler.Services{Lending: lending}, zap.NewNop())
			e := newEcho()
			e.GET("/api/v1/loans", h.GetLoans, withIdentity("alice", auth.RoleUser))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/loans"+tt.query, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				var got []model.LoanWithBook
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				require.Equal(t, loans, got)
			}
		})
	}
}
