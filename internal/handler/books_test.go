package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/handler"
	mock_handler "github.com/readwell/library-service/internal/handler/mocks"
	"github.com/readwell/library-service/internal/model"
)

func TestHandler_GetBook(t *testing.T) {
	type mockBehavior func(m *mock_handler.MockCatalogService)

	book := model.Book{
		BookUid:   testBookUid,
		Title:     "The Go Programming Language",
		Author:    "Donovan, Kernighan",
		Available: true,
	}

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		wantCode     int
	}{
		{
			name: "ok",
			mockBehavior: func(m *mock_handler.MockCatalogService) {
				m.EXPECT().GetBook(gomock.Any(), testBookUid).Return(book, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			mockBehavior: func(m *mock_handler.MockCatalogService) {
				m.EXPECT().GetBook(gomock.Any(), testBookUid).
					Return(model.Book{}, errs.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "internal error",
			mockBehavior: func(m *mock_handler.MockCatalogService) {
				m.EXPECT().GetBook(gomock.Any(), testBookUid).
					Return(model.Book{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := mock_handler.NewMockCatalogService(ctrl)
			tt.mockBehavior(catalog)

			h := handler.New(handler.Services{Catalog: catalog}, zap.NewNop())
			e := newEcho()
			e.GET("/api/v1/books/:bookUid", h.GetBook)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+testBookUid, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				var got model.Book
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				require.Equal(t, book, got)
			}
		})
	}
}

func TestHandler_GetBooks(t *testing.T) {
	books := []model.Book{
		{BookUid: testBookUid, Title: "The Go Programming Language", Available: true},
	}

	tests := []struct {
		name       string
		query      string
		wantFilter model.BookFilter
		wantCode   int
	}{
		{
			name:     "no filter",
			query:    "",
			wantCode: http.StatusOK,
		},
		{
			name:       "available with search",
			query:      "?available=true&search=go",
			wantFilter: model.BookFilter{AvailableOnly: true, Search: "go"},
			wantCode:   http.StatusOK,
		},
		{
			name:       "genre and language",
			query:      "?genre=programming&language=English",
			wantFilter: model.BookFilter{Genre: "programming", Language: "English"},
			wantCode:   http.StatusOK,
		},
		{
			name:     "bad available param",
			query:    "?available=maybe",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := mock_handler.NewMockCatalogService(ctrl)
			if tt.wantCode == http.StatusOK {
				catalog.EXPECT().ListBooks(gomock.Any(), tt.wantFilter).Return(books, nil)
			}

			h := handler.New(handler.Services{Catalog: catalog}, zap.NewNop())
			e := newEcho()
			e.GET("/api/v1/books", h.GetBooks)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/books"+tt.query, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	type mockBehavior func(m *mock_handler.MockCatalogService)

	req := model.BookCreateRequest{
		Title:  "The Go Programming Language",
		Author: "Donovan, Kernighan",
		Year:   2015,
	}

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		wantCode     int
	}{
		{
			name: "ok",
			body: `{"title":"The Go Programming Language","author":"Donovan, Kernighan","year":2015}`,
			mockBehavior: func(m *mock_handler.MockCatalogService) {
				m.EXPECT().CreateBook(gomock.Any(), req).
					Return(model.Book{BookUid: testBookUid, Title: req.Title, Author: req.Author, Year: req.Year, Available: true}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:         "missing author",
			body:         `{"title":"No Author"}`,
			mockBehavior: func(m *mock_handler.MockCatalogService) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:         "malformed json",
			body:         `{"title":`,
			mockBehavior: func(m *mock_handler.MockCatalogService) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := mock_handler.NewMockCatalogService(ctrl)
			tt.mockBehavior(catalog)

			h := handler.New(handler.Services{Catalog: catalog}, zap.NewNop())
			e := newEcho()
			e.POST("/api/v1/books", h.CreateBook)

			httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(tt.body))
			httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httpReq)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusCreated {
				var got model.Book
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				require.Equal(t, testBookUid, got.BookUid)
				require.True(t, got.Available)
			}
		})
	}
}
