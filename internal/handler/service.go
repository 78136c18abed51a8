package handler

import (
	"context"

	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/service"
	"github.com/readwell/library-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type CatalogService interface {
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.BookUpdateRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error
	GetBookStats(ctx context.Context, bookUid string) (model.BookStats, error)
	CreatePublisher(ctx context.Context, req model.PublisherRequest) (model.Publisher, error)
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int, req model.PublisherRequest) (model.Publisher, error)
	DeletePublisher(ctx context.Context, id int) error
	CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
}

type LendingService interface {
	Borrow(ctx context.Context, username, bookUid string) (model.Loan, error)
	Return(ctx context.Context, username, loanUid string) (model.Loan, error)
	ListLoans(ctx context.Context, username string, activeOnly bool) ([]model.LoanWithBook, error)
}

type WishlistService interface {
	AddToWishlist(ctx context.Context, username, bookUid string) (model.WishlistItem, error)
	GetWishlist(ctx context.Context, username string) ([]model.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, username, bookUid string) error
	InWishlist(ctx context.Context, username, bookUid string) (bool, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, username, bookUid string, req model.ReviewCreateRequest) (model.Review, error)
	UpdateReview(ctx context.Context, caller auth.Identity, reviewUid string, req model.ReviewUpdateRequest) (model.Review, error)
	DeleteReview(ctx context.Context, caller auth.Identity, reviewUid string) error
	GetBookReviews(ctx context.Context, bookUid string) ([]model.Review, error)
	GetBookRating(ctx context.Context, bookUid string) (model.BookRating, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, username string, req model.BookRequestCreate) (model.BookRequest, error)
	ListRequests(ctx context.Context, caller auth.Identity) ([]model.BookRequest, error)
	UpdateRequestStatus(ctx context.Context, requestUid string, status model.RequestStatus) (model.BookRequest, error)
	DeleteRequest(ctx context.Context, caller auth.Identity, requestUid string) error
}

var (
	_ AuthService     = (*service.Auth)(nil)
	_ CatalogService  = (*service.Catalog)(nil)
	_ LendingService  = (*service.Lending)(nil)
	_ WishlistService = (*service.Wishlist)(nil)
	_ ReviewService   = (*service.Reviews)(nil)
	_ RequestService  = (*service.Requests)(nil)
)
