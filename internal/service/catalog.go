package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/repository"
)

// Catalog covers book management plus the publisher and genre
// directories. Availability writes stay with Lending; catalog edits
// never touch the available flag.
type Catalog struct {
	log        *zap.Logger
	books      repository.Books
	stats      repository.Stats
	publishers repository.Publishers
	genres     repository.Genres
}

func NewCatalog(books repository.Books, stats repository.Stats, publishers repository.Publishers, genres repository.Genres, log *zap.Logger) *Catalog {
	return &Catalog{
		log:        log,
		books:      books,
		stats:      stats,
		publishers: publishers,
		genres:     genres,
	}
}

func (s *Catalog) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.books.GetBook(ctx, bookUid)
}

func (s *Catalog) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.books.ListBooks(ctx, filter)
}

func (s *Catalog) CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error) {
	return s.books.CreateBook(ctx, req)
}

func (s *Catalog) UpdateBook(ctx context.Context, bookUid string, req model.BookUpdateRequest) (model.Book, error) {
	return s.books.UpdateBook(ctx, bookUid, req)
}

func (s *Catalog) DeleteBook(ctx context.Context, bookUid string) error {
	return s.books.DeleteBook(ctx, bookUid)
}

func (s *Catalog) GetBookStats(ctx context.Context, bookUid string) (model.BookStats, error) {
	return s.stats.GetBookStats(ctx, bookUid)
}

func (s *Catalog) ApplyLoanEvent(ctx context.Context, ev model.LoanEvent) error {
	return s.stats.ApplyLoanEvent(ctx, ev)
}

func (s *Catalog) CreatePublisher(ctx context.Context, req model.PublisherRequest) (model.Publisher, error) {
	return s.publishers.CreatePublisher(ctx, req)
}

func (s *Catalog) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	return s.publishers.ListPublishers(ctx)
}

func (s *Catalog) UpdatePublisher(ctx context.Context, id int, req model.PublisherRequest) (model.Publisher, error) {
	return s.publishers.UpdatePublisher(ctx, id, req)
}

func (s *Catalog) DeletePublisher(ctx context.Context, id int) error {
	return s.publishers.DeletePublisher(ctx, id)
}

func (s *Catalog) CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error) {
	return s.genres.CreateGenre(ctx, req)
}

func (s *Catalog) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.genres.ListGenres(ctx)
}
