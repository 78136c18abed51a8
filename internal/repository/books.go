package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

// Books is the availability store: catalog reads plus the two atomic
// single-row availability primitives the lending workflow composes.
type Books interface {
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid string, req model.BookUpdateRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid string) error
	ClaimAvailable(ctx context.Context, bookUid string) error
	SetAvailable(ctx context.Context, bookUid string, available bool) error
}

var _ Books = (*repository)(nil)

var bookColumns = []string{
	"id", "book_uid", "title", "author", "year", "isbn",
	"description", "genre", "language", "available", "created_at", "updated_at",
}

func (r *repository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}

	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName)

	if filter.AvailableOnly {
		q = q.Where(sq.Eq{"available": true})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		})
	}
	if filter.Genre != "" {
		q = q.Where(sq.Eq{"genre": filter.Genre})
	}
	if filter.Language != "" {
		q = q.Where(sq.Eq{"language": filter.Language})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error) {
	language := req.Language
	if language == "" {
		language = "English"
	}
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "year", "isbn", "description", "genre", "language").
		Values(req.Title, req.Author, req.Year, req.ISBN, req.Description, req.Genre, language).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, bookUid string, req model.BookUpdateRequest) (model.Book, error) {
	q := qb.Update(booksTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"book_uid": bookUid}).
		Suffix("returning *")

	if req.Title != nil {
		q = q.Set("title", *req.Title)
	}
	if req.Author != nil {
		q = q.Set("author", *req.Author)
	}
	if req.Year != nil {
		q = q.Set("year", *req.Year)
	}
	if req.ISBN != nil {
		q = q.Set("isbn", *req.ISBN)
	}
	if req.Description != nil {
		q = q.Set("description", *req.Description)
	}
	if req.Genre != nil {
		q = q.Set("genre", *req.Genre)
	}
	if req.Language != nil {
		q = q.Set("language", *req.Language)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, bookUid string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ClaimAvailable flips available to false only if it is currently true.
// Zero rows means somebody else holds the book; the caller treats that
// as a conflict, which closes the double-borrow race.
func (r *repository) ClaimAvailable(ctx context.Context, bookUid string) error {
	q := `
update books
	set available = false, updated_at = now()
where book_uid = $1 and available`
	res, err := r.db.ExecContext(ctx, q, bookUid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrBookUnavailable
	}
	return nil
}

func (r *repository) SetAvailable(ctx context.Context, bookUid string, available bool) error {
	q := `
update books
	set available = $2, updated_at = now()
where book_uid = $1`
	res, err := r.db.ExecContext(ctx, q, bookUid, available)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
