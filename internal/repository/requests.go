package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

type Requests interface {
	CreateRequest(ctx context.Context, username string, req model.BookRequestCreate) (model.BookRequest, error)
	GetRequest(ctx context.Context, requestUid string) (model.BookRequest, error)
	ListRequests(ctx context.Context, username string) ([]model.BookRequest, error)
	UpdateRequestStatus(ctx context.Context, requestUid string, status model.RequestStatus) (model.BookRequest, error)
	DeleteRequest(ctx context.Context, requestUid string) error
}

var _ Requests = (*repository)(nil)

var requestColumns = []string{
	"id", "request_uid", "username", "title", "author", "reason", "status", "created_at",
}

func (r *repository) CreateRequest(ctx context.Context, username string, req model.BookRequestCreate) (model.BookRequest, error) {
	query, args, err := qb.Insert(requestsTableName).
		Columns("username", "title", "author", "reason").
		Values(username, req.Title, req.Author, req.Reason).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BookRequest{}, err
	}

	var request model.BookRequest
	if err := r.db.GetContext(ctx, &request, query, args...); err != nil {
		return model.BookRequest{}, err
	}
	return request, nil
}

func (r *repository) GetRequest(ctx context.Context, requestUid string) (model.BookRequest, error) {
	query, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"request_uid": requestUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookRequest{}, err
	}

	var request model.BookRequest
	if err := r.db.GetContext(ctx, &request, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookRequest{}, errs.ErrNotFound
		}
		return model.BookRequest{}, err
	}
	return request, nil
}

// ListRequests returns one user's requests, or every request when
// username is empty (the admin view).
func (r *repository) ListRequests(ctx context.Context, username string) ([]model.BookRequest, error) {
	q := qb.Select(requestColumns...).
		From(requestsTableName).
		OrderBy("id")
	if username != "" {
		q = q.Where(sq.Eq{"username": username})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	requests := make([]model.BookRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) UpdateRequestStatus(ctx context.Context, requestUid string, status model.RequestStatus) (model.BookRequest, error) {
	q := `
update book_requests
	set status = $2
where request_uid = $1
returning *`

	var request model.BookRequest
	if err := r.db.GetContext(ctx, &request, q, requestUid, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookRequest{}, errs.ErrNotFound
		}
		return model.BookRequest{}, err
	}
	return request, nil
}

func (r *repository) DeleteRequest(ctx context.Context, requestUid string) error {
	query, args, err := qb.Delete(requestsTableName).
		Where(sq.Eq{"request_uid": requestUid}).
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
