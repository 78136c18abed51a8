package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

type Publishers interface {
	CreatePublisher(ctx context.Context, req model.PublisherRequest) (model.Publisher, error)
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int, req model.PublisherRequest) (model.Publisher, error)
	DeletePublisher(ctx context.Context, id int) error
}

var _ Publishers = (*repository)(nil)

func (r *repository) CreatePublisher(ctx context.Context, req model.PublisherRequest) (model.Publisher, error) {
	query, args, err := qb.Insert(publishersTableName).
		Columns("name", "country", "website").
		Values(req.Name, req.Country, req.Website).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Publisher{}, err
	}

	var publisher model.Publisher
	if err := r.db.GetContext(ctx, &publisher, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Publisher{}, errs.ErrAlreadyExists
		}
		return model.Publisher{}, err
	}
	return publisher, nil
}

func (r *repository) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	query, args, err := qb.Select("id", "name", "country", "website").
		From(publishersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	publishers := make([]model.Publisher, 0)
	if err := r.db.SelectContext(ctx, &publishers, query, args...); err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *repository) UpdatePublisher(ctx context.Context, id int, req model.PublisherRequest) (model.Publisher, error) {
	query, args, err := qb.Update(publishersTableName).
		Set("name", req.Name).
		Set("country", req.Country).
		Set("website", req.Website).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Publisher{}, err
	}

	var publisher model.Publisher
	if err := r.db.GetContext(ctx, &publisher, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Publisher{}, errs.ErrNotFound
		}
		return model.Publisher{}, err
	}
	return publisher, nil
}

func (r *repository) DeletePublisher(ctx context.Context, id int) error {
	query, args, err := qb.Delete(publishersTableName).
		Where(sq.Eq{"id": id}).
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
