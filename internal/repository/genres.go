package repository

import (
	"context"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

type Genres interface {
	CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
}

var _ Genres = (*repository)(nil)

func (r *repository) CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error) {
	query, args, err := qb.Insert(genresTableName).
		Columns("name", "description").
		Values(req.Name, req.Description).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Genre{}, errs.ErrAlreadyExists
		}
		return model.Genre{}, err
	}
	return genre, nil
}

func (r *repository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	query, args, err := qb.Select("id", "name", "description").
		From(genresTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	genres := make([]model.Genre, 0)
	if err := r.db.SelectContext(ctx, &genres, query, args...); err != nil {
		return nil, err
	}
	return genres, nil
}
