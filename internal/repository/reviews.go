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

type Reviews interface {
	UpsertReview(ctx context.Context, username, bookUid string, rating int, comment string) (model.Review, error)
	GetReview(ctx context.Context, reviewUid string) (model.Review, error)
	UpdateReview(ctx context.Context, reviewUid string, req model.ReviewUpdateRequest) (model.Review, error)
	DeleteReview(ctx context.Context, reviewUid string) error
	GetBookReviews(ctx context.Context, bookUid string) ([]model.Review, error)
	GetBookRating(ctx context.Context, bookUid string) (model.BookRating, error)
}

var _ Reviews = (*repository)(nil)

var reviewColumns = []string{
	"id", "review_uid", "username", "book_uid", "rating", "comment", "created_at", "updated_at",
}

// UpsertReview keeps one review per reader per book: a second submission
// replaces the first.
func (r *repository) UpsertReview(ctx context.Context, username, bookUid string, rating int, comment string) (model.Review, error) {
	q := `
insert into reviews (username, book_uid, rating, comment)
values ($1, $2, $3, $4)
on conflict (username, book_uid)
	do update set rating = excluded.rating, comment = excluded.comment, updated_at = now()
returning *`

	var review model.Review
	if err := r.db.GetContext(ctx, &review, q, username, bookUid, rating, comment); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) GetReview(ctx context.Context, reviewUid string) (model.Review, error) {
	query, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"review_uid": reviewUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) UpdateReview(ctx context.Context, reviewUid string, req model.ReviewUpdateRequest) (model.Review, error) {
	q := qb.Update(reviewsTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"review_uid": reviewUid}).
		Suffix("returning *")

	if req.Rating != nil {
		q = q.Set("rating", *req.Rating)
	}
	if req.Comment != nil {
		q = q.Set("comment", *req.Comment)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) DeleteReview(ctx context.Context, reviewUid string) error {
	query, args, err := qb.Delete(reviewsTableName).
		Where(sq.Eq{"review_uid": reviewUid}).
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

func (r *repository) GetBookReviews(ctx context.Context, bookUid string) ([]model.Review, error) {
	query, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *repository) GetBookRating(ctx context.Context, bookUid string) (model.BookRating, error) {
	q := `
select coalesce(avg(rating), 0) as average, count(*) as count
from reviews
where book_uid = $1`

	rating := model.BookRating{BookUid: bookUid}
	if err := r.db.QueryRowContext(ctx, q, bookUid).Scan(&rating.Average, &rating.Count); err != nil {
		return model.BookRating{}, err
	}
	return rating, nil
}
