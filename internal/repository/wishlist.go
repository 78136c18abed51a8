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

type Wishlist interface {
	AddToWishlist(ctx context.Context, username, bookUid string) (model.WishlistItem, error)
	GetWishlist(ctx context.Context, username string) ([]model.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, username, bookUid string) error
	InWishlist(ctx context.Context, username, bookUid string) (bool, error)
}

var _ Wishlist = (*repository)(nil)

func (r *repository) AddToWishlist(ctx context.Context, username, bookUid string) (model.WishlistItem, error) {
	query, args, err := qb.Insert(wishlistTableName).
		Columns("username", "book_uid").
		Values(username, bookUid).
		Suffix("returning id, username, book_uid, added_at").
		ToSql()
	if err != nil {
		return model.WishlistItem{}, err
	}

	var item model.WishlistItem
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return model.WishlistItem{}, errs.ErrAlreadyExists
			case pgerrcode.ForeignKeyViolation:
				return model.WishlistItem{}, errs.ErrNotFound
			}
		}
		return model.WishlistItem{}, err
	}
	return item, nil
}

type wishlistRow struct {
	ID       int            `db:"id"`
	Username string         `db:"username"`
	BookUid  string         `db:"book_uid"`
	AddedAt  sql.NullTime   `db:"added_at"`
	Title    sql.NullString `db:"book_title"`
	Author   sql.NullString `db:"book_author"`
	Genre    sql.NullString `db:"book_genre"`
}

func (r *repository) GetWishlist(ctx context.Context, username string) ([]model.WishlistItem, error) {
	query, args, err := qb.Select(
		"w.id", "w.username", "w.book_uid", "w.added_at",
		"b.title as book_title", "b.author as book_author", "b.genre as book_genre").
		From(wishlistTableName + " w").
		LeftJoin(booksTableName + " b on b.book_uid = w.book_uid").
		Where(sq.Eq{"w.username": username}).
		OrderBy("w.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []wishlistRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]model.WishlistItem, 0, len(rows))
	for _, row := range rows {
		item := model.WishlistItem{
			ID:       row.ID,
			Username: row.Username,
			BookUid:  row.BookUid,
			AddedAt:  row.AddedAt.Time,
		}
		if row.Title.Valid {
			item.Book = &model.BookSummary{
				BookUid: row.BookUid,
				Title:   row.Title.String,
				Author:  row.Author.String,
				Genre:   row.Genre.String,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *repository) RemoveFromWishlist(ctx context.Context, username, bookUid string) error {
	query, args, err := qb.Delete(wishlistTableName).
		Where(sq.Eq{"username": username}).
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

func (r *repository) InWishlist(ctx context.Context, username, bookUid string) (bool, error) {
	q := `
select exists (
	select 1 from wishlist where username = $1 and book_uid = $2
)`
	var in bool
	if err := r.db.QueryRowContext(ctx, q, username, bookUid).Scan(&in); err != nil {
		return false, err
	}
	return in, nil
}
