package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

// Loans is the ledger of borrowing episodes.
type Loans interface {
	CreateActive(ctx context.Context, username, bookUid string, borrowed, due time.Time) (model.Loan, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)
	MarkReturned(ctx context.Context, loanUid string) (model.Loan, error)
	ListLoans(ctx context.Context, username string, activeOnly bool) ([]model.LoanWithBook, error)
}

var _ Loans = (*repository)(nil)

var loanColumns = []string{
	"id", "loan_uid", "username", "book_uid",
	"borrowed_date", "due_date", "returned_date", "status",
}

func (r *repository) CreateActive(ctx context.Context, username, bookUid string, borrowed, due time.Time) (model.Loan, error) {
	query, args, err := qb.Insert(loansTableName).
		Columns("username", "book_uid", "borrowed_date", "due_date", "status").
		Values(username, bookUid, borrowed, due, model.LoanStatusActive).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		var pgErr *pgconn.PgError
		// the partial unique index on active loans is the backstop for
		// the one-active-loan-per-book invariant
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Loan{}, errs.ErrBookUnavailable
		}
		r.log.Error("CreateActive", zap.String("q", query), zap.Any("args", args))
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"loan_uid": loanUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

// MarkReturned closes an active loan, stamping status and returned_date
// in one conditional update. Zero rows means the loan was already closed.
func (r *repository) MarkReturned(ctx context.Context, loanUid string) (model.Loan, error) {
	q := `
update loans
	set status = 'RETURNED', returned_date = now()
where loan_uid = $1 and status = 'ACTIVE'
returning *`

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, q, loanUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrAlreadyReturned
		}
		return model.Loan{}, err
	}
	return loan, nil
}

type loanBookRow struct {
	model.Loan
	BookTitle  sql.NullString `db:"book_title"`
	BookAuthor sql.NullString `db:"book_author"`
	BookGenre  sql.NullString `db:"book_genre"`
	JoinedUid  sql.NullString `db:"joined_book_uid"`
}

func (r *repository) ListLoans(ctx context.Context, username string, activeOnly bool) ([]model.LoanWithBook, error) {
	q := qb.Select(
		"l.id", "l.loan_uid", "l.username", "l.book_uid",
		"l.borrowed_date", "l.due_date", "l.returned_date", "l.status",
		"b.book_uid as joined_book_uid", "b.title as book_title",
		"b.author as book_author", "b.genre as book_genre").
		From(loansTableName + " l").
		LeftJoin(booksTableName + " b on b.book_uid = l.book_uid").
		Where(sq.Eq{"l.username": username}).
		OrderBy("l.id")

	if activeOnly {
		q = q.Where(sq.Eq{"l.status": model.LoanStatusActive})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []loanBookRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]model.LoanWithBook, 0, len(rows))
	for _, row := range rows {
		item := model.LoanWithBook{Loan: row.Loan}
		// a deleted book leaves the loan with no summary, not an error
		if row.JoinedUid.Valid {
			item.Book = &model.BookSummary{
				BookUid: row.JoinedUid.String,
				Title:   row.BookTitle.String,
				Author:  row.BookAuthor.String,
				Genre:   row.BookGenre.String,
			}
		}
		items = append(items, item)
	}
	return items, nil
}
