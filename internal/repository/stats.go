package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

type Stats interface {
	ApplyLoanEvent(ctx context.Context, ev model.LoanEvent) error
	GetBookStats(ctx context.Context, bookUid string) (model.BookStats, error)
}

var _ Stats = (*repository)(nil)

// ApplyLoanEvent bumps the per-book counters fed by the loan-events
// topic. Delivery is at least once, so a redelivered event counts twice;
// acceptable for popularity counters.
func (r *repository) ApplyLoanEvent(ctx context.Context, ev model.LoanEvent) error {
	borrowInc, returnInc := 0, 0
	switch ev.Event {
	case model.LoanEventBorrowed:
		borrowInc = 1
	case model.LoanEventReturned:
		returnInc = 1
	default:
		return errors.Errorf("unknown loan event %q", ev.Event)
	}

	q := `
insert into book_stats (book_uid, borrow_count, return_count)
values ($1, $2, $3)
on conflict (book_uid) do update
	set borrow_count = book_stats.borrow_count + excluded.borrow_count,
	    return_count = book_stats.return_count + excluded.return_count,
	    updated_at = now()`
	_, err := r.db.ExecContext(ctx, q, ev.BookUid, borrowInc, returnInc)
	return err
}

func (r *repository) GetBookStats(ctx context.Context, bookUid string) (model.BookStats, error) {
	q := `
select book_uid, borrow_count, return_count, updated_at
from book_stats
where book_uid = $1`

	var stats model.BookStats
	if err := r.db.GetContext(ctx, &stats, q, bookUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookStats{}, errs.ErrNotFound
		}
		return model.BookStats{}, err
	}
	return stats, nil
}
