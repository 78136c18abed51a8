package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=lending.go -destination=mocks/mock.go

// BookStore is the slice of the availability store the lending workflow
// needs: one read and the two atomic single-row availability writes.
type BookStore interface {
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ClaimAvailable(ctx context.Context, bookUid string) error
	SetAvailable(ctx context.Context, bookUid string, available bool) error
}

// LoanLedger records borrowing episodes.
type LoanLedger interface {
	CreateActive(ctx context.Context, username, bookUid string, borrowed, due time.Time) (model.Loan, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)
	MarkReturned(ctx context.Context, loanUid string) (model.Loan, error)
	ListLoans(ctx context.Context, username string, activeOnly bool) ([]model.LoanWithBook, error)
}

type EventPublisher interface {
	PublishLoanEvent(ctx context.Context, ev model.LoanEvent) error
}

// Lending is the only writer of book availability and the only closer of
// loans. It keeps the cross-entity invariant: a book is unavailable iff
// it has exactly one active loan.
type Lending struct {
	log    *zap.Logger
	books  BookStore
	loans  LoanLedger
	events EventPublisher
	period time.Duration
}

func NewLending(books BookStore, loans LoanLedger, events EventPublisher, period time.Duration, log *zap.Logger) *Lending {
	return &Lending{
		log:    log,
		books:  books,
		loans:  loans,
		events: events,
		period: period,
	}
}

// Borrow claims the book's availability first, then writes the loan.
// The conditional claim arbitrates concurrent borrows of the same book:
// the loser gets a clean conflict instead of a second active loan.
func (s *Lending) Borrow(ctx context.Context, username, bookUid string) (model.Loan, error) {
	book, err := s.books.GetBook(ctx, bookUid)
	if err != nil {
		return model.Loan{}, err
	}
	if !book.Available {
		return model.Loan{}, errs.ErrBookUnavailable
	}

	if err := s.books.ClaimAvailable(ctx, bookUid); err != nil {
		return model.Loan{}, err
	}

	borrowed := time.Now().UTC()
	loan, err := s.loans.CreateActive(ctx, username, bookUid, borrowed, borrowed.Add(s.period))
	if err != nil {
		// release the claim, otherwise the book stays stuck unavailable
		// with no loan against it
		if relErr := s.books.SetAvailable(ctx, bookUid, true); relErr != nil {
			s.log.Error("borrow: book left unavailable without a loan",
				zap.String("bookUid", bookUid), zap.Error(relErr))
		}
		return model.Loan{}, err
	}

	s.publish(ctx, model.LoanEvent{
		LoanUid:  loan.LoanUid,
		BookUid:  loan.BookUid,
		Username: loan.Username,
		Event:    model.LoanEventBorrowed,
		At:       borrowed,
	})

	return loan, nil
}

// Return closes the caller's active loan and releases the book.
func (s *Lending) Return(ctx context.Context, username, loanUid string) (model.Loan, error) {
	loan, err := s.loans.GetLoan(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Username != username {
		return model.Loan{}, errs.ErrForbidden
	}
	if loan.Status != model.LoanStatusActive {
		return model.Loan{}, errs.ErrAlreadyReturned
	}

	closed, err := s.loans.MarkReturned(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}

	if err := s.books.SetAvailable(ctx, loan.BookUid, true); err != nil {
		// a book deleted while on loan has nothing left to release
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Error("return: loan closed but book stuck unavailable",
				zap.String("loanUid", loanUid), zap.String("bookUid", loan.BookUid), zap.Error(err))
			return model.Loan{}, err
		}
	}

	s.publish(ctx, model.LoanEvent{
		LoanUid:  closed.LoanUid,
		BookUid:  closed.BookUid,
		Username: closed.Username,
		Event:    model.LoanEventReturned,
		At:       time.Now().UTC(),
	})

	return closed, nil
}

func (s *Lending) ListLoans(ctx context.Context, username string, activeOnly bool) ([]model.LoanWithBook, error) {
	return s.loans.ListLoans(ctx, username, activeOnly)
}

// publish is best effort: a broker outage must never fail a borrow or
// return that already committed.
func (s *Lending) publish(ctx context.Context, ev model.LoanEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLoanEvent(ctx, ev); err != nil {
		s.log.Warn("publish loan event",
			zap.String("loanUid", ev.LoanUid), zap.String("event", string(ev.Event)), zap.Error(err))
	}
}
