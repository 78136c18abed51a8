package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/service"
	mock_service "github.com/readwell/library-service/internal/service/mocks"
)

const loanPeriod = 14 * 24 * time.Hour

func newLending(t *testing.T) (*service.Lending, *mock_service.MockBookStore, *mock_service.MockLoanLedger, *mock_service.MockEventPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	books := mock_service.NewMockBookStore(ctrl)
	loans := mock_service.NewMockLoanLedger(ctrl)
	events := mock_service.NewMockEventPublisher(ctrl)
	svc := service.NewLending(books, loans, events, loanPeriod, zap.NewNop())
	return svc, books, loans, events
}

func TestLending_Borrow(t *testing.T) {
	const (
		username = "alice"
		bookUid  = "9a2b63df-b14e-4f0a-9d3f-6f1e9c2a7b51"
		loanUid  = "4f5f2b1e-0c77-4a3a-8f52-1d2f9ab0c311"
	)

	t.Run("ok", func(t *testing.T) {
		svc, books, loans, events := newLending(t)
		ctx := context.Background()

		books.EXPECT().GetBook(ctx, bookUid).
			Return(model.Book{BookUid: bookUid, Available: true}, nil)
		books.EXPECT().ClaimAvailable(ctx, bookUid).Return(nil)

		var gotBorrowed, gotDue time.Time
		loans.EXPECT().CreateActive(ctx, username, bookUid, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, username, bookUid string, borrowed, due time.Time) (model.Loan, error) {
				gotBorrowed, gotDue = borrowed, due
				return model.Loan{
					LoanUid:      loanUid,
					Username:     username,
					BookUid:      bookUid,
					BorrowedDate: borrowed,
					DueDate:      due,
					Status:       model.LoanStatusActive,
				}, nil
			})
		events.EXPECT().PublishLoanEvent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev model.LoanEvent) error {
				require.Equal(t, model.LoanEventBorrowed, ev.Event)
				require.Equal(t, loanUid, ev.LoanUid)
				require.Equal(t, bookUid, ev.BookUid)
				return nil
			})

		loan, err := svc.Borrow(ctx, username, bookUid)
		require.NoError(t, err)
		require.Equal(t, loanUid, loan.LoanUid)
		require.Equal(t, model.LoanStatusActive, loan.Status)
		require.Equal(t, gotBorrowed.Add(loanPeriod), gotDue)
		require.WithinDuration(t, time.Now().UTC(), gotBorrowed, time.Minute)
	})

	t.Run("book not found", func(t *testing.T) {
		svc, books, _, _ := newLending(t)
		ctx := context.Background()

		books.EXPECT().GetBook(ctx, bookUid).Return(model.Book{}, errs.ErrNotFound)

		_, err := svc.Borrow(ctx, username, bookUid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("book unavailable", func(t *testing.T) {
		svc, books, _, _ := newLending(t)
		ctx := context.Background()

		books.EXPECT().GetBook(ctx, bookUid).
			Return(model.Book{BookUid: bookUid, Available: false}, nil)

		_, err := svc.Borrow(ctx, username, bookUid)
		require.ErrorIs(t, err, errs.ErrBookUnavailable)
	})

	t.Run("claim lost to concurrent borrow", func(t *testing.T) {
		svc, books, _, _ := newLending(t)
		ctx := context.Background()

		books.EXPECT().GetBook(ctx, bookUid).
			Return(model.Book{BookUid: bookUid, Available: true}, nil)
		books.EXPECT().ClaimAvailable(ctx, bookUid).Return(errs.ErrBookUnavailable)

		_, err := svc.Borrow(ctx, username, bookUid)
		require.ErrorIs(t, err, errs.ErrBookUnavailable)
	})

	t.Run("loan write fails, claim released", func(t *testing.T) {
		svc, books, loans, _ := newLending(t)
		ctx := context.Background()
		boom := errors.New("insert loan")

		books.EXPECT().GetBook(ctx, bookUid).
			Return(model.Book{BookUid: bookUid, Available: true}, nil)
		books.EXPECT().ClaimAvailable(ctx, bookUid).Return(nil)
		loans.EXPECT().CreateActive(ctx, username, bookUid, gomock.Any(), gomock.Any()).
			Return(model.Loan{}, boom)
		books.EXPECT().SetAvailable(ctx, bookUid, true).Return(nil)

		_, err := svc.Borrow(ctx, username, bookUid)
		require.ErrorIs(t, err, boom)
	})

	t.Run("publish failure does not fail borrow", func(t *testing.T) {
		svc, books, loans, events := newLending(t)
		ctx := context.Background()

		books.EXPECT().GetBook(ctx, bookUid).
			Return(model.Book{BookUid: bookUid, Available: true}, nil)
		books.EXPECT().ClaimAvailable(ctx, bookUid).Return(nil)
		loans.EXPECT().CreateActive(ctx, username, bookUid, gomock.Any(), gomock.Any()).
			Return(model.Loan{LoanUid: loanUid, Username: username, BookUid: bookUid, Status: model.LoanStatusActive}, nil)
		events.EXPECT().PublishLoanEvent(ctx, gomock.Any()).Return(errors.New("broker down"))

		loan, err := svc.Borrow(ctx, username, bookUid)
		require.NoError(t, err)
		require.Equal(t, loanUid, loan.LoanUid)
	})
}

func TestLending_Return(t *testing.T) {
	const (
		username = "alice"
		bookUid  = "9a2b63df-b14e-4f0a-9d3f-6f1e9c2a7b51"
		loanUid  = "4f5f2b1e-0c77-4a3a-8f52-1d2f9ab0c311"
	)
	active := model.Loan{
		LoanUid:  loanUid,
		Username: username,
		BookUid:  bookUid,
		Status:   model.LoanStatusActive,
	}

	t.Run("ok", func(t *testing.T) {
		svc, books, loans, events := newLending(t)
		ctx := context.Background()

		now := time.Now().UTC()
		closed := active
		closed.Status = model.LoanStatusReturned
		closed.ReturnedDate = &now

		loans.EXPECT().GetLoan(ctx, loanUid).Return(active, nil)
		loans.EXPECT().MarkReturned(ctx, loanUid).Return(closed, nil)
		books.EXPECT().SetAvailable(ctx, bookUid, true).Return(nil)
		events.EXPECT().PublishLoanEvent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev model.LoanEvent) error {
				require.Equal(t, model.LoanEventReturned, ev.Event)
				require.Equal(t, loanUid, ev.LoanUid)
				return nil
			})

		loan, err := svc.Return(ctx, username, loanUid)
		require.NoError(t, err)
		require.Equal(t, model.LoanStatusReturned, loan.Status)
		require.NotNil(t, loan.ReturnedDate)
	})

	t.Run("loan not found", func(t *testing.T) {
		svc, _, loans, _ := newLending(t)
		ctx := context.Background()

		loans.EXPECT().GetLoan(ctx, loanUid).Return(model.Loan{}, errs.ErrNotFound)

		_, err := svc.Return(ctx, username, loanUid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("someone else's loan", func(t *testing.T) {
		svc, _, loans, _ := newLending(t)
		ctx := context.Background()

		loans.EXPECT().GetLoan(ctx, loanUid).Return(active, nil)

		_, err := svc.Return(ctx, "mallory", loanUid)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("already returned", func(t *testing.T) {
		svc, _, loans, _ := newLending(t)
		ctx := context.Background()

		closed := active
		closed.Status = model.LoanStatusReturned
		loans.EXPECT().GetLoan(ctx, loanUid).Return(closed, nil)

		_, err := svc.Return(ctx, username, loanUid)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	})

	t.Run("book deleted while on loan", func(t *testing.T) {
		svc, books, loans, events := newLending(t)
		ctx := context.Background()

		closed := active
		closed.Status = model.LoanStatusReturned

		loans.EXPECT().GetLoan(ctx, loanUid).Return(active, nil)
		loans.EXPECT().MarkReturned(ctx, loanUid).Return(closed, nil)
		books.EXPECT().SetAvailable(ctx, bookUid, true).Return(errs.ErrNotFound)
		events.EXPECT().PublishLoanEvent(ctx, gomock.Any()).Return(nil)

		loan, err := svc.Return(ctx, username, loanUid)
		require.NoError(t, err)
		require.Equal(t, model.LoanStatusReturned, loan.Status)
	})

	t.Run("release fails", func(t *testing.T) {
		svc, books, loans, _ := newLending(t)
		ctx := context.Background()
		boom := errors.New("update books")

		closed := active
		closed.Status = model.LoanStatusReturned

		loans.EXPECT().GetLoan(ctx, loanUid).Return(active, nil)
		loans.EXPECT().MarkReturned(ctx, loanUid).Return(closed, nil)
		books.EXPECT().SetAvailable(ctx, bookUid, true).Return(boom)

		_, err := svc.Return(ctx, username, loanUid)
		require.ErrorIs(t, err, boom)
	})
}

func TestLending_ListLoans(t *testing.T) {
	svc, _, loans, _ := newLending(t)
	ctx := context.Background()

	want := []model.LoanWithBook{
		{Loan: model.Loan{LoanUid: "l1", Username: "alice", Status: model.LoanStatusActive}},
		{Loan: model.Loan{LoanUid: "l2", Username: "alice", Status: model.LoanStatusReturned}},
	}
	loans.EXPECT().ListLoans(ctx, "alice", false).Return(want, nil)

	got, err := svc.ListLoans(ctx, "alice", false)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
