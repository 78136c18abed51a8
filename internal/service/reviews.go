package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/repository"
	"github.com/readwell/library-service/pkg/auth"
)

type Reviews struct {
	log  *zap.Logger
	repo repository.Reviews
}

func NewReviews(repo repository.Reviews, log *zap.Logger) *Reviews {
	return &Reviews{
		log:  log,
		repo: repo,
	}
}

func (s *Reviews) SubmitReview(ctx context.Context, username, bookUid string, req model.ReviewCreateRequest) (model.Review, error) {
	return s.repo.UpsertReview(ctx, username, bookUid, req.Rating, req.Comment)
}

func (s *Reviews) UpdateReview(ctx context.Context, caller auth.Identity, reviewUid string, req model.ReviewUpdateRequest) (model.Review, error) {
	review, err := s.repo.GetReview(ctx, reviewUid)
	if err != nil {
		return model.Review{}, err
	}
	if review.Username != caller.Username {
		return model.Review{}, errs.ErrForbidden
	}
	return s.repo.UpdateReview(ctx, reviewUid, req)
}

func (s *Reviews) DeleteReview(ctx context.Context, caller auth.Identity, reviewUid string) error {
	review, err := s.repo.GetReview(ctx, reviewUid)
	if err != nil {
		return err
	}
	if review.Username != caller.Username && !caller.IsAdmin() {
		return errs.ErrForbidden
	}
	return s.repo.DeleteReview(ctx, reviewUid)
}

func (s *Reviews) GetBookReviews(ctx context.Context, bookUid string) ([]model.Review, error) {
	return s.repo.GetBookReviews(ctx, bookUid)
}

func (s *Reviews) GetBookRating(ctx context.Context, bookUid string) (model.BookRating, error) {
	return s.repo.GetBookRating(ctx, bookUid)
}
