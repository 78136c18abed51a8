package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/errs"
	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/repository"
	"github.com/readwell/library-service/pkg/auth"
)

type Requests struct {
	log  *zap.Logger
	repo repository.Requests
}

func NewRequests(repo repository.Requests, log *zap.Logger) *Requests {
	return &Requests{
		log:  log,
		repo: repo,
	}
}

func (s *Requests) CreateRequest(ctx context.Context, username string, req model.BookRequestCreate) (model.BookRequest, error) {
	return s.repo.CreateRequest(ctx, username, req)
}

// ListRequests returns the caller's own requests; admins see everyone's.
func (s *Requests) ListRequests(ctx context.Context, caller auth.Identity) ([]model.BookRequest, error) {
	username := caller.Username
	if caller.IsAdmin() {
		username = ""
	}
	return s.repo.ListRequests(ctx, username)
}

func (s *Requests) UpdateRequestStatus(ctx context.Context, requestUid string, status model.RequestStatus) (model.BookRequest, error) {
	return s.repo.UpdateRequestStatus(ctx, requestUid, status)
}

func (s *Requests) DeleteRequest(ctx context.Context, caller auth.Identity, requestUid string) error {
	request, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return err
	}
	if request.Username != caller.Username && !caller.IsAdmin() {
		return errs.ErrForbidden
	}
	return s.repo.DeleteRequest(ctx, requestUid)
}
