package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/readwell/library-service/internal/model"
	"github.com/readwell/library-service/internal/repository"
)

type Wishlist struct {
	log  *zap.Logger
	repo repository.Wishlist
}

func NewWishlist(repo repository.Wishlist, log *zap.Logger) *Wishlist {
	return &Wishlist{
		log:  log,
		repo: repo,
	}
}

func (s *Wishlist) AddToWishlist(ctx context.Context, username, bookUid string) (model.WishlistItem, error) {
	return s.repo.AddToWishlist(ctx, username, bookUid)
}

func (s *Wishlist) GetWishlist(ctx context.Context, username string) ([]model.WishlistItem, error) {
	return s.repo.GetWishlist(ctx, username)
}

func (s *Wishlist) RemoveFromWishlist(ctx context.Context, username, bookUid string) error {
	return s.repo.RemoveFromWishlist(ctx, username, bookUid)
}

func (s *Wishlist) InWishlist(ctx context.Context, username, bookUid string) (bool, error) {
	return s.repo.InWishlist(ctx, username, bookUid)
}
