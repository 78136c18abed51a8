package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	booksTableName      = `books`
	loansTableName      = `loans`
	usersTableName      = `users`
	wishlistTableName   = `wishlist`
	requestsTableName   = `book_requests`
	reviewsTableName    = `reviews`
	publishersTableName = `publishers`
	genresTableName     = `genres`
	bookStatsTableName  = `book_stats`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}
