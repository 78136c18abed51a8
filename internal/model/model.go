package model

import (
	"time"
)

type Book struct {
	ID          int       `json:"-" db:"id"`
	BookUid     string    `json:"bookUid" db:"book_uid"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Year        int       `json:"year" db:"year"`
	ISBN        string    `json:"isbn" db:"isbn"`
	Description string    `json:"description" db:"description"`
	Genre       string    `json:"genre" db:"genre"`
	Language    string    `json:"language" db:"language"`
	Available   bool      `json:"available" db:"available"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// BookSummary is the read-side projection embedded into loan and
// wishlist listings.
type BookSummary struct {
	BookUid string `json:"bookUid" db:"book_uid"`
	Title   string `json:"title" db:"title"`
	Author  string `json:"author" db:"author"`
	Genre   string `json:"genre" db:"genre"`
}

type BookFilter struct {
	AvailableOnly bool
	Search        string
	Genre         string
	Language      string
}

type BookCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Year        int    `json:"year"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Language    string `json:"language"`
}

type BookUpdateRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Year        *int    `json:"year"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
	Language    *string `json:"language"`
}

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusReturned LoanStatus = "RETURNED"
)

type Loan struct {
	ID           int        `json:"-" db:"id"`
	LoanUid      string     `json:"loanUid" db:"loan_uid"`
	Username     string     `json:"username" db:"username"`
	BookUid      string     `json:"bookUid" db:"book_uid"`
	BorrowedDate time.Time  `json:"borrowedDate" db:"borrowed_date"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	ReturnedDate *time.Time `json:"returnedDate,omitempty" db:"returned_date"`
	Status       LoanStatus `json:"status" db:"status"`
}

// LoanWithBook carries an optional book summary. Book is nil when the
// referenced book no longer exists in the catalog.
type LoanWithBook struct {
	Loan
	Book *BookSummary `json:"book,omitempty"`
}

type BorrowRequest struct {
	BookUid string `json:"bookUid" validate:"required,uuid"`
}

type LoanEventType string

const (
	LoanEventBorrowed LoanEventType = "BORROWED"
	LoanEventReturned LoanEventType = "RETURNED"
)

type LoanEvent struct {
	LoanUid  string        `json:"loanUid"`
	BookUid  string        `json:"bookUid"`
	Username string        `json:"username"`
	Event    LoanEventType `json:"event"`
	At       time.Time     `json:"at"`
}

type User struct {
	ID           int       `json:"-" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

type WishlistItem struct {
	ID       int          `json:"-" db:"id"`
	Username string       `json:"username" db:"username"`
	BookUid  string       `json:"bookUid" db:"book_uid"`
	AddedAt  time.Time    `json:"addedAt" db:"added_at"`
	Book     *BookSummary `json:"book,omitempty"`
}

type WishlistAddRequest struct {
	BookUid string `json:"bookUid" validate:"required,uuid"`
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// BookRequest is a reader's ask for a title the library does not carry.
type BookRequest struct {
	ID         int           `json:"-" db:"id"`
	RequestUid string        `json:"requestUid" db:"request_uid"`
	Username   string        `json:"username" db:"username"`
	Title      string        `json:"title" db:"title"`
	Author     string        `json:"author" db:"author"`
	Reason     string        `json:"reason" db:"reason"`
	Status     RequestStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
}

type BookRequestCreate struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

type BookRequestStatusUpdate struct {
	Status RequestStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

type Review struct {
	ID        int       `json:"-" db:"id"`
	ReviewUid string    `json:"reviewUid" db:"review_uid"`
	Username  string    `json:"username" db:"username"`
	BookUid   string    `json:"bookUid" db:"book_uid"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type ReviewCreateRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewUpdateRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type BookRating struct {
	BookUid string  `json:"bookUid" db:"book_uid"`
	Average float64 `json:"average" db:"average"`
	Count   int     `json:"count" db:"count"`
}

type Publisher struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Country string `json:"country" db:"country"`
	Website string `json:"website" db:"website"`
}

type PublisherRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country"`
	Website string `json:"website"`
}

type Genre struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

type GenreRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type BookStats struct {
	BookUid     string    `json:"bookUid" db:"book_uid"`
	BorrowCount int       `json:"borrowCount" db:"borrow_count"`
	ReturnCount int       `json:"returnCount" db:"return_count"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
