package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/readwell/library-service/pkg/middleware"
	"github.com/readwell/library-service/pkg/validate"
)

type Services struct {
	Auth     AuthService
	Catalog  CatalogService
	Lending  LendingService
	Wishlist WishlistService
	Reviews  ReviewService
	Requests RequestService
}

type Handler struct {
	auth     AuthService
	catalog  CatalogService
	lending  LendingService
	wishlist WishlistService
	reviews  ReviewService
	requests RequestService
	log      *zap.Logger
}

func New(svc Services, log *zap.Logger) *Handler {
	return &Handler{
		auth:     svc.Auth,
		catalog:  svc.Catalog,
		lending:  svc.Lending,
		wishlist: svc.Wishlist,
		reviews:  svc.Reviews,
		requests: svc.Requests,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:bookUid", h.GetBook)
	api.GET("/books/:bookUid/reviews", h.GetBookReviews)
	api.GET("/books/:bookUid/rating", h.GetBookRating)
	api.GET("/books/:bookUid/stats", h.GetBookStats)
	api.GET("/genres", h.GetGenres)
	api.GET("/publishers", h.GetPublishers)

	user := api.Group("", md.JwtAuthentication)
	user.GET("/loans", h.GetLoans)
	user.POST("/loans", h.BorrowBook)
	user.POST("/loans/:loanUid/return", h.ReturnBook)
	user.GET("/wishlist", h.GetWishlist)
	user.POST("/wishlist", h.AddToWishlist)
	user.GET("/wishlist/:bookUid", h.InWishlist)
	user.DELETE("/wishlist/:bookUid", h.RemoveFromWishlist)
	user.POST("/books/:bookUid/reviews", h.SubmitReview)
	user.PATCH("/reviews/:reviewUid", h.UpdateReview)
	user.DELETE("/reviews/:reviewUid", h.DeleteReview)
	user.POST("/requests", h.CreateRequest)
	user.GET("/requests", h.GetRequests)
	user.DELETE("/requests/:requestUid", h.DeleteRequest)

	admin := api.Group("", md.JwtAuthentication, md.AdminOnly)
	admin.POST("/books", h.CreateBook)
	admin.PATCH("/books/:bookUid", h.UpdateBook)
	admin.DELETE("/books/:bookUid", h.DeleteBook)
	admin.PATCH("/requests/:requestUid", h.UpdateRequestStatus)
	admin.POST("/publishers", h.CreatePublisher)
	admin.PATCH("/publishers/:id", h.UpdatePublisher)
	admin.DELETE("/publishers/:id", h.DeletePublisher)
	admin.POST("/genres", h.CreateGenre)
	admin.GET("/users", h.GetUsers)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// pathUid reads a uuid path parameter, rejecting garbage before it
// reaches the database.
func pathUid(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return raw, nil
}
