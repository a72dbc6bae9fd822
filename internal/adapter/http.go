package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/readreview/book-stack/internal/config"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is taken from the
// Authorization response header, falling back to the token field of the
// response body, and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(bearerTokenFromResponse(resp, auth))
	return auth.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is taken from the
// Authorization response header, falling back to the token field of the
// response body, and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(bearerTokenFromResponse(resp, auth))
	return auth.User, nil
}

// Profile implements [ServerAdapter]. It GETs /api/auth/profile and decodes
// the account record of the token holder.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return user, nil
}

// ChangePassword implements [ServerAdapter]. It PUTs the new password to
// PUT /api/auth/password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, newPassword string) error {
	body := struct {
		Password string `json:"password"`
	}{Password: newPassword}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/api/auth/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListBooks implements [ServerAdapter]. It GETs /api/books, attaching the
// search term as the ?search= query parameter when non-empty.
func (h *httpServerAdapter) ListBooks(ctx context.Context, search string) ([]models.Book, error) {
	req := h.client.R().SetContext(ctx)
	if search = strings.TrimSpace(search); search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get("/api/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var books []models.Book
	if err = json.Unmarshal(resp.Body(), &books); err != nil {
		return nil, fmt.Errorf("decode books response: %w", err)
	}

	return books, nil
}

// GetBook implements [ServerAdapter]. It GETs /api/books/{bookID}.
func (h *httpServerAdapter) GetBook(ctx context.Context, bookID int64) (models.Book, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(bookPath(bookID))
	if err != nil {
		return models.Book{}, fmt.Errorf("get book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	var book models.Book
	if err = json.Unmarshal(resp.Body(), &book); err != nil {
		return models.Book{}, fmt.Errorf("decode book response: %w", err)
	}

	return book, nil
}

// CreateBook implements [ServerAdapter]. It POSTs the book fields to
// POST /api/books and returns the created record.
func (h *httpServerAdapter) CreateBook(ctx context.Context, input models.BookInput) (models.Book, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	var book models.Book
	if err = json.Unmarshal(resp.Body(), &book); err != nil {
		return models.Book{}, fmt.Errorf("decode book response: %w", err)
	}

	return book, nil
}

// UpdateBook implements [ServerAdapter]. It PUTs the book fields to
// PUT /api/books/{bookID} and returns the updated record. Returns
// [ErrForbidden] (wrapped) on HTTP 403.
func (h *httpServerAdapter) UpdateBook(ctx context.Context, bookID int64, input models.BookInput) (models.Book, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Put(bookPath(bookID))
	if err != nil {
		return models.Book{}, fmt.Errorf("update book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	var book models.Book
	if err = json.Unmarshal(resp.Body(), &book); err != nil {
		return models.Book{}, fmt.Errorf("decode book response: %w", err)
	}

	return book, nil
}

// DeleteBook implements [ServerAdapter]. It sends DELETE /api/books/{bookID}.
// Returns [ErrForbidden] (wrapped) on HTTP 403.
func (h *httpServerAdapter) DeleteBook(ctx context.Context, bookID int64) error {
	resp, err := h.authedRequest(ctx).Delete(bookPath(bookID))
	if err != nil {
		return fmt.Errorf("delete book request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListReviews implements [ServerAdapter]. It GETs
// /api/books/{bookID}/reviews.
func (h *httpServerAdapter) ListReviews(ctx context.Context, bookID int64) ([]models.Review, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(bookPath(bookID) + "/reviews")
	if err != nil {
		return nil, fmt.Errorf("list reviews request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err = json.Unmarshal(resp.Body(), &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews response: %w", err)
	}

	return reviews, nil
}

// CreateReview implements [ServerAdapter]. It POSTs the review body to
// POST /api/books/{bookID}/reviews and returns the created record.
func (h *httpServerAdapter) CreateReview(ctx context.Context, bookID int64, input models.ReviewInput) (models.Review, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post(bookPath(bookID) + "/reviews")
	if err != nil {
		return models.Review{}, fmt.Errorf("create review request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Review{}, err
	}

	var review models.Review
	if err = json.Unmarshal(resp.Body(), &review); err != nil {
		return models.Review{}, fmt.Errorf("decode review response: %w", err)
	}

	return review, nil
}

// UpdateReview implements [ServerAdapter]. It PUTs the review body to
// PUT /api/reviews/{reviewID} and returns the updated record. Returns
// [ErrForbidden] (wrapped) on HTTP 403.
func (h *httpServerAdapter) UpdateReview(ctx context.Context, reviewID int64, input models.ReviewInput) (models.Review, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Put(reviewPath(reviewID))
	if err != nil {
		return models.Review{}, fmt.Errorf("update review request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Review{}, err
	}

	var review models.Review
	if err = json.Unmarshal(resp.Body(), &review); err != nil {
		return models.Review{}, fmt.Errorf("decode review response: %w", err)
	}

	return review, nil
}

// DeleteReview implements [ServerAdapter]. It sends
// DELETE /api/reviews/{reviewID}. Returns [ErrForbidden] (wrapped) on
// HTTP 403.
func (h *httpServerAdapter) DeleteReview(ctx context.Context, reviewID int64) error {
	resp, err := h.authedRequest(ctx).Delete(reviewPath(reviewID))
	if err != nil {
		return fmt.Errorf("delete review request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListUsers implements [ServerAdapter]. It GETs /api/users.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	return users, nil
}

// Stats implements [ServerAdapter]. It GETs /api/users/stats and decodes the
// content counters of the token holder.
func (h *httpServerAdapter) Stats(ctx context.Context) (models.UserStats, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/stats")
	if err != nil {
		return models.UserStats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserStats{}, err
	}

	var stats models.UserStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.UserStats{}, fmt.Errorf("decode stats response: %w", err)
	}

	return stats, nil
}

// Health implements [ServerAdapter]. It GETs /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", err)
	}

	return health, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// bearerTokenFromResponse prefers the Authorization response header and falls
// back to the token field register and login echo in the body.
func bearerTokenFromResponse(resp *resty.Response, auth models.AuthResponse) string {
	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		return token
	}
	return auth.Token
}

func bookPath(bookID int64) string {
	return "/api/books/" + strconv.FormatInt(bookID, 10)
}

func reviewPath(reviewID int64) string {
	return "/api/reviews/" + strconv.FormatInt(reviewID, 10)
}
