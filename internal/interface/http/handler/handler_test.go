package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaccount "github.com/loudent/library/internal/application/account"
	appactivity "github.com/loudent/library/internal/application/activity"
	appcatalog "github.com/loudent/library/internal/application/catalog"
	"github.com/loudent/library/internal/domain/account"
	"github.com/loudent/library/internal/domain/activity"
	"github.com/loudent/library/internal/domain/catalog"
	"github.com/loudent/library/pkg/dispatch"
	apperrors "github.com/loudent/library/pkg/errors"
	"github.com/loudent/library/pkg/pool"
)

// stubCatalogService serves a fixed enriched catalog.
type stubCatalogService struct {
	byISBN  map[string]*catalog.Details
	byTitle map[string]*catalog.Details
}

func (s *stubCatalogService) GetByISBN(_ context.Context, isbn string) (*catalog.Details, error) {
	return s.byISBN[isbn], nil
}

func (s *stubCatalogService) GetByTitle(_ context.Context, title string) (*catalog.Details, error) {
	return s.byTitle[title], nil
}

func (s *stubCatalogService) Search(_ context.Context, q catalog.Query) ([]*catalog.Details, error) {
	var out []*catalog.Details
	for _, d := range s.byISBN {
		if q.AuthorLastName == "" || d.AuthorLastName == q.AuthorLastName {
			out = append(out, d)
		}
	}
	return out, nil
}

type stubAccountService struct {
	profiles map[string]*account.Profile
}

func (s *stubAccountService) GetByAccountNumber(_ context.Context, accountNumber string) (*account.Profile, error) {
	return s.profiles[accountNumber], nil
}

func (s *stubAccountService) Exists(_ context.Context, accountNumber string) bool {
	return s.profiles[accountNumber] != nil
}

type stubActivityService struct {
	checkout func(accountNumber string, bookIDs []string) ([]activity.OperationResult, error)
	checkin  func(bookIDs []string) ([]activity.OperationResult, error)
}

func (s *stubActivityService) CheckoutBooks(_ context.Context, accountNumber string, bookIDs []string) ([]activity.OperationResult, error) {
	return s.checkout(accountNumber, bookIDs)
}

func (s *stubActivityService) CheckinBooks(_ context.Context, bookIDs []string) ([]activity.OperationResult, error) {
	return s.checkin(bookIDs)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, catalogSvc catalog.Service, accountSvc account.Service, activitySvc activity.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p := pool.New("test", 4, 32)
	t.Cleanup(func() { _ = p.Stop(context.Background()) })
	d := dispatch.New(p, time.Second)

	catalogHandler := NewCatalogHandler(
		appcatalog.NewGetBookUseCase(d, catalogSvc),
		appcatalog.NewGetBookByTitleUseCase(d, catalogSvc),
		appcatalog.NewSearchCatalogUseCase(d, catalogSvc),
	)
	accountHandler := NewAccountHandler(appaccount.NewGetAccountUseCase(d, accountSvc))
	activityHandler := NewActivityHandler(
		appactivity.NewCheckoutBooksUseCase(d, activitySvc, nil),
		appactivity.NewCheckinBooksUseCase(d, activitySvc, nil),
	)

	r := gin.New()
	r.GET("/api/v1/catalog/:isbn", catalogHandler.GetBook)
	r.POST("/api/v1/catalog/title", catalogHandler.GetBookByTitle)
	r.POST("/api/v1/catalog/search", catalogHandler.SearchCatalog)
	r.GET("/api/v1/accounts/:accountNumber", accountHandler.GetAccount)
	r.POST("/api/v1/activity/checkout", activityHandler.CheckoutBooks)
	r.POST("/api/v1/activity/checkin", activityHandler.CheckinBooks)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func defaultServices() (*stubCatalogService, *stubAccountService, *stubActivityService) {
	goodOmens := &catalog.Details{
		ISBN:            "isbn-1",
		Title:           "Good Omens",
		AuthorFirstName: "Terry",
		AuthorLastName:  "Pratchett",
		TotalCopies:     3,
		AvailableCopies: 2,
	}
	catalogSvc := &stubCatalogService{
		byISBN:  map[string]*catalog.Details{"isbn-1": goodOmens},
		byTitle: map[string]*catalog.Details{"Good Omens": goodOmens},
	}
	accountSvc := &stubAccountService{profiles: map[string]*account.Profile{
		"12345": {
			Account: account.Account{
				AccountNumber: "12345",
				FirstName:     "Ada",
				LastName:      "Lovelace",
				MemberSince:   time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			BorrowedBooks: []account.Loan{{
				BookID:       "isbn-1.1",
				Title:        "Good Omens",
				CheckOutDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				DueDate:      time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			}},
		},
	}}
	activitySvc := &stubActivityService{
		checkout: func(accountNumber string, bookIDs []string) ([]activity.OperationResult, error) {
			if accountNumber == "" || len(bookIDs) == 0 {
				return nil, apperrors.NewInvalidArgument("Account number and book IDs must be provided")
			}
			out := make([]activity.OperationResult, len(bookIDs))
			for i, id := range bookIDs {
				out[i] = activity.OperationResult{
					BookID:       id,
					Title:        "Good Omens",
					CheckOutDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
					DueDate:      time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
					Note:         activity.NoteOK,
				}
			}
			return out, nil
		},
		checkin: func(bookIDs []string) ([]activity.OperationResult, error) {
			if len(bookIDs) == 0 {
				return nil, apperrors.NewInvalidArgument("Book IDs must be provided")
			}
			out := make([]activity.OperationResult, len(bookIDs))
			for i, id := range bookIDs {
				out[i] = activity.OperationResult{BookID: id, Note: activity.NoteAlreadyCheckedIn}
			}
			return out, nil
		},
	}
	return catalogSvc, accountSvc, activitySvc
}

func TestGetBook(t *testing.T) {
	catalogSvc, accountSvc, activitySvc := defaultServices()
	r := newTestRouter(t, catalogSvc, accountSvc, activitySvc)

	t.Run("found", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/catalog/isbn-1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, 0, env.Code)

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Good Omens", data["title"])
		assert.Equal(t, float64(2), data["available_copies"])
	})

	t.Run("unknown isbn", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/catalog/ghost", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, apperrors.ErrCodeNotFound, env.Code)
		assert.Equal(t, "Book not found for ISBN: ghost", env.Message)
	})
}

func TestGetBookByTitle(t *testing.T) {
	catalogSvc, accountSvc, activitySvc := defaultServices()
	r := newTestRouter(t, catalogSvc, accountSvc, activitySvc)

	t.Run("found", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/catalog/title", gin.H{"title": "Good Omens"})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown title", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/catalog/title", gin.H{"title": "No Such Book"})
		require.Equal(t, http.StatusNotFound, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Book not found for title: No Such Book", env.Message)
	})
}

func TestSearchCatalog(t *testing.T) {
	catalogSvc, accountSvc, activitySvc := defaultServices()
	r := newTestRouter(t, catalogSvc, accountSvc, activitySvc)

	w := doJSON(r, http.MethodPost, "/api/v1/catalog/search", gin.H{"author_last_name": "Pratchett"})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "isbn-1", data[0]["isbn"])
}

func TestGetAccount(t *testing.T) {
	catalogSvc, accountSvc, activitySvc := defaultServices()
	r := newTestRouter(t, catalogSvc, accountSvc, activitySvc)

	t.Run("found", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/accounts/12345", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Ada", data["first_name"])
		assert.Equal(t, "2019-03-01", data["member_since"])

		books, ok := data["borrowed_books"].([]interface{})
		require.True(t, ok)
		require.Len(t, books, 1)
		loan := books[0].(map[string]interface{})
		assert.Equal(t, "2024-01-15", loan["check_out_date"])
		assert.Equal(t, "2024-02-05", loan["due_date"])
	})

	t.Run("unknown account", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/accounts/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "User not found for account #: 999", env.Message)
	})
}

func TestCheckoutBooks(t *testing.T) {
	catalogSvc, accountSvc, activitySvc := defaultServices()
	r := newTestRouter(t, catalogSvc, accountSvc, activitySvc)

	t.Run("ok", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/activity/checkout", gin.H{
			"account_number": "12345",
			"book_ids":       []string{"isbn-1.1", "isbn-1.2"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var data []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data, 2)
		assert.Equal(t, "isbn-1.1", data[0]["book_id"])
		assert.Equal(t, "Ok", data[0]["note"])
		assert.Equal(t, "2024-01-15", data[0]["check_out_date"])
	})

	t.Run("missing arguments", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/activity/checkout", gin.H{})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, apperrors.ErrCodeInvalidParams, env.Code)
		assert.Equal(t, "Account number and book IDs must be provided", env.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/activity/checkout", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, apperrors.ErrCodeBindError, env.Code)
	})
}

func TestCheckinBooks(t *testing.T) {
	catalogSvc, accountSvc, activitySvc := defaultServices()
	r := newTestRouter(t, catalogSvc, accountSvc, activitySvc)

	t.Run("note without dates omits them", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/activity/checkin", gin.H{
			"book_ids": []string{"isbn-1.1"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var data []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data, 1)
		assert.Equal(t, "Book was already checked in", data[0]["note"])
		assert.NotContains(t, data[0], "check_out_date")
		assert.NotContains(t, data[0], "due_date")
	})

	t.Run("missing book ids", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/activity/checkin", gin.H{})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Book IDs must be provided", env.Message)
	})
}
