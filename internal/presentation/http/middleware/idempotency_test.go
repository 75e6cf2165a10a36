package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	infra "github.com/Darshan-Dhanvate/grocerease-api/internal/infrastructure/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupIdempotencyRouter(t *testing.T, handlerCalls *atomic.Int32, status int) (*gin.Engine, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entity.IdempotencyKey{}))

	userID := uuid.New()
	router := gin.New()
	// Stand-in for AuthMiddleware so the tests control the user identity
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	router.POST("/billing",
		IdempotencyRequired(IdempotencyConfig{Repo: infra.NewIdempotencyRepository(db)}),
		func(c *gin.Context) {
			handlerCalls.Add(1)
			c.JSON(status, gin.H{"success": status < 300, "attempt": handlerCalls.Load()})
		})
	return router, userID
}

func TestIdempotencyRequiresHeader(t *testing.T) {
	var calls atomic.Int32
	router, _ := setupIdempotencyRouter(t, &calls, http.StatusCreated)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/billing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, calls.Load(), "handler must not run without a key")
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	var calls atomic.Int32
	router, _ := setupIdempotencyRouter(t, &calls, http.StatusCreated)

	first := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/billing", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-123")
	router.ServeHTTP(first, req)

	require.Equal(t, http.StatusCreated, first.Code)
	require.EqualValues(t, 1, calls.Load())

	second := httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/billing", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-123")
	router.ServeHTTP(second, req)

	assert.Equal(t, http.StatusCreated, second.Code)
	assert.EqualValues(t, 1, calls.Load(), "retry must not re-run the handler")
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestIdempotencyDistinctKeysRunIndependently(t *testing.T) {
	var calls atomic.Int32
	router, _ := setupIdempotencyRouter(t, &calls, http.StatusCreated)

	for _, key := range []string{"key-a", "key-b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/billing", nil)
		req.Header.Set(IdempotencyKeyHeader, key)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	assert.EqualValues(t, 2, calls.Load())
}

func TestIdempotencyDoesNotCacheFailures(t *testing.T) {
	var calls atomic.Int32
	router, _ := setupIdempotencyRouter(t, &calls, http.StatusBadRequest)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/billing", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-retry")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
	}

	assert.EqualValues(t, 2, calls.Load(), "failed attempts may be retried with the same key")
}
