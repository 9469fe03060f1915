package pdftext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
	"lapswim-service/internal/pkg/constvars"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func testConfig(tikaURL string) *config.InternalConfig {
	return &config.InternalConfig{
		PDF: config.PDF{
			TikaURL:              tikaURL,
			FetchTimeoutInSecond: 5,
			CacheTTLInHour:       168,
		},
	}
}

func TestPDFTextService_FetchText(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Cache Hit Skips Download", func(t *testing.T) {
		pdfServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("PDF server should not be hit on cache hit")
		}))
		defer pdfServer.Close()

		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, constvars.RedisKeyPDFTextPrefix+pdfServer.URL).
			Return(`"cached schedule text"`, nil)

		service := NewPDFTextService(testConfig("http://localhost:9998"), redisRepo, logger)

		text, err := service.FetchText(context.Background(), pdfServer.URL)

		require.NoError(t, err)
		assert.Equal(t, "cached schedule text", text)
		redisRepo.AssertNotCalled(t, "Set")
	})

	t.Run("Cache Miss Downloads And Converts", func(t *testing.T) {
		pdfServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte("%PDF-1.4 fake pdf bytes"))
		}))
		defer pdfServer.Close()

		tikaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/tika", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationPDF, r.Header.Get(constvars.HeaderContentType))
			assert.Equal(t, constvars.MIMETextPlain, r.Header.Get(constvars.HeaderAccept))
			w.Write([]byte("converted schedule text"))
		}))
		defer tikaServer.Close()

		cacheKey := constvars.RedisKeyPDFTextPrefix + pdfServer.URL
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, cacheKey).Return("", nil)
		redisRepo.On("Set", mock.Anything, cacheKey, "converted schedule text", 168*time.Hour).Return(nil)

		service := NewPDFTextService(testConfig(tikaServer.URL), redisRepo, logger)

		text, err := service.FetchText(context.Background(), pdfServer.URL)

		require.NoError(t, err)
		assert.Equal(t, "converted schedule text", text)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Download Failure Returns Error", func(t *testing.T) {
		pdfServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer pdfServer.Close()

		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil)

		service := NewPDFTextService(testConfig("http://localhost:9998"), redisRepo, logger)

		_, err := service.FetchText(context.Background(), pdfServer.URL)

		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Set")
	})

	t.Run("Converter Failure Returns Error", func(t *testing.T) {
		pdfServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("%PDF-1.4 fake pdf bytes"))
		}))
		defer pdfServer.Close()

		tikaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte("cannot parse document"))
		}))
		defer tikaServer.Close()

		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil)

		service := NewPDFTextService(testConfig(tikaServer.URL), redisRepo, logger)

		_, err := service.FetchText(context.Background(), pdfServer.URL)

		assert.Error(t, err)
	})

	t.Run("Cache Read Failure Falls Through To Fetch", func(t *testing.T) {
		pdfServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("%PDF-1.4 fake pdf bytes"))
		}))
		defer pdfServer.Close()

		tikaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("converted anyway"))
		}))
		defer tikaServer.Close()

		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", assert.AnError)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		service := NewPDFTextService(testConfig(tikaServer.URL), redisRepo, logger)

		text, err := service.FetchText(context.Background(), pdfServer.URL)

		require.NoError(t, err)
		assert.Equal(t, "converted anyway", text)
	})
}
