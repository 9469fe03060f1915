package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
	"lapswim-service/internal/app/contracts"
	"lapswim-service/internal/pkg/constvars"
	"lapswim-service/internal/pkg/exceptions"
)

type pdfTextService struct {
	HTTPClient      *http.Client
	RedisRepository contracts.RedisRepository
	TikaURL         string
	CacheTTL        time.Duration
	Log             *zap.Logger
}

func NewPDFTextService(
	internalConfig *config.InternalConfig,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.PDFTextService {
	return &pdfTextService{
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.PDF.FetchTimeoutInSecond) * time.Second,
		},
		RedisRepository: redisRepository,
		TikaURL:         internalConfig.PDF.TikaURL,
		CacheTTL:        time.Duration(internalConfig.PDF.CacheTTLInHour) * time.Hour,
		Log:             logger,
	}
}

// FetchText resolves the plain text for a schedule PDF. The redis cache is
// read-through: a hit skips both the download and the converter entirely.
func (s *pdfTextService) FetchText(ctx context.Context, url string) (string, error) {
	cacheKey := constvars.RedisKeyPDFTextPrefix + url

	cached, err := s.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		s.Log.Warn("pdfTextService.FetchText cache read failed, fetching anyway",
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}
	if cached != "" {
		var text string
		if err := json.Unmarshal([]byte(cached), &text); err == nil && text != "" {
			s.Log.Info("pdfTextService.FetchText using cached PDF text",
				zap.String(constvars.LoggingScheduleURLKey, url),
			)
			return text, nil
		}
	}

	s.Log.Info("pdfTextService.FetchText fetching PDF",
		zap.String(constvars.LoggingScheduleURLKey, url),
	)

	pdfBytes, err := s.downloadPDF(ctx, url)
	if err != nil {
		return "", err
	}

	text, err := s.convertToText(ctx, pdfBytes)
	if err != nil {
		return "", err
	}

	if err := s.RedisRepository.Set(ctx, cacheKey, text, s.CacheTTL); err != nil {
		s.Log.Warn("pdfTextService.FetchText failed to cache PDF text",
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}

	return text, nil
}

func (s *pdfTextService) downloadPDF(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrPDFFetch(err, url)
	}

	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrPDFFetch(err, url)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, exceptions.ErrPDFFetch(fmt.Errorf("unexpected status %d", response.StatusCode), url)
	}

	pdfBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrPDFFetch(err, url)
	}

	return pdfBytes, nil
}

// convertToText sends the PDF to the Tika server and reads back plain text.
func (s *pdfTextService) convertToText(ctx context.Context, pdfBytes []byte) (string, error) {
	tikaEndpoint := s.TikaURL + "/tika"

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, tikaEndpoint, bytes.NewReader(pdfBytes))
	if err != nil {
		return "", exceptions.ErrPDFConvert(err, s.TikaURL)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	request.Header.Set(constvars.HeaderAccept, constvars.MIMETextPlain)

	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return "", exceptions.ErrPDFConvert(err, s.TikaURL)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return "", exceptions.ErrPDFConvert(fmt.Errorf("unexpected status %d: %s", response.StatusCode, string(body)), s.TikaURL)
	}

	text, err := io.ReadAll(response.Body)
	if err != nil {
		return "", exceptions.ErrPDFConvert(err, s.TikaURL)
	}

	return string(text), nil
}
