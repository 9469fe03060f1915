package contracts

import "context"

// PDFTextService fetches a schedule PDF from its source URL and returns the
// plain text extracted by the external converter. Results are cached with a
// multi-day expiry, so repeated calls for the same URL are cheap.
type PDFTextService interface {
	FetchText(ctx context.Context, url string) (string, error)
}
