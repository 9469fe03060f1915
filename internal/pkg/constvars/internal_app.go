package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "LAPSWIM_SVC_"
)

const (
	// ManualScheduleRawText is the sentinel stored in place of extracted PDF
	// text when a schedule comes from a manual override.
	ManualScheduleRawText = "Manual schedule override"
)

const (
	RedisKeyPDFTextPrefix = "pdftext:"
)
