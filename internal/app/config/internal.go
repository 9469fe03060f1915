package config

type InternalConfig struct {
	App      App
	PDF      PDF
	Schedule Schedule
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int
}

// PDF configures the external PDF-to-text collaborator: the Tika server that
// converts fetched schedule PDFs, and the redis-backed text cache in front
// of it.
type PDF struct {
	TikaURL              string
	FetchTimeoutInSecond int
	CacheTTLInHour       int
}

type Schedule struct {
	ActivityLabel       string
	RefreshCronSpec     string
	PoolsConfigFile     string
	ManualSchedulesFile string
}
