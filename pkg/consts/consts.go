package consts

import "time"

const (
	ParamStartDate = "start_date"
	ParamEndDate   = "end_date"
	ParamDate      = "date"
	ParamThumbs    = "thumbs"
	ParamTab       = "tab"
	ParamSelected  = "selected"
	ParamLimit     = "limit"

	TimeFormat = "2006-01-02"

	ApiKey = "api_key"

	PathApod    = "/planetary/apod"
	PathNeoFeed = "/neo/rest/v1/feed"

	EndpointApod      = "apod"
	EndpointApodRange = "apod_range"
	EndpointNeoFeed   = "neo_feed"

	True = "true"
)

// env
const (
	EnvApiKey        = "NASA_API_KEY"
	EnvBaseURL       = "NASA_BASE_URL"
	EnvAppPort       = "APP_PORT"
	EnvAppEnv        = "APP_ENV"
	EnvLogLevel      = "LOG_LEVEL"
	EnvJournalDriver = "JOURNAL_DRIVER"
	EnvSQLitePath    = "SQLITE_PATH"

	DefaultBaseURL = "https://api.nasa.gov"
	DefaultApiKey  = "DEMO_KEY"
)

const (
	// upstream publishes with a delay, the recent window ends this many days before today
	PublishLagDays = 2
	// start of the recent window is this many days before its end, both ends included
	WindowSpanDays = 25

	NeoLookaheadDays = 3
	NeoDisplayLimit  = 5

	SplashDelay = 2 * time.Second
)
