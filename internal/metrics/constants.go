package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric of the service
const Namespace = "mimi"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameCasinoRounds     = "casino_rounds_total"
	MetricNameCasinoWagered    = "casino_wagered_coins_total"
	MetricNameCasinoPaidOut    = "casino_paid_out_coins_total"
	MetricNameDungeonRuns      = "dungeon_runs_total"
	MetricNameRelicsDropped    = "relics_dropped_total"
	MetricNameListingsCreated  = "market_listings_created_total"
	MetricNameListingsSold     = "market_listings_sold_total"
	MetricNameMarketVolume     = "market_volume_coins_total"
	MetricNameDailyClaims      = "daily_claims_total"
	MetricNameLevelUps         = "level_ups_total"
	MetricNameSalaryRuns       = "salary_runs_total"
	MetricNameSalaryMembers    = "salary_members_paid_total"
	MetricNameOperationErrors  = "operation_errors_total"
	MetricNameConfigCacheHits  = "config_cache_requests_total"
	MetricNameVoiceMinutesPaid = "voice_minutes_granted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextCasinoRounds     = "Total number of casino rounds played"
	HelpTextCasinoWagered    = "Total coins wagered in the casino"
	HelpTextCasinoPaidOut    = "Total coins paid out by the casino"
	HelpTextDungeonRuns      = "Total number of dungeon attempts"
	HelpTextRelicsDropped    = "Total number of relics dropped"
	HelpTextListingsCreated  = "Total number of market listings created"
	HelpTextListingsSold     = "Total number of market listings sold"
	HelpTextMarketVolume     = "Total coins moved through market sales"
	HelpTextDailyClaims      = "Total number of successful daily claims"
	HelpTextLevelUps         = "Total number of community level-ups"
	HelpTextSalaryRuns       = "Total number of salary runs"
	HelpTextSalaryMembers    = "Total number of salary payouts to members"
	HelpTextOperationErrors  = "Total number of failed operations by error kind"
	HelpTextConfigCacheHits  = "Community config lookups by cache result"
	HelpTextVoiceMinutesPaid = "Total voice minutes that granted XP"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelGame      = "game"
	LabelOutcome   = "outcome"
	LabelRank      = "rank"
	LabelSource    = "source"
	LabelJob       = "job"
	LabelOperation = "operation"
	LabelKind      = "kind"
	LabelResult    = "result"
)

// Label values
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultSuccess = "success"
	ResultFailure = "failure"
	UnknownRoute  = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
