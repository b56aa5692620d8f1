package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	CasinoRounds = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameCasinoRounds, Help: HelpTextCasinoRounds},
		[]string{LabelGame, LabelOutcome},
	)

	CasinoWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameCasinoWagered, Help: HelpTextCasinoWagered},
		[]string{LabelGame},
	)

	CasinoPaidOut = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameCasinoPaidOut, Help: HelpTextCasinoPaidOut},
		[]string{LabelGame},
	)

	DungeonRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameDungeonRuns, Help: HelpTextDungeonRuns},
		[]string{LabelRank, LabelOutcome},
	)

	RelicsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameRelicsDropped, Help: HelpTextRelicsDropped},
		[]string{LabelSource},
	)

	ListingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameListingsCreated, Help: HelpTextListingsCreated},
	)

	ListingsSold = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameListingsSold, Help: HelpTextListingsSold},
	)

	MarketVolume = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameMarketVolume, Help: HelpTextMarketVolume},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameDailyClaims, Help: HelpTextDailyClaims},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameLevelUps, Help: HelpTextLevelUps},
	)

	SalaryRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSalaryRuns, Help: HelpTextSalaryRuns},
		[]string{LabelJob, LabelResult},
	)

	SalaryMembersPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSalaryMembers, Help: HelpTextSalaryMembers},
		[]string{LabelJob},
	)

	OperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameOperationErrors, Help: HelpTextOperationErrors},
		[]string{LabelOperation, LabelKind},
	)

	ConfigCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameConfigCacheHits, Help: HelpTextConfigCacheHits},
		[]string{LabelResult},
	)

	VoiceMinutesGranted = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameVoiceMinutesPaid, Help: HelpTextVoiceMinutesPaid},
	)
)
