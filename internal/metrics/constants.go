package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRateLimited          = "http_requests_rate_limited_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progress metric names
const (
	MetricNameXPAwarded              = "xp_awarded_total"
	MetricNameLevelUps               = "level_ups_total"
	MetricNameAchievementsUnlocked   = "achievements_unlocked_total"
	MetricNameStreakFreezesUsed      = "streak_freezes_used_total"
	MetricNameTasksCompleted         = "tasks_completed_total"
	MetricNameProgressUpdateDuration = "progress_update_duration_seconds"
	MetricNameLeaderboardErrors      = "leaderboard_update_errors_total"
)

// Stream and background job metric names
const (
	MetricNameStreamClients       = "progress_stream_clients"
	MetricNameStreamEventsDropped = "progress_stream_events_dropped_total"
	MetricNameJobRuns             = "background_job_runs_total"
	MetricNameJobDuration         = "background_job_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRateLimited          = "Total number of requests rejected by the rate limiter"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextXPAwarded              = "Total XP awarded, including achievement rewards"
	HelpTextLevelUps               = "Total number of level ups"
	HelpTextAchievementsUnlocked   = "Total number of achievements unlocked"
	HelpTextStreakFreezesUsed      = "Total number of streak freeze tokens consumed"
	HelpTextTasksCompleted         = "Total number of tasks completed"
	HelpTextProgressUpdateDuration = "Duration of the transactional progress update in seconds"
	HelpTextLeaderboardErrors      = "Total number of failed leaderboard updates"

	HelpTextStreamClients       = "Current number of connected progress stream clients"
	HelpTextStreamEventsDropped = "Total number of stream events dropped because a client buffer was full"
	HelpTextJobRuns             = "Total number of background job runs"
	HelpTextJobDuration         = "Background job duration in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelAchievement = "achievement"
	LabelPriority    = "priority"
	LabelJob         = "job"
	LabelOutcome     = "outcome"
)

// Outcome label values for background jobs
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// UnmatchedRoute labels requests that did not match any chi route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
