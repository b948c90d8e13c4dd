// Package metrics defines and registers all custom Prometheus metrics for the
// interviewer API. It is the single source of truth for metric names, labels
// and help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "interviewer"

// ── Interview metrics ─────────────────────────────────────────────────────────

// InterviewsStartedTotal counts sessions created by POST /ai/start-interview.
var InterviewsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interviews_started_total",
		Help:      "Total number of interview sessions started.",
	},
)

// InterviewsCompletedTotal counts sessions whose last answer was recorded.
var InterviewsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interviews_completed_total",
		Help:      "Total number of interview sessions completed.",
	},
)

// AnswersRecordedTotal counts answers that won the advance and were stored.
var AnswersRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "answers_recorded_total",
		Help:      "Total number of evaluated answers recorded.",
	},
)

// AnswerScore observes the rubric score (1-5) of every recorded answer.
var AnswerScore = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "answer_score",
		Help:      "Distribution of rubric scores given to recorded answers.",
		Buckets:   []float64{1, 2, 3, 4, 5},
	},
)

// SubmitRejectionsTotal counts submit-answer requests that recorded nothing.
// Label:
//   - reason: "completed", "stale", "validation", "not_found", "upstream" or "internal"
var SubmitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submit_rejections_total",
		Help:      "Total number of rejected answer submissions, by reason.",
	},
	[]string{"reason"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to external AI collaborators.
// Labels:
//   - collaborator: "llm", "transcriber" or "tts"
//   - outcome: "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of external collaborator calls, by outcome.",
	},
	[]string{"collaborator", "outcome"},
)

// UpstreamDuration measures external collaborator latency.
var UpstreamDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_duration_seconds",
		Help:      "Duration of external collaborator calls.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 40, 80},
	},
	[]string{"collaborator"},
)

// TTSCacheTotal counts question audio cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var TTSCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tts_cache_total",
		Help:      "Total number of question audio cache lookups, by result.",
	},
	[]string{"result"},
)
