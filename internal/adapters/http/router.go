package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/businessintelli/savelife/internal/config"
	"github.com/businessintelli/savelife/internal/core/ports"
	"github.com/businessintelli/savelife/internal/observability/metrics"
)

const serviceName = "savelife-ai"

type Router struct {
	cfg      config.Config
	advisor  ports.CampaignAdvisor
	verifier ports.DocumentVerifier
	matcher  ports.DonorMatcher
	metrics  *metrics.HTTPServerMetrics
	nowFn    func() time.Time
}

func NewRouter(
	cfg config.Config,
	advisor ports.CampaignAdvisor,
	verifier ports.DocumentVerifier,
	matcher ports.DonorMatcher,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:      cfg,
		advisor:  advisor,
		verifier: verifier,
		matcher:  matcher,
		metrics:  m,
		nowFn:    time.Now,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", rt.notFound)
	mux.HandleFunc("/health", rt.health)
	mux.HandleFunc("/healthz", rt.healthz)
	mux.Handle("/metrics", rt.metrics.Handler())
	mux.HandleFunc("/openapi.yaml", rt.openAPIDocument)

	mux.HandleFunc("/v1/campaign/suggestions", rt.campaignSuggestions)
	mux.HandleFunc("/v1/campaign/title-suggestions", rt.titleSuggestions)
	mux.HandleFunc("/v1/campaign/goal-recommendation", rt.goalRecommendation)
	mux.HandleFunc("/v1/campaign/story-optimization", rt.storyOptimization)
	mux.HandleFunc("/v1/campaign/writing-assistance", rt.writingAssistance)

	mux.HandleFunc("/v1/verification/analyze-document", rt.analyzeDocument)
	mux.HandleFunc("/v1/verification/verify-campaign", rt.verifyCampaign)
	mux.HandleFunc("/v1/verification/fraud-detection", rt.fraudDetection)

	mux.HandleFunc("/v1/donor/profile", rt.donorProfile)
	mux.HandleFunc("/v1/donor/matching", rt.donorMatching)

	var handler http.Handler = mux
	handler = rt.metrics.Middleware(serviceName, handler)
	if rt.cfg.APIRateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	}
	if rt.cfg.APIMaxInFlight > 0 {
		wait := time.Duration(rt.cfg.APIBackpressureWaitMS) * time.Millisecond
		handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, wait)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "endpoint not found")
}

// timestamp is the RFC3339 marker attached to every successful response.
func (rt *Router) timestamp() string {
	return rt.nowFn().UTC().Format(time.RFC3339)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeRequiredObject rejects absent, null and empty-object values for fields
// the API contract marks as required non-empty, then unmarshals into dst.
func decodeRequiredObject(w http.ResponseWriter, raw json.RawMessage, field string, dst any) bool {
	var members map[string]json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &members); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return false
		}
	}
	if len(members) == 0 {
		writeError(w, http.StatusBadRequest, field+" is required")
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeDomainError(w http.ResponseWriter, err error) {
	status := mapErrorToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	writeError(w, status, message)
}
