package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/businessintelli/savelife/internal/config"
	"github.com/businessintelli/savelife/internal/core/knowledge"
	"github.com/businessintelli/savelife/internal/core/usecase"
	"github.com/businessintelli/savelife/internal/observability/metrics"
)

func newTestHandler(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	kb, err := knowledge.Load()
	if err != nil {
		t.Fatalf("knowledge.Load() error = %v", err)
	}
	return NewRouter(
		cfg,
		usecase.NewAdvisorUseCase(kb),
		usecase.NewVerifierUseCase(kb, usecase.VerifierOptions{}),
		usecase.NewMatcherUseCase(kb, usecase.MatcherOptions{Intn: func(int) int { return 0 }}),
		metrics.NewHTTPServerMetrics("test"),
	).Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	return res
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, res.Body.String())
	}
	return payload
}

func TestUnknownRouteReturns404(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodGet, "/v1/unknown", "")
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
	if decodeBody(t, res)["error"] != "endpoint not found" {
		t.Fatalf("unexpected body %q", res.Body.String())
	}
}

func TestWrongMethodReturns405(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodGet, "/v1/campaign/suggestions", "")
	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.Code)
	}

	res = doRequest(t, handler, http.MethodPost, "/healthz", "{}")
	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST /healthz, got %d", res.Code)
	}
}

func TestCampaignSuggestionsValidation(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodPost, "/v1/campaign/suggestions", `{"medical_condition":"cancer"}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", res.Code)
	}
	if decodeBody(t, res)["error"] != "name is required" {
		t.Fatalf("unexpected error body %q", res.Body.String())
	}

	res = doRequest(t, handler, http.MethodPost, "/v1/campaign/suggestions", `{"name":"Maria"}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing medical_condition, got %d", res.Code)
	}

	res = doRequest(t, handler, http.MethodPost, "/v1/campaign/suggestions",
		`{"name":"Maria","medical_condition":"breast cancer requiring chemotherapy","treatment_plan":"surgery"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	payload := decodeBody(t, res)
	suggestion, ok := payload["suggestion"].(map[string]any)
	if !ok {
		t.Fatalf("missing suggestion in %v", payload)
	}
	if suggestion["title"] == "" {
		t.Fatalf("expected a title, got %v", suggestion)
	}
	if payload["timestamp"] == "" {
		t.Fatalf("expected a timestamp")
	}
}

func TestGoalRecommendationEmbedsAnalysis(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodPost, "/v1/campaign/goal-recommendation",
		`{"medical_condition":"cancer chemotherapy treatment","treatment_details":"surgery","insurance_coverage":"no insurance"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	payload := decodeBody(t, res)
	recommendation, ok := payload["recommendation"].(map[string]any)
	if !ok {
		t.Fatalf("missing recommendation in %v", payload)
	}
	amount, ok := recommendation["recommended_amount"].(float64)
	if !ok || int(amount)%5000 != 0 {
		t.Fatalf("recommended_amount %v not a multiple of 5000", recommendation["recommended_amount"])
	}
	if _, ok := payload["condition_analysis"].(map[string]any); !ok {
		t.Fatalf("missing condition_analysis in %v", payload)
	}
}

func TestAnalyzeDocumentTypeHandling(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodPost, "/v1/verification/analyze-document",
		`{"document_text":"Patient: Jane Doe, treated 01/15/2024","document_type":"hologram"}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown document type, got %d", res.Code)
	}
	if !strings.Contains(decodeBody(t, res)["error"].(string), "unknown document type") {
		t.Fatalf("unexpected error body %q", res.Body.String())
	}

	res = doRequest(t, handler, http.MethodPost, "/v1/verification/analyze-document",
		`{"document_text":"Patient: Jane Doe, diagnosis recorded by physician on 01/15/2024"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	analysis := decodeBody(t, res)["analysis"].(map[string]any)
	if analysis["document_type"] != "medical_record" {
		t.Fatalf("expected default medical_record, got %v", analysis["document_type"])
	}
}

func TestVerifyCampaignRequiresCampaignData(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	for _, body := range []string{
		`{"documents":[]}`,
		`{"campaign_data":null,"documents":[]}`,
		`{"campaign_data":{},"documents":[]}`,
	} {
		res := doRequest(t, handler, http.MethodPost, "/v1/verification/verify-campaign", body)
		if res.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, res.Code)
		}
		if decodeBody(t, res)["error"] != "campaign_data is required" {
			t.Fatalf("body %q: unexpected error body %q", body, res.Body.String())
		}
	}

	res := doRequest(t, handler, http.MethodPost, "/v1/verification/verify-campaign",
		`{"campaign_data":{"id":"c-1"},"documents":[{"type":"mystery","text":"whatever"}]}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown document type, got %d", res.Code)
	}
}

func TestFraudDetection(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodPost, "/v1/verification/fraud-detection", `{"campaign_data":{}}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty campaign_data, got %d", res.Code)
	}
	if decodeBody(t, res)["error"] != "campaign_data is required" {
		t.Fatalf("unexpected error body %q", res.Body.String())
	}

	res = doRequest(t, handler, http.MethodPost, "/v1/verification/fraud-detection",
		`{"campaign_data":{"goal_amount":1000000,"description":"help"}}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	assessment := decodeBody(t, res)["assessment"].(map[string]any)
	if assessment["risk_level"] != "HIGH" {
		t.Fatalf("expected HIGH risk, got %v", assessment["risk_level"])
	}
}

func TestDonorProfileRequiresID(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodPost, "/v1/donor/profile", `{}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
	if decodeBody(t, res)["error"] != "id is required" {
		t.Fatalf("unexpected error body %q", res.Body.String())
	}

	res = doRequest(t, handler, http.MethodPost, "/v1/donor/profile",
		`{"id":"d-1","giving_history":[{"amount":50,"campaign_category":"cancer"}]}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	profile := decodeBody(t, res)["profile"].(map[string]any)
	if profile["donor_id"] != "d-1" {
		t.Fatalf("unexpected profile %v", profile)
	}
}

func TestDonorMatching(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodPost, "/v1/donor/matching",
		`{"donor_data":{"id":"d-1"},"available_campaigns":[{"id":"c-1"}],"strategy":"psychic"}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown strategy, got %d", res.Code)
	}

	res = doRequest(t, handler, http.MethodPost, "/v1/donor/matching", `{"donor_data":{"id":"d-1"}}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing campaigns, got %d", res.Code)
	}

	res = doRequest(t, handler, http.MethodPost, "/v1/donor/matching",
		`{"donor_data":{},"available_campaigns":[{"id":"c-1"}]}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty donor_data, got %d", res.Code)
	}
	if decodeBody(t, res)["error"] != "donor_data is required" {
		t.Fatalf("unexpected error body %q", res.Body.String())
	}

	body := `{"donor_data":{"id":"d-1","location":{"city":"Austin"}},` +
		`"available_campaigns":[{"id":"c-1","category":"emergency","location":{"city":"Austin"}}]}`
	res = doRequest(t, handler, http.MethodPost, "/v1/donor/matching", body)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	result := decodeBody(t, res)["result"].(map[string]any)
	if result["strategy_used"] != "hybrid" {
		t.Fatalf("expected hybrid default, got %v", result["strategy_used"])
	}
	if result["total_matches"].(float64) < 1 {
		t.Fatalf("expected at least one match: %v", result)
	}
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodGet, "/healthz", "")
	if res.Code != http.StatusOK {
		t.Fatalf("healthz expected 200, got %d", res.Code)
	}

	res = doRequest(t, handler, http.MethodGet, "/health", "")
	if res.Code != http.StatusOK {
		t.Fatalf("health expected 200, got %d", res.Code)
	}
	services := decodeBody(t, res)["services"].(map[string]any)
	for _, module := range []string{"campaign_advisor", "document_verifier", "donor_matcher"} {
		if services[module] != "operational" {
			t.Fatalf("module %s not operational: %v", module, services)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodGet, "/metrics", "")
	if res.Code != http.StatusOK {
		t.Fatalf("metrics expected 200, got %d", res.Code)
	}
}

func TestInvalidJSONReturns400(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodPost, "/v1/campaign/suggestions", `{not json`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
	if decodeBody(t, res)["error"] != "invalid json" {
		t.Fatalf("unexpected error body %q", res.Body.String())
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	handler := newTestHandler(t, config.Config{})

	res := doRequest(t, handler, http.MethodGet, "/healthz", "")
	if res.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header")
	}
}
