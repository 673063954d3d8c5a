package httpadapter

import (
	"net/http"

	"github.com/businessintelli/savelife/internal/core/domain"
)

func (rt *Router) healthz(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// health exercises one trivial call into each scoring module so a wiring or
// knowledge-base defect surfaces here instead of on live traffic.
func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	services := map[string]string{
		"campaign_advisor": probe(func() {
			rt.advisor.ClassifyCondition("health check")
		}),
		"document_verifier": probe(func() {
			rt.verifier.DetectFraud(domain.CampaignData{GoalAmount: 5000, Description: "health check"}, nil)
		}),
		"donor_matcher": probe(func() {
			rt.matcher.BuildProfile(domain.DonorData{ID: "health-check"})
		}),
	}

	status := http.StatusOK
	overall := "healthy"
	for _, state := range services {
		if state != "operational" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}
	}

	writeJSON(w, status, map[string]any{
		"status":    overall,
		"services":  services,
		"timestamp": rt.timestamp(),
	})
}

func probe(fn func()) (state string) {
	state = "operational"
	defer func() {
		if recover() != nil {
			state = "unavailable"
		}
	}()
	fn()
	return state
}
