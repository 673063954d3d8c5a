package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/businessintelli/savelife/internal/core/domain"
)

func (rt *Router) donorProfile(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req domain.DonorData
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	profile := rt.matcher.BuildProfile(req)

	writeJSON(w, http.StatusOK, map[string]any{
		"profile":   profile,
		"timestamp": rt.timestamp(),
	})
}

func (rt *Router) donorMatching(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		DonorData          json.RawMessage   `json:"donor_data"`
		AvailableCampaigns []domain.Campaign `json:"available_campaigns"`
		Strategy           string            `json:"strategy"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	var donor domain.DonorData
	if !decodeRequiredObject(w, req.DonorData, "donor_data", &donor) {
		return
	}
	if len(req.AvailableCampaigns) == 0 {
		writeError(w, http.StatusBadRequest, "available_campaigns is required")
		return
	}

	strategy, err := domain.ParseMatchingStrategy(req.Strategy)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	profile := rt.matcher.BuildProfile(donor)
	result := rt.matcher.FindMatches(profile, req.AvailableCampaigns, strategy)
	rt.metrics.RecordMatchingRequest(serviceName, string(strategy), result.TotalMatches)

	writeJSON(w, http.StatusOK, map[string]any{
		"result":    result,
		"timestamp": rt.timestamp(),
	})
}
