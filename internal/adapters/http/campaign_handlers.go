package httpadapter

import (
	"net/http"
	"strings"

	"github.com/businessintelli/savelife/internal/core/domain"
)

func (rt *Router) campaignSuggestions(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req domain.CampaignIntake
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.MedicalCondition) == "" {
		writeError(w, http.StatusBadRequest, "medical_condition is required")
		return
	}

	suggestion := rt.advisor.GenerateSuggestion(req)
	rt.metrics.RecordClassification(serviceName, rt.advisor.ClassifyCondition(req.MedicalCondition).PrimaryCondition)

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestion": suggestion,
		"timestamp":  rt.timestamp(),
	})
}

func (rt *Router) titleSuggestions(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		Name      string `json:"name"`
		Condition string `json:"condition"`
		Treatment string `json:"treatment"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Condition) == "" {
		writeError(w, http.StatusBadRequest, "condition is required")
		return
	}

	titles := rt.advisor.SuggestTitles(req.Name, req.Condition, req.Treatment)

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": titles,
		"timestamp":   rt.timestamp(),
	})
}

func (rt *Router) goalRecommendation(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		MedicalCondition  string `json:"medical_condition"`
		TreatmentDetails  string `json:"treatment_details"`
		InsuranceCoverage string `json:"insurance_coverage"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.MedicalCondition) == "" {
		writeError(w, http.StatusBadRequest, "medical_condition is required")
		return
	}

	analysis := rt.advisor.ClassifyCondition(req.MedicalCondition)
	recommendation := rt.advisor.RecommendGoal(analysis, req.TreatmentDetails, req.InsuranceCoverage)
	rt.metrics.RecordClassification(serviceName, analysis.PrimaryCondition)

	writeJSON(w, http.StatusOK, map[string]any{
		"recommendation":     recommendation,
		"condition_analysis": analysis,
		"timestamp":          rt.timestamp(),
	})
}

func (rt *Router) storyOptimization(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		Story            string `json:"story"`
		MedicalCondition string `json:"medical_condition"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Story) == "" {
		writeError(w, http.StatusBadRequest, "story is required")
		return
	}

	analysis := rt.advisor.ClassifyCondition(req.MedicalCondition)
	result := rt.advisor.OptimizeStory(req.Story, analysis)

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis":  result,
		"timestamp": rt.timestamp(),
	})
}

func (rt *Router) writingAssistance(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		CurrentText string `json:"current_text"`
		Section     string `json:"section"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Section == "" {
		req.Section = "story"
	}

	assistance := rt.advisor.WritingAssistance(req.CurrentText, req.Section)

	writeJSON(w, http.StatusOK, map[string]any{
		"assistance": assistance,
		"section":    req.Section,
		"timestamp":  rt.timestamp(),
	})
}
