package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/businessintelli/savelife/internal/core/domain"
)

func (rt *Router) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		DocumentText string `json:"document_text"`
		DocumentType string `json:"document_type"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.DocumentText) == "" {
		writeError(w, http.StatusBadRequest, "document_text is required")
		return
	}

	docType, err := domain.ParseDocumentType(req.DocumentType)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	analysis := rt.verifier.AnalyzeDocument(req.DocumentText, docType)
	rt.metrics.RecordDocumentAnalysis(serviceName, string(docType), string(analysis.VerificationStatus))

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis":  analysis,
		"timestamp": rt.timestamp(),
	})
}

func (rt *Router) verifyCampaign(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		CampaignData json.RawMessage `json:"campaign_data"`
		Documents    []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"documents"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	var campaign domain.CampaignData
	if !decodeRequiredObject(w, req.CampaignData, "campaign_data", &campaign) {
		return
	}

	documents := make([]domain.DocumentInput, 0, len(req.Documents))
	for _, doc := range req.Documents {
		docType, err := domain.ParseDocumentType(doc.Type)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		documents = append(documents, domain.DocumentInput{Type: docType, Text: doc.Text})
	}

	result := rt.verifier.VerifyCampaign(campaign, documents)
	rt.metrics.RecordCampaignVerification(serviceName, string(result.OverallStatus))

	writeJSON(w, http.StatusOK, map[string]any{
		"result":    result,
		"timestamp": rt.timestamp(),
	})
}

func (rt *Router) fraudDetection(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		CampaignData json.RawMessage     `json:"campaign_data"`
		UserHistory  *domain.UserHistory `json:"user_history"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	var campaign domain.CampaignData
	if !decodeRequiredObject(w, req.CampaignData, "campaign_data", &campaign) {
		return
	}

	assessment := rt.verifier.DetectFraud(campaign, req.UserHistory)
	rt.metrics.RecordFraudCheck(serviceName, string(assessment.RiskLevel))

	writeJSON(w, http.StatusOK, map[string]any{
		"assessment": assessment,
		"timestamp":  rt.timestamp(),
	})
}
