package bootstrap

import (
	"fmt"

	"github.com/businessintelli/savelife/internal/config"
	"github.com/businessintelli/savelife/internal/core/knowledge"
	"github.com/businessintelli/savelife/internal/core/ports"
	"github.com/businessintelli/savelife/internal/core/usecase"
	"github.com/businessintelli/savelife/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Advisor  ports.CampaignAdvisor
	Verifier ports.DocumentVerifier
	Matcher  ports.DonorMatcher

	Metrics *metrics.HTTPServerMetrics
}

func New(cfg config.Config) (*App, error) {
	kb, err := knowledge.Load()
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	return &App{
		Config:   cfg,
		Advisor:  usecase.NewAdvisorUseCase(kb),
		Verifier: usecase.NewVerifierUseCase(kb, usecase.VerifierOptions{}),
		Matcher:  usecase.NewMatcherUseCase(kb, usecase.MatcherOptions{}),
		Metrics:  metrics.NewHTTPServerMetrics("savelife-ai"),
	}, nil
}
