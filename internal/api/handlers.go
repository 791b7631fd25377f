package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MimoJanra/CertPulse/internal/checker"
	"github.com/MimoJanra/CertPulse/internal/config"
	"github.com/MimoJanra/CertPulse/internal/models"
)

// Runner executes one full check run; satisfied by *checker.Orchestrator.
type Runner interface {
	Run(endpoints []models.Endpoint, th models.Thresholds) []models.CheckResult
}

type Server struct {
	Config *config.Config
	Runner Runner
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (s *Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) GetSites(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Config.Endpoints())
}

// RunChecks executes a full run against the configured endpoints and
// returns the results plus the exit code the CLI would have produced.
func (s *Server) RunChecks(w http.ResponseWriter, _ *http.Request) {
	results := s.Runner.Run(s.Config.Endpoints(), s.Config.ModelThresholds())

	report := models.RunReport{
		RunID:     uuid.NewString(),
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
		ExitCode:  checker.ExitCode(results),
		Results:   results,
	}
	writeJSON(w, http.StatusOK, report)
}
