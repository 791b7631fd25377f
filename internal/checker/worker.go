package checker

import (
	"sync"

	"github.com/MimoJanra/CertPulse/internal/models"
)

// Orchestrator fans one check per endpoint out over a fixed-size worker
// pool and collects the results as they complete. The pool size caps how
// many TLS handshakes are in flight at once regardless of how many
// endpoints are configured.
type Orchestrator struct {
	workers int
	checker *SiteChecker
}

func NewOrchestrator(workers int, checker *SiteChecker) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{
		workers: workers,
		checker: checker,
	}
}

// Run checks every endpoint and blocks until all checks have finished.
// Results arrive in completion order; callers must not rely on any
// correspondence with the input order.
func (o *Orchestrator) Run(endpoints []models.Endpoint, th models.Thresholds) []models.CheckResult {
	jobs := make(chan models.Endpoint)
	resultCh := make(chan models.CheckResult, len(endpoints))

	var wg sync.WaitGroup
	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ep := range jobs {
				resultCh <- o.checker.Check(ep, th)
			}
		}()
	}

	for _, ep := range endpoints {
		jobs <- ep
	}
	close(jobs)

	wg.Wait()
	close(resultCh)

	results := make([]models.CheckResult, 0, len(endpoints))
	for res := range resultCh {
		results = append(results, res)
	}
	return results
}
