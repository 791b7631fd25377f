package checker

import "github.com/MimoJanra/CertPulse/internal/models"

// ExitCode reduces a run's results to the process exit code: 2 if any
// check came back ERROR or EXPIRED, 1 if the worst was WARNING, 0
// otherwise. Highest severity wins.
func ExitCode(results []models.CheckResult) int {
	code := 0
	for _, res := range results {
		switch res.Status {
		case models.StatusError, models.StatusExpired:
			return 2
		case models.StatusWarning:
			code = 1
		}
	}
	return code
}
