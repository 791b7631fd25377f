package checker

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/MimoJanra/CertPulse/internal/models"
)

// Notifier delivers one alert line to an external destination. A nil
// Notifier on SiteChecker disables alerting entirely.
type Notifier interface {
	Notify(message string) error
}

// SiteChecker runs the fetch-classify-report sequence for one endpoint.
// It never returns an error: a failed retrieval degrades to an ERROR
// result so one endpoint can never abort another's check.
type SiteChecker struct {
	Fetch    FetchFunc
	Notifier Notifier
	Timeout  time.Duration
	Out      io.Writer
	ErrOut   io.Writer

	now func() time.Time
}

func NewSiteChecker(notifier Notifier, timeout time.Duration) *SiteChecker {
	return &SiteChecker{
		Fetch:    FetchNotAfter,
		Notifier: notifier,
		Timeout:  timeout,
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		now:      time.Now,
	}
}

// Check fetches and classifies one endpoint's certificate, emits the
// status line, and fires a best-effort alert for WARNING/ERROR/EXPIRED.
func (sc *SiteChecker) Check(ep models.Endpoint, th models.Thresholds) models.CheckResult {
	expiry, err := sc.Fetch(ep.Host, ep.Port, sc.Timeout)
	if err != nil {
		message := fmt.Sprintf("%s (%s:%d) -> ERROR retrieving certificate: %v",
			ep.Label, ep.Host, ep.Port, err)
		fmt.Fprintln(sc.ErrOut, message)
		sc.alert(message)

		return models.CheckResult{
			Label:         ep.Label,
			Host:          ep.Host,
			Port:          ep.Port,
			Status:        models.StatusError,
			DaysRemaining: models.DaysUnknown,
			ErrorMessage:  err.Error(),
		}
	}

	status, days := Classify(sc.now().UTC(), expiry, th)

	message := fmt.Sprintf("%s (%s:%d) -> Expires: %s (%d days) [%s]",
		ep.Label, ep.Host, ep.Port, expiry.Format(time.RFC3339), days, status)
	fmt.Fprintln(sc.Out, message)

	if status.NeedsAlert() {
		sc.alert(message)
	}

	return models.CheckResult{
		Label:         ep.Label,
		Host:          ep.Host,
		Port:          ep.Port,
		Status:        status,
		DaysRemaining: days,
		ExpiresAt:     expiry.Format(time.RFC3339),
	}
}

// alert sends the message if a notifier is configured. Delivery failures
// are logged and swallowed: alerting never changes a check's outcome.
func (sc *SiteChecker) alert(message string) {
	if sc.Notifier == nil {
		return
	}
	if err := sc.Notifier.Notify(message); err != nil {
		log.Printf("failed to send alert: %v", err)
	}
}
