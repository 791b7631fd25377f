package checker

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MimoJanra/CertPulse/internal/models"
)

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
	fail     bool
}

func (f *fakeNotifier) Notify(message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("webhook unreachable")
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func fixedFetch(expiry time.Time) FetchFunc {
	return func(host string, port int, timeout time.Duration) (time.Time, error) {
		return expiry, nil
	}
}

func failingFetch(host string, port int, timeout time.Duration) (time.Time, error) {
	return time.Time{}, &FetchError{Kind: ErrConnection, Err: errors.New("connection refused")}
}

func newTestChecker(fetch FetchFunc, notifier Notifier, out, errOut io.Writer) *SiteChecker {
	return &SiteChecker{
		Fetch:    fetch,
		Notifier: notifier,
		Timeout:  time.Second,
		Out:      out,
		ErrOut:   errOut,
		now:      func() time.Time { return baseTime },
	}
}

func TestCheckOKNoNotification(t *testing.T) {
	var out, errOut bytes.Buffer
	notifier := &fakeNotifier{}
	th := models.Thresholds{WarningDays: 30, ErrorDays: 7}
	expiry := baseTime.Add(45 * 24 * time.Hour)

	sc := newTestChecker(fixedFetch(expiry), notifier, &out, &errOut)
	res := sc.Check(models.Endpoint{Host: "example.com", Port: 443, Label: "example.com"}, th)

	if res.Status != models.StatusOK || res.DaysRemaining != 45 {
		t.Errorf("result = (%s, %d), expected (OK, 45)", res.Status, res.DaysRemaining)
	}
	if notifier.count() != 0 {
		t.Errorf("OK status triggered %d notifications, expected none", notifier.count())
	}
	line := out.String()
	want := "example.com (example.com:443) -> Expires: " + expiry.Format(time.RFC3339) + " (45 days) [OK]\n"
	if line != want {
		t.Errorf("output line = %q, expected %q", line, want)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected error output: %q", errOut.String())
	}
}

func TestCheckErrorNotifiesOnce(t *testing.T) {
	var out, errOut bytes.Buffer
	notifier := &fakeNotifier{}
	th := models.Thresholds{WarningDays: 30, ErrorDays: 7}
	expiry := baseTime.Add(5 * 24 * time.Hour)

	sc := newTestChecker(fixedFetch(expiry), notifier, &out, &errOut)
	res := sc.Check(models.Endpoint{Host: "example.com", Port: 443, Label: "prod"}, th)

	if res.Status != models.StatusError || res.DaysRemaining != 5 {
		t.Errorf("result = (%s, %d), expected (ERROR, 5)", res.Status, res.DaysRemaining)
	}
	if notifier.count() != 1 {
		t.Errorf("expected exactly one notification, got %d", notifier.count())
	}
	if ExitCode([]models.CheckResult{res}) != 2 {
		t.Errorf("ERROR result should aggregate to exit code 2")
	}
}

func TestCheckWarningNotifiesOnce(t *testing.T) {
	var out, errOut bytes.Buffer
	notifier := &fakeNotifier{}
	th := models.Thresholds{WarningDays: 30, ErrorDays: 7}

	sc := newTestChecker(fixedFetch(baseTime.Add(20*24*time.Hour)), notifier, &out, &errOut)
	res := sc.Check(models.Endpoint{Host: "example.com", Port: 443, Label: "example.com"}, th)

	if res.Status != models.StatusWarning {
		t.Errorf("expected WARNING, got %s", res.Status)
	}
	if notifier.count() != 1 {
		t.Errorf("expected exactly one notification, got %d", notifier.count())
	}
}

func TestCheckFetchFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	notifier := &fakeNotifier{}
	th := models.Thresholds{WarningDays: 30, ErrorDays: 7}

	sc := newTestChecker(failingFetch, notifier, &out, &errOut)
	res := sc.Check(models.Endpoint{Host: "down.example.com", Port: 443, Label: "down"}, th)

	if res.Status != models.StatusError {
		t.Errorf("expected ERROR, got %s", res.Status)
	}
	if res.DaysRemaining != models.DaysUnknown {
		t.Errorf("expected sentinel %d for unknown expiry, got %d", models.DaysUnknown, res.DaysRemaining)
	}
	if res.ExpiresAt != "" {
		t.Errorf("expected empty expiry on retrieval failure, got %q", res.ExpiresAt)
	}
	if out.Len() != 0 {
		t.Errorf("failure line leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "down (down.example.com:443) -> ERROR retrieving certificate:") {
		t.Errorf("error line = %q, missing failure prefix", errOut.String())
	}
	if notifier.count() != 1 {
		t.Errorf("expected a failure notification attempt, got %d", notifier.count())
	}
}

func TestCheckNotifierFailureIsSwallowed(t *testing.T) {
	var out, errOut bytes.Buffer
	notifier := &fakeNotifier{fail: true}
	th := models.Thresholds{WarningDays: 30, ErrorDays: 7}

	sc := newTestChecker(fixedFetch(baseTime.Add(-24*time.Hour)), notifier, &out, &errOut)
	res := sc.Check(models.Endpoint{Host: "example.com", Port: 443, Label: "example.com"}, th)

	if res.Status != models.StatusExpired || res.DaysRemaining != -1 {
		t.Errorf("notifier failure changed the result: (%s, %d)", res.Status, res.DaysRemaining)
	}
}

func TestCheckFailureIsolation(t *testing.T) {
	var out, errOut bytes.Buffer
	th := models.Thresholds{WarningDays: 30, ErrorDays: 7}
	good := baseTime.Add(60 * 24 * time.Hour)

	fetch := func(host string, port int, timeout time.Duration) (time.Time, error) {
		if host == "broken.example.com" {
			return time.Time{}, &FetchError{Kind: ErrHandshake, Err: errors.New("handshake failed")}
		}
		return good, nil
	}

	sc := newTestChecker(fetch, nil, &out, &errOut)
	endpoints := []models.Endpoint{
		{Host: "a.example.com", Port: 443, Label: "a"},
		{Host: "broken.example.com", Port: 443, Label: "broken"},
		{Host: "b.example.com", Port: 443, Label: "b"},
	}

	var failed, healthy int
	for _, ep := range endpoints {
		res := sc.Check(ep, th)
		if res.DaysRemaining == models.DaysUnknown {
			failed++
		} else if res.Status == models.StatusOK && res.DaysRemaining == 60 {
			healthy++
		}
	}

	if failed != 1 || healthy != 2 {
		t.Errorf("expected 1 failed and 2 healthy results, got %d and %d", failed, healthy)
	}
}
