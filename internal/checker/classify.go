package checker

import (
	"math"
	"time"

	"github.com/MimoJanra/CertPulse/internal/models"
)

// Classify converts a certificate expiry instant into a status and a whole
// day count. The day count rounds down, so a certificate expired by any
// amount yields a negative number and a certificate with 0.9 days left
// yields 0.
//
// The ERROR threshold is checked before WARNING, so a configuration with
// error_days > warning_days widens the ERROR band instead of failing;
// keeping the thresholds ordered is the caller's responsibility.
func Classify(now, expiry time.Time, th models.Thresholds) (models.Status, int) {
	days := int(math.Floor(expiry.Sub(now).Hours() / 24))

	switch {
	case days < 0:
		return models.StatusExpired, days
	case days <= th.ErrorDays:
		return models.StatusError, days
	case days <= th.WarningDays:
		return models.StatusWarning, days
	default:
		return models.StatusOK, days
	}
}
