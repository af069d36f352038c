package utils

import (
	raven "github.com/getsentry/raven-go"
)

var reportingEnabled bool

// EnableErrorReporting sends errors passed to ReportError to the Sentry
// project behind dsn. An empty dsn leaves reporting off.
func EnableErrorReporting(dsn string) error {
	if dsn == "" {
		return nil
	}

	if err := raven.SetDSN(dsn); err != nil {
		return err
	}

	reportingEnabled = true
	return nil
}

// ReportError forwards err to Sentry when reporting is enabled.
func ReportError(err error, tags map[string]string) {
	if !reportingEnabled || err == nil {
		return
	}

	raven.CaptureError(err, tags)
}
