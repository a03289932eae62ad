package upstream

import (
	"net/http"

	"bookline-schedule/config"

	"github.com/sirupsen/logrus"
)

// NewHTTPClient builds the client used for all upstream bookings-API calls.
// The timeout bounds the whole request; a timed-out call is a failure, never
// a silent success.
func NewHTTPClient(cfg config.UpstreamConfig) *http.Client {
	logrus.Infof("Upstream bookings API at %s (timeout %s)", cfg.BaseURL, cfg.Timeout)

	return &http.Client{
		Timeout: cfg.Timeout,
	}
}
