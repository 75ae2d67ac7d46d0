// Package session holds the SessionStore backends. Each backend keeps the
// entries of many browser sessions and hands out stores scoped to one of
// them through ForSession.
package session

import (
	"time"

	"github.com/smsportal/console-gateway/internal/pkg/metrics"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

func observe(backend, op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.SessionStoreOpsTotal.WithLabelValues(backend, op, result).Inc()
	metrics.SessionOpDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())
}
