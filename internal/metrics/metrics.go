// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics declares the Prometheus collectors of the site server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kosenfes_http_requests_total",
			Help: "Total number of HTTP requests by route pattern and status code.",
		},
		[]string{"route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kosenfes_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	PageCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kosenfes_page_cache_lookups_total",
			Help: "Page cache lookups by result (hit or miss).",
		},
		[]string{"result"},
	)

	PageRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kosenfes_page_renders_total",
		Help: "Total number of full page renders.",
	})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
