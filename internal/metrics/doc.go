// Package metrics exposes thread pool activity as Prometheus collectors.
package metrics
