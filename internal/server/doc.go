// Package server exposes the bigcalc engine over HTTP.
//
// Endpoints:
//
//	POST /v1/eval   evaluate one operation, JSON in and out
//	GET  /healthz   liveness probe
//	GET  /version   build version
//	GET  /metrics   Prometheus metrics
//
// Every route runs behind SecurityMiddleware and the request metrics
// middleware. Request bodies are bounded by SecurityConfig.MaxBodyBytes and
// operands by the evaluator's bit limit.
package server
