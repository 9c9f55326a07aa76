// Package health provides liveness and readiness handlers.
//
//	r.Get("/health/live", health.Liveness[*qrgen.Context])
//	r.Get("/health/ready", health.Readiness[*qrgen.Context](log,
//		health.Check{Name: "generator", Fn: gen.Healthcheck},
//	))
//
// Readiness runs every check concurrently and fails with 503 on the first
// error. Failures are logged with the check name.
package health
