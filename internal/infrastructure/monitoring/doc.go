/*
Package monitoring provides Prometheus metrics for the panel and research
servers.

# Metrics

- HTTP request count and latency per route template
- Panel actions (summarize, suggest, save) by outcome
- Research operations (summarize, suggest) by outcome and latency
- Process uptime plus the standard Go and process collectors

Every Metrics value owns a private registry, so two servers in one process
never collide on registration.

# Usage

	metrics := monitoring.NewMetrics("panel")
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "summarize")
	// ... call the model ...
	timer.Stop(monitoring.OutcomeSuccess)
*/
package monitoring
