/*
Package tracing provides lightweight request tracing between the panel and
the research service.

# Overview

A trace starts at the panel's HTTP handler, travels with the request context
into the summarizer client, crosses to the research service as X-Trace-ID and
X-Span-ID headers and continues there. Finished spans are written to the zap
logger, so a single summarize action can be followed across both processes
by its trace_id.

# Usage

	tracer := tracing.New("panel", logger.Logger)
	router.Use(tracing.HTTPMiddleware(tracer))

	// Outbound propagation
	req.SetHeaders(tracing.Headers(ctx))

	// Manual span creation
	span, ctx := tracer.StartSpan(ctx, "operation")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
