// Package summarizer is the panel's client for the local research service.
//
// A call is one POST of {"content": ..., "operations": ...} with a JSON
// content type. A 2xx response yields the raw body text. A non-2xx status
// yields *APIError (message "API ERROR: <status>"); a transport failure
// yields *NetworkError carrying the underlying cause.
//
// There is no retry, backoff, or timeout: the call completes or fails.
package summarizer
