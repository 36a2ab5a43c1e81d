// Package research implements the local research service the panel posts
// selections to.
//
// A request names an operation ("summarize" or "suggest"). The service
// prefixes the content with that operation's prompt, asks the Generator for
// text, and sanitizes the reply with bluemonday's UGC policy so it is safe
// to insert as markup. Unknown operations and empty content are rejected
// before any model call. Model calls go through a circuit breaker.
//
// Prompts ship embedded in prompts.yaml and can be overridden per operation
// with a YAML file of the same shape.
package research
