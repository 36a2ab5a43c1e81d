/*
Package resilience provides a circuit breaker for upstream calls.

The research service calls the model API through a Breaker so that an
unavailable or failing upstream fails fast with ErrCircuitOpen instead of
holding every panel request for the full upstream latency.

# Usage

	breaker := resilience.New("gemini", resilience.Settings{
		FailureThreshold: 5,
		Cooldown:         30 * time.Second,
	})

	text, err := resilience.Call(breaker, func() (string, error) {
		return generator.Generate(ctx, prompt)
	})

# States

	Closed --[threshold failures]-> Open --[cooldown]-> Half-Open --[probe successes]-> Closed
	                                                        |
	                                                   [failure]
	                                                        v
	                                                      Open
*/
package resilience
