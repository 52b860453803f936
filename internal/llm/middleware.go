// Package llm decorates an llmclient.Client with cross-cutting
// concerns: retries, logging, optional response caching.
package llm

import "codementor/internal/llmclient"

// Middleware decorates a Client.
type Middleware func(llmclient.Client) llmclient.Client

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner llmclient.Client, mws ...Middleware) llmclient.Client {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}
