package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// RateLimitError is a 429 from the backend.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	msg := "rate limited"
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	return describe(e.Provider, msg, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// InvalidResponseError means the content did not match the schema the
// request asked for. Schema is that schema's name, e.g. "walkthrough".
type InvalidResponseError struct {
	Provider string
	Schema   string
	Content  json.RawMessage
	Err      error
}

func (e *InvalidResponseError) Error() string {
	return describe(e.Provider, joinWords("invalid", e.Schema, "response"), e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// UnavailableError wraps transport failures and 5xx responses.
type UnavailableError struct {
	Provider string
	Err      error
}

func (e *UnavailableError) Error() string {
	return describe(e.Provider, "provider unavailable", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError means structured output hit MaxTokens before the
// schema's object was complete.
type TruncatedError struct {
	Provider string
	Schema   string
	Content  json.RawMessage
}

func (e *TruncatedError) Error() string {
	return describe(e.Provider, joinWords(e.Schema, "response truncated at max tokens"), nil)
}

// attribute fills in the provider name on a typed error that lacks one.
func attribute(err error, provider string) error {
	var (
		rl *RateLimitError
		ir *InvalidResponseError
		un *UnavailableError
		tr *TruncatedError
	)
	switch {
	case errors.As(err, &rl):
		if rl.Provider == "" {
			rl.Provider = provider
		}
	case errors.As(err, &ir):
		if ir.Provider == "" {
			ir.Provider = provider
		}
	case errors.As(err, &un):
		if un.Provider == "" {
			un.Provider = provider
		}
	case errors.As(err, &tr):
		if tr.Provider == "" {
			tr.Provider = provider
		}
	}
	return err
}

func describe(provider, msg string, err error) string {
	if provider != "" {
		msg = provider + ": " + msg
	} else {
		msg = "llm: " + msg
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	return msg
}

func joinWords(words ...string) string {
	var out []string
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
