// Package llmtest provides a recording llm.Completer for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/abhishek622/interviewPrep/internal/llm"
)

// Stub returns canned responses in order and records every request.
// Once the responses run out the last one is repeated.
type Stub struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []llm.Request
}

var _ llm.Completer = (*Stub)(nil)

func New(responses ...string) *Stub {
	return &Stub{responses: responses}
}

// Failing returns a stub whose every call fails with err.
func Failing(err error) *Stub {
	return &Stub{err: err}
}

func (s *Stub) Complete(_ context.Context, req llm.Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := len(s.requests)
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", nil
	}
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Stub) Requests() []llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Request, len(s.requests))
	copy(out, s.requests)
	return out
}
