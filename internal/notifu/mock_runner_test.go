package notifu

import (
	"sync"
)

type runCall struct {
	Path string
	Args []string
}

// mockRunner records calls and returns a configured error.
type mockRunner struct {
	mu    sync.Mutex
	err   error
	calls []runCall
	fn    func(path string, args []string) error
}

func (m *mockRunner) Run(path string, args []string) error {
	m.mu.Lock()
	m.calls = append(m.calls, runCall{Path: path, Args: args})
	fn, err := m.fn, m.err
	m.mu.Unlock()

	if fn != nil {
		return fn(path, args)
	}
	return err
}

func (m *mockRunner) Calls() []runCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]runCall(nil), m.calls...)
}
