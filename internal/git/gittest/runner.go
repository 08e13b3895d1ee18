// Package gittest provides test utilities for the git package: a scriptable
// fake Runner and on-disk fixture repositories built with go-git so tests
// never depend on a system git binary.
package gittest

import (
	"fmt"
	"strings"
	"sync"
)

// FakeRunner is a Runner whose responses are scripted per argument list.
// It records every invocation so tests can assert how often (and with what)
// git would have been called. Safe for concurrent use.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]string
	errors    map[string]error
	calls     []string
}

// NewFakeRunner returns an empty FakeRunner. Unscripted invocations fail,
// which doubles as an assertion that no unexpected git calls happen.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		responses: make(map[string]string),
		errors:    make(map[string]error),
	}
}

// Respond scripts stdout for the given git argument list.
func (f *FakeRunner) Respond(out string, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[strings.Join(args, " ")] = out
}

// Fail scripts an error for the given git argument list.
func (f *FakeRunner) Fail(err error, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[strings.Join(args, " ")] = err
}

// Output implements git.Runner.
func (f *FakeRunner) Output(dir string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.mu.Lock()
	f.calls = append(f.calls, key)
	err, failed := f.errors[key]
	out, scripted := f.responses[key]
	f.mu.Unlock()

	if failed {
		return "", err
	}
	if scripted {
		return out, nil
	}
	return "", fmt.Errorf("gittest: unscripted git invocation: git %s (dir %s)", key, dir)
}

// Calls returns a copy of all recorded invocations, each joined with spaces.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallCount returns how many recorded invocations start with the given
// argument prefix.
func (f *FakeRunner) CallCount(prefix ...string) int {
	want := strings.Join(prefix, " ")
	n := 0
	for _, c := range f.Calls() {
		if c == want || strings.HasPrefix(c, want+" ") {
			n++
		}
	}
	return n
}
