package internal

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"
)

// FailureMessage returns a failure message for a failed test
func FailureMessage(t *testing.T, got, want interface{}) {
	t.Helper()

	gotString := TypeToString(got)
	wantString := TypeToString(want)
	t.Errorf("\nGot: %s\nwant: %s", gotString, wantString)
}

// TypeToString returns the string representation of a non-string type
func TypeToString(obj interface{}) string {
	return fmt.Sprintf("%+v", obj)
}

// AssertNoError checks for the non-existence of an error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertErrored checks for the existence of an error
func AssertErrored(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error, but got nil")
	}
}

// AssertEqual checks that the values are equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if got != want {
		FailureMessage(t, got, want)
	}
}

// AssertDeepEqual checks that the values are equal
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		FailureMessage(t, got, want)
	}
}

// AssertNotNil checks that the value is not nil
func AssertNotNil(t *testing.T, got interface{}) {
	t.Helper()

	if got == nil || (reflect.ValueOf(got).Kind() == reflect.Ptr && reflect.ValueOf(got).IsNil()) {
		t.Error("Expected a value, but got nil")
	}
}

// AssertTrue checks that the value is true
func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if got != true {
		t.Error("Expected to be true, but it wasn't")
	}
}

// Within fails the test if assert does not return within d
func Within(t *testing.T, d time.Duration, assert func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		assert()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Error("timed out")
	case <-done:
	}
}

// SequenceSource replays a fixed list of values as random numbers,
// wrapping around when it runs out. Each value is reduced modulo n.
// Handy for placing mines exactly where a test wants them: with one
// mine per pair, SequenceSource(x1, y1, x2, y2...) puts mines at (x1, y1)...
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.next%len(s.values)]
	s.next++

	return v % n
}

// Calls reports how many numbers have been drawn
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
