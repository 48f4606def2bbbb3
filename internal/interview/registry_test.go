package interview

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_CreateAndGet(t *testing.T) {
	r := NewRegistry()
	s := r.Create("s1", "Dana", "todo app")

	got, err := r.Get("s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Fatal("Get returned a different session")
	}
	if got.StudentName != "Dana" || got.ProjectName != "todo app" {
		t.Fatalf("metadata lost: %+v", got)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRegistry_CreateReplacesExisting(t *testing.T) {
	r := NewRegistry()
	old := r.Create("s1", "", "")
	old.QuestionCount = 5

	fresh := r.Create("s1", "", "")
	got, _ := r.Get("s1")
	if got != fresh || got.QuestionCount != 0 {
		t.Fatal("duplicate create must restart the session")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Len())
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	r.Create("s1", "", "")

	if err := r.Remove("s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Get("s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatal("session still present after Remove")
	}
	if err := r.Remove("s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSession_MutexSerializesAppends(t *testing.T) {
	r := NewRegistry()
	s := r.Create("s1", "", "")

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Lock()
			s.appendExchange(KindQuestion, "q")
			s.appendExchange(KindStudentResponse, "a")
			s.Unlock()
		}()
	}
	wg.Wait()

	if len(s.History) != 2*n {
		t.Fatalf("lost appends: expected %d entries, got %d", 2*n, len(s.History))
	}
}
