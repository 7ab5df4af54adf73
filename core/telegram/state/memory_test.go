package state

import (
	"sync"
	"testing"
)

func TestMemoryStoreAbsentUntilGroupSelected(t *testing.T) {
	s := NewMemoryStore(6)
	if _, ok := s.Get(1); ok {
		t.Fatal("fresh store should report absent")
	}
	s.SetGroup(1, "КББО-12-24")
	s.SetDay(1, 2)
	cur, ok := s.Get(1)
	if !ok || cur.Group != "КББО-12-24" || cur.Day != 2 {
		t.Fatalf("Get = %+v, %v", cur, ok)
	}
	if _, ok := s.Get(2); ok {
		t.Fatal("other chats must stay absent")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestMemoryStoreSetDayWraps(t *testing.T) {
	s := NewMemoryStore(6)
	s.SetGroup(1, "g")
	for in, want := range map[int]int{6: 0, -1: 5, 11: 5, 3: 3} {
		s.SetDay(1, in)
		if cur, _ := s.Get(1); cur.Day != want {
			t.Errorf("SetDay(%d) stored %d, want %d", in, cur.Day, want)
		}
	}
}

func TestMemoryStoreSetDayUsesConfiguredRange(t *testing.T) {
	s := NewMemoryStore(5)
	s.SetDay(1, 5)
	if cur, _ := s.Get(1); cur.Day != 0 {
		t.Fatalf("SetDay(5) with 5 days stored %d, want 0", cur.Day)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero day count")
		}
	}()
	NewMemoryStore(0)
}

func TestMemoryStoreLockSerializesChat(t *testing.T) {
	s := NewMemoryStore(6)
	s.SetGroup(7, "g")
	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock(7)
			defer unlock()
			cur, _ := s.Get(7)
			s.SetDay(7, cur.Day+1)
		}()
	}
	wg.Wait()
	if cur, _ := s.Get(7); cur.Day != 0 {
		t.Fatalf("after 60 increments day = %d, want 0", cur.Day)
	}
}
