package core

import "testing"

func TestRegistryRegisterResolveUnregister(t *testing.T) {
	r := NewRegistry()

	a := NewClient()
	a.ID = "u1"
	if replaced := r.Register("u1", a); replaced {
		t.Fatal("first registration should not report a replacement")
	}
	if r.Size() != 1 {
		t.Fatalf("expected size 1, got %d", r.Size())
	}

	got, ok := r.Resolve("u1")
	if !ok || got != a {
		t.Fatalf("resolve returned %v, %v", got, ok)
	}

	if !r.Unregister(a) {
		t.Fatal("unregister should remove the entry")
	}
	if _, ok := r.Resolve("u1"); ok {
		t.Fatal("entry should be gone after unregister")
	}
	if r.Unregister(a) {
		t.Fatal("second unregister should be a no-op")
	}
}

func TestRegistryDuplicateIDReplaces(t *testing.T) {
	r := NewRegistry()

	first := NewClient()
	first.ID = "u1"
	second := NewClient()
	second.ID = "u1"

	r.Register("u1", first)
	if replaced := r.Register("u1", second); !replaced {
		t.Fatal("second registration should report a replacement")
	}
	if r.Size() != 1 {
		t.Fatalf("expected size 1 after replacement, got %d", r.Size())
	}

	// The evicted connection can no longer remove the entry.
	if r.Unregister(first) {
		t.Fatal("evicted connection must not unregister its replacement")
	}
	got, _ := r.Resolve("u1")
	if got != second {
		t.Fatal("replacement should still be registered")
	}
}

func TestRegistryUnregisterUnidentifiedClient(t *testing.T) {
	r := NewRegistry()

	// A connection that never sent init has no registry entry.
	if r.Unregister(NewClient()) {
		t.Fatal("unidentified client should be a no-op")
	}
}

func TestRegistryAllSnapshot(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		c := NewClient()
		c.ID = id
		r.Register(id, c)
	}

	if got := len(r.All()); got != 3 {
		t.Fatalf("expected 3 clients in snapshot, got %d", got)
	}
}
