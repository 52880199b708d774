package view

import "testing"

func TestMemoryHistory_BackForward(t *testing.T) {
	h := NewMemoryHistory("/departments")

	var popped []string
	h.OnPopState(func(u string) { popped = append(popped, u) })

	h.Push(DepartmentDetail(3), "/departments?department=3")
	h.Push(ProductList(2), "/products?page=2")

	if got := h.Current(); got != "/products?page=2" {
		t.Fatalf("Current = %q, want /products?page=2", got)
	}

	if !h.Back() {
		t.Fatal("Back: want true")
	}
	if got := h.Current(); got != "/departments?department=3" {
		t.Errorf("Current = %q, want /departments?department=3", got)
	}
	if !h.Back() {
		t.Fatal("Back: want true")
	}
	if got := h.Current(); got != "/departments" {
		t.Errorf("Current = %q, want /departments", got)
	}
	if h.Back() {
		t.Error("Back at oldest entry: want false")
	}

	if !h.Forward() {
		t.Fatal("Forward: want true")
	}
	if !h.Forward() {
		t.Fatal("Forward: want true")
	}
	if h.Forward() {
		t.Error("Forward at newest entry: want false")
	}

	want := []string{
		"/departments?department=3",
		"/departments",
		"/departments?department=3",
		"/products?page=2",
	}
	if len(popped) != len(want) {
		t.Fatalf("popped = %v, want %v", popped, want)
	}
	for i := range want {
		if popped[i] != want[i] {
			t.Errorf("popped[%d] = %q, want %q", i, popped[i], want[i])
		}
	}
}

func TestMemoryHistory_PushTruncatesForwardTail(t *testing.T) {
	h := NewMemoryHistory("/departments")
	h.Push(DepartmentDetail(1), "/departments?department=1")
	h.Push(DepartmentDetail(2), "/departments?department=2")
	h.OnPopState(func(string) {})

	h.Back()
	h.Back()
	// A push from the middle of the stack drops the forward entries.
	h.Push(ProductList(1), "/products")

	if got := h.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	if got := h.Current(); got != "/products" {
		t.Errorf("Current = %q, want /products", got)
	}
	if h.Forward() {
		t.Error("Forward after truncating push: want false")
	}
}

func TestMemoryHistory_PushDoesNotFirePopState(t *testing.T) {
	h := NewMemoryHistory("/departments")
	fired := 0
	h.OnPopState(func(string) { fired++ })

	h.Push(DepartmentDetail(1), "/departments?department=1")
	h.Push(DepartmentDetail(2), "/departments?department=2")

	if fired != 0 {
		t.Errorf("pop callback fired %d times on Push, want 0", fired)
	}
}

func TestMemoryHistory_CallbackGetsURLNotState(t *testing.T) {
	h := NewMemoryHistory("/departments")
	// The stored state lies about the URL on purpose: consumers must
	// re-parse the URL and never trust the pushed payload.
	h.Push(ProductList(9), "/departments?department=2")
	h.OnPopState(func(u string) {
		if got := ParseURL(u); got != DepartmentDetail(2) {
			t.Errorf("re-parsed state = %+v, want %+v", got, DepartmentDetail(2))
		}
	})
	h.Back()
	if !h.Forward() {
		t.Fatal("Forward: want true")
	}
}
