package types

import (
	"reflect"
	"testing"
)

func TestWarningsPreserveOrder(t *testing.T) {
	w := &Warnings{}
	w.Add("first")
	w.Addf("second: %d", 2)
	w.Merge([]string{"third", "fourth"})

	want := []string{"first", "second: 2", "third", "fourth"}
	if got := w.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v; want %v", got, want)
	}
	if w.Len() != 4 {
		t.Fatalf("Len() = %d; want 4", w.Len())
	}
}

func TestWarningsListNeverNil(t *testing.T) {
	w := &Warnings{}
	got := w.List()
	if got == nil {
		t.Fatal("List() returned nil for empty accumulator")
	}
	if len(got) != 0 {
		t.Fatalf("List() = %v; want empty", got)
	}
}

func TestDomainLabel(t *testing.T) {
	cases := []struct {
		domain string
		want   string
	}{
		{"example.com", "example"},
		{"www.example.com", "example"},
		{"app.stripe.com", "app"},
		{"localhost", "localhost"},
	}

	for _, c := range cases {
		if got := DomainLabel(c.domain); got != c.want {
			t.Fatalf("DomainLabel(%q) = %q; want %q", c.domain, got, c.want)
		}
	}
}
