package catalog

import "testing"

func TestStoreReplaceAndLookup(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
	if _, ok := s.Lookup("ABC Soup"); ok {
		t.Fatal("lookup on empty store should fail")
	}

	in := []Record{
		{Name: "ABC Soup", Source: "first"},
		{Name: "ABC Soup", Source: "second"},
		{Name: "Watercress Soup"},
	}
	s.Replace(in)
	in[0].Source = "mutated"

	r, ok := s.Lookup("ABC Soup")
	if !ok {
		t.Fatal("expected ABC Soup")
	}
	if r.Source != "first" {
		t.Fatalf("expected first duplicate, got %q", r.Source)
	}

	all := s.All()
	all[2].Name = "mutated"
	if _, ok := s.Lookup("Watercress Soup"); !ok {
		t.Fatal("All must return a copy")
	}

	s.Replace(nil)
	if s.Len() != 0 {
		t.Fatalf("expected replace to clear store, got %d", s.Len())
	}
}
