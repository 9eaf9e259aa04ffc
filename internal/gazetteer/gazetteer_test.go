package gazetteer

import "testing"

func TestMatchWordBoundaries(t *testing.T) {
	idx := NewIndex(Countries)

	tests := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{
			name:    "chad not in chadwick",
			text:    "Director Chadwick releases new film",
			notWant: []string{"Chad"},
		},
		{
			name: "chad as a word",
			text: "Fighting reported on the border of Chad",
			want: []string{"Chad"},
		},
		{
			name: "variant and capital",
			text: "The Kremlin responded to statements from Washington",
			want: []string{"Russia", "United States"},
		},
		{
			name: "case insensitive",
			text: "FRANCE and germany sign agreement",
			want: []string{"France", "Germany"},
		},
		{
			name:    "panama not in panamanian canal co",
			text:    "panama canal traffic rises",
			want:    []string{"Panama"},
			notWant: []string{"Canada"},
		},
		{
			name:    "no countries",
			text:    "Generic business update",
			notWant: []string{"United States", "China"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := make(map[string]bool)
			for _, e := range idx.Match(tt.text) {
				matched[e.Name] = true
			}
			for _, want := range tt.want {
				if !matched[want] {
					t.Errorf("Match(%q) missing %s", tt.text, want)
				}
			}
			for _, notWant := range tt.notWant {
				if matched[notWant] {
					t.Errorf("Match(%q) should not contain %s", tt.text, notWant)
				}
			}
		})
	}
}

func TestMatchReportsEntryOnce(t *testing.T) {
	idx := NewIndex(Countries)

	// Three different variants of the same country.
	got := idx.Match("Beijing says China will respond, Chinese officials added")
	count := 0
	for _, e := range got {
		if e.Name == "China" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("China reported %d times, want 1", count)
	}
}

func TestLookup(t *testing.T) {
	idx := NewIndex(Countries)

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"France", "France", true},
		{"french", "France", true},
		{"  KREMLIN ", "Russia", true},
		{"united states", "United States", true},
		{"Atlantis", "", false},
	}

	for _, tt := range tests {
		entry, ok := idx.Lookup(tt.query)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.query, ok, tt.ok)
			continue
		}
		if ok && entry.Name != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.query, entry.Name, tt.want)
		}
	}
}

func TestDuplicateVariantFirstRegisteredWins(t *testing.T) {
	entries := []Entry{
		{Name: "Alpha", Lat: 1, Lon: 1, Variants: []string{"alpha", "shared"}},
		{Name: "Beta", Lat: 2, Lon: 2, Variants: []string{"beta", "shared"}},
	}
	idx := NewIndex(entries)

	entry, ok := idx.Lookup("shared")
	if !ok {
		t.Fatal("shared variant not registered")
	}
	if entry.Name != "Alpha" {
		t.Errorf("shared variant owned by %s, want Alpha (first registered)", entry.Name)
	}

	// Beta stays reachable through its own variants.
	if entry, ok := idx.Lookup("beta"); !ok || entry.Name != "Beta" {
		t.Errorf("beta lookup failed: %v %v", entry, ok)
	}
}

func TestEntriesPreserveRegistrationOrder(t *testing.T) {
	idx := NewIndex(Countries)
	entries := idx.Entries()
	if len(entries) != len(Countries) {
		t.Fatalf("len = %d, want %d", len(entries), len(Countries))
	}
	for i := range entries {
		if entries[i].Name != Countries[i].Name {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Name, Countries[i].Name)
		}
	}
}
