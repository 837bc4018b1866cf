package model

import "testing"

func photos(ids ...string) []*Photo {
	list := make([]*Photo, 0, len(ids))
	for _, id := range ids {
		list = append(list, &Photo{ID: id})
	}
	return list
}

func ids(r *SearchResults) []string {
	out := make([]string, 0, r.Len())
	for _, p := range r.Photos {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSearchResults(t *testing.T) {
	r := NewSearchResults("cats", nil)

	if r.Term != "cats" {
		t.Errorf("Expected term 'cats', got '%s'", r.Term)
	}
	if r.ID == "" {
		t.Error("Expected a generated ID")
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty result set, got %d", r.Len())
	}
	if r.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	if other := NewSearchResults("cats", nil); other.ID == r.ID {
		t.Error("Expected unique IDs per result set")
	}
}

func TestSearchResults_AtAndIndex(t *testing.T) {
	r := NewSearchResults("dogs", photos("a", "b", "c"))

	if r.At(1).ID != "b" {
		t.Errorf("At(1) = %s, expected b", r.At(1).ID)
	}
	if r.At(-1) != nil || r.At(3) != nil {
		t.Error("Expected nil for out of range index")
	}
	if idx := r.Index(r.Photos[2]); idx != 2 {
		t.Errorf("Index() = %d, expected 2", idx)
	}
	if idx := r.Index(&Photo{ID: "a"}); idx != -1 {
		t.Errorf("Index() of foreign record = %d, expected -1", idx)
	}
}

func TestSearchResults_RemoveInsert(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		expected []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 0, []string{"d", "a", "b", "c"}},
		{"past end appends", 1, 10, []string{"a", "c", "d", "b"}},
		{"negative clamps to front", 2, -4, []string{"c", "a", "b", "d"}},
	}

	for _, test := range tests {
		r := NewSearchResults("x", photos("a", "b", "c", "d"))
		p := r.Remove(test.from)
		r.Insert(test.to, p)
		if got := ids(r); !equalIDs(got, test.expected) {
			t.Errorf("%s: got %v, expected %v", test.name, got, test.expected)
		}
	}

	r := NewSearchResults("x", photos("a"))
	if r.Remove(5) != nil {
		t.Error("Expected nil when removing out of range")
	}
}

func TestPosition_String(t *testing.T) {
	if got := NewPosition(1, 7).String(); got != "1:7" {
		t.Errorf("String() = %s, expected 1:7", got)
	}
}
