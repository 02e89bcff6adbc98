package ambiguity

import (
	"testing"

	"guidepost/pkg/config"
)

func testCatalog() *Catalog {
	return New(config.DefaultConfig().Resolver.Context)
}

func TestIsAmbiguous(t *testing.T) {
	c := testCatalog()

	for _, name := range []string{"Cambridge", "cambridge", "CAMBRIDGE", "Paris", "San Jose"} {
		if !c.IsAmbiguous(name) {
			t.Errorf("IsAmbiguous(%q) = false", name)
		}
	}
	for _, name := range []string{"Seville", "Eiffel Tower", ""} {
		if c.IsAmbiguous(name) {
			t.Errorf("IsAmbiguous(%q) = true", name)
		}
	}
}

func TestCandidatesSorted(t *testing.T) {
	c := testCatalog()

	cands := c.Candidates("Cambridge")
	if len(cands) != 2 {
		t.Fatalf("got %d candidates", len(cands))
	}
	if cands[0].CountryCode != "GB" {
		t.Errorf("most popular first: got %q", cands[0].CountryCode)
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Popularity > cands[i-1].Popularity {
			t.Errorf("not sorted at index %d", i)
		}
	}
}

func TestResolveDefaultsToMostPopular(t *testing.T) {
	c := testCatalog()

	got, ok := c.Resolve("Cambridge", "")
	if !ok {
		t.Fatal("expected resolution")
	}
	if got.CountryCode != "GB" {
		t.Errorf("no context: got %s, want GB", got.CountryCode)
	}

	got, ok = c.Resolve("Paris", "a romantic weekend")
	if !ok {
		t.Fatal("expected resolution")
	}
	if got.CountryCode != "FR" {
		t.Errorf("unrelated context: got %s, want FR", got.CountryCode)
	}
}

func TestResolveWithContext(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name    string
		context string
		want    string // country code
	}{
		{"Cambridge", "visiting Harvard and MIT in Massachusetts", "US"},
		{"Cambridge", "punting on the Cam past the colleges", "GB"},
		{"Paris", "a small town in Texas", "US"},
		{"Cordoba", "the Mezquita in Andalusia", "ES"},
		{"Naples", "pizza near Vesuvius", "IT"},
		{"Naples", "gulf beaches in Florida", "US"},
		{"Santiago", "walking the Camino pilgrimage to the cathedral", "ES"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.want, func(t *testing.T) {
			got, ok := c.Resolve(tt.name, tt.context)
			if !ok {
				t.Fatal("expected resolution")
			}
			if got.CountryCode != tt.want {
				t.Errorf("got %s, want %s", got.CountryCode, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	c := testCatalog()

	first, _ := c.Resolve("Valencia", "by the sea")
	for i := 0; i < 20; i++ {
		got, _ := c.Resolve("Valencia", "by the sea")
		if got.ID != first.ID {
			t.Fatalf("iteration %d resolved %s, first was %s", i, got.ID, first.ID)
		}
	}
}

func TestResolveUnknownName(t *testing.T) {
	c := testCatalog()
	if _, ok := c.Resolve("Seville", "anything"); ok {
		t.Error("unambiguous name should not resolve")
	}
}

func TestCandidatesReturnCopies(t *testing.T) {
	c := testCatalog()

	cands := c.Candidates("Cambridge")
	cands[0].Coord.Lat = 0
	cands[0].Keywords[0] = "mutated"

	again := c.Candidates("Cambridge")
	if again[0].Coord.Lat == 0 {
		t.Error("coordinate mutation leaked into the catalog")
	}
	if again[0].Keywords[0] == "mutated" {
		t.Error("keyword mutation leaked into the catalog")
	}
}
