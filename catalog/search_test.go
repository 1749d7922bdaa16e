package catalog

import (
	"reflect"
	"testing"
)

func display(ps ...Product) []ProductDisplay {
	out := make([]ProductDisplay, len(ps))
	for i, p := range ps {
		out[i] = NewProductDisplay(p)
	}
	return out
}

func ids(list []ProductDisplay) []int64 {
	out := make([]int64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestNewProductDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   Product
		want string
	}{
		{"with flavor", Product{Name: "Milk", Flavor: "Chocolate"}, "Milk Chocolate"},
		{"no flavor", Product{Name: "Milk"}, "Milk"},
		{"empty name", Product{Flavor: "Fresa"}, " Fresa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewProductDisplay(tt.in)
			if got.DisplayName != tt.want {
				t.Fatalf("DisplayName = %q, want %q", got.DisplayName, tt.want)
			}
			if got.Product != tt.in {
				t.Fatal("embedded product must be copied unchanged")
			}
		})
	}
}

func TestSearchProducts(t *testing.T) {
	list := display(
		Product{ID: 1, Name: "Espresso", Brand: "Café", Active: true},
		Product{ID: 2, Name: "Milk", Brand: "Lala", Flavor: "Chocolate", Active: true},
		Product{ID: 3, Name: "Iso 100", Brand: "Dymatize", Flavor: "Piña Colada", Active: true},
	)

	tests := []struct {
		query string
		want  []int64
	}{
		{"cafe", []int64{1}},
		{"CAFE", []int64{1}},
		{"Café", []int64{1}},
		{"milk choc", []int64{2}},
		{"pina", []int64{3}},
		{"PIÑA", []int64{3}},
		{"a", []int64{1, 2, 3}},
		{"nothing", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ids(SearchProducts(list, tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SearchProducts(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// A blank query returns the input itself.
func TestSearchProducts_BlankQuery(t *testing.T) {
	list := display(Product{ID: 1, Name: "Milk"}, Product{ID: 2, Name: "Cola"})
	for _, q := range []string{"", "   ", "\t\n"} {
		got := SearchProducts(list, q)
		if len(got) != len(list) || &got[0] != &list[0] {
			t.Fatalf("query %q: want the input slice back", q)
		}
	}
}

func TestSearchProducts_Idempotent(t *testing.T) {
	list := display(
		Product{ID: 1, Name: "Milk", Brand: "Lala"},
		Product{ID: 2, Name: "Milk", Brand: "Alpura"},
	)
	a := SearchProducts(list, "lala")
	b := SearchProducts(list, "lala")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("search must be deterministic")
	}
}

func TestSearchGroupedProducts(t *testing.T) {
	groups := GroupProducts(display(
		Product{ID: 1, Name: "Iso 100", Brand: "Dymatize", Flavor: "Fudge Brownie", Price: 1600},
		Product{ID: 2, Name: "Iso 100", Brand: "Dymatize", Flavor: "Fresa", Price: 1500},
		Product{ID: 3, Name: "Gold", Brand: "Insane Labz", Price: 440},
	))

	if got := SearchGroupedProducts(groups, "brownie"); len(got) != 1 || got[0].Name != "Iso 100" {
		t.Fatalf("flavor of a non-primary member must match: %+v", got)
	}
	if got := SearchGroupedProducts(groups, "INSANE"); len(got) != 1 || got[0].Name != "Gold" {
		t.Fatalf("brand must match case-insensitively: %+v", got)
	}
	if got := SearchGroupedProducts(groups, " "); len(got) != len(groups) {
		t.Fatal("blank query must return every group")
	}
	if got := SearchGroupedProducts(groups, "xyz"); len(got) != 0 {
		t.Fatalf("want no match, got %d", len(got))
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Café":         "cafe",
		"ÁÉÍÓÚ ñ":      "aeiou n",
		"already":      "already",
		"e\u0301":      "e", // pre-decomposed input
		"Straße":       "straße",
		"PROTEÍNA ISO": "proteina iso",
	}
	for in, want := range tests {
		if got := normalize(in); got != want {
			t.Errorf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
