//go:build go1.18

package catalog

import (
	"strings"
	"testing"
)

// Fuzz the search normalization under arbitrary inputs.
// Guards against panics and checks that a product always finds itself.
// NOTE: We cap lengths to avoid pathological memory usage during fuzzing.
func FuzzSearch_SelfMatch(f *testing.F) {
	f.Add("Café", "Nescafé", "")
	f.Add("Milk", "Lala", "Chocolate")
	f.Add("", "", "")
	f.Add("ÁÉÍÓÚ", "Ñandú", "Piña")
	f.Add("emoji🙂", "🙂", "x")
	f.Add("long", strings.Repeat("é", 512), "flavor")

	f.Fuzz(func(t *testing.T, name, brand, flavor string) {
		const limit = 1 << 10
		if len(name) > limit {
			name = name[:limit]
		}
		if len(brand) > limit {
			brand = brand[:limit]
		}

		p := NewProductDisplay(Product{Name: name, Brand: brand, Flavor: flavor, Active: true})
		list := []ProductDisplay{p}

		// The product's own name must find it (unless it is blank).
		if strings.TrimSpace(name) != "" {
			if got := SearchProducts(list, name); len(got) != 1 {
				t.Fatalf("name %q did not match itself", name)
			}
		}
		// Upper-casing the query must not change the outcome.
		a := SearchProducts(list, brand)
		b := SearchProducts(list, strings.ToUpper(brand))
		if strings.ToLower(strings.ToUpper(brand)) == strings.ToLower(brand) && len(a) != len(b) {
			t.Fatalf("case changed result for %q: %d vs %d", brand, len(a), len(b))
		}
	})
}

// Fuzz grouping invariants: every product lands in exactly one group and
// BasePrice is the group's minimum price.
func FuzzGroup_Invariants(f *testing.F) {
	f.Add("Milk", "Lala", 30.0, "Milk", "Alpura", 28.0)
	f.Add("Cola", "Cola", 15.0, "Cola", "Cola", 12.0)
	f.Add("", "", 0.0, " ", " ", -1.0)

	f.Fuzz(func(t *testing.T, n1, b1 string, p1 float64, n2, b2 string, p2 float64) {
		list := []ProductDisplay{
			NewProductDisplay(Product{ID: 1, Name: n1, Brand: b1, Price: p1}),
			NewProductDisplay(Product{ID: 2, Name: n2, Brand: b2, Price: p2}),
		}
		groups := GroupProducts(list)

		total := 0
		for _, g := range groups {
			total += len(g.Products)
			for _, p := range g.Products {
				if p.Price < g.BasePrice {
					t.Fatalf("member price %v below BasePrice %v", p.Price, g.BasePrice)
				}
			}
		}
		if total != len(list) {
			t.Fatalf("want %d members across groups, got %d", len(list), total)
		}
	})
}
