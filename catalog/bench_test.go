package catalog

import (
	"context"
	"strconv"
	"testing"
)

// benchList builds n display records spread over a handful of brands.
func benchList(n int) []ProductDisplay {
	brands := []string{"Dymatize", "Dragon Pharma", "Insane Labz", "Ghost", "Café Olé"}
	flavors := []string{"", "Chocolate", "Vainilla", "Fresa", "Limón"}
	out := make([]ProductDisplay, n)
	for i := range out {
		out[i] = NewProductDisplay(Product{
			ID:       int64(i),
			Name:     "Producto " + strconv.Itoa(i%40),
			Brand:    brands[i%len(brands)],
			Flavor:   flavors[i%len(flavors)],
			Category: "Proteina",
			Price:    float64(100 + i%17),
			Active:   true,
		})
	}
	return out
}

func BenchmarkSearchProducts(b *testing.B) {
	list := benchList(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SearchProducts(list, "cafe ole")
	}
}

func BenchmarkGroupProducts(b *testing.B) {
	list := benchList(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GroupProducts(list)
	}
}

// BenchmarkCatalog_HotPath measures cached reads from parallel goroutines
// (RunParallel spawns GOMAXPROCS workers).
func BenchmarkCatalog_HotPath(b *testing.B) {
	rows := make([]Product, 200)
	for i, p := range benchList(200) {
		rows[i] = p.Product
	}
	c := New(Options{Store: &fakeStore{rows: rows}})
	b.Cleanup(func() { _ = c.Close() })
	if _, err := c.Products(context.Background()); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			if _, err := c.Products(ctx); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
