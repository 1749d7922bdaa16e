package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// testDSNEnv names the database used by the integration test. The test is
// skipped when it is unset.
const testDSNEnv = "CATALOG_TEST_DATABASE_URL"

func TestListActiveQuery(t *testing.T) {
	want := "SELECT id, name, brand, flavor, category, size, price, stock, fragile, " +
		"description, imageurl, imagealt, active FROM products WHERE active = true ORDER BY name ASC"
	if listActiveQuery != want {
		t.Fatalf("query:\n got %s\nwant %s", listActiveQuery, want)
	}
}

func TestScanProduct_NullColumns(t *testing.T) {
	scan := func(dest ...any) error {
		if len(dest) != 13 {
			return errors.New("wrong column count")
		}
		*dest[0].(*int64) = 7
		*dest[1].(*string) = "Milk"
		*dest[2].(*string) = "Lala"
		// flavor, category, size, description, imageurl, imagealt stay NULL
		*dest[6].(*float64) = 30
		*dest[7].(*int) = 12
		*dest[8].(*bool) = true
		*dest[12].(*bool) = true
		return nil
	}

	p, err := scanProduct(scan)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 7 || p.Name != "Milk" || p.Brand != "Lala" || p.Price != 30 || p.Stock != 12 || !p.Fragile || !p.Active {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Flavor != "" || p.ImageURL != "" {
		t.Fatalf("NULL columns must be empty strings: %+v", p)
	}
}

func TestScanProduct_Error(t *testing.T) {
	boom := errors.New("bad row")
	if _, err := scanProduct(func(...any) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

// Requires a Postgres with a products table; see testDSNEnv.
func TestStore_Integration(t *testing.T) {
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDSNEnv)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	products, err := New(db).ListActiveProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range products {
		if !p.Active {
			t.Fatalf("inactive row %d returned", p.ID)
		}
	}
}
