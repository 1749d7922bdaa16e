// Package postgres reads the catalog's products table through database/sql
// and the lib/pq driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/IvanBrykalov/catalogcache/catalog"
	_ "github.com/lib/pq" // registers the "postgres" driver
)

// listActiveQuery selects catalog.Columns of active rows ordered by name.
var listActiveQuery = fmt.Sprintf(
	`SELECT %s FROM %s WHERE active = true ORDER BY %s ASC`,
	strings.Join(catalog.Columns, ", "), catalog.Table, catalog.OrderBy,
)

// Store implements catalog.Store on a *sql.DB.
type Store struct{ db *sql.DB }

// New wraps an open database handle.
func New(db *sql.DB) *Store { return &Store{db: db} }

// Open connects to dsn with the "postgres" driver and pings it.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// ListActiveProducts implements catalog.Store.
func (s *Store) ListActiveProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, listActiveQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []catalog.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// scanProduct reads one row in catalog.Columns order. Nullable text
// columns collapse to the empty string.
func scanProduct(scan func(...any) error) (catalog.Product, error) {
	var p catalog.Product
	var flavor, category, size, desc, img, imgAlt sql.NullString
	err := scan(&p.ID, &p.Name, &p.Brand, &flavor, &category, &size,
		&p.Price, &p.Stock, &p.Fragile, &desc, &img, &imgAlt, &p.Active)
	if err != nil {
		return catalog.Product{}, err
	}
	p.Flavor = flavor.String
	p.Category = category.String
	p.Size = size.String
	p.Description = desc.String
	p.ImageURL = img.String
	p.ImageAlt = imgAlt.String
	return p, nil
}

var _ catalog.Store = (*Store)(nil)
