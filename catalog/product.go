package catalog

// Table is the remote table the catalog reads from.
const Table = "products"

// OrderBy is the column the store must sort by (ascending).
const OrderBy = "name"

// Columns is the projection requested from the store, in scan order.
var Columns = []string{
	"id", "name", "brand", "flavor", "category", "size", "price",
	"stock", "fragile", "description", "imageurl", "imagealt", "active",
}

// Product is a row of the remote products table.
// Flavor is optional; the empty string means "no flavor".
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Flavor      string  `json:"flavor,omitempty"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Fragile     bool    `json:"fragile"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageurl"`
	ImageAlt    string  `json:"imagealt"`
	Active      bool    `json:"active"`
}

// ProductDisplay is a Product plus the name shown to shoppers.
type ProductDisplay struct {
	Product
	DisplayName string `json:"displayName"`
}

// NewProductDisplay derives the display record for p.
// DisplayName is "Name Flavor" when a flavor is set, otherwise Name.
func NewProductDisplay(p Product) ProductDisplay {
	name := p.Name
	if p.Flavor != "" {
		name = p.Name + " " + p.Flavor
	}
	return ProductDisplay{Product: p, DisplayName: name}
}

// Filters lists the distinct categories and brands of a product list.
type Filters struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// GroupedProduct aggregates every variant sharing a (name, brand) pair.
// Products is sorted by price ascending; the first entry is the primary
// product and supplies Category, Brand, ImageURL, ImageAlt and BasePrice.
type GroupedProduct struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand"`
	Category  string           `json:"category"`
	ImageURL  string           `json:"imageurl"`
	ImageAlt  string           `json:"imagealt"`
	BasePrice float64          `json:"basePrice"`
	Products  []ProductDisplay `json:"products"`
}
