package catalog

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// groupKeySep joins name and brand into a partition key.
const groupKeySep = "__"

// GroupProducts merges products sharing a (name, brand) pair into one
// GroupedProduct per pair, in first-seen order.
//
// Members are stable-sorted by price; the cheapest one is the primary.
// When the same name is sold by more than one brand anywhere in list, the
// group name gets a " <brand>" suffix so the groups can be told apart.
func GroupProducts(list []ProductDisplay) []GroupedProduct {
	var (
		order   []string
		members = make(map[string][]ProductDisplay)
		brands  = make(map[string]map[string]struct{}) // name -> distinct brands
	)
	for _, p := range list {
		key := p.Name + groupKeySep + p.Brand
		if _, ok := members[key]; !ok {
			order = append(order, key)
		}
		members[key] = append(members[key], p)

		set, ok := brands[p.Name]
		if !ok {
			set = make(map[string]struct{})
			brands[p.Name] = set
		}
		set[p.Brand] = struct{}{}
	}

	out := make([]GroupedProduct, 0, len(order))
	for _, key := range order {
		ps := members[key]
		slices.SortStableFunc(ps, func(a, b ProductDisplay) int {
			return cmp.Compare(a.Price, b.Price)
		})
		primary := ps[0]

		name := primary.Name
		if len(brands[primary.Name]) > 1 {
			name = primary.Name + " " + primary.Brand
		}

		out = append(out, GroupedProduct{
			ID:        "group-" + slug(primary.Name) + "-" + slug(primary.Brand),
			Name:      name,
			Brand:     primary.Brand,
			Category:  primary.Category,
			ImageURL:  primary.ImageURL,
			ImageAlt:  primary.ImageAlt,
			BasePrice: primary.Price,
			Products:  ps,
		})
	}
	return out
}

// slug lowercases s and replaces every run of whitespace with one hyphen.
func slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte('-')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte('-')
	}
	return b.String()
}
