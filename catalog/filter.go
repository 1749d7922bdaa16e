package catalog

import (
	"slices"
	"strings"
)

// DeriveFilters collects the sorted, distinct, trimmed, non-empty
// categories and brands of list. list is not modified.
func DeriveFilters(list []ProductDisplay) Filters {
	return Filters{
		Categories: distinct(list, func(p ProductDisplay) string { return p.Category }),
		Brands:     distinct(list, func(p ProductDisplay) string { return p.Brand }),
	}
}

func distinct(list []ProductDisplay, field func(ProductDisplay) string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, p := range list {
		v := strings.TrimSpace(field(p))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// FilterProducts keeps products matching category and brand.
// An empty selector matches everything; otherwise the comparison is exact
// and case-sensitive after trimming both sides. A whitespace-only selector
// is not empty and only matches blank values.
func FilterProducts(list []ProductDisplay, category, brand string) []ProductDisplay {
	out := make([]ProductDisplay, 0, len(list))
	for _, p := range list {
		if matches(p.Category, category) && matches(p.Brand, brand) {
			out = append(out, p)
		}
	}
	return out
}

// FilterGroupedProducts is FilterProducts for groups, matching on the
// group's category and brand.
func FilterGroupedProducts(groups []GroupedProduct, category, brand string) []GroupedProduct {
	out := make([]GroupedProduct, 0, len(groups))
	for _, g := range groups {
		if matches(g.Category, category) && matches(g.Brand, brand) {
			out = append(out, g)
		}
	}
	return out
}

func matches(have, want string) bool {
	return want == "" || strings.TrimSpace(have) == strings.TrimSpace(want)
}
