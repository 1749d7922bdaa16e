package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SearchProducts keeps products whose display name, brand or flavor
// contain query. Matching is a case- and accent-insensitive substring
// test: "cafe" finds "Café". A blank query returns list as is.
func SearchProducts(list []ProductDisplay, query string) []ProductDisplay {
	if strings.TrimSpace(query) == "" {
		return list
	}
	q := normalize(query)

	out := make([]ProductDisplay, 0, len(list))
	for _, p := range list {
		text := p.DisplayName + " " + p.Brand + " " + p.Flavor
		if strings.Contains(normalize(text), q) {
			out = append(out, p)
		}
	}
	return out
}

// SearchGroupedProducts is SearchProducts for groups. The searchable text
// is the group name, its brand and the flavors of every member.
func SearchGroupedProducts(groups []GroupedProduct, query string) []GroupedProduct {
	if strings.TrimSpace(query) == "" {
		return groups
	}
	q := normalize(query)

	out := make([]GroupedProduct, 0, len(groups))
	for _, g := range groups {
		flavors := make([]string, len(g.Products))
		for i, p := range g.Products {
			flavors[i] = p.Flavor
		}
		text := g.Name + " " + g.Brand + " " + strings.Join(flavors, " ")
		if strings.Contains(normalize(text), q) {
			out = append(out, g)
		}
	}
	return out
}

// normalize lowercases s, decomposes it (NFD) and strips combining
// diacritical marks (U+0300..U+036F).
func normalize(s string) string {
	s = norm.NFD.String(strings.ToLower(s))
	return strings.Map(func(r rune) rune {
		if r >= 0x0300 && r <= 0x036F {
			return -1
		}
		return r
	}, s)
}
