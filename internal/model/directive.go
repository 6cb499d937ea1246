package model

// DirectiveKind selects how the inventory listing is filtered or sorted.
type DirectiveKind string

const (
	DirectiveNone         DirectiveKind = ""
	DirectiveSearch       DirectiveKind = "search"
	DirectiveQuantityAsc  DirectiveKind = "quantity_asc"
	DirectiveQuantityDesc DirectiveKind = "quantity_desc"
	DirectivePriceAsc     DirectiveKind = "price_asc"
	DirectivePriceDesc    DirectiveKind = "price_desc"
	DirectiveLocation     DirectiveKind = "location-button"
)

// Directive is a listing request. Term is only meaningful for search and
// location filters.
type Directive struct {
	Kind DirectiveKind
	Term string
}
