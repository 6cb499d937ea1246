package service

import (
	"net/url"
	"strings"

	"inventory-tracker/internal/model"
)

// directiveOrder is the fixed order in which form keys are checked.
var directiveOrder = []model.DirectiveKind{
	model.DirectiveSearch,
	model.DirectiveQuantityAsc,
	model.DirectiveQuantityDesc,
	model.DirectivePriceAsc,
	model.DirectivePriceDesc,
	model.DirectiveLocation,
}

// ParseDirective picks the listing directive from submitted form values.
// When several directive keys are present the last one in check order wins.
// A key counts as present even if its value is empty.
func ParseDirective(form url.Values) model.Directive {
	directive := model.Directive{Kind: model.DirectiveNone}

	for _, kind := range directiveOrder {
		if _, ok := form[string(kind)]; !ok {
			continue
		}

		directive = model.Directive{Kind: kind}
		switch kind {
		case model.DirectiveSearch:
			directive.Term = strings.ToLower(form.Get(string(kind)))
		case model.DirectiveLocation:
			directive.Term = form.Get(string(kind))
		}
	}

	return directive
}
