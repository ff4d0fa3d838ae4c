package schema

import (
	"plucheck/internal/match"
	"plucheck/item"
)

func normalize(value string) string {
	return match.NormalizeHeader(value)
}

// Product is the general-merchandise schema. Alias lists collect every
// header spelling seen in supplier files so far.
func Product() Schema {
	return Schema{
		Name:        "product",
		IdentityKey: item.KeyPLUCode,
		Fields: []Field{
			{Key: item.KeyPLUCode, Aliases: []string{"plu code", "plu", "plucode", "code"}, Required: true},
			{Key: item.KeyDescription, Aliases: []string{"description", "desc", "product description"}, Required: true},
			{Key: item.KeySubgroup, Aliases: []string{"sub group", "subgroup", "sub grp"}},
			{Key: item.KeySupplierCode, Aliases: []string{"3 digit supplier", "supplier code", "3 digit supplier code"}},
			{Key: item.KeySeason, Aliases: []string{"season"}},
			{Key: item.KeyMainSupplier, Aliases: []string{"main supplier", "supplier"}},
			{Key: item.KeyCostPrice, Aliases: []string{"cost price", "cost"}},
			{Key: item.KeyBarcode, Aliases: []string{"barcode", "bar code", "ean"}},
			{Key: item.KeyVATRate, Aliases: []string{"vat rate", "vat", "vat code"}},
			{Key: item.KeyRRP, Aliases: []string{"rrp", "recommended retail price"}},
			{Key: item.KeySellingPrice, Aliases: []string{"selling price", "sell price", "retail price"}},
			{Key: item.KeyStgPrice, Aliases: []string{"stg price", "trade price", "sterling price"}},
			{Key: item.KeyTariffCode, Aliases: []string{"tarriff code", "tariff code", "tariff"}},
			{Key: item.KeyWeb, Aliases: []string{"web", "web item"}},
		},
		Rules: Rules{
			IdentityName:      "PLU Code",
			IdentityMaxLen:    15,
			DescriptionMaxLen: 50,
		},
		Build: func(values map[string]string, line int) item.Item {
			return item.NewProduct(values, line)
		},
	}
}
