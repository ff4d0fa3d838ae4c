package schema

import "plucheck/item"

// Clothing is the apparel schema: a superset of the product fields plus
// size, colour, brand, product type, and country. Identity is the
// style/size/colour triple.
func Clothing() Schema {
	return Schema{
		Name:              "clothing",
		IdentityKey:       item.KeyStyleCode,
		CompositeIdentity: true,
		Fields: []Field{
			{Key: item.KeyStyleCode, Aliases: []string{"style code", "style", "stylecode", "code"}, Required: true},
			{Key: item.KeyDescription, Aliases: []string{"description", "desc", "item description"}, Required: true},
			{Key: item.KeySize, Aliases: []string{"size", "size code"}},
			{Key: item.KeyColour, Aliases: []string{"colour", "color", "colour code", "color code"}},
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
			{Key: item.KeyBrand, Aliases: []string{"brand", "brand name"}},
			{Key: item.KeyProductType, Aliases: []string{"product type", "type"}},
			{Key: item.KeyWeb, Aliases: []string{"web", "web item"}},
			{Key: item.KeyCountry, Aliases: []string{"country", "country of origin"}},
			{Key: item.KeyCountryCode, Aliases: []string{"country code"}},
		},
		Rules: Rules{
			IdentityName:      "Style Code",
			IdentityMaxLen:    12,
			ColourMaxLen:      10,
			DescriptionMaxLen: 50,
		},
		Build: func(values map[string]string, line int) item.Item {
			return item.NewClothing(values, line)
		},
	}
}
