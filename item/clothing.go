package item

// Clothing is one apparel row. A style code legitimately repeats across
// sizes and colours, so the identity key is the style/size/colour triple.
type Clothing struct {
	StyleCode    string
	Description  string
	Size         string
	Colour       string
	Subgroup     string
	SupplierCode string
	Season       string
	MainSupplier string
	CostPrice    string
	BarcodeValue string
	VATRate      string
	RRP          string
	SellingPrice string
	StgPrice     string
	TariffCode   string
	Brand        string
	ProductType  string
	Web          string
	Country      string
	CountryCode  string
	OriginLine   int
}

// NewClothing builds a Clothing item from resolved cell values keyed by
// canonical field key.
func NewClothing(values map[string]string, line int) *Clothing {
	return &Clothing{
		StyleCode:    values[KeyStyleCode],
		Description:  values[KeyDescription],
		Size:         values[KeySize],
		Colour:       values[KeyColour],
		Subgroup:     values[KeySubgroup],
		SupplierCode: values[KeySupplierCode],
		Season:       values[KeySeason],
		MainSupplier: values[KeyMainSupplier],
		CostPrice:    values[KeyCostPrice],
		BarcodeValue: values[KeyBarcode],
		VATRate:      values[KeyVATRate],
		RRP:          values[KeyRRP],
		SellingPrice: values[KeySellingPrice],
		StgPrice:     values[KeyStgPrice],
		TariffCode:   values[KeyTariffCode],
		Brand:        values[KeyBrand],
		ProductType:  values[KeyProductType],
		Web:          values[KeyWeb],
		Country:      values[KeyCountry],
		CountryCode:  values[KeyCountryCode],
		OriginLine:   line,
	}
}

func (c *Clothing) Identity() string { return c.StyleCode }

func (c *Clothing) Label() string { return "Clothing item" }

func (c *Clothing) Line() int { return c.OriginLine }

func (c *Clothing) KeyParts() []string { return []string{c.StyleCode, c.Size, c.Colour} }

func (c *Clothing) Barcode() string { return c.BarcodeValue }

func (c *Clothing) Fields() []Field {
	return []Field{
		{Name: KeyStyleCode, Value: c.StyleCode},
		{Name: KeyDescription, Value: c.Description},
		{Name: KeySize, Value: c.Size},
		{Name: KeyColour, Value: c.Colour},
		{Name: KeySubgroup, Value: c.Subgroup},
		{Name: KeySupplierCode, Value: c.SupplierCode},
		{Name: KeySeason, Value: c.Season},
		{Name: KeyMainSupplier, Value: c.MainSupplier},
		{Name: KeyCostPrice, Value: c.CostPrice},
		{Name: KeyBarcode, Value: c.BarcodeValue},
		{Name: KeyVATRate, Value: c.VATRate},
		{Name: KeyRRP, Value: c.RRP},
		{Name: KeySellingPrice, Value: c.SellingPrice},
		{Name: KeyStgPrice, Value: c.StgPrice},
		{Name: KeyTariffCode, Value: c.TariffCode},
		{Name: KeyBrand, Value: c.Brand},
		{Name: KeyProductType, Value: c.ProductType},
		{Name: KeyWeb, Value: c.Web},
		{Name: KeyCountry, Value: c.Country},
		{Name: KeyCountryCode, Value: c.CountryCode},
	}
}

func (c *Clothing) Prices() []Field {
	return []Field{
		{Name: "cost price", Value: c.CostPrice},
		{Name: "rrp", Value: c.RRP},
		{Name: "selling price", Value: c.SellingPrice},
		{Name: "trade price", Value: c.StgPrice},
	}
}
