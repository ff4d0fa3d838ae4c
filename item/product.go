package item

// Product is one general-merchandise row from a new-product upload. All
// attributes keep the raw cell text; prices stay unparsed so the decimal
// checks see exactly what the spreadsheet holds.
type Product struct {
	PLUCode      string
	Description  string
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
	Web          string
	OriginLine   int
}

// NewProduct builds a Product from resolved cell values keyed by canonical
// field key. Unresolved fields are simply absent from the map.
func NewProduct(values map[string]string, line int) *Product {
	return &Product{
		PLUCode:      values[KeyPLUCode],
		Description:  values[KeyDescription],
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
		Web:          values[KeyWeb],
		OriginLine:   line,
	}
}

func (p *Product) Identity() string { return p.PLUCode }

func (p *Product) Label() string { return "Product" }

func (p *Product) Line() int { return p.OriginLine }

func (p *Product) KeyParts() []string { return []string{p.PLUCode} }

func (p *Product) Barcode() string { return p.BarcodeValue }

func (p *Product) Fields() []Field {
	return []Field{
		{Name: KeyPLUCode, Value: p.PLUCode},
		{Name: KeyDescription, Value: p.Description},
		{Name: KeySubgroup, Value: p.Subgroup},
		{Name: KeySupplierCode, Value: p.SupplierCode},
		{Name: KeySeason, Value: p.Season},
		{Name: KeyMainSupplier, Value: p.MainSupplier},
		{Name: KeyCostPrice, Value: p.CostPrice},
		{Name: KeyBarcode, Value: p.BarcodeValue},
		{Name: KeyVATRate, Value: p.VATRate},
		{Name: KeyRRP, Value: p.RRP},
		{Name: KeySellingPrice, Value: p.SellingPrice},
		{Name: KeyStgPrice, Value: p.StgPrice},
		{Name: KeyTariffCode, Value: p.TariffCode},
		{Name: KeyWeb, Value: p.Web},
	}
}

func (p *Product) Prices() []Field {
	return []Field{
		{Name: "cost price", Value: p.CostPrice},
		{Name: "rrp", Value: p.RRP},
		{Name: "selling price", Value: p.SellingPrice},
		{Name: "trade price", Value: p.StgPrice},
	}
}
