package item

// Canonical field keys shared by the schemas, the loader, and the validators.
const (
	KeyPLUCode      = "plu_code"
	KeyStyleCode    = "style_code"
	KeyDescription  = "description"
	KeySize         = "size"
	KeyColour       = "colour"
	KeySubgroup     = "subgroup"
	KeySupplierCode = "supplier_code"
	KeySeason       = "season"
	KeyMainSupplier = "main_supplier"
	KeyCostPrice    = "cost_price"
	KeyBarcode      = "barcode"
	KeyVATRate      = "vat_rate"
	KeyRRP          = "rrp"
	KeySellingPrice = "selling_price"
	KeyStgPrice     = "stg_price"
	KeyTariffCode   = "tariff_code"
	KeyBrand        = "brand"
	KeyProductType  = "product_type"
	KeyWeb          = "web"
	KeyCountry      = "country"
	KeyCountryCode  = "country_code"
)

// Field is one named string attribute of a record.
type Field struct {
	Name  string
	Value string
}

// Item is any record variant the duplicate and validation checks can walk.
// Fields returns every string attribute in declared order; Prices returns
// the monetary fields subject to the two-decimal rule. KeyParts returns the
// attributes that make up the identity key: one element for products, the
// style/size/colour triple for clothing.
type Item interface {
	Identity() string
	Label() string
	Line() int
	KeyParts() []string
	Fields() []Field
	Prices() []Field
	Barcode() string
}
