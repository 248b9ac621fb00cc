package model

// Product is a catalog row for the product-code autocomplete. Read-only
// reference data kept in the sqlite sidecar that ships with the function.
type Product struct {
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}
