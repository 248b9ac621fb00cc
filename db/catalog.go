package db

import (
	"database/sql"
	"fmt"

	"github.com/go-gorp/gorp"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nelmak/billquest/model"
)

// Catalog is the read-only product-code lookup backing the autocomplete in
// the query form. The sqlite file is packaged alongside the function binary.
type Catalog struct {
	dbmap *gorp.DbMap
}

func OpenCatalog(path string) (*Catalog, error) {
	sqlite, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	return &Catalog{dbmap: &gorp.DbMap{Db: sqlite, Dialect: gorp.SqliteDialect{}}}, nil
}

// Search returns up to 10 products whose code or name starts with the query,
// exact code matches first.
func (c *Catalog) Search(prefix string) ([]model.Product, error) {
	var products []model.Product
	_, err := c.dbmap.Select(&products,
		"select code, name from products"+
			" where code like ? or name like ?"+
			" order by case when code = ? then 1 else 2 end, code limit 10;",
		prefix+"%", prefix+"%", prefix)
	if err != nil {
		return nil, err
	}
	return products, nil
}
