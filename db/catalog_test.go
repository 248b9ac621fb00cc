package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenCatalog(":memory:")
	require.NoError(t, err)
	_, err = c.dbmap.Exec("create table products (code text primary key, name text)")
	require.NoError(t, err)
	for _, p := range [][2]string{
		{"AmazonEC2", "Amazon Elastic Compute Cloud"},
		{"AmazonS3", "Amazon Simple Storage Service"},
		{"AmazonRDS", "Amazon Relational Database Service"},
	} {
		_, err = c.dbmap.Exec("insert into products (code, name) values (?, ?)", p[0], p[1])
		require.NoError(t, err)
	}
	return c
}

func TestCatalogSearchByPrefix(t *testing.T) {
	c := testCatalog(t)
	products, err := c.Search("AmazonE")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "AmazonEC2", products[0].Code)
}

func TestCatalogSearchExactCodeFirst(t *testing.T) {
	c := testCatalog(t)
	products, err := c.Search("AmazonS3")
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, "AmazonS3", products[0].Code)
}

func TestCatalogSearchNoMatch(t *testing.T) {
	c := testCatalog(t)
	products, err := c.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, products)
}
