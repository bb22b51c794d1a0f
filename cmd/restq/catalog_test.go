package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/catalog"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogEmptyPathReturnsEmptyLookup(t *testing.T) {
	lookup, err := loadCatalog("")
	require.NoError(t, err)
	_, ok := lookup.GetTableDef(ast.NewTableName("anything"))
	assert.False(t, ok)
}

func TestLoadCatalogDecodesTablesAndColumns(t *testing.T) {
	path := writeCatalogFile(t, `
on_missing_foreign_key: error
tables:
  - name: category
    columns:
      - name: category_id
        type: s32
        attributes: [primary]
      - name: name
        type: text
  - name: product
    columns:
      - name: product_id
        type: s32
        attributes: [primary]
      - name: category_id
        type: s32
        foreign_table: category
`)

	lookup, err := loadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.ErrorOnMissingForeignKey, lookup.Config().OnMissingForeignKey)

	product, ok := lookup.GetTableDef(ast.NewTableName("product"))
	require.True(t, ok)
	require.Len(t, product.Columns, 2)

	catCol := product.ColumnByName("category_id")
	require.NotNil(t, catCol)
	require.NotNil(t, catCol.Foreign)
	assert.Equal(t, "category", catCol.Foreign.Table.Name())

	pk := product.PrimaryColumns()
	require.Len(t, pk, 1)
	assert.Equal(t, "product_id", pk[0].Column.Name())
}

func TestLoadCatalogUnknownDataTypeErrors(t *testing.T) {
	path := writeCatalogFile(t, `
tables:
  - name: t
    columns:
      - name: c
        type: not_a_type
`)
	_, err := loadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalogUnknownAttributeErrors(t *testing.T) {
	path := writeCatalogFile(t, `
tables:
  - name: t
    columns:
      - name: c
        type: text
        attributes: [bogus]
`)
	_, err := loadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalogDuplicateColumnErrors(t *testing.T) {
	path := writeCatalogFile(t, `
tables:
  - name: t
    columns:
      - name: c
        type: text
      - name: c
        type: text
`)
	_, err := loadCatalog(path)
	assert.Error(t, err)
}
