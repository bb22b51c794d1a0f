package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanceras/restq/ast"
)

func TestMultiReaderSplitsOnBlankLines(t *testing.T) {
	data := "PUT /+category{*category_id:s32,name:text,description:text?}\n" +
		"1,Staff,staff\n" +
		"2,Technology,technology\n" +
		"\n" +
		"PUT /+topic{*topic:s32,title:text}\n" +
		"1,About\n" +
		"3,Topic3\n" +
		"2,Welcome\n"

	mr := NewMultiReader(strings.NewReader(data))

	f1, err := mr.Next()
	require.NoError(t, err)
	create1, ok := f1.Statement.(*ast.TableDef)
	require.True(t, ok)
	assert.Equal(t, "category", create1.Table.Name())

	rows1 := NewRowReader(f1.Body(), create1.Columns)
	var count1 int
	for {
		_, err := rows1.Next()
		if err != nil {
			break
		}
		count1++
	}
	assert.Equal(t, 2, count1)

	f2, err := mr.Next()
	require.NoError(t, err)
	create2, ok := f2.Statement.(*ast.TableDef)
	require.True(t, ok)
	assert.Equal(t, "topic", create2.Table.Name())

	rows2 := NewRowReader(f2.Body(), create2.Columns)
	var count2 int
	for {
		_, err := rows2.Next()
		if err != nil {
			break
		}
		count2++
	}
	assert.Equal(t, 3, count2)

	_, err = mr.Next()
	assert.Error(t, err)
}

func TestRowReaderCoercesFields(t *testing.T) {
	data := "PUT /product(*product_id:s32,@name:text,description:text,is_active:bool)\n" +
		"1,go pro,a slightly used go pro,true\n" +
		"2,shovel,a slightly used shovel,false\n"

	mr := NewMultiReader(strings.NewReader(data))
	f, err := mr.Next()
	require.NoError(t, err)
	create := f.Statement.(*ast.TableDef)

	rows := NewRowReader(f.Body(), create.Columns)
	row1, err := rows.Next()
	require.NoError(t, err)
	require.Len(t, row1, 4)
	assert.Equal(t, "1", row1[0].String())
	assert.Equal(t, "go pro", row1[1].String())
	assert.Equal(t, "true", row1[3].String())

	row2, err := rows.Next()
	require.NoError(t, err)
	assert.Equal(t, "false", row2[3].String())

	_, err = rows.Next()
	assert.Error(t, err)
}

func TestDoubledColumnsRepeatsInOrder(t *testing.T) {
	cols := []*ast.ColumnDef{
		{Column: ast.NewColumnName("a")},
		{Column: ast.NewColumnName("b")},
	}
	doubled := DoubledColumns(cols)
	require.Len(t, doubled, 4)
	assert.Equal(t, "a", doubled[0].Column.Name())
	assert.Equal(t, "b", doubled[1].Column.Name())
	assert.Equal(t, "a", doubled[2].Column.Name())
	assert.Equal(t, "b", doubled[3].Column.Name())
}

func TestRowColumnsDoublesForBulkUpdate(t *testing.T) {
	def := &ast.TableDef{
		Table: ast.NewTableName("product"),
		Columns: []*ast.ColumnDef{
			{Column: ast.NewColumnName("product_id"), Attributes: []ast.ColumnAttribute{ast.Primary}},
			{Column: ast.NewColumnName("name")},
		},
	}
	lookup := NewCatalogLookup(func(name ast.TableName) (*ast.TableDef, bool) {
		if name.Equal(def.Table) {
			return def, true
		}
		return nil, false
	})

	bu := &ast.BulkUpdate{
		Table:   ast.NewTableName("product"),
		Columns: []ast.ColumnName{ast.NewColumnName("product_id"), ast.NewColumnName("name")},
	}
	cols, err := RowColumns(bu, lookup)
	require.NoError(t, err)
	assert.Len(t, cols, 4)
}

func TestRowColumnsUnknownTableErrors(t *testing.T) {
	lookup := NewCatalogLookup(func(ast.TableName) (*ast.TableDef, bool) { return nil, false })
	bd := &ast.BulkDelete{From: ast.NewTableName("missing"), Columns: []ast.ColumnName{ast.NewColumnName("id")}}
	_, err := RowColumns(bd, lookup)
	assert.Error(t, err)
}
