package main

import (
	"fmt"
	"os"

	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/catalog"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a YAML catalog definition, per
// SPEC_FULL.md's domain-stack entry for gopkg.in/yaml.v3: a file-based
// alternative to building a catalog.TableLookup by hand in Go.
type catalogFile struct {
	OnMissingForeignKey catalog.MissingForeignKeyPolicy `yaml:"on_missing_foreign_key"`
	Tables              []tableSpec                     `yaml:"tables"`
}

type tableSpec struct {
	Name    string       `yaml:"name"`
	Columns []columnSpec `yaml:"columns"`
}

type columnSpec struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	Optional      bool     `yaml:"optional"`
	Attributes    []string `yaml:"attributes"`
	ForeignTable  string   `yaml:"foreign_table"`
	ForeignColumn string   `yaml:"foreign_column"`
}

// loadCatalog decodes a YAML catalog file into a ready-to-use
// catalog.TableLookup. An empty path returns catalog.New(), the default
// empty lookup, so commands work without a catalog for statements that
// don't need one.
func loadCatalog(path string) (*catalog.TableLookup, error) {
	if path == "" {
		return catalog.New(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	lookup := catalog.NewWithConfig(catalog.Config{OnMissingForeignKey: cf.OnMissingForeignKey})
	for _, ts := range cf.Tables {
		def, err := ts.toTableDef()
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", ts.Name, err)
		}
		lookup.AddTable(def)
	}
	return lookup, nil
}

func (ts tableSpec) toTableDef() (*ast.TableDef, error) {
	def := &ast.TableDef{Table: ast.NewTableName(ts.Name)}
	for _, cs := range ts.Columns {
		cd, err := cs.toColumnDef()
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cs.Name, err)
		}
		def.Columns = append(def.Columns, cd)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func (cs columnSpec) toColumnDef() (*ast.ColumnDef, error) {
	dt, ok := ast.ParseDataType(cs.Type)
	if !ok {
		return nil, fmt.Errorf("unknown data type %q", cs.Type)
	}
	cd := &ast.ColumnDef{
		Column: ast.NewColumnName(cs.Name),
		Type:   ast.DataTypeDef{DataType: dt, IsOptional: cs.Optional},
	}
	for _, a := range cs.Attributes {
		attr, err := parseAttribute(a)
		if err != nil {
			return nil, err
		}
		cd.Attributes = append(cd.Attributes, attr)
	}
	if cs.ForeignTable != "" {
		ref := &ast.ForeignRef{Table: ast.NewTableName(cs.ForeignTable)}
		if cs.ForeignColumn != "" {
			col := ast.NewColumnName(cs.ForeignColumn)
			ref.Column = &col
		}
		cd.Foreign = ref
	}
	return cd, nil
}

func parseAttribute(s string) (ast.ColumnAttribute, error) {
	switch s {
	case "primary":
		return ast.Primary, nil
	case "unique":
		return ast.Unique, nil
	case "index":
		return ast.Index, nil
	default:
		return 0, fmt.Errorf("unknown column attribute %q (want primary, unique, or index)", s)
	}
}
