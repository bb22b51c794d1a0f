package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/catalog"
	"github.com/ivanceras/restq/frame"
	"github.com/ivanceras/restq/sqlast"
)

type lowerFlags struct {
	input   string
	output  string
	catalog string
}

func lowerCmd() *cobra.Command {
	flags := &lowerFlags{}
	cmd := &cobra.Command{
		Use:   "lower [request-file]",
		Short: "Lower one or more RestQ request frames to SQL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.input = args[0]
			}
			return runLower(flags)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write result to file instead of stdout")
	cmd.Flags().StringVarP(&flags.catalog, "catalog", "c", "", "YAML catalog file (see DESIGN.md for the format)")
	return cmd
}

func runLower(flags *lowerFlags) error {
	lookup, err := loadCatalog(flags.catalog)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	catLookup := frame.NewCatalogLookup(lookup.GetTableDef)

	f, err := readInput(flags.input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	mr := frame.NewMultiReader(f)
	var out strings.Builder
	for i := 1; ; i++ {
		fr, err := mr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		stmts, err := lowerFrame(fr, lookup, catLookup)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		for _, st := range stmts {
			fmt.Fprintln(&out, st.SQL()+";")
		}
	}
	return writeOutput(out.String(), flags.output)
}

// lowerFrame lowers one frame to zero or more SQL statements, reading
// and coercing its CSV body when the statement kind carries one
// (Insert, BulkUpdate, BulkDelete) and fully draining the body
// otherwise, so the next MultiReader.Next call lands on the right line.
func lowerFrame(fr *frame.Frame, lookup *catalog.TableLookup, catLookup *frame.CatalogLookup) ([]sqlast.Stmt, error) {
	switch s := fr.Statement.(type) {
	case *ast.Insert:
		rows, err := readRows(fr, s, catLookup)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			st, err := sqlast.Lower(s, lookup)
			if err != nil {
				return nil, err
			}
			return []sqlast.Stmt{st}, nil
		}
		st, err := sqlast.LowerInsertRows(s, rows)
		if err != nil {
			return nil, err
		}
		return []sqlast.Stmt{st}, nil

	case *ast.BulkUpdate:
		tbl, ok := lookup.GetTableDef(s.Table)
		if !ok {
			return nil, fmt.Errorf("unknown table %q", s.Table.String())
		}
		rows, err := readRows(fr, s, catLookup)
		if err != nil {
			return nil, err
		}
		var stmts []sqlast.Stmt
		for _, row := range rows {
			half := len(row) / 2
			st, ok, err := sqlast.LowerBulkUpdateRow(s, tbl, row[:half], row[half:])
			if err != nil {
				return nil, err
			}
			if ok {
				stmts = append(stmts, st)
			}
		}
		return stmts, nil

	case *ast.BulkDelete:
		rows, err := readRows(fr, s, catLookup)
		if err != nil {
			return nil, err
		}
		return sqlast.LowerBulkDeleteRows(s, rows)

	case *ast.AlterTable:
		if _, err := io.Copy(io.Discard, fr.Body()); err != nil {
			return nil, err
		}
		return sqlast.LowerAlterTable(s, lookup)

	default:
		if _, err := io.Copy(io.Discard, fr.Body()); err != nil {
			return nil, err
		}
		st, err := sqlast.Lower(s, lookup)
		if err != nil {
			return nil, err
		}
		return []sqlast.Stmt{st}, nil
	}
}

// readRows resolves stmt's row columns against the catalog and collects
// every coerced CSV row from the frame's body.
func readRows(fr *frame.Frame, stmt ast.Statement, catLookup *frame.CatalogLookup) ([][]ast.DataValue, error) {
	cols, err := frame.RowColumns(stmt, catLookup)
	if err != nil {
		return nil, err
	}
	rr := frame.NewRowReader(fr.Body(), cols)
	var rows [][]ast.DataValue
	for {
		row, err := rr.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
