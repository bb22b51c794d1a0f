package main

import "github.com/ivanceras/restq/ast"

// describeStatement renders a one-line human summary of a parsed
// statement for the parse subcommand - not an AST dump, just enough to
// confirm the request was understood the way the caller intended.
func describeStatement(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.Select:
		return "SELECT from " + s.From.Table.String()
	case *ast.Insert:
		return "INSERT into " + s.Into.String()
	case *ast.Update:
		return "UPDATE " + s.Table.String()
	case *ast.BulkUpdate:
		return "BULK UPDATE " + s.Table.String()
	case *ast.Delete:
		return "DELETE from " + s.From.String()
	case *ast.BulkDelete:
		return "BULK DELETE from " + s.From.String()
	case *ast.TableDef:
		return "CREATE TABLE " + s.Table.String()
	case *ast.DropTable:
		return "DROP TABLE " + s.Table.String()
	case *ast.AlterTable:
		return "ALTER TABLE " + s.Table.String()
	default:
		return "unknown statement"
	}
}
