// Package catalog implements C7: the table lookup used during lowering
// to resolve foreign-key pairs and primary keys for join expansion and
// bulk operations.
package catalog

import (
	"log/slog"

	"github.com/ivanceras/restq/ast"
)

// MissingForeignKeyPolicy controls what the join-expansion algorithm does
// when two adjacent tables in a FromTable chain have a catalog supplied
// but no foreign-key pair between them. The original source silently
// dropped the join in this case; spec.md §9(a) flags that as almost
// certainly buggy in the presence of bridge tables and asks for the
// behavior to be made configurable and logged rather than guessed at.
type MissingForeignKeyPolicy int

const (
	// SuppressJoin drops the ON constraint (and logs it) - preserves the
	// original source's behavior, now opt-in rather than silent.
	SuppressJoin MissingForeignKeyPolicy = iota
	// ErrorOnMissingForeignKey fails the lowering with a TableNotFound-
	// shaped error instead of silently proceeding.
	ErrorOnMissingForeignKey
)

// Config is catalog.TableLookup's construction-time configuration,
// decodable from YAML (see cmd/restq for the file format).
type Config struct {
	OnMissingForeignKey MissingForeignKeyPolicy
	Logger              *slog.Logger
}

// DefaultConfig suppresses missing-FK joins but always logs the drop,
// matching spec §9(a)'s instruction precisely: "make the behavior
// configurable and log the drop."
func DefaultConfig() Config {
	return Config{OnMissingForeignKey: SuppressJoin, Logger: slog.Default()}
}

// TableLookup is a read-only-during-lowering mapping from table name to
// table definition. Insertion order is irrelevant. Multiple independent
// lowering calls against the same TableLookup are safe to run from
// independent call stacks as long as no mutator (AddTable) is active
// concurrently, per spec §5.
type TableLookup struct {
	cfg    Config
	tables map[string]*ast.TableDef
}

// New creates an empty TableLookup with the default configuration.
func New() *TableLookup {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an empty TableLookup with explicit configuration.
func NewWithConfig(cfg Config) *TableLookup {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &TableLookup{cfg: cfg, tables: make(map[string]*ast.TableDef)}
}

// AddTable registers a table definition, keyed by its unqualified name.
func (t *TableLookup) AddTable(def *ast.TableDef) {
	t.tables[def.Table.Name()] = def
}

// GetTableDef resolves a table name to its definition.
func (t *TableLookup) GetTableDef(name ast.TableName) (*ast.TableDef, bool) {
	def, ok := t.tables[name.Name()]
	return def, ok
}

// Config returns the lookup's configuration (used by lowering to decide
// how to react to a missing foreign-key pair).
func (t *TableLookup) Config() Config { return t.cfg }

// ForeignKeyPair is one (local_col, foreign_col) equality discovered
// between two adjacent tables in a join chain.
type ForeignKeyPair struct {
	// LocalTable/LocalColumn is the column that carries the foreign
	// reference; ForeignTable/ForeignColumn is what it points at.
	LocalTable    string
	LocalColumn   string
	ForeignTable  string
	ForeignColumn string
}

// ForeignKeyPairs collects every (local_col, foreign_col) pair between
// left and right, in both directions: columns of `right` that reference
// `left`, and symmetrically columns of `left` that reference `right`.
// This generalizes original_source's `assert_eq!(pairs.len(), 1)` single-
// pair assumption (see ast/table.rs) into the set-based algorithm spec
// §4.7 calls for, so that bridge/junction tables with more than one FK
// pair between two tables are handled instead of panicking.
func (t *TableLookup) ForeignKeyPairs(left, right ast.TableName) []ForeignKeyPair {
	var pairs []ForeignKeyPair
	if rdef, ok := t.GetTableDef(right); ok {
		for _, col := range rdef.Columns {
			if col.Foreign != nil && col.Foreign.Table.Equal(left) {
				foreignCol := targetColumn(t, left, col.Foreign)
				pairs = append(pairs, ForeignKeyPair{
					LocalTable: right.Name(), LocalColumn: col.Column.Name(),
					ForeignTable: left.Name(), ForeignColumn: foreignCol,
				})
			}
		}
	}
	if ldef, ok := t.GetTableDef(left); ok {
		for _, col := range ldef.Columns {
			if col.Foreign != nil && col.Foreign.Table.Equal(right) {
				foreignCol := targetColumn(t, right, col.Foreign)
				pairs = append(pairs, ForeignKeyPair{
					LocalTable: left.Name(), LocalColumn: col.Column.Name(),
					ForeignTable: right.Name(), ForeignColumn: foreignCol,
				})
			}
		}
	}
	return pairs
}

// targetColumn resolves a ForeignRef's target column: the explicit
// `::target_column` override if given, else the target table's sole
// primary key. When the target table is not in the catalog or does not
// have exactly one primary-key column, it returns the column name "id";
// that case reports no error.
func targetColumn(t *TableLookup, target ast.TableName, ref *ast.ForeignRef) string {
	if ref.Column != nil {
		return ref.Column.Name()
	}
	if def, ok := t.GetTableDef(target); ok {
		pk := def.PrimaryColumns()
		if len(pk) == 1 {
			return pk[0].Column.Name()
		}
	}
	return "id"
}

// LogMissingForeignKey records that a join link was suppressed because
// no foreign-key pair was found between two adjacent tables, per
// spec §9(a)'s requirement to log rather than silently drop.
func (t *TableLookup) LogMissingForeignKey(left, right ast.TableName) {
	t.cfg.Logger.Warn("join suppressed: no foreign key pair found between adjacent tables",
		"left", left.Name(), "right", right.Name())
}
