package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes the catalog's `"suppress"`/`"error"` strings into
// the corresponding MissingForeignKeyPolicy constant, per Config's own
// doc comment promising a YAML-decodable configuration.
func (p *MissingForeignKeyPolicy) UnmarshalYAML(node *yaml.Node) error {
	var tag string
	if err := node.Decode(&tag); err != nil {
		return err
	}
	switch tag {
	case "", "suppress":
		*p = SuppressJoin
	case "error":
		*p = ErrorOnMissingForeignKey
	default:
		return fmt.Errorf("catalog: unknown on_missing_foreign_key value %q (want \"suppress\" or \"error\")", tag)
	}
	return nil
}

// MarshalYAML renders the policy back to its string spelling.
func (p MissingForeignKeyPolicy) MarshalYAML() (interface{}, error) {
	if p == ErrorOnMissingForeignKey {
		return "error", nil
	}
	return "suppress", nil
}
