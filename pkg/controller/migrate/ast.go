package migrate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
)

// renamedKeys maps alternative key names to the schema keys.
// path is the argument name of the Danger plugin's lint(path) and
// flake8_config is the name of the --flake8-config flag.
var renamedKeys = []struct {
	from string
	to   string
}{
	{from: "path", to: "base_dir"},
	{from: "flake8_config", to: "config_file"},
}

// parseConfigAST migrates the configuration and reports whether it was changed.
func parseConfigAST(content []byte) (string, bool, error) {
	file, err := parser.ParseBytes(content, parser.ParseComments)
	if err != nil {
		return "", false, fmt.Errorf("parse a configuration file as YAML: %w", err)
	}
	changed := false
	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		c, err := parseDocAST(doc)
		if err != nil {
			return "", false, err
		}
		if c {
			changed = true
		}
	}
	if !changed {
		return "", false, nil
	}
	s := file.String()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s, true, nil
}

func parseDocAST(doc *ast.DocumentNode) (bool, error) {
	body, ok := doc.Body.(*ast.MappingNode)
	if !ok {
		return false, errors.New("document body must be *ast.MappingNode")
	}
	changed, err := migrateKeys(body)
	if err != nil {
		return false, fmt.Errorf("rename keys: %w", err)
	}
	c, err := migrateVersion(body)
	if err != nil {
		return false, fmt.Errorf("migrate version: %w", err)
	}
	return changed || c, nil
}

func migrateKeys(body *ast.MappingNode) (bool, error) {
	changed := false
	for _, key := range renamedKeys {
		node := findNodeByKey(body.Values, key.from)
		if node == nil {
			continue
		}
		if findNodeByKey(body.Values, key.to) != nil {
			return false, fmt.Errorf("both %s and %s are set", key.from, key.to)
		}
		k := node.Key.(*ast.StringNode) //nolint:forcetypeassert
		k.Value = key.to
		k.Token.Value = key.to
		changed = true
	}
	return changed, nil
}

func migrateVersion(body *ast.MappingNode) (bool, error) {
	versionNode := findNodeByKey(body.Values, "version")
	if versionNode == nil {
		node, err := yaml.ValueToNode(map[string]any{
			"version": config.SchemaVersion,
		})
		if err != nil {
			return false, fmt.Errorf("convert version to node: %w", err)
		}
		body.Merge(node.(*ast.MappingNode)) //nolint:forcetypeassert
		return true, nil
	}

	switch v := versionNode.Value.(type) {
	case *ast.IntegerNode:
		if v.Token.Value == "1" {
			return false, nil
		}
		v.Token.Value = "1"
		v.Value = config.SchemaVersion
		return true, nil
	default:
		return false, errors.New("version must be a number")
	}
}

func findNodeByKey(values []*ast.MappingValueNode, key string) *ast.MappingValueNode {
	for _, value := range values {
		k, ok := value.Key.(*ast.StringNode)
		if !ok {
			continue
		}
		if k.Value == key {
			return value
		}
	}
	return nil
}
