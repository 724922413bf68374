package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SaveRotation updates the rotation section in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveRotation(configPath string, rot RotationConfig) error {
	if err := ValidateRotation(rot); err != nil {
		return err
	}
	return saveSection(configPath, "rotation", buildRotationNode(rot))
}

// SaveThemePreset updates theme.preset in the config file, preserving
// the rest of the theme section (mode, color overrides).
func SaveThemePreset(configPath string, preset string) error {
	return updateSection(configPath, "theme", func(themeNode *yaml.Node) {
		setMappingKey(themeNode, "preset", &yaml.Node{Kind: yaml.ScalarNode, Value: preset})
	})
}

// saveSection replaces (or creates) a top-level key in the config file.
func saveSection(configPath, key string, value *yaml.Node) error {
	doc, err := loadDocument(configPath)
	if err != nil {
		return err
	}

	root := documentRoot(doc)
	setMappingKey(root, key, value)

	return writeDocument(configPath, doc)
}

// updateSection mutates an existing top-level mapping in place, creating
// an empty mapping first if the key is absent.
func updateSection(configPath, key string, mutate func(*yaml.Node)) error {
	doc, err := loadDocument(configPath)
	if err != nil {
		return err
	}

	root := documentRoot(doc)
	section := findMappingValue(root, key)
	if section == nil || section.Kind != yaml.MappingNode {
		section = &yaml.Node{Kind: yaml.MappingNode}
		setMappingKey(root, key, section)
	}
	mutate(section)

	return writeDocument(configPath, doc)
}

// loadDocument reads the config file into a yaml.Node, preserving comments.
// A missing or empty file yields an empty document with a mapping root.
func loadDocument(configPath string) (*yaml.Node, error) {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	return &doc, nil
}

// documentRoot returns the root mapping of the document, creating one if needed.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode}}
	}
	return doc.Content[0]
}

// findMappingValue returns the value node for key in a mapping, or nil.
func findMappingValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// setMappingKey replaces the value for key in a mapping, appending if absent.
func setMappingKey(mapping *yaml.Node, key string, value *yaml.Node) {
	if mapping.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		value,
	)
}

// buildRotationNode creates a yaml.Node representing the rotation section.
// Zero timing overrides are omitted so defaults stay implicit.
func buildRotationNode(rot RotationConfig) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	appendInt := func(key string, v int) {
		if v <= 0 {
			return
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)},
		)
	}

	appendInt("hover_debounce_ms", rot.HoverDebounceMs)
	appendInt("tick_interval_ms", rot.TickIntervalMs)
	appendInt("fade_half_ms", rot.FadeHalfMs)
	appendInt("carousel_cooldown_ms", rot.CarouselCooldownMs)

	if rot.ReducedMotion {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "reduced_motion"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"},
		)
	}

	return node
}

// writeDocument marshals the document and writes it atomically
// (write to temp, then rename).
func writeDocument(configPath string, doc *yaml.Node) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".vitrine.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
