// Package schema holds the declarative description of the structured
// comparison the generation backend must emit. The document lives in
// comparison.yaml so it can be versioned independently of the prompt text.
package schema

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/google/generative-ai-go/genai"
	"gopkg.in/yaml.v3"
)

//go:embed comparison.yaml
var comparisonDocument []byte

// Node is one language-neutral schema node.
type Node struct {
	Type        string           `yaml:"type"`
	Description string           `yaml:"description,omitempty"`
	Ref         string           `yaml:"ref,omitempty"`
	Properties  map[string]*Node `yaml:"properties,omitempty"`
	Items       *Node            `yaml:"items,omitempty"`
	Required    []string         `yaml:"required,omitempty"`
}

// Document is the top-level layout of comparison.yaml.
type Document struct {
	Definitions map[string]*Node `yaml:"definitions"`
	Comparison  *Node            `yaml:"comparison"`
}

// Load decodes the embedded comparison document and resolves its references.
func Load() (*Node, error) {
	return Parse(comparisonDocument)
}

// Parse decodes a schema document, resolves `ref` entries against its
// definitions and checks that every required property is declared.
func Parse(data []byte) (*Node, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not decode schema document: %w", err)
	}
	if doc.Comparison == nil {
		return nil, fmt.Errorf("schema document has no comparison node")
	}

	root, err := resolve(doc.Comparison, doc.Definitions, "comparison", 0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

const maxDepth = 16

func resolve(n *Node, defs map[string]*Node, path string, depth int) (*Node, error) {
	if n == nil {
		return nil, fmt.Errorf("schema node %s is empty", path)
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("schema node %s is nested too deeply", path)
	}
	if n.Ref != "" {
		def, ok := defs[n.Ref]
		if !ok {
			return nil, fmt.Errorf("schema node %s references unknown definition %q", path, n.Ref)
		}
		return resolve(def, defs, path, depth+1)
	}

	out := &Node{
		Type:        n.Type,
		Description: n.Description,
		Required:    append([]string(nil), n.Required...),
	}

	switch n.Type {
	case "object":
		out.Properties = make(map[string]*Node, len(n.Properties))
		for name, prop := range n.Properties {
			resolved, err := resolve(prop, defs, path+"."+name, depth+1)
			if err != nil {
				return nil, err
			}
			out.Properties[name] = resolved
		}
		for _, name := range n.Required {
			if _, ok := out.Properties[name]; !ok {
				return nil, fmt.Errorf("schema node %s requires undeclared property %q", path, name)
			}
		}
	case "array":
		items, err := resolve(n.Items, defs, path+"[]", depth+1)
		if err != nil {
			return nil, err
		}
		out.Items = items
	case "string", "number", "integer", "boolean":
	default:
		return nil, fmt.Errorf("schema node %s has unsupported type %q", path, n.Type)
	}

	return out, nil
}

// PropertyNames returns the node's property names in sorted order.
func (n *Node) PropertyNames() []string {
	names := make([]string, 0, len(n.Properties))
	for name := range n.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToGenai converts the node tree into the schema type accepted by the Gemini SDK.
func (n *Node) ToGenai() *genai.Schema {
	if n == nil {
		return nil
	}
	s := &genai.Schema{
		Type:        genaiType(n.Type),
		Description: n.Description,
	}
	if len(n.Required) > 0 {
		s.Required = append([]string(nil), n.Required...)
	}
	if n.Items != nil {
		s.Items = n.Items.ToGenai()
	}
	if len(n.Properties) > 0 {
		s.Properties = make(map[string]*genai.Schema, len(n.Properties))
		for name, prop := range n.Properties {
			s.Properties[name] = prop.ToGenai()
		}
	}
	return s
}

func genaiType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
