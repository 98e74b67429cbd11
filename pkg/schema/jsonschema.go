package schema

import (
	"github.com/invopop/jsonschema"
)

// JSONSchema renders the tree under root as a JSON Schema. Groups become
// closed objects, leaves carry their defaults. Every leaf and nested group
// also accepts null, which Merge reads as a reset to the default. When
// namespace is not empty the root group is wrapped in an object holding a
// single property of that name, which is the layout of a host
// configuration file.
func JSONSchema(root *Node, namespace string) *jsonschema.Schema {
	s := groupSchema(root)
	if namespace != "" {
		props := jsonschema.NewProperties()
		props.Set(namespace, orNull(s))
		s = &jsonschema.Schema{
			Type:       "object",
			Properties: props,
		}
	}
	s.Version = jsonschema.Version
	return s
}

func groupSchema(n *Node) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	for _, c := range n.Children {
		if c.IsGroup() {
			props.Set(c.Name, orNull(groupSchema(c)))
			continue
		}
		props.Set(c.Name, leafSchema(c))
	}
	return &jsonschema.Schema{
		Description:          n.Description,
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

func leafSchema(n *Node) *jsonschema.Schema {
	s := &jsonschema.Schema{Description: n.Description, Default: n.Default}

	switch n.Kind {
	case KindString:
		// Merge formats numbers on string leaves as text.
		s.AnyOf = typeUnion("string", "number", "null")
	case KindBool:
		s.AnyOf = typeUnion("boolean", "null")
	case KindNumber:
		s.AnyOf = typeUnion("number", "null")
	case KindBoolOrString:
		s.AnyOf = typeUnion("boolean", "string", "null")
	}
	return s
}

// orNull lets a group be written as null. The description stays on the
// outer schema.
func orNull(obj *jsonschema.Schema) *jsonschema.Schema {
	desc := obj.Description
	obj.Description = ""
	return &jsonschema.Schema{
		Description: desc,
		AnyOf:       []*jsonschema.Schema{obj, {Type: "null"}},
	}
}

func typeUnion(types ...string) []*jsonschema.Schema {
	out := make([]*jsonschema.Schema, len(types))
	for i, t := range types {
		out[i] = &jsonschema.Schema{Type: t}
	}
	return out
}
