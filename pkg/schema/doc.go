// Package schema declares configuration schemas as plain trees of nodes and
// merges override documents against them.
//
// A schema is built once, usually by a single function returning a literal
// tree, and is never mutated afterwards:
//
//	root := schema.Group("app",
//	    schema.String("name", "demo"),
//	    schema.Group("server",
//	        schema.Number("port", 8080),
//	        schema.Bool("tls", false),
//	    ),
//	)
//
// A [Merger] combines the tree with zero or more override documents, applied
// in order, and returns a [Document] where every group is present and every
// leaf holds either an override or its default:
//
//	doc, err := schema.NewMerger().Merge(root, map[string]any{
//	    "server": map[string]any{"port": 9090},
//	})
//	port, _ := doc.Get("server.port") // 9090
//	tls, _ := doc.Get("server.tls")   // false
//
// Merge errors wrap [ErrTypeMismatch] or [ErrUnknownKey] inside a [PathError]
// naming the dotted path of the key. All problems of a merge are joined in a
// single error; [Problems] flattens it back.
package schema
