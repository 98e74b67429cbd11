package schema

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// UnknownKeyPolicy controls how Merge treats override keys the schema does
// not declare. Unknown keys are never copied into the result.
type UnknownKeyPolicy int

const (
	// RejectUnknown fails the merge with ErrUnknownKey.
	RejectUnknown UnknownKeyPolicy = iota
	// IgnoreUnknown drops unknown keys silently.
	IgnoreUnknown
)

// Merger combines a schema tree with override documents.
// A Merger has no mutable state and can be shared between goroutines.
type Merger struct {
	unknownKeys UnknownKeyPolicy
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithUnknownKeys sets the unknown-key policy. The default is RejectUnknown.
func WithUnknownKeys(p UnknownKeyPolicy) MergerOption {
	return func(m *Merger) {
		m.unknownKeys = p
	}
}

// NewMerger returns a Merger with the given options applied.
func NewMerger(opts ...MergerOption) *Merger {
	m := &Merger{unknownKeys: RejectUnknown}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge resolves root against the overrides, applied in order so that later
// documents win per key. Each override must be a mapping shaped like root
// (map[string]any, map[any]any or Document); nil overrides are skipped.
//
// Every problem found is reported; the returned error joins one *PathError
// per offending key and the document is nil whenever the error is not.
func (m *Merger) Merge(root *Node, overrides ...any) (Document, error) {
	if root == nil || !root.IsGroup() {
		return nil, fmt.Errorf("schema: merge root must be a group node")
	}

	layers := make([]map[string]any, 0, len(overrides))
	var errs []error
	for i, o := range overrides {
		if o == nil {
			continue
		}
		mm, ok := asMap(o)
		if !ok {
			errs = append(errs, &PathError{
				Path:   fmt.Sprintf("<override %d>", i),
				Err:    ErrTypeMismatch,
				Detail: fmt.Sprintf("expected mapping, got %s", describe(o)),
			})
			continue
		}
		layers = append(layers, mm)
	}

	doc := m.mergeGroup(root, "", layers, &errs)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return doc, nil
}

func (m *Merger) mergeGroup(n *Node, path string, layers []map[string]any, errs *[]error) Document {
	if m.unknownKeys == RejectUnknown {
		for _, layer := range layers {
			for _, key := range sortedKeys(layer) {
				if _, ok := n.Child(key); !ok {
					*errs = append(*errs, unknown(joinPath(path, key)))
				}
			}
		}
	}

	out := make(Document, len(n.Children))
	for _, c := range n.Children {
		childPath := joinPath(path, c.Name)

		if c.IsGroup() {
			var sub []map[string]any
			for _, layer := range layers {
				v, ok := layer[c.Name]
				if !ok || v == nil {
					continue
				}
				mm, ok := asMap(v)
				if !ok {
					*errs = append(*errs, mismatch(childPath, KindGroup, v))
					continue
				}
				sub = append(sub, mm)
			}
			out[c.Name] = m.mergeGroup(c, childPath, sub, errs)
			continue
		}

		val := c.Default
		for _, layer := range layers {
			v, ok := layer[c.Name]
			if !ok {
				continue
			}
			if v == nil {
				if c.Nullable {
					val = nil
				} else {
					val = c.Default
				}
				continue
			}
			coerced, err := coerce(c, childPath, v)
			if err != nil {
				*errs = append(*errs, err)
				continue
			}
			val = coerced
		}
		out[c.Name] = val
	}
	return out
}

// coerce checks v against the leaf kind and normalizes it.
func coerce(n *Node, path string, v any) (any, error) {
	switch n.Kind {
	case KindString:
		switch x := v.(type) {
		case string:
			return x, nil
		default:
			if num, ok := toNumber(v); ok && isFinite(num) {
				return formatNumber(num), nil
			}
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindNumber:
		if num, ok := toNumber(v); ok && isFinite(num) {
			return normalizeNumber(num), nil
		}
	case KindBoolOrString:
		switch x := v.(type) {
		case bool:
			return x, nil
		case string:
			return x, nil
		}
	}
	return nil, mismatch(path, n.Kind, v)
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// isFinite rejects .inf and .nan, which have no text or JSON form.
func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func normalizeNumber(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f)
	}
	return f
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case Document:
		return map[string]any(x), true
	case map[string]any:
		return x, true
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
