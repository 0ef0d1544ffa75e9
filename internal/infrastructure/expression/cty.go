package expression

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// toCty converts decoded JSON/TOML-like values into cty values. Slices become
// tuples and maps become objects so mixed element types are allowed.
func toCty(v any) cty.Value {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case cty.Value:
		return x
	case bool:
		return cty.BoolVal(x)
	case string:
		return cty.StringVal(x)
	case int:
		return cty.NumberIntVal(int64(x))
	case int32:
		return cty.NumberIntVal(int64(x))
	case int64:
		return cty.NumberIntVal(x)
	case float32:
		return cty.NumberFloatVal(float64(x))
	case float64:
		return cty.NumberFloatVal(x)
	case []string:
		elems := make([]cty.Value, 0, len(x))
		for _, s := range x {
			elems = append(elems, cty.StringVal(s))
		}
		return tuple(elems)
	case []any:
		elems := make([]cty.Value, 0, len(x))
		for _, e := range x {
			elems = append(elems, toCty(e))
		}
		return tuple(elems)
	case map[string]any:
		if len(x) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(x))
		for k, e := range x {
			attrs[k] = toCty(e)
		}
		return cty.ObjectVal(attrs)
	default:
		return cty.StringVal(fmt.Sprint(x))
	}
}

func tuple(elems []cty.Value) cty.Value {
	if len(elems) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(elems)
}

// fromCty converts an evaluation result back to plain Go values. Numbers
// become float64, matching what a JSON round trip through the state store
// would produce.
func fromCty(v cty.Value) any {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}
	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return v.True()
	case ty == cty.String:
		return v.AsString()
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, e := it.Element()
			out = append(out, fromCty(e))
		}
		return out
	case ty.IsMapType() || ty.IsObjectType():
		out := map[string]any{}
		for it := v.ElementIterator(); it.Next(); {
			k, e := it.Element()
			out[k.AsString()] = fromCty(e)
		}
		return out
	default:
		return nil
	}
}
