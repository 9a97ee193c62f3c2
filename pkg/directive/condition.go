package directive

import (
	"math"
	"strconv"
	"strings"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/placeholder"
)

// comparisonOps are tried in this order so "!=" and "==" are never
// mis-split by the single-character ">" and "<".
var comparisonOps = []string{"!=", "==", ">=", "<=", ">", "<"}

// entityDecoder undoes the escaping HTML renderers apply to text content.
// Conditions authored inside block text reach this package through rendered
// HTML, so "score > 10" arrives as "score &gt; 10".
var entityDecoder = strings.NewReplacer("&gt;", ">", "&lt;", "<", "&amp;", "&")

// EvaluateCondition evaluates a conditional expression against the data
// context:
//
//   - an expression without whitespace is a bare truthiness check on a data
//     path, optionally negated with a leading "!";
//   - an expression containing one of != == >= <= > < compares two
//     operands, each resolved as a data path first and falling back to its
//     literal text (quotes stripped);
//   - anything else is false.
//
// Ordering operators coerce both sides to numbers; a side that is not
// numeric makes the comparison false. Equality is loose: numeric when both
// sides parse as numbers, string comparison of the natural text forms
// otherwise.
func EvaluateCondition(expr string, data map[string]any) bool {
	expr = strings.TrimSpace(entityDecoder.Replace(expr))
	if expr == "" {
		return false
	}

	if !strings.ContainsAny(expr, " \t") {
		if rest, negated := strings.CutPrefix(expr, "!"); negated {
			return !truthy(data, rest)
		}
		return truthy(data, expr)
	}

	for _, op := range comparisonOps {
		if left, right, found := strings.Cut(expr, op); found {
			return compare(operand(data, left), op, operand(data, right))
		}
	}

	return false
}

// truthy resolves path and reports whether the value counts as true:
// everything except missing, nil, false, and the empty string.
func truthy(data map[string]any, path string) bool {
	value, ok := placeholder.ResolvePath(data, path)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	default:
		return true
	}
}

// operand resolves one side of a comparison: data path first, literal text
// with surrounding quotes stripped as the fallback.
func operand(data map[string]any, s string) any {
	s = strings.TrimSpace(s)
	if value, ok := placeholder.ResolvePath(data, s); ok {
		return value
	}
	return placeholder.Unquote(s)
}

func compare(left any, op string, right any) bool {
	switch op {
	case "==":
		return looseEqual(left, right)
	case "!=":
		return !looseEqual(left, right)
	}

	l, lok := toNumber(left)
	r, rok := toNumber(right)
	if !lok || !rok || math.IsNaN(l) || math.IsNaN(r) {
		return false
	}

	switch op {
	case ">=":
		return l >= r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case "<":
		return l < r
	}
	return false
}

// looseEqual compares numerically when both sides parse as numbers and by
// stringified form otherwise.
func looseEqual(left, right any) bool {
	if l, lok := toNumber(left); lok {
		if r, rok := toNumber(right); rok {
			return l == r
		}
	}
	return placeholder.Stringify(left) == placeholder.Stringify(right)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
