package query_builder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// param is one named argument destined for an operation's argument list.
// A nil value means the argument is absent: it is omitted from the list
// entirely rather than rendered as a null literal.
type param struct {
	name  string
	value any
}

// Raw is emitted into the document verbatim, without quoting. Use it inside
// query-filter maps for values the remote grammar treats as enum tokens
// rather than strings (e.g. rule operators such as any_of).
type Raw string

// enumToken is implemented by every closed token set in this package.
type enumToken interface{ token() string }

// formatParams renders an ordered argument list as the comma-joined fragment
// that goes inside an operation's parentheses. Absent values are skipped.
func formatParams(params []param) (string, error) {
	var parts []string
	for _, p := range params {
		text, present, err := formatValue(p.value)
		if err != nil {
			return "", fmt.Errorf("argument %s: %w", p.name, err)
		}
		if !present {
			continue
		}
		parts = append(parts, p.name+": "+text)
	}
	return strings.Join(parts, ", "), nil
}

// formatValue renders a single argument value. The second result reports
// whether the value is present; absent values must not reach the document.
func formatValue(v any) (string, bool, error) {
	switch v := v.(type) {
	case nil:
		return "", false, nil
	case Raw:
		return string(v), true, nil
	case enumToken:
		t := v.token()
		if t == "" {
			return "", false, nil
		}
		return t, true, nil
	case string:
		return quote(v), true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case *bool:
		if v == nil {
			return "", false, nil
		}
		return strconv.FormatBool(*v), true, nil
	case []int:
		return formatIntList(v), true, nil
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = quote(s)
		}
		return "[" + strings.Join(parts, ", ") + "]", true, nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			text, present, err := formatValue(item)
			if err != nil {
				return "", false, err
			}
			if !present {
				return "", false, fmt.Errorf("list contains an absent value")
			}
			parts = append(parts, text)
		}
		return "[" + strings.Join(parts, ", ") + "]", true, nil
	case map[string]any:
		text, err := formatObject(v)
		if err != nil {
			return "", false, err
		}
		return text, true, nil
	default:
		return "", false, fmt.Errorf("unsupported argument type %T", v)
	}
}

// formatObject renders a map as a GraphQL object literal: bare-name keys,
// brace-wrapped, recursing through formatValue. This is the nested grammar
// required for query_params filters; it is not JSON. Keys are sorted so the
// output is deterministic.
func formatObject(m map[string]any) (string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		text, present, err := formatValue(m[k])
		if err != nil {
			return "", fmt.Errorf("field %s: %w", k, err)
		}
		if !present {
			continue
		}
		parts = append(parts, k+": "+text)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// formatIntList renders ids as a bracketed list, e.g. [1, 2].
func formatIntList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// jsonEmbed renders a structured value as the compact JSON literal the remote
// schema expects for column_values and defaults arguments. The service does
// not accept a JSON null in this position, so a nil map still renders as {}.
func jsonEmbed(m map[string]any) (string, error) {
	if m == nil {
		m = map[string]any{}
	}
	out, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("serialize column values: %w", err)
	}
	return string(out), nil
}

// jsonValue renders an arbitrary value as compact JSON.
func jsonValue(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serialize value: %w", err)
	}
	return string(out), nil
}

// quote renders s as a double-quoted literal, escaping the characters a
// quoted string cannot carry raw.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Bool returns a pointer to v, for the tri-state optional flags carried in
// option structs (unset, true, false).
func Bool(v bool) *bool { return &v }

// Helpers that map Go zero values onto "argument absent".

func omitZero(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func omitEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func omitEmptyList(ids []int) any {
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func omitEmptyStrings(ss []string) any {
	if len(ss) == 0 {
		return nil
	}
	return ss
}
