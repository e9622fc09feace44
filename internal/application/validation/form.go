package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Form is a raw field map as posted by a client. Multipart "name[]" keys are
// folded into "name".
type Form map[string][]string

func NewForm(values map[string][]string) Form {
	f := make(Form, len(values))
	for k, v := range values {
		key := strings.TrimSuffix(k, "[]")
		f[key] = append(f[key], v...)
	}

	return f
}

// FormFromJSON flattens a decoded JSON object into a Form. Arrays become
// repeated values, scalars become single values, nested objects are skipped.
func FormFromJSON(body map[string]any) Form {
	f := make(Form, len(body))
	for k, v := range body {
		key := strings.TrimSuffix(k, "[]")
		switch val := v.(type) {
		case nil:
			f[key] = []string{}
		case []any:
			for _, item := range val {
				if s, ok := scalar(item); ok {
					f[key] = append(f[key], s)
				}
			}
			if f[key] == nil {
				f[key] = []string{}
			}
		default:
			if s, ok := scalar(val); ok {
				f[key] = append(f[key], s)
			}
		}
	}

	return f
}

func scalar(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int, int64:
		return fmt.Sprint(val), true
	default:
		return "", false
	}
}

func (f Form) Has(key string) bool {
	_, ok := f[key]

	return ok
}

func (f Form) Get(key string) string {
	if v := f[key]; len(v) > 0 {
		return v[0]
	}

	return ""
}

func (f Form) All(key string) []string {
	return f[key]
}

func (f Form) Set(key string, values ...string) {
	f[key] = values
}

// Overlay returns a copy of f with every key present in other replaced.
func (f Form) Overlay(other Form) Form {
	out := make(Form, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}

	return out
}
