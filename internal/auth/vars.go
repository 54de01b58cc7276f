package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VariableNotFoundValue is what Var answers for names absent from the cache.
const VariableNotFoundValue = "VARIABLE_NOT_FOUND"

// GetVariable returns the named application variable, consulting the cache
// first and the store on a miss. A negative result is not cached: variables
// may be created after the first lookup, so the next call retries the fetch.
func (e *Engine) GetVariable(ctx context.Context, name string) (string, error) {
	e.mu.Lock()
	if v, ok := e.vars[name]; ok {
		e.mu.Unlock()
		return v, nil
	}
	e.mu.Unlock()

	body, err := e.store.Get(ctx, e.varPath(name))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if body == nil {
		return "", fmt.Errorf("%w: %s", ErrVariableNotFound, name)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("%w: variable %s: %v", ErrParse, name, err)
	}
	v := stringifyValue(raw)

	e.mu.Lock()
	e.vars[name] = v
	e.mu.Unlock()

	return v, nil
}

// RefreshVariables bulk-fetches all application-scoped variables and replaces
// the local mapping wholesale, returning the new count. On a fetch or parse
// failure the mapping is left unchanged. An absent variables document is a
// successful fetch of zero variables.
func (e *Engine) RefreshVariables(ctx context.Context) (int, error) {
	body, err := e.store.Get(ctx, e.varsPath())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	fresh := make(map[string]string)
	if body != nil {
		var raw map[string]any
		if err := json.Unmarshal(body, &raw); err != nil {
			return 0, fmt.Errorf("%w: variables: %v", ErrParse, err)
		}
		for k, v := range raw {
			fresh[k] = stringifyValue(v)
		}
	}

	e.mu.Lock()
	e.vars = fresh
	e.mu.Unlock()

	return len(fresh), nil
}

// Var is a cache-only lookup: it never touches the store and answers
// VariableNotFoundValue for unknown names.
func (e *Engine) Var(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v, ok := e.vars[name]; ok {
		return v
	}
	return VariableNotFoundValue
}

// Value is the typed accessor over the cache: "true"/"false" (any case)
// becomes bool, an all-digit string becomes int, a digit string with exactly
// one decimal point becomes float64, everything else passes through as
// string. Unknown names yield nil.
func (e *Engine) Value(name string) any {
	v := e.Var(name)
	if v == VariableNotFoundValue {
		return nil
	}
	return inferValue(v)
}

func inferValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}

	if isDigits(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return s
	}

	if strings.Count(s, ".") == 1 && isDigits(strings.Replace(s, ".", "", 1)) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stringifyValue renders a decoded JSON value the way the variable cache
// stores it: scalars as their text form, structures re-encoded as JSON.
func stringifyValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case nil:
		return ""
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
