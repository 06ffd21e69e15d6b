package types

// Table is a generic nested key/value document as produced by the manifest
// decoder. Values are scalars, nested Tables (as map[string]any), or arrays.
// Accessors are total: a missing or mistyped entry reports ok=false instead
// of an error, so optional manifest sections read as simply absent.
type Table map[string]any

// Table returns the nested table stored under key.
func (t Table) Table(key string) (Table, bool) {
	value, ok := t[key]
	if !ok {
		return nil, false
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	return Table(nested), true
}

// String returns the string scalar stored under key.
func (t Table) String(key string) (string, bool) {
	value, ok := t[key]
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

// AsTable converts a raw tree value into a Table if it is one.
func AsTable(value any) (Table, bool) {
	nested, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	return Table(nested), true
}
