package collections

import "reflect"

// Record is the usual shape of the records queried by [Where], [FindWhere], [Pluck] and [Max].
type Record = map[string]any

// Where returns the records that contain every key of criteria with an equal value.
// An empty criteria matches every record.
//
// Values are compared with ==. Values of an uncomparable type (slice, map, func)
// never match.
func Where[K comparable, V any](records []map[K]V, criteria map[K]V) []map[K]V {
	res := make([]map[K]V, 0, len(records))
	for _, r := range records {
		if matches(r, criteria) {
			res = append(res, r)
		}
	}
	return res
}

// FindWhere returns the first record that contains every key of criteria with an equal value.
func FindWhere[K comparable, V any](records []map[K]V, criteria map[K]V) (res map[K]V, ok bool) {
	for _, r := range records {
		if matches(r, criteria) {
			return r, true
		}
	}
	return
}

// Pluck returns the value of key of each record.
// Records without the key are skipped.
func Pluck[K comparable, V any](records []map[K]V, key K) []V {
	res := make([]V, 0, len(records))
	for _, r := range records {
		if v, ok := r[key]; ok {
			res = append(res, v)
		}
	}
	return res
}

// Max returns the first record holding the highest numeric value of all records.
//
// The running maximum starts at 0, so when every value is negative Max looks for a
// record with a zero field instead, and reports false if there is none.
// Non-numeric fields are ignored.
func Max[K comparable, V any](records []map[K]V) (res map[K]V, ok bool) {
	var highest float64
	for _, r := range records {
		for _, v := range r {
			if n, isNum := number(v); isNum && n > highest {
				highest = n
			}
		}
	}

	for _, r := range records {
		for _, v := range r {
			if n, isNum := number(v); isNum && n == highest {
				return r, true
			}
		}
	}
	return
}

func matches[K comparable, V any](r, criteria map[K]V) bool {
	for k, want := range criteria {
		got, ok := r[k]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

func equal[V any](a, b V) (eq bool) {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == y
	}
	if !reflect.TypeOf(x).Comparable() || !reflect.TypeOf(y).Comparable() {
		return false
	}

	defer func() {
		// A comparable struct may still hold an uncomparable interface field
		if r := recover(); r != nil {
			eq = false
		}
	}()
	return x == y
}

// number converts any integer or float kind to float64.
func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
