// File: rcparams/convert.go
package rcparams

import (
	"fmt"
	"reflect"
	"strconv"
)

// asString coerces a raw value to a string for the choice validators.
func asString(val any) (string, error) {
	if val == nil {
		return "", fmt.Errorf("%w to string: value is nil", ErrConversion)
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}

	return "", fmt.Errorf("%w to string: unsupported type %T", ErrConversion, val)
}

// asInt coerces a raw value to an int. Floats truncate; strings must be
// integer literals.
func asInt(val any) (int, error) {
	if val == nil {
		return 0, fmt.Errorf("%w to int: value is nil", ErrConversion)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(int(^uint(0)>>1)) {
			return 0, fmt.Errorf("%w to int: %d overflows", ErrConversion, u)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		return int(rv.Float()), nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		s := rv.String()
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w to int: %q", ErrConversion, s)
		}
		return int(i), nil
	}

	return 0, fmt.Errorf("%w to int: unsupported type %T", ErrConversion, val)
}

// asFloat coerces a raw value to a float64.
func asFloat(val any) (float64, error) {
	if val == nil {
		return 0, fmt.Errorf("%w to float: value is nil", ErrConversion)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		s := rv.String()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w to float: %q", ErrConversion, s)
		}
		return f, nil
	}

	return 0, fmt.Errorf("%w to float: unsupported type %T", ErrConversion, val)
}

// String retrieves a string parameter. Conversion is attempted for
// non-string canonical values.
func (p *RcParams) String(key string) (string, error) {
	val, found := p.Get(key)
	if !found {
		return "", fmt.Errorf("parameter not set: %s", key)
	}
	if val == nil {
		return "", nil
	}
	s, err := asString(val)
	if err != nil {
		return "", fmt.Errorf("parameter %s: %w", key, err)
	}
	return s, nil
}

// Int retrieves an integer parameter.
func (p *RcParams) Int(key string) (int, error) {
	val, found := p.Get(key)
	if !found {
		return 0, fmt.Errorf("parameter not set: %s", key)
	}
	if val == nil {
		return 0, fmt.Errorf("parameter %s is none, cannot convert to int", key)
	}
	i, err := asInt(val)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", key, err)
	}
	return i, nil
}

// Float64 retrieves a floating-point parameter.
func (p *RcParams) Float64(key string) (float64, error) {
	val, found := p.Get(key)
	if !found {
		return 0, fmt.Errorf("parameter not set: %s", key)
	}
	if val == nil {
		return 0, fmt.Errorf("parameter %s is none, cannot convert to float64", key)
	}
	f, err := asFloat(val)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", key, err)
	}
	return f, nil
}

// Bool retrieves a boolean parameter.
func (p *RcParams) Bool(key string) (bool, error) {
	val, found := p.Get(key)
	if !found {
		return false, fmt.Errorf("parameter not set: %s", key)
	}
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %s: %w to bool: unsupported type %T", key, ErrConversion, val)
	}
	return b, nil
}

// StringSlice retrieves an ordered-sequence parameter such as
// data.sample_dims.
func (p *RcParams) StringSlice(key string) ([]string, error) {
	val, found := p.Get(key)
	if !found {
		return nil, fmt.Errorf("parameter not set: %s", key)
	}
	switch v := val.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, err := asString(elem)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", key, err)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("parameter %s: %w to []string: unsupported type %T", key, ErrConversion, val)
}
