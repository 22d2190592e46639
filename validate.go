// File: rcparams/validate.go
package rcparams

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
)

// Validator maps a raw value to its canonical form or reports why it is
// invalid. Validators are pure; the one exception is the backend choice,
// which consults the registered-backends table (see backend.go).
type Validator func(value any) (any, error)

// StatsModule is the capability required of a non-string stats.module
// value: an interval estimate and a convergence diagnostic.
type StatsModule interface {
	// ETI returns the equal-tailed credible interval bounds for prob.
	ETI(values []float64, prob float64) (float64, float64)
	// RHat returns the rank-normalized split R-hat convergence diagnostic.
	RHat(chains [][]float64) float64
}

// isNone reports whether a raw value stands for "unset": nil or the
// case-insensitive string "none".
func isNone(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.EqualFold(s, "none")
	}
	return false
}

// makeChoice builds a validator accepting the given lower-case string
// values. Input is coerced to a string and case-folded; the literal
// strings "true" and "false" canonicalize to booleans.
func makeChoice(accepted []string, allowNone bool) Validator {
	set := make(map[string]bool, len(accepted))
	for _, v := range accepted {
		set[v] = true
	}
	sorted := slices.Sorted(slices.Values(accepted))

	return func(value any) (any, error) {
		if allowNone && isNone(value) {
			return nil, nil
		}
		s, err := choiceString(value)
		if err != nil {
			return nil, err
		}
		if !set[s] {
			return nil, choiceError(s, sorted, allowNone)
		}
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return s, nil
	}
}

// makeIntChoice builds a validator accepting the given integer values.
func makeIntChoice(accepted ...int) Validator {
	sorted := slices.Clone(accepted)
	slices.Sort(sorted)

	return func(value any) (any, error) {
		i, err := asInt(value)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(sorted, i) {
			return nil, fmt.Errorf("%w: %d is not one of %v", ErrInvalidChoice, i, sorted)
		}
		return i, nil
	}
}

// makeChoiceRegex builds a choice validator that falls back to a set of
// regular expressions when the exact match fails. Patterns match at the
// start of the value.
func makeChoiceRegex(accepted, patterns []string, allowNone bool) Validator {
	set := make(map[string]bool, len(accepted))
	for _, v := range accepted {
		set[v] = true
	}
	sorted := slices.Sorted(slices.Values(accepted))
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pat := range patterns {
		compiled = append(compiled, regexp.MustCompile("^(?:"+pat+")"))
	}

	return func(value any) (any, error) {
		if allowNone && isNone(value) {
			return nil, nil
		}
		s, err := choiceString(value)
		if err != nil {
			return nil, err
		}
		if set[s] {
			switch s {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return s, nil
		}
		for _, re := range compiled {
			if re.MatchString(s) {
				return s, nil
			}
		}
		return nil, fmt.Errorf("%w: %v is not one of %v or in regex %v%s",
			ErrInvalidChoice, s, sorted, patterns, noneSuffix(allowNone))
	}
}

// choiceString coerces a choice input to its case-folded comparison
// form. nil reads as "none" so it is reported against the accepted
// values rather than as a conversion failure.
func choiceString(value any) (string, error) {
	if value == nil {
		return "none", nil
	}
	s, err := asString(value)
	if err != nil {
		return "", err
	}
	return strings.ToLower(s), nil
}

func choiceError(value any, accepted []string, allowNone bool) error {
	return fmt.Errorf("%w: %v is not one of %v%s", ErrInvalidChoice, value, accepted, noneSuffix(allowNone))
}

func noneSuffix(allowNone bool) string {
	if allowNone {
		return " nor none"
	}
	return ""
}

// validatePositiveInt accepts natural numbers.
func validatePositiveInt(value any) (any, error) {
	i, err := asInt(value)
	if err != nil {
		return nil, err
	}
	if i <= 0 {
		return nil, fmt.Errorf("%w: only positive values are valid", ErrOutOfRange)
	}
	return i, nil
}

// validateFloat accepts anything coercible to a float64.
func validateFloat(value any) (any, error) {
	f, err := asFloat(value)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// validateString accepts anything coercible to a string.
func validateString(value any) (any, error) {
	s, err := asString(value)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// validateProbability accepts floats in [0, 1].
func validateProbability(value any) (any, error) {
	f, err := asFloat(value)
	if err != nil {
		return nil, err
	}
	if f < 0 || f > 1 {
		return nil, fmt.Errorf("%w: only values between 0 and 1 are valid", ErrOutOfRange)
	}
	return f, nil
}

// validateBoolean accepts booleans and the case-insensitive strings
// "true" and "false".
func validateBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return nil, fmt.Errorf("%w to bool: only boolean values are valid, got %v", ErrConversion, value)
}

// orNone wraps a validator so that nil or "none" short-circuits to nil.
func orNone(base Validator) Validator {
	return func(value any) (any, error) {
		if isNone(value) {
			return nil, nil
		}
		return base(value)
	}
}

// validateStatsModule accepts a module name, or any value implementing
// the StatsModule capability interface.
func validateStatsModule(value any) (any, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	if _, ok := value.(StatsModule); ok {
		return value, nil
	}
	return nil, fmt.Errorf(
		"%w to stats module: only strings or values with eti and rhat statistical methods are valid",
		ErrConversion)
}

// makeIterable builds a validator for ordered sequences whose elements
// pass scalarValidator. Strings split on commas with surrounding
// whitespace and bracket characters trimmed. Maps (unordered) and
// non-iterables are rejected. length < 0 means any length.
func makeIterable(scalarValidator Validator, length int, allowNone, allowAuto bool) Validator {
	return func(value any) (any, error) {
		if allowNone && isNone(value) {
			return nil, nil
		}
		var elements []any
		if s, ok := value.(string); ok {
			if allowAuto && strings.EqualFold(s, "auto") {
				return "auto", nil
			}
			for _, part := range strings.Split(s, ",") {
				if strings.TrimSpace(part) == "" {
					continue
				}
				elements = append(elements, strings.Trim(part, "([ ])"))
			}
		} else {
			rv := reflect.ValueOf(value)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				for i := 0; i < rv.Len(); i++ {
					elements = append(elements, rv.Index(i).Interface())
				}
			default:
				return nil, fmt.Errorf("%w: only ordered iterable values are valid, got %T",
					ErrConversion, value)
			}
		}

		canonical := make([]any, 0, len(elements))
		for _, elem := range elements {
			cval, err := scalarValidator(elem)
			if err != nil {
				return nil, err
			}
			canonical = append(canonical, cval)
		}
		if length >= 0 && len(canonical) != length {
			return nil, fmt.Errorf("%w: iterable must be of length %d", ErrOutOfRange, length)
		}
		return canonical, nil
	}
}

// validateDims validates ordered dimension-name sequences, canonicalizing
// to []string.
func validateDims(value any) (any, error) {
	iterable := makeIterable(validateString, -1, false, false)
	cval, err := iterable(value)
	if err != nil {
		return nil, err
	}
	elems := cval.([]any)
	dims := make([]string, 0, len(elems))
	for _, elem := range elems {
		dims = append(dims, elem.(string))
	}
	return dims, nil
}

// markerNames are the marker styles understood by the bokeh backend.
var markerNames = []string{
	"asterisk", "circle", "circle_cross", "circle_dot", "circle_x",
	"circle_y", "cross", "dash", "diamond", "diamond_cross", "diamond_dot",
	"dot", "hex", "hex_dot", "inverted_triangle", "plus", "square",
	"square_cross", "square_dot", "square_pin", "square_x", "star",
	"star_dot", "triangle", "triangle_dot", "triangle_pin", "x", "y",
}

// validateMarker accepts a marker style name.
func validateMarker(value any) (any, error) {
	s, err := asString(value)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(markerNames, s) {
		return nil, fmt.Errorf("%w: %v is not one of %v", ErrInvalidChoice, s, markerNames)
	}
	return s, nil
}
