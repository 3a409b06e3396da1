package holder

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

var (
	// ErrInvalidArgument matches every InvalidArgumentError via errors.Is.
	ErrInvalidArgument = errors.New("holder: invalid argument")

	// ErrNilCounter is returned (or panicked with, for New) when a constructor
	// is handed a nil *Counter.
	ErrNilCounter = errors.New("holder: nil counter")
)

// InvalidArgumentError is returned when a value destined for an integer field
// is not an integer.
type InvalidArgumentError struct {
	// Value is the rejected value as received.
	Value any

	// GotType is reflect.TypeOf(Value).String(), or "<nil>".
	GotType string

	// Want names the expected type. Empty means "integer".
	Want string
}

// Error implements the error interface.
func (e InvalidArgumentError) Error() string {
	// Example: holder: invalid argument "bad" (string), want integer
	want := e.Want
	if want == "" {
		want = "integer"
	}
	return "holder: invalid argument " + describe(e.Value) + " (" + e.GotType + "), want " + want
}

// Is reports whether target is ErrInvalidArgument.
func (e InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// Invalid builds an InvalidArgumentError for v. want names the expected type;
// empty means "integer".
func Invalid(v any, want string) InvalidArgumentError {
	got := "<nil>"
	if v != nil {
		got = reflect.TypeOf(v).String()
	}
	return InvalidArgumentError{Value: v, GotType: got, Want: want}
}

func invalid(v any) InvalidArgumentError { return Invalid(v, "") }

func describe(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(v)
}

// AsInt converts v to an int if it holds any Go integer kind whose value fits
// in int, including named types such as time.Duration. Booleans, floats,
// strings and nil are rejected with an InvalidArgumentError, as are integers
// that would overflow int.
func AsInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, invalid(v)
		}
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		if uint64(x) > math.MaxInt {
			return 0, invalid(v)
		}
		return int(x), nil
	case uint:
		if uint64(x) > math.MaxInt {
			return 0, invalid(v)
		}
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			return 0, invalid(v)
		}
		return int(x), nil
	default:
		return reflectInt(v)
	}
}

// reflectInt handles named integer types and uintptr.
func reflectInt(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, invalid(v)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, invalid(v)
		}
		return int(n), nil
	default:
		return 0, invalid(v)
	}
}
