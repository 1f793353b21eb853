package langext

import (
	"fmt"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
)

// IsNil reports whether i is the absence marker of its type: an untyped nil
// or a nil pointer, interface, map, slice, channel, func or unsafe pointer.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens an aggregated error into its parts. A nil error yields
// an empty slice and any other error a single-element one.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if merr, ok := err.(*multierror.Error); ok {
		return merr.WrappedErrors()
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

var (
	exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

	// pointers compare by identity at every depth
	samePointer = cmp.FilterPath(func(p cmp.Path) bool {
		t := p.Last().Type()
		return t != nil && t.Kind() == reflect.Pointer
	}, cmp.Comparer(func(a, b any) bool { return a == b }))
)

// equalValues compares payloads structurally, except that pointers (and so
// most errors) compare by identity. NullResultError equals only itself.
func equalValues(a, b any) bool {
	if isNullResult(a) || isNullResult(b) {
		return isNullResult(a) && isNullResult(b)
	}
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b) && reflect.TypeOf(a) == reflect.TypeOf(b)
	}
	if reflect.TypeOf(a).Kind() == reflect.Pointer {
		return a == b
	}
	return cmp.Equal(a, b, exportAll, samePointer)
}

type hasher interface {
	Hash() uint64
}

func hashValue(v any) uint64 {
	if h, ok := v.(hasher); ok {
		return h.Hash()
	}

	d := xxhash.New()
	switch x := v.(type) {
	case time.Time:
		// time.Time.Equal ignores location and the monotonic reading
		_, _ = fmt.Fprintf(d, "%T|%d", x, x.UnixNano())
	default:
		if v != nil && reflect.TypeOf(v).Kind() == reflect.Pointer {
			_, _ = fmt.Fprintf(d, "%T|%p", v, v)
		} else {
			_, _ = fmt.Fprintf(d, "%T|%v", v, v)
		}
	}
	return d.Sum64()
}
