package simdjson

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/parser"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/tape"
)

type decoder struct {
	parser *parser.Parser
	tape   *tape.Tape
}

var decoderPool = sync.Pool{
	New: func() interface{} {
		return &decoder{
			parser: parser.New(),
			tape:   new(tape.Tape),
		}
	},
}

func newDecoder() *decoder {
	return decoderPool.Get().(*decoder)
}

func (d *decoder) release() {
	d.tape.Reset()
	decoderPool.Put(d)
}

func (d *decoder) unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("unmarshal requires non-nil pointer")
	}

	if err := d.parser.Parse(data, d.tape); err != nil {
		return err
	}

	it := d.tape.Iter()
	return d.decode(&it, rv.Elem())
}

func typeError(it *tape.Iter, dst reflect.Value) error {
	return fmt.Errorf("%w: cannot unmarshal %v into %s", ErrUnsupportedType, it.Kind(), dst.Type())
}

// decode stores the value under it into dst and moves it past the value.
func (d *decoder) decode(it *tape.Iter, dst reflect.Value) error {
	if it.Kind() == tape.KindNull {
		it.Next()
		switch dst.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
			dst.Set(reflect.Zero(dst.Type()))
		}
		return nil
	}

	// Handle pointer types
	if dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return d.decode(it, dst.Elem())
	}

	// Handle interface{} type
	if dst.Kind() == reflect.Interface {
		if dst.NumMethod() != 0 {
			return typeError(it, dst)
		}
		if v := it.Interface(); v != nil {
			dst.Set(reflect.ValueOf(v))
		}
		return nil
	}

	switch it.Kind() {
	case tape.KindTrue, tape.KindFalse:
		return d.decodeBool(it, dst)
	case tape.KindInt64:
		return d.decodeInt(it, dst)
	case tape.KindFloat64:
		return d.decodeFloat(it, dst)
	case tape.KindString:
		return d.decodeString(it, dst)
	case tape.KindArray:
		return d.decodeArray(it, dst)
	case tape.KindObject:
		return d.decodeObject(it, dst)
	default:
		return fmt.Errorf("unexpected tape word %v", it.Kind())
	}
}

func (d *decoder) decodeBool(it *tape.Iter, dst reflect.Value) error {
	if dst.Kind() != reflect.Bool {
		return typeError(it, dst)
	}
	dst.SetBool(it.Kind() == tape.KindTrue)
	it.Next()
	return nil
}

func (d *decoder) decodeInt(it *tape.Iter, dst reflect.Value) error {
	src := it.Int64()
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if dst.OverflowInt(src) {
			return fmt.Errorf("%w: %d overflows %s", ErrUnsupportedType, src, dst.Type())
		}
		dst.SetInt(src)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if src < 0 || dst.OverflowUint(uint64(src)) {
			return fmt.Errorf("%w: %d overflows %s", ErrUnsupportedType, src, dst.Type())
		}
		dst.SetUint(uint64(src))
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(float64(src))
	default:
		return typeError(it, dst)
	}
	it.Next()
	return nil
}

func (d *decoder) decodeFloat(it *tape.Iter, dst reflect.Value) error {
	src := it.Float64()
	switch dst.Kind() {
	case reflect.Float32, reflect.Float64:
		if dst.OverflowFloat(src) {
			return fmt.Errorf("%w: %v overflows %s", ErrUnsupportedType, src, dst.Type())
		}
		dst.SetFloat(src)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Only integral values in range, such as 1e3.
		if src != math.Trunc(src) || src < -(1<<63) || src >= 1<<63 || dst.OverflowInt(int64(src)) {
			return fmt.Errorf("%w: %v is not a valid %s", ErrUnsupportedType, src, dst.Type())
		}
		dst.SetInt(int64(src))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if src != math.Trunc(src) || src < 0 || src >= 1<<64 || dst.OverflowUint(uint64(src)) {
			return fmt.Errorf("%w: %v is not a valid %s", ErrUnsupportedType, src, dst.Type())
		}
		dst.SetUint(uint64(src))
	default:
		return typeError(it, dst)
	}
	it.Next()
	return nil
}

func (d *decoder) decodeString(it *tape.Iter, dst reflect.Value) error {
	switch {
	case dst.Kind() == reflect.String:
		dst.SetString(it.String())
	case dst.Kind() == reflect.Slice && dst.Type().Elem().Kind() == reflect.Uint8:
		dst.SetBytes(append([]byte(nil), it.StringBytes()...))
	default:
		return typeError(it, dst)
	}
	it.Next()
	return nil
}

func (d *decoder) decodeArray(it *tape.Iter, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Slice:
		it.Next() // Skip '['
		n := 0
		for ; it.Kind() != tape.KindArrayEnd; n++ {
			if n >= dst.Cap() {
				grown := reflect.MakeSlice(dst.Type(), dst.Len(), 2*dst.Cap()+4)
				reflect.Copy(grown, dst)
				dst.Set(grown)
			}
			if n >= dst.Len() {
				dst.SetLen(n + 1)
			}
			dst.Index(n).Set(reflect.Zero(dst.Type().Elem()))
			if err := d.decode(it, dst.Index(n)); err != nil {
				return err
			}
		}
		it.Next()
		if n == 0 && dst.IsNil() {
			dst.Set(reflect.MakeSlice(dst.Type(), 0, 0))
		}
		dst.SetLen(n)
		return nil

	case reflect.Array:
		it.Next() // Skip '['
		n := 0
		for ; it.Kind() != tape.KindArrayEnd; n++ {
			if n >= dst.Len() {
				return fmt.Errorf("%w: array too small for %s", ErrUnsupportedType, dst.Type())
			}
			if err := d.decode(it, dst.Index(n)); err != nil {
				return err
			}
		}
		it.Next()
		for ; n < dst.Len(); n++ {
			dst.Index(n).Set(reflect.Zero(dst.Type().Elem()))
		}
		return nil
	}

	return typeError(it, dst)
}

func (d *decoder) decodeObject(it *tape.Iter, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Map:
		keyType := dst.Type().Key()
		if keyType.Kind() != reflect.String {
			return fmt.Errorf("%w: map key must be string, have %s", ErrUnsupportedType, keyType)
		}
		if dst.IsNil() {
			dst.Set(reflect.MakeMap(dst.Type()))
		}

		elemType := dst.Type().Elem()
		it.Next() // Skip '{'
		for it.Kind() != tape.KindObjEnd {
			keyVal := reflect.New(keyType).Elem()
			keyVal.SetString(it.String())
			it.Next()

			elemVal := reflect.New(elemType).Elem()
			if err := d.decode(it, elemVal); err != nil {
				return err
			}
			dst.SetMapIndex(keyVal, elemVal)
		}
		it.Next()
		return nil

	case reflect.Struct:
		return d.decodeStruct(it, dst)
	}

	return typeError(it, dst)
}

func (d *decoder) decodeStruct(it *tape.Iter, dst reflect.Value) error {
	fields := cachedFields(dst.Type())

	it.Next() // Skip '{'
	for it.Kind() != tape.KindObjEnd {
		key := it.StringBytes()
		idx, ok := fields.lookup(key)
		it.Next()

		if !ok {
			it.Skip()
			continue
		}
		if err := d.decode(it, dst.Field(idx)); err != nil {
			return err
		}
	}
	it.Next()
	return nil
}

type structFields struct {
	byName map[string]int
	names  []string
	index  []int
}

// lookup matches a key exactly first, then case-insensitively.
func (f *structFields) lookup(key []byte) (int, bool) {
	if idx, ok := f.byName[string(key)]; ok {
		return idx, true
	}
	for i, name := range f.names {
		if strings.EqualFold(name, string(key)) {
			return f.index[i], true
		}
	}
	return 0, false
}

var fieldCache sync.Map // reflect.Type -> *structFields

func cachedFields(typ reflect.Type) *structFields {
	if f, ok := fieldCache.Load(typ); ok {
		return f.(*structFields)
	}

	f := &structFields{byName: make(map[string]int)}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		// Get JSON tag
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name := field.Name
		if n, _, _ := strings.Cut(tag, ","); n != "" {
			name = n
		}
		f.byName[name] = i
		f.names = append(f.names, name)
		f.index = append(f.index, i)
	}

	actual, _ := fieldCache.LoadOrStore(typ, f)
	return actual.(*structFields)
}
