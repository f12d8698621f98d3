package tape

// Interface returns the current value as map[string]interface{},
// []interface{}, string, int64, float64, bool or nil, and moves past it.
func (it *Iter) Interface() interface{} {
	switch it.Kind() {
	case KindObject:
		obj := make(map[string]interface{})
		it.Next()
		for it.Kind() != KindObjEnd {
			key := it.String()
			it.Next()
			obj[key] = it.Interface()
		}
		it.Next()
		return obj
	case KindArray:
		arr := make([]interface{}, 0, 8)
		it.Next()
		for it.Kind() != KindArrayEnd {
			arr = append(arr, it.Interface())
		}
		it.Next()
		return arr
	case KindString:
		s := it.String()
		it.Next()
		return s
	case KindInt64:
		v := it.Int64()
		it.Next()
		return v
	case KindFloat64:
		v := it.Float64()
		it.Next()
		return v
	case KindTrue:
		it.Next()
		return true
	case KindFalse:
		it.Next()
		return false
	default:
		it.Next()
		return nil
	}
}
