package arena

import (
	"fmt"
	"reflect"
	"sync"
)

var pointerFreeCache sync.Map // reflect.Type -> bool

// mustBePointerFree panics when T contains Go pointers. Arena chunks are
// opaque to the collector, so a stored pointer would not keep its target
// alive.
func mustBePointerFree[T any](op string) {
	t := reflect.TypeFor[T]()
	if cached, ok := pointerFreeCache.Load(t); ok {
		if !cached.(bool) {
			panic(fmt.Sprintf("arena: %s of pointer-bearing type %v", op, t))
		}
		return
	}
	free := isPointerFree(t)
	pointerFreeCache.Store(t, free)
	if !free {
		panic(fmt.Sprintf("arena: %s of pointer-bearing type %v", op, t))
	}
}

func isPointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isPointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, slices, strings, maps, chans, funcs, interfaces.
		return false
	}
}
