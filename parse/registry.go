package parse

import (
	"fmt"
	"reflect"
	"sync"
)

type parseFunc func(dst any, token string) error

var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]parseFunc)
)

// Register installs fn as the parser for values of type T. A registered
// parser takes priority over every built-in strategy. Registering the same
// type twice panics.
func Register[T any](fn func(dst *T, token string) error) {
	t := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[t]; exists {
		panic(fmt.Sprintf("parser for type '%s' already registered", t))
	}
	registry[t] = func(dst any, token string) error {
		return fn(dst.(*T), token)
	}
}

// Unregister removes the parser registered for T, if any.
func Unregister[T any]() {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, reflect.TypeFor[T]())
}

func lookup(t reflect.Type) (parseFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[t]
	return fn, ok
}
