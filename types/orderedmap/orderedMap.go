// Package orderedmap is a small generic map that remembers insertion order.
// Lookups are O(1); iteration follows the order keys were first set.
package orderedmap

import "container/list"

// OrderedMap stores key-value pairs in insertion order
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores a key-value pair. Setting an existing key overwrites its value
// and keeps the key's original position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = keyValue[K, V]{key: key, value: val}
		return
	}
	o.store[key] = o.keys.PushBack(keyValue[K, V]{key: key, value: val})
}

// Get returns the value associated with the key. The second return value is
// false when the key doesn't exist.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}
	return e.Value.(keyValue[K, V]).value, true
}

// Delete removes the key and its associated value
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}
	o.keys.Remove(e)
	delete(o.store, key)
}

// Count returns the number of stored keys
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// ForEach calls fn for each key-value pair in insertion order until fn
// returns false
func (o *OrderedMap[K, V]) ForEach(fn func(key K, value V) bool) {
	for e := o.keys.Front(); e != nil; e = e.Next() {
		kv := e.Value.(keyValue[K, V])
		if !fn(kv.key, kv.value) {
			return
		}
	}
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	for e := o.keys.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(keyValue[K, V]).key)
	}
	return keys
}
