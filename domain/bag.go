package domain

import (
	"iter"
	"slices"
	"sort"
)

// Bag is a bag of tokens: a token -> weight mapping that remembers the order
// in which tokens were first inserted. Vocabulary ids are assigned following
// that order, so two bags built the same way always encode the same way.
type Bag struct {
	keys   []string
	values map[string]float64
}

// NewBag returns a presence bag where every distinct key weighs 1.
func NewBag(keys ...string) Bag {
	b := Bag{values: make(map[string]float64, len(keys))}
	for _, key := range keys {
		b.Set(key, 1)
	}
	return b
}

// BagFromMap copies m into a bag. Keys are inserted in lexical order since
// map iteration order is random.
func BagFromMap(m map[string]float64) Bag {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	b := Bag{values: make(map[string]float64, len(m))}
	for _, key := range keys {
		b.Set(key, m[key])
	}
	return b
}

// Set stores the weight of key, appending key to the order if it is new.
func (b *Bag) Set(key string, weight float64) {
	if b.values == nil {
		b.values = make(map[string]float64)
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = weight
}

func (b Bag) Get(key string) (float64, bool) {
	weight, ok := b.values[key]
	return weight, ok
}

func (b Bag) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

func (b Bag) Len() int {
	return len(b.keys)
}

// Keys returns the keys in insertion order.
func (b Bag) Keys() []string {
	return slices.Clone(b.keys)
}

// All iterates over (key, weight) pairs in insertion order.
func (b Bag) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, key := range b.keys {
			if !yield(key, b.values[key]) {
				return
			}
		}
	}
}

// Clone returns a bag that shares no memory with b.
func (b Bag) Clone() Bag {
	c := Bag{
		keys:   slices.Clone(b.keys),
		values: make(map[string]float64, len(b.values)),
	}
	for key, weight := range b.values {
		c.values[key] = weight
	}
	return c
}

func (b Bag) ToMap() map[string]float64 {
	m := make(map[string]float64, len(b.values))
	for key, weight := range b.values {
		m[key] = weight
	}
	return m
}
