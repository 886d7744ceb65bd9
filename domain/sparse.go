package domain

import "iter"

// SparseVector holds only the present feature ids of an encoded bag, in
// encoding order, and their weights. Absent ids weigh 0 and are never visited.
type SparseVector struct {
	keys []int
	data map[int]float64
}

func NewSparseVector(capacity int) SparseVector {
	return SparseVector{
		keys: make([]int, 0, capacity),
		data: make(map[int]float64, capacity),
	}
}

// Set records the weight of id. An id already present keeps its position.
func (v *SparseVector) Set(id int, weight float64) {
	if v.data == nil {
		v.data = make(map[int]float64)
	}
	if _, ok := v.data[id]; !ok {
		v.keys = append(v.keys, id)
	}
	v.data[id] = weight
}

// Weight returns the weight of id, 0 when id is absent.
func (v SparseVector) Weight(id int) float64 {
	return v.data[id]
}

func (v SparseVector) Has(id int) bool {
	_, ok := v.data[id]
	return ok
}

func (v SparseVector) Len() int {
	return len(v.keys)
}

// Keys returns a copy of the present ids in encoding order.
func (v SparseVector) Keys() []int {
	out := make([]int, len(v.keys))
	copy(out, v.keys)
	return out
}

// All iterates over the present ids in encoding order.
func (v SparseVector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for _, id := range v.keys {
			if !yield(id, v.data[id]) {
				return
			}
		}
	}
}

// MaxID returns the highest present id, -1 for an empty vector.
func (v SparseVector) MaxID() int {
	maxID := -1
	for _, id := range v.keys {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}
