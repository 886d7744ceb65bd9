package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBag_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)

	b := NewBag("where", "is", "the", "is")
	b.Set("station", 0.5)
	b.Set("where", 3)

	req.Equal([]string{"where", "is", "the", "station"}, b.Keys())
	req.Equal(4, b.Len())
	weight, ok := b.Get("where")
	req.True(ok)
	req.Equal(3.0, weight)
	_, ok = b.Get("train")
	req.False(ok)
}

func TestBag_Zero_Value_Is_Usable(t *testing.T) {
	req := require.New(t)

	var b Bag
	req.False(b.Has("x"))
	b.Set("x", 1)

	req.True(b.Has("x"))
	req.Equal(map[string]float64{"x": 1}, b.ToMap())
}

func TestBag_Clone_Is_Independent(t *testing.T) {
	req := require.New(t)
	b := NewBag("a")

	c := b.Clone()
	c.Set("b", 1)

	req.Equal([]string{"a"}, b.Keys())
	req.Equal([]string{"a", "b"}, c.Keys())
}

func TestBagFromMap_Sorts_Keys(t *testing.T) {
	req := require.New(t)

	b := BagFromMap(map[string]float64{"zeta": 1, "alpha": 2, "mu": 3})

	req.Equal([]string{"alpha", "mu", "zeta"}, b.Keys())
}

func TestSparseVector_Iterates_Present_Ids_Only(t *testing.T) {
	req := require.New(t)
	v := NewSparseVector(2)
	v.Set(7, 0.5)
	v.Set(2, 1)
	v.Set(7, 2)

	var ids []int
	var weights []float64
	for id, weight := range v.All() {
		ids = append(ids, id)
		weights = append(weights, weight)
	}

	req.Equal([]int{7, 2}, ids)
	req.Equal([]float64{2, 1}, weights)
	req.Equal(7, v.MaxID())
	req.Equal(-1, SparseVector{}.MaxID())
	req.Equal(0.0, v.Weight(3))
}
