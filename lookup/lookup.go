package lookup

import (
	"intent-lab/domain"
	"slices"
)

// Side selects which half of an example a lookup is built from.
type Side func(example domain.Example) domain.Bag

var (
	InputSide  Side = func(example domain.Example) domain.Bag { return example.Input }
	OutputSide Side = func(example domain.Example) domain.Bag { return example.Output }
)

// Lookup assigns dense ids to string keys in first-seen order.
// Ids never change once assigned and always cover 0..Len()-1.
type Lookup struct {
	dict  map[string]int
	items []string
}

func NewLookup() *Lookup {
	return &Lookup{dict: make(map[string]int)}
}

// NewLookupFromData builds a lookup from one side of every example of corpus.
func NewLookupFromData(corpus []domain.Example, side Side) *Lookup {
	l := NewLookup()
	l.BuildFromData(corpus, side)
	return l
}

// Add gives key the next id. Adding a known key is a no-op.
func (l *Lookup) Add(key string) {
	if _, ok := l.dict[key]; ok {
		return
	}
	l.dict[key] = len(l.items)
	l.items = append(l.items, key)
}

// BuildFromData adds every key of the selected side, example by example and
// in bag order within an example.
func (l *Lookup) BuildFromData(corpus []domain.Example, side Side) {
	for _, example := range corpus {
		for key := range side(example).All() {
			l.Add(key)
		}
	}
}

// Prepare encodes bag with the known ids. Unknown keys are dropped: there is
// no reserved id for them.
func (l *Lookup) Prepare(bag domain.Bag) domain.SparseVector {
	vector := domain.NewSparseVector(bag.Len())
	for key, weight := range bag.All() {
		if id, ok := l.dict[key]; ok {
			vector.Set(id, weight)
		}
	}
	return vector
}

func (l *Lookup) ID(key string) (int, bool) {
	id, ok := l.dict[key]
	return id, ok
}

func (l *Lookup) Key(id int) (string, bool) {
	if id < 0 || id >= len(l.items) {
		return "", false
	}
	return l.items[id], true
}

// Items returns the keys indexed by id.
func (l *Lookup) Items() []string {
	return slices.Clone(l.items)
}

func (l *Lookup) Len() int {
	return len(l.items)
}
