package markup

// Pair is one key/value entry in an Object.
type Pair struct {
	Key   string
	Value any
}

// Array holds repeated child elements in document order.
type Array []any

// Object is an ordered set of key/value pairs representing one XML
// element. Attribute keys carry the configured marker prefix, character
// data sits under the configured text key, and child elements appear
// under their tag as a string, *Object, or Array. Key order is
// insertion order.
type Object struct {
	pairs []Pair
	index map[string]int
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set adds a pair or replaces the value of an existing key in place,
// preserving its position.
func (o *Object) Set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.pairs[i].Value = value
		return
	}
	o.index[key] = len(o.pairs)
	o.pairs = append(o.pairs, Pair{Key: key, Value: value})
}

// Get returns the value for key.
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.pairs[i].Value, true
}

// Pairs returns the pairs in insertion order. The slice is a fresh copy
// on every call.
func (o *Object) Pairs() []Pair {
	out := make([]Pair, len(o.pairs))
	copy(out, o.pairs)
	return out
}

// Len returns the number of pairs.
func (o *Object) Len() int {
	return len(o.pairs)
}
