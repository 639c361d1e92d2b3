package feature

import "fmt"

/*
Header is the ordered list of feature names of a dataset. The position of
each name is the position of the feature's value on every record. The
name to position table is built once and never modified afterwards.
*/
type Header struct {
	names   []string
	indexes map[string]int
}

/*
NewHeader takes a slice of feature names and returns a Header for them or an
error if a name is empty or repeated.
*/
func NewHeader(names []string) (*Header, error) {
	h := &Header{
		names:   make([]string, len(names)),
		indexes: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("parsing header: feature %d has no name", i+1)
		}
		if _, ok := h.indexes[name]; ok {
			return nil, fmt.Errorf("parsing header: feature %s is repeated", name)
		}
		h.names[i] = name
		h.indexes[name] = i
	}
	return h, nil
}

// Len returns the number of features in the header.
func (h *Header) Len() int {
	return len(h.names)
}

// Names returns a copy of the feature names in header order.
func (h *Header) Names() []string {
	return append([]string{}, h.names...)
}

// Name returns the name of the feature at position i.
func (h *Header) Name(i int) string {
	return h.names[i]
}

/*
Index takes a feature name and returns its position or an
*UnknownFeatureError if the header has no feature with that name.
*/
func (h *Header) Index(name string) (int, error) {
	i, ok := h.indexes[name]
	if !ok {
		return -1, &UnknownFeatureError{name}
	}
	return i, nil
}
