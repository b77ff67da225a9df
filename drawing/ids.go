package drawing

import "sync/atomic"

// IDSource hands out process-unique identities. Containers and items draw
// from the same source, so an id is unique across both kinds. Safe for
// concurrent construction.
type IDSource struct {
	next atomic.Int64
}

func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next identity, starting at 0. Ids are never reused.
func (s *IDSource) Next() int {
	return int(s.next.Add(1) - 1)
}
