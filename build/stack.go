package build

// pending is a part reference waiting to be resolved.
type pending struct {
	partID   string
	modelDir string
}

// stack is a LIFO worklist of pending references. It is owned by a single
// goroutine.
type stack struct {
	items []pending
}

// PushAll pushes refs so that refs[0] is popped first, matching the order a
// recursive descent would visit them in.
func (s *stack) PushAll(refs []pending) {
	for i := len(refs) - 1; i >= 0; i-- {
		s.items = append(s.items, refs[i])
	}
}

// Pop returns the most recently pushed reference.
// Returns false if the stack is empty.
func (s *stack) Pop() (pending, bool) {
	n := len(s.items)
	if n == 0 {
		return pending{}, false
	}
	p := s.items[n-1]
	s.items = s.items[:n-1]
	return p, true
}

// Len returns the number of waiting references.
func (s *stack) Len() int {
	return len(s.items)
}
