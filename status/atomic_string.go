package status

import "sync/atomic"

// AtomicString holds a short label such as the current simulation mode.
// Zero value reads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label
func (s *AtomicString) Store(val string) {
	s.ptr.Store(&val)
}

// Load returns the label
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
