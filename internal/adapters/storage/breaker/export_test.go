package breaker

import "github.com/sony/gobreaker/v2"

// State exposes the breaker state to tests.
func (s *Store) State() gobreaker.State {
	return s.breaker.State()
}
