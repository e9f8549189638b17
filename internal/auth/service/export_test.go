package service

import "time"

// SetNowFunc overrides the service clock in tests.
func (s *SMSService) SetNowFunc(now func() time.Time) {
	s.now = now
}
