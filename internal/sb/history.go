package sb

import "fmt"

// GetHistory returns the most recent recorded operations, newest first.
func (s *SBService) GetHistory(limit int) ([]*Operation, error) {
	ops, err := s.database.ListOperations(limit)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	return ops, nil
}
