package domain

import "time"

// Enrollment grants course access. At most one live row per (student, course);
// created on settlement, deleted on refund.
type Enrollment struct {
	ID        uint64
	StudentID uint64
	CourseID  uint64
	OrderID   uint64
	CreatedAt time.Time
}
