package domain

import "time"

type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleTeacher UserRole = "TEACHER"
	RoleAdmin   UserRole = "ADMIN"
)

type User struct {
	ID        uint64
	Login     string
	Password  string
	Role      UserRole
	CreatedAt time.Time
}
