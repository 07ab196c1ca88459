package models

type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleGuest UserRole = "guest"
)
