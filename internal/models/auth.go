package models

import "github.com/golang-jwt/jwt/v5"

// SignupRequest holds the registration payload. Role-specific fields are
// optional at the JSON layer; the auth service enforces the per-role rules.
type SignupRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Phone    string   `json:"phone" validate:"required"`
	Role     UserRole `json:"role" validate:"required"`

	StudentClass    *int      `json:"studentClass"`
	StudentParent   *string   `json:"studentParent"`
	TeacherSubjects *[]string `json:"teacherSubjects"`
	ParentChild     *string   `json:"parentChild"`
}

// LoginRequest holds credentials for authenticating a user. Role is part of
// the lookup key, not a post-check.
type LoginRequest struct {
	Email    string   `json:"email" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Role     UserRole `json:"role" validate:"required"`
}

// LoginResult carries the issued credential and the authenticated user.
type LoginResult struct {
	Token string
	User  *User
}

// UserInfo describes the authenticated identity derived from claims.
type UserInfo struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// JWTClaims represents the session credential payload.
type JWTClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
