// Package userrepo implements the user repository over PostgreSQL with GORM.
package userrepo

import (
	"burgershop/internal/core/domain/model/user"
)

// UserDTO represents the database structure of a user row. Emails are stored
// lowercased by the aggregate, so the unique index enforces the
// case-insensitive uniqueness the domain promises.
type UserDTO struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
}

// TableName overrides the table name used by GORM.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

// toDomain converts a database row to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(dto.ID, dto.Name, dto.Email, dto.PasswordHash, role)
}
