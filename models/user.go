package models

import (
	"context"
	"time"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/utils"
)

type User struct {
	ID       int    `gorm:"primary_key" json:"id"`
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username" binding:"required"`
	Password string `gorm:"size:100;not null" json:"-"`
	Name     string `gorm:"size:128" json:"name"`
	Role     string `gorm:"size:32;not null;default:'user'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// check credentials and return the user
// (may return RecordNotFound)
func AuthenticateUser(ctx context.Context, username string, password string) (*User, error) {

	db := config.GetDB()
	var user User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}

	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &user, nil
}
