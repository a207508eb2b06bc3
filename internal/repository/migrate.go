package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the three record collections.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&artistModel{},
		&verificationCodeModel{},
	)
}
