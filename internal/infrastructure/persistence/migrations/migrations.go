package migrations

import (
	"gorm.io/gorm"

	"flowdesk/internal/infrastructure/persistence/models"
)

// MigrateAll brings the schema up to date for every table.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateUserTables(db); err != nil {
		return err
	}
	return MigrateTicketTables(db)
}

func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
	)
}

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TagModel{},
		&models.TicketTagModel{},
	)
}
