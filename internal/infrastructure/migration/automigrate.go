package migration

import (
	"fmt"

	"gorm.io/gorm"

	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AdminModel{},
		&models.ClientModel{},
		&models.TicketModel{},
		&models.UpdateLogModel{},
		&models.AccessLogModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Foreign keys are not created; cascades are handled by the repositories.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{logger: log.Named("migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}
	s.logger.Infow("running gorm auto-migrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
