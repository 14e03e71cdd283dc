package http

import (
	"context"

	"gorm.io/gorm"
)

// gormPinger adapts *gorm.DB to handlers.Pinger.
type gormPinger struct {
	db *gorm.DB
}

func (p *gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
