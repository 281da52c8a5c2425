package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aquadrop-backend/models"
)

// PostgresGateway keeps documents in the documents table, one row per key.
type PostgresGateway struct {
	db *gorm.DB
}

var _ Gateway = (*PostgresGateway)(nil)

func NewPostgresGateway(db *gorm.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

// Migrate creates the documents table when missing.
func (g *PostgresGateway) Migrate() error {
	return g.db.AutoMigrate(&models.Document{})
}

func (g *PostgresGateway) Load(ctx context.Context, key string) ([]byte, error) {
	var doc models.Document
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return doc.Data, nil
}

func (g *PostgresGateway) Save(ctx context.Context, docs ...Document) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range docs {
			row := models.Document{Key: d.Key, Data: d.Data}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("save %s: %w", d.Key, err)
			}
		}
		return nil
	})
}
