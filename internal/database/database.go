package database

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Client wraps the gorm.DB instance.
type Client struct {
	db *gorm.DB
}

// New creates a new database connection and performs migrations.
func New(dbpath string) (*Client, error) {
	db, err := gorm.Open(sqlite.Open(dbpath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&User{},
		&Tag{},
		&Ingredient{},
		&Recipe{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Client{db: db}, nil
}

// Reset deletes every row from all tables, including soft-deleted ones.
// The schema itself is kept.
func (c *Client) Reset(ctx context.Context) error {
	db := c.db.WithContext(ctx)

	for _, table := range []string{"recipe_tags", "recipe_ingredients"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil { //nolint:gosec
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	for _, model := range []any{&Recipe{}, &Tag{}, &Ingredient{}, &User{}} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

// Stats holds row counts for the db-stats command.
type Stats struct {
	Users             int64
	Recipes           int64
	Tags              int64
	Ingredients       int64
	RecipesWithImages int64
}

// GetStats returns row counts per entity.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	db := c.db.WithContext(ctx)

	if err := db.Model(&User{}).Count(&stats.Users).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := db.Model(&Recipe{}).Count(&stats.Recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}
	if err := db.Model(&Tag{}).Count(&stats.Tags).Error; err != nil {
		return nil, fmt.Errorf("failed to count tags: %w", err)
	}
	if err := db.Model(&Ingredient{}).Count(&stats.Ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to count ingredients: %w", err)
	}
	if err := db.Model(&Recipe{}).Where("image_path <> ''").Count(&stats.RecipesWithImages).Error; err != nil {
		return nil, fmt.Errorf("failed to count recipes with images: %w", err)
	}

	return &stats, nil
}
