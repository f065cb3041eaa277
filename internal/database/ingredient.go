package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Ingredient is a user-owned ingredient that can be attached to recipes.
// Structurally identical to Tag.
type Ingredient struct {
	gorm.Model
	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`
}

func (c *Client) CreateIngredient(ctx context.Context, userID uint, name string) (*Ingredient, error) {
	ingredient := Ingredient{
		Name:   name,
		UserID: userID,
	}
	if err := c.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		log.Error("failed to create ingredient", "error", err)
		return nil, err
	}
	return &ingredient, nil
}

// GetIngredients returns the user's ingredients ordered by name, optionally
// restricted to those attached to at least one of the user's recipes.
func (c *Client) GetIngredients(ctx context.Context, userID uint, assignedOnly bool) ([]Ingredient, error) {
	q := c.db.WithContext(ctx).Model(&Ingredient{}).Where("ingredients.user_id = ?", userID)
	if assignedOnly {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").Distinct("ingredients.*")
	}

	var ingredients []Ingredient
	if err := q.Order("ingredients.name").Find(&ingredients).Error; err != nil {
		log.Error("failed to get ingredients", "error", err)
		return nil, err
	}
	return ingredients, nil
}

// GetIngredientsByIDs resolves ingredient ids within the user's scope.
func (c *Client) GetIngredientsByIDs(ctx context.Context, userID uint, ids []uint) ([]Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []Ingredient
	if err := c.db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, ids).Find(&ingredients).Error; err != nil {
		log.Error("failed to get ingredients by ids", "error", err)
		return nil, err
	}
	return ingredients, nil
}

// GetAllIngredients returns every ingredient, for the admin endpoints.
func (c *Client) GetAllIngredients(ctx context.Context) ([]Ingredient, error) {
	var ingredients []Ingredient
	if err := c.db.WithContext(ctx).Order("id").Find(&ingredients).Error; err != nil {
		log.Error("failed to get all ingredients", "error", err)
		return nil, err
	}
	return ingredients, nil
}
