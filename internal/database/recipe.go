package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Recipe is the central entity. Tags and ingredients are attached through
// many-to-many join tables and always belong to the same owner.
type Recipe struct {
	gorm.Model
	Title       string `gorm:"not null"`
	TimeMinutes int
	Price       float64 `gorm:"type:decimal(5,2)"`
	Link        string
	ImagePath   string
	UserID      uint         `gorm:"not null;index"`
	Tags        []Tag        `gorm:"many2many:recipe_tags;"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;"`
}

// CreateRecipe persists a new recipe together with any associations already
// set on it.
func (c *Client) CreateRecipe(ctx context.Context, recipe *Recipe) error {
	if err := c.db.WithContext(ctx).Create(recipe).Error; err != nil {
		log.Error("failed to create recipe", "error", err)
		return err
	}
	return nil
}

// GetRecipes returns the user's recipes ordered by id, with tags and
// ingredients preloaded. Non-empty tagIDs or ingredientIDs restrict the
// result to recipes referencing at least one of the given ids; when both
// filters are supplied a recipe has to match each of them.
func (c *Client) GetRecipes(ctx context.Context, userID uint, tagIDs, ingredientIDs []uint) ([]Recipe, error) {
	q := c.db.WithContext(ctx).Where("user_id = ?", userID)

	if len(tagIDs) > 0 {
		q = q.Where("id IN (?)", c.db.Table("recipe_tags").Select("recipe_id").Where("tag_id IN ?", tagIDs))
	}
	if len(ingredientIDs) > 0 {
		q = q.Where("id IN (?)", c.db.Table("recipe_ingredients").Select("recipe_id").Where("ingredient_id IN ?", ingredientIDs))
	}

	var recipes []Recipe
	if err := q.Preload("Tags").Preload("Ingredients").Order("id").Find(&recipes).Error; err != nil {
		log.Error("failed to get recipes", "error", err)
		return nil, err
	}
	return recipes, nil
}

// GetRecipe returns a single recipe scoped to the user. A recipe owned by
// another user yields gorm.ErrRecordNotFound, never a permission error.
func (c *Client) GetRecipe(ctx context.Context, userID, id uint) (*Recipe, error) {
	var recipe Recipe
	err := c.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		First(&recipe, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get recipe", "error", err)
		}
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipeFields applies the given column updates to a recipe.
func (c *Client) UpdateRecipeFields(ctx context.Context, recipe *Recipe, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	if err := c.db.WithContext(ctx).Model(recipe).Updates(updates).Error; err != nil {
		log.Error("failed to update recipe", "error", err)
		return err
	}
	return nil
}

// ReplaceRecipeTags swaps the full tag association set. Passing an empty
// slice clears all tags.
func (c *Client) ReplaceRecipeTags(ctx context.Context, recipe *Recipe, tags []Tag) error {
	if err := c.db.WithContext(ctx).Model(recipe).Association("Tags").Replace(tags); err != nil {
		log.Error("failed to replace recipe tags", "error", err)
		return err
	}
	recipe.Tags = tags
	return nil
}

// ReplaceRecipeIngredients swaps the full ingredient association set.
func (c *Client) ReplaceRecipeIngredients(ctx context.Context, recipe *Recipe, ingredients []Ingredient) error {
	if err := c.db.WithContext(ctx).Model(recipe).Association("Ingredients").Replace(ingredients); err != nil {
		log.Error("failed to replace recipe ingredients", "error", err)
		return err
	}
	recipe.Ingredients = ingredients
	return nil
}

// SetRecipeImage stores the image path for a recipe.
func (c *Client) SetRecipeImage(ctx context.Context, recipe *Recipe, path string) error {
	if err := c.db.WithContext(ctx).Model(recipe).Update("image_path", path).Error; err != nil {
		log.Error("failed to set recipe image", "error", err)
		return err
	}
	return nil
}

// DeleteRecipe removes a recipe and its association rows, scoped to the user.
func (c *Client) DeleteRecipe(ctx context.Context, userID, id uint) error {
	recipe, err := c.GetRecipe(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Select(clause.Associations).Delete(recipe).Error; err != nil {
		log.Error("failed to delete recipe", "error", err)
		return err
	}
	return nil
}

// GetAllRecipes returns every recipe, for the admin endpoints.
func (c *Client) GetAllRecipes(ctx context.Context) ([]Recipe, error) {
	var recipes []Recipe
	if err := c.db.WithContext(ctx).Preload("Tags").Preload("Ingredients").Order("id").Find(&recipes).Error; err != nil {
		log.Error("failed to get all recipes", "error", err)
		return nil, err
	}
	return recipes, nil
}
