package models

import (
	"github.com/recipebox/recipebox/internal/database"
	"github.com/samber/lo"
)

// ToUserResponse converts a database.User to its public representation.
func ToUserResponse(u *database.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// ToAdminUserResponse converts a database.User to its admin representation.
func ToAdminUserResponse(u *database.User) AdminUserResponse {
	return AdminUserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
	}
}

// ToAdminUserResponses converts a slice of users.
func ToAdminUserResponses(users []database.User) []AdminUserResponse {
	return lo.Map(users, func(u database.User, _ int) AdminUserResponse {
		return ToAdminUserResponse(&u)
	})
}

// ToTagResponse converts a database.Tag.
func ToTagResponse(t database.Tag) AttributeResponse {
	return AttributeResponse{
		ID:   t.ID,
		Name: t.Name,
	}
}

// ToTagResponses converts a slice of tags.
func ToTagResponses(tags []database.Tag) []AttributeResponse {
	return lo.Map(tags, func(t database.Tag, _ int) AttributeResponse {
		return ToTagResponse(t)
	})
}

// ToIngredientResponse converts a database.Ingredient.
func ToIngredientResponse(i database.Ingredient) AttributeResponse {
	return AttributeResponse{
		ID:   i.ID,
		Name: i.Name,
	}
}

// ToIngredientResponses converts a slice of ingredients.
func ToIngredientResponses(ingredients []database.Ingredient) []AttributeResponse {
	return lo.Map(ingredients, func(i database.Ingredient, _ int) AttributeResponse {
		return ToIngredientResponse(i)
	})
}

// imageURL builds the public media path for a stored image, or nil when
// no image has been uploaded.
func imageURL(imagePath string) *string {
	if imagePath == "" {
		return nil
	}
	url := "/media/" + imagePath
	return &url
}

// ToRecipeResponse converts a database.Recipe to the list representation
// with tag and ingredient ids only.
func ToRecipeResponse(r database.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       imageURL(r.ImagePath),
		Tags:        lo.Map(r.Tags, func(t database.Tag, _ int) uint { return t.ID }),
		Ingredients: lo.Map(r.Ingredients, func(i database.Ingredient, _ int) uint { return i.ID }),
	}
}

// ToRecipeResponses converts a slice of recipes.
func ToRecipeResponses(recipes []database.Recipe) []RecipeResponse {
	return lo.Map(recipes, func(r database.Recipe, _ int) RecipeResponse {
		return ToRecipeResponse(r)
	})
}

// ToRecipeDetailResponse converts a database.Recipe to the detail
// representation with nested tag and ingredient objects.
func ToRecipeDetailResponse(r database.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       imageURL(r.ImagePath),
		Tags:        ToTagResponses(r.Tags),
		Ingredients: ToIngredientResponses(r.Ingredients),
	}
}
