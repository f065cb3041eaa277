package models

// CreateUserRequest is the payload for user registration.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// TokenRequest is the payload for token issuance.
type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateMeRequest is the payload for profile updates. Nil fields are left
// unchanged.
type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UserResponse is the representation of a user. It never carries the password.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MeResponse is the profile representation returned by the me endpoint.
type MeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AdminUserResponse is the representation of a user on the admin endpoints.
type AdminUserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	IsActive    bool   `json:"is_active"`
}

// AdminUpdateUserRequest is the payload for admin user updates.
type AdminUpdateUserRequest struct {
	Name     *string `json:"name"`
	IsStaff  *bool   `json:"is_staff"`
	IsActive *bool   `json:"is_active"`
}

// CreateAttributeRequest is the payload for creating a tag or an ingredient.
type CreateAttributeRequest struct {
	Name string `json:"name" binding:"required"`
}

// AttributeResponse is the representation of a tag or an ingredient.
type AttributeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateRecipeRequest is the payload for creating a recipe, and for PUT
// where omitted tag/ingredient lists clear the associations.
type CreateRecipeRequest struct {
	Title       string  `json:"title" binding:"required"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Tags        []uint  `json:"tags"`
	Ingredients []uint  `json:"ingredients"`
}

// UpdateRecipeRequest is the payload for PATCH. Nil fields are left
// unchanged; a non-nil Tags or Ingredients list replaces the full
// association set.
type UpdateRecipeRequest struct {
	Title       *string  `json:"title"`
	TimeMinutes *int     `json:"time_minutes"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`
	Tags        *[]uint  `json:"tags"`
	Ingredients *[]uint  `json:"ingredients"`
}

// RecipeResponse is the list representation of a recipe, with tag and
// ingredient ids only.
type RecipeResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Image       *string `json:"image"`
	Tags        []uint  `json:"tags"`
	Ingredients []uint  `json:"ingredients"`
}

// RecipeDetailResponse is the detail representation, with nested tag and
// ingredient objects.
type RecipeDetailResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       float64             `json:"price"`
	Link        string              `json:"link"`
	Image       *string             `json:"image"`
	Tags        []AttributeResponse `json:"tags"`
	Ingredients []AttributeResponse `json:"ingredients"`
}
