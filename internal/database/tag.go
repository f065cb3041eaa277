package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Tag is a user-owned label that can be attached to recipes.
// Names are not unique per owner.
type Tag struct {
	gorm.Model
	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`
}

func (c *Client) CreateTag(ctx context.Context, userID uint, name string) (*Tag, error) {
	tag := Tag{
		Name:   name,
		UserID: userID,
	}
	if err := c.db.WithContext(ctx).Create(&tag).Error; err != nil {
		log.Error("failed to create tag", "error", err)
		return nil, err
	}
	return &tag, nil
}

// GetTags returns the user's tags ordered by name. With assignedOnly set,
// only tags attached to at least one of the user's recipes are returned,
// de-duplicated even when a tag is attached to several recipes.
func (c *Client) GetTags(ctx context.Context, userID uint, assignedOnly bool) ([]Tag, error) {
	q := c.db.WithContext(ctx).Model(&Tag{}).Where("tags.user_id = ?", userID)
	if assignedOnly {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").Distinct("tags.*")
	}

	var tags []Tag
	if err := q.Order("tags.name").Find(&tags).Error; err != nil {
		log.Error("failed to get tags", "error", err)
		return nil, err
	}
	return tags, nil
}

// GetTagsByIDs resolves tag ids within the user's scope. The result may be
// shorter than ids when some of them don't exist or belong to another user.
func (c *Client) GetTagsByIDs(ctx context.Context, userID uint, ids []uint) ([]Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []Tag
	if err := c.db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, ids).Find(&tags).Error; err != nil {
		log.Error("failed to get tags by ids", "error", err)
		return nil, err
	}
	return tags, nil
}

// GetAllTags returns every tag, for the admin endpoints.
func (c *Client) GetAllTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.db.WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		log.Error("failed to get all tags", "error", err)
		return nil, err
	}
	return tags, nil
}
