package services

import (
	"context"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Types returns every category as an id to type label mapping.
func (s *CategoryService) Types(ctx context.Context) (map[uint]string, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	types := make(map[uint]string, len(categories))
	for _, c := range categories {
		types[c.ID] = c.Type
	}
	return types, nil
}
