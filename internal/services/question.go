package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
	// pick returns a value in [0, n).
	pick func(n int) int
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db, pick: rand.Intn}
}

// NewQuestionServiceWithPicker is NewQuestionService with a custom source
// for quiz question selection.
func NewQuestionServiceWithPicker(db *gorm.DB, pick func(n int) int) *QuestionService {
	return &QuestionService{db: db, pick: pick}
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   *int
	Difficulty *int
}

func (in QuestionInput) validate() error {
	if strings.TrimSpace(in.Question) == "" {
		return &ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Answer) == "" {
		return &ValidationError{Field: "answer", Reason: "must not be empty"}
	}
	if in.Category == nil {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	if in.Difficulty == nil {
		return &ValidationError{Field: "difficulty", Reason: "is required"}
	}
	return nil
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return total, nil
}

// List returns one page of all questions ordered by id, together with the
// unpaginated total.
func (s *QuestionService) List(ctx context.Context, page int) ([]models.Question, int64, error) {
	return s.page(s.db.WithContext(ctx).Model(&models.Question{}), page)
}

func (s *QuestionService) ListByCategory(ctx context.Context, categoryID, page int) ([]models.Question, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{}).Where("category = ?", categoryID)
	return s.page(query, page)
}

// Search matches term case-insensitively anywhere in the question text.
// LIKE metacharacters in term are matched literally.
func (s *QuestionService) Search(ctx context.Context, term string, page int) ([]models.Question, int64, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	query := s.db.WithContext(ctx).Model(&models.Question{}).
		Where("LOWER(question) LIKE ? ESCAPE '!'", pattern)
	return s.page(query, page)
}

func (s *QuestionService) page(query *gorm.DB, page int) ([]models.Question, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	questions := make([]models.Question, 0, QuestionsPerPage)
	err := query.Session(&gorm.Session{}).
		Order("id ASC").
		Scopes(Paginate(page)).
		Find(&questions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("find questions: %w", err)
	}

	return questions, total, nil
}

// All returns every question ordered by id.
func (s *QuestionService) All(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	return questions, nil
}

// Create stores a new question and returns it with the new total count.
func (s *QuestionService) Create(ctx context.Context, input QuestionInput) (*models.Question, int64, error) {
	if err := input.validate(); err != nil {
		return nil, 0, err
	}

	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   *input.Category,
		Difficulty: *input.Difficulty,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, 0, fmt.Errorf("create question: %w", err)
	}

	total, err := s.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return &question, total, nil
}

// Delete removes the question and returns the remaining total count.
func (s *QuestionService) Delete(ctx context.Context, id uint) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrQuestionNotFound
	}

	return s.Count(ctx)
}

// RandomQuizQuestion picks a question not in previous, restricted to
// categoryID unless it is 0. It returns nil when nothing is left.
func (s *QuestionService) RandomQuizQuestion(ctx context.Context, previous []uint, categoryID int) (*models.Question, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	// NOT IN with an empty list would match nothing
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	var candidates []models.Question
	if err := query.Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("find quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	question := candidates[s.pick(len(candidates))]
	return &question, nil
}

// '!' rather than backslash, which MySQL treats as a string literal escape.
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
