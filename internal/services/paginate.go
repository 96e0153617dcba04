package services

import (
	"math"

	"gorm.io/gorm"
)

const QuestionsPerPage = 10

// PageWindow returns the zero-based [start, end) range of a 1-based page.
// Pages below 1 are treated as page 1. Pages whose offset would overflow
// int map to a window past any data.
func PageWindow(page int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if page > math.MaxInt/QuestionsPerPage {
		return math.MaxInt - QuestionsPerPage, math.MaxInt
	}
	start = (page - 1) * QuestionsPerPage
	return start, start + QuestionsPerPage
}

// Paginate limits an ordered query to the window of the given page.
// A window past the end of the data yields no rows.
func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		start, end := PageWindow(page)
		return db.Offset(start).Limit(end - start)
	}
}
