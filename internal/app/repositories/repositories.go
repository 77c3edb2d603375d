package repositories

import (
	"github.com/learnsetu/lms-backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	CatalogRepository      *CatalogRepository
	CustomCourseRepository *CustomCourseRepository
	ExamRepository         *ExamRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database.Pool),
		CatalogRepository:      NewCatalogRepository(database.Pool),
		CustomCourseRepository: NewCustomCourseRepository(database),
		ExamRepository:         NewExamRepository(database.Pool),
	}
}
