package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
)

// ExamRepository handles exam database operations. The question list is
// stored serialized in questions_json and always round-trips as valid JSON.
type ExamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an exam and returns its id
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) (int64, error) {
	querySql, args, err := r.sb.Insert("exams").
		Columns("title", "description", "questions_json").
		Values(exam.Title, exam.Description, string(exam.QuestionsJSON)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert exam query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert exam: %w", err)
	}

	return id, nil
}

// GetAll retrieves all exams, newest first
func (r *ExamRepository) GetAll(ctx context.Context) ([]models.Exam, error) {
	querySql, args, err := r.sb.Select("id", "title", "description", "questions_json", "created_at").
		From("exams").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list exams query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exams: %w", err)
	}
	defer rows.Close()

	exams := []models.Exam{}
	for rows.Next() {
		var e models.Exam
		var questions string
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &questions, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exam row: %w", err)
		}
		e.QuestionsJSON = []byte(questions)
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exam rows: %w", err)
	}

	return exams, nil
}

// GetByID retrieves a single exam
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	var e models.Exam
	var questions string

	err := r.db.QueryRow(ctx,
		`SELECT id, title, description, questions_json, created_at FROM exams WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Title, &e.Description, &questions, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to query exam: %w", err)
	}

	e.QuestionsJSON = []byte(questions)
	return &e, nil
}

// Update rewrites an exam row
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE exams SET title = $1, description = $2, questions_json = $3 WHERE id = $4`,
		exam.Title, exam.Description, string(exam.QuestionsJSON), exam.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}
	return nil
}

// Delete removes an exam row
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}
	return nil
}
