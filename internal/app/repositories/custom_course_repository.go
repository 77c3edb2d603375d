package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/db"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
	"github.com/learnsetu/lms-backend/internal/pkg/logger"
)

// CustomCourseRepository handles custom course storage. Multi-row writes
// (header + selection rows + assignment rows) run in a single transaction;
// partial writes are never visible.
type CustomCourseRepository struct {
	pool *pgxpool.Pool
	tx   db.TxRunner
	sb   squirrel.StatementBuilderType
}

// NewCustomCourseRepository creates a new CustomCourseRepository
func NewCustomCourseRepository(database *db.PostgresDB) *CustomCourseRepository {
	return &CustomCourseRepository{
		pool: database.Pool,
		tx:   database,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a custom course header with its selection and assignment
// rows in one transaction and returns the new id.
func (r *CustomCourseRepository) Create(ctx context.Context, course *models.CustomCourse, selections []models.CustomCourseSelection, userIDs []int64) (int64, error) {
	var id int64

	err := r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO custom_courses (title, description, exam_id) VALUES ($1, $2, $3) RETURNING id`,
			course.Title, course.Description, course.ExamID,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert custom course: %w", err)
		}

		if err := insertSelections(ctx, tx, id, selections); err != nil {
			return err
		}
		return insertAssignments(ctx, tx, id, userIDs)
	})
	if err != nil {
		logger.Error().Err(err).Msg("Custom course create transaction rolled back")
		return 0, err
	}

	return id, nil
}

// Update rewrites a custom course header and, when replacement sets are
// supplied, fully replaces its selection and assignment rows. All of it runs
// in one transaction.
func (r *CustomCourseRepository) Update(ctx context.Context, course *models.CustomCourse, selections *[]models.CustomCourseSelection, userIDs *[]int64) error {
	err := r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var existingID int64
		err := tx.QueryRow(ctx, `SELECT id FROM custom_courses WHERE id = $1`, course.ID).Scan(&existingID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCustomCourseNotFound
			}
			return fmt.Errorf("failed to check custom course: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE custom_courses SET title = $1, description = $2, exam_id = $3 WHERE id = $4`,
			course.Title, course.Description, course.ExamID, course.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update custom course: %w", err)
		}

		// Full replace, not merge
		if selections != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM custom_course_selections WHERE custom_course_id = $1`, course.ID); err != nil {
				return fmt.Errorf("failed to clear selections: %w", err)
			}
			if err := insertSelections(ctx, tx, course.ID, *selections); err != nil {
				return err
			}
		}

		if userIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM custom_course_users WHERE custom_course_id = $1`, course.ID); err != nil {
				return fmt.Errorf("failed to clear assignments: %w", err)
			}
			if err := insertAssignments(ctx, tx, course.ID, *userIDs); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil && !errors.Is(err, apperrors.ErrCustomCourseNotFound) {
		logger.Error().Err(err).Int64("custom_course_id", course.ID).Msg("Custom course update transaction rolled back")
	}
	return err
}

func insertSelections(ctx context.Context, tx pgx.Tx, courseID int64, selections []models.CustomCourseSelection) error {
	for _, sel := range selections {
		_, err := tx.Exec(ctx,
			`INSERT INTO custom_course_selections (custom_course_id, source_course_id, module_ids) VALUES ($1, $2, $3)`,
			courseID, sel.CourseID, sel.ModuleIDs,
		)
		if err != nil {
			return fmt.Errorf("failed to insert selection row: %w", err)
		}
	}
	return nil
}

func insertAssignments(ctx context.Context, tx pgx.Tx, courseID int64, userIDs []int64) error {
	for _, userID := range userIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO custom_course_users (custom_course_id, user_id) VALUES ($1, $2)`,
			courseID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert assignment row: %w", err)
		}
	}
	return nil
}

// GetAllDetails retrieves all custom courses with exam summary, selection
// rows and assigned users, newest first.
func (r *CustomCourseRepository) GetAllDetails(ctx context.Context) ([]models.CustomCourseDetail, error) {
	details, err := r.queryDetails(ctx, nil)
	if err != nil {
		return nil, err
	}

	if err := r.attachUsers(ctx, details); err != nil {
		return nil, err
	}

	return details, nil
}

// GetByUser retrieves the custom courses assigned to one user, with exam
// summary and selection rows.
func (r *CustomCourseRepository) GetByUser(ctx context.Context, userID int64) ([]models.CustomCourseDetail, error) {
	return r.queryDetails(ctx, &userID)
}

// queryDetails loads headers (optionally filtered to one assignee) and fans
// out for the selection rows.
func (r *CustomCourseRepository) queryDetails(ctx context.Context, assigneeID *int64) ([]models.CustomCourseDetail, error) {
	headerSelect := r.sb.Select("cc.id", "cc.title", "cc.description", "cc.exam_id", "e.title AS exam_title").
		From("custom_courses cc").
		LeftJoin("exams e ON cc.exam_id = e.id").
		OrderBy("cc.id DESC")

	if assigneeID != nil {
		headerSelect = headerSelect.
			Join("custom_course_users ccu ON ccu.custom_course_id = cc.id").
			Where(squirrel.Eq{"ccu.user_id": *assigneeID})
	}

	querySql, args, err := headerSelect.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build custom courses query: %w", err)
	}

	rows, err := r.pool.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom courses: %w", err)
	}
	defer rows.Close()

	details := []models.CustomCourseDetail{}
	index := map[int64]int{}
	for rows.Next() {
		var d models.CustomCourseDetail
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.ExamID, &d.ExamTitle); err != nil {
			return nil, fmt.Errorf("failed to scan custom course row: %w", err)
		}
		d.Selections = []models.CustomCourseSelection{}
		d.Users = []models.AssignedUser{}
		index[d.ID] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read custom course rows: %w", err)
	}

	if len(details) == 0 {
		return details, nil
	}

	selRows, err := r.pool.Query(ctx,
		`SELECT custom_course_id, source_course_id, module_ids
		 FROM custom_course_selections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer selRows.Close()

	for selRows.Next() {
		var courseID int64
		var sel models.CustomCourseSelection
		if err := selRows.Scan(&courseID, &sel.CourseID, &sel.ModuleIDs); err != nil {
			return nil, fmt.Errorf("failed to scan selection row: %w", err)
		}
		if i, ok := index[courseID]; ok {
			details[i].Selections = append(details[i].Selections, sel)
		}
	}
	if err := selRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read selection rows: %w", err)
	}

	return details, nil
}

// attachUsers loads the assigned-user lists for the given details slice
func (r *CustomCourseRepository) attachUsers(ctx context.Context, details []models.CustomCourseDetail) error {
	if len(details) == 0 {
		return nil
	}

	index := map[int64]int{}
	for i := range details {
		index[details[i].ID] = i
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ccu.custom_course_id, u.id, u.first_name, u.surname,
		        CONCAT(u.first_name, ' ', COALESCE(u.surname, '')) AS full_name, u.email
		 FROM custom_course_users ccu
		 JOIN users u ON ccu.user_id = u.id
		 ORDER BY ccu.custom_course_id, u.id`)
	if err != nil {
		return fmt.Errorf("failed to query assigned users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int64
		var u models.AssignedUser
		if err := rows.Scan(&courseID, &u.ID, &u.FirstName, &u.Surname, &u.FullName, &u.Email); err != nil {
			return fmt.Errorf("failed to scan assigned user row: %w", err)
		}
		if i, ok := index[courseID]; ok {
			details[i].Users = append(details[i].Users, u)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read assigned user rows: %w", err)
	}

	return nil
}

// GetUserCourseDetail retrieves one custom course for one user, joined with
// the assignment and progress rows. Users without an assignment row get
// apperrors.ErrCourseNotAssigned, not a course view.
func (r *CustomCourseRepository) GetUserCourseDetail(ctx context.Context, userID, courseID int64) (*models.UserCourseDetail, error) {
	var d models.UserCourseDetail
	var isCompleted *bool

	err := r.pool.QueryRow(ctx,
		`SELECT cc.id, cc.title, cc.description, cc.exam_id, ucp.is_completed
		 FROM custom_courses cc
		 JOIN custom_course_users ccu ON cc.id = ccu.custom_course_id
		 LEFT JOIN user_course_progress ucp
		   ON cc.id = ucp.custom_course_id AND ucp.user_id = $1
		 WHERE cc.id = $2 AND ccu.user_id = $1`,
		userID, courseID,
	).Scan(&d.ID, &d.Title, &d.Description, &d.ExamID, &isCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotAssigned
		}
		return nil, fmt.Errorf("failed to query user course detail: %w", err)
	}

	d.IsCompleted = isCompleted != nil && *isCompleted
	return &d, nil
}
