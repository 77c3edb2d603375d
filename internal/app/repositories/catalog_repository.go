package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnsetu/lms-backend/internal/app/models"
)

// CatalogRepository reads the static catalog reference data: modules,
// sessions, content parts and content items. Mutation is out of scope.
type CatalogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetModules retrieves all modules in insertion order
func (r *CatalogRepository) GetModules(ctx context.Context) ([]models.Module, error) {
	querySql, args, err := r.sb.Select("id", "module_code", "title", "course_id").
		From("modules").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	modules := []models.Module{}
	for rows.Next() {
		var m models.Module
		if err := rows.Scan(&m.ID, &m.ModuleCode, &m.Title, &m.CourseID); err != nil {
			return nil, fmt.Errorf("failed to scan module row: %w", err)
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read module rows: %w", err)
	}

	return modules, nil
}

// GetSessions retrieves all sessions (top-level and sub-sessions) ordered by
// module and insertion order
func (r *CatalogRepository) GetSessions(ctx context.Context) ([]models.Session, error) {
	querySql, args, err := r.sb.Select("id", "session_code", "title", "module_id", "parent_session_code").
		From("sessions").
		OrderBy("module_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.SessionCode, &s.Title, &s.ModuleID, &s.ParentSessionCode); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session rows: %w", err)
	}

	return sessions, nil
}

// GetContentParts retrieves all content parts grouped under their sessions
func (r *CatalogRepository) GetContentParts(ctx context.Context) ([]models.ContentPart, error) {
	querySql, args, err := r.sb.Select("id", "part_code", "title", "session_code").
		From("content_parts").
		OrderBy("session_code", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build content parts query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query content parts: %w", err)
	}
	defer rows.Close()

	parts := []models.ContentPart{}
	for rows.Next() {
		var p models.ContentPart
		if err := rows.Scan(&p.ID, &p.PartCode, &p.Title, &p.SessionCode); err != nil {
			return nil, fmt.Errorf("failed to scan content part row: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read content part rows: %w", err)
	}

	return parts, nil
}

// GetContentItems retrieves all content items ordered ascending by
// content_index within each part. The order is part of the API contract.
func (r *CatalogRepository) GetContentItems(ctx context.Context) ([]models.ContentItem, error) {
	querySql, args, err := r.sb.Select("id", "part_code", "content_index", "type", "title", "video_link", "questions_json").
		From("content_items").
		OrderBy("part_code", "content_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build content items query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query content items: %w", err)
	}
	defer rows.Close()

	items := []models.ContentItem{}
	for rows.Next() {
		var it models.ContentItem
		if err := rows.Scan(&it.ID, &it.PartCode, &it.ContentIndex, &it.Type, &it.Title, &it.VideoLink, &it.QuestionsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan content item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read content item rows: %w", err)
	}

	return items, nil
}

// CourseModuleSessionRow is one flat row of the course→module→session join.
// Session columns are nullable because modules without top-level sessions
// still appear via the left join.
type CourseModuleSessionRow struct {
	CourseID     int64
	CourseTitle  string
	ModuleID     int64
	ModuleCode   string
	ModuleTitle  string
	SessionID    *int64
	SessionCode  *string
	SessionTitle *string
}

// GetCourseModuleSessions runs the flat multi-join fetch behind the
// course→module→session listing. Row order drives output order.
func (r *CatalogRepository) GetCourseModuleSessions(ctx context.Context) ([]CourseModuleSessionRow, error) {
	querySql, args, err := r.sb.Select(
		"c.id AS course_id", "c.title AS course_title",
		"m.id AS module_id", "m.module_code", "m.title AS module_title",
		"s.id AS session_id", "s.session_code", "s.title AS session_title",
	).
		From("courses c").
		Join("modules m ON m.course_id = c.id").
		LeftJoin("sessions s ON s.module_id = m.id AND s.parent_session_code IS NULL").
		OrderBy("c.id", "m.id", "s.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query course modules: %w", err)
	}
	defer rows.Close()

	result := []CourseModuleSessionRow{}
	for rows.Next() {
		var row CourseModuleSessionRow
		if err := rows.Scan(
			&row.CourseID, &row.CourseTitle,
			&row.ModuleID, &row.ModuleCode, &row.ModuleTitle,
			&row.SessionID, &row.SessionCode, &row.SessionTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course module row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read course module rows: %w", err)
	}

	return result, nil
}
