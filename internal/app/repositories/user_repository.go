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
	"github.com/learnsetu/lms-backend/internal/pkg/dberrors"
	"github.com/learnsetu/lms-backend/internal/pkg/logger"
)

// userColumns is the full column list scanned into models.User
var userColumns = []string{
	"id", "email", "password",
	"first_name", "surname", "father_or_husband_name", "username", "mobile",
	"gender", "dob",
	"district", "village", "address", "pincode",
	"education", "occupation", "occupation_sector",
	"hindi_knowledge", "english_knowledge", "computer_knowledge", "language_course",
	"module", "aadhar_number", "photo_url", "birth_proof_url",
	"seva_member", "seva_member_since",
	"is_approved", "is_active", "role", "created_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password,
		&u.FirstName, &u.Surname, &u.FatherOrHusbandName, &u.Username, &u.Mobile,
		&u.Gender, &u.DOB,
		&u.District, &u.Village, &u.Address, &u.Pincode,
		&u.Education, &u.Occupation, &u.OccupationSector,
		&u.HindiKnowledge, &u.EnglishKnowledge, &u.ComputerKnowledge, &u.LanguageCourse,
		&u.Module, &u.AadharNumber, &u.PhotoURL, &u.BirthProofURL,
		&u.SevaMember, &u.SevaMemberSince,
		&u.IsApproved, &u.IsActive, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user row and returns its id. A duplicate email
// maps to apperrors.ErrEmailAlreadyExists.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	querySql, args, err := r.sb.Insert("users").
		Columns(
			"email", "password",
			"first_name", "surname", "father_or_husband_name", "username", "mobile",
			"gender", "dob",
			"district", "village", "address", "pincode",
			"education", "occupation", "occupation_sector",
			"hindi_knowledge", "english_knowledge", "computer_knowledge", "language_course",
			"module", "aadhar_number", "photo_url", "birth_proof_url",
			"seva_member", "seva_member_since", "role",
		).
		Values(
			user.Email, user.Password,
			user.FirstName, user.Surname, user.FatherOrHusbandName, user.Username, user.Mobile,
			user.Gender, user.DOB,
			user.District, user.Village, user.Address, user.Pincode,
			user.Education, user.Occupation, user.OccupationSector,
			user.HindiKnowledge, user.EnglishKnowledge, user.ComputerKnowledge, user.LanguageCourse,
			user.Module, user.AadharNumber, user.PhotoURL, user.BirthProofURL,
			user.SevaMember, user.SevaMemberSince, user.Role,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting user")
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	return id, nil
}

// EmailExists reports whether a user with the given email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// GetActiveByEmail retrieves an active user by email. Inactive accounts are
// invisible to login.
func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	querySql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return user, nil
}

// GetAllUsers retrieves all users, newest first
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	querySql, args, err := r.sb.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, nil
}

// SetApproval updates the approval and active flags of a user
func (r *UserRepository) SetApproval(ctx context.Context, id int64, approved bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_approved = $1, is_active = $1 WHERE id = $2`,
		approved, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update user approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user row permanently
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
