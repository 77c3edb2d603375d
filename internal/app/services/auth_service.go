package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/app/repositories"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
	"github.com/learnsetu/lms-backend/internal/pkg/auth"
	"github.com/learnsetu/lms-backend/internal/pkg/filestorage"
)

// AuthService defines registration and login operations
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest, photo, birthProof *multipart.FileHeader) (int64, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo    *repositories.UserRepository
	fileStorage filestorage.FileStorage
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, fileStorage filestorage.FileStorage, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		fileStorage: fileStorage,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register validates the registration form, stores the uploaded documents
// and creates the user with a hashed password.
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest, photo, birthProof *multipart.FileHeader) (int64, error) {
	if req.Email == "" || req.Password == "" {
		return 0, apperrors.NewValidationError("Email & password required")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	var photoURL, birthProofURL *string
	if photo != nil {
		saved, err := s.fileStorage.SaveFileWithPath(photo, "photos")
		if err != nil {
			return 0, fmt.Errorf("error saving photo: %w", err)
		}
		photoURL = &saved
	}
	if birthProof != nil {
		saved, err := s.fileStorage.SaveFileWithPath(birthProof, "documents")
		if err != nil {
			return 0, fmt.Errorf("error saving birth proof: %w", err)
		}
		birthProofURL = &saved
	}

	user := &models.User{
		Email:               req.Email,
		Password:            hashedPassword,
		FirstName:           req.FirstName,
		Surname:             req.Surname,
		FatherOrHusbandName: req.FatherOrHusbandName,
		Username:            req.Username,
		Mobile:              req.Mobile,
		Gender:              req.Gender,
		DOB:                 req.DOB,
		District:            req.District,
		Village:             req.Village,
		Address:             req.Address,
		Pincode:             req.Pincode,
		Education:           req.Education,
		Occupation:          req.Occupation,
		OccupationSector:    req.OccupationSector,
		HindiKnowledge:      req.HindiKnowledge,
		EnglishKnowledge:    req.EnglishKnowledge,
		ComputerKnowledge:   req.ComputerKnowledge,
		LanguageCourse:      req.LanguageCourse,
		Module:              req.Module,
		AadharNumber:        req.AadharNumber,
		PhotoURL:            photoURL,
		BirthProofURL:       birthProofURL,
		SevaMember:          req.SevaMember,
		SevaMemberSince:     req.SevaMemberSince,
		Role:                models.RoleStudent,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("user_id", id).Str("email", req.Email).Msg("User registered")
	return id, nil
}

// Login checks credentials against active users and issues a signed token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}
