package dto

import "github.com/learnsetu/lms-backend/internal/app/models"

// RegisterRequest carries the multipart registration form. Photo and birth
// proof files are read from the request separately.
type RegisterRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`

	FirstName           *string `form:"first_name"`
	Surname             *string `form:"surname"`
	FatherOrHusbandName *string `form:"father_or_husband_name"`
	Username            *string `form:"username"`
	Mobile              *string `form:"mobile"`
	Gender              *string `form:"gender"`
	DOB                 *string `form:"dob"`

	District *string `form:"district"`
	Village  *string `form:"village"`
	Address  *string `form:"address"`
	Pincode  *string `form:"pincode"`

	Education         *string `form:"education"`
	Occupation        *string `form:"occupation"`
	OccupationSector  *string `form:"occupation_sector"`
	HindiKnowledge    *string `form:"hindi_knowledge"`
	EnglishKnowledge  *string `form:"english_knowledge"`
	ComputerKnowledge *string `form:"computer_knowledge"`
	LanguageCourse    *string `form:"language_course"`
	Module            *string `form:"module"`

	AadharNumber    *string `form:"aadhar_number"`
	SevaMember      *string `form:"seva_member"`
	SevaMemberSince *string `form:"seva_member_since"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Registration successful"`
	UserID  int64  `json:"user_id" example:"42"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login; the password hash is never
// included.
type LoginResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Login successful"`
	User    *models.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}
