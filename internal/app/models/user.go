package models

import "time"

// Role values stored in users.role
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered platform user. The profile block mirrors the
// registration form; most of it is optional.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`

	FirstName           *string `json:"first_name"`
	Surname             *string `json:"surname"`
	FatherOrHusbandName *string `json:"father_or_husband_name"`
	Username            *string `json:"username"`
	Mobile              *string `json:"mobile"`
	Gender              *string `json:"gender"`
	DOB                 *string `json:"dob"`

	District *string `json:"district"`
	Village  *string `json:"village"`
	Address  *string `json:"address"`
	Pincode  *string `json:"pincode"`

	Education         *string `json:"education"`
	Occupation        *string `json:"occupation"`
	OccupationSector  *string `json:"occupation_sector"`
	HindiKnowledge    *string `json:"hindi_knowledge"`
	EnglishKnowledge  *string `json:"english_knowledge"`
	ComputerKnowledge *string `json:"computer_knowledge"`
	LanguageCourse    *string `json:"language_course"`
	Module            *string `json:"module"`

	AadharNumber  *string `json:"aadhar_number"`
	PhotoURL      *string `json:"photo_url"`
	BirthProofURL *string `json:"birth_proof_url"`

	SevaMember      *string `json:"seva_member"`
	SevaMemberSince *string `json:"seva_member_since"`

	IsApproved bool      `json:"is_approved"`
	IsActive   bool      `json:"is_active"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}
