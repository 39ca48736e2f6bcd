package auth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/haqqvault/backend/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterInput holds the sign-up form fields.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
}

// Validate checks the sign-up form, collecting all errors. Messages are
// the site's Thai copy.
func (in *RegisterInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError

	if !emailRe.MatchString(strings.TrimSpace(in.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "รูปแบบอีเมลไม่ถูกต้อง"})
	}
	if len(in.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("รหัสผ่านต้องมีอย่างน้อย %d ตัวอักษร", minPasswordLength),
		})
	}
	if in.Password != in.ConfirmPassword {
		errs = append(errs, domain.FieldError{Field: "confirmPassword", Message: "รหัสผ่านไม่ตรงกัน"})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "กรุณาระบุชื่อ"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds the login form fields.
type LoginInput struct {
	Email    string
	Password string
}

// Validate rejects blank submissions before any credential lookup.
func (in *LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "กรุณาระบุอีเมล"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "กรุณาระบุรหัสผ่าน"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProfileInput holds a partial profile edit. Nil fields are left
// unchanged.
type UpdateProfileInput struct {
	Name       *string
	NameArabic *string
	Avatar     *string
	Bio        *string
}

// Validate rejects blanking out the display name.
func (in *UpdateProfileInput) Validate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return domain.NewValidationError("name", "กรุณาระบุชื่อ")
	}
	return nil
}

func passwordLengthError(minLength int) *domain.ValidationError {
	return domain.NewValidationError("password",
		fmt.Sprintf("รหัสผ่านต้องมีอย่างน้อย %d ตัวอักษร", minLength))
}
