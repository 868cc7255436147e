package services

import (
	"errors"
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/config"
	"github.com/Nyandiekahh/CA-Menu-Backend/models"
	"github.com/Nyandiekahh/CA-Menu-Backend/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Email        string
	Username     string
	Password     string
	FirstName    string
	LastName     string
	PhoneNumber  string
	EmployeeID   string
	DepartmentID *uint
}

// RegisterUser creates an unverified account and emails the
// verification OTP. Email delivery failure fails the request.
func RegisterUser(input RegisterInput) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        input.Email,
		Username:     input.Username,
		Password:     hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		EmployeeID:   input.EmployeeID,
		DepartmentID: input.DepartmentID,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, errConflict("an account with this email or username already exists")
	}

	if err := issueOTP(&user, models.PurposeVerification); err != nil {
		return nil, err
	}
	return &user, nil
}

func issueOTP(user *models.User, purpose string) error {
	verification := models.EmailVerification{
		UserID:  user.ID,
		OTP:     utils.GenerateOTP(),
		Purpose: purpose,
	}
	if err := config.DB.Create(&verification).Error; err != nil {
		return err
	}

	if purpose == models.PurposePasswordReset {
		return utils.SendPasswordResetEmail(user.Email, verification.OTP)
	}
	return utils.SendVerificationEmail(user.Email, verification.OTP)
}

// VerifyOTP consumes an unused, unexpired code. For the verification
// purpose it also marks the user's email verified.
func VerifyOTP(email, otp, purpose string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return errBadRequest("Invalid or expired OTP.")
	}

	var verification models.EmailVerification
	err := config.DB.
		Where("user_id = ? AND otp = ? AND purpose = ? AND is_used = ?", user.ID, otp, purpose, false).
		Order("created_at DESC").
		First(&verification).Error
	if err != nil || verification.Expired(time.Now()) {
		return errBadRequest("Invalid or expired OTP.")
	}

	if purpose == models.PurposeVerification {
		user.IsEmailVerified = true
		if err := config.DB.Save(&user).Error; err != nil {
			return err
		}
	}

	verification.IsUsed = true
	return config.DB.Save(&verification).Error
}

// AuthenticateUser checks credentials and returns a bearer token.
// Unverified accounts cannot log in.
func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Preload("Department").Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, errBadRequest("Invalid email or password.")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errBadRequest("Invalid email or password.")
	}

	if !user.IsEmailVerified {
		return "", nil, errForbidden("Please verify your email before logging in.")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.IsKitchenAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// RevokeToken denylists the bearer token presented on logout.
func RevokeToken(token string) error {
	revoked := models.RevokedToken{
		Token:     token,
		ExpiresAt: time.Now().Add(utils.TokenValidity),
	}
	err := config.DB.Create(&revoked).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil // already revoked
	}
	return err
}

// ForgotPassword issues a reset OTP. Unknown emails report success to
// the caller; the controller responds generically either way.
func ForgotPassword(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}
	return issueOTP(&user, models.PurposePasswordReset)
}

func ResetPassword(email, otp, newPassword string) error {
	if err := VerifyOTP(email, otp, models.PurposePasswordReset); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return config.DB.Model(&models.User{}).
		Where("email = ?", email).
		Update("password", hashed).Error
}
