package services

import (
	"github.com/Nyandiekahh/CA-Menu-Backend/config"
	"github.com/Nyandiekahh/CA-Menu-Backend/models"
)

type ProfileInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PhoneNumber  string `json:"phone_number"`
	EmployeeID   string `json:"employee_id"`
	DepartmentID *uint  `json:"department_id"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Preload("Department").First(&user, userID).Error; err != nil {
		return nil, errNotFound("user not found")
	}

	departmentName := ""
	if user.Department != nil {
		departmentName = user.Department.Name
	}

	return map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"username":          user.Username,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"phone_number":      user.PhoneNumber,
		"employee_id":       user.EmployeeID,
		"department_id":     user.DepartmentID,
		"department_name":   departmentName,
		"is_kitchen_admin":  user.IsKitchenAdmin,
		"is_email_verified": user.IsEmailVerified,
		"date_joined":       user.CreatedAt,
	}, nil
}

// UpdateUserProfile edits the mutable profile fields. Email, role and
// verification flag are read-only here.
func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errNotFound("user not found")
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.PhoneNumber = input.PhoneNumber
	user.EmployeeID = input.EmployeeID
	if input.DepartmentID != nil {
		user.DepartmentID = input.DepartmentID
	}

	return config.DB.Save(&user).Error
}
