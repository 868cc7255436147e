package models

import (
	"gorm.io/gorm"
)

type Department struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"default:true"`
	CreatedByID *uint
	Employees   []User `gorm:"foreignKey:DepartmentID"`
}

type User struct {
	gorm.Model
	Email           string `gorm:"uniqueIndex;not null"`
	Username        string `gorm:"uniqueIndex;not null"`
	Password        string `gorm:"not null"`
	FirstName       string
	LastName        string
	PhoneNumber     string `gorm:"size:15"`
	EmployeeID      string `gorm:"size:20"`
	DepartmentID    *uint
	Department      *Department
	IsKitchenAdmin  bool `gorm:"default:false"`
	IsEmailVerified bool `gorm:"default:false"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
