package models

import (
	"gorm.io/gorm"
)

type MealCategory struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Meals       []Meal `gorm:"foreignKey:CategoryID"`
}

type Meal struct {
	gorm.Model
	Name           string  `gorm:"not null"`
	Description    string  `gorm:"type:text"`
	Price          float64 `gorm:"not null"` // KSh
	CategoryID     uint    `gorm:"index"`
	Category       MealCategory
	ImageURL       string
	IsAvailable    bool `gorm:"default:true"`
	MaxPerPerson   uint `gorm:"default:1"`
	UnitsAvailable *int // nil = unlimited
	HasUnitsLeft   bool `gorm:"-"` // derived, see AfterFind
}

func (m *Meal) AfterFind(*gorm.DB) error {
	m.HasUnitsLeft = m.UnitsAvailable == nil || *m.UnitsAvailable > 0
	return nil
}
