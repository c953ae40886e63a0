package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username        string `json:"username" gorm:"unique;not null" binding:"required"`
	Email           string `json:"email" gorm:"unique;not null" binding:"required,email"`
	Password        string `json:"-"`
	FullName        string `json:"full_name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`

	Routes     []Route         `gorm:"foreignKey:CreatorID" json:"routes,omitempty"`
	Preference *UserPreference `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"preference,omitempty"`
}
