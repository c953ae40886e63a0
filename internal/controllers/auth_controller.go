package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"journey_compass/internal/config"
	"journey_compass/internal/middleware"
	"journey_compass/internal/models"
	"journey_compass/pkg/resp"
)

type signupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

func SignupUser(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		resp.ServerError(c, "could not hash password")
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		FullName: input.FullName,
		Bio:      input.Bio,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			resp.Conflict(c, "username or email already in use")
			return
		}
		logrus.WithError(err).Error("SignupUser: could not create user")
		resp.ServerError(c, "could not create user")
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		resp.ServerError(c, "could not generate token")
		return
	}

	resp.Created(c, gin.H{"token": token, "user": user})
}

func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Unauthorized(c, "invalid credentials")
		} else {
			logrus.WithError(err).Error("LoginUser: database error")
			resp.ServerError(c, "database error")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		resp.ServerError(c, "could not generate token")
		return
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// Me returns the authenticated user's profile.
func Me(c *gin.Context) {
	uid := currentUserID(c)

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func UpdateProfile(c *gin.Context) {
	uid := currentUserID(c)

	var input struct {
		FullName        *string `json:"full_name"`
		Bio             *string `json:"bio"`
		ProfileImageURL *string `json:"profile_image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		resp.NotFound(c, "user not found")
		return
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = *input.ProfileImageURL
	}

	if err := config.DB.Save(&user).Error; err != nil {
		logrus.WithError(err).Error("UpdateProfile: save failed")
		resp.ServerError(c, "could not update profile")
		return
	}
	resp.OK(c, user)
}

// ChangePassword verifies the current password before storing the new hash.
func ChangePassword(c *gin.Context) {
	uid := currentUserID(c)

	var body struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		resp.NotFound(c, "user not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.CurrentPassword)); err != nil {
		resp.Unauthorized(c, "current password is incorrect")
		return
	}

	hashed, err := hashPassword(body.NewPassword)
	if err != nil {
		resp.ServerError(c, "could not hash password")
		return
	}
	user.Password = hashed

	if err := config.DB.Save(&user).Error; err != nil {
		logrus.WithError(err).Error("ChangePassword: save failed")
		resp.ServerError(c, "could not change password")
		return
	}
	resp.OK(c, gin.H{"message": "password changed"})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
