package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"velomart-backend/helpers"
	"velomart-backend/middlewares"
	"velomart-backend/models"
	"velomart-backend/store"
)

func registerMessage(req models.RegisterRequest) string {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "Name is Required"
	case strings.TrimSpace(req.Email) == "":
		return "Email is Required"
	case strings.TrimSpace(req.Password) == "":
		return "Password is Required"
	case strings.TrimSpace(req.Phone) == "":
		return "Phone is Required"
	case strings.TrimSpace(req.Address) == "":
		return "Address is Required"
	case strings.TrimSpace(req.Answer) == "":
		return "Answer is Required"
	}
	return ""
}

// Register handles POST /auth/register.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if msg := registerMessage(req); msg != "" {
		badRequest(c, msg)
		return
	}

	existing, err := ctrl.Users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(c, "Error in registration", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Already registered, please login",
		})
		return
	}

	hashed, err := helpers.HashPassword(req.Password)
	if err != nil {
		internalError(c, "Error in registration", err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
		Address:  req.Address,
		Answer:   req.Answer,
		Role:     models.RoleUser,
	}
	if err := ctrl.Users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Already registered, please login",
			})
			return
		}
		internalError(c, "Error in registration", err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles POST /auth/login.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		badRequest(c, "Invalid email or password")
		return
	}

	user, err := ctrl.Users.GetByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, "Email is not registered")
		return
	}
	if err != nil {
		internalError(c, "Error in login", err)
		return
	}

	if !helpers.ComparePassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid Password",
		})
		return
	}

	token, err := helpers.GenerateToken(ctrl.PasetoSecretKey, user.ID.Hex())
	if err != nil {
		internalError(c, "Error in login", err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// ForgotPassword handles POST /auth/forgot-password: resets the password
// when the email and security answer match.
func (ctrl *Controller) ForgotPassword(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	switch {
	case strings.TrimSpace(req.Email) == "":
		badRequest(c, "Email is Required")
		return
	case strings.TrimSpace(req.Answer) == "":
		badRequest(c, "Answer is Required")
		return
	case strings.TrimSpace(req.NewPassword) == "":
		badRequest(c, "New Password is Required")
		return
	}

	user, err := ctrl.Users.GetByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, "Wrong Email Or Answer")
		return
	}
	if err != nil {
		internalError(c, "Error in password reset", err)
		return
	}
	if user.Answer != req.Answer {
		notFound(c, "Wrong Email Or Answer")
		return
	}

	hashed, err := helpers.HashPassword(req.NewPassword)
	if err != nil {
		internalError(c, "Error in password reset", err)
		return
	}
	if err := ctrl.Users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		internalError(c, "Error in password reset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password Reset Successfully",
	})
}

// UpdateProfile handles PUT /auth/profile: partial update of the
// signed-in user's name, password, phone, and address. Blank fields keep
// their stored values; the email is never changed here.
func (ctrl *Controller) UpdateProfile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Password != "" && len(req.Password) < 6 {
		badRequest(c, "Password should be at least 6 characters long")
		return
	}

	user, err := ctrl.Users.GetByID(ctx, c.GetString(middlewares.UserIDKey))
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, "User not found")
		return
	}
	if err != nil {
		internalError(c, "Error while updating profile", err)
		return
	}

	name, phone, address := user.Name, user.Phone, user.Address
	if strings.TrimSpace(req.Name) != "" {
		name = req.Name
	}
	if strings.TrimSpace(req.Phone) != "" {
		phone = req.Phone
	}
	if strings.TrimSpace(req.Address) != "" {
		address = req.Address
	}
	passwordHash := user.Password
	if req.Password != "" {
		passwordHash, err = helpers.HashPassword(req.Password)
		if err != nil {
			internalError(c, "Error while updating profile", err)
			return
		}
	}

	updated, err := ctrl.Users.UpdateProfile(ctx, user.ID, name, passwordHash, phone, address)
	if err != nil {
		internalError(c, "Error while updating profile", err)
		return
	}

	updated.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Profile Updated Successfully",
		"updatedUser": updated,
	})
}

// UserAuth is the route-guard probe for signed-in users.
func (ctrl *Controller) UserAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AdminAuth is the route-guard probe for admins.
func (ctrl *Controller) AdminAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
