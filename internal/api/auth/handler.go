package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"regexp"
	"time"

	"prompt-vault/database"
	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/users"
	"prompt-vault/internal/infra/tokens"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func generateVerificationToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(err.Error()).Body())
		return
	}

	if !isPasswordStrong(input.Password) {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(
			"Password must be at least 8 characters long and contain both letters and numbers").Body())
		return
	}
	if !emailPattern.MatchString(input.Email) {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Invalid email format").Body())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to hash password").Body())
		return
	}
	hashed := string(hashedPassword)

	user := users.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     &hashed,
		AuthProvider: "local",
		Role:         "user",
		IsVerified:   false,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, apperrors.Conflict("Email may already exist").Body())
		return
	}

	token := generateVerificationToken()
	verif := users.VerificationToken{
		UserID:    user.ID,
		Token:     token,
		Type:      users.TokenTypeEmailVerify,
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}
	if err := database.DB.Create(&verif).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to create verification token").Body())
		return
	}

	if err := SendVerificationEmail(user.Email, token); err != nil {
		logrus.WithError(err).Warn("Failed to send verification email")
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully. Please check your email to verify your account."})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(err.Error()).Body())
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Invalid credentials").Body())
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, apperrors.Forbidden("Please verify your email before logging in").Body())
		return
	}

	if user.Password == nil || *user.Password == "" {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("This account uses Google sign-in").Body())
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Invalid credentials").Body())
		return
	}

	tokenString, err := tokens.Default.Issue(tokens.Payload{
		UserID: user.SubjectID(),
		Email:  user.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Could not create token").Body())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Missing token").Body())
		return
	}

	var verif users.VerificationToken
	err := database.DB.Where("token = ? AND type = ?", token, users.TokenTypeEmailVerify).First(&verif).Error
	if err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Invalid or unknown token").Body())
		return
	}
	if !verif.ExpiresAt.IsZero() && time.Now().After(verif.ExpiresAt) {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Token expired").Body())
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", verif.UserID).
		Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to verify user").Body())
		return
	}
	database.DB.Delete(&verif)

	c.JSON(http.StatusOK, gin.H{"message": "Email verified. You can now log in."})
}

func ResendVerification(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Missing or invalid email").Body())
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("User not found").Body())
		return
	}
	if user.IsVerified {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("User already verified").Body())
		return
	}

	database.DB.Where("user_id = ? AND type = ?", user.ID, users.TokenTypeEmailVerify).
		Delete(&users.VerificationToken{})

	token := generateVerificationToken()
	newToken := users.VerificationToken{
		UserID:    user.ID,
		Token:     token,
		Type:      users.TokenTypeEmailVerify,
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}
	if err := database.DB.Create(&newToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to store verification token").Body())
		return
	}

	if err := SendVerificationEmail(user.Email, token); err != nil {
		logrus.WithError(err).Warn("Failed to send verification email")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification email resent"})
}

func RequestPasswordReset(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Invalid email").Body())
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		// Don't expose whether the email exists
		c.JSON(http.StatusOK, gin.H{"message": "If your email exists, you'll receive a reset link."})
		return
	}

	database.DB.Where("user_id = ? AND type = ?", user.ID, users.TokenTypePasswordReset).
		Delete(&users.VerificationToken{})

	token := generateVerificationToken()
	reset := users.VerificationToken{
		UserID:    user.ID,
		Token:     token,
		Type:      users.TokenTypePasswordReset,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	database.DB.Create(&reset)

	if err := SendPasswordResetEmail(user.Email, token); err != nil {
		logrus.WithError(err).Warn("Failed to send password reset email")
	}

	c.JSON(http.StatusOK, gin.H{"message": "If your email exists, you'll receive a reset link."})
}

func ResetPassword(c *gin.Context) {
	var body struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Missing token or password").Body())
		return
	}
	if !isPasswordStrong(body.NewPassword) {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(
			"Password must be at least 8 characters long and contain both letters and numbers").Body())
		return
	}

	var reset users.VerificationToken
	err := database.DB.Where("token = ? AND type = ?", body.Token, users.TokenTypePasswordReset).
		First(&reset).Error
	if err != nil || time.Now().After(reset.ExpiresAt) {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Invalid or expired token").Body())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to hash password").Body())
		return
	}
	hashed := string(hashedPassword)

	if err := database.DB.Model(&users.User{}).Where("id = ?", reset.UserID).
		Update("password", hashed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to update password").Body())
		return
	}
	database.DB.Delete(&reset)

	c.JSON(http.StatusOK, gin.H{"message": "Password updated. You can now log in."})
}

func ChangePassword(c *gin.Context) {
	var body struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Missing current or new password").Body())
		return
	}

	email := c.GetString("email")
	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("User not found").Body())
		return
	}

	if user.Password == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(body.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Current password is incorrect").Body())
		return
	}
	if !isPasswordStrong(body.NewPassword) {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(
			"Password must be at least 8 characters long and contain both letters and numbers").Body())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to hash password").Body())
		return
	}
	hashed := string(hashedPassword)

	if err := database.DB.Model(&user).Update("password", hashed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to update password").Body())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
