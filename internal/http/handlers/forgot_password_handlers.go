package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mynkprtp/movieApi/domain"
)

// ForgotPasswordHandlers handles the OTP-based password reset flow
type ForgotPasswordHandlers struct {
	resetSvc domain.PasswordResetService
}

// NewForgotPasswordHandlers creates new forgot password handlers
func NewForgotPasswordHandlers(resetSvc domain.PasswordResetService) *ForgotPasswordHandlers {
	return &ForgotPasswordHandlers{resetSvc: resetSvc}
}

// ChangePasswordRequest represents the final reset step. The reset token is
// the ticket returned by a successful OTP verification.
type ChangePasswordRequest struct {
	Password       string `json:"password" binding:"required,min=6"`
	RepeatPassword string `json:"repeatPassword" binding:"required"`
	ResetToken     string `json:"resetToken" binding:"required"`
}

// VerifyMail handles a password reset request for the email in the path
func (h *ForgotPasswordHandlers) VerifyMail(c *gin.Context) {
	email := c.Param("email")

	err := h.resetSvc.RequestReset(c.Request.Context(), email)
	if err != nil {
		if err == domain.ErrUnknownAccount {
			c.JSON(http.StatusNotFound, gin.H{"error": "Please provide a valid email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification mail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent for verification"})
}

// VerifyOtp checks the submitted code against the user's outstanding challenges
func (h *ForgotPasswordHandlers) VerifyOtp(c *gin.Context) {
	email := c.Param("email")
	otp, err := strconv.Atoi(c.Param("otp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP format"})
		return
	}

	ticket, err := h.resetSvc.VerifyOTP(c.Request.Context(), email, otp)
	if err != nil {
		switch err {
		case domain.ErrUnknownAccount:
			c.JSON(http.StatusNotFound, gin.H{"error": "Please provide a valid email"})
		case domain.ErrUnknownChallenge:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP for email: " + email})
		case domain.ErrChallengeExpired:
			c.JSON(http.StatusExpectationFailed, gin.H{"error": "OTP has expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "OTP has been verified",
		"resetToken": ticket,
	})
}

// ChangePassword sets a new password for the email in the path
func (h *ForgotPasswordHandlers) ChangePassword(c *gin.Context) {
	email := c.Param("email")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.resetSvc.ChangePassword(c.Request.Context(), email, req.ResetToken, req.Password, req.RepeatPassword)
	if err != nil {
		switch err {
		case domain.ErrPasswordMismatch:
			c.JSON(http.StatusExpectationFailed, gin.H{"error": "Please enter the password again"})
		case domain.ErrResetNotAllowed:
			c.JSON(http.StatusForbidden, gin.H{"error": "Password reset not authorized"})
		case domain.ErrUnknownAccount:
			c.JSON(http.StatusNotFound, gin.H{"error": "Please provide a valid email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
