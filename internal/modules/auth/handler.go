package auth

import (
	"errors"
	"net/http"

	"sonata/internal/domain"
	"sonata/internal/middleware"
	"sonata/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.POST("/register", h.Register)
	v1.POST("/verify-email", h.VerifyEmail)
	v1.POST("/resend-verification", h.ResendVerification)
	v1.POST("/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.GetMe)
}

// Register creates a listener account and emails a verification code.
// Registration succeeds even when the email cannot be dispatched; the
// client is told to retry the code via resend.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, sent, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		return
	}

	message := "Registration successful! A verification code was sent to your email."
	if !sent {
		message = "Registration successful but the email could not be sent. Please request a new code."
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    message,
		"email":      user.Email,
		"email_sent": sent,
	})
}

func (h *Handler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, ErrInvalidOrExpiredCode):
			response.Error(c, http.StatusBadRequest, "INVALID_OR_EXPIRED_CODE", "Invalid or expired verification code")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusBadRequest, "NOT_FOUND", "Account not found")
		default:
			response.Error(c, http.StatusInternalServerError, "VERIFICATION_FAILED", "Failed to verify email")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email verified successfully! You can now log in.",
	})
}

func (h *Handler) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sent, err := h.service.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFoundOrVerified) {
			response.Error(c, http.StatusBadRequest, "NOT_FOUND_OR_VERIFIED", "Account not found or already verified")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RESEND_FAILED", "Failed to resend verification code")
		return
	}

	message := "A new verification code was sent to your email."
	if !sent {
		message = "A new code was issued but the email could not be sent. Please try again."
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    message,
		"email_sent": sent,
	})
}

// Login authenticates either account kind. Error categories stay coarse so
// unauthenticated callers learn nothing beyond them.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusBadRequest, "NOT_FOUND", "Email not found")
		case errors.Is(err, ErrEmailNotVerified):
			response.Error(c, http.StatusBadRequest, "EMAIL_NOT_VERIFIED", "Email address is not verified")
		case errors.Is(err, ErrArtistNotApproved):
			response.Error(c, http.StatusBadRequest, "NOT_APPROVED", "Account is not approved yet")
		case errors.Is(err, ErrArtistNotActivated):
			response.Error(c, http.StatusBadRequest, "NOT_ACTIVATED", "Account is not activated yet")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusBadRequest, "INVALID_CREDENTIALS", "Email or password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  loginUserPayload(result),
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	accountType := c.GetString(middleware.CtxAccountType)
	userID := c.GetString(middleware.CtxUserID)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, artist, err := h.service.CurrentUser(c.Request.Context(), accountType, userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
		return
	}

	if artist != nil {
		response.Success(c, http.StatusOK, gin.H{"user": toArtistPublic(artist)})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": toUserPublic(user)})
}

func loginUserPayload(result *LoginResult) any {
	if result.Artist != nil {
		return toArtistPublic(result.Artist)
	}
	return toUserPublic(result.User)
}

func toUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		AccountType: string(domain.AccountUser),
	}
}

func toArtistPublic(a *domain.Artist) ArtistPublic {
	return ArtistPublic{
		ID:          a.ID,
		ArtistName:  a.ArtistName,
		Email:       a.Email,
		Phone:       a.Phone,
		AccountType: string(domain.AccountArtist),
	}
}
