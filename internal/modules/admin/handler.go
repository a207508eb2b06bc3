package admin

import (
	"errors"
	"log"
	"net/http"

	"sonata/internal/domain"
	jwtsvc "sonata/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Handler serves the emailed one-time approval and rejection links. The
// links are authenticated by their signed tokens, not by a session.
type Handler struct {
	service *Service
	tokens  tokenValidator
}

func NewHandler(service *Service, tokens tokenValidator) *Handler {
	return &Handler{service: service, tokens: tokens}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("/approve-artist", h.ApproveArtist)
		adminGroup.GET("/reject-artist", h.RejectArtist)
		adminGroup.POST("/reject-artist-confirm", h.ConfirmRejection)
	}
}

type rejectConfirmForm struct {
	Email  string `form:"email" binding:"required,email"`
	Reason string `form:"reason" binding:"required"`
}

// ApproveArtist handles the signed approval link. Repeat clicks on an
// already-approved application render the same outcome without mutating
// anything.
func (h *Handler) ApproveArtist(c *gin.Context) {
	claims, err := h.tokens.ValidateActionToken(c.Query("token"), jwtsvc.PurposeApproval)
	if err != nil {
		h.renderNotice(c, http.StatusBadRequest, noticeData{
			Title:   "Invalid Approval Link",
			Message: "The link is invalid or has expired.",
		})
		return
	}

	result, err := h.service.ApproveArtist(c.Request.Context(), claims.Email)
	if err != nil {
		h.renderApproveError(c, err)
		return
	}

	if result.AlreadyApproved {
		h.renderNotice(c, http.StatusOK, noticeData{
			Title:  "This artist is already approved",
			Artist: toArtistView(result.Artist),
		})
		return
	}

	h.render(c, http.StatusOK, "approved", approvedData{
		Artist:       toArtistView(result.Artist),
		EmailSent:    result.EmailSent,
		TempPassword: result.TempPassword,
	})
}

// RejectArtist validates the signed rejection link and renders the
// reason-collection form. The terminal transition happens on confirm.
func (h *Handler) RejectArtist(c *gin.Context) {
	claims, err := h.tokens.ValidateActionToken(c.Query("token"), jwtsvc.PurposeRejection)
	if err != nil {
		h.renderNotice(c, http.StatusBadRequest, noticeData{
			Title:   "Invalid Rejection Link",
			Message: "The link is invalid or has expired.",
		})
		return
	}

	artist, err := h.service.PrepareRejection(c.Request.Context(), claims.Email)
	if err != nil {
		h.renderRejectError(c, err)
		return
	}

	h.render(c, http.StatusOK, "reject_form", rejectFormData{
		Artist: toArtistView(artist),
		Email:  claims.Email,
	})
}

func (h *Handler) ConfirmRejection(c *gin.Context) {
	var form rejectConfirmForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderNotice(c, http.StatusBadRequest, noticeData{
			Title:   "Invalid Request",
			Message: "Email and rejection reason are required.",
		})
		return
	}

	result, err := h.service.ConfirmRejection(c.Request.Context(), form.Email, form.Reason)
	if err != nil {
		h.renderRejectError(c, err)
		return
	}

	h.render(c, http.StatusOK, "rejected", rejectedData{
		Artist:    toArtistView(result.Artist),
		Email:     form.Email,
		Reason:    result.Reason,
		EmailSent: result.EmailSent,
	})
}

func (h *Handler) renderApproveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		h.renderNotice(c, http.StatusNotFound, noticeData{Title: "Artist Not Found"})
	case errors.Is(err, ErrAlreadyRejectedCannotApprove):
		h.renderNotice(c, http.StatusConflict, noticeData{
			Title:   "This artist was already rejected",
			Message: "A rejected application cannot be approved.",
		})
	default:
		h.renderServerError(c, err)
	}
}

func (h *Handler) renderRejectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		h.renderNotice(c, http.StatusNotFound, noticeData{Title: "Artist Not Found"})
	case errors.Is(err, ErrAlreadyRejected):
		h.renderNotice(c, http.StatusOK, noticeData{Title: "This artist is already rejected"})
	case errors.Is(err, ErrAlreadyApprovedCannotReject):
		h.renderNotice(c, http.StatusConflict, noticeData{
			Title:   "This artist is already approved",
			Message: "An approved application cannot be rejected.",
		})
	default:
		h.renderServerError(c, err)
	}
}

func (h *Handler) renderServerError(c *gin.Context, err error) {
	log.Printf("admin workflow error path=%s err=%v", c.Request.URL.Path, err)
	h.renderNotice(c, http.StatusInternalServerError, noticeData{
		Title:   "Something Went Wrong",
		Message: "The operation failed. Please try again.",
	})
}

func (h *Handler) renderNotice(c *gin.Context, status int, data noticeData) {
	h.render(c, status, "notice", data)
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := pages.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("admin template render failed name=%s err=%v", name, err)
	}
}

func toArtistView(a *domain.Artist) *artistView {
	if a == nil {
		return nil
	}
	return &artistView{
		ArtistName:      a.ArtistName,
		Email:           a.Email,
		Phone:           a.Phone,
		SocialMediaLink: a.SocialMediaLink,
		Bio:             a.Bio,
	}
}
