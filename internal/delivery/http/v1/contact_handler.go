package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// The submit route carries its own rate limiter since it is the only
// unauthenticated write endpoint.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
	public.GET("/contact/subjects", handler.ListSubjects)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed body gets a generic 500 with no detail leaked
		c.Error(apperror.New(http.StatusInternalServerError, "Internal server error", err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.Error(apperror.BadRequest(vErr.Error()))
		case errors.Is(err, email.ErrNotConfigured):
			// Environment problem, not user input. Logged loudly for the
			// operator but reported through the same flat error channel the
			// frontend already handles.
			logger.Log.Error("contact form misconfigured, SMTP credentials missing")
			c.Error(apperror.New(http.StatusBadRequest, email.ErrNotConfigured.Error(), err))
		default:
			c.Error(apperror.New(http.StatusBadRequest, err.Error(), err))
		}
		return
	}

	response.Message(c, http.StatusOK, "Email sent successfully")
}

// ListSubjects godoc
// @Summary      List Subject Categories
// @Description  Fixed categories offered by the contact form's subject selector.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /contact/subjects [get]
func (h *ContactHandler) ListSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subjects": domain.SubjectCategories})
}
