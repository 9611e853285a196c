package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/veralum/veralum-backend/logger"
	"github.com/veralum/veralum-backend/types"
)

// fileField is the multipart field name carrying the optional upload.
const fileField = "file"

// genericSubmitError is the only failure message the client sees for
// server-side problems; the real cause is logged, never returned.
const genericSubmitError = "Failed to send your message. Please try again later."

// ContactHandler handles contact form submissions from the marketing site.
type ContactHandler struct {
	emailService types.EmailSender
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(emailService types.EmailSender) *ContactHandler {
	return &ContactHandler{emailService: emailService}
}

// SubmitInquiry godoc
// @Summary      Submit a contact inquiry
// @Description  Accepts the contact form, emails the showroom a notification and the customer a confirmation
// @Tags         contact
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true   "Customer name"
// @Param        email     formData  string  true   "Customer email"
// @Param        phone     formData  string  false  "Phone number"
// @Param        city      formData  string  false  "City"
// @Param        timeline  formData  string  false  "Project timeline code"
// @Param        service   formData  string  false  "Service code"
// @Param        message   formData  string  true   "Free-text message"
// @Param        file      formData  file    false  "Optional attachment"
// @Success      200  {object}  types.ContactSuccessResponse
// @Failure      400  {object}  types.ContactErrorResponse
// @Failure      500  {object}  types.ContactErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitInquiry(c *gin.Context) {
	log := logger.GetLogger()

	inquiry, err := parseInquiry(c)
	if err != nil {
		log.Errorw("Failed to parse contact form",
			"error", err,
			"request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, types.ContactErrorResponse{Error: genericSubmitError})
		return
	}

	if inquiry.Name == "" || inquiry.Email == "" || inquiry.Message == "" {
		c.JSON(http.StatusBadRequest, types.ContactErrorResponse{
			Error: "name, email, and message are required",
		})
		return
	}

	ctx := c.Request.Context()

	// The two sends are strictly sequential: the showroom notification
	// first, then the customer confirmation. A failure of either is
	// reported as total failure; emails already sent are not revocable,
	// so there is no compensation step.
	if err := h.emailService.SendInquiryNotification(ctx, inquiry); err != nil {
		log.Errorw("Failed to send inquiry notification",
			"error", err,
			"customer", logger.MaskEmail(inquiry.Email),
			"request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, types.ContactErrorResponse{Error: genericSubmitError})
		return
	}

	if err := h.emailService.SendInquiryConfirmation(ctx, inquiry); err != nil {
		log.Errorw("Failed to send inquiry confirmation",
			"error", err,
			"customer", logger.MaskEmail(inquiry.Email),
			"request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, types.ContactErrorResponse{Error: genericSubmitError})
		return
	}

	log.Infow("Contact inquiry forwarded",
		"customer", logger.MaskEmail(inquiry.Email),
		"has_attachment", inquiry.HasAttachment(),
		"request_id", c.GetString("request_id"))

	c.JSON(http.StatusOK, types.ContactSuccessResponse{Success: true})
}

// parseInquiry extracts the inquiry fields and the optional attachment from
// the multipart body. A missing or zero-length file is treated as no
// attachment, not as an error.
func parseInquiry(c *gin.Context) (*types.ContactInquiry, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	inquiry := &types.ContactInquiry{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Phone:    strings.TrimSpace(c.PostForm("phone")),
		City:     strings.TrimSpace(c.PostForm("city")),
		Timeline: strings.TrimSpace(c.PostForm("timeline")),
		Service:  strings.TrimSpace(c.PostForm("service")),
		Message:  strings.TrimSpace(c.PostForm("message")),
	}

	files := form.File[fileField]
	if len(files) == 0 {
		return inquiry, nil
	}

	header := files[0]
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return inquiry, nil
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(content).String()
	}

	inquiry.Attachment = &types.ContactAttachment{
		Filename:    header.Filename,
		ContentType: contentType,
		Content:     content,
	}

	return inquiry, nil
}
