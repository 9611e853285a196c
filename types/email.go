package types

import "context"

// EmailSender dispatches the two outbound emails produced by a contact
// inquiry. services.EmailService is the production implementation.
type EmailSender interface {
	// SendInquiryNotification emails the business recipient a summary of the
	// inquiry with the customer set as reply-to and any attachment included.
	SendInquiryNotification(ctx context.Context, inquiry *ContactInquiry) error
	// SendInquiryConfirmation emails the customer a boilerplate
	// acknowledgment. It never carries an attachment.
	SendInquiryConfirmation(ctx context.Context, inquiry *ContactInquiry) error
}

// EmailAttachment is a file included in an outbound email.
type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// EmailData describes one outbound email.
type EmailData struct {
	To           string
	ReplyTo      string
	Subject      string
	TemplateData map[string]interface{}
	Attachments  []EmailAttachment
}
