package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"

	"github.com/veralum/veralum-backend/config"
	"github.com/veralum/veralum-backend/logger"
	"github.com/veralum/veralum-backend/types"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService sends inquiry emails through Resend.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress,
		"recipient", logger.MaskEmail(cfg.ContactRecipient),
		"apikey", logger.MaskSensitiveString(cfg.ResendAPIKey, 3, 2))
	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "veralum_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "veralum_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "veralum_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// SendInquiryNotification emails the business recipient a summary of the
// inquiry. The customer's address is set as reply-to and any attachment the
// customer uploaded is included.
func (s *EmailService) SendInquiryNotification(ctx context.Context, inquiry *types.ContactInquiry) error {
	data := types.EmailData{
		To:      s.config.ContactRecipient,
		ReplyTo: inquiry.Email,
		Subject: fmt.Sprintf("New inquiry from %s", inquiry.Name),
		TemplateData: map[string]interface{}{
			"Name":     inquiry.Name,
			"Email":    inquiry.Email,
			"Phone":    inquiry.Phone,
			"City":     inquiry.City,
			"Timeline": types.TimelineLabel(inquiry.Timeline),
			"Service":  types.ServiceLabel(inquiry.Service),
			"Message":  inquiry.Message,
		},
	}

	if inquiry.HasAttachment() {
		data.TemplateData["AttachmentName"] = inquiry.Attachment.Filename
		data.Attachments = []types.EmailAttachment{{
			Filename:    inquiry.Attachment.Filename,
			ContentType: inquiry.Attachment.ContentType,
			Content:     inquiry.Attachment.Content,
		}}
	}

	return s.send(ctx, "notification", notificationEmailTemplate, data)
}

// SendInquiryConfirmation emails the customer a boilerplate acknowledgment
// with showroom hours and address. It never carries an attachment.
func (s *EmailService) SendInquiryConfirmation(ctx context.Context, inquiry *types.ContactInquiry) error {
	data := types.EmailData{
		To:      inquiry.Email,
		Subject: "We received your inquiry",
		TemplateData: map[string]interface{}{
			"Name": inquiry.Name,
		},
	}

	return s.send(ctx, "confirmation", confirmationEmailTemplate, data)
}

// send renders the template and dispatches a single email through Resend,
// recording latency and outcome metrics.
func (s *EmailService) send(ctx context.Context, kind, tmplText string, data types.EmailData) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	tmpl, err := template.New(kind).Parse(tmplText)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to parse email template", "kind", kind, "error", err)
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var htmlContent bytes.Buffer
	if err := tmpl.Execute(&htmlContent, data.TemplateData); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute email template", "kind", kind, "error", err)
		return fmt.Errorf("failed to execute template: %w", err)
	}

	// Build Resend email request
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{data.To},
		Subject: data.Subject,
		Html:    htmlContent.String(),
	}
	if data.ReplyTo != "" {
		params.ReplyTo = data.ReplyTo
	}
	for _, att := range data.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    att.Filename,
			ContentType: att.ContentType,
			Content:     att.Content,
		})
	}

	_, err = s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"kind", kind,
			"to", logger.MaskEmail(data.To),
			"subject", data.Subject)
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent successfully",
		"kind", kind,
		"to", logger.MaskEmail(data.To),
		"subject", data.Subject)

	return nil
}

// Template constants
const notificationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Inquiry</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #1F2A37;
            font-size: 24px;
            margin-bottom: 20px;
        }
        .field {
            margin-bottom: 14px;
        }
        .label {
            font-size: 12px;
            text-transform: uppercase;
            letter-spacing: 1px;
            color: #777777;
        }
        .value {
            font-size: 16px;
            line-height: 1.5;
        }
        .message {
            white-space: pre-wrap;
            background-color: #f2f4f7;
            padding: 16px;
            border-radius: 8px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>New inquiry from {{.Name}}</h1>
        <div class="field">
            <div class="label">Email</div>
            <div class="value">{{.Email}}</div>
        </div>
        {{if .Phone}}
        <div class="field">
            <div class="label">Phone</div>
            <div class="value">{{.Phone}}</div>
        </div>
        {{end}}
        {{if .City}}
        <div class="field">
            <div class="label">City</div>
            <div class="value">{{.City}}</div>
        </div>
        {{end}}
        {{if .Timeline}}
        <div class="field">
            <div class="label">Timeline</div>
            <div class="value">{{.Timeline}}</div>
        </div>
        {{end}}
        {{if .Service}}
        <div class="field">
            <div class="label">Service</div>
            <div class="value">{{.Service}}</div>
        </div>
        {{end}}
        <div class="field">
            <div class="label">Message</div>
            <div class="value message">{{.Message}}</div>
        </div>
        {{if .AttachmentName}}
        <div class="field">
            <div class="label">Attachment</div>
            <div class="value">{{.AttachmentName}} (attached)</div>
        </div>
        {{end}}
    </div>
</body>
</html>`

const confirmationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>We Received Your Inquiry</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
            text-align: center;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #1F2A37;
            font-size: 26px;
            margin-bottom: 20px;
        }
        p {
            font-size: 16px;
            line-height: 1.6;
            margin-bottom: 25px;
        }
        .details {
            margin-top: 20px;
            font-size: 14px;
            color: #777777;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Thank you, {{.Name}}!</h1>
        <p>We received your inquiry and one of our project advisors will get back to you within one business day.</p>
        <p>In the meantime, you are welcome to visit our showroom to see our aluminum systems and kitchen ranges in person.</p>
        <p class="details">
            Veralum Showroom<br/>
            14 Foundry Lane, Rotterdam<br/>
            Mon-Fri 9:00-18:00, Sat 10:00-16:00
        </p>
    </div>
</body>
</html>`
