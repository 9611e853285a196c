package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/veralum/veralum-backend/config"
	"github.com/veralum/veralum-backend/types"
)

// Mock Resend client
type mockEmailsService struct {
	mock.Mock
}

func (m *mockEmailsService) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Update(params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) UpdateWithContext(ctx context.Context, params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Cancel(id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) CancelWithContext(ctx context.Context, id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Get(id string) (*resend.Email, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

func (m *mockEmailsService) GetWithContext(ctx context.Context, id string) (*resend.Email, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

// Mock registry that doesn't actually register metrics
type mockRegistry struct{}

func (m *mockRegistry) Register(c prometheus.Collector) error   { return nil }
func (m *mockRegistry) MustRegister(cs ...prometheus.Collector) {}
func (m *mockRegistry) Unregister(c prometheus.Collector) bool  { return true }

func testEmailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		FromName:         "Veralum",
		FromAddress:      "no-reply@veralum.com",
		ResendAPIKey:     "re_test_key",
		ContactRecipient: "inquiries@veralum.com",
	}
}

func testInquiry() *types.ContactInquiry {
	return &types.ContactInquiry{
		Name:     "Ada Jansen",
		Email:    "ada@example.com",
		Phone:    "+31 6 1234 5678",
		City:     "Rotterdam",
		Timeline: types.TimelineASAP,
		Service:  types.ServiceAluminum,
		Message:  "Looking to replace six windows and a sliding door.",
	}
}

func TestNewEmailService(t *testing.T) {
	service := NewEmailServiceWithRegistry(testEmailConfig(), &mockRegistry{})

	assert.NotNil(t, service)
	assert.NotNil(t, service.client)
	assert.NotNil(t, service.metrics)
}

func TestSendInquiryNotification(t *testing.T) {
	tests := []struct {
		name        string
		inquiry     *types.ContactInquiry
		check       func(t *testing.T, params *resend.SendEmailRequest)
		sendErr     error
		expectError bool
	}{
		{
			name:    "full inquiry with known labels",
			inquiry: testInquiry(),
			check: func(t *testing.T, params *resend.SendEmailRequest) {
				assert.Equal(t, []string{"inquiries@veralum.com"}, params.To)
				assert.Equal(t, "ada@example.com", params.ReplyTo)
				assert.Equal(t, "New inquiry from Ada Jansen", params.Subject)
				assert.Contains(t, params.Html, "ASAP")
				assert.Contains(t, params.Html, "Aluminum doors &amp; windows")
				assert.Empty(t, params.Attachments)
			},
		},
		{
			name: "unknown enum codes pass through verbatim",
			inquiry: &types.ContactInquiry{
				Name:     "Ben",
				Email:    "ben@example.com",
				Timeline: "unknown-value",
				Message:  "Hello",
			},
			check: func(t *testing.T, params *resend.SendEmailRequest) {
				assert.Contains(t, params.Html, "unknown-value")
			},
		},
		{
			name: "attachment is forwarded",
			inquiry: func() *types.ContactInquiry {
				i := testInquiry()
				i.Attachment = &types.ContactAttachment{
					Filename:    "plans.pdf",
					ContentType: "application/pdf",
					Content:     []byte("%PDF-1.4"),
				}
				return i
			}(),
			check: func(t *testing.T, params *resend.SendEmailRequest) {
				require.Len(t, params.Attachments, 1)
				assert.Equal(t, "plans.pdf", params.Attachments[0].Filename)
				assert.Equal(t, "application/pdf", params.Attachments[0].ContentType)
				assert.Contains(t, params.Html, "plans.pdf")
			},
		},
		{
			name: "zero-length attachment is dropped",
			inquiry: func() *types.ContactInquiry {
				i := testInquiry()
				i.Attachment = &types.ContactAttachment{Filename: "empty.jpg"}
				return i
			}(),
			check: func(t *testing.T, params *resend.SendEmailRequest) {
				assert.Empty(t, params.Attachments)
			},
		},
		{
			name:        "failed email send",
			inquiry:     testInquiry(),
			sendErr:     assert.AnError,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmails := &mockEmailsService{}
			var captured *resend.SendEmailRequest
			call := mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
				Run(func(args mock.Arguments) {
					captured = args.Get(1).(*resend.SendEmailRequest)
				})
			if tt.sendErr != nil {
				call.Return(nil, tt.sendErr)
			} else {
				call.Return(&resend.SendEmailResponse{Id: "test-id"}, nil)
			}

			service := NewEmailServiceWithRegistry(testEmailConfig(), &mockRegistry{})
			service.client.Emails = mockEmails

			err := service.SendInquiryNotification(context.Background(), tt.inquiry)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, captured)
				if tt.check != nil {
					tt.check(t, captured)
				}
			}

			mockEmails.AssertExpectations(t)
		})
	}
}

func TestSendInquiryConfirmation(t *testing.T) {
	mockEmails := &mockEmailsService{}
	var captured *resend.SendEmailRequest
	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*resend.SendEmailRequest)
		}).
		Return(&resend.SendEmailResponse{Id: "test-id"}, nil)

	service := NewEmailServiceWithRegistry(testEmailConfig(), &mockRegistry{})
	service.client.Emails = mockEmails

	inquiry := testInquiry()
	inquiry.Attachment = &types.ContactAttachment{
		Filename: "plans.pdf",
		Content:  []byte("%PDF-1.4"),
	}

	err := service.SendInquiryConfirmation(context.Background(), inquiry)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"ada@example.com"}, captured.To)
	assert.Equal(t, "We received your inquiry", captured.Subject)
	assert.Empty(t, captured.ReplyTo)
	// Confirmation never carries the customer's attachment
	assert.Empty(t, captured.Attachments)
	assert.Contains(t, captured.Html, "Thank you, Ada Jansen!")
	assert.Contains(t, captured.Html, "Veralum Showroom")
}

func TestEmailMetrics(t *testing.T) {
	service := NewEmailServiceWithRegistry(testEmailConfig(), &mockRegistry{})
	mockEmails := &mockEmailsService{}
	service.client.Emails = mockEmails

	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Return(&resend.SendEmailResponse{Id: "test-id"}, nil).Once()
	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Return(nil, assert.AnError).Once()

	initialSentCount := testGetCounterValue(service.metrics.sentCount)
	initialErrorCount := testGetCounterValue(service.metrics.errorCount)

	err := service.SendInquiryNotification(context.Background(), testInquiry())
	assert.NoError(t, err)

	assert.Equal(t, initialSentCount+1, testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, initialErrorCount, testGetCounterValue(service.metrics.errorCount))

	err = service.SendInquiryConfirmation(context.Background(), testInquiry())
	assert.Error(t, err)

	assert.Equal(t, initialSentCount+1, testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, initialErrorCount+1, testGetCounterValue(service.metrics.errorCount))

	mockEmails.AssertExpectations(t)
}

// Helper function to get counter value
func testGetCounterValue(counter prometheus.Counter) float64 {
	var m dto.Metric
	_ = counter.Write(&m)
	return *m.Counter.Value
}
