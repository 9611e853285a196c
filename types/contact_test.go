package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineLabel(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{TimelineASAP, "ASAP"},
		{TimelineOneToThree, "1-3 months"},
		{TimelineThreeToSix, "3-6 months"},
		{TimelineSixPlus, "6+ months"},
		{TimelineExploring, "Just exploring"},
		{TimelineOther, "Other"},
		// Unknown codes pass through verbatim
		{"unknown-value", "unknown-value"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TimelineLabel(tt.code), "code %q", tt.code)
	}
}

func TestServiceLabel(t *testing.T) {
	assert.Equal(t, "Custom kitchens & millwork", ServiceLabel(ServiceKitchen))
	assert.Equal(t, "Aluminum doors & windows", ServiceLabel(ServiceAluminum))
	assert.Equal(t, "Kitchens + aluminum", ServiceLabel(ServiceBoth))
	assert.Equal(t, "Other", ServiceLabel(ServiceOther))
	assert.Equal(t, "garage-doors", ServiceLabel("garage-doors"))
}

func TestHasAttachment(t *testing.T) {
	inquiry := &ContactInquiry{}
	assert.False(t, inquiry.HasAttachment())

	// Zero-length uploads are treated as absent
	inquiry.Attachment = &ContactAttachment{Filename: "plans.pdf"}
	assert.False(t, inquiry.HasAttachment())

	inquiry.Attachment.Content = []byte("%PDF-1.4")
	assert.True(t, inquiry.HasAttachment())
}
