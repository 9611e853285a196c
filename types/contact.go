package types

// Timeline codes submitted by the contact form.
const (
	TimelineASAP       = "asap"
	TimelineOneToThree = "1-3-months"
	TimelineThreeToSix = "3-6-months"
	TimelineSixPlus    = "6-plus-months"
	TimelineExploring  = "exploring"
	TimelineOther      = "other"
)

// Service codes submitted by the contact form.
const (
	ServiceKitchen  = "kitchen"
	ServiceAluminum = "aluminum"
	ServiceBoth     = "both"
	ServiceOther    = "other"
)

// timelineLabels maps timeline codes to the labels rendered in emails.
var timelineLabels = map[string]string{
	TimelineASAP:       "ASAP",
	TimelineOneToThree: "1-3 months",
	TimelineThreeToSix: "3-6 months",
	TimelineSixPlus:    "6+ months",
	TimelineExploring:  "Just exploring",
	TimelineOther:      "Other",
}

// serviceLabels maps service codes to the labels rendered in emails.
var serviceLabels = map[string]string{
	ServiceKitchen:  "Custom kitchens & millwork",
	ServiceAluminum: "Aluminum doors & windows",
	ServiceBoth:     "Kitchens + aluminum",
	ServiceOther:    "Other",
}

// TimelineLabel returns the display label for a timeline code. Unrecognized
// codes are returned unchanged so a stale form never loses information.
func TimelineLabel(code string) string {
	if label, ok := timelineLabels[code]; ok {
		return label
	}
	return code
}

// ServiceLabel returns the display label for a service code. Unrecognized
// codes are returned unchanged.
func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

// ContactAttachment is an uploaded file accompanying an inquiry, read fully
// into memory before dispatch.
type ContactAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ContactInquiry is a single contact form submission. It is request-scoped:
// built from the multipart body, forwarded by email, and discarded.
type ContactInquiry struct {
	Name       string
	Email      string
	Phone      string
	City       string
	Timeline   string
	Service    string
	Message    string
	Attachment *ContactAttachment
}

// HasAttachment reports whether the inquiry carries a non-empty file.
func (i *ContactInquiry) HasAttachment() bool {
	return i.Attachment != nil && len(i.Attachment.Content) > 0
}

// ContactSuccessResponse is the wire shape returned on a successful submission.
type ContactSuccessResponse struct {
	Success bool `json:"success"`
}

// ContactErrorResponse is the wire shape returned on a failed submission.
type ContactErrorResponse struct {
	Error string `json:"error"`
}
