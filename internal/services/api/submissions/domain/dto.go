package domain

// Scheduling window for preference dates, relative to submit time
const (
	MinLeadDays = 14
	MaxLeadDays = 60
)

// MaxCoverBytes caps the uploaded cover image size
const MaxCoverBytes = 5 << 20

// CreateInput is the multipart form payload for a new submission
type CreateInput struct {
	SpeakerName     string   `json:"speaker_name"     validate:"required,max=100"    example:"Kim Jiwon"`
	SpeakerPosition string   `json:"speaker_position" validate:"required,max=100"    example:"Backend Engineer"`
	Phone           string   `json:"phone"            validate:"required,phone_kr"   example:"010-1234-5678"`
	Title           string   `json:"title"            validate:"required,max=200"    example:"Taming cold starts"`
	Description     string   `json:"description"      validate:"required,min=20"`
	TalkType        string   `json:"talk_type"        validate:"required,oneof=lightning main"`
	Keywords        []string `json:"keywords"         validate:"omitempty,max=3"`
	Preferences     []string `json:"preferences"      validate:"required,len=3,dive,datetime=2006-01-02"`
	AgreeToTerms    bool     `json:"agree_to_terms"   validate:"required,eq=true"`
}

// CoverUpload is the raw image part of the multipart form
type CoverUpload struct {
	Filename string
	Data     []byte
}

// ApproveInput selects which ranked preference becomes the scheduled date
type ApproveInput struct {
	Rank int `json:"rank" validate:"required,min=1,max=3" example:"2"`
}
