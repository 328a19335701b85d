package worksheet

import "fmt"

// Grade bounds accepted by the worksheet agent.
const (
	MinGrade = 1
	MaxGrade = 12
)

// FillInBlank is a fill-in-the-blank question. The blank appears in the
// question text as ______.
type FillInBlank struct {
	QuestionText string
	Answer       string
}

// ShortAnswer is a question expecting a 1-3 sentence response.
type ShortAnswer struct {
	Question       string
	ExpectedAnswer string
}

// Worksheet is a generated question set for one textbook page.
// The model is instructed to produce 6-8 fill-in-the-blank and 4-6
// short-answer questions; the counts are best-effort, not enforced.
type Worksheet struct {
	Title        string
	GradeLevel   int
	Subject      string
	FillInBlanks []FillInBlank
	ShortAnswers []ShortAnswer
}

// Input holds everything needed to generate a worksheet.
type Input struct {
	// ImageData is the raw textbook page image.
	ImageData []byte

	// ImageMIME is the image media type: "image/png" or "image/jpeg".
	ImageMIME string

	// Grade is the target grade level, 1-12.
	Grade int

	// Subject, Topic and Notes are optional hints passed through to the
	// prompt when present.
	Subject string
	Topic   string
	Notes   string
}

// allowedImageMIMEs are the image types the agent accepts. JPG and JPEG
// uploads both normalize to image/jpeg.
var allowedImageMIMEs = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// Validate checks the input before any model call is made.
func (in Input) Validate() error {
	if len(in.ImageData) == 0 {
		return fmt.Errorf("image data is empty")
	}
	if !allowedImageMIMEs[in.ImageMIME] {
		return fmt.Errorf("unsupported image type %q: only PNG and JPEG are accepted", in.ImageMIME)
	}
	if in.Grade < MinGrade || in.Grade > MaxGrade {
		return fmt.Errorf("grade %d out of range: must be between %d and %d", in.Grade, MinGrade, MaxGrade)
	}
	return nil
}
