package nanobanana

import (
	"github.com/fancyboi999/nano-image-generate/pkg/imagefmt"
)

// ================== Request Types ==================

// GenerateRequest describes one image generation call.
type GenerateRequest struct {
	// Prompt is the image description. Required.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Model is the model identifier (ModelPro or ModelFlash).
	// Empty defaults to ModelPro.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// AspectRatio is one of AspectRatios. Empty lets the API pick.
	AspectRatio string `json:"aspect_ratio,omitempty" yaml:"aspect_ratio,omitempty"`

	// Size is one of ImageSizes. Empty lets the API pick.
	Size string `json:"size,omitempty" yaml:"size,omitempty"`

	// References are optional reference images for style transfer or
	// character consistency, at most MaxReferenceImages entries. Order is
	// preserved on the wire.
	References []Reference `json:"references,omitempty" yaml:"references,omitempty"`
}

// Reference is one reference image attached to a request.
type Reference struct {
	// MIME is the image media type, e.g. "image/png".
	MIME string `json:"mime" yaml:"mime"`

	// Data is the raw image bytes. Base64 encoding happens at the wire
	// layer.
	Data []byte `json:"data" yaml:"data"`
}

// ================== Response Types ==================

// GenerateResponse is the parsed result of a generation call.
type GenerateResponse struct {
	// Images holds every inline image part, in response order.
	Images []Image

	// Texts holds every text part, in response order. The model uses text
	// to explain itself when it declines to produce an image.
	Texts []string

	// ModelVersion is the concrete model version the API reports.
	ModelVersion string

	// Usage is the token usage metadata, when reported.
	Usage *Usage

	// Raw is the unparsed response body, kept for diagnostics.
	Raw []byte
}

// Image is one generated image.
type Image struct {
	// MIME is the media type the API reported for the payload. The
	// reported value is not always right; see Format.
	MIME string

	// Data is the decoded image bytes.
	Data []byte
}

// Format returns the true format of the payload, sniffed from its bytes.
// It may differ from the reported MIME and is the value to trust.
func (im Image) Format() imagefmt.Format {
	return imagefmt.Detect(im.Data)
}

// Usage reports token consumption for a call.
type Usage struct {
	// PromptTokens is the token count of the prompt, references included.
	PromptTokens int `json:"promptTokenCount"`

	// CandidatesTokens is the token count of the generated candidates.
	CandidatesTokens int `json:"candidatesTokenCount"`

	// TotalTokens is the total billed token count.
	TotalTokens int `json:"totalTokenCount"`
}

// ================== Wire Types ==================

// The generateContent schema: contents carry ordered parts (prompt text
// first, then one inlineData entry per reference image), generationConfig
// requests both output modalities plus the image shape.

type wireRequest struct {
	Contents         []wireContent  `json:"contents"`
	GenerationConfig *wireGenConfig `json:"generationConfig,omitempty"`
}

type wireContent struct {
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *wireInlineData `json:"inlineData,omitempty"`
}

type wireInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type wireGenConfig struct {
	ResponseModalities []string         `json:"responseModalities,omitempty"`
	ImageConfig        *wireImageConfig `json:"imageConfig,omitempty"`
}

type wireImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type wireResponse struct {
	Candidates    []wireCandidate `json:"candidates"`
	ModelVersion  string          `json:"modelVersion"`
	UsageMetadata *Usage          `json:"usageMetadata"`
}

type wireCandidate struct {
	Content      *wireContent `json:"content"`
	FinishReason string       `json:"finishReason"`
}
