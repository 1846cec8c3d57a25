package nanobanana

// Image models
const (
	// ModelPro is gemini-3-pro-image-preview, higher quality output that
	// follows instructions closely.
	ModelPro = "gemini-3-pro-image-preview"

	// ModelFlash is gemini-2.5-flash-image, faster and cheaper.
	ModelFlash = "gemini-2.5-flash-image"
)

// ModelAliases maps the CLI-friendly shorthand to full model identifiers.
var ModelAliases = map[string]string{
	"pro":   ModelPro,
	"flash": ModelFlash,
}

// Aspect ratios
const (
	AspectRatio1x1  = "1:1"
	AspectRatio2x3  = "2:3"
	AspectRatio3x2  = "3:2"
	AspectRatio3x4  = "3:4"
	AspectRatio4x3  = "4:3"
	AspectRatio4x5  = "4:5"
	AspectRatio5x4  = "5:4"
	AspectRatio9x16 = "9:16"
	AspectRatio16x9 = "16:9"
	AspectRatio21x9 = "21:9"
)

// AspectRatios lists every aspect ratio the API accepts.
var AspectRatios = []string{
	AspectRatio1x1,
	AspectRatio2x3,
	AspectRatio3x2,
	AspectRatio3x4,
	AspectRatio4x3,
	AspectRatio4x5,
	AspectRatio5x4,
	AspectRatio9x16,
	AspectRatio16x9,
	AspectRatio21x9,
}

// Image sizes
const (
	Size1K = "1K"
	Size2K = "2K"
	Size4K = "4K"
)

// ImageSizes lists every image size the API accepts.
var ImageSizes = []string{Size1K, Size2K, Size4K}
