package domain

// FileType represents the document types accepted for processing.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
	FileTypeGIF  FileType = "gif"
	FileTypeBMP  FileType = "bmp"
	FileTypeTIFF FileType = "tiff"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
	"gif":  FileTypeGIF,
	"bmp":  FileTypeBMP,
	"tiff": FileTypeTIFF,
	"tif":  FileTypeTIFF,
}

// IsImage reports whether the file type is a raster image that can be sent
// to the OCR service as-is.
func (t FileType) IsImage() bool {
	return t != FileTypePDF && t != ""
}

// Role is the requesting party's legal standing. It biases the analysis
// perspective and prompt framing.
type Role string

const (
	RolePlaintiff Role = "plaintiff"
	RoleDefendant Role = "defendant"

	// RoleUser is the default persona for the chat endpoint, which accepts
	// arbitrary role strings.
	RoleUser Role = "user"
)

// ValidAnalysisRoles lists the roles accepted by the document analysis
// endpoint. The chat endpoint deliberately has no such restriction.
var ValidAnalysisRoles = map[Role]bool{
	RolePlaintiff: true,
	RoleDefendant: true,
}
