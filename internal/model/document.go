package model

// FileType is the closed set of document formats the catalogue tracks.
type FileType string

const (
	FileTypePDF   FileType = "PDF"
	FileTypeDOCX  FileType = "DOCX"
	FileTypeImage FileType = "IMAGE"
)

// Valid reports whether t is one of the known file types.
func (t FileType) Valid() bool {
	switch t {
	case FileTypePDF, FileTypeDOCX, FileTypeImage:
		return true
	}
	return false
}

// Document is a catalogued file record with descriptive metadata.
// This is a pure domain model with no transport or persistence tags beyond JSON.
// Category and Subcategory are free-text labels that conventionally match a
// CategoryNode, but the coupling is by name only and is not enforced.
type Document struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        FileType `json:"type"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Author      string   `json:"author"`
	UploadDate  string   `json:"uploadDate"` // YYYY-MM-DD
	Size        string   `json:"size"`       // display string, e.g. "12 MB"
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
	Version     float64  `json:"version"`
	URL         string   `json:"url,omitempty"`
	Cover       string   `json:"cover,omitempty"`
}
