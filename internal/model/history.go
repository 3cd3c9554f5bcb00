package model

// HistoryAction identifies what a user did with a document.
// EDIT is part of the recorded vocabulary although no operation currently
// produces it.
type HistoryAction string

const (
	ActionUpload   HistoryAction = "UPLOAD"
	ActionDownload HistoryAction = "DOWNLOAD"
	ActionView     HistoryAction = "VIEW"
	ActionEdit     HistoryAction = "EDIT"
)

// Valid reports whether a is one of the known actions.
func (a HistoryAction) Valid() bool {
	switch a {
	case ActionUpload, ActionDownload, ActionView, ActionEdit:
		return true
	}
	return false
}

// HistoryEntry is an immutable activity snapshot. UserName and DocumentTitle
// are denormalized copies taken at write time so the entry stays readable
// after the referenced user or document is deleted.
type HistoryEntry struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName"`
	DocumentID    string        `json:"documentId"`
	DocumentTitle string        `json:"documentTitle"`
	Action        HistoryAction `json:"action"`
	Timestamp     string        `json:"timestamp"` // YYYY-MM-DD HH:MM
}
