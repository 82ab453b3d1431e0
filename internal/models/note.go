package models

// Note is the user's single scratch-pad document. Content is opaque HTML
// produced by the dashboard's editor.
type Note struct {
	UserID    string
	Content   string
	UpdatedAt int64
}
