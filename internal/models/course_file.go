package models

import "time"

// MaxCourseFileBytes caps inline file payloads before any persistence call.
const MaxCourseFileBytes = 2_000_000

// CourseFile is a file attached to a course. Content is the self-describing
// data-URL form (embeds MIME type and base64 payload) carried inline with
// the record.
type CourseFile struct {
	ID           string    `db:"id" json:"id"`
	CourseID     string    `db:"course_id" json:"courseId"`
	DisplayName  string    `db:"display_name" json:"displayName"`
	OriginalName string    `db:"original_name" json:"originalName"`
	MimeType     string    `db:"mime_type" json:"mimeType"`
	SizeBytes    int64     `db:"size_bytes" json:"sizeBytes"`
	Content      string    `db:"content" json:"content"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// CourseFileFilter narrows file listings to one course when CourseID is set.
type CourseFileFilter struct {
	CourseID string
}

// CourseFileView is a file with its course reference resolved to a label.
type CourseFileView struct {
	CourseFile
	CourseLabel string `json:"courseLabel"`
}
