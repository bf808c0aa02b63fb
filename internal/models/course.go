package models

import (
	"time"

	"github.com/lib/pq"
)

// UnknownLabel is rendered for references whose course no longer exists.
// Deleting a course does not retract references held by teachers or files.
const UnknownLabel = "Unknown"

// Course represents one course record. TeacherIDs is the reconciled form of
// the free-text teacher name: a set of Teacher ids, resolved to names at
// read time.
type Course struct {
	ID         string         `db:"id" json:"id"`
	Code       string         `db:"code" json:"code"`
	Name       string         `db:"name" json:"name"`
	Credits    int            `db:"credits" json:"credits"`
	TeacherIDs pq.StringArray `db:"teacher_ids" json:"teacherIds"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
}

// Label returns the display label used by cross-entity views.
func (c Course) Label() string {
	return c.Code + " - " + c.Name
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	// Search matches, case-insensitively, against code or name.
	Search string
}

// CourseView is a course with teacher references resolved to display names.
type CourseView struct {
	Course
	TeacherNames []string `json:"teacherNames"`
}
