package models

import (
	"time"

	"github.com/lib/pq"
)

// Teacher represents an instructor record. CourseIDs must reference courses
// that exist at write time; references may dangle afterwards.
type Teacher struct {
	ID        string         `db:"id" json:"id"`
	FullName  string         `db:"full_name" json:"fullName"`
	Email     string         `db:"email" json:"email"`
	Phone     string         `db:"phone" json:"phone"`
	Expertise string         `db:"expertise" json:"expertise"`
	CourseIDs pq.StringArray `db:"course_ids" json:"courseIds"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

// TeacherView is a teacher with course references resolved to display labels.
type TeacherView struct {
	Teacher
	CourseLabels []string `json:"courseLabels"`
}
