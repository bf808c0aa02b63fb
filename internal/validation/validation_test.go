package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type courseForm struct {
	Code    string `json:"code" validate:"required,course_code"`
	Name    string `json:"name" validate:"required"`
	Credits int    `json:"credits" validate:"gte=0,lte=30"`
}

type teacherForm struct {
	FullName  string   `json:"fullName" validate:"required,min=2,max=50"`
	Phone     string   `json:"phone" validate:"required,phone_digits"`
	CourseIDs []string `json:"courseIds" validate:"required,min=1"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(courseForm{Code: "CS101", Name: "Intro", Credits: 5})
	assert.True(t, errs.Empty())
}

func TestStructCourseCode(t *testing.T) {
	cases := map[string]bool{
		"CS101":     true,
		"ab12":      true,
		"MATHS2024": true,
		"C101":      false,
		"CS1":       false,
		"COURSE101": false,
		"CS10123":   false,
		"101CS":     false,
		"":          false,
	}
	for code, ok := range cases {
		errs := Struct(courseForm{Code: code, Name: "x", Credits: 1})
		if ok {
			assert.True(t, errs.Empty(), "code %q should pass", code)
		} else {
			assert.Contains(t, errs, "code", "code %q should fail", code)
		}
	}
}

func TestStructCreditsBounds(t *testing.T) {
	assert.True(t, Struct(courseForm{Code: "CS101", Name: "x", Credits: 0}).Empty())
	assert.True(t, Struct(courseForm{Code: "CS101", Name: "x", Credits: 30}).Empty())
	assert.Contains(t, Struct(courseForm{Code: "CS101", Name: "x", Credits: -1}), "credits")
	assert.Contains(t, Struct(courseForm{Code: "CS101", Name: "x", Credits: 31}), "credits")
}

func TestStructPhoneDigits(t *testing.T) {
	base := teacherForm{FullName: "Dana Levi", CourseIDs: []string{"c1"}}

	base.Phone = "054123456"
	assert.True(t, Struct(base).Empty())

	base.Phone = "0541234567"
	assert.True(t, Struct(base).Empty())

	base.Phone = "05412345"
	assert.Contains(t, Struct(base), "phone")

	base.Phone = "05412345678"
	assert.Contains(t, Struct(base), "phone")

	base.Phone = "054-123456"
	assert.Contains(t, Struct(base), "phone")
}

func TestStructCourseIDsMinOne(t *testing.T) {
	form := teacherForm{FullName: "Dana Levi", Phone: "054123456"}
	errs := Struct(form)
	assert.Contains(t, errs, "courseIds")

	form.CourseIDs = []string{}
	assert.Contains(t, Struct(form), "courseIds")

	form.CourseIDs = []string{"c1"}
	assert.True(t, Struct(form).Empty())
}

func TestStructKeysUseJSONNames(t *testing.T) {
	errs := Struct(teacherForm{})
	assert.Contains(t, errs, "fullName")
	assert.NotContains(t, errs, "FullName")
}

func TestStructIsPure(t *testing.T) {
	form := courseForm{Code: "bad", Name: "", Credits: 40}
	first := Struct(form)
	second := Struct(form)
	assert.Equal(t, first, second)
	assert.Equal(t, "bad", form.Code)
}
