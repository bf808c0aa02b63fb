package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

type mockCourseStore struct {
	courses    []models.Course
	listErr    error
	createErr  error
	writeCalls int
}

func (m *mockCourseStore) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.courses, nil
}

func (m *mockCourseStore) FindByID(ctx context.Context, id string) (*models.Course, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			c := m.courses[i]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockCourseStore) Create(ctx context.Context, course *models.Course) error {
	m.writeCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	course.CreatedAt = time.Now().UTC()
	m.courses = append(m.courses, *course)
	return nil
}

func (m *mockCourseStore) Update(ctx context.Context, course *models.Course) error {
	m.writeCalls++
	for i := range m.courses {
		if m.courses[i].ID == course.ID {
			m.courses[i] = *course
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockCourseStore) Delete(ctx context.Context, id string) error {
	m.writeCalls++
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type mockTeacherStore struct {
	teachers   []models.Teacher
	listErr    error
	writeCalls int
}

func (m *mockTeacherStore) List(ctx context.Context) ([]models.Teacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.teachers, nil
}

func (m *mockTeacherStore) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	for i := range m.teachers {
		if m.teachers[i].ID == id {
			t := m.teachers[i]
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockTeacherStore) Create(ctx context.Context, teacher *models.Teacher) error {
	m.writeCalls++
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	teacher.CreatedAt = time.Now().UTC()
	m.teachers = append(m.teachers, *teacher)
	return nil
}

func (m *mockTeacherStore) Update(ctx context.Context, teacher *models.Teacher) error {
	m.writeCalls++
	for i := range m.teachers {
		if m.teachers[i].ID == teacher.ID {
			m.teachers[i] = *teacher
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockTeacherStore) Delete(ctx context.Context, id string) error {
	m.writeCalls++
	for i := range m.teachers {
		if m.teachers[i].ID == id {
			m.teachers = append(m.teachers[:i], m.teachers[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type mockCourseFileStore struct {
	files      []models.CourseFile
	writeCalls int
}

func (m *mockCourseFileStore) List(ctx context.Context, filter models.CourseFileFilter) ([]models.CourseFile, error) {
	if filter.CourseID == "" {
		return m.files, nil
	}
	var out []models.CourseFile
	for _, f := range m.files {
		if f.CourseID == filter.CourseID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockCourseFileStore) FindByID(ctx context.Context, id string) (*models.CourseFile, error) {
	for i := range m.files {
		if m.files[i].ID == id {
			f := m.files[i]
			return &f, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockCourseFileStore) Create(ctx context.Context, file *models.CourseFile) error {
	m.writeCalls++
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	file.CreatedAt = time.Now().UTC()
	m.files = append(m.files, *file)
	return nil
}

func (m *mockCourseFileStore) Delete(ctx context.Context, id string) error {
	m.writeCalls++
	for i := range m.files {
		if m.files[i].ID == id {
			m.files = append(m.files[:i], m.files[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type mockUserStore struct {
	users     []models.User
	createErr error
}

func (m *mockUserStore) List(ctx context.Context) ([]models.User, error) {
	return m.users, nil
}

func (m *mockUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserStore) Delete(ctx context.Context, id string) error {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type mockAuthAccountStore struct {
	accounts []models.AuthAccount
}

func (m *mockAuthAccountStore) FindByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	for i := range m.accounts {
		if m.accounts[i].Email == email {
			a := m.accounts[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockAuthAccountStore) Create(ctx context.Context, account *models.AuthAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	account.CreatedAt = time.Now().UTC()
	m.accounts = append(m.accounts, *account)
	return nil
}

type staticLabels map[string]string

func (s staticLabels) LabelMap(ctx context.Context) (map[string]string, error) {
	return s, nil
}
