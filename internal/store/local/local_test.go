package local

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

func openTestStores(t *testing.T) (store.Stores, string) {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	require.NoError(t, err)
	return NewStores(db), dir
}

func TestCourseStoreRoundTrip(t *testing.T) {
	stores, _ := openTestStores(t)
	ctx := context.Background()

	course := &models.Course{Code: "CS101", Name: "Intro", Credits: 5}
	require.NoError(t, stores.Courses.Create(ctx, course))
	assert.NotEmpty(t, course.ID)
	assert.False(t, course.CreatedAt.IsZero())

	found, err := stores.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS101", found.Code)

	found.Name = "Intro v2"
	require.NoError(t, stores.Courses.Update(ctx, found))

	again, err := stores.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro v2", again.Name)
	assert.Equal(t, course.CreatedAt.Unix(), again.CreatedAt.Unix(), "update preserves createdAt")

	require.NoError(t, stores.Courses.Delete(ctx, course.ID))
	_, err = stores.Courses.FindByID(ctx, course.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCourseStoreNotFound(t *testing.T) {
	stores, _ := openTestStores(t)
	ctx := context.Background()

	_, err := stores.Courses.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, stores.Courses.Update(ctx, &models.Course{ID: "missing"}), store.ErrNotFound)
	assert.ErrorIs(t, stores.Courses.Delete(ctx, "missing"), store.ErrNotFound)
}

func TestCourseStoreListNewestFirst(t *testing.T) {
	stores, _ := openTestStores(t)
	ctx := context.Background()

	older := &models.Course{Code: "CS101", Name: "Intro", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := &models.Course{Code: "MA201", Name: "Calculus", CreatedAt: time.Now().UTC()}
	require.NoError(t, stores.Courses.Create(ctx, older))
	require.NoError(t, stores.Courses.Create(ctx, newer))

	courses, err := stores.Courses.List(ctx, models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "MA201", courses[0].Code)
	assert.Equal(t, "CS101", courses[1].Code)
}

func TestCourseStoreListSearch(t *testing.T) {
	stores, _ := openTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Courses.Create(ctx, &models.Course{Code: "CS101", Name: "Intro to CS"}))
	require.NoError(t, stores.Courses.Create(ctx, &models.Course{Code: "MA201", Name: "Calculus"}))

	courses, err := stores.Courses.List(ctx, models.CourseFilter{Search: "cs"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := Open(dir)
	require.NoError(t, err)
	stores := NewStores(db)

	course := &models.Course{Code: "CS101", Name: "Intro"}
	require.NoError(t, stores.Courses.Create(ctx, course))

	teacher := &models.Teacher{FullName: "Dana Levi", Email: "dana@example.com", CourseIDs: []string{course.ID}}
	require.NoError(t, stores.Teachers.Create(ctx, teacher))

	// Fresh handle over the same directory sees the same records.
	db2, err := Open(dir)
	require.NoError(t, err)
	reopened := NewStores(db2)

	found, err := reopened.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS101", found.Code)

	teachers, err := reopened.Teachers.List(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, []string{course.ID}, []string(teachers[0].CourseIDs))
}

func TestCourseFileStoreFilter(t *testing.T) {
	stores, _ := openTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.CourseFiles.Create(ctx, &models.CourseFile{CourseID: "c1", DisplayName: "A"}))
	require.NoError(t, stores.CourseFiles.Create(ctx, &models.CourseFile{CourseID: "c2", DisplayName: "B"}))

	files, err := stores.CourseFiles.List(ctx, models.CourseFileFilter{CourseID: "c1"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "A", files[0].DisplayName)

	all, err := stores.CourseFiles.List(ctx, models.CourseFileFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAuthAccountStoreFindByEmail(t *testing.T) {
	stores, _ := openTestStores(t)
	ctx := context.Background()

	account := &models.AuthAccount{Email: "noa@example.com", PasswordHash: "hash"}
	require.NoError(t, stores.AuthAccounts.Create(ctx, account))

	found, err := stores.AuthAccounts.FindByEmail(ctx, "NOA@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash, "hash survives the JSON round trip")

	_, err = stores.AuthAccounts.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserStoreRoundTrip(t *testing.T) {
	stores, _ := openTestStores(t)
	ctx := context.Background()

	user := &models.User{FullName: "Noa Cohen", Email: "noa@example.com", Age: 25, City: "Haifa", AuthRef: "acct-1"}
	require.NoError(t, stores.Users.Create(ctx, user))

	users, err := stores.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "acct-1", users[0].AuthRef)

	require.NoError(t, stores.Users.Delete(ctx, user.ID))
	users, err = stores.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
