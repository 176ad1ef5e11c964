package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memStudentStore struct {
	students map[string]*models.Student
	nextID   int64
}

func (s *memStudentStore) Create(_ context.Context, student *models.Student) error {
	if _, ok := s.students[student.Code]; ok {
		return apperrors.ErrStudentCodeExists
	}
	s.nextID++
	student.ID = s.nextID
	student.CreatedAt = time.Now()
	copied := *student
	s.students[student.Code] = &copied
	return nil
}

func (s *memStudentStore) GetByCode(_ context.Context, code string) (*models.Student, error) {
	student, ok := s.students[code]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (s *memStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	all := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		copied := *student
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func newStudentRouter() (*gin.Engine, *memStudentStore) {
	store := &memStudentStore{students: map[string]*models.Student{}}
	controller := NewStudentController(services.NewStudentService(store))

	router := gin.New()
	router.POST("/students", controller.Register)
	router.GET("/students", controller.List)
	router.GET("/students/:code", controller.GetByCode)
	return router, store
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRegisterStudent(t *testing.T) {
	router, store := newStudentRouter()

	recorder := perform(router, http.MethodPost, "/students",
		`{"code":"2024001","name":"Alice Johnson"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
	assert.Contains(t, recorder.Body.String(), "Alice Johnson")
	assert.Len(t, store.students, 1)
}

func TestRegisterStudentDuplicate(t *testing.T) {
	router, _ := newStudentRouter()

	perform(router, http.MethodPost, "/students", `{"code":"2024001","name":"Alice Johnson"}`)
	recorder := perform(router, http.MethodPost, "/students", `{"code":"2024001","name":"Alice Again"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already exists")
}

func TestRegisterStudentMissingFields(t *testing.T) {
	router, _ := newStudentRouter()

	recorder := perform(router, http.MethodPost, "/students", `{"code":"2024001"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid student data")
}

func TestListStudentsSortedByName(t *testing.T) {
	router, _ := newStudentRouter()

	perform(router, http.MethodPost, "/students", `{"code":"2024002","name":"Bruno Costa"}`)
	perform(router, http.MethodPost, "/students", `{"code":"2024001","name":"Alice Johnson"}`)

	recorder := perform(router, http.MethodGet, "/students", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Less(t, strings.Index(body, "Alice Johnson"), strings.Index(body, "Bruno Costa"))
}

func TestGetStudentByCode(t *testing.T) {
	router, _ := newStudentRouter()

	perform(router, http.MethodPost, "/students", `{"code":"2024001","name":"Alice Johnson"}`)

	recorder := perform(router, http.MethodGet, "/students/2024001", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Alice Johnson")
}

func TestGetStudentByCodeNotFound(t *testing.T) {
	router, _ := newStudentRouter()

	recorder := perform(router, http.MethodGet, "/students/9999", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "student not found")
}
