package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/service/taskservice"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
)

func NewMock(t *testing.T) (*TaskHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, taskID, userID string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, url, body)
	rctx := chi.NewRouteContext()
	if taskID != "" {
		rctx.URLParams.Add("taskID", taskID)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

const validTask = `{"title":"Bar duty","category":"bar","creditReward":25,"date":"2026-04-04",` +
	`"startTime":"12:00","endTime":"17:00","maxVolunteers":2}`

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "No filter",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), dto.TaskFilterDTO{}).
					Return([]domain.Task{{ID: "task-1"}, {ID: "task-2"}})
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Open bar tasks",
			query: "?status=open&category=bar",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), dto.TaskFilterDTO{Status: domain.TaskOpen, Category: "bar"}).
					Return([]domain.Task{{ID: "task-1"}})
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "Unknown status",
			query:        "?status=done",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.List(rr, newRequest("GET", "/api/tasks"+tt.query, "", "vol-1", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var tasks []domain.Task
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&tasks))
				assert.Len(t, tasks, tt.expectedLen)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		taskID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Found",
			taskID: "task-1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), "task-1").Return(domain.Task{ID: "task-1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Missing",
			taskID: "task-404",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), "task-404").Return(domain.Task{}, store.ErrTaskNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: store.ErrTaskNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Get(rr, newRequest("GET", "/api/tasks/"+tt.taskID, tt.taskID, "vol-1", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestMyTasksHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().UserTasks(gomock.Any(), "vol-3").Return([]domain.Task{{ID: "task-2"}})

	rr := httptest.NewRecorder()
	handler.MyTasks(rr, newRequest("GET", "/api/me/tasks", "", "vol-3", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var tasks []domain.Task
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&tasks))
	assert.Equal(t, "task-2", tasks[0].ID)
}

func TestSignUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"Signed up", nil, http.StatusOK},
		{"Task full", store.ErrTaskFull, http.StatusConflict},
		{"Already assigned", store.ErrAlreadyAssigned, http.StatusConflict},
		{"Not open", taskservice.ErrNotOpen, http.StatusConflict},
		{"Unknown task", store.ErrTaskNotFound, http.StatusNotFound},
		{"Unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().SignUp(gomock.Any(), "task-1", "vol-3").
				Return(domain.Task{ID: "task-1", AssignedVolunteerIDs: []string{"vol-1", "vol-2", "vol-3"}}, tt.err)

			rr := httptest.NewRecorder()
			handler.SignUp(rr, newRequest("POST", "/api/tasks/task-1/signup", "task-1", "vol-3", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCancelSignUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CancelSignUp(gomock.Any(), "task-2", "vol-4").Return(&dto.CancelSignUpResponseDTO{
		Task:     domain.Task{ID: "task-2", AssignedVolunteerIDs: []string{"vol-5", "vol-3"}},
		Promoted: "vol-3",
	}, nil)

	rr := httptest.NewRecorder()
	handler.CancelSignUp(rr, newRequest("DELETE", "/api/tasks/task-2/signup", "task-2", "vol-4", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.CancelSignUpResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "vol-3", resp.Promoted)
	assert.Equal(t, []string{"vol-5", "vol-3"}, resp.Task.AssignedVolunteerIDs)
}

func TestWaitlistHandlers(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		method       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Join",
			method: "POST",
			prepareMock: func() {
				service.EXPECT().JoinWaitlist(gomock.Any(), "task-2", "vol-6").Return(domain.Task{ID: "task-2"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Join twice",
			method: "POST",
			prepareMock: func() {
				service.EXPECT().JoinWaitlist(gomock.Any(), "task-2", "vol-6").Return(domain.Task{}, store.ErrAlreadyWaitlisted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Join closed task",
			method: "POST",
			prepareMock: func() {
				service.EXPECT().JoinWaitlist(gomock.Any(), "task-2", "vol-6").Return(domain.Task{}, taskservice.ErrTaskClosed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Leave",
			method: "DELETE",
			prepareMock: func() {
				service.EXPECT().LeaveWaitlist(gomock.Any(), "task-2", "vol-6").Return(domain.Task{ID: "task-2"}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			req := newRequest(tt.method, "/api/tasks/task-2/waitlist", "task-2", "vol-6", nil)
			if tt.method == "POST" {
				handler.JoinWaitlist(rr, req)
			} else {
				handler.LeaveWaitlist(rr, req)
			}
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: validTask,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req dto.TaskRequestDTO) (domain.Task, error) {
						return req.Task("task-gen1"), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Zero capacity",
			body:         `{"title":"Bar duty","category":"bar","date":"2026-04-04","startTime":"12:00","endTime":"17:00","maxVolunteers":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Rejected by store",
			body: validTask,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Task{}, fmt.Errorf("%w: too many assigned", store.ErrInvalidTask))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Create(rr, newRequest("POST", "/api/tasks", "", "admin-1", bytes.NewReader([]byte(tt.body))))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusCreated {
				var task domain.Task
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&task))
				assert.Equal(t, domain.TaskOpen, task.Status)
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Updated",
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "task-4", gomock.Any()).Return(domain.Task{ID: "task-4"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown task",
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "task-4", gomock.Any()).Return(domain.Task{}, store.ErrTaskNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Update(rr, newRequest("PUT", "/api/tasks/task-4", "task-4", "admin-1", bytes.NewReader([]byte(validTask))))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), "task-6").Return(nil)
	service.EXPECT().Delete(gomock.Any(), "task-6").Return(store.ErrTaskNotFound)

	rr := httptest.NewRecorder()
	handler.Delete(rr, newRequest("DELETE", "/api/tasks/task-6", "task-6", "admin-1", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.Delete(rr, newRequest("DELETE", "/api/tasks/task-6", "task-6", "admin-1", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Paid out",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), "task-1").Return(&dto.CompleteTaskResponseDTO{
					Task: domain.Task{ID: "task-1", Status: domain.TaskCompleted},
					Transactions: []domain.Transaction{
						{UserID: "vol-1", Amount: 15, Type: domain.TransactionEarned},
						{UserID: "vol-2", Amount: 15, Type: domain.TransactionEarned},
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already completed",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), "task-1").Return(nil, taskservice.ErrTaskClosed)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Complete(rr, newRequest("POST", "/api/tasks/task-1/complete", "task-1", "admin-1", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.CompleteTaskResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp.Transactions, 2)
			}
		})
	}
}
