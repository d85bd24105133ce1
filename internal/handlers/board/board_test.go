package board

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/service/boardservice"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
)

func NewMock(t *testing.T) (*BoardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, userID string, params map[string]string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, url, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestAnnouncementsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Announcements(gomock.Any()).Return([]domain.Announcement{
		{ID: "ann-1", IsPinned: true},
		{ID: "ann-3", IsPinned: true},
		{ID: "ann-2"},
	})

	rr := httptest.NewRecorder()
	handler.Announcements(rr, newRequest("GET", "/api/announcements", "vol-1", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var list []domain.Announcement
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	assert.Len(t, list, 3)
	assert.True(t, list[0].IsPinned)
}

func TestCreateAnnouncementHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Published",
			body: `{"title":"Clubhouse closed Monday","content":"Heating","isPinned":true}`,
			prepareMock: func() {
				service.EXPECT().CreateAnnouncement(gomock.Any(), "admin-1", dto.AnnouncementRequestDTO{
					Title: "Clubhouse closed Monday", Content: "Heating", IsPinned: true,
				}).Return(domain.Announcement{ID: "ann-gen1", AuthorID: "admin-1", IsPinned: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing title",
			body:         `{"content":"Heating"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:          "Invalid request body",
			body:          `nope`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.CreateAnnouncement(rr, newRequest("POST", "/api/announcements", "admin-1", nil, bytes.NewReader([]byte(tt.body))))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestAnnouncementAdminHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().TogglePin(gomock.Any(), "ann-2").Return(domain.Announcement{ID: "ann-2", IsPinned: true}, nil)
	service.EXPECT().TogglePin(gomock.Any(), "ann-9").Return(domain.Announcement{}, store.ErrAnnouncementNotFound)
	service.EXPECT().DeleteAnnouncement(gomock.Any(), "ann-2").Return(nil)

	params := map[string]string{"announcementID": "ann-2"}

	rr := httptest.NewRecorder()
	handler.TogglePin(rr, newRequest("POST", "/api/announcements/ann-2/pin", "admin-1", params, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.TogglePin(rr, newRequest("POST", "/api/announcements/ann-9/pin", "admin-1", map[string]string{"announcementID": "ann-9"}, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.DeleteAnnouncement(rr, newRequest("DELETE", "/api/announcements/ann-2", "admin-1", params, nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestNotificationHandlers(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		err          error
		expectedCode int
	}{
		{"Own notification", "vol-1", nil, http.StatusOK},
		{"Someone else's", "admin-1", boardservice.ErrNotificationNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().MarkRead(gomock.Any(), tt.userID, "notif-1").Return(domain.Notification{ID: "notif-1", Read: true}, tt.err)

			rr := httptest.NewRecorder()
			handler.MarkRead(rr, newRequest("POST", "/api/notifications/notif-1/read", tt.userID,
				map[string]string{"notificationID": "notif-1"}, nil))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}

	service.EXPECT().Notifications(gomock.Any(), "vol-1").Return([]domain.Notification{{ID: "notif-3"}, {ID: "notif-1"}})
	rr := httptest.NewRecorder()
	handler.Notifications(rr, newRequest("GET", "/api/me/notifications", "vol-1", nil, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestClubHandlers(t *testing.T) {
	handler, service := NewMock(t)

	club := domain.Club{ID: "club-1", Name: "SV Oranje", CreditName: "Credits", CreditSymbol: "CR", CreditToEuroRatio: 0.5}
	service.EXPECT().Club(gomock.Any()).Return(club)

	rr := httptest.NewRecorder()
	handler.Club(rr, newRequest("GET", "/api/club", "vol-1", nil, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	updated := club
	updated.CreditToEuroRatio = 0.25
	service.EXPECT().UpdateClub(gomock.Any(), dto.ClubRequestDTO{
		Name: "SV Oranje", CreditName: "Credits", CreditSymbol: "CR", CreditToEuroRatio: 0.25,
	}).Return(updated)

	rr = httptest.NewRecorder()
	body := `{"name":"SV Oranje","creditName":"Credits","creditSymbol":"CR","creditToEuroRatio":0.25}`
	handler.UpdateClub(rr, newRequest("PUT", "/api/club", "admin-1", nil, bytes.NewReader([]byte(body))))
	assert.Equal(t, http.StatusOK, rr.Code)
	var got domain.Club
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.InDelta(t, 0.25, got.CreditToEuroRatio, 1e-9)

	rr = httptest.NewRecorder()
	handler.UpdateClub(rr, newRequest("PUT", "/api/club", "admin-1", nil, bytes.NewReader([]byte(`{"name":""}`))))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
