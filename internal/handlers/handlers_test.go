package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	db, err := gorm.Open(dsn, &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Job{}, &models.Application{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := NewRouter("test-secret",
		services.NewJobService(db),
		services.NewApplicationService(db),
		services.NewNotificationService(db))
	return r, db
}

func getPage(r http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func countSessionCookies(w *httptest.ResponseRecorder) int {
	n := 0
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.Name {
			n++
		}
	}
	return n
}

func loginHR(t *testing.T, r http.Handler) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/login_hr", url.Values{"username": {"hr"}, "password": {"hr123"}}, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/hr_dashboard" {
		t.Fatalf("hr login failed: code=%d location=%q", w.Code, w.Header().Get("Location"))
	}
	return w.Result().Cookies()
}

func loginEmployee(t *testing.T, r http.Handler, name string) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/login_employee", url.Values{"name": {name}}, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/employee_home" {
		t.Fatalf("employee login failed: code=%d location=%q", w.Code, w.Header().Get("Location"))
	}
	return w.Result().Cookies()
}
