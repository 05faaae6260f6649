package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"jobportal/internal/models"
)

func TestEmployeePagesRedirectWithoutSession(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/employee_home", "/add_skills", "/apply/1", "/employee_notifications"} {
		w := getPage(r, path, nil)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login_employee" {
			t.Fatalf("%s: expected redirect to /login_employee, got code=%d location=%q", path, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestEmployeeLogin_EmptyName(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/login_employee", url.Values{"name": {"   "}}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected form redisplay, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Enter your name") {
		t.Fatalf("expected warning flash in body")
	}
}

func TestRootAliasesEmployeeLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := getPage(r, "/", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Employee Login") {
		t.Fatalf("root should serve the employee login form, got %d", w.Code)
	}

	w2 := postForm(r, "/", url.Values{"name": {"Alice"}}, nil)
	if w2.Code != http.StatusFound || w2.Header().Get("Location") != "/employee_home" {
		t.Fatalf("root POST should log in: code=%d location=%q", w2.Code, w2.Header().Get("Location"))
	}
}

func TestEmployeeHome_ListsJobs(t *testing.T) {
	r, db := newTestRouter(t)

	for _, title := range []string{"first", "second"} {
		if err := db.Create(&models.Job{Title: title, Description: "d"}).Error; err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	cookies := loginEmployee(t, r, "Alice")
	w := getPage(r, "/employee_home", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Welcome, Alice") {
		t.Fatalf("expected greeting with session name")
	}
	if !strings.Contains(body, "first") || !strings.Contains(body, "second") {
		t.Fatalf("expected job listing in page")
	}
}

func TestApply_CreatesApplicationAndHRNotification(t *testing.T) {
	r, db := newTestRouter(t)

	job := models.Job{Title: "Backend Engineer", Description: "Go services"}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}

	cookies := loginEmployee(t, r, "Alice")
	w := postForm(r, fmt.Sprintf("/apply/%d", job.ID), url.Values{
		"email":   {"a@x.com"},
		"message": {"Interested"},
	}, cookies)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/confirmation" {
		t.Fatalf("expected redirect to confirmation, got code=%d location=%q", w.Code, w.Header().Get("Location"))
	}

	var app models.Application
	if err := db.First(&app).Error; err != nil {
		t.Fatalf("find application: %v", err)
	}
	if app.JobID != job.ID || app.Name != "Alice" || app.Email != "a@x.com" || app.Message != "Interested" {
		t.Fatalf("unexpected application: %+v", app)
	}

	var note models.Notification
	if err := db.First(&note).Error; err != nil {
		t.Fatalf("find notification: %v", err)
	}
	if note.UserType != models.RoleHR {
		t.Fatalf("notification should target hr, got %q", note.UserType)
	}
	if note.Message != "Alice applied for 'Backend Engineer'" {
		t.Fatalf("unexpected message: %q", note.Message)
	}
}

func TestApply_MissingJob(t *testing.T) {
	r, db := newTestRouter(t)
	cookies := loginEmployee(t, r, "Alice")

	w := postForm(r, "/apply/999", url.Values{"email": {"a@x.com"}}, cookies)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/employee_home" {
		t.Fatalf("expected redirect home, got code=%d location=%q", w.Code, w.Header().Get("Location"))
	}

	var count int64
	db.Model(&models.Application{}).Count(&count)
	if count != 0 {
		t.Fatalf("no application should be created, got %d", count)
	}
}

func TestApply_MalformedJobID(t *testing.T) {
	r, db := newTestRouter(t)
	cookies := loginEmployee(t, r, "Alice")

	// a non-integer id is a plain 404, not a flash-and-redirect
	w := postForm(r, "/apply/abc", url.Values{"email": {"a@x.com"}}, cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var count int64
	db.Model(&models.Application{}).Count(&count)
	if count != 0 {
		t.Fatalf("no application should be created, got %d", count)
	}
}

func TestAddSkills_IsANoOp(t *testing.T) {
	r, db := newTestRouter(t)
	cookies := loginEmployee(t, r, "Alice")

	w := postForm(r, "/add_skills", url.Values{"skills": {"Go, SQL"}}, cookies)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/employee_home" {
		t.Fatalf("expected redirect home, got code=%d location=%q", w.Code, w.Header().Get("Location"))
	}

	// nothing is persisted anywhere; the three tables stay untouched
	for _, m := range []any{&models.Job{}, &models.Application{}, &models.Notification{}} {
		var count int64
		db.Model(m).Count(&count)
		if count != 0 {
			t.Fatalf("no rows should exist after add_skills, got %d in %T", count, m)
		}
	}
}

func TestConfirmationPage_NoGuard(t *testing.T) {
	r, _ := newTestRouter(t)

	w := getPage(r, "/confirmation", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Application submitted") {
		t.Fatalf("confirmation page should render without a session, got %d", w.Code)
	}
}

func TestIdentityIsExclusivePerSession(t *testing.T) {
	r, _ := newTestRouter(t)

	// HR logs in, then the same browser session logs in as an employee:
	// the HR identity is replaced, not kept alongside.
	cookies := loginHR(t, r)
	w := postForm(r, "/login_employee", url.Values{"name": {"Alice"}}, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("employee login failed: %d", w.Code)
	}

	w2 := getPage(r, "/hr_dashboard", w.Result().Cookies())
	if w2.Code != http.StatusFound || w2.Header().Get("Location") != "/login_hr" {
		t.Fatalf("hr pages should be locked after the switch: code=%d location=%q", w2.Code, w2.Header().Get("Location"))
	}
}
