package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRunReminderSweepWithoutQueue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No task queue client has been set up in this process, so the trigger
	// must report the queue as unavailable instead of panicking.
	ctl := &AdminController{}
	r := gin.New()
	r.POST("/admin/reminders/run", ctl.RunReminderSweep)

	req := httptest.NewRequest(http.MethodPost, "/admin/reminders/run", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without a task queue, got %d: %s", w.Code, w.Body.String())
	}
}
