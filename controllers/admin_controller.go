package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arysespajayadii/dsc-backend-repo/middlewares"
	"github.com/arysespajayadii/dsc-backend-repo/services"
	"github.com/arysespajayadii/dsc-backend-repo/worker"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminController backs the console: session login, the question queue,
// user administration and reports.
type AdminController struct {
	Questions *services.QuestionService
	Reports   *services.ReportService
}

func NewAdminController(questions *services.QuestionService, reports *services.ReportService) *AdminController {
	return &AdminController{Questions: questions, Reports: reports}
}

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AdminController) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := services.AuthenticateAdmin(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username atau password salah"})
		return
	}

	session := sessions.Default(c)
	session.Set(middlewares.SessionAdminID, admin.ID)
	session.Set(middlewares.SessionAdminUsername, admin.Username)
	session.Set(middlewares.SessionAdminRole, admin.Role)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "login successful", "role": admin.Role})
}

func (ac *AdminController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Dashboard lists unanswered questions, oldest first.
func (ac *AdminController) Dashboard(c *gin.Context) {
	questions, err := ac.Questions.ListUnanswered()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, q := range questions {
		out = append(out, gin.H{
			"id":            q.ID,
			"question_text": q.QuestionText,
			"created_at":    q.CreatedAt.Format("02 January 2006"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"questions": out})
}

type answerRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
}

func (ac *AdminController) AnswerQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answeredBy := c.GetString("adminUsername")
	if err := ac.Questions.Answer(uint(questionID), req.AnswerText, answeredBy); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pertanyaan tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Jawaban berhasil disimpan"})
}

type createAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.CreateAdmin(req.Username, req.Password, req.Role); err != nil {
		if errors.Is(err, services.ErrAdminNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username sudah digunakan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Akun berhasil dibuat"})
}

func (ac *AdminController) ListAdmins(c *gin.Context) {
	admins, err := services.ListAdmins()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, a := range admins {
		out = append(out, gin.H{"id": a.ID, "username": a.Username, "role": a.Role})
	}
	c.JSON(http.StatusOK, gin.H{"admins": out})
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

func (ac *AdminController) ResetAdminPassword(c *gin.Context) {
	adminID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ResetAdminPassword(uint(adminID), req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password baru harus memiliki minimal 6 karakter"})
		case errors.Is(err, services.ErrAdminNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin tidak ditemukan"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password berhasil direset"})
}

func (ac *AdminController) ResetUserPassword(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ResetUserPassword(uint(userID), req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password baru harus memiliki minimal 6 karakter"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password pengguna berhasil direset"})
}

// ListAppUsers returns every registered user plus the subset who have not
// logged today.
func (ac *AdminController) ListAppUsers(c *gin.Context) {
	all, err := ac.Reports.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	missing, err := ac.Reports.UsersWithoutLogToday(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	allOut := []gin.H{}
	for _, u := range all {
		points := 0
		if u.Points != nil {
			points = *u.Points
		}
		allOut = append(allOut, gin.H{
			"id":        u.ID,
			"username":  u.Username,
			"points":    points,
			"join_date": u.CreatedAt.Format("2006-01-02"),
		})
	}

	missingOut := []gin.H{}
	for _, u := range missing {
		missingOut = append(missingOut, gin.H{"id": u.ID, "username": u.Username})
	}

	c.JSON(http.StatusOK, gin.H{
		"all_users":              allOut,
		"users_not_logged_today": missingOut,
	})
}

func (ac *AdminController) GetReports(c *gin.Context) {
	report, err := ac.Reports.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// RunReminderSweep enqueues an immediate reminder sweep instead of waiting
// for the next scheduled run.
func (ac *AdminController) RunReminderSweep(c *gin.Context) {
	if err := worker.EnqueueDailyReminder(); err != nil {
		if errors.Is(err, worker.ErrClientNotInitialized) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "task queue unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Pengingat sedang dikirim."})
}

type homepageRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	ImageBase64 string `json:"image_base64"`
}

func (ac *AdminController) GetHomepage(c *gin.Context) {
	content, err := services.GetHomePage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (ac *AdminController) UpdateHomepage(c *gin.Context) {
	var req homepageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.UpdateHomePage(services.HomePageInput{
		Title:       req.Title,
		Content:     req.Content,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Konten halaman utama berhasil diperbarui"})
}
