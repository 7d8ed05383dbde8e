package controllers

import (
	"errors"
	"net/http"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

type logRequest struct {
	Status          string  `json:"status" binding:"required,oneof=Diminum Lupa Ditunda"`
	Dose            *string `json:"dosis"`
	TimeOfIntake    *string `json:"jam_konsumsi"`
	SideEffects     *string `json:"efek_samping"`
	ForgottenReason *string `json:"alasan_lupa"`
	MealNote        *string `json:"catatan_makan"`
}

// AddLog records today's adherence submission: 201 on first creation for
// the day, 200 when the day's row was updated.
func (lc *LogController) AddLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status log tidak valid"})
		return
	}

	created, err := lc.Svc.SubmitDailyLog(uid, services.LogInput{
		Status:          req.Status,
		Dose:            req.Dose,
		TimeOfIntake:    req.TimeOfIntake,
		SideEffects:     req.SideEffects,
		ForgottenReason: req.ForgottenReason,
		MealNote:        req.MealNote,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Log berhasil ditambahkan!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Log hari ini berhasil diperbarui."})
}

func (lc *LogController) GetLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := lc.Svc.ListLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, l := range logs {
		out = append(out, gin.H{
			"tanggal":       l.Date.Format("2006-01-02"),
			"status":        l.Status,
			"dosis":         l.Dose,
			"jam_konsumsi":  timeOrEmpty(l.TimeOfIntake),
			"efek_samping":  l.SideEffects,
			"alasan_lupa":   l.ForgottenReason,
			"catatan_makan": l.MealNote,
		})
	}
	c.JSON(http.StatusOK, gin.H{"logs": out})
}

func timeOrEmpty(t *string) string {
	if t == nil {
		return ""
	}
	return *t
}
