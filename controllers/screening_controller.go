package controllers

import (
	"errors"
	"net/http"

	"github.com/arysespajayadii/dsc-backend-repo/services"
	"github.com/arysespajayadii/dsc-backend-repo/utils"

	"github.com/gin-gonic/gin"
)

type ScreeningController struct {
	Svc *services.ScreeningService
}

func NewScreeningController(svc *services.ScreeningService) *ScreeningController {
	return &ScreeningController{Svc: svc}
}

func (sc *ScreeningController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ScreeningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := sc.Svc.AddScreening(uid, input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Data skrining berhasil disimpan!",
		"imt":          entry.BMI,
		"zscore":       entry.BMIZScore,
		"kategori_imt": bmiCategoryOrEmpty(entry.BMI),
	})
}

func bmiCategoryOrEmpty(bmi *float64) string {
	if bmi == nil {
		return ""
	}
	return utils.BMICategory(*bmi)
}

func (sc *ScreeningController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := sc.Svc.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, e := range entries {
		out = append(out, gin.H{
			"tanggal_skrining": e.Date.Format("02 January 2006"),
			"berat_badan":      e.WeightKg,
			"tinggi_badan":     e.HeightCm,
			"imt":              e.BMI,
			"kategori_imt":     bmiCategoryOrEmpty(e.BMI),
			"bmi_zscore":       e.BMIZScore,
			"kadar_hb":         e.Hemoglobin,
			"riwayat_haid":     e.MenstrualHistory,
		})
	}
	c.JSON(http.StatusOK, out)
}
