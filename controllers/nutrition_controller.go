package controllers

import (
	"errors"
	"net/http"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Svc: svc}
}

func (nc *NutritionController) GetToday(c *gin.Context) {
	uid := c.GetUint("userID")

	logRow, err := nc.Svc.GetOrCreateToday(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"karbohidrat":   logRow.Carbohydrate,
		"lauk_hewani":   logRow.AnimalProtein,
		"lauk_nabati":   logRow.PlantProtein,
		"sayur":         logRow.Vegetables,
		"buah":          logRow.Fruit,
		"camilan_manis": logRow.SweetSnacks,
		"minuman_manis": logRow.SweetDrinks,
	})
}

func (nc *NutritionController) UpdateToday(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.NutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := nc.Svc.UpdateToday(uid, input); err != nil {
		if errors.Is(err, services.ErrNutritionLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Log tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log gizi berhasil diperbarui"})
}
