package plans

import (
	"net/http"

	"academy-app/database"
	"academy-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func ListPlans(c *gin.Context) {
	var plansList []plans.Plan
	if err := database.DB.
		Model(&plans.Plan{}).
		Order("price_inr ASC").
		Find(&plansList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, plansList)
}

// SeedPlans re-applies the static catalog to the database. Admin only;
// useful after a catalog change ships without waiting for a restart.
func SeedPlans(c *gin.Context) {
	created := 0
	updated := 0

	for _, p := range plans.Catalog() {
		var existing plans.Plan
		err := database.DB.Where("code = ?", p.Code).First(&existing).Error

		if err != nil {
			if err := database.DB.Create(&p).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
				return
			}
			created++
			continue
		}

		existing.Name = p.Name
		existing.PriceINR = p.PriceINR
		existing.Interval = p.Interval
		existing.Features = p.Features
		if err := database.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
			return
		}
		updated++
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"updated": updated,
	})
}
