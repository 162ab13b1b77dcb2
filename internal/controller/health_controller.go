package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// @Summary Health check
// @Description Reports whether the database and, when enabled, Redis respond
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{"database": "up"}
	healthy := true

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
		components["database"] = "down"
		healthy = false
	}

	if c.Redis != nil {
		components["redis"] = "up"
		if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
			components["redis"] = "down"
			healthy = false
		}
	}

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	ctx.JSON(code, gin.H{
		"success":    healthy,
		"status":     status,
		"components": components,
	})
}
