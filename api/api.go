package api

import (
	"database/sql"
	"fmt"

	"aavevar/internal/logger"
	"aavevar/internal/repository"
	"aavevar/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                       *sql.DB
	VaRSimulationService     service.VaRSimulationService
	SimulationRunRepository  repository.SimulationRunRepository
	ScenarioResultRepository repository.ScenarioResultRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "aave var simulator"})
	})
	router.POST("/simulations", m.runSimulation)
	router.GET("/simulations", m.listSimulationRuns)
	router.GET("/simulations/:id/losses", m.getScenarioLosses)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())
	log.Infow("api request", "method", ctx.Request.Method, "route", ctx.Request.URL.Path, "ip", ctx.ClientIP())
	ctx.Next()
}
