package api

import (
	"fmt"

	"aavevar/internal/service"

	"github.com/gin-gonic/gin"
)

type runSimulationRequest struct {
	Scenarios            int    `json:"scenarios"`
	Seed                 int64  `json:"seed"`
	TopBorrowers         int64  `json:"topBorrowers"`
	SavePrices           bool   `json:"savePrices"`
	AbortOnNonFiniteLoss bool   `json:"abortOnNonFiniteLoss"`
	CsvExportPath        string `json:"csvExportPath"`
}

func (m ApiHandler) runSimulation(c *gin.Context) {
	var requestBody runSimulationRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.Scenarios <= 0 {
		returnErrorJsonCode(fmt.Errorf("scenarios must be positive, got %d", requestBody.Scenarios), c, 400)
		return
	}

	run, err := m.VaRSimulationService.RunSimulation(c.Request.Context(), service.RunSimulationInput{
		Scenarios:            requestBody.Scenarios,
		Seed:                 requestBody.Seed,
		TopBorrowers:         requestBody.TopBorrowers,
		SavePrices:           requestBody.SavePrices,
		AbortOnNonFiniteLoss: requestBody.AbortOnNonFiniteLoss,
		CsvExportPath:        requestBody.CsvExportPath,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, run)
}
