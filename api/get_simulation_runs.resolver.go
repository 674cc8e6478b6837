package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) listSimulationRuns(c *gin.Context) {
	runs, err := m.SimulationRunRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, runs)
}

func (m ApiHandler) getScenarioLosses(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	results, err := m.ScenarioResultRepository.List(runID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, results)
}
