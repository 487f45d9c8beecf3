package controller

import (
	"strconv"

	"parade/app_error"
	"parade/auth"
	"parade/scoring"
	"parade/service"
	"parade/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WinnersController struct {
	resultsService *service.ResultsService
}

func NewWinnersController(db *gorm.DB) *WinnersController {
	return &WinnersController{
		resultsService: service.NewResultsService(db),
	}
}

func setupWinnersController(db *gorm.DB) []RouteInfo {
	e := NewWinnersController(db)
	return []RouteInfo{
		{Method: "GET", Path: "/winners", HandlerFunc: e.getWinnersHandler(), Authenticated: true, RequiredRoles: []auth.Role{auth.RoleCoordinator}},
	}
}

// @Description Computes category and overall winners for one event or all events
// @Tags winners
// @Produce json
// @Param eventId query int false "Event ID"
// @Success 200 {object} WinnersResponse
// @Security BearerAuth
// @Router /winners [get]
func (e *WinnersController) getWinnersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventId *int
		if raw := c.Query("eventId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(400, gin.H{"error": "eventId must be a number"})
				return
			}
			eventId = &id
		}
		board, err := e.resultsService.GetLeaderboard(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toWinnersResponse(board))
	}
}

type WinnerResponse struct {
	EntryId          int    `json:"entry_id"`
	OrganizationName string `json:"organization_name"`
	FloatNumber      *int   `json:"float_number"`
	Total            int    `json:"total"`
}

type StandingResponse struct {
	EntryId          int            `json:"entry_id"`
	EventId          int            `json:"event_id"`
	OrganizationName string         `json:"organization_name"`
	FloatNumber      *int           `json:"float_number"`
	CategoryTotals   map[string]int `json:"category_totals"`
	Total            int            `json:"total"`
	JudgeCount       int            `json:"judge_count"`
}

type WinnersResponse struct {
	Categories    map[string][]WinnerResponse `json:"categories"`
	CategoryOrder []string                    `json:"category_order"`
	Overall       []WinnerResponse            `json:"overall"`
	OverallLabel  string                      `json:"overall_label"`
	Standings     []StandingResponse          `json:"standings"`
}

func toWinnerResponse(winner *scoring.Winner) WinnerResponse {
	return WinnerResponse{
		EntryId:          winner.EntryId,
		OrganizationName: winner.OrganizationName,
		FloatNumber:      winner.Position,
		Total:            winner.Total,
	}
}

func toStandingResponse(standing *scoring.Standing) StandingResponse {
	return StandingResponse{
		EntryId:          standing.EntryId,
		EventId:          standing.EventId,
		OrganizationName: standing.OrganizationName,
		FloatNumber:      standing.Position,
		CategoryTotals:   standing.CategoryTotals,
		Total:            standing.Total,
		JudgeCount:       standing.JudgeCount,
	}
}

func toWinnersResponse(board *scoring.Leaderboard) WinnersResponse {
	categories := make(map[string][]WinnerResponse, len(board.Categories))
	for name, winners := range board.Categories {
		categories[name] = utils.Map(winners, toWinnerResponse)
	}
	return WinnersResponse{
		Categories:    categories,
		CategoryOrder: board.CategoryOrder,
		Overall:       utils.Map(board.Overall, toWinnerResponse),
		OverallLabel:  board.OverallLabel,
		Standings:     utils.Map(board.Standings, toStandingResponse),
	}
}
