package controller

import (
	"strconv"
	"time"

	"parade/app_error"
	"parade/auth"
	"parade/repository"
	"parade/service"
	"parade/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreController struct {
	scoreService *service.ScoreService
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{
		scoreService: service.NewScoreService(db),
	}
}

func setupScoreController(db *gorm.DB) []RouteInfo {
	e := NewScoreController(db)
	judge := []auth.Role{auth.RoleJudge}
	return []RouteInfo{
		{Method: "POST", Path: "/scores", HandlerFunc: e.saveScoreHandler(), Authenticated: true, RequiredRoles: judge},
		{Method: "PATCH", Path: "/scores", HandlerFunc: e.saveScoreHandler(), Authenticated: true, RequiredRoles: judge},
		{Method: "GET", Path: "/scores", HandlerFunc: e.getScoreHandler(), Authenticated: true, RequiredRoles: judge},
		{Method: "GET", Path: "/events/:event_id/scores", HandlerFunc: e.getEventScoresHandler(), Authenticated: true, RequiredRoles: []auth.Role{auth.RoleCoordinator}},
	}
}

// @Description Saves the current judge's scores for one entry; null clears a category
// @Tags score
// @Accept json
// @Produce json
// @Param score body ScoreSave true "Scores keyed by category name"
// @Success 200 {object} JudgeScoreResponse
// @Security BearerAuth
// @Router /scores [post]
// @Router /scores [patch]
func (e *ScoreController) saveScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, ok := judgeIdFrom(c)
		if !ok {
			return
		}
		var save ScoreSave
		if err := c.BindJSON(&save); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		score, err := e.scoreService.SaveScore(judgeId, save.FloatId, save.Scores)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toJudgeScoreResponse(score))
	}
}

// @Description Fetches the current judge's scores for one entry
// @Tags score
// @Produce json
// @Param floatId query int true "Entry ID"
// @Success 200 {object} JudgeScoreResponse
// @Security BearerAuth
// @Router /scores [get]
func (e *ScoreController) getScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, ok := judgeIdFrom(c)
		if !ok {
			return
		}
		entryId, err := strconv.Atoi(c.Query("floatId"))
		if err != nil {
			c.JSON(400, gin.H{"error": "floatId must be a number"})
			return
		}
		score, err := e.scoreService.GetJudgeScore(judgeId, entryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toJudgeScoreResponse(score))
	}
}

// @Description Lists every stored score of an event
// @Tags score
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} ScoreResponse
// @Security BearerAuth
// @Router /events/{eventId}/scores [get]
func (e *ScoreController) getEventScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		scores, err := e.scoreService.GetScoresForEvent(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

type ScoreSave struct {
	FloatId int                    `json:"floatId" binding:"required"`
	Scores  service.CategoryValues `json:"scores" binding:"required"`
}

type JudgeScoreResponse struct {
	FloatId int             `json:"floatId"`
	Scores  map[string]*int `json:"scores"`
	Total   int             `json:"total"`
}

type ScoreItemResponse struct {
	CategoryId int  `json:"category_id"`
	Value      *int `json:"value"`
}

type ScoreResponse struct {
	Id        int                 `json:"id"`
	JudgeId   int                 `json:"judge_id"`
	EntryId   int                 `json:"entry_id"`
	Total     int                 `json:"total"`
	UpdatedAt time.Time           `json:"updated_at"`
	Items     []ScoreItemResponse `json:"items"`
}

func toJudgeScoreResponse(score *service.JudgeScore) JudgeScoreResponse {
	return JudgeScoreResponse{
		FloatId: score.EntryId,
		Scores:  score.Values,
		Total:   score.Total,
	}
}

func toScoreItemResponse(item *repository.ScoreItem) ScoreItemResponse {
	return ScoreItemResponse{CategoryId: item.CategoryId, Value: item.Value}
}

func toScoreResponse(score *repository.Score) ScoreResponse {
	return ScoreResponse{
		Id:        score.Id,
		JudgeId:   score.JudgeId,
		EntryId:   score.EntryId,
		Total:     score.Total,
		UpdatedAt: score.UpdatedAt,
		Items:     utils.Map(score.Items, toScoreItemResponse),
	}
}
