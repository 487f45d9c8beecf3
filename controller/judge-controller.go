package controller

import (
	"time"

	"parade/app_error"
	"parade/auth"
	"parade/repository"
	"parade/service"
	"parade/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JudgeController struct {
	judgeService *service.JudgeService
}

func NewJudgeController(db *gorm.DB) *JudgeController {
	return &JudgeController{
		judgeService: service.NewJudgeService(db),
	}
}

func setupJudgeController(db *gorm.DB) []RouteInfo {
	e := NewJudgeController(db)
	basePath := "/events/:event_id/judges"
	staff := []auth.Role{auth.RoleCoordinator}
	judge := []auth.Role{auth.RoleJudge}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getJudgesHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "POST", Path: "", HandlerFunc: e.createJudgeHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "DELETE", Path: "/:judge_id", HandlerFunc: e.deleteJudgeHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "POST", Path: "/:judge_id/unlock", HandlerFunc: e.unlockJudgeHandler(), Authenticated: true, RequiredRoles: staff},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return append(routes,
		RouteInfo{Method: "POST", Path: "/judges/me/submit", HandlerFunc: e.submitHandler(), Authenticated: true, RequiredRoles: judge},
		RouteInfo{Method: "GET", Path: "/judges/me/status", HandlerFunc: e.statusHandler(), Authenticated: true, RequiredRoles: judge},
	)
}

// judgeIdFrom answers 403 for tokens that do not belong to a judge, such as admin tokens.
func judgeIdFrom(c *gin.Context) (int, bool) {
	claims := claimsFrom(c)
	if claims == nil || claims.JudgeId == 0 {
		c.JSON(403, gin.H{"error": "only judges can use this endpoint"})
		return 0, false
	}
	return claims.JudgeId, true
}

// @Description Fetches the judges of an event with their access codes
// @Tags judge
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} JudgeResponse
// @Security BearerAuth
// @Router /events/{eventId}/judges [get]
func (e *JudgeController) getJudgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		judges, err := e.judgeService.GetJudgesForEvent(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(judges, toJudgeResponse))
	}
}

// @Description Registers a judge and issues an access code
// @Tags judge
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param judge body JudgeCreate true "Judge to create"
// @Success 201 {object} JudgeResponse
// @Security BearerAuth
// @Router /events/{eventId}/judges [post]
func (e *JudgeController) createJudgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		var judgeCreate JudgeCreate
		if err := c.BindJSON(&judgeCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		judge, err := e.judgeService.CreateJudge(eventId, judgeCreate.Name)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toJudgeResponse(judge))
	}
}

// @Description Deletes a judge that has not scored anything
// @Tags judge
// @Param eventId path int true "Event ID"
// @Param judgeId path int true "Judge ID"
// @Success 204
// @Security BearerAuth
// @Router /events/{eventId}/judges/{judgeId} [delete]
func (e *JudgeController) deleteJudgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		judgeId, ok := pathInt(c, "judge_id")
		if !ok {
			return
		}
		if err := e.judgeService.DeleteJudge(eventId, judgeId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// @Description Reopens a submitted judge for score changes
// @Tags judge
// @Produce json
// @Param eventId path int true "Event ID"
// @Param judgeId path int true "Judge ID"
// @Success 200 {object} JudgeResponse
// @Security BearerAuth
// @Router /events/{eventId}/judges/{judgeId}/unlock [post]
func (e *JudgeController) unlockJudgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		judgeId, ok := pathInt(c, "judge_id")
		if !ok {
			return
		}
		judge, err := e.judgeService.Unlock(eventId, judgeId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toJudgeResponse(judge))
	}
}

// @Description Submits the current judge's scores; no further changes are accepted afterwards
// @Tags judge
// @Produce json
// @Success 200 {object} JudgeResponse
// @Security BearerAuth
// @Router /judges/me/submit [post]
func (e *JudgeController) submitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, ok := judgeIdFrom(c)
		if !ok {
			return
		}
		judge, err := e.judgeService.Submit(judgeId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toJudgeResponse(judge))
	}
}

// @Description Shows the current judge's progress per approved entry
// @Tags judge
// @Produce json
// @Success 200 {object} JudgeStatusResponse
// @Security BearerAuth
// @Router /judges/me/status [get]
func (e *JudgeController) statusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, ok := judgeIdFrom(c)
		if !ok {
			return
		}
		status, err := e.judgeService.Status(judgeId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toJudgeStatusResponse(status))
	}
}

type JudgeCreate struct {
	Name string `json:"name" binding:"required"`
}

type JudgeResponse struct {
	Id          int        `json:"id"`
	EventId     int        `json:"event_id"`
	Name        string     `json:"name"`
	AccessCode  string     `json:"access_code,omitempty"`
	Submitted   bool       `json:"submitted"`
	SubmittedAt *time.Time `json:"submitted_at"`
}

type EntryProgressResponse struct {
	EntryId          int    `json:"entry_id"`
	OrganizationName string `json:"organization_name"`
	Position         *int   `json:"position"`
	Scored           int    `json:"scored"`
	Total            int    `json:"total"`
	MissingRequired  string `json:"missing_required,omitempty"`
}

type JudgeStatusResponse struct {
	Judge    JudgeResponse           `json:"judge"`
	Complete bool                    `json:"complete"`
	Entries  []EntryProgressResponse `json:"entries"`
}

func toJudgeResponse(judge *repository.Judge) JudgeResponse {
	return JudgeResponse{
		Id:          judge.Id,
		EventId:     judge.EventId,
		Name:        judge.Name,
		AccessCode:  judge.AccessCode,
		Submitted:   judge.Submitted,
		SubmittedAt: judge.SubmittedAt,
	}
}

func toEntryProgressResponse(progress *service.EntryProgress) EntryProgressResponse {
	return EntryProgressResponse{
		EntryId:          progress.EntryId,
		OrganizationName: progress.OrganizationName,
		Position:         progress.Position,
		Scored:           progress.Scored,
		Total:            progress.Total,
		MissingRequired:  progress.MissingRequired,
	}
}

func toJudgeStatusResponse(status *service.JudgeStatus) JudgeStatusResponse {
	judge := toJudgeResponse(status.Judge)
	judge.AccessCode = ""
	return JudgeStatusResponse{
		Judge:    judge,
		Complete: status.Complete(),
		Entries:  utils.Map(status.Entries, toEntryProgressResponse),
	}
}
