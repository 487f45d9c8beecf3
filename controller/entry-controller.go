package controller

import (
	"time"

	"parade/app_error"
	"parade/auth"
	"parade/repository"
	"parade/service"
	"parade/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EntryController struct {
	entryService *service.EntryService
}

func NewEntryController(db *gorm.DB) *EntryController {
	return &EntryController{
		entryService: service.NewEntryService(db),
	}
}

func setupEntryController(db *gorm.DB) []RouteInfo {
	e := NewEntryController(db)
	basePath := "/events/:event_id/entries"
	staff := []auth.Role{auth.RoleCoordinator}
	routes := []RouteInfo{
		{Method: "POST", Path: "", HandlerFunc: e.signupHandler()},
		{Method: "GET", Path: "", HandlerFunc: e.getEntriesHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "GET", Path: "/approved", HandlerFunc: e.getApprovedEntriesHandler(), Authenticated: true, RequiredRoles: []auth.Role{auth.RoleCoordinator, auth.RoleJudge}},
		{Method: "PUT", Path: "/:entry_id/position", HandlerFunc: e.assignPositionHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "PATCH", Path: "/:entry_id/metadata", HandlerFunc: e.updateMetadataHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "DELETE", Path: "/:entry_id", HandlerFunc: e.deleteEntryHandler(), Authenticated: true, RequiredRoles: staff},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return append(routes,
		RouteInfo{Method: "PATCH", Path: "/entries/approve", HandlerFunc: e.approveEntryHandler(), Authenticated: true, RequiredRoles: staff},
	)
}

// @Description Signs an organization up for an event; the entry starts unapproved
// @Tags entry
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param entry body EntrySignup true "Entry to create"
// @Success 201 {object} EntryResponse
// @Router /events/{eventId}/entries [post]
func (e *EntryController) signupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		var signup EntrySignup
		if err := c.BindJSON(&signup); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entry, err := e.entryService.Signup(eventId, signup.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toEntryResponse(entry))
	}
}

// @Description Fetches the entries of an event in position order
// @Tags entry
// @Produce json
// @Param eventId path int true "Event ID"
// @Param approved query bool false "Only approved entries"
// @Success 200 {array} EntryResponse
// @Security BearerAuth
// @Router /events/{eventId}/entries [get]
func (e *EntryController) getEntriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		filter := repository.EntryFilter{ApprovedOnly: c.Query("approved") == "true"}
		entries, err := e.entryService.GetEntries(eventId, filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(entries, toEntryResponse))
	}
}

// @Description Fetches the approved entries of an event for judging
// @Tags entry
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} JudgingEntryResponse
// @Security BearerAuth
// @Router /events/{eventId}/entries/approved [get]
func (e *EntryController) getApprovedEntriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok || !canAccessEvent(c, eventId) {
			return
		}
		entries, err := e.entryService.GetEntries(eventId, repository.EntryFilter{ApprovedOnly: true})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(entries, toJudgingEntryResponse))
	}
}

// @Description Approves or rejects an entry; approving with a float number places it in the parade order
// @Tags entry
// @Accept json
// @Produce json
// @Param approval body EntryApproval true "Approval decision"
// @Success 200 {object} EntryResponse
// @Security BearerAuth
// @Router /entries/approve [patch]
func (e *EntryController) approveEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var approval EntryApproval
		if err := c.BindJSON(&approval); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if approval.Approved == nil {
			c.JSON(400, gin.H{"error": "approved is required"})
			return
		}
		entry, err := e.entryService.Approve(approval.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEntryResponse(entry))
	}
}

// @Description Assigns a float number, shifting later entries when it is taken
// @Tags entry
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param entryId path int true "Entry ID"
// @Param position body PositionAssignment true "Float number"
// @Success 200 {object} EntryResponse
// @Security BearerAuth
// @Router /events/{eventId}/entries/{entryId}/position [put]
func (e *EntryController) assignPositionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		entryId, ok := pathInt(c, "entry_id")
		if !ok {
			return
		}
		var assignment PositionAssignment
		if err := c.BindJSON(&assignment); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entry, err := e.entryService.AssignPosition(eventId, entryId, *assignment.Position)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEntryResponse(entry))
	}
}

// @Description Merges keys into the entry metadata; null values remove keys
// @Tags entry
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param entryId path int true "Entry ID"
// @Param metadata body object true "Keys to merge"
// @Success 200 {object} EntryResponse
// @Security BearerAuth
// @Router /events/{eventId}/entries/{entryId}/metadata [patch]
func (e *EntryController) updateMetadataHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		entryId, ok := pathInt(c, "entry_id")
		if !ok {
			return
		}
		var patch map[string]any
		if err := c.BindJSON(&patch); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entry, err := e.entryService.UpdateMetadata(eventId, entryId, patch)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEntryResponse(entry))
	}
}

// @Description Deletes an entry that has not been scored
// @Tags entry
// @Param eventId path int true "Event ID"
// @Param entryId path int true "Entry ID"
// @Success 204
// @Security BearerAuth
// @Router /events/{eventId}/entries/{entryId} [delete]
func (e *EntryController) deleteEntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		entryId, ok := pathInt(c, "entry_id")
		if !ok {
			return
		}
		if err := e.entryService.DeleteEntry(eventId, entryId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type EntrySignup struct {
	OrganizationName string         `json:"organization_name" binding:"required"`
	ContactName      string         `json:"contact_name"`
	ContactEmail     string         `json:"contact_email"`
	Description      string         `json:"description"`
	Metadata         datatypes.JSON `json:"metadata" swaggertype:"object"`
}

type EntryApproval struct {
	EntryId     int   `json:"entryId" binding:"required"`
	EventId     int   `json:"eventId"`
	Approved    *bool `json:"approved"`
	FloatNumber *int  `json:"floatNumber"`
}

type PositionAssignment struct {
	Position *int `json:"position" binding:"required"`
}

type EntryResponse struct {
	Id               int            `json:"id"`
	EventId          int            `json:"event_id"`
	OrganizationName string         `json:"organization_name"`
	ContactName      string         `json:"contact_name"`
	ContactEmail     string         `json:"contact_email"`
	Description      string         `json:"description"`
	Position         *int           `json:"position"`
	Approved         bool           `json:"approved"`
	Metadata         datatypes.JSON `json:"metadata" swaggertype:"object"`
	CreatedAt        time.Time      `json:"created_at"`
}

// JudgingEntryResponse leaves out contact details.
type JudgingEntryResponse struct {
	Id               int    `json:"id"`
	OrganizationName string `json:"organization_name"`
	Description      string `json:"description"`
	Position         *int   `json:"position"`
}

func (e *EntrySignup) toModel() *repository.Entry {
	return &repository.Entry{
		OrganizationName: e.OrganizationName,
		ContactName:      e.ContactName,
		ContactEmail:     e.ContactEmail,
		Description:      e.Description,
		Metadata:         e.Metadata,
	}
}

func (e *EntryApproval) toModel() *service.Approval {
	return &service.Approval{
		EventId:  e.EventId,
		EntryId:  e.EntryId,
		Approved: *e.Approved,
		Position: e.FloatNumber,
	}
}

func toEntryResponse(entry *repository.Entry) EntryResponse {
	return EntryResponse{
		Id:               entry.Id,
		EventId:          entry.EventId,
		OrganizationName: entry.OrganizationName,
		ContactName:      entry.ContactName,
		ContactEmail:     entry.ContactEmail,
		Description:      entry.Description,
		Position:         entry.Position,
		Approved:         entry.Approved,
		Metadata:         entry.Metadata,
		CreatedAt:        entry.CreatedAt,
	}
}

func toJudgingEntryResponse(entry *repository.Entry) JudgingEntryResponse {
	return JudgingEntryResponse{
		Id:               entry.Id,
		OrganizationName: entry.OrganizationName,
		Description:      entry.Description,
		Position:         entry.Position,
	}
}
