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

type EventController struct {
	eventService *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	basePath := "/events"
	admin := []auth.Role{auth.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler()},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: admin},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all events
// @Tags event
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetAllEvents()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @Description Creates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventCreate EventCreate
		if err := c.BindJSON(&eventCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.CreateEvent(eventCreate.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toEventResponse(event))
	}
}

// @Description Gets an event by id
// @Tags event
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {object} EventResponse
// @Router /events/{eventId} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		event, err := e.eventService.GetEventById(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @Description Updates an event, absent fields stay unchanged
// @Tags event
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param event body EventUpdate true "Fields to change"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{eventId} [patch]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		var update EventUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.UpdateEvent(eventId, update.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @Description Deletes an event with its categories, entries, judges and scores
// @Tags event
// @Param eventId path int true "Event ID"
// @Success 204
// @Security BearerAuth
// @Router /events/{eventId} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		if err := e.eventService.DeleteEvent(eventId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type EventCreate struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Date         *time.Time `json:"date"`
	Active       bool       `json:"active"`
	OverallLabel string     `json:"overall_label"`
}

type EventUpdate struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	Active       *bool      `json:"active"`
	OverallLabel *string    `json:"overall_label"`
}

type EventResponse struct {
	Id           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Date         *time.Time `json:"date"`
	Active       bool       `json:"active"`
	OverallLabel string     `json:"overall_label"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (e *EventCreate) toModel() *repository.Event {
	return &repository.Event{
		Name:         e.Name,
		Description:  e.Description,
		Date:         e.Date,
		Active:       e.Active,
		OverallLabel: e.OverallLabel,
	}
}

func (e *EventUpdate) toModel() *service.EventUpdate {
	return &service.EventUpdate{
		Name:         e.Name,
		Description:  e.Description,
		Date:         e.Date,
		Active:       e.Active,
		OverallLabel: e.OverallLabel,
	}
}

func toEventResponse(event *repository.Event) EventResponse {
	return EventResponse{
		Id:           event.Id,
		Name:         event.Name,
		Description:  event.Description,
		Date:         event.Date,
		Active:       event.Active,
		OverallLabel: event.Label(),
		CreatedAt:    event.CreatedAt,
	}
}
