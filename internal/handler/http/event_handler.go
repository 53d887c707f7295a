package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/handler/http/dto"
	"github.com/desparches/backend/internal/repository"
)

type EventHandler struct {
	events    contract.IEventRepository
	bookmarks contract.IBookmarkRepository
}

func NewEventHandler(events contract.IEventRepository, bookmarks contract.IBookmarkRepository) *EventHandler {
	return &EventHandler{events: events, bookmarks: bookmarks}
}

// ListEvents returns the catalog, optionally narrowed by the query
// parameters category, date (YYYY-MM-DD), saved (true) and q.
func (h *EventHandler) ListEvents(c *gin.Context) {
	filter := repository.EventFilter{
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	if raw := c.Query("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		filter.Day = &day
	}
	if c.Query("saved") == "true" {
		filter.SavedOnly = true
		filter.Saved = h.bookmarks.List(c.Request.Context())
	}

	events := h.events.ListEvents(c.Request.Context())
	SuccessHandler(c, http.StatusOK, repository.FilterEvents(events, filter))
}

// ListCategories returns the static category lookup table.
func (h *EventHandler) ListCategories(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, entity.DefaultCategories)
}

// CreateEvent appends a new event to the catalog.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "date must be an RFC 3339 instant")
		return
	}

	event, err := h.events.AddEvent(c.Request.Context(), entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		ImageURL:    req.ImageURL,
		Location:    entity.Location{Lat: req.Lat, Lng: req.Lng, Address: req.Address},
		Category:    req.Category,
		Organizer:   req.Organizer,
		Website:     req.Website,
	})
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create event")
		return
	}
	SuccessHandler(c, http.StatusCreated, event)
}
