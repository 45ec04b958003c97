package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/personal-diary/diary-api/internal/api/metrics"
	"github.com/personal-diary/diary-api/internal/core/domain"
	"github.com/personal-diary/diary-api/internal/core/ports"
)

// EntryHandler handles diary entry CRUD. Every route sits behind the Auth
// middleware; the owner id always comes from the verified token, never from
// the payload.
type EntryHandler struct {
	entryService ports.EntryService
}

func NewEntryHandler(entryService ports.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// Create handles POST /api/diary/entries.
//
// @Summary      Create a diary entry
// @Tags         diary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEntryRequest  true  "Entry"
// @Success      201   {object}  entryResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/diary/entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.entryService.Create(c.Request().Context(), ports.CreateEntryInput{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// List handles GET /api/diary/entries.
//
// @Summary      List own diary entries
// @Tags         diary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entryListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/diary/entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.entryService.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	resp := entryListResponse{Entries: make([]entryResponse, 0, len(entries)), Count: len(entries)}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/diary/entries/:id.
//
// @Summary      Get one diary entry
// @Tags         diary
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  entryResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/diary/entries/{id} [get]
func (h *EntryHandler) Get(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entry, err := h.entryService.Get(c.Request().Context(), c.Param("id"), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/diary/entries/:id.
//
// @Summary      Delete a diary entry
// @Tags         diary
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/diary/entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.entryService.Delete(c.Request().Context(), c.Param("id"), ownerID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
