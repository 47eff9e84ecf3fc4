package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/services"
	"github.com/lumbunggroup/lumbung-backend/types"
)

// ContactSessionHandler exposes stateful contact form sessions.
type ContactSessionHandler struct {
	sessions *services.ContactSessionService
}

func NewContactSessionHandler(sessions *services.ContactSessionService) *ContactSessionHandler {
	return &ContactSessionHandler{sessions: sessions}
}

// CreateSession godoc
// @Summary      Open a contact form session
// @Tags         contact
// @Produce      json
// @Success      201  {object}  types.ContactSessionResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /contact/sessions [post]
func (h *ContactSessionHandler) CreateSession(c *gin.Context) {
	view, err := h.sessions.Create()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession godoc
// @Summary      Current state of a contact form session
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  types.ContactSessionResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /contact/sessions/{id} [get]
func (h *ContactSessionHandler) GetSession(c *gin.Context) {
	view, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// EditField godoc
// @Summary      Edit one field of a contact form session
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Session ID"
// @Param        key   path      string                  true  "Field key"
// @Param        body  body      types.ContactFieldEdit  true  "New value"
// @Success      200   {object}  types.ContactSessionResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Router       /contact/sessions/{id}/fields/{key} [put]
func (h *ContactSessionHandler) EditField(c *gin.Context) {
	var req types.ContactFieldEdit
	if !bindJSONOrError(c, &req) {
		return
	}

	view, err := h.sessions.Edit(c.Param("id"), c.Param("key"), *req.Value)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitSession godoc
// @Summary      Submit a contact form session
// @Description  Starts validation and delivery; poll the session for the outcome. An optional body replaces all values first.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true   "Session ID"
// @Param        body  body      types.ContactSubmission  false  "Field values keyed by field key"
// @Success      202   {object}  types.ContactSessionResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /contact/sessions/{id}/submit [post]
func (h *ContactSessionHandler) SubmitSession(c *gin.Context) {
	var values types.ContactSubmission
	if c.Request.ContentLength != 0 {
		if !bindJSONOrError(c, &values) {
			return
		}
	}

	view, err := h.sessions.Submit(c.Param("id"), values)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, view)
}

// AcknowledgeSession godoc
// @Summary      Dismiss the outcome notice of a contact form session
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  types.ContactSessionResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /contact/sessions/{id}/acknowledge [post]
func (h *ContactSessionHandler) AcknowledgeSession(c *gin.Context) {
	view, err := h.sessions.Acknowledge(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteSession godoc
// @Summary      Close a contact form session
// @Tags         contact
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  types.ErrorResponse
// @Router       /contact/sessions/{id} [delete]
func (h *ContactSessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
