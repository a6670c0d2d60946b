package handlers

import (
	"net/http"

	request "atelier_ops/internal/adapter/http/dto/request"
	response "atelier_ops/internal/adapter/http/dto/response"
	"atelier_ops/internal/adapter/http/middleware"
	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TicketHandler exposes the ticket status workflow.
type TicketHandler struct {
	usecase usecase.ITicketWorkflowUseCase
}

func NewTicketHandler(uc usecase.ITicketWorkflowUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

// CreateTicket godoc
// @Summary      Create a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID    header  string                        true  "Actor id"
// @Param        X-Actor-Role  header  string                        true  "Actor role"
// @Param        body          body    request.CreateTicketRequest   true  "Ticket"
// @Success      201  {object}  response.TicketResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	t, err := h.usecase.Create(c.Request.Context(), usecase.CreateTicketInput{
		CustomerID: payload.CustomerID,
		Title:      payload.Title,
		Kind:       entities.TicketKind(payload.Kind),
		Notes:      payload.Notes,
	}, actor)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTicket(t))
}

// GetTicket godoc
// @Summary      Get a ticket with its status history
// @Tags         tickets
// @Produce      json
// @Param        id   path  string  true  "Ticket id"
// @Success      200  {object}  response.TicketResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}

// AllowedTransitions godoc
// @Summary      List the statuses a ticket may move to next
// @Tags         tickets
// @Produce      json
// @Param        id   path  string  true  "Ticket id"
// @Success      200  {object}  response.AllowedTransitionsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /tickets/{id}/transitions [get]
func (h *TicketHandler) AllowedTransitions(c *gin.Context) {
	id := c.Param("id")
	allowed, err := h.usecase.AllowedTransitions(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAllowedTransitions(id, allowed))
}

// Transition godoc
// @Summary      Move a ticket to another status
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Ticket id"
// @Param        body  body  request.TransitionRequest  true  "Target status"
// @Success      200  {object}  response.TransitionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tickets/{id}/transitions [post]
func (h *TicketHandler) Transition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), payload.Target(), actor, payload.Reason, payload.Notes)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res.Ticket, res.Entry))
}

// Reopen godoc
// @Summary      Admin override: reopen a terminal ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Ticket id"
// @Param        body  body  request.ReopenRequest  true  "Target status and reason"
// @Success      200  {object}  response.TransitionResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tickets/{id}/reopen [post]
func (h *TicketHandler) Reopen(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ReopenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"), payload.Target(), actor, payload.Reason)
	if err != nil {
		respondError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res.Ticket, res.Entry))
}

func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		respondError(c, errUnauthenticated)
		return entities.Actor{}, false
	}
	return actor, true
}
