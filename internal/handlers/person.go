package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectdesk/projectdesk/internal/services"
)

type PersonHandler struct {
	svc *services.PersonService
	log *zap.Logger
}

func NewPersonHandler(svc *services.PersonService, log *zap.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: log}
}

func (h *PersonHandler) List(ctx *gin.Context) {
	limit, offset, err := pagination(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	page, err := h.svc.List(limit, offset)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, page)
}

func (h *PersonHandler) Get(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid person ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	person, err := h.svc.GetByID(id)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, person)
}

func (h *PersonHandler) Create(ctx *gin.Context) {
	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	if err := requireString(body, "first_name", "First name is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireString(body, "last_name", "Last name is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireString(body, "email", "Email is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireString(body, "password", "Password is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	person, err := h.svc.Create(body)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusCreated, person)
}

func (h *PersonHandler) Update(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid person ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	person, err := h.svc.Update(id, body)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, person)
}

func (h *PersonHandler) Delete(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid person ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	if err := h.svc.Delete(id); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
