package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectdesk/projectdesk/internal/services"
	"github.com/projectdesk/projectdesk/internal/utils"
)

type ProjectHandler struct {
	svc *services.ProjectService
	log *zap.Logger
}

func NewProjectHandler(svc *services.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: log}
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	opts, err := listOptions(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	page, err := h.svc.List(opts)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, page)
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid project ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	project, err := h.svc.GetByID(id, ctx.Query("include"), ctx.Query("fields"))
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, project)
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	if err := requireString(body, "name", "Project name is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireString(body, "clickup_space_id", "ClickUp Space ID is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireString(body, "clickup_id", "ClickUp ID is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireInt(body, "status_id", "Status ID is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	project, err := h.svc.Create(body, userID)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid project ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	project, err := h.svc.Update(id, body, userID)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid project ID")
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

func (h *ProjectHandler) ListTasks(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid project ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	limit, offset, err := pagination(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	page, err := h.svc.ListTasks(id, limit, offset)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, page)
}

func (h *ProjectHandler) ListJobs(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid project ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	limit, offset, err := pagination(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	page, err := h.svc.ListJobs(id, limit, offset)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, page)
}

func (h *ProjectHandler) ListPeople(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid project ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	limit, offset, err := pagination(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	page, err := h.svc.ListPeople(id, limit, offset)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, page)
}
