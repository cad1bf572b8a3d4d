package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectdesk/projectdesk/internal/services"
	"github.com/projectdesk/projectdesk/internal/utils"
)

type TaskHandler struct {
	svc *services.TaskService
	log *zap.Logger
}

func NewTaskHandler(svc *services.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: log}
}

func (h *TaskHandler) List(ctx *gin.Context) {
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

func (h *TaskHandler) Get(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid task ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	task, err := h.svc.GetByID(id, ctx.Query("include"), ctx.Query("fields"))
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, task)
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	if err := requireString(body, "name", "Task name is required"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireInt(body, "project_id", "Project ID is required"); err != nil {
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

	task, err := h.svc.Create(body, userID)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusCreated, task)
}

func (h *TaskHandler) Update(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid task ID")
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

	task, err := h.svc.Update(id, body, userID)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusOK, task)
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid task ID")
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

func (h *TaskHandler) Assign(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid task ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	body, err := bindBody(ctx)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}
	if err := requireInt(body, "user_id", "User ID is required for assignment"); err != nil {
		respondError(ctx, h.log, err)
		return
	}
	userID := int(body["user_id"].(float64))

	assignment, err := h.svc.AssignUser(id, userID)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	respondData(ctx, http.StatusCreated, assignment)
}

func (h *TaskHandler) Unassign(ctx *gin.Context) {
	id, err := paramID(ctx, "id", "Invalid task ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	userID, err := paramID(ctx, "userId", "Invalid user ID")
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	if err := h.svc.UnassignUser(id, userID); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
