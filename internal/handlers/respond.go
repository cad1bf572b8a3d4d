package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectdesk/projectdesk/internal/apperror"
)

func respondData(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, gin.H{"success": true, "data": data})
}

// respondError serializes the status classification attached by the service
// layer. Unclassified errors are logged and hidden behind a generic 500.
func respondError(ctx *gin.Context, log *zap.Logger, err error) {
	var ae *apperror.Error
	if errors.As(err, &ae) {
		if ae.Status >= http.StatusInternalServerError && log != nil {
			log.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		}
		ctx.JSON(ae.Status, gin.H{"success": false, "error": ae.Message})
		return
	}

	if log != nil {
		log.Error("unclassified error", zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}
