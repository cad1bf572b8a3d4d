package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/services"
)

func paramID(ctx *gin.Context, name, message string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 1 {
		return 0, apperror.Validation(message)
	}
	return id, nil
}

// queryInt rejects non-integer or negative values; an absent parameter
// yields zero, which the service layer turns into its default.
func queryInt(ctx *gin.Context, key, message string) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.Validation(message)
	}
	return n, nil
}

func pagination(ctx *gin.Context) (int, int, error) {
	limit, err := queryInt(ctx, "limit", "Invalid limit")
	if err != nil {
		return 0, 0, err
	}
	offset, err := queryInt(ctx, "offset", "Invalid offset")
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

// listOptions assembles the list inputs; every query parameter is handed to
// the filter builders, which ignore what they do not recognize.
func listOptions(ctx *gin.Context) (services.ListOptions, error) {
	limit, offset, err := pagination(ctx)
	if err != nil {
		return services.ListOptions{}, err
	}
	return services.ListOptions{
		Limit:   limit,
		Offset:  offset,
		Sort:    ctx.Query("sort"),
		Fields:  ctx.Query("fields"),
		Include: ctx.Query("include"),
		Filter:  ctx.Request.URL.Query(),
	}, nil
}

func bindBody(ctx *gin.Context) (map[string]any, error) {
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, apperror.Validation("Invalid request body")
	}
	return body, nil
}

func requireString(body map[string]any, key, message string) error {
	v, ok := body[key]
	if !ok {
		return apperror.Validation(message)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return apperror.Validation(message)
	}
	return nil
}

func requireInt(body map[string]any, key, message string) error {
	v, ok := body[key]
	if !ok || v == nil {
		return apperror.Validation(message)
	}
	n, ok := v.(float64)
	if !ok || n < 1 {
		return apperror.Validation(message)
	}
	return nil
}
