package requests

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/utils/platformerrors"
)

func GetPaginationFromQuery(reqCtx *gin.Context) (*query.Pagination, error) {
	limitStr := reqCtx.DefaultQuery("limit", "20")
	offsetStr := reqCtx.Query("offset")
	order := reqCtx.DefaultQuery("order", "desc")
	afterStr := reqCtx.Query("after")

	var limit *int
	if limitStr != "" {
		limitInt, err := strconv.Atoi(limitStr)
		if err != nil || limitInt < 1 {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid limit number", nil, "8e0c4a2b-6d8f-4e0c-a2b4-d6f8a0c2e4b6")
		}
		limit = &limitInt
	}

	var offset *int
	var after *uint
	if offsetStr != "" {
		offsetInt, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid offset number", nil, "2a4c6e8f-0b2d-4a4c-8e0f-b2d4f6a8c0e2")
		}
		offset = &offsetInt
	} else if afterStr != "" {
		parsedID, err := strconv.ParseUint(afterStr, 10, 64)
		if err != nil {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid pagination cursor", err, "6e8a0c2d-4f6b-4e8a-a0c2-d4f6b8a0c2e4")
		}
		tempID := uint(parsedID)
		after = &tempID
	}

	if order != "asc" && order != "desc" {
		return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid order", nil, "0c2e4a6b-8d0f-4c2e-a4b6-f8a0c2e4b6d8")
	}

	return &query.Pagination{
		Limit:  limit,
		Offset: offset,
		Order:  order,
		After:  after,
	}, nil
}
