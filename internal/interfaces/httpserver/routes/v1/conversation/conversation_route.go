package conversation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocart-server/store-api/internal/interfaces/httpserver/handlers/conversationhandler"
	"autocart-server/store-api/internal/interfaces/httpserver/middlewares"
	"autocart-server/store-api/internal/interfaces/httpserver/requests"
	conversationrequests "autocart-server/store-api/internal/interfaces/httpserver/requests/conversation"
	"autocart-server/store-api/internal/interfaces/httpserver/responses"
	"autocart-server/store-api/internal/utils/platformerrors"
)

type ConversationRoute struct {
	handler *conversationhandler.ConversationHandler
}

func NewConversationRoute(handler *conversationhandler.ConversationHandler) *ConversationRoute {
	return &ConversationRoute{handler: handler}
}

func (route *ConversationRoute) RegisterRouter(router gin.IRouter) {
	conversationRouter := router.Group("/conversations")
	conversationRouter.POST("", route.createConversation)
	conversationRouter.GET("", route.listConversations)
	conversationRouter.GET("/:conv_public_id", route.getConversation)
	conversationRouter.POST("/:conv_public_id", route.updateConversation)
	conversationRouter.DELETE("/:conv_public_id", route.deleteConversation)
	conversationRouter.GET("/:conv_public_id/messages", route.listMessages)
}

func (route *ConversationRoute) createConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "1b3d5f7a-9c1e-4b3d-5f7a-9c1e3b5d7f9a")
		return
	}

	var req conversationrequests.CreateConversationRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "3d5f7a9c-1e3b-4d5f-7a9c-1e3b5d7f9a1c")
		return
	}

	response, err := route.handler.CreateConversation(ctx, user.ID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to create conversation")
		return
	}

	reqCtx.JSON(http.StatusCreated, response)
}

func (route *ConversationRoute) listConversations(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "5f7a9c1e-3b5d-4f7a-9c1e-3b5d7f9a1c3e")
		return
	}

	pagination, err := requests.GetPaginationFromQuery(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid pagination parameters")
		return
	}

	response, err := route.handler.ListConversations(ctx, user.ID, pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list conversations")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *ConversationRoute) getConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "7a9c1e3b-5d7f-4a9c-1e3b-5d7f9a1c3e5b")
		return
	}

	response, err := route.handler.GetConversation(ctx, user.ID, reqCtx.Param("conv_public_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to get conversation")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *ConversationRoute) updateConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "9c1e3b5d-7f9a-4c1e-3b5d-7f9a1c3e5b7d")
		return
	}

	var req conversationrequests.UpdateConversationRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "1e3b5d7f-9a1c-4e3b-5d7f-9a1c3e5b7d9f")
		return
	}

	response, err := route.handler.UpdateConversation(ctx, user.ID, reqCtx.Param("conv_public_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to update conversation")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *ConversationRoute) deleteConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "3b5d7f9a-1c3e-4b5d-7f9a-1c3e5b7d9f1a")
		return
	}

	response, err := route.handler.DeleteConversation(ctx, user.ID, reqCtx.Param("conv_public_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to delete conversation")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *ConversationRoute) listMessages(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "5d7f9a1c-3e5b-4d7f-9a1c-3e5b7d9f1a3c")
		return
	}

	pagination, err := requests.GetPaginationFromQuery(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid pagination parameters")
		return
	}

	response, err := route.handler.ListMessages(ctx, user.ID, reqCtx.Param("conv_public_id"), pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list messages")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}
