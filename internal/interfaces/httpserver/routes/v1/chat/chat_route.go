package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocart-server/store-api/internal/interfaces/httpserver/handlers/chathandler"
	"autocart-server/store-api/internal/interfaces/httpserver/middlewares"
	chatrequests "autocart-server/store-api/internal/interfaces/httpserver/requests/chat"
	"autocart-server/store-api/internal/interfaces/httpserver/responses"
	"autocart-server/store-api/internal/utils/platformerrors"
)

type ChatRoute struct {
	handler *chathandler.ChatHandler
}

func NewChatRoute(handler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{handler: handler}
}

func (route *ChatRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/conversations/:conv_public_id/messages", route.sendMessage)
}

// sendMessage posts a user message to the assistant and returns the turn.
func (route *ChatRoute) sendMessage(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "5a7c9e1b-3d5f-4a7c-9e1b-3d5f7a9c1e3b")
		return
	}

	var req chatrequests.SendMessageRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "message is required", "9c1e3b5d-7f9a-4c1e-b5d7-f9a1c3e5b7d9")
		return
	}

	response, err := route.handler.SendMessage(ctx, user.ID, reqCtx.Param("conv_public_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to process message")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}
