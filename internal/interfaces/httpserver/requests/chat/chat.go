package chatrequests

// SendMessageRequest is the body for posting a user message to the assistant.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
