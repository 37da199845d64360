package conversationrequests

// CreateConversationRequest represents the request to create a conversation
type CreateConversationRequest struct {
	Title   *string `json:"title,omitempty"`
	Welcome bool    `json:"welcome,omitempty"`
}

// UpdateConversationRequest represents the request to update a conversation
type UpdateConversationRequest struct {
	Title *string `json:"title,omitempty"`
}
