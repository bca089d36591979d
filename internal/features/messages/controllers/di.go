package messages_controllers

import (
	messages_services "teamhub/internal/features/messages/services"
)

var messageController = MessageController{
	messageService: messages_services.GetMessageService(),
}

func GetMessageController() *MessageController {
	return &messageController
}
