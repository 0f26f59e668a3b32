// controllers/chat_controller.go
package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{s}
}

// GET /complaints/:id/chat — the complaint's room, if assignment opened one
func (cc *ChatController) RoomForComplaint(ctx *gin.Context) {
	complaintID := paramID(ctx)

	ok, err := cc.service.CanAccessRoom(utils.CurrentUserID(ctx), utils.CurrentRole(ctx), complaintID)
	if err != nil || !ok {
		resp.Forbidden(ctx, "no access")
		return
	}

	room, err := cc.service.GetRoomByComplaint(complaintID)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	resp.OK(ctx, room)
}

// GET /chatrooms/:id/messages
func (cc *ChatController) ListMessages(ctx *gin.Context) {
	roomID := paramID(ctx)

	room, err := cc.service.GetRoomByID(roomID)
	if err != nil {
		resp.NotFound(ctx, "room not found")
		return
	}
	ok, err := cc.service.CanAccessRoom(utils.CurrentUserID(ctx), utils.CurrentRole(ctx), room.ComplaintID)
	if err != nil || !ok {
		resp.Forbidden(ctx, "no access")
		return
	}

	msgs, err := cc.service.GetMessages(roomID)
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, msgs)
}
