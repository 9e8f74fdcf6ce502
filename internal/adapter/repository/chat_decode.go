package repository

import (
	"huhu/internal/domain/entity"
	"huhu/pkg/utils"
)

// DecodeChatDocument classifies a raw chat document by the form of its
// participants field. Documents with neither form are reported as not ok.
func DecodeChatDocument(id string, data map[string]interface{}) (entity.ChatDocument, bool) {
	switch participants := data["participants"].(type) {
	case []interface{}:
		return entity.ChatDocument{
			ID:     id,
			Shape:  entity.ShapeLegacy,
			Legacy: decodeLegacyChat(participants, data),
		}, true
	case map[string]interface{}:
		return entity.ChatDocument{
			ID:      id,
			Shape:   entity.ShapeCurrent,
			Current: decodeCurrentChat(participants, data),
		}, true
	default:
		return entity.ChatDocument{}, false
	}
}

func decodeLegacyChat(participants []interface{}, data map[string]interface{}) *entity.LegacyChat {
	chat := &entity.LegacyChat{
		ParticipantNames:  stringMap(data["participantNames"]),
		ParticipantImages: stringMap(data["participantImages"]),
		ParticipantsData:  participantInfoMap(data["participantsData"]),
		CreatedAt:         utils.TimePtr(data["createdAt"]),
		ProductName:       utils.String(data["productName"]),
		ProductID:         utils.String(data["productId"]),
		ProductImage:      utils.String(data["productImage"]),
		ProductPrice:      utils.String(data["productPrice"]),
	}

	for _, p := range participants {
		if id := utils.String(p); id != "" {
			chat.Participants = append(chat.Participants, id)
		}
	}

	if last := utils.Map(data["lastMessage"]); last != nil {
		text := utils.String(last["message"])
		if text == "" {
			text = utils.String(last["text"])
		}
		read, _ := last["read"].(bool)
		chat.LastMessage = &entity.LegacyLastMessage{
			SenderID:       utils.String(last["senderId"]),
			ReceiverID:     utils.String(last["receiverId"]),
			SenderName:     utils.String(last["senderName"]),
			ReceiverName:   utils.String(last["receiverName"]),
			SenderAvatar:   utils.String(last["senderAvatar"]),
			ReceiverAvatar: utils.String(last["receiverAvatar"]),
			Text:           text,
			Read:           read,
			CreatedAt:      utils.TimePtr(last["createdAt"]),
		}
	}

	if messages, ok := data["messages"].([]interface{}); ok && len(messages) > 0 {
		if last := utils.Map(messages[len(messages)-1]); last != nil {
			chat.LastEmbedded = participantInfoMap(last["participants"])
		}
	}

	return chat
}

func decodeCurrentChat(participants map[string]interface{}, data map[string]interface{}) *entity.CurrentChat {
	chat := &entity.CurrentChat{
		ChatID:       utils.String(data["chatId"]),
		TimeStamp:    utils.TimePtr(data["timeStamp"]),
		ProductName:  utils.String(data["productName"]),
		ProductID:    utils.String(data["productId"]),
		ProductImage: utils.String(data["productImage"]),
		ProductPrice: utils.String(data["productPrice"]),
		Participants: make(map[string]entity.CurrentParticipant, len(participants)),
		UnreadCount:  map[string]int{},
	}

	for id, raw := range participants {
		p := utils.Map(raw)
		chat.Participants[id] = entity.CurrentParticipant{
			Name:           utils.String(p["name"]),
			DisplayName:    utils.String(p["displayName"]),
			Image:          utils.String(p["image"]),
			SenderAvatar:   utils.String(p["senderAvatar"]),
			ReceiverAvatar: utils.String(p["receiverAvatar"]),
			PhotoURL:       utils.String(p["photoURL"]),
		}
	}

	if message := utils.Map(data["message"]); message != nil {
		chat.Message = &entity.ChatMessagePreview{
			SenderID: utils.String(message["senderId"]),
			Text:     utils.String(message["text"]),
		}
	}

	if last := utils.Map(data["lastMessage"]); last != nil {
		chat.LastMessageAt = utils.TimePtr(last["createdAt"])
		chat.LastMessageSender = utils.String(last["senderId"])
		chat.LastMessageText = utils.String(last["message"])
		if chat.LastMessageText == "" {
			chat.LastMessageText = utils.String(last["text"])
		}
	}

	for id, count := range utils.Map(data["unreadCount"]) {
		chat.UnreadCount[id] = utils.Int(count)
	}

	return chat
}

func stringMap(v interface{}) map[string]string {
	raw := utils.Map(v)
	if raw == nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, val := range raw {
		if s := utils.String(val); s != "" {
			out[k] = s
		}
	}
	return out
}

func participantInfoMap(v interface{}) map[string]entity.ParticipantInfo {
	raw := utils.Map(v)
	if raw == nil {
		return nil
	}
	out := make(map[string]entity.ParticipantInfo, len(raw))
	for id, val := range raw {
		p := utils.Map(val)
		if p == nil {
			continue
		}
		out[id] = entity.ParticipantInfo{
			Name:  utils.String(p["name"]),
			Image: utils.String(p["image"]),
		}
	}
	return out
}
