package usecase

import (
	"sort"

	"huhu/internal/domain/entity"
)

const (
	defaultParticipantName = "User"
	defaultChatProductName = "Chat"
	defaultProductPrice    = "0"
)

// VendorCache maps a user id to their vendor profile.
type VendorCache map[string]*entity.Vendor

func NewVendorCache(vendors []*entity.Vendor) VendorCache {
	cache := make(VendorCache, len(vendors))
	for _, v := range vendors {
		if v != nil {
			cache[v.ID] = v
		}
	}
	return cache
}

// NormalizeChat converts either stored shape into a chat list entry.
func NormalizeChat(doc entity.ChatDocument, vendors VendorCache) (entity.ChatListEntry, bool) {
	switch {
	case doc.Shape == entity.ShapeLegacy && doc.Legacy != nil:
		return normalizeLegacyChat(doc.ID, doc.Legacy, vendors), true
	case doc.Shape == entity.ShapeCurrent && doc.Current != nil:
		return normalizeCurrentChat(doc.ID, doc.Current), true
	default:
		return entity.ChatListEntry{}, false
	}
}

func normalizeLegacyChat(id string, chat *entity.LegacyChat, vendors VendorCache) entity.ChatListEntry {
	entry := entity.ChatListEntry{
		ID:           id,
		ChatID:       id,
		ProductName:  orDefault(chat.ProductName, defaultChatProductName),
		ProductID:    chat.ProductID,
		ProductImage: chat.ProductImage,
		ProductPrice: orDefault(chat.ProductPrice, defaultProductPrice),
		Participants: make(map[string]entity.Participant, len(chat.Participants)),
		UnreadCount:  make(map[string]int, len(chat.Participants)),
	}

	last := chat.LastMessage
	entry.TimeStamp = chat.CreatedAt
	if last != nil {
		if last.CreatedAt != nil {
			entry.TimeStamp = last.CreatedAt
		}
		entry.Message = entity.ChatMessagePreview{SenderID: last.SenderID, Text: last.Text}
	}

	for _, userID := range chat.Participants {
		entry.Participants[userID] = entity.Participant{
			ID:    userID,
			Name:  legacyParticipantName(chat, userID, vendors),
			Image: legacyParticipantImage(chat, userID, vendors),
		}

		unread := 0
		if last != nil && !last.Read && last.SenderID != "" && last.SenderID != userID && containsID(chat.Participants, last.SenderID) {
			unread = 1
		}
		entry.UnreadCount[userID] = unread
	}

	return entry
}

// legacyParticipantName resolves a display name through, in order: the vendor
// profile, the embedded participant data, participantNames, the last message
// and the last embedded message. A vendor profile ends the search even when
// it has no name.
func legacyParticipantName(chat *entity.LegacyChat, userID string, vendors VendorCache) string {
	if vendor, ok := vendors[userID]; ok {
		return orDefault(vendor.String("displayName", "name"), defaultParticipantName)
	}
	if p, ok := chat.ParticipantsData[userID]; ok && p.Name != "" {
		return p.Name
	}
	if name := chat.ParticipantNames[userID]; name != "" {
		return name
	}
	if last := chat.LastMessage; last != nil {
		if userID == last.SenderID && last.SenderName != "" {
			return last.SenderName
		}
		if userID == last.ReceiverID && last.ReceiverName != "" {
			return last.ReceiverName
		}
	}
	if p, ok := chat.LastEmbedded[userID]; ok && p.Name != "" {
		return p.Name
	}
	return defaultParticipantName
}

func legacyParticipantImage(chat *entity.LegacyChat, userID string, vendors VendorCache) string {
	if vendor, ok := vendors[userID]; ok {
		return vendor.String("photoURL", "profileImage", "image")
	}
	if p, ok := chat.ParticipantsData[userID]; ok && p.Image != "" {
		return p.Image
	}
	if image := chat.ParticipantImages[userID]; image != "" {
		return image
	}
	if last := chat.LastMessage; last != nil {
		if userID == last.SenderID && last.SenderAvatar != "" {
			return last.SenderAvatar
		}
		if userID == last.ReceiverID && last.ReceiverAvatar != "" {
			return last.ReceiverAvatar
		}
	}
	if p, ok := chat.LastEmbedded[userID]; ok && p.Image != "" {
		return p.Image
	}
	return ""
}

func normalizeCurrentChat(id string, chat *entity.CurrentChat) entity.ChatListEntry {
	entry := entity.ChatListEntry{
		ID:           id,
		ChatID:       orDefault(chat.ChatID, id),
		TimeStamp:    chat.TimeStamp,
		ProductName:  orDefault(chat.ProductName, defaultChatProductName),
		ProductID:    chat.ProductID,
		ProductImage: chat.ProductImage,
		ProductPrice: orDefault(chat.ProductPrice, defaultProductPrice),
		Participants: make(map[string]entity.Participant, len(chat.Participants)),
		UnreadCount:  make(map[string]int, len(chat.UnreadCount)),
	}

	if entry.TimeStamp == nil {
		entry.TimeStamp = chat.LastMessageAt
	}

	if chat.Message != nil {
		entry.Message = *chat.Message
	} else {
		entry.Message = entity.ChatMessagePreview{SenderID: chat.LastMessageSender, Text: chat.LastMessageText}
	}

	for userID, p := range chat.Participants {
		entry.Participants[userID] = entity.Participant{
			ID:    userID,
			Name:  firstNonEmpty(p.Name, p.DisplayName, defaultParticipantName),
			Image: firstNonEmpty(p.SenderAvatar, p.ReceiverAvatar, p.PhotoURL, p.Image),
		}
	}

	for userID, count := range chat.UnreadCount {
		entry.UnreadCount[userID] = count
	}

	return entry
}

// MergeChatLists builds the conversation list for userID from both sources.
// Entries from the chat list win over legacy documents with the same id, and
// the result is ordered newest first with undated entries last.
func MergeChatLists(userID string, chatList, legacy []entity.ChatDocument, vendors VendorCache) []entity.ChatListEntry {
	merged := make([]entity.ChatListEntry, 0, len(chatList)+len(legacy))
	seen := make(map[string]bool, len(chatList)+len(legacy))

	for _, doc := range chatList {
		entry, ok := NormalizeChat(doc, vendors)
		if !ok || seen[entry.ID] || !entry.HasParticipant(userID) {
			continue
		}
		seen[entry.ID] = true
		merged = append(merged, entry)
	}

	for _, doc := range legacy {
		if doc.Shape != entity.ShapeLegacy || doc.Legacy == nil || !containsID(doc.Legacy.Participants, userID) {
			continue
		}
		if seen[doc.ID] {
			continue
		}
		entry, ok := NormalizeChat(doc, vendors)
		if !ok {
			continue
		}
		seen[entry.ID] = true
		merged = append(merged, entry)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SortTime().After(merged[j].SortTime())
	})

	return merged
}

// OtherParticipant returns the first participant of entry that is not me.
func OtherParticipant(entry entity.ChatListEntry, me string) (entity.Participant, bool) {
	ids := make([]string, 0, len(entry.Participants))
	for id := range entry.Participants {
		if id != me {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return entity.Participant{}, false
	}
	sort.Strings(ids)
	return entry.Participants[ids[0]], true
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
