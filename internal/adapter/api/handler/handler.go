package handler

import (
	"huhu/internal/infrastructure/websocket"
	"huhu/internal/usecase"
)

var (
	listingHandler   *ListingHandler
	postHandler      *PostHandler
	userHandler      *UserHandler
	wishlistHandler  *WishlistHandler
	chatHandler      *ChatHandler
	websocketHandler *WebSocketHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	postUseCase *usecase.PostUseCase,
	profileUseCase *usecase.ProfileUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	chatUseCase *usecase.ChatUseCase,
	wsManager *websocket.Manager,
	maxUploadBytes int64,
) {
	listingHandler = NewListingHandler(listingUseCase, postUseCase)
	postHandler = NewPostHandler(postUseCase, maxUploadBytes)
	userHandler = NewUserHandler(profileUseCase, listingUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	chatHandler = NewChatHandler(chatUseCase, wsManager)
	websocketHandler = NewWebSocketHandler(chatUseCase, wsManager)
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetPostHandler() *PostHandler {
	return postHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}
