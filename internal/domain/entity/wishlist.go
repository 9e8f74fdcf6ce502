package entity

type Wishlist struct {
	UserID  string   `json:"userId" firestore:"-"`
	ItemIDs []string `json:"itemIds" firestore:"itemIds"`
}

// WishlistItems holds saved listings resolved to their documents.
type WishlistItems struct {
	Products   map[string][]*Listing `json:"products"`
	Properties []*Listing            `json:"properties"`
	Missing    []string              `json:"missing,omitempty"`
}
