package dto

// CredentialsRequest carries register/login input. The password travels in
// the request but is never verified or stored.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

// UpdateUserRequest carries an edited roster entry.
type UpdateUserRequest struct {
	ID                 string   `json:"id" binding:"required"`
	Email              string   `json:"email" binding:"required"`
	DisplayName        string   `json:"displayName"`
	PhotoURL           string   `json:"photoURL"`
	Role               string   `json:"role" binding:"required"`
	FavoriteCategories []string `json:"favoriteCategories"`
}

// CreateEventRequest carries a new event draft.
type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Organizer   string  `json:"organizer"`
	Website     string  `json:"website"`
}

// CreateThreadRequest starts a forum thread.
type CreateThreadRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateCommentRequest replies to a forum thread.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateReviewRequest submits the caller's review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreatePostRequest adds a photo post to the caller's profile.
type CreatePostRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Caption  string `json:"caption"`
}

// SendChatMessageRequest appends to the global chat.
type SendChatMessageRequest struct {
	Text string `json:"text"`
}

// ContactRequest sends a message to the administrators.
type ContactRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}
