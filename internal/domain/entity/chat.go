package entity

import "time"

// ChatMessage is an entry in the shared global chat log.
type ChatMessage struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Author    AuthorSnapshot `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
}
