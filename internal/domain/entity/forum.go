package entity

import "time"

// ForumThread is a discussion thread. CommentCount and LastActivityAt are
// derived from the thread's comments and maintained on every comment write.
type ForumThread struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Author         AuthorSnapshot `json:"author"`
	CreatedAt      time.Time      `json:"createdAt"`
	LastActivityAt time.Time      `json:"lastActivityAt"`
	CommentCount   int            `json:"commentCount"`
}

// ForumComment is a reply inside a thread. The author snapshot is taken at
// write time and survives roster edits and deletions.
type ForumComment struct {
	ID        string         `json:"id"`
	ThreadID  string         `json:"threadId"`
	Content   string         `json:"content"`
	Author    AuthorSnapshot `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
}
