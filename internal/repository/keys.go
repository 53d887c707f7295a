// Package repository implements the typed collections of the application
// on top of the durable record store: the user roster and session, events,
// bookmarks, forum threads and comments, reviews, photo posts, the global
// chat log and the administrator inbox.
//
// Every repository is stateless between calls apart from the injected store
// and serializes its own read-modify-write sequences with a mutex, so one
// process never loses an update to itself. Two processes sharing a file,
// Redis or Mongo medium still race last-writer-wins.
package repository

// Names of the persisted collections, one serialized record each.
const (
	usersKey         = "users"
	currentUserKey   = "currentUser"
	eventsKey        = "events"
	savedEventIDsKey = "savedEventIds"
	forumThreadsKey  = "forumThreads"
	forumCommentsKey = "forumComments"
	reviewsKey       = "reviews"
	postsKey         = "posts"
	chatMessagesKey  = "chatMessages"
	adminMessagesKey = "adminMessages"
)
