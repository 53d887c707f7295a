package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
)

type Router struct {
	users           contract.IUserRepository
	authHandler     *AuthHandler
	userHandler     *UserHandler
	eventHandler    *EventHandler
	bookmarkHandler *BookmarkHandler
	forumHandler    *ForumHandler
	reviewHandler   *ReviewHandler
	postHandler     *PostHandler
	chatHandler     *ChatHandler
	contactHandler  *ContactHandler
}

func NewRouter(
	users contract.IUserRepository,
	events contract.IEventRepository,
	bookmarks contract.IBookmarkRepository,
	forum contract.IForumRepository,
	reviews contract.IReviewRepository,
	posts contract.IPostRepository,
	chat contract.IChatRepository,
	inbox contract.IAdminMessageRepository,
) *Router {
	return &Router{
		users:           users,
		authHandler:     NewAuthHandler(users),
		userHandler:     NewUserHandler(users),
		eventHandler:    NewEventHandler(events, bookmarks),
		bookmarkHandler: NewBookmarkHandler(bookmarks),
		forumHandler:    NewForumHandler(forum),
		reviewHandler:   NewReviewHandler(reviews),
		postHandler:     NewPostHandler(posts),
		chatHandler:     NewChatHandler(chat),
		contactHandler:  NewContactHandler(inbox, users),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no active session required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/me", r.authHandler.Me)
	}

	events := v1.Group("/events")
	{
		events.GET("", r.eventHandler.ListEvents)
		events.GET("/categories", r.eventHandler.ListCategories)
	}

	forum := v1.Group("/forum")
	{
		forum.GET("/threads", r.forumHandler.ListThreads)
		forum.GET("/threads/:id", r.forumHandler.GetThread)
		forum.GET("/threads/:id/comments", r.forumHandler.ListComments)
	}

	v1.GET("/reviews", r.reviewHandler.ListReviews)
	v1.GET("/users/:id/posts", r.postHandler.ListUserPosts)
	v1.GET("/bookmarks", r.bookmarkHandler.ListSaved)
	v1.POST("/bookmarks/:id/toggle", r.bookmarkHandler.Toggle)
	v1.GET("/contact/admins", r.contactHandler.ListAdmins)
	v1.GET("/chat/messages", r.chatHandler.ListMessages)

	// Routes requiring an active session
	authed := v1.Group("/")
	authed.Use(RequireAuth(r.users))
	{
		authed.POST("/forum/threads", r.forumHandler.CreateThread)
		authed.POST("/forum/threads/:id/comments", r.forumHandler.AddComment)
		authed.GET("/reviews/me", r.reviewHandler.GetMyReview)
		authed.POST("/reviews", r.reviewHandler.AddReview)
		authed.POST("/posts", r.postHandler.AddPost)
		authed.POST("/chat/messages", r.chatHandler.Send)
		authed.POST("/contact/messages", r.contactHandler.Send)
		authed.PUT("/users/:id", r.userHandler.UpdateUser)
	}

	// Administrator surface: secondary admins and above
	admin := v1.Group("/admin")
	admin.Use(RequireRole(r.users, entity.RoleAdminSecundario, entity.RoleAdminPrimario))
	{
		admin.GET("/users", r.userHandler.ListUsers)
		admin.GET("/users/:id", r.userHandler.GetUser)
		admin.DELETE("/users/:id", r.userHandler.DeleteUser)
		admin.POST("/events", r.eventHandler.CreateEvent)
		admin.GET("/messages", r.contactHandler.ListMessages)
	}
}
