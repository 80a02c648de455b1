// Package main is the entry point for the Sociable API
package main

import (
	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/api/admin"
	"github.com/sociable/sociableapi/api/auth"
	"github.com/sociable/sociableapi/api/chat"
	"github.com/sociable/sociableapi/api/friend"
	"github.com/sociable/sociableapi/api/game"
	"github.com/sociable/sociableapi/api/group"
	"github.com/sociable/sociableapi/api/page"
	"github.com/sociable/sociableapi/api/post"
	"github.com/sociable/sociableapi/api/search"
	"github.com/sociable/sociableapi/api/setup"
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/config"
	"github.com/sociable/sociableapi/database"
	"github.com/sociable/sociableapi/shared/middleware"
	"github.com/sociable/sociableapi/shared/response"
)

// setupRoutes configures the routes for the API
func setupRoutes(e *echo.Echo, cfg *config.Config, provider *database.Provider, setupService *setup.Service, sessions auth.SessionStore) *admin.Service {

	// Create a group for all API routes
	api := e.Group("/api")

	// Everything except the setup endpoints is gated until configured
	api.Use(middleware.SetupGateMiddleware(setupService.IsConfigured))

	// Index route
	api.GET("/", func(c echo.Context) error {
		return response.SuccessResponse(c, cfg.APIName+" "+cfg.APIVersion)
	})

	// Setup routes - Unprotected, available pre-configuration
	setupHandler := setup.NewHandler(setupService)
	setupGroup := api.Group("/setup")
	setupGroup.GET("/status", setupHandler.GetStatus)
	setupGroup.POST("/test-db", setupHandler.TestConnection)
	setupGroup.POST("", setupHandler.CompleteSetup)

	// Auth routes - Unprotected
	userRepo := user.NewRepository(provider)
	authService := auth.NewService(userRepo, sessions)
	authHandler := auth.NewHandler(authService, userRepo)
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Create a group for protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(sessions))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)

	// Post routes (protected)
	postRepo := post.NewRepository(provider)
	postHandler := post.NewHandler(postRepo)
	postGroup := protected.Group("/posts")
	postGroup.GET("", postHandler.ListPosts)
	postGroup.POST("", postHandler.CreatePost)
	postGroup.POST("/:postId/like", postHandler.ToggleLike)
	postGroup.GET("/:postId/comments", postHandler.ListComments)
	postGroup.POST("/:postId/comments", postHandler.CreateComment)

	// Friend routes (protected)
	friendRepo := friend.NewRepository(provider)
	friendHandler := friend.NewHandler(friendRepo)
	friendGroup := protected.Group("/friends")
	friendGroup.GET("", friendHandler.ListFriends)
	friendGroup.GET("/requests", friendHandler.ListRequests)
	friendGroup.GET("/suggestions", friendHandler.ListSuggestions)
	friendGroup.POST("/request", friendHandler.SendRequest)
	friendGroup.PUT("/respond", friendHandler.Respond)

	// User routes (protected)
	userHandler := user.NewHandler(userRepo)
	userGroup := protected.Group("/users")
	userGroup.GET("/:userId", userHandler.GetUser)
	userGroup.GET("/:userId/posts", postHandler.ListUserPosts)
	userGroup.PUT("/profile", userHandler.UpdateProfile)

	// Chat routes (protected)
	chatRepo := chat.NewRepository(provider)
	chatHandler := chat.NewHandler(chatRepo)
	chatGroup := protected.Group("/chat")
	chatGroup.GET("/:userId", chatHandler.GetConversation)
	chatGroup.POST("/:userId", chatHandler.SendMessage)

	// Group routes (protected)
	groupRepo := group.NewRepository(provider)
	groupHandler := group.NewHandler(groupRepo)
	groupGroup := protected.Group("/groups")
	groupGroup.GET("", groupHandler.ListGroups)
	groupGroup.POST("", groupHandler.CreateGroup)
	groupGroup.POST("/:groupId/join", groupHandler.JoinGroup)
	groupGroup.POST("/:groupId/leave", groupHandler.LeaveGroup)

	// Page routes (protected)
	pageRepo := page.NewRepository(provider)
	pageHandler := page.NewHandler(pageRepo)
	pageGroup := protected.Group("/pages")
	pageGroup.GET("", pageHandler.ListPages)
	pageGroup.POST("", pageHandler.CreatePage)
	pageGroup.POST("/:pageId/follow", pageHandler.FollowPage)
	pageGroup.POST("/:pageId/unfollow", pageHandler.UnfollowPage)

	// Game routes (protected)
	gameRepo := game.NewRepository(provider)
	gameHandler := game.NewHandler(gameRepo)
	gameGroup := protected.Group("/games")
	gameGroup.GET("", gameHandler.ListGames)
	gameGroup.POST("", gameHandler.CreateGame)

	// Search route (protected)
	searchHandler := search.NewHandler(search.NewService(provider))
	protected.GET("/search", searchHandler.Search)

	// Admin routes (protected + admin flag)
	adminService := admin.NewService(provider)
	adminHandler := admin.NewHandler(adminService, userRepo, postRepo)
	adminGroup := protected.Group("/admin")
	adminGroup.Use(middleware.AdminMiddleware(userRepo))
	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.GET("/posts", adminHandler.ListPosts)
	adminGroup.DELETE("/users/:userId", adminHandler.DeleteUser)
	adminGroup.DELETE("/posts/:postId", adminHandler.DeletePost)
	adminGroup.GET("/stats", adminHandler.GetStats)
	adminGroup.GET("/stats/history", adminHandler.GetStatsHistory)

	return adminService
}
