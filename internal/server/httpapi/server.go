// Package httpapi exposes the HTTP JSON API handlers.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/service"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth   service.AuthService
	items  service.ItemService
	tokens *token.Service
	log    *zap.Logger
}

// New constructs an HTTP server with injected services.
func New(auth service.AuthService, items service.ItemService, tokens *token.Service, log *zap.Logger) *Server {
	return &Server{auth: auth, items: items, tokens: tokens, log: log}
}

// Router builds the route tree. Register and login are public; everything
// under /items sits behind the auth gate.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.recovery(), s.requestLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	users.POST("/register", s.register)
	users.POST("/login", s.login)

	items := r.Group("/items", s.requireAuth)
	items.GET("", s.listItems)
	items.POST("", s.createItem)
	items.GET("/:id", s.getItem)
	items.PUT("/:id", s.updateItem)
	items.DELETE("/:id", s.deleteItem)

	return r
}
