package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/errs"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
)

type itemRequest struct {
	Name string `json:"name"`
}

// itemID parses the :id path parameter. A malformed id reports false; the
// handler answers 404 so probing with garbage ids looks like absence.
func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// caller fetches the identity the auth gate attached. Item routes are only
// registered behind the gate, so a missing identity is a server bug.
func (s *Server) caller(c *gin.Context) (model.Identity, bool) {
	ident, ok := identityFrom(c)
	if !ok {
		s.log.Error("identity missing on guarded route", zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return model.Identity{}, false
	}
	return ident, true
}

func (s *Server) listItems(c *gin.Context) {
	ident, ok := s.caller(c)
	if !ok {
		return
	}

	items, err := s.items.List(c.Request.Context(), ident.UserID)
	if err != nil {
		s.log.Error("list items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getItem(c *gin.Context) {
	ident, ok := s.caller(c)
	if !ok {
		return
	}
	id, ok := itemID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	it, err := s.items.Get(c.Request.Context(), ident.UserID, id)
	if err != nil {
		s.itemError(c, "get item", err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Server) createItem(c *gin.Context) {
	ident, ok := s.caller(c)
	if !ok {
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	it, err := s.items.Create(c.Request.Context(), ident.UserID, req.Name)
	if err != nil {
		s.itemError(c, "create item", err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (s *Server) updateItem(c *gin.Context) {
	ident, ok := s.caller(c)
	if !ok {
		return
	}
	id, ok := itemID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	it, err := s.items.Update(c.Request.Context(), ident.UserID, id, req.Name)
	if err != nil {
		s.itemError(c, "update item", err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Server) deleteItem(c *gin.Context) {
	ident, ok := s.caller(c)
	if !ok {
		return
	}
	id, ok := itemID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	if err := s.items.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		s.itemError(c, "delete item", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// itemError maps service sentinels to HTTP statuses. Anything unexpected is
// logged with detail and answered as an opaque 500.
func (s *Server) itemError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "field \"name\" is required"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	default:
		s.log.Error(op, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
