package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
)

const identityKey = "api.identity"

// withIdentity stores the verified identity in the request context.
func withIdentity(c *gin.Context, ident model.Identity) {
	c.Set(identityKey, ident)
}

// identityFrom fetches the verified identity placed by the auth gate.
func identityFrom(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return model.Identity{}, false
	}
	ident, ok := v.(model.Identity)
	return ident, ok
}
