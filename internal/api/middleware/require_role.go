package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/intervueapp/intervue/internal/models"
	"github.com/intervueapp/intervue/internal/utils"
)

func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	allow := map[models.Role]struct{}{}
	for _, a := range allowed {
		allow[a] = struct{}{}
	}

	return func(c *gin.Context) {
		v, ok := c.Get("role")
		raw, _ := v.(string)
		role := models.Role(strings.ToLower(strings.TrimSpace(raw)))

		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    utils.CodeForbidden,
				"message": "forbidden",
			})
			return
		}

		if _, ok := allow[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    utils.CodeForbidden,
				"message": "forbidden",
			})
			return
		}

		c.Next()
	}
}

// RequireInterviewer gates interviewer affordances. Admin passes every
// interviewer gate.
func RequireInterviewer() gin.HandlerFunc {
	return RequireRole(models.RoleInterviewer, models.RoleAdmin)
}

func RequireAdmin() gin.HandlerFunc { return RequireRole(models.RoleAdmin) }
