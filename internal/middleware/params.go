package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/collabhub/internal/errors"
)

const paramKeyPrefix = "param:"

// RequireIDParam parses a numeric path parameter. Anything else is answered with 404.
func RequireIDParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(name), 10, 64)
		if err != nil {
			apierrors.NotFound(c, "")
			c.Abort()
			return
		}

		c.Set(paramKeyPrefix+name, id)
		c.Next()
	}
}

// GetIDParam retrieves a path parameter parsed by RequireIDParam
func GetIDParam(c *gin.Context, name string) uint64 {
	return c.GetUint64(paramKeyPrefix + name)
}
