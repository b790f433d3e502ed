package handlers

import "github.com/gin-gonic/gin"

func getStringFromCtx(c *gin.Context, key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// getOperator — username/email из контекста, проставленных middleware.
func getOperator(c *gin.Context) (username, email string) {
	if v, ok := getStringFromCtx(c, "username"); ok {
		username = v
	}
	if v, ok := getStringFromCtx(c, "email"); ok {
		email = v
	}
	return
}
