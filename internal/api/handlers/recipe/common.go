package recipe

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// recipeName 取得路徑中的食譜名稱
func recipeName(c *gin.Context) string {
	return strings.TrimSpace(c.Param("name"))
}

// selectedName 取得 ?recipe= 指定的食譜
func selectedName(c *gin.Context) string {
	return strings.TrimSpace(c.Query("recipe"))
}
