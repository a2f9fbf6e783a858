package handler

import (
	"net/http"
	"travellens/web"

	"github.com/gin-gonic/gin"
)

func ServeIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}
