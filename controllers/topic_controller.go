package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /topics - chủ đề có ít nhất một media đã xuất bản
func (pc *PodcastController) Topics(c *gin.Context) {
	topics, err := pc.svc.Topics(c.Request.Context())
	if err != nil {
		pc.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}
