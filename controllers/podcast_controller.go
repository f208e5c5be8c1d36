package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/podcast-site/repository"
	"github.com/vnkhanh/podcast-site/services"
)

type PodcastController struct {
	svc     *services.PodcastService
	siteURL string
	log     *zap.Logger
}

func NewPodcastController(svc *services.PodcastService, siteURL string, log *zap.Logger) *PodcastController {
	return &PodcastController{svc: svc, siteURL: siteURL, log: log}
}

// ?page= không hợp lệ thì coi như trang 1
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ?feedburner_bypass: mọi giá trị khác rỗng đều bật, trừ các giá trị
// strconv.ParseBool hiểu là false ("0", "false", "F", ...)
func bypassParam(c *gin.Context) bool {
	v := strings.TrimSpace(c.Query("feedburner_bypass"))
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}

func (pc *PodcastController) abortWithError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast không tồn tại"})
		return
	}
	pc.log.Error("podcast request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy dữ liệu podcast"})
}

// GET /podcasts
func (pc *PodcastController) Index(c *gin.Context) {
	res, err := pc.svc.Index(c.Request.Context(), pageParam(c))
	if err != nil {
		pc.abortWithError(c, err)
		return
	}
	if res.RedirectSlug != "" {
		c.Redirect(http.StatusFound, "/podcasts/"+res.RedirectSlug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"podcasts":         res.Podcasts,
		"episodes":         res.Episodes.Items,
		"podcast_episodes": res.PodcastEpisodes,
		"topics":           res.Topics,
		"pagination":       res.Episodes,
	})
}

// GET /podcasts/:slug
func (pc *PodcastController) View(c *gin.Context) {
	res, err := pc.svc.View(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		pc.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"podcast":      res.Podcast,
		"episodes":     res.Episodes.Items,
		"podcasts":     res.Podcasts,
		"topics":       res.Topics,
		"result_count": res.ResultCount,
		"pagination":   res.Episodes,
	})
}

// GET /podcasts/:slug/feed.xml
func (pc *PodcastController) Feed(c *gin.Context) {
	bypass := bypassParam(c)
	limit, _ := strconv.Atoi(c.Query("limit"))

	res, err := pc.svc.Feed(c.Request.Context(), c.Param("slug"), services.FeedRequest{
		UserAgent: c.GetHeader("User-Agent"),
		Accept:    c.GetHeader("Accept"),
		Options: services.FeedOptions{
			FeedburnerBypass: bypass,
			Limit:            limit,
		},
	})
	if err != nil {
		pc.abortWithError(c, err)
		return
	}
	if res.RedirectURL != "" {
		c.Redirect(http.StatusFound, res.RedirectURL)
		return
	}

	body, err := services.RenderRSS(res.Podcast, res.Episodes, pc.siteURL)
	if err != nil {
		pc.abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, res.ContentType, body)
}
