package api

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/badgeapp/internal/badge"
	"github.com/youruser/badgeapp/internal/config"
	"github.com/youruser/badgeapp/internal/util"
)

// badgeTitle is the fixed first line of every badge; the caller only
// controls the name in the second line.
const badgeTitle = "Heroku Agent Action"

// Handler holds the handlers' shared dependencies.
type Handler struct {
	composer *badge.Composer
	log      *slog.Logger
	authUser string
	authPass string
	debugDir string
}

// NewHandler creates the route handler set.
func NewHandler(composer *badge.Composer, log *slog.Logger, srv config.ServerConfig) *Handler {
	return &Handler{
		composer: composer,
		log:      log,
		authUser: srv.AuthUser,
		authPass: srv.AuthPass,
		debugDir: srv.DebugDir,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// process handles the agent request: {"name": "..."} in, an HTML fragment
// with the base64-embedded badge out.
func (h *Handler) process(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request, 'name' field is required"})
		return
	}
	h.log.Info("received query", "name", req.Name)

	encoded, err := h.composer.ComposeBase64(badgeTitle, "Deployed by "+req.Name)
	if err != nil {
		h.log.Error("badge generation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating badge"})
		return
	}

	fragment := `<img src="data:image/png;base64,` + encoded + `">`
	if h.debugDir != "" {
		h.writeDebugHTML(fragment)
	}
	c.JSON(http.StatusOK, gin.H{"message": fragment})
}

// badgeImage serves a raw badge PNG for previewing.
func (h *Handler) badgeImage(c *gin.Context) {
	title := c.DefaultQuery("title", badgeTitle)
	subtitle := c.Query("subtitle")

	png, err := h.composer.Compose(title, subtitle)
	if err != nil {
		h.log.Error("badge generation failed", "err", err)
		msg := "error generating badge"
		if errors.Is(err, badge.ErrAssetNotFound) {
			msg = "badge assets missing"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// qr serves a QR code PNG for the given share text.
func (h *Handler) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "badge:" + badgeTitle
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 2048 {
			size = v
		}
	}
	b, err := badge.QRCodePNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// writeDebugHTML drops the last rendered badge into debug.html, best-effort.
func (h *Handler) writeDebugHTML(fragment string) {
	if err := util.EnsureDir(h.debugDir); err != nil {
		h.log.Warn("debug dir unavailable", "dir", h.debugDir, "err", err)
		return
	}
	body := "<body style='background: black'>" + fragment + "</body>"
	path := filepath.Join(h.debugDir, "debug.html")
	if err := util.WriteFileAtomic(path, []byte(body), 0o644); err != nil {
		h.log.Warn("saving debug.html failed", "err", err)
		return
	}
	h.log.Info("saved debug.html", "path", path)
}
