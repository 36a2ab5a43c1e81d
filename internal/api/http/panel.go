package http

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ResearchAssistant/internal/panel"
)

//go:embed templates/panel.html
var templateFS embed.FS

var panelPage = template.Must(template.ParseFS(templateFS, "templates/panel.html"))

// SaveNotesRequest is the body of POST /panel/notes.
type SaveNotesRequest struct {
	Notes string `json:"notes"`
}

// pageData is the panel page model. ResultHTML is markup the controller
// already rendered.
type pageData struct {
	Input      string
	HasResult  bool
	ResultHTML template.HTML
}

// PanelHandlers serves the side panel backed by one in-memory document.
type PanelHandlers struct {
	controller *panel.Controller
	doc        *panel.Document
	logger     *logging.Logger
}

// NewPanelHandlers creates the panel handler set. doc must be the View the
// controller was built with.
func NewPanelHandlers(controller *panel.Controller, doc *panel.Document, logger *logging.Logger) *PanelHandlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PanelHandlers{controller: controller, doc: doc, logger: logger.Named("panel-http")}
}

// Register mounts the panel routes.
func (h *PanelHandlers) Register(r gin.IRoutes) {
	r.GET("/", h.Page)
	r.GET("/panel/state", h.State)
	r.POST("/panel/summarize", h.Summarize)
	r.POST("/panel/suggest", h.Suggest)
	r.POST("/panel/notes", h.SaveNotes)
}

// Page renders a freshly loaded panel.
func (h *PanelHandlers) Page(c *gin.Context) {
	h.doc.Reset()
	h.controller.Init(c.Request.Context())

	snap := h.doc.Snapshot()
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := renderPage(c.Writer, snap); err != nil {
		h.logger.Error("Failed to render panel", zap.Error(err))
	}
}

// State returns the document snapshot.
func (h *PanelHandlers) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.doc.Snapshot())
}

// Summarize runs the summarize action and returns the new snapshot.
func (h *PanelHandlers) Summarize(c *gin.Context) {
	h.controller.Summarize(c.Request.Context())
	c.JSON(http.StatusOK, h.doc.Snapshot())
}

// Suggest runs the suggest action and returns the new snapshot.
func (h *PanelHandlers) Suggest(c *gin.Context) {
	h.controller.Suggest(c.Request.Context())
	c.JSON(http.StatusOK, h.doc.Snapshot())
}

// SaveNotes stores the posted text as the note.
func (h *PanelHandlers) SaveNotes(c *gin.Context) {
	var req SaveNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.doc.SetInputValue(req.Notes)
	if err := h.controller.Save(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.doc.TakeAlert()})
}

func renderPage(w io.Writer, snap panel.Snapshot) error {
	return panelPage.Execute(w, pageData{
		Input:      snap.Input,
		HasResult:  snap.HasResult,
		ResultHTML: template.HTML(snap.ResultHTML),
	})
}
