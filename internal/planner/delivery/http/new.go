package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"adhd-planner/internal/checklist"
	"adhd-planner/internal/planner"
	"adhd-planner/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "index"

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	// HTML view
	Page(c *gin.Context)
	GenerateForm(c *gin.Context)
	ToggleForm(c *gin.Context)

	// JSON API
	ListAppointments(c *gin.Context)
	GenerateChecklist(c *gin.Context)
	GetChecklist(c *gin.Context)
	ToggleChecklist(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         planner.UseCase
	checklists checklist.UseCase
	tmpl       *template.Template
	md         goldmark.Markdown
}

// New creates a new HTTP handler for the planner views.
func New(l log.Logger, uc planner.UseCase, checklists checklist.UseCase) Handler {
	return &handler{
		l:          l,
		uc:         uc,
		checklists: checklists,
		tmpl:       template.Must(template.ParseFS(templateFS, "templates/*.html")),
		md:         goldmark.New(),
	}
}
