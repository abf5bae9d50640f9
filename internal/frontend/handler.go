package frontend

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/saju"
	"github.com/ZanzyTHEbar/hongyeon/internal/security"
	"github.com/ZanzyTHEbar/hongyeon/internal/types"
	"github.com/gin-gonic/gin"
)

// Handler serves the form and result pages
type Handler struct {
	templates *template.Template
	metrics   *monitoring.Metrics
	logger    *monitoring.Logger
}

// NewHandler loads the embedded templates
func NewHandler(metrics *monitoring.Metrics, logger *monitoring.Logger) (*Handler, error) {
	tmpl, err := LoadTemplates(TemplatesFS())
	if err != nil {
		return nil, err
	}
	return &Handler{templates: tmpl, metrics: metrics, logger: logger}, nil
}

// Register mounts the page routes on r. submit runs ahead of the form
// handler on POST.
func (h *Handler) Register(r gin.IRoutes, submit ...gin.HandlerFunc) {
	r.GET("/", h.ShowForm)

	chain := make([]gin.HandlerFunc, 0, len(submit)+1)
	chain = append(chain, submit...)
	r.POST("/", append(chain, h.Submit)...)
}

// ShowForm renders an empty form
func (h *Handler) ShowForm(c *gin.Context) {
	page := emptyForm()
	page.Nonce = security.GetNonce(c)
	h.renderPage(c, formTemplate, http.StatusOK, page)
}

// Submit scores the posted form. A missing year re-renders the form with
// the prompt and the values the user entered.
func (h *Handler) Submit(c *gin.Context) {
	personA := readPerson(c, "a")
	personB := readPerson(c, "b")

	req := types.ScoreRequest{
		PersonA: personA.input(),
		PersonB: personB.input(),
	}

	if missing := req.MissingYears(); len(missing) > 0 {
		h.metrics.IncrementValidationFailure()
		slog.Debug("Form submitted without birth year", "missing", missing)

		h.renderPage(c, formTemplate, http.StatusBadRequest, FormPage{
			Nonce:   security.GetNonce(c),
			Prompt:  saju.MissingYearPrompt,
			PersonA: personA,
			PersonB: personB,
		})
		return
	}

	birthA, birthB := req.PersonA.Birth(), req.PersonB.Birth()
	result, err := saju.Score(birthA, birthB)
	if err != nil {
		errors.Abort(c, err)
		return
	}

	h.metrics.RecordScore(string(result.Band))
	h.logger.ScoreLogger("form", result.Score, string(result.Band),
		len(result.Breakdown.PersonA.Elements), len(result.Breakdown.PersonB.Elements), false)

	resp := types.NewScoreResponse(req, result)
	h.renderPage(c, resultTemplate, http.StatusOK, ResultPage{
		Nonce:   security.GetNonce(c),
		Score:   resp.Score,
		Band:    string(resp.Band),
		Message: resp.Message,
		Names:   resp.Names,
	})
}

func (h *Handler) renderPage(c *gin.Context, name string, status int, data interface{}) {
	if err := render(c, h.templates, name, status, data); err != nil {
		errors.Abort(c, errors.NewInternalError("failed to render page", err))
	}
}

func readPerson(c *gin.Context, prefix string) PersonForm {
	return PersonForm{
		Prefix: prefix,
		Name:   security.SanitizeName(c.PostForm(prefix + "_name")),
		Year:   c.PostForm(prefix + "_year"),
		Month:  c.PostForm(prefix + "_month"),
		Day:    c.PostForm(prefix + "_day"),
		Hour:   c.PostForm(prefix + "_hour"),
		Minute: c.PostForm(prefix + "_minute"),
		NoTime: c.PostForm(prefix+"_no_time") != "",
	}
}

func (p PersonForm) input() types.PersonInput {
	return types.PersonInput{
		Name:   p.Name,
		Year:   lenient(p.Year),
		Month:  lenient(p.Month),
		Day:    lenient(p.Day),
		Hour:   lenient(p.Hour),
		Minute: lenient(p.Minute),
		NoTime: p.NoTime,
	}
}

func lenient(s string) types.LenientInt {
	v, ok := types.ParseLenientInt(s)
	return types.LenientInt{Value: v, Valid: ok}
}
