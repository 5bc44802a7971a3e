package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/services/qa"
	"github.com/theadtya/youtube-assistant/internal/templates"
)

// PageHandler renders the single form page
type PageHandler struct {
	service  Asker
	ui       common.UIConfig
	template *template.Template
	logger   arbor.ILogger
}

type pageChunk struct {
	Timestamp string
	Text      string
}

type pageData struct {
	Title            string
	MaxURLChars      int
	MaxQuestionChars int
	VideoURL         string
	Question         string
	NeedsKey         bool
	Error            string
	Answer           string
	Chunks           []pageChunk
}

// NewPageHandler parses the embedded index page
func NewPageHandler(service Asker, ui common.UIConfig, logger arbor.ILogger) (*PageHandler, error) {
	page, err := templates.Page("index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load index page: %w", err)
	}

	tmpl, err := template.New("index.html").Parse(string(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse index page: %w", err)
	}

	return &PageHandler{
		service:  service,
		ui:       ui,
		template: tmpl,
		logger:   logger,
	}, nil
}

// IndexHandler renders the form on GET and answers the submitted question on POST
func (h *PageHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := h.newPageData()

	switch r.Method {
	case http.MethodGet:
		data.NeedsKey = h.service.Credential("") == ""
	case http.MethodPost:
		h.handleSubmit(r, &data)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.render(w, data)
}

func (h *PageHandler) handleSubmit(r *http.Request, data *pageData) {
	if err := r.ParseForm(); err != nil {
		data.Error = "Invalid form submission"
		return
	}

	req := qa.AskRequest{
		VideoURL: r.PostFormValue("video_url"),
		Question: r.PostFormValue("question"),
		APIKey:   r.PostFormValue("api_key"),
	}
	data.VideoURL = req.VideoURL
	data.Question = req.Question

	// An empty form is just a page load
	if req.VideoURL == "" && req.Question == "" {
		data.NeedsKey = h.service.Credential(req.APIKey) == ""
		return
	}

	answer, err := h.service.Ask(r.Context(), req)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Form question failed")
		if errors.Is(err, qa.ErrCredentialRequired) {
			data.NeedsKey = true
			return
		}
		data.Error = qa.UserMessage(err)
		return
	}

	data.Answer = common.FillText(answer.Text, h.ui.WrapWidth)
	for _, c := range answer.Chunks {
		data.Chunks = append(data.Chunks, pageChunk{
			Timestamp: common.FormatTimestamp(c.StartTime),
			Text:      c.Text,
		})
	}
}

func (h *PageHandler) newPageData() pageData {
	return pageData{
		Title:            h.ui.Title,
		MaxURLChars:      h.ui.MaxURLChars,
		MaxQuestionChars: h.ui.MaxQuestionChars,
	}
}

func (h *PageHandler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		h.logger.Error().
			Err(err).
			Str("template", "index.html").
			Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
