package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// Renderer converts markdown templates with YAML frontmatter into HTML
// wrapped in a layout. The template body is executed with the send data,
// converted by goldmark, and injected into the layout as Content; the
// layout also receives the raw send data, so pre-rendered HTML fields
// (the newsletter body, collateral) can be placed without markdown
// processing.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*template.Template
	templateDir   string
	layoutDir     string

	mu sync.RWMutex
}

type cachedTemplate struct {
	metadata map[string]any
	tmpl     *texttemplate.Template
}

// RendererConfig configures template lookup directories.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer over the given filesystem.
func NewRenderer(filesystem fs.FS, opts RendererConfig) *Renderer {
	if opts.TemplateDir == "" {
		opts.TemplateDir = "."
	}
	if opts.LayoutDir == "" {
		opts.LayoutDir = "layouts"
	}
	return &Renderer{
		fs:            filesystem,
		templateDir:   opts.TemplateDir,
		layoutDir:     opts.LayoutDir,
		md:            goldmark.New(),
		templateCache: map[string]*cachedTemplate{},
		layoutCache:   map[string]*template.Template{},
	}
}

// RenderResult contains the rendered HTML, the processed markdown as a
// plain-text starting point, and the template's frontmatter metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Render executes the named template with data, converts it to HTML, and
// wraps it in the named layout.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(templateName)
	if err != nil {
		return nil, err
	}

	var processed bytes.Buffer
	if err := cached.tmpl.Execute(&processed, data); err != nil {
		return nil, fmt.Errorf("%w: execute template: %v", ErrRenderFailed, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(processed.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var final bytes.Buffer
	layoutData := map[string]any{
		"Content":  template.HTML(content.String()),
		"Metadata": cached.metadata,
		"Data":     data,
	}
	if err := layoutTmpl.Execute(&final, layoutData); err != nil {
		return nil, fmt.Errorf("%w: execute layout: %v", ErrRenderFailed, err)
	}

	return &RenderResult{
		HTML:     final.String(),
		Text:     processed.String(),
		Metadata: cached.metadata,
	}, nil
}

func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templateCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templateCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, filepath.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	tmpl, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse template body: %v", ErrRenderFailed, err)
	}

	cached = &cachedTemplate{metadata: parsed.Metadata, tmpl: tmpl}
	r.templateCache[name] = cached
	return cached, nil
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layoutCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, filepath.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	layoutTmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout: %v", ErrRenderFailed, err)
	}

	r.layoutCache[name] = layoutTmpl
	return layoutTmpl, nil
}
