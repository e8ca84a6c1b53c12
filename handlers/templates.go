// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/danielhkuo/quickly-bmi/bmi"
	"github.com/danielhkuo/quickly-bmi/form"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	pageTemplateName = "page"
	templateExt      = ".tpl"
)

// pageRenderer renders a named template. Output is autoescaped.
type pageRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// pongoPages renders pongo2 templates from an fs.FS, caching each
// template after its first load
type pongoPages struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// newPageRenderer loads the embedded page templates
func newPageRenderer() (pageRenderer, error) {
	templatesFS, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}

	p := &pongoPages{
		set:       pongo2.NewSet("quickly-bmi", pongo2.NewFSLoader(templatesFS)),
		templates: make(map[string]*pongo2.Template),
	}
	// Fail at startup rather than on the first request
	if _, err := p.template(pageTemplateName + templateExt); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *pongoPages) Render(name string, data any, out ...io.Writer) (string, error) {
	path := name
	if !strings.HasSuffix(path, templateExt) {
		path += templateExt
	}

	tmpl, err := p.template(path)
	if err != nil {
		return "", err
	}

	ctx, ok := data.(map[string]any)
	if !ok && data != nil {
		return "", fmt.Errorf("template %q: unsupported data type %T", path, data)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(ctx), &buf); err != nil {
		return "", fmt.Errorf("failed to execute template %q: %w", path, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (p *pongoPages) template(path string) (*pongo2.Template, error) {
	p.mu.RLock()
	tmpl, ok := p.templates[path]
	p.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if tmpl, ok := p.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := p.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %q: %w", path, err)
	}
	p.templates[path] = tmpl
	return tmpl, nil
}

// newPageData flattens the form into the template context
func newPageData(s *form.State) map[string]any {
	options := make([]map[string]any, 0, len(bmi.UnitModes()))
	for _, mode := range bmi.UnitModes() {
		options = append(options, map[string]any{
			"mode":     mode.String(),
			"label":    mode.HeightUnit() + "/" + mode.WeightUnit(),
			"selected": mode == s.Units,
		})
	}

	d := map[string]any{
		"units":        s.Units.String(),
		"unit_options": options,
		"height":       s.Height,
		"weight":       s.Weight,
		"height_label": s.HeightLabel(),
		"weight_label": s.WeightLabel(),
		"has_result":   s.HasResult(),
		"result":       s.DisplayResult(),
		"alert":        s.Error,
	}

	// Canonical values reproduce the same result in metric mode
	if s.Result != nil {
		d["last_units"] = bmi.Metric.String()
		d["last_height"] = strconv.FormatFloat(s.Result.HeightMeters, 'g', -1, 64)
		d["last_weight"] = strconv.FormatFloat(s.Result.WeightKilograms, 'g', -1, 64)
	}

	return d
}
