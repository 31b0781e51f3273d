// Package pipeline wires the conversion stages behind the CLI commands:
// snapshot in, mapped and enriched widget tree out, assembled into the
// export envelope.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"w2b/component"
	"w2b/convert"
	"w2b/convert/elementor"
	"w2b/convert/enrich"
	"w2b/state"
	"w2b/templatepart"
	"w2b/tokens"
)

// RunConvert converts a single page snapshot to an export document.
func RunConvert(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input snapshot has been specified")
	}
	dst, err := outputPath(cmd.Args().Get(1), src, env.Overwrite)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	page, err := loadPage(src)
	if err != nil {
		return err
	}
	ref, err := loadReference(cmd.String("tokens"))
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	doc := buildDocument(page, ref, env, log)

	if env.Validate {
		report := elementor.ValidateExport(doc)
		for _, w := range report.Warnings {
			log.Warn("Export validation", zap.String("warning", w))
		}
		if !report.IsValid {
			var errs error
			for _, e := range report.Errors {
				errs = multierr.Append(errs, errors.New(e))
			}
			return fmt.Errorf("export validation failed: %w", errs)
		}
	}
	if env.Optimize {
		doc = elementor.OptimizeExport(doc)
	}
	return writeJSON(dst, doc)
}

// RunDetectParts scans a multi-page snapshot for recurring template parts.
func RunDetectParts(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("detect-parts")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input snapshot has been specified")
	}
	dst, err := outputPath(cmd.Args().Get(1), src, env.Overwrite)
	if err != nil {
		return err
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open site snapshot %q: %w", src, err)
	}
	defer f.Close()
	pages, err := component.LoadSiteSnapshot(f)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return errors.New("site snapshot has no pages")
	}

	detector := templatepart.NewDetector(env.Cfg.Detector, log)
	parts := detector.Detect(pages)
	report := detector.Consistency(parts, len(pages))
	log.Info("Detection completed",
		zap.Int("pages", len(pages)),
		zap.Int("consistency", report.Score),
		zap.Bool("header", report.HasHeader),
		zap.Bool("footer", report.HasFooter),
		zap.Bool("sidebar", report.HasSidebar))

	exporter := elementor.New(log)
	result := detectResult{
		Consistency: consistencyResult{
			Score:      report.Score,
			HasHeader:  report.HasHeader,
			HasFooter:  report.HasFooter,
			HasSidebar: report.HasSidebar,
		},
	}
	for _, part := range []*templatepart.TemplatePart{parts.Header, parts.Footer, parts.Sidebar} {
		if part != nil {
			result.Parts = append(result.Parts, partView(part, exporter))
		}
	}
	return writeJSON(dst, result)
}

type detectResult struct {
	Parts       []partResult      `json:"parts"`
	Consistency consistencyResult `json:"consistency"`
}

type consistencyResult struct {
	Score      int  `json:"score"`
	HasHeader  bool `json:"hasHeader"`
	HasFooter  bool `json:"hasFooter"`
	HasSidebar bool `json:"hasSidebar"`
}

type partResult struct {
	Type       string              `json:"type"`
	Signature  string              `json:"signature"`
	Confidence int                 `json:"confidence"`
	PageIDs    []string            `json:"pageIds"`
	Recurring  bool                `json:"recurring"`
	Slug       string              `json:"slug"`
	Conditions []string            `json:"conditions,omitempty"`
	Markup     string              `json:"markup,omitempty"`
	Document   *elementor.Document `json:"document"`
}

// partView renders a detected part's template content as its own document,
// which is how theme templates travel in the target schema.
func partView(part *templatepart.TemplatePart, exporter *elementor.Exporter) partResult {
	tpl := part.Template
	return partResult{
		Type:       string(part.Type),
		Signature:  part.Signature,
		Confidence: part.Confidence,
		PageIDs:    part.PageIDs,
		Recurring:  part.Recurring,
		Slug:       tpl.Slug,
		Conditions: tpl.Conditions,
		Markup:     tpl.Markup,
		Document:   exporter.Export(tpl.Content, tpl.Title, elementor.Options{}),
	}
}

// buildDocument maps and enriches every top-level component and assembles
// the envelope.
func buildDocument(page *component.PageSnapshot, ref *tokens.Reference, env *state.LocalEnv, log *zap.Logger) *elementor.Document {
	ids := convert.NewIDGen()
	mapper := convert.NewMapper(ids, ref, log)
	exporter := elementor.New(log)

	var css strings.Builder
	mapOne := func(c *component.RecognizedComponent) *convert.WidgetNode {
		node := mapper.Map(c)
		e := enrich.Collect(c, ref, log)
		e.Apply(node)
		if env.Cfg.Export.CustomCSS && e.CustomCSS != "" {
			css.WriteString(e.CustomCSS)
			css.WriteString("\n")
		}
		return node
	}

	title := env.Cfg.Export.Title
	if page.Title != "" {
		title = page.Title
	}
	opts := elementor.Options{
		Reference:    ref,
		ContentWidth: env.Cfg.Export.ContentWidth,
	}

	if env.Tree {
		sections := make([]*convert.WidgetNode, 0, len(page.Components))
		for _, c := range page.Components {
			section := convert.NewSection(ids)
			column := convert.NewColumn(ids)
			for _, child := range c.Children {
				column.Children = append(column.Children, mapOne(child))
			}
			if len(c.Children) == 0 {
				column.Children = append(column.Children, mapOne(c))
			}
			section.Children = append(section.Children, column)
			sections = append(sections, section)
		}
		opts.CustomCSS = css.String()
		return exporter.ExportTree(sections, title, opts)
	}

	widgets := make([]*convert.WidgetNode, 0, len(page.Components))
	for _, c := range page.Components {
		widgets = append(widgets, mapOne(c))
	}
	opts.CustomCSS = css.String()
	return exporter.Export(widgets, title, opts)
}

func loadPage(src string) (*component.PageSnapshot, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("unable to open page snapshot %q: %w", src, err)
	}
	defer f.Close()
	return component.LoadPageSnapshot(f)
}

// loadReference builds the design-token reference, empty when no token file
// was supplied.
func loadReference(path string) (*tokens.Reference, error) {
	if path == "" {
		return tokens.NewReference(tokens.ColorPalette{}, tokens.TypographySystem{}), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open design tokens %q: %w", path, err)
	}
	defer f.Close()
	palette, typography, err := tokens.Load(f)
	if err != nil {
		return nil, err
	}
	return tokens.NewReference(palette, typography), nil
}

// outputPath derives the destination file, next to the source by default.
func outputPath(dst, src string, overwrite bool) (string, error) {
	if dst == "" {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst = filepath.Join(filepath.Dir(src), base+".export.json")
	}
	if !overwrite {
		if _, err := os.Stat(dst); err == nil {
			return "", fmt.Errorf("output file %q already exists", dst)
		}
	}
	return dst, nil
}

func writeJSON(dst string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize export: %w", err)
	}
	if err := os.WriteFile(dst, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("unable to write %q: %w", dst, err)
	}
	return nil
}
