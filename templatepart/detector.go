// Package templatepart finds recurring site chrome (header, footer, sidebar)
// across a batch of recognized pages and prepares theme-template exports for
// the parts it is confident about.
package templatepart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"w2b/component"
	"w2b/config"
	"w2b/convert"
)

// PartType names one of the detectable template parts.
type PartType string

const (
	PartHeader  PartType = "header"
	PartFooter  PartType = "footer"
	PartSidebar PartType = "sidebar"
)

var partTypes = []PartType{PartHeader, PartFooter, PartSidebar}

// TemplatePart is one detected part with its best candidate's evidence.
type TemplatePart struct {
	Type       PartType
	Component  *component.RecognizedComponent
	Signature  string
	Confidence int
	PageIDs    []string
	Recurring  bool
	Template   *ThemeTemplate
}

// ThemeTemplate is the export attached to a detected part. Conditions use
// the target schema's display-condition strings; "include/general" applies
// the template to the entire site.
type ThemeTemplate struct {
	Title      string
	Slug       string
	PartType   string
	Content    []*convert.WidgetNode
	Conditions []string
	Markup     string
}

// Parts holds the per-type detection results. A nil field means no candidate
// was found for that part type.
type Parts struct {
	Header  *TemplatePart
	Footer  *TemplatePart
	Sidebar *TemplatePart
}

// ConsistencyReport is the site-wide chrome consistency statistic.
type ConsistencyReport struct {
	Score      int
	HasHeader  bool
	HasFooter  bool
	HasSidebar bool
}

// Detector scans recognized pages for template parts. The scoring weights
// and thresholds come from configuration.
type Detector struct {
	cfg config.DetectorConfig
	log *zap.Logger
	ids *convert.IDGen
}

// NewDetector prepares a detector. A zero config falls back to the built-in
// policy defaults; a nil logger is replaced with a no-op one.
func NewDetector(cfg config.DetectorConfig, log *zap.Logger) *Detector {
	if cfg.PresenceThreshold == 0 && cfg.Header == (config.DetectorWeights{}) {
		cfg = config.Default().Detector
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Detector{cfg: cfg, log: log.Named("detector"), ids: convert.NewIDGen()}
}

// signal flags accumulated for one candidate across all pages.
type signalSet struct {
	tag       bool
	id        bool
	class     bool
	secondary bool
}

func mergeSignals(a, b signalSet) signalSet {
	return signalSet{
		tag:       a.tag || b.tag,
		id:        a.id || b.id,
		class:     a.class || b.class,
		secondary: a.secondary || b.secondary,
	}
}

type candidate struct {
	first     *component.RecognizedComponent
	signature string
	pages     map[string]bool
	signals   signalSet
}

// Detect scans every page and returns the best candidate per part type.
func (d *Detector) Detect(pages []*component.PageSnapshot) *Parts {
	found := map[PartType]map[string]*candidate{
		PartHeader:  {},
		PartFooter:  {},
		PartSidebar: {},
	}

	for _, page := range pages {
		navHosts := navParentsFromMarkup(page.Markup)
		for _, root := range page.Components {
			walk(root, func(c *component.RecognizedComponent) {
				for _, part := range partTypes {
					signals, match := d.match(part, c, navHosts)
					if !match {
						continue
					}
					sig := signature(c)
					cand := found[part][sig]
					if cand == nil {
						cand = &candidate{first: c, signature: sig, pages: make(map[string]bool)}
						found[part][sig] = cand
					}
					cand.pages[page.PageID] = true
					cand.signals = mergeSignals(cand.signals, signals)
				}
			})
		}
	}

	parts := &Parts{}
	for _, part := range partTypes {
		best := d.selectBest(part, found[part], len(pages))
		if best == nil {
			continue
		}
		d.log.Debug("Detected template part",
			zap.String("part", string(part)),
			zap.String("signature", best.Signature),
			zap.Int("confidence", best.Confidence),
			zap.Int("pages", len(best.PageIDs)))
		switch part {
		case PartHeader:
			parts.Header = best
		case PartFooter:
			parts.Footer = best
		case PartSidebar:
			parts.Sidebar = best
		}
	}
	return parts
}

// match evaluates one component against one part type's signal rubric.
func (d *Detector) match(part PartType, c *component.RecognizedComponent, navHosts map[string]bool) (signalSet, bool) {
	var s signalSet
	id := strings.ToLower(c.ID)

	switch part {
	case PartHeader:
		s.tag = c.Tag == "header"
		s.id = strings.Contains(id, "header") || strings.Contains(id, "masthead")
		s.class = c.HasClass("header") || c.HasClass("masthead") || c.HasClass("navbar")
		s.secondary = hasDescendantTag(c, "nav") || navHosts[identity(c.Tag, c.ID, firstClass(c.Classes))]
	case PartFooter:
		s.tag = c.Tag == "footer"
		s.id = strings.Contains(id, "footer")
		s.class = c.HasClass("footer")
		s.secondary = hasCopyrightText(c) || hasSocialLinks(c)
	case PartSidebar:
		s.tag = c.Tag == "aside"
		s.id = strings.Contains(id, "sidebar")
		s.class = c.HasClass("sidebar") || c.HasClass("widget-area")
		s.secondary = hasWidgetChildren(c)
	}

	// a secondary signal alone is not a candidate
	return s, s.tag || s.id || s.class
}

func (d *Detector) weights(part PartType) config.DetectorWeights {
	switch part {
	case PartFooter:
		return d.cfg.Footer
	case PartSidebar:
		return d.cfg.Sidebar
	default:
		return d.cfg.Header
	}
}

func (d *Detector) confidence(part PartType, s signalSet) int {
	w := d.weights(part)
	score := 0
	if s.tag {
		score += w.Tag
	}
	if s.id {
		score += w.ID
	}
	if s.class {
		score += w.Class
	}
	if s.secondary {
		score += w.Secondary
	}
	if score > 100 {
		score = 100
	}
	return score
}

// selectBest ranks candidates by page spread first, confidence second.
func (d *Detector) selectBest(part PartType, cands map[string]*candidate, totalPages int) *TemplatePart {
	var best *candidate
	bestScore := -1
	bestConfidence := 0

	sigs := make([]string, 0, len(cands))
	for sig := range cands {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)

	for _, sig := range sigs {
		cand := cands[sig]
		confidence := d.confidence(part, cand.signals)
		score := len(cand.pages)*10 + confidence
		if score > bestScore {
			best, bestScore, bestConfidence = cand, score, confidence
		}
	}
	if best == nil {
		return nil
	}

	pageIDs := make([]string, 0, len(best.pages))
	for id := range best.pages {
		pageIDs = append(pageIDs, id)
	}
	sort.Strings(pageIDs)

	recurring := totalPages > 0 &&
		float64(len(pageIDs))/float64(totalPages) >= d.cfg.RecurrenceRatio

	return &TemplatePart{
		Type:       part,
		Component:  best.first,
		Signature:  best.signature,
		Confidence: bestConfidence,
		PageIDs:    pageIDs,
		Recurring:  recurring,
		Template:   d.buildTemplate(part, best.first),
	}
}

// buildTemplate assembles the theme-template export for a detected part.
func (d *Detector) buildTemplate(part PartType, c *component.RecognizedComponent) *ThemeTemplate {
	title := cases.Title(language.English).String("site " + string(part))
	mapper := convert.NewMapper(d.ids, nil, d.log)

	var content []*convert.WidgetNode
	if len(c.Children) > 0 {
		for _, child := range c.Children {
			content = append(content, mapper.Map(child))
		}
	} else {
		content = append(content, mapper.Map(c))
	}

	tpl := &ThemeTemplate{
		Title:    title,
		Slug:     slug.Make(title),
		PartType: string(part),
		Content:  content,
		Markup:   markupSnapshot(c),
	}
	if part == PartHeader || part == PartFooter {
		tpl.Conditions = []string{"include/general"}
	}
	return tpl
}

// Consistency scores how uniformly the detected chrome recurs across the
// site. Each part contributes its page share scaled to a third of the total;
// parts below the presence threshold do not count at all.
func (d *Detector) Consistency(parts *Parts, totalPages int) ConsistencyReport {
	var report ConsistencyReport
	if parts == nil || totalPages <= 0 {
		return report
	}

	score := 0.0
	contribute := func(part *TemplatePart) bool {
		if part == nil || part.Confidence < d.cfg.PresenceThreshold {
			return false
		}
		score += float64(len(part.PageIDs)) / float64(totalPages) * 33.33
		return true
	}
	report.HasHeader = contribute(parts.Header)
	report.HasFooter = contribute(parts.Footer)
	report.HasSidebar = contribute(parts.Sidebar)
	report.Score = int(math.Round(score))
	return report
}

// signature is the structural identity candidates are grouped by.
func signature(c *component.RecognizedComponent) string {
	return fmt.Sprintf("%s|%d", identity(c.Tag, c.ID, firstClass(c.Classes)), len(c.Children))
}

// identity is the child-count-free part of a signature, shared with raw
// markup nodes whose child counts never line up with the component tree.
func identity(tag, id, class string) string {
	return fmt.Sprintf("%s|%s|%s", tag, strings.ToLower(id), strings.ToLower(class))
}

func firstClass(classes []string) string {
	if len(classes) == 0 {
		return ""
	}
	return classes[0]
}

func walk(c *component.RecognizedComponent, fn func(*component.RecognizedComponent)) {
	if c == nil {
		return
	}
	fn(c)
	for _, child := range c.Children {
		walk(child, fn)
	}
}

func hasDescendantTag(c *component.RecognizedComponent, tag string) bool {
	for _, child := range c.Children {
		if child.Tag == tag || hasDescendantTag(child, tag) {
			return true
		}
	}
	return false
}

func hasCopyrightText(c *component.RecognizedComponent) bool {
	found := false
	walk(c, func(n *component.RecognizedComponent) {
		text := strings.ToLower(n.Text)
		if strings.Contains(text, "©") || strings.Contains(text, "copyright") {
			found = true
		}
	})
	return found
}

func hasSocialLinks(c *component.RecognizedComponent) bool {
	found := false
	walk(c, func(n *component.RecognizedComponent) {
		if n.Type == component.TypeSocialIcons {
			found = true
			return
		}
		if href, ok := n.Prop("href"); ok {
			if _, known := convert.SocialNetworkFromURL(href); known {
				found = true
			}
		}
	})
	return found
}

func hasWidgetChildren(c *component.RecognizedComponent) bool {
	if c.Tag == "aside" {
		return true
	}
	for _, child := range c.Children {
		if child.HasClass("widget") {
			return true
		}
	}
	return false
}

// navParentsFromMarkup parses the raw page markup and returns the signatures
// of elements that contain a <nav> descendant. It backs up the component
// tree when the analyzer flattened navigation away.
func navParentsFromMarkup(markup string) map[string]bool {
	hosts := make(map[string]bool)
	if markup == "" {
		return hosts
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return hosts
	}

	var scan func(n *html.Node) bool
	scan = func(n *html.Node) bool {
		hasNav := false
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if scan(child) {
				hasNav = true
			}
		}
		if n.Type != html.ElementNode {
			return hasNav
		}
		if n.Data == "nav" {
			return true
		}
		if hasNav {
			hosts[nodeIdentity(n)] = true
		}
		return hasNav
	}
	scan(doc)
	return hosts
}

func nodeIdentity(n *html.Node) string {
	id, class := "", ""
	for _, attr := range n.Attr {
		switch attr.Key {
		case "id":
			id = attr.Val
		case "class":
			if fields := strings.Fields(attr.Val); len(fields) > 0 {
				class = fields[0]
			}
		}
	}
	return identity(n.Data, id, class)
}

// markupSnapshot renders a skeletal markup outline of the detected part for
// review output. Only structure and identity attributes are kept.
func markupSnapshot(c *component.RecognizedComponent) string {
	doc := etree.NewDocument()
	addElement(&doc.Element, c)
	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func addElement(parent *etree.Element, c *component.RecognizedComponent) {
	tag := c.Tag
	if tag == "" {
		tag = "div"
	}
	el := parent.CreateElement(tag)
	if c.ID != "" {
		el.CreateAttr("id", c.ID)
	}
	if len(c.Classes) > 0 {
		el.CreateAttr("class", strings.Join(c.Classes, " "))
	}
	for _, child := range c.Children {
		addElement(el, child)
	}
}
