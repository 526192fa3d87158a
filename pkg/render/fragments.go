package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/component"
)

func (r *Renderer) renderHeading(h component.Heading) string {
	level := strconv.Itoa(h.Level())

	var b strings.Builder
	b.WriteString("<h")
	b.WriteString(level)
	writeClassAttr(&b, h.Styling().Resolve(r.classes[component.KindHeading]))
	b.WriteString(">")
	b.WriteString(html.EscapeString(h.Text()))
	b.WriteString("</h")
	b.WriteString(level)
	b.WriteString(">")
	return b.String()
}

func (r *Renderer) renderText(t component.Text) string {
	var b strings.Builder
	b.WriteString("<p")
	writeClassAttr(&b, t.Styling().Resolve(r.classes[component.KindText]))
	b.WriteString(">")
	b.WriteString(html.EscapeString(t.Text()))
	b.WriteString("</p>")
	return b.String()
}

func (r *Renderer) renderButton(btn component.Button) string {
	var b strings.Builder
	b.WriteString("<button")
	writeClassAttr(&b, btn.Styling().Resolve(r.classes[component.KindButton]))
	b.WriteString(">")
	b.WriteString(html.EscapeString(btn.Text()))
	b.WriteString("</button>")
	return b.String()
}

func (r *Renderer) renderNavBar(nav component.NavBar) string {
	var b strings.Builder
	b.WriteString("<nav")
	writeClassAttr(&b, nav.Styling().Resolve(r.classes[component.KindNavBar]))
	b.WriteString(">\n")
	b.WriteString("    <div class=\"flex items-center\">\n")
	b.WriteString("        <a class=\"text-2xl font-semibold mr-6 text-slate-800\" href=\"/\">")
	b.WriteString(html.EscapeString(nav.Title()))
	b.WriteString("</a>\n")
	b.WriteString("        <ul class=\"flex\">")
	for _, item := range nav.Items() {
		b.WriteString("<li class=\"mr-6\"><a class=\"text-slate-800 hover:text-slate-500\" href=\"")
		b.WriteString(html.EscapeString(item.Href))
		b.WriteString("\">")
		b.WriteString(html.EscapeString(item.Text))
		b.WriteString("</a></li>")
	}
	b.WriteString("</ul>\n")
	b.WriteString("    </div>\n")
	b.WriteString("</nav>")
	return b.String()
}

func (r *Renderer) renderDropdown(d component.Dropdown) string {
	var b strings.Builder
	b.WriteString("<div class=\"dropdown-component\">\n")
	if label := d.Label(); label != "" {
		b.WriteString("    <label class=\"block text-lg font-semibold text-slate-800 mb-2\">")
		b.WriteString(html.EscapeString(label))
		b.WriteString("</label>\n")
	}
	b.WriteString("    <select name=\"")
	b.WriteString(html.EscapeString(d.Name()))
	b.WriteString("\"")
	writeClassAttr(&b, d.Styling().Resolve(r.classes[component.KindDropdown]))
	b.WriteString(">")
	for _, option := range d.Options() {
		b.WriteString("<option value=\"")
		b.WriteString(html.EscapeString(option.Value))
		b.WriteString("\">")
		b.WriteString(html.EscapeString(option.Label))
		b.WriteString("</option>")
	}
	b.WriteString("</select>\n")
	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) renderSlider(s component.Slider) string {
	name := html.EscapeString(s.Name())
	sliderID := "slider_" + name
	displayID := "value_display_" + name
	mirror := "document.getElementById('value_display_" + s.Name() + "').innerText = this.value"

	var b strings.Builder
	b.WriteString("<div class=\"slider-component\">\n")
	if label := s.Label(); label != "" {
		b.WriteString("    <label class=\"block text-lg font-semibold text-slate-700 mb-2\">")
		b.WriteString(html.EscapeString(label))
		b.WriteString("</label>\n")
	}
	b.WriteString("    <input type=\"range\" id=\"")
	b.WriteString(sliderID)
	b.WriteString("\" name=\"")
	b.WriteString(name)
	b.WriteString("\" min=\"")
	b.WriteString(formatNumber(s.MinValue()))
	b.WriteString("\" max=\"")
	b.WriteString(formatNumber(s.MaxValue()))
	b.WriteString("\" step=\"")
	b.WriteString(formatNumber(s.Step()))
	b.WriteString("\" value=\"")
	b.WriteString(formatNumber(s.Value()))
	b.WriteString("\"")
	writeClassAttr(&b, s.Styling().Resolve(r.classes[component.KindSlider]))
	b.WriteString(" oninput=\"")
	b.WriteString(html.EscapeString(mirror))
	b.WriteString("\">\n")
	b.WriteString("    <span id=\"")
	b.WriteString(displayID)
	b.WriteString("\" class=\"ml-2\">")
	b.WriteString(formatNumber(s.Value()))
	b.WriteString("</span>\n")
	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) renderMarkup(m component.Markup) string {
	sanitized := r.sanitizer.Sanitize(m.HTML())
	classes := m.Styling().Resolve(r.classes[component.KindMarkup])
	if classes == "" {
		return sanitized
	}

	var b strings.Builder
	b.WriteString("<div")
	writeClassAttr(&b, classes)
	b.WriteString(">")
	b.WriteString(sanitized)
	b.WriteString("</div>")
	return b.String()
}

func writeClassAttr(b *strings.Builder, classes string) {
	b.WriteString(" class=\"")
	b.WriteString(html.EscapeString(classes))
	b.WriteString("\"")
}

// formatNumber keeps integral values free of a trailing ".0" so attribute
// output matches what callers wrote.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
