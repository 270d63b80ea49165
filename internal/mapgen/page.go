package mapgen

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

//go:embed assets/style.css
var styleCSS string

//go:embed assets/app.js
var appJS string

// DefaultPlotlyURL is the plotly.js bundle used when none is configured.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// PageOptions tunes the rendered page.
type PageOptions struct {
	PlotlyURL string
}

// pageData is everything the page script needs, serialized once.
type pageData struct {
	Figure  *Figure
	History map[string]*History
	Legend  map[string]any
}

// dataScript declares the globals app.js reads. encoding/json escapes <, >
// and & so the payload cannot close the script element.
func dataScript(d pageData) (string, error) {
	fig, err := json.Marshal(d.Figure)
	if err != nil {
		return "", fmt.Errorf("marshal figure: %w", err)
	}
	hist, err := json.Marshal(d.History)
	if err != nil {
		return "", fmt.Errorf("marshal history: %w", err)
	}
	legend, err := json.Marshal(d.Legend)
	if err != nil {
		return "", fmt.Errorf("marshal legend: %w", err)
	}
	return fmt.Sprintf("const figure = %s;\nconst countryHistory = %s;\nconst customLegend = %s;\n", fig, hist, legend), nil
}

func title(years []int) string {
	if len(years) == 0 {
		return "Global Economic Dynamics"
	}
	return fmt.Sprintf("Global Economic Dynamics (%d - %d)", years[0], years[len(years)-1])
}

func toggle(label, onclick string, active bool) g.Node {
	class := "btn"
	if active {
		class += " active"
	}
	return h.Button(
		h.Class(class),
		g.Attr("onclick", onclick),
		g.Text(label),
	)
}

func controls() g.Node {
	return h.Div(h.Class("controls-bar"),
		h.Div(h.Class("btn-group"), h.ID("view-controls"),
			h.Span(h.Class("btn-label"), g.Text("Layer:")),
			toggle("GDP Growth", "switchView('gdp', this)", true),
			toggle("Economic Condition", "switchView('cond', this)", false),
		),
		h.Div(h.Class("btn-group"), h.ID("projection-controls"),
			h.Span(h.Class("btn-label"), g.Text("View:")),
			toggle("Flat", "switchProjection('flat', this)", true),
			toggle("Globe", "switchProjection('globe', this)", false),
		),
	)
}

func page(heading, plotlyURL, data string) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text("Economic Dashboard")),
				h.StyleEl(g.Raw(styleCSS)),
				h.Script(h.Src(plotlyURL)),
			),
			h.Body(
				h.Div(h.Class("container"),
					h.H1(g.Text(heading)),
					h.Div(h.Class("card"), h.Style("padding-bottom: 10px;"),
						controls(),
						h.Div(h.ID("map-container"),
							h.Div(h.ID("main-map")),
						),
					),
					h.Div(h.Class("card"), h.ID("chart-container"),
						h.Div(h.ID("chart-placeholder"), h.Class("placeholder"),
							g.Text("Click on a country on the map to see its economic history"),
						),
						h.Div(h.ID("selected-country-header")),
						h.Div(h.ID("line-chart")),
					),
				),
				h.Script(g.Raw(data)),
				h.Script(g.Raw(appJS)),
			),
		),
	)
}

// RenderPage writes the complete dashboard for rows (sorted by year) to w.
func RenderPage(w io.Writer, rows []Row, opts PageOptions) error {
	if opts.PlotlyURL == "" {
		opts.PlotlyURL = DefaultPlotlyURL
	}

	data, err := dataScript(pageData{
		Figure:  BuildFigure(rows),
		History: BuildHistory(rows),
		Legend:  LegendAnnotation(),
	})
	if err != nil {
		return err
	}
	return page(title(Years(rows)), opts.PlotlyURL, data).Render(w)
}
