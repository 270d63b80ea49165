package mapgen

import (
	"fmt"
	"strconv"
	"strings"

	"econmap/internal/domain"
)

// ── Plotly figure ──────────────────────────────────────────
// The figure is plain JSON handed to Plotly.newPlot: two choropleth traces
// (real growth, condition) and one animation frame per year.

// Figure is a plotly figure: initial traces, layout and animation frames.
type Figure struct {
	Data   []Trace        `json:"data"`
	Layout map[string]any `json:"layout"`
	Frames []Frame        `json:"frames"`
}

// Frame is one animation step. Traces replaces data[0] and data[1].
type Frame struct {
	Name   string  `json:"name"`
	Data   []Trace `json:"data"`
	Traces []int   `json:"traces"`
}

// Trace is a choropleth trace.
type Trace struct {
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	Locations     []string   `json:"locations"`
	LocationMode  string     `json:"locationmode"`
	Z             []*float64 `json:"z"`
	CustomData    [][]any    `json:"customdata"`
	HoverTemplate string     `json:"hovertemplate"`
	ColorAxis     string     `json:"coloraxis,omitempty"`
	ColorScale    [][2]any   `json:"colorscale,omitempty"`
	ZMin          *float64   `json:"zmin,omitempty"`
	ZMax          *float64   `json:"zmax,omitempty"`
	ShowScale     *bool      `json:"showscale,omitempty"`
	ShowLegend    bool       `json:"showlegend"`
	Visible       *bool      `json:"visible,omitempty"`
}

// Trace indices in Figure.Data.
const (
	TraceGrowth    = 0
	TraceCondition = 1
)

// GrowthRange is the clipped color range of the real growth layer.
var GrowthRange = [2]float64{-10, 10}

// rdYlGn is the ColorBrewer red-yellow-green diverging scale.
var rdYlGn = []string{
	"rgb(165,0,38)", "rgb(215,48,39)", "rgb(244,109,67)", "rgb(253,174,97)",
	"rgb(254,224,139)", "rgb(255,255,191)", "rgb(217,239,139)", "rgb(166,217,106)",
	"rgb(102,189,99)", "rgb(26,152,80)", "rgb(0,104,55)",
}

// ConditionColors maps each label to its map color.
var ConditionColors = map[domain.Condition]string{
	domain.ConditionHyperinflation: "darkviolet",
	domain.ConditionOverheating:    "red",
	domain.ConditionStagflation:    "orange",
	domain.ConditionHealthyGrowth:  "green",
	domain.ConditionSteadyGrowth:   "yellowgreen",
	domain.ConditionRecession:      "peru",
	domain.ConditionDeflation:      "blue",
	domain.ConditionOther:          "gray",
	domain.ConditionUnknown:        "#444",
}

// KeyEvents relabels slider steps for years with a notable event.
var KeyEvents = map[int]string{
	1991: "1991: USSR Collapse",
	1997: "1997: Asian Crisis",
	1998: "1998: Russian Default",
	2008: "2008: GFC",
	2009: "2009: Eurozone Crisis",
	2011: "2011: Arab Spring",
	2013: "2013: Ukraine Crisis",
	2014: "2014: Crimea annexation",
	2015: "2015: Migration Crisis",
	2016: "2016: Brexit",
	2020: "2020: COVID-19",
}

// growthColorScale spreads rdYlGn evenly over [0, 1].
func growthColorScale() [][2]any {
	scale := make([][2]any, len(rdYlGn))
	for i, c := range rdYlGn {
		scale[i] = [2]any{float64(i) / float64(len(rdYlGn)-1), c}
	}
	return scale
}

// conditionColorScale is a stepped scale with one flat band per condition,
// so z = Condition.Index() picks exactly that condition's color when
// zmin/zmax are set to -0.5 and len-0.5.
func conditionColorScale() [][2]any {
	n := len(domain.Conditions)
	scale := make([][2]any, 0, 2*n)
	for i, c := range domain.Conditions {
		color := ConditionColors[c]
		scale = append(scale,
			[2]any{float64(i) / float64(n), color},
			[2]any{float64(i+1) / float64(n), color},
		)
	}
	return scale
}

// Years returns the distinct years of rows in ascending order. rows must
// already be sorted by year.
func Years(rows []Row) []int {
	var years []int
	for i, r := range rows {
		if i == 0 || r.Year != rows[i-1].Year {
			years = append(years, r.Year)
		}
	}
	return years
}

// byYear groups rows (sorted by year) into per-year slices.
func byYear(rows []Row) map[int][]Row {
	out := make(map[int][]Row)
	for _, r := range rows {
		out[r.Year] = append(out[r.Year], r)
	}
	return out
}

func growthTrace(rows []Row) Trace {
	t := Trace{
		Type:         "choropleth",
		Name:         "Real GDP Growth",
		LocationMode: "ISO-3",
		ColorAxis:    "coloraxis",
		Locations:    make([]string, len(rows)),
		Z:            make([]*float64, len(rows)),
		CustomData:   make([][]any, len(rows)),
		HoverTemplate: "<b>%{customdata[0]}</b><br>" +
			"GDP: %{customdata[1]:,.0f}<br>" +
			"Inflation: %{customdata[2]:.2f}<br>" +
			"Real GDP Growth: %{z:.2f}<extra></extra>",
	}
	for i, r := range rows {
		t.Locations[i] = r.ISOCode
		t.Z[i] = r.RealGrowth
		t.CustomData[i] = []any{r.Country, r.GDP, r.Inflation}
	}
	return t
}

func conditionTrace(rows []Row) Trace {
	n := float64(len(domain.Conditions))
	zmin, zmax := -0.5, n-0.5
	hide := false
	t := Trace{
		Type:          "choropleth",
		Name:          "Economic Condition",
		LocationMode:  "ISO-3",
		ColorScale:    conditionColorScale(),
		ZMin:          &zmin,
		ZMax:          &zmax,
		ShowScale:     &hide,
		Locations:     make([]string, len(rows)),
		Z:             make([]*float64, len(rows)),
		CustomData:    make([][]any, len(rows)),
		HoverTemplate: "<b>%{customdata[0]}</b><br>%{customdata[1]}<extra></extra>",
	}
	for i, r := range rows {
		idx := float64(r.Condition.Index())
		t.Locations[i] = r.ISOCode
		t.Z[i] = &idx
		t.CustomData[i] = []any{r.Country, string(r.Condition)}
	}
	return t
}

// SliderLabel is the slider text for year.
func SliderLabel(year int) string {
	if label, ok := KeyEvents[year]; ok {
		return label
	}
	return strconv.Itoa(year)
}

// LegendHTML is the condition legend shown while the condition layer is active.
func LegendHTML() string {
	var b strings.Builder
	b.WriteString("<b style='font-size:16px'>Conditions</b><br>")
	for _, c := range domain.Conditions {
		fmt.Fprintf(&b, `<span style="color:%s; font-size:18px">●</span> %s<br>`, ConditionColors[c], c)
	}
	return b.String()
}

// LegendAnnotation is the layout annotation carrying LegendHTML.
func LegendAnnotation() map[string]any {
	return map[string]any{
		"text":        LegendHTML(),
		"align":       "left",
		"showarrow":   false,
		"xref":        "paper",
		"yref":        "paper",
		"x":           1.02,
		"y":           0.5,
		"xanchor":     "left",
		"yanchor":     "middle",
		"bgcolor":     "rgba(30,30,30,0.9)",
		"bordercolor": "#555",
		"borderwidth": 1,
		"font":        map[string]any{"size": 14, "color": "#fff"},
	}
}

// animateArgs builds Plotly.animate arguments. nil frames plays from the
// current frame; []any{nil} pauses.
func animateArgs(frames []any, duration int) []any {
	return []any{
		frames,
		map[string]any{
			"mode":        "immediate",
			"fromcurrent": true,
			"frame":       map[string]any{"duration": duration, "redraw": true},
			"transition":  map[string]any{"duration": 0},
		},
	}
}

func layout(years []int) map[string]any {
	steps := make([]map[string]any, len(years))
	for i, y := range years {
		name := strconv.Itoa(y)
		steps[i] = map[string]any{
			"method": "animate",
			"label":  SliderLabel(y),
			"args":   animateArgs([]any{name}, 0),
		}
	}

	return map[string]any{
		"height":        750,
		"margin":        map[string]any{"r": 250, "l": 30, "t": 30, "b": 0},
		"showlegend":    false,
		"annotations":   []any{},
		"paper_bgcolor": "#1e1e1e",
		"plot_bgcolor":  "#1e1e1e",
		"font":          map[string]any{"color": "#e0e0e0"},
		"coloraxis": map[string]any{
			"colorscale": growthColorScale(),
			"cmin":       GrowthRange[0],
			"cmax":       GrowthRange[1],
			"showscale":  true,
			"colorbar":   map[string]any{"title": map[string]any{"text": "Real GDP Growth"}},
		},
		"geo": map[string]any{
			"projection":     map[string]any{"type": "equirectangular", "scale": 1.1},
			"center":         map[string]any{"lat": 20, "lon": 0},
			"showframe":      false,
			"bgcolor":        "#1e1e1e",
			"showland":       true,
			"landcolor":      "#3a3a3a",
			"showcountries":  true,
			"countrycolor":   "#666",
			"coastlinecolor": "#666",
			"lakecolor":      "#1e1e1e",
		},
		"sliders": []any{map[string]any{
			"active":       0,
			"currentvalue": map[string]any{"prefix": "Year="},
			"pad":          map[string]any{"b": 10, "t": 60},
			"len":          0.9,
			"x":            0.1,
			"y":            0,
			"steps":        steps,
		}},
		"updatemenus": []any{map[string]any{
			"type":       "buttons",
			"direction":  "left",
			"showactive": false,
			"pad":        map[string]any{"r": 10, "t": 70},
			"x":          0.1,
			"xanchor":    "right",
			"y":          0,
			"yanchor":    "top",
			"buttons": []any{
				map[string]any{"label": "&#9654;", "method": "animate", "args": animateArgs(nil, 500)},
				map[string]any{"label": "&#9724;", "method": "animate", "args": animateArgs([]any{nil}, 0)},
			},
		}},
	}
}

// BuildFigure assembles the animated map from rows sorted by year.
func BuildFigure(rows []Row) *Figure {
	years := Years(rows)
	grouped := byYear(rows)

	fig := &Figure{
		Layout: layout(years),
		Frames: make([]Frame, 0, len(years)),
	}
	for _, y := range years {
		fig.Frames = append(fig.Frames, Frame{
			Name:   strconv.Itoa(y),
			Data:   []Trace{growthTrace(grouped[y]), conditionTrace(grouped[y])},
			Traces: []int{TraceGrowth, TraceCondition},
		})
	}

	var first []Row
	if len(years) > 0 {
		first = grouped[years[0]]
	}
	// Only the initial traces carry visibility; frames leave it alone so the
	// layer toggle survives animation.
	show, hide := true, false
	growth, cond := growthTrace(first), conditionTrace(first)
	growth.Visible, cond.Visible = &show, &hide
	fig.Data = []Trace{growth, cond}
	return fig
}
