package plotpage

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/components"
)

// Page is a standalone HTML page of one or more charts.
type Page struct {
	Title  string
	Charts []components.Charter
}

// NewPage creates an empty page.
func NewPage(title string) *Page {
	return &Page{Title: title}
}

// Add appends charts to the page.
func (p *Page) Add(charts ...components.Charter) *Page {
	p.Charts = append(p.Charts, charts...)

	return p
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = p.Title
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(p.Charts...)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	return nil
}
