// Package layout reads an initial grid from the XHTML table markup of a box grid page:
//
//	<table>
//	  <tr><td><div class="box" style="background-color: #ff8800">100</div></td><td/></tr>
//	</table>
//
// A cell holds a box if it contains an element whose class list has "box". The text
// of that element is the label, its color comes from a data-color attribute or from
// the background-color of its inline style. Boxes without a color get ColorFunc's.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/Zaphoood/boxgrid/src/util/set"
	"github.com/antchfx/xmlquery"
)

const BOX_CLASS = "box"

var ErrNoTable = errors.New("No table found in layout")

type DuplicateLabel struct {
	Label string
}

func (e DuplicateLabel) Error() string {
	return fmt.Sprintf("Label '%s' occurs more than once in layout", e.Label)
}

// ColorFunc supplies colors for boxes that don't specify one
type ColorFunc func() grid.Color

func LoadFile(path string, colors ColorFunc) (grid.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	snapshot, err := Parse(f, colors)
	if err != nil {
		return nil, fmt.Errorf("Failed to load layout '%s': %w", path, err)
	}
	return snapshot, nil
}

func Parse(r io.Reader, colors ColorFunc) (grid.Snapshot, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	table := xmlquery.FindOne(doc, "//table")
	if table == nil {
		return nil, ErrNoTable
	}

	snapshot := grid.Snapshot{}
	labels := set.New[string]()
	for _, tr := range xmlquery.Find(table, ".//tr") {
		row := []*grid.Content{}
		for _, td := range xmlquery.Find(tr, "./td|./th") {
			content, err := parseCell(td, colors)
			if err != nil {
				return nil, fmt.Errorf("Row %d: %w", len(snapshot)+1, err)
			}
			if content != nil {
				if labels.Contains(content.Label) {
					return nil, DuplicateLabel{content.Label}
				}
				labels.Insert(content.Label)
			}
			row = append(row, content)
		}
		if len(row) == 0 {
			continue
		}
		snapshot = append(snapshot, row)
	}
	if len(snapshot) == 0 {
		return nil, ErrNoTable
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func parseCell(td *xmlquery.Node, colors ColorFunc) (*grid.Content, error) {
	var box *xmlquery.Node
	for _, candidate := range xmlquery.Find(td, ".//*[@class]") {
		if hasClass(candidate, BOX_CLASS) {
			box = candidate
			break
		}
	}
	if box == nil {
		return nil, nil
	}
	label := strings.TrimSpace(box.InnerText())
	if len(label) == 0 {
		label = strings.TrimSpace(box.SelectAttr("id"))
	}
	if len(label) == 0 {
		return nil, errors.New("Box without label")
	}
	color, ok, err := boxColor(box)
	if err != nil {
		return nil, err
	}
	if !ok {
		color = colors()
	}
	return &grid.Content{Label: label, Color: color}, nil
}

func hasClass(n *xmlquery.Node, class string) bool {
	for _, c := range strings.Fields(n.SelectAttr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

func boxColor(n *xmlquery.Node) (grid.Color, bool, error) {
	if value := n.SelectAttr("data-color"); len(value) > 0 {
		c, err := grid.ParseColor(value)
		return c, err == nil, err
	}
	for _, declaration := range strings.Split(n.SelectAttr("style"), ";") {
		property, value, found := strings.Cut(declaration, ":")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(property)) {
		case "background-color", "background":
			c, err := grid.ParseColor(value)
			return c, err == nil, err
		}
	}
	return grid.Color{}, false, nil
}
