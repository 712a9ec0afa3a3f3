package console

import "strings"

// fakeView is a line-based stand-in for a scrolling text widget.
type fakeView struct {
	content     string
	height      int
	topInset    int
	bottomInset int
	offset      int
	scrolls     []Position
	appends     []string
}

func newFakeView(height int) *fakeView {
	return &fakeView{height: height}
}

func (v *fakeView) AppendVisible(text string) {
	v.appends = append(v.appends, text)
	v.content += text
}

func (v *fakeView) ScrollTo(pos Position) {
	v.scrolls = append(v.scrolls, pos)
	switch pos {
	case Top:
		v.offset = 0
	case Bottom:
		v.offset = v.Geometry().MaxScroll()
	}
}

func (v *fakeView) Geometry() Geometry {
	return Geometry{
		ViewportHeight: v.height,
		TopInset:       v.topInset,
		BottomInset:    v.bottomInset,
		ContentHeight:  v.lines(),
		ScrollOffset:   v.offset,
	}
}

func (v *fakeView) lines() int {
	if v.content == "" {
		return 0
	}
	return strings.Count(v.content, "\n") + 1
}

// setLines replaces the content with n numbered lines.
func (v *fakeView) setLines(n int) {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "line"
	}
	v.content = strings.Join(rows, "\n")
}

func (v *fakeView) resetCommands() {
	v.scrolls = nil
	v.appends = nil
}
