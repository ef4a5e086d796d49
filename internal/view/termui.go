package view

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/internal/life"
)

const (
	boardViewName  = "board"
	statusViewName = "status"
	configViewName = "configuration"
	helpViewName   = "help"
	headerViewName = "header"
)

var modeDescr = map[Mode]string{
	ModeManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
	ModeRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
	ModeFinished: aurora.Colorize("finished", aurora.RedFg).String(),
}

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// TermUI is the interactive terminal front end: a board panel with mouse
// toggling next to status and configuration panels, driven through a Runner.
type TermUI struct {
	runner *Runner
	g      *gocui.Gui
	keys   []keyBinding

	liveFiller string
	deadFiller string
}

// NewTermUI initializes the terminal surface and keybindings. A terminal
// that cannot host gocui surfaces the initialization error to the caller
// instead of aborting the process.
func NewTermUI(r *Runner) (*TermUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("terminal surface unavailable: %w", err)
	}

	t := &TermUI{
		runner:     r,
		g:          g,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}
	g.Mouse = true
	g.SetManagerFunc(t.layout)

	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Randomize", t.cmdRandomize, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdToggle, boardViewName},
	}
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, err
		}
	}

	r.OnChange(t.refresh)
	return t, nil
}

// Start runs the UI main loop until the user quits.
func (t *TermUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (t *TermUI) cmdQuit(*gocui.View) error {
	t.runner.Stop()
	return gocui.ErrQuit
}

func (t *TermUI) cmdStep(*gocui.View) error {
	t.runner.Step()
	return nil
}

func (t *TermUI) cmdRun(*gocui.View) error {
	t.runner.Run()
	return nil
}

func (t *TermUI) cmdStop(*gocui.View) error {
	t.runner.Stop()
	return nil
}

func (t *TermUI) cmdClear(*gocui.View) error {
	t.runner.Clear()
	return nil
}

func (t *TermUI) cmdRandomize(*gocui.View) error {
	t.runner.Randomize()
	return nil
}

func (t *TermUI) cmdToggle(v *gocui.View) error {
	if v == nil {
		return nil
	}
	col, row := v.Cursor()
	err := t.runner.Toggle(row, col)
	if errors.Is(err, life.ErrOutOfBounds) {
		// Click in the panel padding outside the board.
		return nil
	}
	return err
}

func (t *TermUI) refresh() {
	t.renderBoard()
	t.renderStatus()
	t.renderConfiguration()
}

func (t *TermUI) renderBoard() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(boardViewName)
		if err != nil {
			return err
		}
		v.Clear()

		size, cells := t.runner.Board()
		maxW, maxH := v.Size()
		crop := size.W > maxW || size.H > maxH

		var b bytes.Buffer
		for row := 0; row < size.H && row < maxH; row++ {
			if row != 0 {
				b.WriteByte('\n')
			}
			if crop && row == maxH-1 {
				b.WriteString(aurora.Red("The board is larger than the viewing area").String())
				break
			}
			for col := 0; col < size.W && col < maxW; col++ {
				if cells[row*size.W+col] == life.Alive {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *TermUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(statusViewName)
		if err != nil {
			return nil
		}
		s := t.runner.Status()
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.Iteration))
		_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", s.Population))
		_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", modeDescr[s.Mode]))
		return nil
	})
}

func (t *TermUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(configViewName)
		if err != nil {
			return nil
		}
		s := t.runner.Status()
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", s.Size.W, s.Size.H))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.runner.Interval()))
		_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", t.runner.MaxSteps()))
		return nil
	})
}

func (t *TermUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *TermUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		_ = g.DeleteView(configViewName)
		_ = g.DeleteView(statusViewName)
		_ = g.DeleteView(boardViewName)
		return nil
	}
	if err := t.headerLayout(g, 3, "golife — Conway's Game of Life"); err != nil {
		return err
	}

	midY := 3 + (maxY-5-3)/2
	if v, err := g.SetView(configViewName, 0, 3, leftColumnWidth, midY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView(statusViewName, 0, midY+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView(boardViewName, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
	}
	t.renderBoard()

	if v, err := g.SetView(helpViewName, -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *TermUI) headerLayout(g *gocui.Gui, height int, title string) error {
	v, err := g.SetView(headerViewName, -1, -1, 1000, height)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if v != nil {
		v.Clear()
		v.Frame = false
		_, _ = fmt.Fprintln(v, "")
		_, _ = fmt.Fprintln(v, " "+aurora.Bold(title).String())
	}
	return nil
}
