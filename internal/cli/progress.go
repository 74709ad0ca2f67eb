package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/method"
)

// progress.go drives `cube solve --interactive`: a live Bubble Tea view of
// a method.SolveWithProgress run, grounded on
// SeamusWaldron-gocube_ble_library's bubbletea usage (the one repo in the
// pack wiring a terminal UI to a long-running background operation) - here
// the background operation is the search engine instead of a BLE device.

var (
	stageDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stageWaitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
)

type stageDoneMsg method.Progress
type solveDoneMsg struct {
	result *method.Result
	err    error
}

type progressModel struct {
	methodName string
	stageNames []string
	done       []method.Progress
	updates    chan method.Progress
	result     chan solveDoneMsg
	finalErr   error
	final      *method.Result
}

func newProgressModel(methodName string, stageNames []string, updates chan method.Progress, result chan solveDoneMsg) progressModel {
	return progressModel{methodName: methodName, stageNames: stageNames, updates: updates, result: result}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(waitForStage(m.updates), waitForResult(m.result))
}

func waitForStage(updates chan method.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-updates
		if !ok {
			return nil
		}
		return stageDoneMsg(p)
	}
}

func waitForResult(result chan solveDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return <-result
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case stageDoneMsg:
		m.done = append(m.done, method.Progress(msg))
		return m, waitForStage(m.updates)
	case solveDoneMsg:
		m.final = msg.result
		m.finalErr = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Solving with "+m.methodName))

	doneByName := map[string]method.Progress{}
	for _, p := range m.done {
		doneByName[p.Stage.Name] = p
	}

	for _, name := range m.stageNames {
		if p, ok := doneByName[name]; ok {
			fmt.Fprintf(&b, "%s %s (depth %d, %d moves)\n", stageDoneStyle.Render("done"), name, p.Stage.Depth, p.Stage.Solution.Len())
		} else {
			fmt.Fprintf(&b, "%s %s\n", stageWaitStyle.Render("... "), name)
		}
	}

	if m.final != nil {
		fmt.Fprintf(&b, "\n%s\n", stageDoneStyle.Render(fmt.Sprintf("Solved in %d moves.", m.final.Solution.Len())))
	}
	if m.finalErr != nil {
		fmt.Fprintf(&b, "\nError: %v\n", m.finalErr)
	}
	return b.String()
}

// runInteractiveSolve drives m.Solve against start in a goroutine, showing
// a live Bubble Tea progress view, and returns the same *method.Result a
// plain Solve call would.
func runInteractiveSolve(m method.Method, start cube.State, threadCount int) (*method.Result, error) {
	stageNames := make([]string, 0, len(m.Stages()))
	for _, s := range m.Stages() {
		stageNames = append(stageNames, s.Name)
	}

	updates := make(chan method.Progress, len(stageNames))
	result := make(chan solveDoneMsg, 1)

	go func() {
		defer close(updates)
		r, err := method.SolveWithProgress(m, start, threadCount, updates)
		result <- solveDoneMsg{result: r, err: err}
	}()

	model := newProgressModel(m.Name(), stageNames, updates, result)
	program := tea.NewProgram(model)
	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive solve view: %w", err)
	}

	pm := finalModel.(progressModel)
	if pm.finalErr != nil {
		return nil, pm.finalErr
	}
	return pm.final, nil
}
