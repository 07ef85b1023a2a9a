package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jonfriesen/elementify"
	"github.com/jonfriesen/elementify/internal/normalize"
)

const (
	revealInterval = 80 * time.Millisecond
	shakeInterval  = 40 * time.Millisecond
	shakeFrames    = 6
	maxInputLen    = 64
)

type scene int

const (
	scenePrompt scene = iota
	sceneSolution
)

func (s scene) String() string {
	switch s {
	case scenePrompt:
		return "prompt"
	case sceneSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// Ticks carry the seq they were started with so a tick from an earlier
// submission cannot advance the current one.
type revealMsg struct{ seq int }
type shakeMsg struct{ seq int }

type model struct {
	segmenter *elementify.Segmenter
	generator *WordGenerator
	logger    *zap.Logger

	scene scene
	input []rune
	err   error
	shake int // remaining shake frames

	result   elementify.Result
	revealed int // solution rows shown so far
	offset   int // first visible card in every row
	top      int // first visible row

	seq      int
	width    int
	height   int
	quitting bool
}

func newModel(s *elementify.Segmenter, gen *WordGenerator, logger *zap.Logger) model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return model{
		segmenter: s,
		generator: gen,
		logger:    logger,
		scene:     scenePrompt,
		width:     120,
		height:    24,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func revealCmd(seq int) tea.Cmd {
	return tea.Tick(revealInterval, func(time.Time) tea.Msg {
		return revealMsg{seq: seq}
	})
}

func shakeCmd(seq int) tea.Cmd {
	return tea.Tick(shakeInterval, func(time.Time) tea.Msg {
		return shakeMsg{seq: seq}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.scene == sceneSolution {
			return m.updateSolution(msg)
		}
		return m.updatePrompt(msg)

	case revealMsg:
		if msg.seq != m.seq || m.scene != sceneSolution {
			return m, nil
		}
		m.revealed++
		if m.revealed < m.result.Len() {
			return m, revealCmd(m.seq)
		}
		return m, nil

	case shakeMsg:
		if msg.seq != m.seq || m.shake == 0 {
			return m, nil
		}
		m.shake--
		if m.shake > 0 {
			return m, shakeCmd(m.seq)
		}
		return m, nil
	}

	return m, nil
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyTab:
		if m.generator != nil {
			if word := m.generator.Generate(); word != "" {
				m.input = []rune(word)
				m.err = nil
			}
		}
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		m.err = nil
		return m, nil
	case tea.KeySpace:
		m.appendInput(' ')
		return m, nil
	case tea.KeyRunes:
		m.appendInput(msg.Runes...)
		return m, nil
	}
	return m, nil
}

func (m *model) appendInput(r ...rune) {
	m.err = nil
	for _, c := range r {
		if len(m.input) >= maxInputLen {
			return
		}
		m.input = append(m.input, c)
	}
}

// submit validates the prompt and moves to the solution scene, or starts the
// error shake and stays on the prompt.
func (m model) submit() (tea.Model, tea.Cmd) {
	m.seq++

	word, err := normalize.Input(string(m.input))
	var res elementify.Result
	if err == nil {
		res, err = m.segmenter.Elementify(word)
	}
	if err != nil {
		m.logger.Debug("rejected input", zap.String("input", string(m.input)), zap.Error(err))
		m.err = err
		m.shake = shakeFrames
		return m, shakeCmd(m.seq)
	}

	m.logger.Info("segmented", zap.String("word", word), zap.Int("solutions", res.Len()))
	m.scene = sceneSolution
	m.result = res
	m.revealed = 0
	m.offset = 0
	m.top = 0
	m.err = nil
	m.shake = 0
	if res.Len() == 0 {
		return m, nil
	}
	return m, revealCmd(m.seq)
}

func (m model) updateSolution(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "enter", "esc", "r":
		return m.reset(), nil
	case "left", "h":
		m.offset--
	case "right", "l":
		m.offset++
	case "up", "k":
		m.top--
	case "down", "j":
		m.top++
	}
	m.clampScroll()
	return m, nil
}

func (m model) reset() model {
	m.seq++
	m.scene = scenePrompt
	m.input = nil
	m.err = nil
	m.shake = 0
	m.result = elementify.Result{}
	m.revealed = 0
	m.offset = 0
	m.top = 0
	return m
}

func (m *model) clampScroll() {
	longest := 0
	for _, seg := range m.result.Segmentations {
		longest = max(longest, len(seg))
	}
	m.offset = min(m.offset, longest-1)
	m.offset = max(m.offset, 0)

	m.top = min(m.top, m.result.Len()-m.visibleRows())
	m.top = max(m.top, 0)
}
