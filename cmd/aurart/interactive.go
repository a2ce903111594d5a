package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aura-lang/aura-runtime/handle"
	"github.com/aura-lang/aura-runtime/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxHistory = 16

type inspectorModel struct {
	ctx     *runtime.Context
	input   textinput.Model
	history []string
}

func newInspectorModel(ctx *runtime.Context) *inspectorModel {
	ti := textinput.New()
	ti.Prompt = "aurart> "
	ti.Width = 60
	ti.Focus()
	return &inspectorModel{ctx: ctx, input: ti}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			if line != "" {
				m.push("aurart> " + line)
				m.push(m.eval(line))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) push(line string) {
	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// eval dispatches one inspector command against the live context.
func (m *inspectorModel) eval(line string) string {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		return helpStyle.Render(
			"new <len> | len <h> | get <h> <i> | set <h> <i> <v> | load <locator>\n" +
				"infer <m> <t> | check <v> <lo> <hi> | print <text> | stats | tensors | models | quit")

	case "new":
		n, err := u32Args(args, 1)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		h, cerr := m.ctx.NewTensor(n[0])
		if cerr != nil {
			return errorStyle.Render(cerr.Error())
		}
		return resultStyle.Render(fmt.Sprintf("tensor handle %d", h))

	case "len":
		n, err := u32Args(args, 1)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		length, ok := m.ctx.TensorLen(handle.Handle(n[0]))
		if !ok {
			return errorStyle.Render("invalid handle")
		}
		return resultStyle.Render(fmt.Sprintf("length %d", length))

	case "get":
		n, err := u32Args(args, 2)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		v, ok := m.ctx.TensorGet(handle.Handle(n[0]), n[1])
		if !ok {
			return errorStyle.Render("invalid handle or index")
		}
		return resultStyle.Render(fmt.Sprintf("%d", v))

	case "set":
		n, err := u32Args(args, 3)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		if !m.ctx.TensorSet(handle.Handle(n[0]), n[1], n[2]) {
			return errorStyle.Render("invalid handle or index")
		}
		return resultStyle.Render("ok")

	case "load":
		if len(args) != 1 {
			return errorStyle.Render("usage: load <locator>")
		}
		h, cerr := m.ctx.LoadModel(args[0])
		if cerr != nil {
			return errorStyle.Render(cerr.Error())
		}
		return resultStyle.Render(fmt.Sprintf("model handle %d", h))

	case "infer":
		n, err := u32Args(args, 2)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		out, cerr := m.ctx.Infer(handle.Handle(n[0]), handle.Handle(n[1]))
		if cerr != nil {
			return errorStyle.Render(cerr.Error())
		}
		return resultStyle.Render(fmt.Sprintf("output handle %d", out))

	case "check":
		n, err := u32Args(args, 3)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		if trap := m.ctx.RangeCheck(n[0], n[1], n[2]); trap != nil {
			return errorStyle.Render(trap.Error())
		}
		return resultStyle.Render("in range")

	case "print":
		text := strings.Join(args, " ")
		m.ctx.Println(&text)
		return resultStyle.Render("printed")

	case "stats":
		s := m.ctx.Stats()
		out := fmt.Sprintf("tensors %d/%d  models %d/%d", s.Tensors, s.TensorCapacity, s.Models, s.ModelCapacity)
		if s.AllocCap > 0 {
			out += fmt.Sprintf("  arena %d/%d bytes", s.AllocUsed, s.AllocCap)
		} else {
			out += fmt.Sprintf("  heap %d bytes", s.AllocUsed)
		}
		return statStyle.Render(out)

	case "tensors":
		var lines []string
		m.ctx.EachTensor(func(h handle.Handle, t *runtime.Tensor) bool {
			lines = append(lines, fmt.Sprintf("  %d: len=%d", h, t.Len()))
			return true
		})
		if len(lines) == 0 {
			return helpStyle.Render("no live tensors")
		}
		return statStyle.Render(strings.Join(lines, "\n"))

	case "models":
		var lines []string
		m.ctx.EachModel(func(h handle.Handle, mo *runtime.Model) bool {
			lines = append(lines, fmt.Sprintf("  %d: %s", h, mo.Locator))
			return true
		})
		if len(lines) == 0 {
			return helpStyle.Render("no live models")
		}
		return statStyle.Render(strings.Join(lines, "\n"))

	default:
		return errorStyle.Render("unknown command (try help)")
	}
}

func u32Args(args []string, want int) ([]uint32, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d numeric arguments", want)
	}
	out := make([]uint32, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", a)
		}
		out[i] = uint32(v)
	}
	return out, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("aura runtime inspector"))
	b.WriteString("\n\n")
	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter a command, help for a list, ctrl+c to quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(ctx *runtime.Context) error {
	p := tea.NewProgram(newInspectorModel(ctx))
	_, err := p.Run()
	return err
}
