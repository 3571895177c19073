// Package render draws Quixo boards on a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-quixo/pkg/quixo"
	"github.com/muesli/termenv"
)

type Renderer struct {
	out *termenv.Output
}

// Colors are used only if 'w' is a terminal supporting them
func New(w io.Writer) *Renderer {
	return &Renderer{out: termenv.NewOutput(w)}
}

func (r *Renderer) Output() *termenv.Output {
	return r.out
}

func (r *Renderer) cell(c quixo.Cell, highlight bool) string {
	style := r.out.String(string(c.Symbol()))
	switch c {
	case quixo.CellA:
		style = style.Foreground(r.out.Color("4")).Bold()
	case quixo.CellB:
		style = style.Foreground(r.out.Color("1")).Bold()
	default:
		style = style.Faint()
	}
	if highlight {
		style = style.Reverse()
	}
	return style.String()
}

// Board with column and row indices, the cube pushed in by 'last' is highlighted
func (r *Renderer) Board(b quixo.Board, last *quixo.Move) string {
	hx, hy := -1, -1
	if last != nil {
		hx, hy = last.Destination()
	}

	builder := strings.Builder{}
	builder.WriteString("  ")
	for x := range quixo.Size {
		fmt.Fprintf(&builder, " %d", x)
	}
	builder.WriteByte('\n')

	for y := range quixo.Size {
		fmt.Fprintf(&builder, "%d |", y)
		for x := range quixo.Size {
			builder.WriteByte(' ')
			builder.WriteString(r.cell(b[y][x], x == hx && y == hy))
		}
		builder.WriteString(" |\n")
	}
	return builder.String()
}

func (r *Renderer) Move(ply int, player quixo.Player, move quixo.Move) string {
	return fmt.Sprintf("%3d. %s %s", ply, r.cell(player.Cell(), false), move)
}

func (r *Renderer) Status(status quixo.Status) string {
	style := r.out.String(status.String()).Bold()
	if status.Terminal && !status.Draw {
		style = style.Foreground(r.out.Color("2"))
	}
	return style.String()
}

func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}
