package board

import "strings"

// Render draws the position as eight text lines, rank 8 first, files a
// through h left to right. Occupied squares show the piece figurine,
// empty squares a dot, cells separated by single spaces. Only the 64
// playable squares are visited; sentinel cells never reach the output.
// Pure function of the board contents, auxiliary state is ignored.
func Render(p *Position) []string {
	lines := make([]string, 0, 8)
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			cell := p.CellAt(NewSquare(File(file), Rank(rank)))
			if piece := cell.Piece(); piece != NoPiece {
				sb.WriteRune(piece.Figurine())
			} else {
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// RenderString joins the rendered ranks into a terminal-ready diagram
// with rank numbers down the left edge and file letters along the
// bottom.
func RenderString(p *Position) string {
	var sb strings.Builder
	for i, line := range Render(p) {
		sb.WriteByte(byte('8' - i))
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
