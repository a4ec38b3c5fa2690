package token

import "fmt"

// Pos locates a token in the source text. Lines and columns are 1-based.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
}
