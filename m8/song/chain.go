package song

import "github.com/m8kit/m8file/m8/util"

// ChainLength is the number of cells in a chain.
const ChainLength = 16

// ChainCell is one (phrase, transpose) step of a chain.
type ChainCell struct {
	Phrase    uint8 `json:"phrase"`
	Transpose uint8 `json:"transpose"`
}

func (c ChainCell) IsEmpty() bool {
	return c.Phrase == EmptyRef
}

type Chain struct {
	Cells [ChainLength]ChainCell `json:"cells"`
}

func readChain(r *util.Reader) Chain {
	var c Chain
	for n := range c.Cells {
		c.Cells[n] = ChainCell{
			Phrase:    r.Read(),
			Transpose: r.Read(),
		}
	}
	return c
}

func (c Chain) write(w *util.Writer) {
	for _, cell := range c.Cells {
		w.Write(cell.Phrase)
		w.Write(cell.Transpose)
	}
}

func (c Chain) IsEmpty() bool {
	for _, cell := range c.Cells {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}
