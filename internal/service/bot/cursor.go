package bot

import (
	"strconv"
	"strings"
)

// Inline answers page two independent catalog sequences, ingredients and
// drinks, behind one next_offset string the Bot API echoes back verbatim.
// The cursor keeps a position per sequence so one running out does not
// stall the other.

// seqOffset is the position within one catalog sequence.
type seqOffset struct {
	N    int
	Done bool
}

func (o seqOffset) encode() string {
	s := strconv.Itoa(o.N)
	if o.Done {
		s += "d"
	}
	return s
}

func decodeSeqOffset(s string) seqOffset {
	var o seqOffset
	if rest, ok := strings.CutSuffix(s, "d"); ok {
		o.Done = true
		s = rest
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		o.N = n
	}
	return o
}

// inlineCursor is the compound pagination state of one inline query.
type inlineCursor struct {
	Ingredients seqOffset
	Drinks      seqOffset
}

// encode renders the cursor for next_offset. Both sequences exhausted
// encodes as "", which tells the client there are no further pages.
func (c inlineCursor) encode() string {
	if c.Ingredients.Done && c.Drinks.Done {
		return ""
	}
	return c.Ingredients.encode() + ":" + c.Drinks.encode()
}

// decodeCursor parses a next_offset echoed by the client. The zero cursor
// covers both the first page ("") and anything malformed: starting over is
// the safe interpretation of a cursor the bot cannot read.
func decodeCursor(s string) inlineCursor {
	if s == "" {
		return inlineCursor{}
	}

	ing, drinks, ok := strings.Cut(s, ":")
	if !ok {
		return inlineCursor{}
	}

	return inlineCursor{
		Ingredients: decodeSeqOffset(ing),
		Drinks:      decodeSeqOffset(drinks),
	}
}
