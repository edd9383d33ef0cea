package machine

import (
	"strings"
)

// COMMENT starts a comment running to the end of the line.
const COMMENT = "#"

// Tokenize extracts the instruction sequence from source text. Each
// line is cut at the first comment marker; of what remains, only the
// eight instruction symbols are kept, each carrying its position in
// the sequence. Every other character is prose the language permits
// and is dropped. Tokenize is a pure function of the text and never
// fails.
func Tokenize(text string) (codes []Code) {
	for _, line := range strings.Split(text, "\n") {
		line, _, _ = strings.Cut(line, COMMENT)
		for _, sym := range line {
			op, ok := opMap[sym]
			if !ok {
				continue
			}
			codes = append(codes, Code{Op: op, Pos: len(codes)})
		}
	}

	return
}
