package asmfmt

// indentChunks marks the label bodies of a .text section for one level
// of indentation. Whether a line sits inside a label's body is only
// knowable by looking forward to the next label, so the pass walks the
// chunks in reverse: each code chunk opens the scope, the label that
// owns it closes it, and a comment chunk is pulled in only while the
// scope is open (it documents the code below it, not the next label).
// Chunks before the first label are file preamble and never indented;
// data sections are never indented at all.
func indentChunks(kind SectionKind, chunks []Chunk) {
	if kind != SectionText {
		return
	}

	first := -1
	for i := range chunks {
		if chunks[i].Kind == ChunkModifier {
			first = i
			break
		}
	}
	if first < 0 {
		return
	}

	inScope := false
	for i := len(chunks) - 1; i >= first; i-- {
		switch chunks[i].Kind {
		case ChunkModifier:
			inScope = false
		case ChunkCode:
			inScope = true
			indentLines(chunks[i].Lines)
		case ChunkComment:
			if inScope {
				indentLines(chunks[i].Lines)
			}
		case ChunkSpace, ChunkGlobal:
			// Never indented, never affect the scope.
		}
	}
}

func indentLines(lines []CodeLine) {
	for i := range lines {
		lines[i].IndentLevel++
	}
}
