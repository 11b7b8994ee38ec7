package asmfmt

// compileState tracks what separator the next chunk needs.
type compileState uint8

const (
	// stateFree: the output is cleanly separated; nothing pending.
	stateFree compileState = iota

	// stateAfterComment: a comment block was just emitted with no
	// terminating blank yet.
	stateAfterComment

	// stateAfterModifier: a label or .align line was just emitted; the
	// chunk that follows belongs directly under it.
	stateAfterModifier
)

// compileSection flattens a section's chunks back into rendered lines,
// inserting canonical blank separators. The state machine guarantees the
// output never holds two consecutive blank lines and never puts a blank
// between a label and the code under it.
func compileSection(sec Section, chunks []Chunk) []string {
	var out []string
	if sec.HasDirective {
		out = append(out, sec.Directive.Render(), "")
	}

	state := stateFree
	for _, chunk := range chunks {
		switch chunk.Kind {
		case ChunkGlobal:
			// A global declaration is always isolated on both sides.
			if state != stateFree {
				out = append(out, "")
			}
			out = append(out, chunk.Lines[0].Render(), "")
			state = stateFree

		case ChunkCode:
			for _, line := range chunk.Lines {
				out = append(out, line.Render())
			}
			out = append(out, "")
			state = stateFree

		case ChunkComment:
			for _, line := range chunk.Lines {
				out = append(out, line.Render())
			}
			state = stateAfterComment

		case ChunkModifier:
			out = append(out, chunk.Lines[0].Render())
			state = stateAfterModifier

		case ChunkSpace:
			// A blank terminates a dangling comment block; everywhere
			// else the surrounding chunks manage their own separation.
			if state == stateAfterComment {
				out = append(out, "")
				state = stateFree
			}
		}
	}

	if state != stateFree {
		out = append(out, "")
	}
	return out
}
