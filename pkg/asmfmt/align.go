package asmfmt

// alignComments assigns every commented line in a code chunk the gap
// that brings each '#' to one shared column: two spaces past the
// longest line in the chunk. When the longest uncommented line
// overshoots the longest commented one by disparityThreshold or more,
// the column tracks the commented lines only, so one abnormally long
// line (a wide string literal, say) cannot push every comment far to
// the right.
func alignComments(chunk *Chunk) {
	if chunk.Kind != ChunkCode {
		return
	}

	maxAll, maxCommented := 0, 0
	for _, line := range chunk.Lines {
		n := 0
		if line.HasCode {
			n = len(line.Code)
		}
		maxAll = max(maxAll, n)
		if line.HasComment {
			maxCommented = max(maxCommented, n)
		}
	}

	column := maxAll + commentGapMin
	if maxAll-maxCommented >= disparityThreshold {
		column = maxCommented + commentGapMin
	}

	for i := range chunk.Lines {
		line := &chunk.Lines[i]
		if !line.HasComment || !line.HasCode {
			continue
		}
		if gap := column - len(line.Code); gap >= 0 {
			line.CommentGap = gap
		}
		// Otherwise the gap stays unset and rendering falls back to the
		// minimum two spaces.
	}
}
