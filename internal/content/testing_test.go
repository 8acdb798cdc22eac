package content

import (
	"testing/fstest"

	"github.com/rs/zerolog"
)

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

func newTestSource(files fstest.MapFS) *Source {
	return NewSource(files, NewRenderer(), zerolog.Nop())
}

func guideFixtures() fstest.MapFS {
	return fstest.MapFS{
		"guides/x.md": file(`---
title: Guide X
description: About X
date: 2024-03-01
keywords: [zdr, privacy]
topic: zero-data-retention
relatedConcepts: [y, missing, x]
---
# Heading X

Body with **bold** text.
`),
		"guides/y.md": file(`---
title: Guide Y
date: 2024-05-10
---
Y body
`),
		"guides/z.md": file(`---
title: Guide Z
keywords: "audit, logging , "
relatedConcepts:
  - x
---
Z body
`),
		"guides/plain.md":    file("# Only markdown\n\nNo frontmatter here.\n"),
		"guides/broken.md":   file("---\ntitle: [unclosed\n---\nbody\n"),
		"guides/Bad_Slug.md": file("---\ntitle: Ignored\n---\n"),
		"guides/notes.txt":   file("not markdown"),
	}
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
