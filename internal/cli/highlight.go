// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/typedconf"
)

// highlight applies terminal syntax highlighting to a configuration document.
// On any failure the document is returned unchanged.
func highlight(doc string, format typedconf.Format, styleName string) string {
	lexer := lexers.Get(format.String())
	if lexer == nil {
		return doc
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, doc)
	if err != nil {
		return doc
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return doc
	}
	return buf.String()
}
