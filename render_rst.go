// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// writeText appends parts to w; string sinks used here do not fail.
func writeText(w io.StringWriter, parts ...string) {
	for _, part := range parts {
		_, _ = w.WriteString(part)
	}
}

// writeTitle writes the upper-cased document title with a "=" underline.
func writeTitle(w io.StringWriter, title string) {
	writeText(w, strings.ToUpper(title), "\n", underline(title, '='), "\n")
}

// writeHeading writes a section heading underlined with marker.
func writeHeading(w io.StringWriter, text string, marker rune) {
	writeText(w, text, "\n", underline(text, marker), "\n")
}

// underline repeats marker once per character of text.
func underline(text string, marker rune) string {
	return strings.Repeat(string(marker), utf8.RuneCountInString(text))
}

// writeAttribute writes one bold label with an indented literal value.
func writeAttribute(w io.StringWriter, label, value string) {
	writeText(w, "    **", label, ":**\n", "        ", inlineLiteral(value), "\n")
}

// inlineLiteral wraps value into RST inline literal markup.
func inlineLiteral(value string) string {
	return "``" + value + "``"
}

// boolText renders booleans as "True" or "False".
func boolText(value bool) string {
	if value {
		return "True"
	}

	return "False"
}

// formatInt renders border values as decimal text.
func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

// formatValue renders default and match values; strings stay verbatim, others become inline JSON.
func formatValue(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}
