// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat drives one open conversation through its lifecycle.
package chat

import (
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/util"
)

// maxTitleRunes is the cap on auto-derived chat titles, before the ellipsis.
const maxTitleRunes = 60

// AutoTitle derives a chat title from the first message sent to it.
//
// Whitespace runs collapse to single spaces and the ends are trimmed. A
// result longer than 60 characters is cut at 60 and marked with an
// ellipsis. An empty result keeps the default title.
func AutoTitle(text string) string {
	cleaned := util.CollapseWhitespace(text)
	if cleaned == "" {
		return model.DefaultChatTitle
	}
	if util.RuneLen(cleaned) > maxTitleRunes {
		return util.TruncateRunesNoEllipsis(cleaned, maxTitleRunes) + "…"
	}
	return cleaned
}
