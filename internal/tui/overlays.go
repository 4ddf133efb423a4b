package tui

import (
	"fmt"
	"strings"
)

func renderErrorOverlay(message string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Error"))
	b.WriteString("\n\n")
	b.WriteString(message)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter/esc: dismiss"))
	return overlayBoxStyle.Render(b.String())
}

func renderConfirmOverlay(target deleteTarget) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm delete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Delete this %s? This cannot be undone.", target.kind))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("y: delete │ n/esc: keep"))
	return overlayBoxStyle.Render(b.String())
}
