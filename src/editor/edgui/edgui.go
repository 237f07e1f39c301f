// edgui provides some helper functions for the editor UI
// The functions here should follow imgui style.

package edgui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
)

func Text(format string, args ...any) {
	t := fmt.Sprintf(format, args...)
	imgui.Text(t)
}

func InputText(label string, text *string) bool {
	imgui.Text(label)
	imgui.SameLine()

	return imgui.InputText("##"+label, text)
}

// WithIDPtr is used to prevent two inputs from being treated as the
// same input within imgui.  Use it when the same widgets are drawn
// once per model object.
func WithIDPtr[T any](ptr *T, body func()) {
	addr := fmt.Sprintf("%x", ptr)
	imgui.PushID(addr)
	defer imgui.PopID()
	body()
}

func WithDisabled(applyDisable bool, body func()) {
	if applyDisable {
		imgui.PushStyleColor(imgui.StyleColorButton, imgui.CurrentStyle().Color(imgui.StyleColorTextDisabled))
		defer imgui.PopStyleColor()
	}
	body()
}
