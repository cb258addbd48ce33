package stylize

import (
	"fmt"
	"strings"
)

// DescribeInstruction is the instruction sent alongside an uploaded photo to
// obtain a textual description that can seed the prompt template.
const DescribeInstruction = "Describe this photograph in two or three sentences for an illustrator. " +
	"Cover the main subject, the setting, the lighting, and the overall mood. " +
	"Do not mention that it is a photo and do not add any commentary."

// Prompt renders the shared prompt template for the given style and scene.
// Both the typed-scene path and the photo path go through this function, the
// photo path supplying the model-written description as the scene.
func Prompt(style Style, scene string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recreate the following scene as %s.\n\n", style.Subject)
	fmt.Fprintf(&b, "Scene: %s\n\n", strings.TrimSpace(scene))
	b.WriteString("Rendering notes:\n")
	for _, d := range style.Directives {
		b.WriteString("- ")
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("- Do not add any text, captions, signatures, or watermarks.")
	return b.String()
}
