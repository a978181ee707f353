// Package prompt builds the instruction texts sent to the generation backend.
package prompt

import (
	"fmt"
	"strings"
)

// SystemInstruction configures the follow-up chat session.
const SystemInstruction = "You are a helpful assistant specializing in comparing electronic devices. " +
	"The user has just received a detailed comparison. " +
	"Answer their follow-up questions concisely based on the initial data provided and your general knowledge."

// SpecCategories lists the specification categories requested for each device, in prompt order.
var SpecCategories = []string{"Display", "Camera", "Processor", "Battery", "RAM", "Storage", "estimated Price in USD"}

// BuildComparisonPrompt returns the instruction asking for a side-by-side
// comparison of the two named devices. The names are embedded verbatim.
// The model is asked to echo them, but returned names are not checked against them.
func BuildComparisonPrompt(device1Name, device2Name string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Provide a detailed side-by-side comparison of the following two devices: \"%s\" and \"%s\".\n", device1Name, device2Name))
	b.WriteString(fmt.Sprintf("For each device, include its key specifications (%s, and %s), ",
		strings.Join(SpecCategories[:len(SpecCategories)-1], ", "), SpecCategories[len(SpecCategories)-1]))
	b.WriteString("a list of 3-5 pros, and a list of 3-5 cons.\n")
	b.WriteString("Finally, provide an overall summary and recommendation on which device is better for different types of users.\n")
	b.WriteString(fmt.Sprintf("Ensure the device names in the response exactly match what you find for \"%s\" and \"%s\".\n", device1Name, device2Name))

	return b.String()
}
