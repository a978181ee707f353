package model

// DeviceSpecs holds the key technical specifications of a device.
// Values are free-form prose supplied by the model (e.g. "6.1-inch OLED").
type DeviceSpecs struct {
	Display   string `json:"display" yaml:"display" validate:"required"`
	Camera    string `json:"camera" yaml:"camera" validate:"required"`
	Processor string `json:"processor" yaml:"processor" validate:"required"`
	Battery   string `json:"battery" yaml:"battery" validate:"required"`
	RAM       string `json:"ram" yaml:"ram" validate:"required"`
	Storage   string `json:"storage" yaml:"storage" validate:"required"`
	Price     string `json:"price" yaml:"price" validate:"required"`
}

// DeviceData is one side of a comparison.
type DeviceData struct {
	Name  string      `json:"name" yaml:"name" validate:"required"`
	Specs DeviceSpecs `json:"specs" yaml:"specs"`
	Pros  []string    `json:"pros" yaml:"pros" validate:"required"`
	Cons  []string    `json:"cons" yaml:"cons" validate:"required"`
}

// ComparisonResult is the structured side-by-side comparison of two devices.
// It is the grounding context for every follow-up question in a session.
type ComparisonResult struct {
	Device1 DeviceData `json:"device1" yaml:"device1"`
	Device2 DeviceData `json:"device2" yaml:"device2"`
	Summary string     `json:"summary" yaml:"summary" validate:"required"`
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Valid reports whether r is one of the roles the generation backend accepts.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// ChatMessage stores a single turn of a follow-up conversation.
type ChatMessage struct {
	Role    Role   `json:"role" yaml:"role" validate:"required,oneof=user model"`
	Content string `json:"content" yaml:"content"`
}

// ChatHistory is the ordered list of follow-up turns for one comparison.
type ChatHistory []ChatMessage

// Last returns the final message and true, or a zero message and false when empty.
func (h ChatHistory) Last() (ChatMessage, bool) {
	if len(h) == 0 {
		return ChatMessage{}, false
	}
	return h[len(h)-1], true
}

// ChatResponse is the payload returned for a follow-up question.
type ChatResponse struct {
	Response string `json:"response"`
}
