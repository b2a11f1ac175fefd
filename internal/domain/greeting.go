package domain

// GreetingMessage is the fixed message returned by the greeting endpoint
const GreetingMessage = "Hare Krishna"

// Greeting wraps the greeting message; the endpoint serializes only the
// message itself as a bare JSON string
type Greeting struct {
	Message string `json:"message"`
}

// NewGreeting builds the constant greeting payload
func NewGreeting() *Greeting {
	return &Greeting{Message: GreetingMessage}
}
