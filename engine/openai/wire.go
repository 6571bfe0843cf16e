package openai

// Client and server event shapes for the realtime WebSocket protocol.
// Only the fields this agent touches are modelled; everything else rides
// along as ignored JSON.

type clientEvent struct {
	Type     string          `json:"type"`
	Session  *sessionPatch   `json:"session,omitempty"`
	Response *responseParams `json:"response,omitempty"`
}

type sessionPatch struct {
	Instructions *string  `json:"instructions,omitempty"`
	Speed        *float64 `json:"speed,omitempty"`
	Voice        string   `json:"voice,omitempty"`
}

type responseParams struct {
	Instructions string `json:"instructions,omitempty"`
}

type serverEvent struct {
	Type  string            `json:"type"`
	Error *apiError         `json:"error,omitempty"`
	Item  *conversationItem `json:"item,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type conversationItem struct {
	ID      string        `json:"id"`
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type       string `json:"type"`
	Text       string `json:"text,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

// text returns the renderable text of a part, whichever field carries it.
func (p contentPart) text() string {
	if p.Text != "" {
		return p.Text
	}
	return p.Transcript
}
