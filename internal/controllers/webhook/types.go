package webhook

// EventPayload is the envelope the messaging platform POSTs to the webhook
// endpoint. Only the fields this service reads are modeled; everything else
// in the delivery is ignored.
type EventPayload struct {
	Entry []Entry `json:"entry"`
}

type Entry struct {
	Changes []Change `json:"changes"`
}

type Change struct {
	Value ChangeValue `json:"value"`
}

// ChangeValue carries the messages and contacts for one delivery. Status
// and reaction deliveries arrive with these slices empty.
type ChangeValue struct {
	Messages []InboundMessage `json:"messages"`
	Contacts []Contact        `json:"contacts"`
}

type InboundMessage struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *TextContent `json:"text"`
}

type TextContent struct {
	Body string `json:"body"`
}

type Contact struct {
	WaID    string         `json:"wa_id"`
	Profile ContactProfile `json:"profile"`
}

type ContactProfile struct {
	Name string `json:"name"`
}

// InboundEvent is the flattened view the handler works with.
type InboundEvent struct {
	// WaID is the sender's stable WhatsApp identity.
	WaID string
	// Name is the sender's current display name; latest value wins.
	Name string
	// Text is the raw message body before normalization.
	Text string
}

// FirstInbound extracts the first message and first contact from the
// payload. Any missing piece of the nested structure reports ok=false so
// the caller can acknowledge and move on instead of failing the delivery.
func (p EventPayload) FirstInbound() (InboundEvent, bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return InboundEvent{}, false
	}
	value := p.Entry[0].Changes[0].Value
	if len(value.Messages) == 0 || len(value.Contacts) == 0 {
		return InboundEvent{}, false
	}
	msg := value.Messages[0]
	contact := value.Contacts[0]
	if msg.Text == nil || contact.WaID == "" {
		return InboundEvent{}, false
	}
	return InboundEvent{
		WaID: contact.WaID,
		Name: contact.Profile.Name,
		Text: msg.Text.Body,
	}, true
}

// AckResponse is the fixed body returned for every event delivery,
// whatever happened internally.
type AckResponse struct {
	Status string `json:"status"`
}
