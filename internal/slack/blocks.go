// Package slack renders structured meeting reports into Slack Block Kit
// payloads and posts them through the chat.postMessage Web API.
package slack

// Block types used by the report message. Every block carries a type
// discriminator; the Web API rejects blocks without one.
const (
	BlockTypeHeader  = "header"
	BlockTypeSection = "section"
	BlockTypeDivider = "divider"
	BlockTypeContext = "context"

	TextTypePlain    = "plain_text"
	TextTypeMarkdown = "mrkdwn"
)

// Text is a Block Kit text object.
type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// Block is a single unit of a Block Kit message layout.
type Block struct {
	Type     string `json:"type"`
	Text     *Text  `json:"text,omitempty"`
	Elements []Text `json:"elements,omitempty"`
}

// Message is a renderable Slack message: an ordered block sequence plus the
// flat fallback text shown in notifications.
type Message struct {
	Blocks []Block `json:"blocks"`
	Text   string  `json:"text"`
}

// Header builds a header block with plain text.
func Header(text string) Block {
	return Block{
		Type: BlockTypeHeader,
		Text: &Text{Type: TextTypePlain, Text: text, Emoji: true},
	}
}

// Section builds a section block with mrkdwn text.
func Section(markdown string) Block {
	return Block{
		Type: BlockTypeSection,
		Text: &Text{Type: TextTypeMarkdown, Text: markdown},
	}
}

// Divider builds a divider block.
func Divider() Block {
	return Block{Type: BlockTypeDivider}
}

// Context builds a context block with a single mrkdwn element.
func Context(markdown string) Block {
	return Block{
		Type:     BlockTypeContext,
		Elements: []Text{{Type: TextTypeMarkdown, Text: markdown}},
	}
}
