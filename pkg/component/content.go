package component

// Heading is a section heading at a fixed depth between 1 and 6.
type Heading struct {
	text   string
	level  int
	styles Styles
}

// NewHeading constructs a Heading. level must be in [1,6].
func NewHeading(text string, level int, options ...StyleOption) (Heading, error) {
	if level < 1 || level > 6 {
		return Heading{}, newValidationError(KindHeading, "level", "must be between 1 and 6")
	}
	return Heading{
		text:   text,
		level:  level,
		styles: applyStyleOptions(options),
	}, nil
}

func (h Heading) Kind() Kind      { return KindHeading }
func (h Heading) Styling() Styles { return h.styles }
func (h Heading) Text() string    { return h.text }
func (h Heading) Level() int      { return h.level }

// Text is a paragraph of body copy.
type Text struct {
	text   string
	styles Styles
}

// NewText constructs a Text paragraph.
func NewText(text string, options ...StyleOption) Text {
	return Text{
		text:   text,
		styles: applyStyleOptions(options),
	}
}

func (t Text) Kind() Kind      { return KindText }
func (t Text) Styling() Styles { return t.styles }
func (t Text) Text() string    { return t.text }

// Button is a clickable button element.
type Button struct {
	text   string
	styles Styles
}

// NewButton constructs a Button.
func NewButton(text string, options ...StyleOption) Button {
	return Button{
		text:   text,
		styles: applyStyleOptions(options),
	}
}

func (b Button) Kind() Kind      { return KindButton }
func (b Button) Styling() Styles { return b.styles }
func (b Button) Text() string    { return b.text }
