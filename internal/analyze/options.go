package analyze

// DefaultMediaPlaceholder is the body an export writes for an attachment.
const DefaultMediaPlaceholder = "<Media omitted>"

const DefaultWordLimit = 20

// Options carries the lookup tables and limits shared by the aggregates.
// Zero fields fall back to the defaults.
type Options struct {
	MediaPlaceholder string
	Stopwords        Stopwords
	Emoji            EmojiInventory
	WordLimit        int
}

func (o Options) withDefaults() Options {
	if o.MediaPlaceholder == "" {
		o.MediaPlaceholder = DefaultMediaPlaceholder
	}
	if o.Stopwords == nil {
		o.Stopwords = DefaultStopwords()
	}
	if o.Emoji == nil {
		o.Emoji = DefaultEmoji
	}
	if o.WordLimit <= 0 {
		o.WordLimit = DefaultWordLimit
	}
	return o
}

func (o Options) isMedia(body string) bool {
	return body == o.MediaPlaceholder
}
