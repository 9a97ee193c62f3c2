package translation

import "github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/document"

// Status is the lifecycle state of a translation row.
type Status string

const (
	// StatusPending marks a detected gap awaiting translation.
	StatusPending Status = "pending"
	// StatusTranslated marks text translated but not yet reviewed.
	StatusTranslated Status = "translated"
	// StatusReviewed marks translated text approved by a reviewer.
	StatusReviewed Status = "reviewed"
)

// Translation is one translated text field of one block in one language.
type Translation struct {
	TemplateID     string
	LanguageCode   string
	BlockID        string
	TranslationKey string
	TranslatedText string
	Status         Status
}

// Usable reports whether the row carries text the renderer may use.
// Pending rows and empty text are known gaps.
func (t Translation) Usable() bool {
	if t.TranslatedText == "" {
		return false
	}
	return t.Status == StatusTranslated || t.Status == StatusReviewed
}

// MapKey returns the row's key in a resolved translation map:
// "<blockId>_<translationKey>".
func (t Translation) MapKey() string {
	return document.MapKey(t.BlockID, t.TranslationKey)
}
