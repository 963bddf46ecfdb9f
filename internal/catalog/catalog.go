// Package catalog holds the salon's fixed content: wig styles, tips and the
// canonical contact block.
package catalog

import "fmt"

const (
	WhatsAppLine  = "📞 WhatsApp: +254706360967"
	InstagramLine = "📸 Instagram: @mercellinas_hair"

	// ContactBlock is the only contact information MIA may ever hand out.
	ContactBlock = WhatsAppLine + "\n" + InstagramLine

	Welcome = "👋 Hey there, beauty queen! I'm MIA – your glam guru from Mercellinas Hair. 💁‍♀️\n" +
		"Ask me anything about wigs, fashion, or nails – or tap a style below! 💇‍♀️"

	TipPrefix      = "💡 Tip: "
	BonusTipPrefix = "💖 Bonus Tip: "
)

// Style is a wig style and the image shown for it.
type Style struct {
	Name      string
	ImagePath string
}

var styles = []Style{
	{Name: "Pixie", ImagePath: "wig_images/pixie.jpg"},
	{Name: "Bob", ImagePath: "wig_images/bob.jpg"},
	{Name: "Fringe", ImagePath: "wig_images/fringe.jpg"},
	{Name: "Frontal", ImagePath: "wig_images/frontal.jpg"},
}

var tips = []string{
	"💇 Did you know? Wigs were popular in ancient Egypt to protect shaved scalps from the sun! ☀️",
	"💃 A great hairstyle boosts your confidence and your mood!",
	"💅 Complete your look with well-done nails – it's all about details!",
	"🌈 Bob wigs come in countless colors – dare to try something bold!",
	"💁‍♀️ Got a round face? Try long layers or side-swept bangs to elongate your look!",
	"😌 Oval face? Lucky you – most styles will suit you beautifully!",
	"😎 Heart-shaped face? A chin-length bob or soft curls can balance your features!",
	"🧖‍♀️ Square face? Try soft waves or layered styles to soften your angles!",
}

// Styles returns the catalog in display order. The slice is a copy.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// Lookup finds a style by its exact name.
func Lookup(name string) (Style, bool) {
	for _, s := range styles {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}

// Tips returns the tip pool. The slice is a copy.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// WelcomeText is the /start greeting followed by the contact block.
func WelcomeText() string {
	return Welcome + "\n\n" + ContactBlock
}

// Caption is the text sent under a style's photo.
func Caption(style string) string {
	return fmt.Sprintf("✨ Check out our %s wig – stylish and fabulous! 💇‍♀️\nGot questions? Just ask MIA! 💬\n\n%s",
		style, ContactBlock)
}
