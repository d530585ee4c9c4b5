package application

import "regexp"

var (
	nonChiffres        = regexp.MustCompile(`[^0-9]`)
	nonLettres         = regexp.MustCompile(`[^a-zA-ZÀ-ÿ ]`)
	nonLettresChiffres = regexp.MustCompile(`[^a-zA-Z0-9À-ÿ ]`)
)

// ControleChamps normalizes free-text form fields the way the old dashboard
// masked its inputs while typing: strip what the field must not contain
// rather than reject the whole value.
type ControleChamps struct{}

// Chiffres keeps digits only.
func (ControleChamps) Chiffres(mot string) string {
	return nonChiffres.ReplaceAllString(mot, "")
}

// Lettres keeps letters (accents included) and spaces.
func (ControleChamps) Lettres(mot string) string {
	return nonLettres.ReplaceAllString(mot, "")
}

// LettresChiffres keeps letters, digits and spaces.
func (ControleChamps) LettresChiffres(mot string) string {
	return nonLettresChiffres.ReplaceAllString(mot, "")
}

// Taille truncates mot to at most n bytes' worth of runes.
func (ControleChamps) Taille(mot string, n int) string {
	runes := []rune(mot)
	if len(runes) > n {
		return string(runes[:n])
	}
	return mot
}
