package catalog

// Hero identities.
const (
	HeroOlaf     = "hero_olaf"
	HeroPanza    = "hero_panz"
	HeroZaniah   = "hero_zaniah"
	HeroAsgaroth = "hero_lord"
)

// HeroDef describes one hero avatar. Talent and Mastery are display names;
// the ability logic lives in the game package keyed on the hero ID.
type HeroDef struct {
	ID      string
	Name    string
	Talent  string
	Mastery string
}

var heroDefs = []HeroDef{
	{ID: HeroOlaf, Name: "Olaf, El Conquistador", Talent: "Saqueo", Mastery: "Frenesí"},
	{ID: HeroPanza, Name: "Panzalegre el Bufón", Talent: "Dolor de Cabeza", Mastery: "Resaca"},
	{ID: HeroZaniah, Name: "Zaniah Selestia", Talent: "Escudo Mágico", Mastery: "Quiromancia"},
	{ID: HeroAsgaroth, Name: "Lord Asgaroth", Talent: "Heraldo del Vacío", Mastery: "Vacío Absoluto"},
}

var heroesByID = func() map[string]HeroDef {
	m := make(map[string]HeroDef, len(heroDefs))
	for _, def := range heroDefs {
		m[def.ID] = def
	}
	return m
}()

// Heroes returns all hero definitions in catalog order.
func Heroes() []HeroDef {
	out := make([]HeroDef, len(heroDefs))
	copy(out, heroDefs)
	return out
}

// LookupHero returns the definition for a hero identity.
func LookupHero(id string) (HeroDef, bool) {
	def, ok := heroesByID[id]
	return def, ok
}
