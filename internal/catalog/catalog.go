// Package catalog holds the immutable card and hero definitions for
// Tartapies. It is pure data: every other package consumes it by lookup
// and never mutates it.
package catalog

// Category classifies a card definition.
type Category string

const (
	CategoryPoint    Category = "POINT"
	CategoryAttack   Category = "ATTACK_ITEM"
	CategoryDefense  Category = "DEFENSE_ITEM"
	CategoryRelic    Category = "RELIC"
	CategoryFaction  Category = "FACTION"
	CategoryPotion   Category = "POTION"
	CategorySuper    Category = "SUPER_ITEM"
	CategoryHeroCard Category = "HERO"
)

// CardDef is one entry of the card database. Copies is the number of
// instances the deck builder creates for a fresh session.
type CardDef struct {
	ID          string
	Name        string
	Category    Category
	PointValue  int
	Copies      int
	Description string
}

// Card identities. Effect handlers in the game package are keyed on these.
const (
	CardTartapie      = "tar_std"
	CardDobleTartapie = "tar_dbl"
	CardManzanaReal   = "tar_man"

	CardZarpatrampa   = "atk_zar"
	CardPetardobomba  = "atk_pet"
	CardLevitasuero   = "atk_lev"
	CardHierbafrenesi = "atk_hie"

	CardTratado     = "def_tra"
	CardNieblabomba = "def_nie"
	CardSueroDePaz  = "def_sue"

	CardVoluntadDeAldia = "rel_vol"
	CardCaosrubi        = "rel_cao"
	CardOrdenAbsoluto   = "rel_ord"

	CardAldia  = "fac_ald"
	CardGremio = "fac_gre"
	CardNume   = "fac_num"

	CardCeleridad   = "pot_cel"
	CardNigromancia = "pot_nig"

	CardSabotajeador = "sup_sab"
	CardEscudo       = "sup_esc"
)

// cardDefs is the full deck-buildable card database. Heroes are listed
// separately and never enter the deck.
var cardDefs = []CardDef{
	{ID: CardTartapie, Name: "Tartapie", Category: CategoryPoint, PointValue: 1, Copies: 20, Description: "Delicioso."},
	{ID: CardDobleTartapie, Name: "Doble Tartapie", Category: CategoryPoint, PointValue: 2, Copies: 1, Description: "Vale por 2 Tartapies."},
	{ID: CardManzanaReal, Name: "Tartapie y Manzana Real", Category: CategoryPoint, PointValue: 1, Copies: 1, Description: "Busca otro Tartapie al jugar."},

	{ID: CardZarpatrampa, Name: "Zarpatrampa", Category: CategoryAttack, Copies: 2, Description: "Roba un Tartapie de otro jugador."},
	{ID: CardPetardobomba, Name: "Petardobomba", Category: CategoryAttack, Copies: 2, Description: "Mezcla Tartapie enemigo en el mazo."},
	{ID: CardLevitasuero, Name: "Levitasuero", Category: CategoryAttack, Copies: 2, Description: "Devuelve Tartapie a la mano."},
	{ID: CardHierbafrenesi, Name: "Hierbafrenesí", Category: CategoryAttack, Copies: 2, Description: "Roba 2. Si sale Tartapie, juégalo."},

	{ID: CardTratado, Name: "Tratado de Granalianza", Category: CategoryDefense, Copies: 2, Description: "Niega un Item de Ataque/Defensa."},
	{ID: CardNieblabomba, Name: "Nieblabomba Vaporosa", Category: CategoryDefense, Copies: 2, Description: "Si otro juega Tartapie, róbalo."},
	{ID: CardSueroDePaz, Name: "Suero de la Paz", Category: CategoryDefense, Copies: 2, Description: "Niega una Habilidad de Héroe."},

	{ID: CardVoluntadDeAldia, Name: "Voluntad de Aldia", Category: CategoryRelic, Copies: 1, Description: "Roba 1. Gira/Endereza un Héroe."},
	{ID: CardCaosrubi, Name: "Caosrubí", Category: CategoryRelic, Copies: 1, Description: "Talento sin dado o Maestría gratis."},
	{ID: CardOrdenAbsoluto, Name: "Orden Absoluto", Category: CategoryRelic, Copies: 1, Description: "Niega Reliquia o Destruye Facción."},

	{ID: CardAldia, Name: "Aldia Guardiadestino", Category: CategoryFaction, PointValue: 1, Copies: 1, Description: "+1 Tartapie. +1 extra si hay otra facción."},
	{ID: CardGremio, Name: "El Gremio", Category: CategoryFaction, PointValue: 1, Copies: 1, Description: "+1 Tartapie. Mira mano oponente."},
	{ID: CardNume, Name: "Nume el Vacío", Category: CategoryFaction, PointValue: 0, Copies: 1, Description: "+0 Tartapies."},

	{ID: CardCeleridad, Name: "Poción de Celeridad", Category: CategoryPotion, Copies: 1, Description: "Roba 2 cartas."},
	{ID: CardNigromancia, Name: "Poción de Nigromancia", Category: CategoryPotion, Copies: 1, Description: "Al jugar Tartapie: Recupéralo del descarte."},

	{ID: CardSabotajeador, Name: "Sabotajeador", Category: CategorySuper, Copies: 1, Description: "Recupera Item del descarte."},
	{ID: CardEscudo, Name: "Escudo de Granalianza", Category: CategorySuper, Copies: 1, Description: "Niega pérdida de Tartapie."},
}

var cardsByID = func() map[string]CardDef {
	m := make(map[string]CardDef, len(cardDefs))
	for _, def := range cardDefs {
		m[def.ID] = def
	}
	return m
}()

// Cards returns the deck-buildable card definitions in catalog order.
func Cards() []CardDef {
	out := make([]CardDef, len(cardDefs))
	copy(out, cardDefs)
	return out
}

// Lookup returns the definition for a card identity.
func Lookup(id string) (CardDef, bool) {
	def, ok := cardsByID[id]
	return def, ok
}

// DeckSize returns the number of card instances a fresh deck contains.
func DeckSize() int {
	total := 0
	for _, def := range cardDefs {
		total += def.Copies
	}
	return total
}
