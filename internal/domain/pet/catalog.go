package pet

type Species string

const (
	SpeciesDog   Species = "perro"
	SpeciesCat   Species = "gato"
	SpeciesOther Species = "otro"
)

type Sex string

const (
	SexMale   Sex = "macho"
	SexFemale Sex = "hembra"
)

type Size string

const (
	SizeSmall  Size = "chico"
	SizeMedium Size = "mediano"
	SizeLarge  Size = "grande"
)

func ValidSpecies(s string) bool {
	switch Species(s) {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

func ValidSex(s string) bool {
	return Sex(s) == SexMale || Sex(s) == SexFemale
}

func ValidSize(s string) bool {
	switch Size(s) {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Filter para el listado; campos vacíos no filtran.
type Filter struct {
	Species       string
	Sex           string
	Size          string
	Status        string
	OnlyAvailable bool
	Query         string
	Limit         int
	Offset        int
}
