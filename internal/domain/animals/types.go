package animals

// AnimalType define las especies soportadas.
type AnimalType string

const (
	TypeSheep  AnimalType = "SHEEP"
	TypeLamb   AnimalType = "LAMB"
	TypeGoat   AnimalType = "GOAT"
	TypeCattle AnimalType = "CATTLE"
	TypePig    AnimalType = "PIG"
)

// ValidTypes lista las especies aceptadas, en orden estable.
func ValidTypes() []AnimalType {
	return []AnimalType{TypeSheep, TypeLamb, TypeGoat, TypeCattle, TypePig}
}

func (t AnimalType) IsValid() bool {
	switch t {
	case TypeSheep, TypeLamb, TypeGoat, TypeCattle, TypePig:
		return true
	}
	return false
}
