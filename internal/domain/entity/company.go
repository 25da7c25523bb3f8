package entity

// Company representa una empresa registrada en el sistema.
// El código es el identificador primario: se deriva del nombre al crear
// (ver domain/slug) y es inmutable; solo name y description son editables.
type Company struct {
	Code        string
	Name        string
	Description string
}
