package entity

// Company representa una empresa registrada.
// El code es la clave primaria: se deriva del nombre (slug) al crear
// y puede cambiar en un update (actúa como rename).
type Company struct {
	Code        string
	Name        string
	Description string
}
