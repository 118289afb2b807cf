package entity

// Industry representa una clasificación de industria. El code lo
// suministra el cliente (no se deriva de un slug como en Company).
type Industry struct {
	Code string
	Name string
}

// IndustryWithCompanies agregado de listado: una industria junto con los
// codes de las empresas asociadas vía la tabla de unión. Una industria
// sin asociaciones lleva Companies vacío, nunca un marcador nulo.
type IndustryWithCompanies struct {
	Industry
	Companies []string
}
