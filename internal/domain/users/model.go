package users

import "fmt"

// User representa un paciente/afiliado registrado.
// name funciona como clave natural de búsqueda; la unicidad
// se exige en el handler, no en la entidad.
type User struct {
	UUID          string `json:"uuid"`
	Name          string `json:"name"`
	BranchName    string `json:"branchName"`
	BranchAddress string `json:"branchAddress"`
	Ailments      string `json:"ailments"`
	PhoneNumber   string `json:"phoneNumber"`
}

// ValidateStored chequea la forma rehidratada desde storage.
// A diferencia del alta (donde el uuid se ignora y se regenera),
// acá el uuid ya tiene que venir asignado.
func (u User) ValidateStored() error {
	if u.UUID == "" {
		return fmt.Errorf("%w: stored user missing uuid", ErrInvalidInput)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: stored user missing name", ErrInvalidInput)
	}
	return nil
}
