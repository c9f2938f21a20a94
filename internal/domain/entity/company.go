package entity

import "time"

// Estados de empresa usados por el backend.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company representa una empresa de transporte (enfoque Colombia: NIT como identificación tributaria).
type Company struct {
	ID        string
	Name      string
	NIT       string
	Email     string
	Phone     string
	Address   string
	Status    string
	CreatedAt time.Time
}
