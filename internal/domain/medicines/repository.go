package medicines

import "context"

// Repository guarda medicamentos por paciente. GetByID devuelve ErrNotFound
// cuando el id no existe; cualquier otro error es de infraestructura.
type Repository interface {
	Create(ctx context.Context, m Medicine) error
	GetByID(ctx context.Context, id string) (Medicine, error)
	ListByPatient(ctx context.Context, patientID string) ([]Medicine, error)
}
