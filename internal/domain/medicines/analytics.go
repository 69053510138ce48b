package medicines

import (
	"context"

	"medication-adherence/internal/domain/adherence"
)

// AnalyticsMedicines expone los medicamentos del paciente al análisis de
// adherencia sin que adherence importe este paquete.
func (s *Service) AnalyticsMedicines(ctx context.Context, patientID string) ([]adherence.Medicine, error) {
	items, err := s.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	out := make([]adherence.Medicine, 0, len(items))
	for _, m := range items {
		out = append(out, adherence.Medicine{ID: m.ID, Name: m.Name})
	}
	return out, nil
}
