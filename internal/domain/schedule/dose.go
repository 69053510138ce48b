package schedule

import "math"

// maxNumericValue acota doseCount/durationDays que vienen del proveedor. Más
// allá de esto la conversión a int desborda; se trata como valor ausente.
const maxNumericValue = math.MaxInt32

// RoundDose aplica la cuantización por tipo. Es el único punto por donde pasa
// cualquier doseCount, venga de voz o de imagen.
//   - tablet/other: entero más cercano, mínimo 1.
//   - syrup: múltiplo de 5 más cercano (ml), mínimo 5.
//
// math.Round redondea half-away-from-zero.
func RoundDose(v float64, t MedicineType) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxNumericValue {
		return DefaultDose(t)
	}

	if t == TypeSyrup {
		n := int(math.Round(v/5)) * 5
		if n < defaultSyrupDose {
			return defaultSyrupDose
		}
		return n
	}

	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

// DefaultDose es el valor previo al redondeo cuando falta doseCount.
func DefaultDose(t MedicineType) int {
	if t == TypeSyrup {
		return defaultSyrupDose
	}
	return defaultTabletDose
}
