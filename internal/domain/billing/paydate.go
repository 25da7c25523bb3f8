// Package billing contiene la lógica pura de estado de pago de facturas.
package billing

import "time"

// ResolvePaidDate calcula la próxima paid_date de una factura a partir de la
// fecha persistida y del flag paid solicitado. Es una función pura: el caller
// (el caso de uso) es el único que lee el reloj y pasa now.
//
//   - paid=true y sin fecha previa: transición a pagada, se fija la fecha de now.
//   - paid=false: transición a no pagada (o se mantiene), la fecha se limpia.
//   - paid=true con fecha previa: ya estaba pagada, la fecha no se mueve
//     (re-marcar como pagada es idempotente).
//
// Ningún otro camino del código puede asignar paid_date.
func ResolvePaidDate(current *time.Time, paid bool, now time.Time) *time.Time {
	if !paid {
		return nil
	}
	if current != nil {
		return current
	}
	d := DateOnly(now)
	return &d
}

// DateOnly trunca un instante a su fecha (medianoche UTC); paid_date y
// add_date son columnas DATE y se comparan sin componente horario.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
