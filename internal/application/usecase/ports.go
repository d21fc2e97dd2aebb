package usecase

import (
	"context"

	"github.com/jhoicas/inventario-api/internal/domain/cascade"
)

// CascadeRunner ejecuta un plan de cascada contra el almacén. La
// implementación de postgres envuelve el plan completo en una transacción;
// los pasos están ordenados hojas-primero, así que una implementación sin
// transacciones tampoco deja referencias colgantes si se interrumpe.
type CascadeRunner interface {
	Execute(ctx context.Context, plan cascade.Plan) (cascade.Result, error)
}
