package orders

import (
	"context"

	"github.com/tponsmiquel/almacen/internal/domain"
	"github.com/tponsmiquel/almacen/internal/domain/repository"
)

// AuthorizeOrderUseCase autoriza un pedido completo: todas las salidas que comparten
// (cliente, fecha) con la salida indicada, no solo esa salida.
type AuthorizeOrderUseCase struct {
	exitRepo repository.ExitRepository
	txRunner TxRunner
}

// NewAuthorizeOrderUseCase construye el caso de uso. txRunner puede ser nil si no se
// va a usar la variante atómica.
func NewAuthorizeOrderUseCase(exitRepo repository.ExitRepository, txRunner TxRunner) *AuthorizeOrderUseCase {
	return &AuthorizeOrderUseCase{exitRepo: exitRepo, txRunner: txRunner}
}

// Authorize marca is_authorized en cada salida del grupo y persiste registro a registro.
// Es idempotente: repetirla sobre un grupo ya autorizado deja el mismo estado final.
// Si falla la escritura de un registro, las anteriores quedan confirmadas (sin rollback);
// quien necesite atomicidad debe usar AuthorizeAtomic. Devuelve el tamaño del grupo.
func (uc *AuthorizeOrderUseCase) Authorize(ctx context.Context, exitID string) (int, error) {
	return authorizeGroup(uc.exitRepo, exitID)
}

// AuthorizeAtomic hace lo mismo que Authorize pero dentro de una transacción:
// o se autoriza el grupo entero o no se escribe nada.
func (uc *AuthorizeOrderUseCase) AuthorizeAtomic(ctx context.Context, exitID string) (int, error) {
	var n int
	err := uc.txRunner.Run(ctx, func(exitRepo repository.ExitRepository) error {
		var err error
		n, err = authorizeGroup(exitRepo, exitID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func authorizeGroup(exitRepo repository.ExitRepository, exitID string) (int, error) {
	exit, err := exitRepo.GetByID(exitID)
	if err != nil {
		return 0, err
	}
	if exit == nil {
		return 0, domain.ErrNotFound
	}
	group, err := exitRepo.ListByClientAndDate(exit.ClientID, exit.Date)
	if err != nil {
		return 0, err
	}
	for _, e := range group {
		e.IsAuthorized = true
		if err := exitRepo.Update(e); err != nil {
			return 0, err
		}
	}
	return len(group), nil
}
