package journal

import (
	"context"

	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

type DBExecutor = txmanager.DBExecutor

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
