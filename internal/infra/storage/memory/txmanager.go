package memory

import (
	"context"
	"sync"
)

type unitKey struct{}

// TxManager сериализует единицы работы над Store
// Вложенный вызов присоединяется к внешнему. При ошибке или панике
// откатываются только бронирования, измененные этой единицей работы
type TxManager struct {
	store *Store
	mu    sync.Mutex
}

// NewTxManager создает менеджер транзакций для хранилища
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn как одну единицу работы
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inUnit(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	j := newJournal()

	defer func() {
		if p := recover(); p != nil {
			m.store.undo(j)
			panic(p)
		}
		if err != nil {
			m.store.undo(j)
		}
	}()

	return fn(context.WithValue(ctx, unitKey{}, j))
}

// DoSerializable в памяти совпадает с Do: единицы работы и так выполняются по одной
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn под той же сериализацией
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func inUnit(ctx context.Context) bool {
	return unitJournal(ctx) != nil
}

// unitJournal возвращает журнал текущей единицы работы или nil вне ее
func unitJournal(ctx context.Context) *journal {
	j, _ := ctx.Value(unitKey{}).(*journal)
	return j
}
