package dbmetrics

import "context"

type ctxKey struct{}

var executorKey ctxKey

// WithExecutor кладет активную транзакцию в context.
// Репозитории достают её через GetExecutor и выполняют запросы в рамках транзакции.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey, executor)
}

// GetExecutor возвращает executor из context, если там есть активная
// транзакция, иначе fallback (обычно основной *sql.DB или его обёртка)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction проверяет, есть ли в context активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(DBExecutor)
	return ok
}
