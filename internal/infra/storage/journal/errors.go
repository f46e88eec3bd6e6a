package journal

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("journal.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("journal.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("journal.repository: failed to scan row")

	// ErrCorrupted возвращается, когда строки журнала противоречат друг другу
	ErrCorrupted = errors.New("journal.repository: corrupted journal")
)
