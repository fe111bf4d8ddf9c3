package service

import (
	"github.com/barberhub/booking-service/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД:
// ему удовлетворяют *sql.DB, *sql.Tx и обертки с метриками
type DBExecutor = dbmetrics.DBExecutor
