package calendar

import "errors"

// ErrSyncTokenExpired indica que o provedor invalidou o cursor incremental e
// a próxima sincronização deve ser completa
var ErrSyncTokenExpired = errors.New("sync token expirado")
