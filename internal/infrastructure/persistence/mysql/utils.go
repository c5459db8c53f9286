package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlErrDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
const mysqlErrDuplicateEntry = 1062

// isDuplicateError reports whether err is a unique-index violation. Racing
// writers can slip past the service's own pre-check; the constraint error is
// translated into the same Conflict taxonomy here.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}
