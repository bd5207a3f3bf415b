package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Taksonomi error level service. Outcome pendaftaran BUKAN error —
// lihat dto.EnrollResult di fitur registration.
var (
	ErrEntityNotFound     = errors.New("entity not found")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrInvalidState       = errors.New("invalid state")
)

// TranslateDBError memetakan error driver/gorm ke taksonomi service
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntityNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23 = integrity constraint violation (unique, FK, check)
		if strings.HasPrefix(pgErr.Code, "23") {
			return ErrIntegrityViolation
		}
	}
	// fallback untuk driver lain (mis. sqlite di test)
	msg := err.Error()
	if strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return ErrIntegrityViolation
	}
	return err
}

// IsTransientDBError: serialization failure / deadlock / koneksi putus.
// Hanya kelas ini yang boleh di-retry (transaksi diulang dari awal).
func IsTransientDBError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		}
		if strings.HasPrefix(pgErr.Code, "08") { // connection exceptions
			return true
		}
	}
	return false
}

const txRetryAttempts = 3

// RunTxWithRetry menjalankan fn dalam transaksi; retry terbatas untuk
// kegagalan transient, transaksi selalu diulang utuh (tidak pernah resume).
func RunTxWithRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < txRetryAttempts; attempt++ {
		err = db.Transaction(fn)
		if err == nil || !IsTransientDBError(err) {
			return err
		}
		time.Sleep(time.Duration(attempt+1) * 50 * time.Millisecond)
	}
	return err
}
