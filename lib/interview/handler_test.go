package interview

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run(`дубликат ключа gorm check`, func(t *testing.T) {
		require.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
		require.True(t, isUniqueViolation(errors.Wrap(gorm.ErrDuplicatedKey, "ошибка создания интервью")))
	})

	t.Run(`нарушение уникальности postgres check`, func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505"}
		require.True(t, isUniqueViolation(pgErr))
		require.True(t, isUniqueViolation(fmt.Errorf("ошибка создания интервью: %w", pgErr)))
	})

	t.Run(`прочие ошибки postgres не считаются дубликатом check`, func(t *testing.T) {
		require.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	})

	t.Run(`прочие ошибки не считаются дубликатом check`, func(t *testing.T) {
		require.False(t, isUniqueViolation(nil))
		require.False(t, isUniqueViolation(errors.New("обрыв соединения")))
		require.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
	})
}
