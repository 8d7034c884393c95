package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB       *sql.DB
	Expenses sqlconfig.IExpensesTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
	}

	table := sqlconfig.NewExpensesTable(db)

	return &Storage{
		DB:       db,
		Expenses: &table,
	}
}
