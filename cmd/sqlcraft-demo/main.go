package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	sqlcraft "github.com/avisio/sqlcraft"
)

// A small end to end walkthrough against a MySQL instance. The DSN comes
// from SQLCRAFT_DSN, e.g. "user:pass@tcp(127.0.0.1:3306)/demo".
func main() {
	dsn := os.Getenv("SQLCRAFT_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "SQLCRAFT_DSN is not set")
		os.Exit(1)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	builder, err := sqlcraft.NewBuilder("mysql",
		sqlcraft.ConnectionInfo{Driver: "mysql", DSN: dsn},
		sqlcraft.WithMiddleware(sqlcraft.LoggingMiddleware(logger)),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer builder.Close()

	ctx := context.Background()
	id := sqlcraft.Col("id", sqlcraft.ColInt)
	name := sqlcraft.Col("name", sqlcraft.ColString)

	err = builder.CreateTableIfNotExists(ctx, "people", func(c *sqlcraft.Create) {
		c.WithIDColumn().Columns(
			sqlcraft.Define("name", sqlcraft.Varchar(255)).WithModifiers(sqlcraft.NotNull),
		)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	people := builder.ForTable("people")
	insert := people.Insert().Values(
		sqlcraft.Val(id, 0),
		sqlcraft.Val(name, "ada"),
	)
	if err := insert.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	first, ok, err := sqlcraft.SelectOneFrom[string](people, name).
		Where(sqlcraft.Eq(name, "ada")).
		FirstResult(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if ok {
		fmt.Println("found:", first)
	}
}
