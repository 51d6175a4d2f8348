// Package store exports extracted datasets to SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // Registers the "sqlite" driver.

	"github.com/dfr-tools/dfrgram/pkg/metadata"
)

const driverName = "sqlite"

const schema = `
CREATE TABLE articles (
	id    TEXT PRIMARY KEY,
	type  TEXT NOT NULL,
	title TEXT NOT NULL,
	auth1 TEXT NOT NULL,
	year  INTEGER NOT NULL,
	lang  TEXT NOT NULL
);
CREATE INDEX idx_articles_year_type ON articles (year, type);
CREATE TABLE citations (
	id               TEXT NOT NULL,
	title            TEXT NOT NULL,
	article_author   TEXT NOT NULL,
	citation_author  TEXT NOT NULL,
	citation_source  TEXT NOT NULL,
	citation_year    TEXT NOT NULL,
	citation_general TEXT NOT NULL
);
CREATE INDEX idx_citations_id ON citations (id);
`

const (
	insertArticle = `INSERT INTO articles (id, type, title, auth1, year, lang) VALUES (?, ?, ?, ?, ?, ?)`

	insertCitation = `INSERT INTO citations
		(id, title, article_author, citation_author, citation_source, citation_year, citation_general)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// ExportSQLite writes ds into a new SQLite database at path, replacing any
// existing file. All rows are inserted in one transaction.
func ExportSQLite(ctx context.Context, path string, ds metadata.Dataset) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old database: %w", err)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit.

	err = insertArticles(ctx, tx, ds.Articles)
	if err != nil {
		return err
	}

	err = insertCitations(ctx, tx, ds.Citations)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func insertArticles(ctx context.Context, tx *sql.Tx, articles []metadata.Article) error {
	stmt, err := tx.PrepareContext(ctx, insertArticle)
	if err != nil {
		return fmt.Errorf("prepare article insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		_, err = stmt.ExecContext(ctx, a.ID, a.Type, a.Title, a.Author, a.Year, a.Lang)
		if err != nil {
			return fmt.Errorf("insert article %s: %w", a.ID, err)
		}
	}

	return nil
}

func insertCitations(ctx context.Context, tx *sql.Tx, citations []metadata.Citation) error {
	stmt, err := tx.PrepareContext(ctx, insertCitation)
	if err != nil {
		return fmt.Errorf("prepare citation insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range citations {
		_, err = stmt.ExecContext(ctx,
			c.ArticleID, c.Title, c.ArticleAuthor, c.CitationAuthor,
			c.CitationSource, c.CitationYear, c.CitationGeneral)
		if err != nil {
			return fmt.Errorf("insert citation of %s: %w", c.ArticleID, err)
		}
	}

	return nil
}
