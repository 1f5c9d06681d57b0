package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/migrations"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	entriesTable  = "entries"
	usersTable    = "users"
	keyringsTable = "keyrings"
)

var entryColumns = []string{
	"id",
	"owner_id",
	"title",
	"username",
	"secret",
	"url",
	"notes",
	"created_at",
	"updated_at",
}

// queryBuilder renders the statements shared by PostgreSQL and SQLite. Only
// the placeholder format differs between them.
type queryBuilder struct {
	sq.StatementBuilderType
}

func newQueryBuilder(dialect migrations.Dialect) queryBuilder {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		format = sq.Dollar
	}
	return queryBuilder{sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q queryBuilder) insertEntry(e models.Entry) (string, []any, error) {
	return q.Insert(entriesTable).
		Columns(entryColumns...).
		Values(e.ID, e.OwnerID, e.Title, e.Username, e.Secret, e.URL, e.Notes, e.CreatedAt, e.UpdatedAt).
		ToSql()
}

func (q queryBuilder) selectEntriesByOwner(ownerID int64) (string, []any, error) {
	return q.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (q queryBuilder) selectEntryByID(ownerID int64, id string) (string, []any, error) {
	return q.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func (q queryBuilder) updateEntry(e models.Entry) (string, []any, error) {
	return q.Update(entriesTable).
		Set("title", e.Title).
		Set("username", e.Username).
		Set("secret", e.Secret).
		Set("url", e.URL).
		Set("notes", e.Notes).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID}).
		Where(sq.Eq{"owner_id": e.OwnerID}).
		ToSql()
}

func (q queryBuilder) deleteEntry(ownerID int64, id string) (string, []any, error) {
	return q.Delete(entriesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func (q queryBuilder) insertUser(u models.User) (string, []any, error) {
	return q.Insert(usersTable).
		Columns("login", "auth_hash", "encryption_salt", "encrypted_master_key").
		Values(u.Login, u.AuthHash, u.EncryptionSalt, u.EncryptedMasterKey).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func (q queryBuilder) selectUserByLogin(login string) (string, []any, error) {
	return q.Select("user_id", "login", "auth_hash", "encryption_salt", "encrypted_master_key", "created_at").
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func (q queryBuilder) selectKeyring(ownerID int64) (string, []any, error) {
	return q.Select("owner_id", "salt", "wrapped_key", "created_at").
		From(keyringsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func (q queryBuilder) insertKeyring(k models.Keyring) (string, []any, error) {
	return q.Insert(keyringsTable).
		Columns("owner_id", "salt", "wrapped_key", "created_at").
		Values(k.OwnerID, k.Salt, k.WrappedKey, k.CreatedAt).
		ToSql()
}
