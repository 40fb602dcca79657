package postgre

const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS plannings (
			id SERIAL PRIMARY KEY,
			guild_id BIGINT NOT NULL,
			date VARCHAR(10) NOT NULL,
			texte TEXT NOT NULL
		)`
	createIndexQuery = `CREATE INDEX IF NOT EXISTS plannings_guild_date_idx ON plannings (guild_id, date)`

	loadAllQuery    = `SELECT id, guild_id, date, texte FROM plannings ORDER BY id`
	insertQuery     = `INSERT INTO plannings (guild_id, date, texte) VALUES ($1, $2, $3)`
	deleteAllQuery  = `DELETE FROM plannings WHERE guild_id = $1`
	deleteDateQuery = `DELETE FROM plannings WHERE guild_id = $1 AND date = $2`
	countAllQuery   = `SELECT COUNT(*) FROM plannings WHERE guild_id = $1`
)
