package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createBaseTables(db); err != nil {
		return err
	}

	// The message column was added after launch to hold rejection reasons.
	if err := addMessageColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createBaseTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS parents (
			id SERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS teachers (
			id SERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			parent_id INTEGER NOT NULL REFERENCES parents(id)
		);

		CREATE TABLE IF NOT EXISTS meetings (
			id SERIAL PRIMARY KEY,
			parent_id INTEGER NOT NULL REFERENCES parents(id),
			teacher_id INTEGER NOT NULL REFERENCES teachers(id),
			student_id INTEGER NOT NULL REFERENCES students(id),
			meeting_date DATE NOT NULL,
			meeting_time TEXT NOT NULL,
			subject TEXT NOT NULL,
			reason TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending'
		);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create base tables: %v", err)
		return err
	}
	return nil
}

func addMessageColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'meetings'
				AND column_name = 'message'
			) THEN
				ALTER TABLE meetings ADD COLUMN message TEXT;
				RAISE NOTICE 'Added message column to meetings';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for message column: %v", err)
		return err
	}
	return nil
}
