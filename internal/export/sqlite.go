// ABOUTME: SQLite snapshot writer: renders an export as a standalone .db file.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// snapshotSchema mirrors the store's tables as plain relational rows so the
// export can be inspected with any SQLite client.
const snapshotSchema = `
CREATE TABLE exercises (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	muscle TEXT NOT NULL,
	equipment TEXT NOT NULL,
	category TEXT NOT NULL,
	image TEXT
);

CREATE TABLE workouts (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	start_time DATETIME NOT NULL,
	end_time DATETIME,
	status TEXT NOT NULL,
	volume REAL
);

CREATE TABLE sets (
	id INTEGER PRIMARY KEY,
	workout_id INTEGER NOT NULL,
	exercise_id INTEGER NOT NULL,
	weight REAL NOT NULL,
	reps INTEGER NOT NULL,
	rpe REAL,
	timestamp DATETIME NOT NULL,
	warmup INTEGER NOT NULL,
	FOREIGN KEY (workout_id) REFERENCES workouts(id),
	FOREIGN KEY (exercise_id) REFERENCES exercises(id)
);

CREATE TABLE routines (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	exercises TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE daily_logs (
	id INTEGER PRIMARY KEY,
	date TEXT NOT NULL,
	sleep_hours REAL,
	sleep_quality INTEGER,
	mood INTEGER,
	energy INTEGER,
	soreness TEXT,
	notes TEXT,
	habits_completed TEXT
);

CREATE TABLE habits (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	icon TEXT,
	frequency TEXT NOT NULL,
	target_count INTEGER,
	streak INTEGER NOT NULL,
	archived INTEGER NOT NULL
);

CREATE TABLE notes (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	type TEXT NOT NULL,
	date DATETIME NOT NULL,
	tags TEXT
);

CREATE TABLE media (
	id INTEGER PRIMARY KEY,
	note_id INTEGER NOT NULL,
	mime TEXT NOT NULL,
	blob BLOB NOT NULL,
	FOREIGN KEY (note_id) REFERENCES notes(id)
);

CREATE TABLE measurements (
	id INTEGER PRIMARY KEY,
	date DATETIME NOT NULL,
	weight REAL,
	body_fat REAL,
	chest REAL,
	waist REAL,
	arms REAL,
	legs REAL,
	notes TEXT
);

CREATE TABLE nutrition_logs (
	id INTEGER PRIMARY KEY,
	date DATETIME NOT NULL,
	name TEXT NOT NULL,
	meal_type TEXT NOT NULL,
	calories INTEGER NOT NULL,
	protein REAL NOT NULL,
	carbs REAL NOT NULL,
	fat REAL NOT NULL
);

CREATE INDEX idx_sets_workout ON sets(workout_id);
CREATE INDEX idx_sets_exercise ON sets(exercise_id);
CREATE INDEX idx_daily_logs_date ON daily_logs(date);
CREATE INDEX idx_nutrition_logs_date ON nutrition_logs(date);
`

// WriteSQLite writes the snapshot as a fresh SQLite database at path. An
// existing file at path is an error; snapshots never overwrite.
func (s *Snapshot) WriteSQLite(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("create snapshot database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(snapshotSchema); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot write: %w", err)
	}
	defer tx.Rollback()

	if err := s.writeRows(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (s *Snapshot) writeRows(tx *sql.Tx) error {
	for _, e := range s.Exercises {
		_, err := tx.Exec(
			`INSERT INTO exercises (id, name, muscle, equipment, category, image) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Muscle, e.Equipment, e.Category, nullStr(e.Image))
		if err != nil {
			return fmt.Errorf("write exercise %d: %w", e.ID, err)
		}
	}

	for _, w := range s.Workouts {
		_, err := tx.Exec(
			`INSERT INTO workouts (id, name, start_time, end_time, status, volume) VALUES (?, ?, ?, ?, ?, ?)`,
			w.ID, w.Name, w.StartTime.Format(time.RFC3339Nano),
			nullTime(w.EndTime), string(w.Status), w.Volume)
		if err != nil {
			return fmt.Errorf("write workout %d: %w", w.ID, err)
		}
	}

	for _, set := range s.Sets {
		_, err := tx.Exec(
			`INSERT INTO sets (id, workout_id, exercise_id, weight, reps, rpe, timestamp, warmup) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			set.ID, set.WorkoutID, set.ExerciseID, set.Weight, set.Reps,
			set.RPE, set.Timestamp.Format(time.RFC3339Nano), set.Warmup)
		if err != nil {
			return fmt.Errorf("write set %d: %w", set.ID, err)
		}
	}

	for _, r := range s.Routines {
		exercises, err := json.Marshal(r.Exercises)
		if err != nil {
			return fmt.Errorf("encode routine %d: %w", r.ID, err)
		}
		_, err = tx.Exec(
			`INSERT INTO routines (id, name, exercises, updated_at) VALUES (?, ?, ?, ?)`,
			r.ID, r.Name, string(exercises), r.UpdatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("write routine %d: %w", r.ID, err)
		}
	}

	for _, d := range s.DailyLogs {
		habits, err := json.Marshal(d.HabitsCompleted)
		if err != nil {
			return fmt.Errorf("encode daily log %d: %w", d.ID, err)
		}
		_, err = tx.Exec(
			`INSERT INTO daily_logs (id, date, sleep_hours, sleep_quality, mood, energy, soreness, notes, habits_completed) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.Date, d.SleepHours, d.SleepQuality, d.Mood, d.Energy,
			nullStr(strings.Join(d.Soreness, ",")), d.Notes, string(habits))
		if err != nil {
			return fmt.Errorf("write daily log %d: %w", d.ID, err)
		}
	}

	for _, h := range s.Habits {
		_, err := tx.Exec(
			`INSERT INTO habits (id, name, icon, frequency, target_count, streak, archived) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, nullStr(h.Icon), string(h.Frequency),
			h.TargetCount, h.Streak, h.Archived)
		if err != nil {
			return fmt.Errorf("write habit %d: %w", h.ID, err)
		}
	}

	for _, n := range s.Notes {
		_, err := tx.Exec(
			`INSERT INTO notes (id, title, content, type, date, tags) VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Content, string(n.Type),
			n.Date.Format(time.RFC3339Nano), nullStr(strings.Join(n.Tags, ",")))
		if err != nil {
			return fmt.Errorf("write note %d: %w", n.ID, err)
		}
	}

	for _, m := range s.Media {
		_, err := tx.Exec(
			`INSERT INTO media (id, note_id, mime, blob) VALUES (?, ?, ?, ?)`,
			m.ID, m.NoteID, m.MIME, m.Blob)
		if err != nil {
			return fmt.Errorf("write media %d: %w", m.ID, err)
		}
	}

	for _, m := range s.Measurements {
		_, err := tx.Exec(
			`INSERT INTO measurements (id, date, weight, body_fat, chest, waist, arms, legs, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Date.Format(time.RFC3339Nano), m.Weight, m.BodyFat,
			m.Chest, m.Waist, m.Arms, m.Legs, m.Notes)
		if err != nil {
			return fmt.Errorf("write measurement %d: %w", m.ID, err)
		}
	}

	for _, n := range s.NutritionLogs {
		_, err := tx.Exec(
			`INSERT INTO nutrition_logs (id, date, name, meal_type, calories, protein, carbs, fat) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.Date.Format(time.RFC3339Nano), n.Name, string(n.MealType),
			n.Calories, n.Protein, n.Carbs, n.Fat)
		if err != nil {
			return fmt.Errorf("write nutrition log %d: %w", n.ID, err)
		}
	}

	return nil
}

func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339Nano)
	return &formatted
}
