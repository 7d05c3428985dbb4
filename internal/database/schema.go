package database

import (
	"context"
	"database/sql"
)

// EnsureSchema creates the application tables when they do not exist.
// The unique keys on registrations, assignments and feedback are load
// bearing: the application performs its duplicate and capacity checks
// inside transactions, and these constraints make the guarantee exact
// when two requests race past the same check.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name          VARCHAR(255) NOT NULL,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			phone         VARCHAR(64)  NOT NULL DEFAULT '',
			address       VARCHAR(255) NOT NULL DEFAULT '',
			created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS admins (
			user_id BIGINT UNSIGNED NOT NULL,
			PRIMARY KEY (user_id),
			CONSTRAINT fk_admins_user FOREIGN KEY (user_id) REFERENCES users (user_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS attendees (
			attendee_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id     BIGINT UNSIGNED NOT NULL,
			PRIMARY KEY (attendee_id),
			UNIQUE KEY uq_attendees_user (user_id),
			CONSTRAINT fk_attendees_user FOREIGN KEY (user_id) REFERENCES users (user_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS organizers (
			organizer_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id      BIGINT UNSIGNED NOT NULL,
			PRIMARY KEY (organizer_id),
			UNIQUE KEY uq_organizers_user (user_id),
			CONSTRAINT fk_organizers_user FOREIGN KEY (user_id) REFERENCES users (user_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS events (
			event_id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			organizer_id  BIGINT UNSIGNED NOT NULL,
			title         VARCHAR(255) NOT NULL,
			date          DATE NOT NULL,
			location      VARCHAR(255) NOT NULL DEFAULT '',
			description   TEXT,
			max_attendees INT NOT NULL,
			event_status  ENUM('upcoming','ongoing','completed','cancelled') NOT NULL DEFAULT 'upcoming',
			image         VARCHAR(1024) NOT NULL DEFAULT '',
			PRIMARY KEY (event_id),
			CONSTRAINT fk_events_organizer FOREIGN KEY (organizer_id) REFERENCES organizers (organizer_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS registrations (
			registration_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			attendee_id     BIGINT UNSIGNED NOT NULL,
			event_id        BIGINT UNSIGNED NOT NULL,
			register_date   DATE NOT NULL,
			PRIMARY KEY (registration_id),
			UNIQUE KEY uq_registrations_pair (attendee_id, event_id),
			CONSTRAINT fk_registrations_attendee FOREIGN KEY (attendee_id) REFERENCES attendees (attendee_id),
			CONSTRAINT fk_registrations_event FOREIGN KEY (event_id) REFERENCES events (event_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS employees (
			employee_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name        VARCHAR(255) NOT NULL,
			role        VARCHAR(255) NOT NULL,
			salary      DECIMAL(12,2) NOT NULL,
			hire_date   DATE NOT NULL,
			PRIMARY KEY (employee_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS assignments (
			assign_id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			employee_id BIGINT UNSIGNED NOT NULL,
			event_id    BIGINT UNSIGNED NOT NULL,
			role        VARCHAR(255) NOT NULL,
			PRIMARY KEY (assign_id),
			UNIQUE KEY uq_assignments_pair (employee_id, event_id),
			CONSTRAINT fk_assignments_employee FOREIGN KEY (employee_id) REFERENCES employees (employee_id),
			CONSTRAINT fk_assignments_event FOREIGN KEY (event_id) REFERENCES events (event_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS feedback (
			feedback_id  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id      BIGINT UNSIGNED NOT NULL,
			event_id     BIGINT UNSIGNED NOT NULL,
			rating       TINYINT NOT NULL,
			comment      TEXT,
			submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (feedback_id),
			UNIQUE KEY uq_feedback_pair (user_id, event_id),
			CONSTRAINT fk_feedback_user FOREIGN KEY (user_id) REFERENCES users (user_id),
			CONSTRAINT fk_feedback_event FOREIGN KEY (event_id) REFERENCES events (event_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS notifications (
			notification_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id         BIGINT UNSIGNED NOT NULL,
			event_id        BIGINT UNSIGNED NULL,
			message         VARCHAR(1024) NOT NULL,
			is_read         TINYINT(1) NOT NULL DEFAULT 0,
			created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (notification_id),
			KEY idx_notifications_user (user_id),
			CONSTRAINT fk_notifications_user FOREIGN KEY (user_id) REFERENCES users (user_id),
			CONSTRAINT fk_notifications_event FOREIGN KEY (event_id) REFERENCES events (event_id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS login_records (
			login_id    BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id     BIGINT UNSIGNED NOT NULL,
			login_time  DATETIME NOT NULL,
			logout_time DATETIME NULL,
			PRIMARY KEY (login_id),
			KEY idx_login_records_user (user_id),
			CONSTRAINT fk_login_records_user FOREIGN KEY (user_id) REFERENCES users (user_id)
		) ENGINE=InnoDB`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
