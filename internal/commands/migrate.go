package commands

import (
	"fmt"
	"log"

	"hrm/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('EMPLOYEE', 'ADMIN');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            email text not null unique,
            password text not null,
            role user_role,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create admin account with email: admin@example.com, password: 1",
		Query: `
        INSERT INTO users(email, role, password)
        SELECT 'admin@example.com', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@example.com');
        `,
	},
	{
		Index:       4,
		Description: "Create table: department",
		Query: `
        CREATE TABLE IF NOT EXISTS department (
            id serial primary key,
            name text not null,
            description text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: location.",
		Query: `
        CREATE TABLE IF NOT EXISTS location (
            id serial primary key,
            name text not null,
            address text,
            city text,
            state text,
            country text,
            zip_code text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: employees.",
		Query: `
        CREATE TABLE IF NOT EXISTS employees (
            id serial primary key,
            user_id int references users(id),
            first_name text,
            last_name text,
            position text,
            department_id int references department(id),
            location_id int references location(id),
            manager_id int references employees(id),
            hire_date date,
            salary numeric,
            is_active boolean default true,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: attendance.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id SERIAL PRIMARY KEY,
            employee_id INT NOT NULL REFERENCES employees(id),
            work_day DATE NOT NULL,
            check_in TIMESTAMP,
            check_out TIMESTAMP,
            status VARCHAR(20),
            notes TEXT,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
	{
		Index:       8,
		Description: "One attendance record per employee per day.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS attendance_employee_work_day_idx
            ON attendance(employee_id, work_day) WHERE deleted_at IS NULL;`,
	},
	{
		Index:       9,
		Description: "Create table: leaves.",
		Query: `
        CREATE TABLE IF NOT EXISTS leaves (
            id SERIAL PRIMARY KEY,
            employee_id INT NOT NULL REFERENCES employees(id),
            start_date DATE NOT NULL,
            end_date DATE NOT NULL,
            leave_type VARCHAR(20) NOT NULL,
            reason TEXT,
            status VARCHAR(20) NOT NULL DEFAULT 'Pending',
            approved_by INT REFERENCES users(id),
            approved_on TIMESTAMP,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: project.",
		Query: `
        CREATE TABLE IF NOT EXISTS project (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT,
            start_date DATE,
            end_date DATE,
            status VARCHAR(20) DEFAULT 'Not Started',
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
	{
		Index:       11,
		Description: "Create table: project_member.",
		Query: `
        CREATE TABLE IF NOT EXISTS project_member (
            id SERIAL PRIMARY KEY,
            project_id INT NOT NULL REFERENCES project(id),
            employee_id INT NOT NULL REFERENCES employees(id),
            role TEXT,
            join_date DATE,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
